// internal/web/hub.go
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Учебный сервер; в продакшене следует проверять домен
		return true
	},
}

// Hub управляет WebSocket-соединениями урока. Каждый подключившийся
// клиент получает кадр текущей стадии сразу и новый кадр на каждую
// смену стадии.
type Hub struct {
	// Зарегистрированные клиенты
	clients map[*Client]bool

	// Канал для регистрации клиентов
	register chan *Client

	// Канал для отмены регистрации клиентов
	unregister chan *Client

	// Канал исходящих кадров
	broadcast chan []byte

	// Мьютекс для карты клиентов
	mu sync.RWMutex

	// Последний разосланный кадр; отдаётся новым клиентам при подключении
	lastFrame []byte
	frameMu   sync.RWMutex
}

// Client — один WebSocket-клиент урока.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// Буферизованный канал исходящих сообщений
	send chan []byte

	// Идентификатор подключения
	id string
}

// NewHub создаёт новый Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 8),
	}
}

// Run запускает цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[WEBSOCKET] Client registered: %s", client.id)

			// Новому клиенту сразу выдаём текущий кадр
			h.frameMu.RLock()
			frame := h.lastFrame
			h.frameMu.RUnlock()
			if frame != nil {
				select {
				case client.send <- frame:
				default:
				}
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("[WEBSOCKET] Client unregistered: %s", client.id)

		case message := <-h.broadcast:
			h.frameMu.Lock()
			h.lastFrame = message
			h.frameMu.Unlock()

			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastFrame рассылает кадр всем подключённым клиентам.
func (h *Hub) BroadcastFrame(snapshot FrameSnapshot) {
	message, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal frame: %v", err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
		log.Printf("[WARN] Broadcast channel full, dropping frame")
	}
}

// HandleWebSocket обрабатывает подключение WebSocket-клиента.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ERROR] Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 16),
		id:   uuid.New().String(),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump вычитывает входящие сообщения клиента до обрыва соединения.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[ERROR] WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump отправляет кадры клиенту.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	// Канал закрыт хабом
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
