// internal/web/handler.go
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"go-angioplasty/internal/app"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/event"
	"go-angioplasty/internal/export"
)

// Server — HTTP-обвязка урока: REST для степпера и кадров плюс
// WebSocket-хаб. Урок однопоточный, доступ к нему сериализуется мьютексом.
type Server struct {
	lesson  *app.Lesson
	hub     *Hub
	palette defs.Palette
	mu      sync.Mutex
}

// NewServer создаёт сервер урока и подписывает хаб на смену стадий.
func NewServer(lesson *app.Lesson, hub *Hub, palette defs.Palette) *Server {
	s := &Server{
		lesson:  lesson,
		hub:     hub,
		palette: palette,
	}
	lesson.EventDispatcher.Subscribe(event.StageChanged, event.ListenerFunc(func(e event.Event) {
		data, ok := e.Data.(event.StageChangedData)
		if !ok {
			return
		}
		hub.BroadcastFrame(Snapshot(lesson, data.To))
	}))
	return s
}

// RegisterRoutes вешает маршруты на роутер.
func (s *Server) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stages", s.ListStages).Methods("GET")
	api.HandleFunc("/stages/{stage}/frame", s.GetFrame).Methods("GET")
	api.HandleFunc("/stages/{stage}/frame.svg", s.GetFrameSVG).Methods("GET")
	api.HandleFunc("/lesson", s.GetLesson).Methods("GET")
	api.HandleFunc("/lesson/stage", s.SetStage).Methods("POST")
	api.HandleFunc("/lesson/advance", s.Advance).Methods("POST")
	api.HandleFunc("/lesson/back", s.Back).Methods("POST")
	api.HandleFunc("/lesson/restart", s.Restart).Methods("POST")

	router.HandleFunc("/ws", s.hub.HandleWebSocket)
}

// stageInfo — элемент списка стадий.
type stageInfo struct {
	Stage string `json:"stage"`
	Title string `json:"title"`
	Index int    `json:"index"`
}

// ListStages отдаёт канонический порядок урока.
func (s *Server) ListStages(w http.ResponseWriter, r *http.Request) {
	stages := make([]stageInfo, 0, len(defs.StageSequence))
	for i, stage := range defs.StageSequence {
		stages = append(stages, stageInfo{
			Stage: string(stage),
			Title: defs.StageTitles[stage],
			Index: i,
		})
	}
	writeJSON(w, http.StatusOK, stages)
}

// GetFrame отдаёт кадр произвольной стадии, не меняя урок.
func (s *Server) GetFrame(w http.ResponseWriter, r *http.Request) {
	stage := defs.Stage(mux.Vars(r)["stage"])
	if !stage.Valid() {
		http.Error(w, "unknown stage", http.StatusNotFound)
		return
	}
	s.mu.Lock()
	snap := Snapshot(s.lesson, stage)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// GetFrameSVG отдаёт статичный SVG-кадр стадии.
func (s *Server) GetFrameSVG(w http.ResponseWriter, r *http.Request) {
	stage := defs.Stage(mux.Vars(r)["stage"])
	if !stage.Valid() {
		http.Error(w, "unknown stage", http.StatusNotFound)
		return
	}
	s.mu.Lock()
	layers := s.lesson.FrameFor(stage)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := export.WriteSVG(w, layers, s.palette); err != nil {
		log.Printf("[ERROR] Failed to write svg frame: %v", err)
	}
}

// GetLesson отдаёт кадр текущей стадии урока.
func (s *Server) GetLesson(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := Snapshot(s.lesson, s.lesson.Stage())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// setStageRequest — тело POST /lesson/stage.
type setStageRequest struct {
	Stage string `json:"stage"`
}

// SetStage переводит урок на указанную стадию.
func (s *Server) SetStage(w http.ResponseWriter, r *http.Request) {
	var req setStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	stage := defs.Stage(req.Stage)
	if !stage.Valid() {
		http.Error(w, "unknown stage", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.lesson.SetStage(stage)
	snap := Snapshot(s.lesson, s.lesson.Stage())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// Advance — следующая стадия урока.
func (s *Server) Advance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.lesson.Advance()
	snap := Snapshot(s.lesson, s.lesson.Stage())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// Back — предыдущая стадия урока.
func (s *Server) Back(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.lesson.Back()
	snap := Snapshot(s.lesson, s.lesson.Stage())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// Restart — сброс урока на первую стадию.
func (s *Server) Restart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.lesson.Restart()
	snap := Snapshot(s.lesson, s.lesson.Stage())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] Failed to encode response: %v", err)
	}
}
