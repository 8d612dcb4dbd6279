// internal/event/event.go
package event

// EventType — тип события урока
type EventType string

// Event — событие с произвольной полезной нагрузкой (см. types.go)
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс подписчика
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc — адаптер, позволяющий подписывать обычные функции
type ListenerFunc func(event Event)

// OnEvent реализует Listener
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher — синхронный диспетчер событий: подписчики вызываются
// в порядке подписки, в горутине отправителя
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт диспетчер без подписчиков
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам его типа
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
