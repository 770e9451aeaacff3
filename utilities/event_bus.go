package utilities

import "sync"

type EventHandler func(interface{})

// EventBus is a minimal in-process pub/sub used for fire-and-forget
// post-processing after a request has been answered.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

// Publish runs each handler on its own goroutine; publishers never block on
// subscribers.
func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, handler := range eb.handlers[event] {
		go handler(data)
	}
}

// Global instance
var GlobalEventBus = NewEventBus()
