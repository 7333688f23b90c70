package emitter

import (
	"context"
	"fmt"
	"log"
	"sync"
)

type EventMessage string

const (
	RenderStarted   EventMessage = "render_started"
	RenderCacheHit  EventMessage = "render_cache_hit"
	RenderCompleted EventMessage = "render_completed"
	RenderFailed    EventMessage = "render_failed"
	ProgressMessage EventMessage = "progress_message"
)

type Emitter interface {
	Emit(c context.Context, message EventMessage, payload any) error
}

type MockRenderEvent struct{}

func (e MockRenderEvent) Emit(c context.Context, message EventMessage, payload any) error {
	fmt.Printf("mock-emit - %s - %+v\r\n", message, payload)
	return nil
}

// LoggerEvent writes every event to the supplied logger. The binaries use
// it so render lifecycle ends up in the structured log.
type LoggerEvent struct {
	Logger *log.Logger
}

func (e LoggerEvent) Emit(c context.Context, message EventMessage, payload any) error {
	e.Logger.Printf("%s - %+v\n", message, payload)
	return nil
}

// CollectingEmitter records the messages it sees, for tests.
type CollectingEmitter struct {
	mu       sync.Mutex
	Messages []EventMessage
}

func (e *CollectingEmitter) Emit(c context.Context, message EventMessage, payload any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Messages = append(e.Messages, message)
	return nil
}

// Seen reports whether a message type was emitted at least once.
func (e *CollectingEmitter) Seen(message EventMessage) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, m := range e.Messages {
		if m == message {
			return true
		}
	}
	return false
}
