package events

import (
	"context"
	"sync"

	"tipbot/internal/core/domain"

	"github.com/rs/zerolog"
)

// Kind names an entity-change event.
type Kind string

const (
	KindAccountUpdated       Kind = "account.updated"
	KindLinkedAccountUpdated Kind = "linked_account.updated"
)

// Event is a single entity change. Exactly one payload field is set,
// matching the Kind.
type Event struct {
	Kind          Kind
	Account       *domain.Account
	LinkedAccount *domain.LinkedAccount
}

// Handler reacts to an entity change. Delivery is at-least-once, so
// handlers must be idempotent.
type Handler func(ctx context.Context, ev Event)

// Publisher is the producer-side view of the dispatcher.
type Publisher interface {
	Publish(ev Event)
}

// Dispatcher fans entity-change events out to registered handlers on a
// bounded worker pool. Handlers for different events run concurrently;
// there is no ordering between events of different entities.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler

	ch      chan Event
	workers int
	wg      sync.WaitGroup
	log     zerolog.Logger

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewDispatcher creates a dispatcher with the given queue depth and
// worker count.
func NewDispatcher(buffer, workers int, log zerolog.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = 256
	}
	if workers <= 0 {
		workers = 4
	}
	return &Dispatcher{
		handlers: make(map[Kind][]Handler),
		ch:       make(chan Event, buffer),
		workers:  workers,
		log:      log,
	}
}

// Subscribe registers a handler for a named entity-change event.
// Subscriptions must complete before Start.
func (d *Dispatcher) Subscribe(kind Kind, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Publish enqueues an event for delivery. It blocks when the queue is
// full rather than dropping the change.
func (d *Dispatcher) Publish(ev Event) {
	d.ch <- ev
}

// Start launches the worker pool. Workers drain the queue until Close
// is called, then exit.
func (d *Dispatcher) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.run(ctx)
		}
	})
}

// Close stops accepting events and waits for in-flight handlers.
func (d *Dispatcher) Close() {
	d.stopOnce.Do(func() {
		close(d.ch)
	})
	d.wg.Wait()
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()

	for ev := range d.ch {
		d.mu.RLock()
		handlers := d.handlers[ev.Kind]
		d.mu.RUnlock()

		for _, h := range handlers {
			d.invoke(ctx, h, ev)
		}
	}
}

// invoke shields the worker from a panicking handler.
func (d *Dispatcher) invoke(ctx context.Context, h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("kind", string(ev.Kind)).Msg("event handler panicked")
		}
	}()
	h(ctx, ev)
}
