// internal/app/system/notify/bus.go

// Package notify is a minimal in-process change bus. Stores publish an
// entity name after a successful write; read-side subscribers (the roster
// cache) react by refetching. Delivery is synchronous and fire-and-forget:
// there is no payload, no ordering guarantee beyond call order, and no
// retry — a notification only ever means "something under this entity
// changed, go look".
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Entity names used across the app.
const (
	EntityStudents = "students"
	EntityServices = "services"
	EntityMentors  = "mentors"
)

// Bus dispatches change notifications to subscribers by entity name.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]func()
	log    *zap.Logger
}

// New creates an empty bus.
func New(logger *zap.Logger) *Bus {
	return &Bus{
		subs: make(map[string]map[int]func()),
		log:  logger,
	}
}

// Subscribe registers fn for an entity and returns the subscription id.
func (b *Bus) Subscribe(entity string, fn func()) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	if b.subs[entity] == nil {
		b.subs[entity] = make(map[int]func())
	}
	b.subs[entity][b.nextID] = fn
	b.log.Debug("notify: subscribed", zap.String("entity", entity), zap.Int("id", b.nextID))
	return b.nextID
}

// Unsubscribe removes a subscription by id. Unknown ids are ignored.
func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for entity, m := range b.subs {
		if _, ok := m[id]; ok {
			delete(m, id)
			b.log.Debug("notify: unsubscribed", zap.String("entity", entity), zap.Int("id", id))
			return
		}
	}
}

// Publish invokes every subscriber of the entity, in subscription order
// as far as map iteration allows. Callbacks run on the caller's
// goroutine; long work belongs in the subscriber, not here.
func (b *Bus) Publish(entity string) {
	b.mu.RLock()
	fns := make([]func(), 0, len(b.subs[entity]))
	for _, fn := range b.subs[entity] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
