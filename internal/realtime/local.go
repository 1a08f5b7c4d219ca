package realtime

import (
	"context"
	"errors"
	"sync"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("broker closed")

// LocalBroker delivers within the current process only.
type LocalBroker struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]map[uint64]Handler
	nextID uint64
	closed bool
}

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{subs: make(map[uuid.UUID]map[uint64]Handler)}
}

func (b *LocalBroker) Publish(_ context.Context, m message.Message) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}
	handlers := make([]Handler, 0, len(b.subs[m.ReceiverID]))
	for _, fn := range b.subs[m.ReceiverID] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(m)
	}
	return nil
}

func (b *LocalBroker) Subscribe(receiverID uuid.UUID, fn Handler) (func(), error) {
	if fn == nil {
		return nil, errors.New("nil handler")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}

	b.nextID++
	id := b.nextID
	if b.subs[receiverID] == nil {
		b.subs[receiverID] = make(map[uint64]Handler)
	}
	b.subs[receiverID][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[receiverID], id)
			if len(b.subs[receiverID]) == 0 {
				delete(b.subs, receiverID)
			}
		})
	}, nil
}

// Subscribers reports how many live subscriptions exist for receiverID.
func (b *LocalBroker) Subscribers(receiverID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[receiverID])
}

func (b *LocalBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = make(map[uuid.UUID]map[uint64]Handler)
	return nil
}
