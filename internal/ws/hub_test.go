package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

type fakeSubscriber struct {
	mu          sync.Mutex
	handlers    map[uuid.UUID]func(message.Message)
	gates       map[uuid.UUID]chan struct{}
	failures    map[uuid.UUID]error
	subscribes  int
	unsubscribe int
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{
		handlers: map[uuid.UUID]func(message.Message){},
		gates:    map[uuid.UUID]chan struct{}{},
		failures: map[uuid.UUID]error{},
	}
}

// hold makes SubscribeIncoming for userID block until the returned func is called.
func (f *fakeSubscriber) hold(userID uuid.UUID) func() {
	gate := make(chan struct{})
	f.mu.Lock()
	f.gates[userID] = gate
	f.mu.Unlock()
	return func() { close(gate) }
}

func (f *fakeSubscriber) SubscribeIncoming(userID uuid.UUID, fn func(message.Message)) (func(), error) {
	f.mu.Lock()
	gate := f.gates[userID]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	if err := f.failures[userID]; err != nil {
		f.mu.Unlock()
		return nil, err
	}
	defer f.mu.Unlock()
	f.subscribes++
	f.handlers[userID] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unsubscribe++
		delete(f.handlers, userID)
	}, nil
}

func (f *fakeSubscriber) emit(userID uuid.UUID, m message.Message) bool {
	f.mu.Lock()
	fn := f.handlers[userID]
	f.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(m)
	return true
}

func (f *fakeSubscriber) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subscribes, f.unsubscribe
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func testClient(h *Hub, userID uuid.UUID) *Client {
	return &Client{hub: h, userID: userID, send: make(chan []byte, 4)}
}

func TestHub_OneSubscriptionPerUser(t *testing.T) {
	sub := newFakeSubscriber()
	h := NewHub(sub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	userID := uuid.New()
	c1, c2 := testClient(h, userID), testClient(h, userID)
	h.Register(c1)
	h.Register(c2)
	waitFor(t, func() bool { return h.ClientCount() == 2 })
	waitFor(t, func() bool {
		s, _ := sub.counts()
		return s == 1
	})
	if h.UserCount() != 1 {
		t.Fatalf("expected 1 connected user, got %d", h.UserCount())
	}

	msg := message.Message{ID: uuid.New(), SenderID: uuid.New(), ReceiverID: userID, Content: "hello", CreatedAt: time.Now().UTC()}
	if !sub.emit(userID, msg) {
		t.Fatalf("expected handler registered")
	}

	for _, c := range []*Client{c1, c2} {
		select {
		case b := <-c.send:
			var evt MessageInsertedEvent
			if err := json.Unmarshal(b, &evt); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if evt.Type != EventMessageInserted || evt.Message.ID != msg.ID || evt.Message.Content != "hello" {
				t.Fatalf("unexpected event: %+v", evt)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected delivery to every client of the user")
		}
	}
}

func TestHub_UnsubscribesWhenLastClientLeaves(t *testing.T) {
	sub := newFakeSubscriber()
	h := NewHub(sub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	userID := uuid.New()
	c1, c2 := testClient(h, userID), testClient(h, userID)
	h.Register(c1)
	h.Register(c2)
	waitFor(t, func() bool { return h.ClientCount() == 2 })

	h.Unregister(c1)
	waitFor(t, func() bool { return h.ClientCount() == 1 })
	if _, u := sub.counts(); u != 0 {
		t.Fatalf("expected subscription kept while a client remains")
	}

	h.Unregister(c2)
	waitFor(t, func() bool {
		_, u := sub.counts()
		return u == 1
	})
	if h.UserCount() != 0 {
		t.Fatalf("expected no connected users")
	}

	if _, ok := <-c2.send; ok {
		t.Fatalf("expected send channel closed")
	}
}

func TestHub_ShutdownReleasesSubscriptions(t *testing.T) {
	sub := newFakeSubscriber()
	h := NewHub(sub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	h.Register(testClient(h, uuid.New()))
	h.Register(testClient(h, uuid.New()))
	waitFor(t, func() bool { return h.ClientCount() == 2 })
	waitFor(t, func() bool {
		s, _ := sub.counts()
		return s == 2
	})

	cancel()
	<-done

	if s, u := sub.counts(); s != 2 || u != 2 {
		t.Fatalf("expected 2 subscribe and 2 unsubscribe, got %d/%d", s, u)
	}
}

func TestHub_SlowSubscribeDoesNotBlockOtherUsers(t *testing.T) {
	sub := newFakeSubscriber()
	h := NewHub(sub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	slowUser, fastUser := uuid.New(), uuid.New()
	release := sub.hold(slowUser)
	defer release()

	h.Register(testClient(h, slowUser))
	fast := testClient(h, fastUser)
	h.Register(fast)
	waitFor(t, func() bool { return h.ClientCount() == 2 })
	waitFor(t, func() bool {
		s, _ := sub.counts()
		return s == 1
	})

	msg := message.Message{ID: uuid.New(), SenderID: slowUser, ReceiverID: fastUser, Content: "ping", CreatedAt: time.Now().UTC()}
	if !sub.emit(fastUser, msg) {
		t.Fatalf("expected fast user subscribed while slow user is pending")
	}
	select {
	case <-fast.send:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected delivery while another subscription is pending")
	}
}

func TestHub_ReleasesSubscriptionWhenUserLeftWhilePending(t *testing.T) {
	sub := newFakeSubscriber()
	h := NewHub(sub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	userID := uuid.New()
	release := sub.hold(userID)
	c := testClient(h, userID)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })
	h.Unregister(c)
	waitFor(t, func() bool { return h.ClientCount() == 0 })

	release()
	waitFor(t, func() bool {
		s, u := sub.counts()
		return s == 1 && u == 1
	})
}

func TestHub_SubscribeFailureDropsClients(t *testing.T) {
	sub := newFakeSubscriber()
	userID := uuid.New()
	sub.failures[userID] = errors.New("broker down")
	h := NewHub(sub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := testClient(h, userID)
	h.Register(c)
	waitFor(t, func() bool { return h.UserCount() == 0 })

	if _, ok := <-c.send; ok {
		t.Fatalf("expected send channel closed")
	}
}
