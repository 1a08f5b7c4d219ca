package ws

import (
	"context"
	"log"
	"sync"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

// Subscriber opens a push subscription for messages received by userID.
type Subscriber interface {
	SubscribeIncoming(userID uuid.UUID, onMessage func(message.Message)) (func(), error)
}

type delivery struct {
	userID  uuid.UUID
	payload []byte
}

type subscription struct {
	userID uuid.UUID
	unsub  func()
	err    error
}

// Hub tracks websocket clients per user. It holds one push subscription per
// connected user and drops it when that user's last client leaves.
// Subscriptions are opened off the run loop so a slow broker never blocks
// other users.
type Hub struct {
	clients     map[uuid.UUID]map[*Client]bool
	unsub       map[uuid.UUID]func()
	subscribing map[uuid.UUID]bool
	register    chan *Client
	unregister  chan *Client
	deliver     chan delivery
	subscribed  chan subscription
	done        chan struct{}
	subscriber  Subscriber
	mutex       sync.RWMutex
	logger      *log.Logger
}

func NewHub(subscriber Subscriber, logger *log.Logger) *Hub {
	return &Hub{
		clients:     make(map[uuid.UUID]map[*Client]bool),
		unsub:       make(map[uuid.UUID]func()),
		subscribing: make(map[uuid.UUID]bool),
		register:    make(chan *Client, 128),
		unregister:  make(chan *Client, 128),
		deliver:     make(chan delivery, 1024),
		subscribed:  make(chan subscription),
		done:        make(chan struct{}),
		subscriber:  subscriber,
		logger:      logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.add(client)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case res := <-h.subscribed:
			h.settle(res)

		case d := <-h.deliver:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[d.userID]))
			for c := range h.clients[d.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- d.payload:
				default:
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) add(client *Client) {
	userID := client.userID

	h.mutex.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]bool)
	}
	h.clients[userID][client] = true
	needSub := h.subscriber != nil && h.unsub[userID] == nil && !h.subscribing[userID]
	if needSub {
		h.subscribing[userID] = true
	}
	total := h.countLocked()
	h.mutex.Unlock()

	if needSub {
		go h.subscribe(userID)
	}

	if h.logger != nil {
		h.logger.Printf("WS connected | user_id=%s total_clients=%d", userID, total)
	}
}

func (h *Hub) subscribe(userID uuid.UUID) {
	unsub, err := h.subscriber.SubscribeIncoming(userID, func(m message.Message) {
		h.push(userID, m)
	})
	select {
	case h.subscribed <- subscription{userID: userID, unsub: unsub, err: err}:
	case <-h.done:
		if unsub != nil {
			unsub()
		}
	}
}

// settle records a finished subscription. It is released at once when the
// user has already left, and the user's clients are dropped when it failed.
func (h *Hub) settle(res subscription) {
	h.mutex.Lock()
	delete(h.subscribing, res.userID)
	connected := len(h.clients[res.userID]) > 0
	var stale []*Client
	switch {
	case res.err != nil:
		for c := range h.clients[res.userID] {
			stale = append(stale, c)
		}
	case connected:
		h.unsub[res.userID] = res.unsub
	}
	h.mutex.Unlock()

	if res.err != nil {
		if h.logger != nil {
			h.logger.Printf("WS subscribe error | user_id=%s err=%v", res.userID, res.err)
		}
		for _, c := range stale {
			h.remove(c)
		}
		return
	}
	if !connected && res.unsub != nil {
		res.unsub()
	}
}

func (h *Hub) remove(client *Client) {
	var unsub func()

	h.mutex.Lock()
	set, ok := h.clients[client.userID]
	if !ok || !set[client] {
		h.mutex.Unlock()
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
		unsub = h.unsub[client.userID]
		delete(h.unsub, client.userID)
	}
	total := h.countLocked()
	h.mutex.Unlock()

	if unsub != nil {
		unsub()
	}
	if h.logger != nil {
		h.logger.Printf("WS disconnected | user_id=%s total_clients=%d", client.userID, total)
	}
}

func (h *Hub) shutdown() {
	close(h.done)

	h.mutex.Lock()
	unsubs := make([]func(), 0, len(h.unsub))
	for _, fn := range h.unsub {
		unsubs = append(unsubs, fn)
	}
	for _, set := range h.clients {
		for c := range set {
			close(c.send)
		}
	}
	h.clients = make(map[uuid.UUID]map[*Client]bool)
	h.unsub = make(map[uuid.UUID]func())
	h.subscribing = make(map[uuid.UUID]bool)
	h.mutex.Unlock()

	for _, fn := range unsubs {
		fn()
	}
}

func (h *Hub) push(userID uuid.UUID, m message.Message) {
	payload, err := EncodeMessageInserted(m)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("WS encode error | message_id=%s err=%v", m.ID, err)
		}
		return
	}
	select {
	case h.deliver <- delivery{userID: userID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS delivery dropped | user_id=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.countLocked()
}

func (h *Hub) UserCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}
