package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "messages:insert:"

func Channel(receiverID uuid.UUID) string {
	return channelPrefix + receiverID.String()
}

// RedisBroker delivers through Redis pub/sub so every server instance sees
// messages published by any other instance.
type RedisBroker struct {
	client *redis.Client
	logger *log.Logger
}

func NewRedisBroker(client *redis.Client, logger *log.Logger) (*RedisBroker, error) {
	if client == nil {
		return nil, errors.New("nil redis client")
	}
	return &RedisBroker{client: client, logger: logger}, nil
}

func (b *RedisBroker) Publish(ctx context.Context, m message.Message) error {
	payload, err := json.Marshal(toWire(m))
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, Channel(m.ReceiverID), payload).Err()
}

func (b *RedisBroker) Subscribe(receiverID uuid.UUID, fn Handler) (func(), error) {
	if fn == nil {
		return nil, errors.New("nil handler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	pubsub := b.client.Subscribe(ctx, Channel(receiverID))

	confirmCtx, confirmCancel := context.WithTimeout(ctx, 5*time.Second)
	defer confirmCancel()
	if _, err := pubsub.Receive(confirmCtx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range pubsub.Channel() {
			var w wireMessage
			if err := json.Unmarshal([]byte(msg.Payload), &w); err != nil {
				if b.logger != nil {
					b.logger.Printf("Realtime decode error | channel=%s err=%v", msg.Channel, err)
				}
				continue
			}
			fn(w.toMessage())
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			_ = pubsub.Close()
			<-done
		})
	}, nil
}

// Close is a no-op; the client is owned by the cache.
func (b *RedisBroker) Close() error {
	return nil
}
