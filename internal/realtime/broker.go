package realtime

import (
	"context"
	"time"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

// Handler receives a newly inserted message. It runs on the publishing or
// receiving goroutine and must not block.
type Handler func(message.Message)

// Broker fans inserted messages out to subscribers filtered by receiver id.
// Delivery is at most once per subscription, in publish order.
type Broker interface {
	Publish(ctx context.Context, m message.Message) error
	// Subscribe registers fn for messages addressed to receiverID. The returned
	// func removes the subscription and is safe to call more than once.
	Subscribe(receiverID uuid.UUID, fn Handler) (func(), error)
	Close() error
}

type wireMessage struct {
	ID              uuid.UUID `json:"id"`
	SenderID        uuid.UUID `json:"sender_id"`
	ReceiverID      uuid.UUID `json:"receiver_id"`
	Content         string    `json:"content"`
	ReadStatus      bool      `json:"read_status"`
	CreatedAt       time.Time `json:"created_at"`
	SenderName      *string   `json:"sender_name,omitempty"`
	SenderAvatarURL *string   `json:"sender_avatar_url,omitempty"`
}

func toWire(m message.Message) wireMessage {
	return wireMessage{
		ID:              m.ID,
		SenderID:        m.SenderID,
		ReceiverID:      m.ReceiverID,
		Content:         m.Content,
		ReadStatus:      m.ReadStatus,
		CreatedAt:       m.CreatedAt,
		SenderName:      m.SenderName,
		SenderAvatarURL: m.SenderAvatarURL,
	}
}

func (w wireMessage) toMessage() message.Message {
	return message.Message{
		ID:              w.ID,
		SenderID:        w.SenderID,
		ReceiverID:      w.ReceiverID,
		Content:         w.Content,
		ReadStatus:      w.ReadStatus,
		CreatedAt:       w.CreatedAt,
		SenderName:      w.SenderName,
		SenderAvatarURL: w.SenderAvatarURL,
	}
}
