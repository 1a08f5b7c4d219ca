package ws

import (
	"encoding/json"
	"time"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

const EventMessageInserted = "message_inserted"

type MessageRow struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
	ReadStatus bool      `json:"read_status"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageInsertedEvent struct {
	Type    string     `json:"type"`
	Message MessageRow `json:"message"`
}

// EncodeMessageInserted renders the inserted row as-is inside the event envelope.
func EncodeMessageInserted(m message.Message) ([]byte, error) {
	return json.Marshal(MessageInsertedEvent{
		Type: EventMessageInserted,
		Message: MessageRow{
			ID:         m.ID,
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Content:    m.Content,
			ReadStatus: m.ReadStatus,
			CreatedAt:  m.CreatedAt,
		},
	})
}
