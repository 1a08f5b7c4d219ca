package message

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two accounts. Conversations are not
// stored; they are derived by filtering on the participant pair.
type Message struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Content    string
	ReadStatus bool
	CreatedAt  time.Time

	// SenderName and SenderAvatarURL are filled when the sender's profile was joined.
	SenderName      *string
	SenderAvatarURL *string
}

func (m Message) Involves(userID uuid.UUID) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
