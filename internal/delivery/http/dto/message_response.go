package dto

import (
	"time"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

type MessageSender struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

type MessageResponse struct {
	ID            uuid.UUID      `json:"id"`
	SenderID      uuid.UUID      `json:"sender_id"`
	ReceiverID    uuid.UUID      `json:"receiver_id"`
	Content       string         `json:"content"`
	ReadStatus    bool           `json:"read_status"`
	CreatedAt     time.Time      `json:"created_at"`
	SenderProfile *MessageSender `json:"sender_profile"`
}

func NewMessageResponse(m message.Message) MessageResponse {
	res := MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		ReadStatus: m.ReadStatus,
		CreatedAt:  m.CreatedAt,
	}
	if m.SenderName != nil || m.SenderAvatarURL != nil {
		res.SenderProfile = &MessageSender{FullName: m.SenderName, AvatarURL: m.SenderAvatarURL}
	}
	return res
}
