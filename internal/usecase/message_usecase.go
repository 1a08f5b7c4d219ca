package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"gigboard/internal/domain/message"
	"gigboard/internal/realtime"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

const maxMessageLength = 5000

var ErrMessageNotFound = errors.New("message not found")

type MessageUsecase interface {
	// ListMessages returns every message the user sent or received, ordered
	// by creation time, each carrying the sender's display name and avatar.
	ListMessages(ctx context.Context, userID uuid.UUID) ([]message.Message, error)
	SendMessage(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID, content string) (message.Message, error)
	MarkRead(ctx context.Context, userID uuid.UUID, messageID uuid.UUID) error
	// SubscribeIncoming calls onMessage for each message inserted for userID
	// until the returned func is called.
	SubscribeIncoming(userID uuid.UUID, onMessage func(message.Message)) (func(), error)
}

type Message struct {
	messages repository.MessageRepository
	broker   realtime.Broker
	logger   *log.Logger
}

func NewMessageUsecase(messages repository.MessageRepository, broker realtime.Broker, logger *log.Logger) *Message {
	return &Message{messages: messages, broker: broker, logger: logger}
}

func (u *Message) ListMessages(ctx context.Context, userID uuid.UUID) ([]message.Message, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	items, err := u.messages.ListForUser(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}

	out := make([]message.Message, 0, len(items))
	for _, m := range items {
		if m.Involves(userID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (u *Message) SendMessage(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID, content string) (message.Message, error) {
	if senderID == uuid.Nil {
		return message.Message{}, ErrUnauthorized
	}
	content = strings.TrimSpace(content)
	if receiverID == uuid.Nil || receiverID == senderID || content == "" || len(content) > maxMessageLength {
		return message.Message{}, ErrInvalidInput
	}

	created, err := u.messages.Create(ctx, message.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	})
	if err != nil {
		return message.Message{}, storeError(err)
	}

	if u.broker != nil {
		if err := u.broker.Publish(ctx, created); err != nil && u.logger != nil {
			u.logger.Printf("Message publish failed | message_id=%s receiver_id=%s err=%v", created.ID, created.ReceiverID, err)
		}
	}
	return created, nil
}

func (u *Message) MarkRead(ctx context.Context, userID uuid.UUID, messageID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if messageID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.messages.MarkRead(ctx, messageID, userID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return storeError(err)
	}
	return nil
}

func (u *Message) SubscribeIncoming(userID uuid.UUID, onMessage func(message.Message)) (func(), error) {
	if userID == uuid.Nil || onMessage == nil {
		return nil, ErrInvalidInput
	}
	if u.broker == nil {
		return nil, ErrInternal
	}
	return u.broker.Subscribe(userID, func(m message.Message) {
		if m.ReceiverID == userID {
			onMessage(m)
		}
	})
}
