package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

func TestMessage_ListMessages_ParticipantsOnlyOldestFirst(t *testing.T) {
	me := uuid.New()
	other := uuid.New()
	stranger := uuid.New()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first := message.Message{ID: uuid.New(), SenderID: other, ReceiverID: me, Content: "hi", CreatedAt: base}
	second := message.Message{ID: uuid.New(), SenderID: me, ReceiverID: other, Content: "hello", CreatedAt: base.Add(time.Minute)}
	tie := message.Message{ID: uuid.New(), SenderID: other, ReceiverID: me, Content: "same time", CreatedAt: base.Add(time.Minute)}
	foreign := message.Message{ID: uuid.New(), SenderID: other, ReceiverID: stranger, Content: "not yours", CreatedAt: base}

	repo := &fakeMessageRepo{rows: []message.Message{second, foreign, tie, first}}
	uc := NewMessageUsecase(repo, nil, nil)

	got, err := uc.ListMessages(context.Background(), me)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []uuid.UUID{first.ID, second.ID, tie.ID}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("unexpected message at %d: %q", i, got[i].Content)
		}
	}
}

func TestMessage_SendMessage_PublishesToReceiver(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()
	repo := &fakeMessageRepo{clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	broker := &fakeBroker{}
	uc := NewMessageUsecase(repo, broker, nil)

	var pushed []message.Message
	unsubscribe, err := uc.SubscribeIncoming(receiver, func(m message.Message) { pushed = append(pushed, m) })
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer unsubscribe()

	sent, err := uc.SendMessage(context.Background(), sender, receiver, "  Are you free next week?  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sent.Content != "Are you free next week?" {
		t.Fatalf("expected trimmed content, got %q", sent.Content)
	}
	if len(pushed) != 1 || pushed[0].ID != sent.ID {
		t.Fatalf("expected one push for the receiver, got %d", len(pushed))
	}
}

func TestMessage_SendMessage_PublishFailureStillSends(t *testing.T) {
	repo := &fakeMessageRepo{}
	broker := &fakeBroker{err: errors.New("redis down")}
	uc := NewMessageUsecase(repo, broker, nil)

	if _, err := uc.SendMessage(context.Background(), uuid.New(), uuid.New(), "ping"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected the message stored, got %d rows", len(repo.rows))
	}
}

func TestMessage_SendMessage_Rejects(t *testing.T) {
	me := uuid.New()
	uc := NewMessageUsecase(&fakeMessageRepo{}, nil, nil)
	ctx := context.Background()

	if _, err := uc.SendMessage(ctx, uuid.Nil, uuid.New(), "hi"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := uc.SendMessage(ctx, me, me, "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected self message rejected, got %v", err)
	}
	if _, err := uc.SendMessage(ctx, me, uuid.New(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected blank message rejected, got %v", err)
	}
}

func TestMessage_MarkRead_OnlyReceiver(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()
	m := message.Message{ID: uuid.New(), SenderID: sender, ReceiverID: receiver, Content: "hi"}
	repo := &fakeMessageRepo{rows: []message.Message{m}}
	uc := NewMessageUsecase(repo, nil, nil)

	if err := uc.MarkRead(context.Background(), sender, m.ID); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound for the sender, got %v", err)
	}
	if err := uc.MarkRead(context.Background(), receiver, m.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !repo.rows[0].ReadStatus {
		t.Fatalf("expected message marked read")
	}
}
