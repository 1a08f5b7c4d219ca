package realtime

import (
	"context"
	"testing"

	"gigboard/internal/domain/message"

	"github.com/google/uuid"
)

func TestLocalBroker_DeliversOnlyToReceiver(t *testing.T) {
	b := NewLocalBroker()
	alice, bob := uuid.New(), uuid.New()

	var gotAlice, gotBob []message.Message
	unsubAlice, err := b.Subscribe(alice, func(m message.Message) { gotAlice = append(gotAlice, m) })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer unsubAlice()
	unsubBob, err := b.Subscribe(bob, func(m message.Message) { gotBob = append(gotBob, m) })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer unsubBob()

	ctx := context.Background()
	_ = b.Publish(ctx, message.Message{ID: uuid.New(), SenderID: bob, ReceiverID: alice, Content: "hi"})
	_ = b.Publish(ctx, message.Message{ID: uuid.New(), SenderID: bob, ReceiverID: alice, Content: "there"})
	_ = b.Publish(ctx, message.Message{ID: uuid.New(), SenderID: alice, ReceiverID: bob, Content: "hey"})

	if len(gotAlice) != 2 || gotAlice[0].Content != "hi" || gotAlice[1].Content != "there" {
		t.Fatalf("unexpected deliveries for alice: %+v", gotAlice)
	}
	if len(gotBob) != 1 || gotBob[0].Content != "hey" {
		t.Fatalf("unexpected deliveries for bob: %+v", gotBob)
	}
}

func TestLocalBroker_UnsubscribeStopsDelivery(t *testing.T) {
	b := NewLocalBroker()
	receiver := uuid.New()

	calls := 0
	unsub, err := b.Subscribe(receiver, func(message.Message) { calls++ })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if b.Subscribers(receiver) != 1 {
		t.Fatalf("expected 1 subscriber")
	}

	unsub()
	unsub()
	if b.Subscribers(receiver) != 0 {
		t.Fatalf("expected subscription removed")
	}

	_ = b.Publish(context.Background(), message.Message{ReceiverID: receiver})
	if calls != 0 {
		t.Fatalf("expected no delivery after unsubscribe, got %d", calls)
	}
}

func TestLocalBroker_Closed(t *testing.T) {
	b := NewLocalBroker()
	_ = b.Close()

	if _, err := b.Subscribe(uuid.New(), func(message.Message) {}); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := b.Publish(context.Background(), message.Message{}); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
