package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(TypeAchievementUnlocked, map[string]interface{}{"userId": "u1"})

	if event.ID == "" {
		t.Error("expected event id")
	}
	if event.Type != TypeAchievementUnlocked {
		t.Errorf("expected type %s, got %s", TypeAchievementUnlocked, event.Type)
	}
	if event.Source != "learning-service" {
		t.Errorf("unexpected source %s", event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("unexpected version %s", event.Version)
	}
	if event.Timestamp.IsZero() {
		t.Error("expected timestamp")
	}
}

func TestGoChannelEventPublisher_PublishSubscribe(t *testing.T) {
	publisher := NewGoChannelEventPublisher(testLogger())
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := publisher.Subscribe(ctx, TypeModuleCompleted)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	sent := NewEvent(TypeModuleCompleted, map[string]interface{}{"moduleId": "m1"})
	if err := publisher.Publish(ctx, sent); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-messages:
		var received Event
		if err := json.Unmarshal(msg.Payload, &received); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if received.ID != sent.ID {
			t.Errorf("expected event %s, got %s", sent.ID, received.ID)
		}
		if msg.Metadata.Get("type") != TypeModuleCompleted {
			t.Errorf("expected type metadata, got %q", msg.Metadata.Get("type"))
		}
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(testLogger())
	ctx := context.Background()

	if err := mock.Publish(ctx, NewEvent(TypeRoadmapGenerated, nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := mock.Publish(ctx, NewEvent(TypeModuleCompleted, nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	published := mock.GetPublishedEvents()
	if len(published) != 2 {
		t.Fatalf("expected 2 events, got %d", len(published))
	}

	mock.ClearEvents()
	if remaining := mock.GetPublishedEvents(); len(remaining) != 0 {
		t.Errorf("expected no events after clear, got %d", len(remaining))
	}
}
