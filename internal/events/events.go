package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Event types published by the services.
const (
	TypeAchievementUnlocked = "achievement.unlocked"
	TypeRoadmapGenerated    = "roadmap.generated"
	TypeModuleCompleted     = "module.completed"
)

const eventSource = "learning-service"

// Event is the envelope for every domain event on the bus.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent builds an envelope with the standard source and version.
func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Source:    eventSource,
		Version:   "1.0",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events. Publishing is best-effort from the
// handlers' point of view; a failed publish never fails the request.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// GoChannelEventPublisher publishes over an in-process Watermill pub/sub.
// Events are keyed by type as the topic name.
type GoChannelEventPublisher struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

func NewGoChannelEventPublisher(logger *slog.Logger) *GoChannelEventPublisher {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &GoChannelEventPublisher{
		pubSub: pubSub,
		logger: logger,
	}
}

func (p *GoChannelEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("type", event.Type)
	msg.SetContext(ctx)

	if err := p.pubSub.Publish(event.Type, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	return nil
}

// Subscribe returns the message stream for one event type.
func (p *GoChannelEventPublisher) Subscribe(ctx context.Context, eventType string) (<-chan *message.Message, error) {
	return p.pubSub.Subscribe(ctx, eventType)
}

func (p *GoChannelEventPublisher) Close() error {
	return p.pubSub.Close()
}

// StartLoggingSubscriber drains the given event types and logs each event.
// Runs until ctx is cancelled.
func StartLoggingSubscriber(ctx context.Context, p *GoChannelEventPublisher, eventTypes ...string) error {
	for _, eventType := range eventTypes {
		messages, err := p.Subscribe(ctx, eventType)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
		go func(eventType string, messages <-chan *message.Message) {
			for msg := range messages {
				p.logger.Info("domain event",
					"type", eventType,
					"event_id", msg.UUID,
					"payload", string(msg.Payload))
				msg.Ack()
			}
		}(eventType, messages)
	}
	return nil
}

// MockEventPublisher records events for tests.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []Event
	logger *slog.Logger
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockEventPublisher) GetPublishedEvents() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MockEventPublisher) ClearEvents() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}

func (m *MockEventPublisher) Close() error { return nil }
