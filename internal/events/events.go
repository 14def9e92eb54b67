package events

import (
	"context"
	"time"
)

// Type names a content change
type Type string

const (
	CategoryCreated   Type = "category.created"
	CategoryUpdated   Type = "category.updated"
	CategoryDeleted   Type = "category.deleted"
	MediaCreated      Type = "media.created"
	MediaDeleted      Type = "media.deleted"
	NewsCreated       Type = "news.created"
	NewsStatusChanged Type = "news.status_changed"
	NewsDeleted       Type = "news.deleted"
)

// Event is a content change notification for downstream consumers (cache purgers, search indexers)
type Event struct {
	Type       Type      `json:"type"`
	EntityID   string    `json:"entity_id"`
	Slug       string    `json:"slug,omitempty"`
	Status     string    `json:"status,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits content events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NopPublisher) Close() error { return nil }
