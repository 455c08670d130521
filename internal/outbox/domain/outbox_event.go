// Package domain defines the outbox event entity shared by the use cases
// that emit events and the worker that drains them.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus tracks an event through the outbox lifecycle.
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// OutboxEvent is a domain event staged in the same transaction as the
// state change that produced it.
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPendingEvent builds an event ready for insertion into the outbox.
func NewPendingEvent(eventType string, payload string) *OutboxEvent {
	now := time.Now().UTC()
	return &OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   payload,
		Status:    OutboxEventStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
