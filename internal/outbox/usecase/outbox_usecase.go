// Package usecase implements the transactional outbox worker that drains
// pending events written by the other use cases.
package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
)

// Config controls the polling loop and retry policy.
type Config struct {
	Interval      time.Duration
	BatchSize     int
	MaxRetries    int
	RetryInterval time.Duration
}

// OutboxEventRepository defines outbox event persistence operations.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
}

// EventProcessor handles a single dequeued event.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

// UseCase defines the outbox worker operations.
type UseCase interface {
	Start(ctx context.Context) error
	ProcessEvents(ctx context.Context) error
}

// OutboxUseCase polls pending events and dispatches them to the processor.
type OutboxUseCase struct {
	config    Config
	txManager database.TxManager
	repo      OutboxEventRepository
	processor EventProcessor
	logger    *slog.Logger
}

// NewOutboxUseCase creates a new OutboxUseCase.
func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	repo OutboxEventRepository,
	processor EventProcessor,
	logger *slog.Logger,
) *OutboxUseCase {
	return &OutboxUseCase{
		config:    config,
		txManager: txManager,
		repo:      repo,
		processor: processor,
		logger:    logger,
	}
}

// Start runs the polling loop until the context is cancelled. Returns the
// context error so callers can distinguish shutdown from failure.
func (uc *OutboxUseCase) Start(ctx context.Context) error {
	if uc.logger != nil {
		uc.logger.Info("starting outbox event processor",
			slog.Duration("interval", uc.config.Interval),
			slog.Int("batch_size", uc.config.BatchSize),
		)
	}

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if uc.logger != nil {
				uc.logger.Info("stopping outbox event processor")
			}
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil {
				if uc.logger != nil {
					uc.logger.Error("failed to process events", slog.Any("error", err))
				}
			}
		}
	}
}

// ProcessEvents drains one batch of pending events inside a transaction.
// A processing failure marks the event for retry and moves on; a storage
// failure aborts the batch.
func (uc *OutboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.repo.GetPendingEvents(ctx, uc.config.BatchSize)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		if uc.logger != nil {
			uc.logger.Info("processing events", slog.Int("count", len(events)))
		}

		for _, event := range events {
			if err := uc.processor.Process(ctx, event); err != nil {
				if uc.logger != nil {
					uc.logger.Error("failed to process event",
						slog.String("event_id", event.ID.String()),
						slog.String("event_type", event.EventType),
						slog.Any("error", err),
					)
				}
				if err := uc.repo.Update(ctx, markFailed(event, err, uc.config.MaxRetries)); err != nil {
					return err
				}
				continue
			}

			if err := uc.repo.Update(ctx, markProcessed(event)); err != nil {
				return err
			}
		}

		return nil
	})
}

func markFailed(event *domain.OutboxEvent, cause error, maxRetries int) *domain.OutboxEvent {
	event.Retries++
	message := cause.Error()
	event.LastError = &message
	if event.Retries >= maxRetries {
		event.Status = domain.OutboxEventStatusFailed
	}
	return event
}

func markProcessed(event *domain.OutboxEvent) *domain.OutboxEvent {
	now := time.Now()
	event.Status = domain.OutboxEventStatusProcessed
	event.ProcessedAt = &now
	return event
}

// DefaultEventProcessor logs lifecycle events. Downstream consumers such as
// reminder delivery or search indexing would hook in here.
type DefaultEventProcessor struct {
	logger *slog.Logger
}

// NewDefaultEventProcessor creates a new DefaultEventProcessor.
func NewDefaultEventProcessor(logger *slog.Logger) *DefaultEventProcessor {
	return &DefaultEventProcessor{logger: logger}
}

// Process validates the payload and logs the event by type.
func (p *DefaultEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
		return err
	}

	if p.logger == nil {
		return nil
	}

	switch event.EventType {
	case "user.created":
		p.logger.Info("user created event", slog.Any("payload", payload))
	case "calendar.created", "calendar.deleted":
		p.logger.Info("calendar lifecycle event",
			slog.String("event_type", event.EventType),
			slog.Any("payload", payload))
	case "event.created", "event.deleted":
		p.logger.Info("event lifecycle event",
			slog.String("event_type", event.EventType),
			slog.Any("payload", payload))
	default:
		p.logger.Warn("unknown event type", slog.String("event_type", event.EventType))
	}

	return nil
}
