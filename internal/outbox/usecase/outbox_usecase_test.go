package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository
type MockOutboxEventRepository struct {
	mock.Mock
}

func (m *MockOutboxEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOutboxEventRepository) GetPendingEvents(
	ctx context.Context,
	limit int,
) ([]*domain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OutboxEvent), args.Error(1)
}

func (m *MockOutboxEventRepository) Update(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockEventProcessor is a mock implementation of EventProcessor
type MockEventProcessor struct {
	mock.Mock
}

func (m *MockEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testConfig() Config {
	return Config{
		Interval:      5 * time.Second,
		BatchSize:     10,
		MaxRetries:    3,
		RetryInterval: 1 * time.Minute,
	}
}

func pendingEvent(eventType, payload string) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   payload,
		Status:    domain.OutboxEventStatusPending,
		Retries:   0,
	}
}

func TestNewOutboxUseCase(t *testing.T) {
	config := testConfig()
	uc := NewOutboxUseCase(config, &MockTxManager{}, &MockOutboxEventRepository{}, &MockEventProcessor{}, nil)

	assert.NotNil(t, uc)
	assert.Equal(t, config.Interval, uc.config.Interval)
	assert.Equal(t, config.BatchSize, uc.config.BatchSize)
	assert.Equal(t, config.MaxRetries, uc.config.MaxRetries)
}

func TestOutboxUseCase_Start_ContextCancellation(t *testing.T) {
	config := testConfig()
	config.Interval = 100 * time.Millisecond

	uc := NewOutboxUseCase(config, &MockTxManager{}, &MockOutboxEventRepository{}, &MockEventProcessor{}, nil)

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel context immediately
	cancel()

	err := uc.Start(ctx)
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestOutboxUseCase_ProcessEvents_Success(t *testing.T) {
	config := testConfig()
	txManager := &MockTxManager{}
	outboxRepo := &MockOutboxEventRepository{}
	eventProcessor := &MockEventProcessor{}

	uc := NewOutboxUseCase(config, txManager, outboxRepo, eventProcessor, nil)

	ctx := context.Background()
	events := []*domain.OutboxEvent{
		pendingEvent("calendar.created", `{"calendar_id": "c1", "user_id": "u1", "name": "Work"}`),
		pendingEvent("event.created", `{"event_id": "e1", "user_id": "u1", "calendar_id": "c1", "name": "Standup"}`),
	}

	// Setup expectations
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, config.BatchSize).Return(events, nil)
	eventProcessor.On("Process", ctx, events[0]).Return(nil)
	eventProcessor.On("Process", ctx, events[1]).Return(nil)
	outboxRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.OutboxEvent) bool {
		return e.Status == domain.OutboxEventStatusProcessed && e.ProcessedAt != nil
	})).Return(nil).Times(2)

	err := uc.ProcessEvents(ctx)

	assert.NoError(t, err)
	txManager.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	eventProcessor.AssertExpectations(t)
}

func TestOutboxUseCase_ProcessEvents_NoEvents(t *testing.T) {
	config := testConfig()
	txManager := &MockTxManager{}
	outboxRepo := &MockOutboxEventRepository{}
	eventProcessor := &MockEventProcessor{}

	uc := NewOutboxUseCase(config, txManager, outboxRepo, eventProcessor, nil)

	ctx := context.Background()

	// Setup expectations
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, config.BatchSize).Return([]*domain.OutboxEvent{}, nil)

	err := uc.ProcessEvents(ctx)

	assert.NoError(t, err)
	txManager.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
}

func TestOutboxUseCase_ProcessEvents_GetPendingError(t *testing.T) {
	config := testConfig()
	txManager := &MockTxManager{}
	outboxRepo := &MockOutboxEventRepository{}

	uc := NewOutboxUseCase(config, txManager, outboxRepo, &MockEventProcessor{}, nil)

	ctx := context.Background()
	getError := errors.New("database error")

	// Setup expectations
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, config.BatchSize).Return(nil, getError)

	err := uc.ProcessEvents(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	txManager.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
}

func TestOutboxUseCase_ProcessEvents_ProcessorError(t *testing.T) {
	config := testConfig()
	txManager := &MockTxManager{}
	outboxRepo := &MockOutboxEventRepository{}
	eventProcessor := &MockEventProcessor{}

	uc := NewOutboxUseCase(config, txManager, outboxRepo, eventProcessor, nil)

	ctx := context.Background()
	event := pendingEvent("calendar.deleted", `{"calendar_id": "c1"}`)
	events := []*domain.OutboxEvent{event}

	processingError := errors.New("processing failed")

	// Setup expectations
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, config.BatchSize).Return(events, nil)
	eventProcessor.On("Process", ctx, event).Return(processingError)
	outboxRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.OutboxEvent) bool {
		return e.ID == event.ID && e.Retries == 1 && e.LastError != nil
	})).Return(nil)

	err := uc.ProcessEvents(ctx)

	assert.NoError(t, err) // processing failures are recorded on the event, not returned
	txManager.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	eventProcessor.AssertExpectations(t)
}

func TestOutboxUseCase_ProcessEvents_MaxRetriesReached(t *testing.T) {
	config := testConfig()
	txManager := &MockTxManager{}
	outboxRepo := &MockOutboxEventRepository{}
	eventProcessor := &MockEventProcessor{}

	uc := NewOutboxUseCase(config, txManager, outboxRepo, eventProcessor, nil)

	ctx := context.Background()
	event := pendingEvent("event.deleted", `{"event_id": "e1"}`)
	event.Retries = 2 // will become 3 after this attempt
	events := []*domain.OutboxEvent{event}

	processingError := errors.New("processing failed")

	// Setup expectations
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, config.BatchSize).Return(events, nil)
	eventProcessor.On("Process", ctx, event).Return(processingError)
	outboxRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.OutboxEvent) bool {
		return e.ID == event.ID &&
			e.Retries == 3 &&
			e.Status == domain.OutboxEventStatusFailed &&
			e.LastError != nil
	})).Return(nil)

	err := uc.ProcessEvents(ctx)

	assert.NoError(t, err)
	txManager.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	eventProcessor.AssertExpectations(t)
}

func TestOutboxUseCase_ProcessEvents_UpdateError(t *testing.T) {
	config := testConfig()
	txManager := &MockTxManager{}
	outboxRepo := &MockOutboxEventRepository{}
	eventProcessor := &MockEventProcessor{}

	uc := NewOutboxUseCase(config, txManager, outboxRepo, eventProcessor, nil)

	ctx := context.Background()
	event := pendingEvent("user.created", `{"user_id": "u1"}`)
	events := []*domain.OutboxEvent{event}

	updateError := errors.New("update failed")

	// Setup expectations
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	outboxRepo.On("GetPendingEvents", ctx, config.BatchSize).Return(events, nil)
	eventProcessor.On("Process", ctx, event).Return(nil)
	outboxRepo.On("Update", ctx, mock.AnythingOfType("*domain.OutboxEvent")).Return(updateError)

	err := uc.ProcessEvents(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "update failed")
	txManager.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	eventProcessor.AssertExpectations(t)
}

func TestDefaultEventProcessor_Process(t *testing.T) {
	processor := NewDefaultEventProcessor(nil)
	ctx := context.Background()

	t.Run("Success_KnownEventTypes", func(t *testing.T) {
		for _, eventType := range []string{
			"user.created",
			"calendar.created",
			"calendar.deleted",
			"event.created",
			"event.deleted",
		} {
			event := pendingEvent(eventType, `{"user_id": "u1"}`)
			assert.NoError(t, processor.Process(ctx, event))
		}
	})

	t.Run("Success_UnknownEventType", func(t *testing.T) {
		// Unknown events are logged as a warning and acknowledged.
		event := pendingEvent("unknown.event", `{"data": "test"}`)
		assert.NoError(t, processor.Process(ctx, event))
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		event := pendingEvent("calendar.created", `invalid json`)
		assert.Error(t, processor.Process(ctx, event))
	})
}
