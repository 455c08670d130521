package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/metrics"
)

// categoryUseCaseWithMetrics decorates CategoryUseCase with metrics instrumentation.
type categoryUseCaseWithMetrics struct {
	next    CategoryUseCase
	metrics metrics.BusinessMetrics
}

// NewCategoryUseCaseWithMetrics wraps a CategoryUseCase with metrics recording.
func NewCategoryUseCaseWithMetrics(useCase CategoryUseCase, m metrics.BusinessMetrics) CategoryUseCase {
	return &categoryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *categoryUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "category", operation, status)
	c.metrics.RecordDuration(ctx, "category", operation, time.Since(start), status)
}

// Create records metrics for category creation operations.
func (c *categoryUseCaseWithMetrics) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateCategoryInput,
) (*domain.Category, error) {
	start := time.Now()
	category, err := c.next.Create(ctx, userID, input)
	c.record(ctx, "category_create", start, err)
	return category, err
}

// Get records metrics for category retrieval operations.
func (c *categoryUseCaseWithMetrics) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error) {
	start := time.Now()
	category, err := c.next.Get(ctx, userID, id)
	c.record(ctx, "category_get", start, err)
	return category, err
}

// List records metrics for category listing operations.
func (c *categoryUseCaseWithMetrics) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Category, error) {
	start := time.Now()
	categories, err := c.next.List(ctx, userID, offset, limit)
	c.record(ctx, "category_list", start, err)
	return categories, err
}

// Update records metrics for category update operations.
func (c *categoryUseCaseWithMetrics) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateCategoryInput,
) (*domain.Category, error) {
	start := time.Now()
	category, err := c.next.Update(ctx, userID, id, input)
	c.record(ctx, "category_update", start, err)
	return category, err
}

// Delete records metrics for category deletion operations.
func (c *categoryUseCaseWithMetrics) Delete(ctx context.Context, userID, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, userID, id)
	c.record(ctx, "category_delete", start, err)
	return err
}
