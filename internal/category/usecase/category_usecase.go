// Package usecase implements the category business logic.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
)

// defaultCategoryColor is applied when a category is created without an
// explicit color.
const defaultCategoryColor = "#9E9E9E"

// CategoryRepository defines the category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryUseCase defines the interface for category business logic. Every
// operation is scoped to the calling user.
type CategoryUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, input *domain.CreateCategoryInput) (*domain.Category, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, input *domain.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// categoryUseCase implements the CategoryUseCase interface.
type categoryUseCase struct {
	categoryRepo CategoryRepository
}

// Create persists a new category for the user. A duplicate name for the
// same user yields ErrCategoryAlreadyExists.
func (u *categoryUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input *domain.CreateCategoryInput,
) (*domain.Category, error) {
	color := input.Color
	if color == "" {
		color = defaultCategoryColor
	}

	category := &domain.Category{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Name:      input.Name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Get retrieves one of the user's categories.
func (u *categoryUseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error) {
	return u.categoryRepo.GetByID(ctx, userID, id)
}

// List retrieves the user's categories with pagination.
func (u *categoryUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Category, error) {
	return u.categoryRepo.List(ctx, userID, offset, limit)
}

// Update applies the non-nil input fields to one of the user's categories.
func (u *categoryUseCase) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	input *domain.UpdateCategoryInput,
) (*domain.Category, error) {
	category, err := u.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	category.UpdatedAt = time.Now().UTC()

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes one of the user's categories. Events and notes labeled
// with it keep existing with the reference cleared by the database.
func (u *categoryUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return u.categoryRepo.Delete(ctx, userID, id)
}

// NewCategoryUseCase creates a new category use case instance.
func NewCategoryUseCase(categoryRepo CategoryRepository) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
	}
}
