package app

import (
	"fmt"

	categoryHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/http"
	categoryRepository "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/repository"
	categoryUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/usecase"
)

// CategoryRepository returns the category repository based on database driver.
func (c *Container) CategoryRepository() (categoryUsecase.CategoryRepository, error) {
	var err error
	c.categoryRepoInit.Do(func() {
		c.categoryRepo, err = c.initCategoryRepository()
		if err != nil {
			c.initErrors["categoryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryRepo"]; exists {
		return nil, storedErr
	}
	return c.categoryRepo, nil
}

// CategoryUseCase returns the category use case.
func (c *Container) CategoryUseCase() (categoryUsecase.CategoryUseCase, error) {
	var err error
	c.categoryUseCaseInit.Do(func() {
		c.categoryUseCase, err = c.initCategoryUseCase()
		if err != nil {
			c.initErrors["categoryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.categoryUseCase, nil
}

// CategoryHandler returns the HTTP handler for category management.
func (c *Container) CategoryHandler() (*categoryHttp.CategoryHandler, error) {
	var err error
	c.categoryHandlerInit.Do(func() {
		c.categoryHandler, err = c.initCategoryHandler()
		if err != nil {
			c.initErrors["categoryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryHandler"]; exists {
		return nil, storedErr
	}
	return c.categoryHandler, nil
}

// initCategoryRepository creates the category repository based on the database driver.
func (c *Container) initCategoryRepository() (categoryUsecase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return categoryRepository.NewMySQLCategoryRepository(db), nil
	case "postgres":
		return categoryRepository.NewPostgreSQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCategoryUseCase creates the category use case with all its dependencies.
func (c *Container) initCategoryUseCase() (categoryUsecase.CategoryUseCase, error) {
	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for category use case: %w", err)
	}

	baseUseCase := categoryUsecase.NewCategoryUseCase(categoryRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for category use case: %w", err)
		}
		return categoryUsecase.NewCategoryUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCategoryHandler creates the category HTTP handler.
func (c *Container) initCategoryHandler() (*categoryHttp.CategoryHandler, error) {
	categoryUseCase, err := c.CategoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get category use case for category handler: %w", err)
	}

	return categoryHttp.NewCategoryHandler(categoryUseCase, c.Logger()), nil
}
