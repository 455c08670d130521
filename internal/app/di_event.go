package app

import (
	"fmt"

	eventHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/event/http"
	eventRepository "github.com/0zzz7y/open-calendar-backend-sub001/internal/event/repository"
	eventUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/event/usecase"
)

// EventRepository returns the event repository based on database driver.
func (c *Container) EventRepository() (eventUsecase.EventRepository, error) {
	var err error
	c.eventRepoInit.Do(func() {
		c.eventRepo, err = c.initEventRepository()
		if err != nil {
			c.initErrors["eventRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventRepo"]; exists {
		return nil, storedErr
	}
	return c.eventRepo, nil
}

// EventUseCase returns the event use case.
func (c *Container) EventUseCase() (eventUsecase.EventUseCase, error) {
	var err error
	c.eventUseCaseInit.Do(func() {
		c.eventUseCase, err = c.initEventUseCase()
		if err != nil {
			c.initErrors["eventUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventUseCase"]; exists {
		return nil, storedErr
	}
	return c.eventUseCase, nil
}

// EventHandler returns the HTTP handler for event management.
func (c *Container) EventHandler() (*eventHttp.EventHandler, error) {
	var err error
	c.eventHandlerInit.Do(func() {
		c.eventHandler, err = c.initEventHandler()
		if err != nil {
			c.initErrors["eventHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventHandler"]; exists {
		return nil, storedErr
	}
	return c.eventHandler, nil
}

// initEventRepository creates the event repository based on the database driver.
func (c *Container) initEventRepository() (eventUsecase.EventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for event repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return eventRepository.NewMySQLEventRepository(db), nil
	case "postgres":
		return eventRepository.NewPostgreSQLEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initEventUseCase creates the event use case with all its dependencies.
// Calendar and category repositories back the ownership checks on event
// references.
func (c *Container) initEventUseCase() (eventUsecase.EventUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for event use case: %w", err)
	}

	eventRepo, err := c.EventRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get event repository for event use case: %w", err)
	}

	calendarRepo, err := c.CalendarRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar repository for event use case: %w", err)
	}

	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for event use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for event use case: %w", err)
	}

	baseUseCase := eventUsecase.NewEventUseCase(txManager, eventRepo, calendarRepo, categoryRepo, outboxRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for event use case: %w", err)
		}
		return eventUsecase.NewEventUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initEventHandler creates the event HTTP handler.
func (c *Container) initEventHandler() (*eventHttp.EventHandler, error) {
	eventUseCase, err := c.EventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get event use case for event handler: %w", err)
	}

	return eventHttp.NewEventHandler(eventUseCase, c.Logger()), nil
}
