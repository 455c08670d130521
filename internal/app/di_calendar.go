package app

import (
	"fmt"

	calendarHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/http"
	calendarRepository "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/repository"
	calendarUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/usecase"
)

// CalendarRepository returns the calendar repository based on database driver.
func (c *Container) CalendarRepository() (calendarUsecase.CalendarRepository, error) {
	var err error
	c.calendarRepoInit.Do(func() {
		c.calendarRepo, err = c.initCalendarRepository()
		if err != nil {
			c.initErrors["calendarRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["calendarRepo"]; exists {
		return nil, storedErr
	}
	return c.calendarRepo, nil
}

// CalendarUseCase returns the calendar use case.
func (c *Container) CalendarUseCase() (calendarUsecase.CalendarUseCase, error) {
	var err error
	c.calendarUseCaseInit.Do(func() {
		c.calendarUseCase, err = c.initCalendarUseCase()
		if err != nil {
			c.initErrors["calendarUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["calendarUseCase"]; exists {
		return nil, storedErr
	}
	return c.calendarUseCase, nil
}

// CalendarHandler returns the HTTP handler for calendar management.
func (c *Container) CalendarHandler() (*calendarHttp.CalendarHandler, error) {
	var err error
	c.calendarHandlerInit.Do(func() {
		c.calendarHandler, err = c.initCalendarHandler()
		if err != nil {
			c.initErrors["calendarHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["calendarHandler"]; exists {
		return nil, storedErr
	}
	return c.calendarHandler, nil
}

// initCalendarRepository creates the calendar repository based on the database driver.
func (c *Container) initCalendarRepository() (calendarUsecase.CalendarRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for calendar repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return calendarRepository.NewMySQLCalendarRepository(db), nil
	case "postgres":
		return calendarRepository.NewPostgreSQLCalendarRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCalendarUseCase creates the calendar use case with all its dependencies.
func (c *Container) initCalendarUseCase() (calendarUsecase.CalendarUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for calendar use case: %w", err)
	}

	calendarRepo, err := c.CalendarRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar repository for calendar use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for calendar use case: %w", err)
	}

	baseUseCase := calendarUsecase.NewCalendarUseCase(txManager, calendarRepo, outboxRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for calendar use case: %w", err)
		}
		return calendarUsecase.NewCalendarUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCalendarHandler creates the calendar HTTP handler.
func (c *Container) initCalendarHandler() (*calendarHttp.CalendarHandler, error) {
	calendarUseCase, err := c.CalendarUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar use case for calendar handler: %w", err)
	}

	return calendarHttp.NewCalendarHandler(calendarUseCase, c.Logger()), nil
}
