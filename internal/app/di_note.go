package app

import (
	"fmt"

	noteHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/note/http"
	noteRepository "github.com/0zzz7y/open-calendar-backend-sub001/internal/note/repository"
	noteUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/note/usecase"
)

// NoteRepository returns the note repository based on database driver.
func (c *Container) NoteRepository() (noteUsecase.NoteRepository, error) {
	var err error
	c.noteRepoInit.Do(func() {
		c.noteRepo, err = c.initNoteRepository()
		if err != nil {
			c.initErrors["noteRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteRepo"]; exists {
		return nil, storedErr
	}
	return c.noteRepo, nil
}

// NoteUseCase returns the note use case.
func (c *Container) NoteUseCase() (noteUsecase.NoteUseCase, error) {
	var err error
	c.noteUseCaseInit.Do(func() {
		c.noteUseCase, err = c.initNoteUseCase()
		if err != nil {
			c.initErrors["noteUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteUseCase"]; exists {
		return nil, storedErr
	}
	return c.noteUseCase, nil
}

// NoteHandler returns the HTTP handler for note management.
func (c *Container) NoteHandler() (*noteHttp.NoteHandler, error) {
	var err error
	c.noteHandlerInit.Do(func() {
		c.noteHandler, err = c.initNoteHandler()
		if err != nil {
			c.initErrors["noteHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["noteHandler"]; exists {
		return nil, storedErr
	}
	return c.noteHandler, nil
}

// initNoteRepository creates the note repository based on the database driver.
func (c *Container) initNoteRepository() (noteUsecase.NoteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for note repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return noteRepository.NewMySQLNoteRepository(db), nil
	case "postgres":
		return noteRepository.NewPostgreSQLNoteRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initNoteUseCase creates the note use case with all its dependencies.
func (c *Container) initNoteUseCase() (noteUsecase.NoteUseCase, error) {
	noteRepo, err := c.NoteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get note repository for note use case: %w", err)
	}

	calendarRepo, err := c.CalendarRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar repository for note use case: %w", err)
	}

	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for note use case: %w", err)
	}

	baseUseCase := noteUsecase.NewNoteUseCase(noteRepo, calendarRepo, categoryRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for note use case: %w", err)
		}
		return noteUsecase.NewNoteUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initNoteHandler creates the note HTTP handler.
func (c *Container) initNoteHandler() (*noteHttp.NoteHandler, error) {
	noteUseCase, err := c.NoteUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get note use case for note handler: %w", err)
	}

	return noteHttp.NewNoteHandler(noteUseCase, c.Logger()), nil
}
