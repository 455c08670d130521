// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	authService "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/service"
	authUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/usecase"
	calendarHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/http"
	calendarUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/usecase"
	categoryHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/http"
	categoryUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/usecase"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/config"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	eventHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/event/http"
	eventUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/event/usecase"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/http"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/metrics"
	noteHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/note/http"
	noteUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/note/usecase"
	outboxRepository "github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/repository"
	outboxUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/usecase"
	userHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/user/http"
	userUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Auth services
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	blacklist       *authService.InMemoryTokenBlacklist

	// Repositories
	userRepo     userUsecase.UserRepository
	outboxRepo   outboxUsecase.OutboxEventRepository
	calendarRepo calendarUsecase.CalendarRepository
	eventRepo    eventUsecase.EventRepository
	noteRepo     noteUsecase.NoteRepository
	categoryRepo categoryUsecase.CategoryRepository

	// Use Cases
	authUseCase     authUsecase.UseCase
	userUseCase     userUsecase.UseCase
	calendarUseCase calendarUsecase.CalendarUseCase
	eventUseCase    eventUsecase.EventUseCase
	noteUseCase     noteUsecase.NoteUseCase
	categoryUseCase categoryUsecase.CategoryUseCase
	outboxUseCase   outboxUsecase.UseCase

	// Handlers
	authHandler     *authHttp.AuthHandler
	userHandler     *userHttp.UserHandler
	calendarHandler *calendarHttp.CalendarHandler
	eventHandler    *eventHttp.EventHandler
	noteHandler     *noteHttp.NoteHandler
	categoryHandler *categoryHttp.CategoryHandler

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Servers and Workers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	blacklistInit       sync.Once
	userRepoInit        sync.Once
	outboxRepoInit      sync.Once
	calendarRepoInit    sync.Once
	eventRepoInit       sync.Once
	noteRepoInit        sync.Once
	categoryRepoInit    sync.Once
	authUseCaseInit     sync.Once
	userUseCaseInit     sync.Once
	calendarUseCaseInit sync.Once
	eventUseCaseInit    sync.Once
	noteUseCaseInit     sync.Once
	categoryUseCaseInit sync.Once
	outboxUseCaseInit   sync.Once
	authHandlerInit     sync.Once
	userHandlerInit     sync.Once
	calendarHandlerInit sync.Once
	eventHandlerInit    sync.Once
	noteHandlerInit     sync.Once
	categoryHandlerInit sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// OutboxRepository returns the outbox event repository instance.
func (c *Container) OutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	var err error
	c.outboxRepoInit.Do(func() {
		c.outboxRepo, err = c.initOutboxRepository()
		if err != nil {
			c.initErrors["outboxRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxRepo"]; exists {
		return nil, storedErr
	}
	return c.outboxRepo, nil
}

// OutboxUseCase returns the outbox use case instance.
func (c *Container) OutboxUseCase() (outboxUsecase.UseCase, error) {
	var err error
	c.outboxUseCaseInit.Do(func() {
		c.outboxUseCase, err = c.initOutboxUseCase()
		if err != nil {
			c.initErrors["outboxUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxUseCase"]; exists {
		return nil, storedErr
	}
	return c.outboxUseCase, nil
}

// HTTPServer returns the HTTP server instance with all routes configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP server if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	// Shutdown metrics server if initialized
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Stop the blacklist sweeper if initialized
	if c.blacklist != nil {
		c.blacklist.Stop()
	}

	// Shutdown metrics provider if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initOutboxRepository creates the outbox event repository instance.
func (c *Container) initOutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return outboxRepository.NewMySQLOutboxEventRepository(db), nil
	case "postgres":
		return outboxRepository.NewPostgreSQLOutboxEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOutboxUseCase creates the outbox use case with all its dependencies.
func (c *Container) initOutboxUseCase() (outboxUsecase.UseCase, error) {
	logger := c.Logger()

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
	}

	useCaseConfig := outboxUsecase.Config{
		Interval:      c.config.WorkerInterval,
		BatchSize:     c.config.WorkerBatchSize,
		MaxRetries:    c.config.WorkerMaxRetries,
		RetryInterval: c.config.WorkerRetryInterval,
	}

	eventProcessor := outboxUsecase.NewDefaultEventProcessor(logger)
	useCase := outboxUsecase.NewOutboxUseCase(useCaseConfig, txManager, outboxRepo, eventProcessor, logger)

	return useCase, nil
}

// initHTTPServer creates the HTTP server with all routes and middleware configured.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	authHandler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for http server: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}

	calendarHandler, err := c.CalendarHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar handler for http server: %w", err)
	}

	eventHandler, err := c.EventHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get event handler for http server: %w", err)
	}

	noteHandler, err := c.NoteHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get note handler for http server: %w", err)
	}

	categoryHandler, err := c.CategoryHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get category handler for http server: %w", err)
	}

	var metricsMiddleware gin.HandlerFunc
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		metricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(http.RouterConfig{
		Config:            c.config,
		TokenService:      tokenService,
		Blacklist:         c.Blacklist(),
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		CalendarHandler:   calendarHandler,
		EventHandler:      eventHandler,
		NoteHandler:       noteHandler,
		CategoryHandler:   categoryHandler,
		MetricsMiddleware: metricsMiddleware,
	})

	return server, nil
}
