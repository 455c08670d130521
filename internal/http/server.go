// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	authService "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/service"
	calendarHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/http"
	categoryHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/category/http"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/config"
	eventHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/event/http"
	noteHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/note/http"
	userHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/user/http"
)

// Server represents the HTTP server
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server. SetupRouter must be called before
// Start to register routes and middleware.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig holds everything SetupRouter needs to build the route tree.
type RouterConfig struct {
	Config *config.Config

	TokenService authService.TokenService
	Blacklist    authService.TokenBlacklist

	AuthHandler     *authHttp.AuthHandler
	UserHandler     *userHttp.UserHandler
	CalendarHandler *calendarHttp.CalendarHandler
	EventHandler    *eventHttp.EventHandler
	NoteHandler     *noteHttp.NoteHandler
	CategoryHandler *categoryHttp.CategoryHandler

	// MetricsMiddleware is optional; nil disables per-request metrics.
	MetricsMiddleware gin.HandlerFunc
}

// SetupRouter configures middleware and registers all application routes.
func (s *Server) SetupRouter(rc RouterConfig) {
	cfg := rc.Config
	router := gin.New()

	// Rate limiting runs before everything else so throttled clients
	// cost as little as possible.
	if cfg.RateLimitEnabled {
		router.Use(authHttp.RateLimitMiddleware(
			cfg.RateLimitCapacity,
			cfg.RateLimitWindow,
			s.logger,
		))
	}

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if rc.MetricsMiddleware != nil {
		router.Use(rc.MetricsMiddleware)
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Anonymous authentication routes. Logout reads the Authorization
	// header itself, so it stays outside the authenticated group.
	authentication := v1.Group("/authentication")
	authentication.POST("/register", rc.AuthHandler.RegisterHandler)
	authentication.POST("/login", rc.AuthHandler.LoginHandler)
	authentication.POST("/logout", rc.AuthHandler.LogoutHandler)

	// Everything below requires a valid, non-revoked bearer token.
	authenticated := v1.Group("")
	authenticated.Use(authHttp.AuthenticationMiddleware(rc.TokenService, rc.Blacklist, s.logger))

	authenticated.GET("/users/me", rc.UserHandler.MeHandler)

	calendars := authenticated.Group("/calendars")
	calendars.POST("", rc.CalendarHandler.CreateHandler)
	calendars.GET("", rc.CalendarHandler.ListHandler)
	calendars.GET("/:id", rc.CalendarHandler.GetHandler)
	calendars.PUT("/:id", rc.CalendarHandler.UpdateHandler)
	calendars.DELETE("/:id", rc.CalendarHandler.DeleteHandler)

	events := authenticated.Group("/events")
	events.POST("", rc.EventHandler.CreateHandler)
	events.GET("", rc.EventHandler.ListHandler)
	events.GET("/:id", rc.EventHandler.GetHandler)
	events.PUT("/:id", rc.EventHandler.UpdateHandler)
	events.DELETE("/:id", rc.EventHandler.DeleteHandler)

	notes := authenticated.Group("/notes")
	notes.POST("", rc.NoteHandler.CreateHandler)
	notes.GET("", rc.NoteHandler.ListHandler)
	notes.GET("/:id", rc.NoteHandler.GetHandler)
	notes.PUT("/:id", rc.NoteHandler.UpdateHandler)
	notes.DELETE("/:id", rc.NoteHandler.DeleteHandler)

	categories := authenticated.Group("/categories")
	categories.POST("", rc.CategoryHandler.CreateHandler)
	categories.GET("", rc.CategoryHandler.ListHandler)
	categories.GET("/:id", rc.CategoryHandler.GetHandler)
	categories.PUT("/:id", rc.CategoryHandler.UpdateHandler)
	categories.DELETE("/:id", rc.CategoryHandler.DeleteHandler)

	s.router = router
}

// GetHandler returns the configured router as an http.Handler for testing.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The
// database is the only hard dependency.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
