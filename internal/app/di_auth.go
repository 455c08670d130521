package app

import (
	"fmt"
	"time"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	authService "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/service"
	authUsecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/usecase"
)

// blacklistSweepInterval controls how often expired revocations are removed.
const blacklistSweepInterval = time.Minute

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the token service used to issue and validate bearer tokens.
// Fails when no signing secret is configured; the server must not run with
// unsigned tokens.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// Blacklist returns the in-memory token revocation list.
// The container owns the instance so Shutdown can stop its sweeper.
func (c *Container) Blacklist() authService.TokenBlacklist {
	c.blacklistInit.Do(func() {
		c.blacklist = authService.NewInMemoryTokenBlacklist(
			c.config.AuthTokenExpiration,
			blacklistSweepInterval,
		)
	})
	return c.blacklist
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUsecase.UseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the HTTP handler for registration, login, and logout.
func (c *Container) AuthHandler() (*authHttp.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initTokenService creates the JWT token service from the configured secret.
func (c *Container) initTokenService() (authService.TokenService, error) {
	tokenService, err := authService.NewJWTTokenService(
		c.config.AuthTokenSecret,
		c.config.AuthTokenExpiration,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	return tokenService, nil
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for auth use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	return authUsecase.NewAuthUseCase(
		txManager,
		userRepo,
		outboxRepo,
		c.PasswordService(),
		tokenService,
		c.Blacklist(),
	), nil
}

// initAuthHandler creates the authentication HTTP handler.
func (c *Container) initAuthHandler() (*authHttp.AuthHandler, error) {
	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	return authHttp.NewAuthHandler(authUseCase, c.Logger()), nil
}
