// Package usecase implements the authentication business logic: registration,
// login, and logout orchestration over the credential store, password hashing,
// token issuance, and the revocation list.
package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/domain"
	authService "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/service"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/database"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	outboxDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/outbox/domain"
	userDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/user/domain"
)

// bearerPrefix is the expected Authorization header scheme, matched
// case-insensitively.
const bearerPrefix = "bearer "

// UserRepository defines the user persistence operations needed by authentication.
type UserRepository interface {
	Create(ctx context.Context, user *userDomain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// OutboxEventRepository defines the outbox operations needed by authentication.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// UseCase defines the interface for authentication business logic.
type UseCase interface {
	// Register creates a new account. Duplicate username or email yields
	// ErrUserAlreadyExists.
	Register(ctx context.Context, input *authDomain.RegisterInput) (*userDomain.User, error)

	// Login verifies credentials and issues a bearer token. Unknown
	// username and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, input *authDomain.LoginInput) (string, error)

	// Logout revokes the token carried in the Authorization header value.
	// A missing header or missing Bearer scheme yields
	// ErrMalformedAuthorizationHeader. Revoking twice is a no-op.
	Logout(authorizationHeader string) error
}

// authUseCase implements the UseCase interface.
type authUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	outboxRepo      OutboxEventRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	blacklist       authService.TokenBlacklist
}

// Register creates a new account after checking username and email uniqueness.
// The user row and its user.created outbox event commit in one transaction.
func (u *authUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*userDomain.User, error) {
	// Check username uniqueness first, then email, so the conflict error
	// is stable regardless of which field collides.
	if _, err := u.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, userDomain.ErrUserAlreadyExists
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, userDomain.ErrUserAlreadyExists
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &userDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		event, err := newUserCreatedEvent(user)
		if err != nil {
			return err
		}

		return u.outboxRepo.Create(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a token for the account.
func (u *authUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (string, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			// Collapse "no such user" into the same error as a wrong
			// password to prevent username enumeration.
			return "", authDomain.ErrInvalidCredentials
		}
		return "", err
	}

	if !u.passwordService.Compare(input.Password, user.Password) {
		return "", authDomain.ErrInvalidCredentials
	}

	return u.tokenService.Issue(user.ID)
}

// Logout extracts the bearer token from the Authorization header value and
// adds it to the revocation list.
func (u *authUseCase) Logout(authorizationHeader string) error {
	if len(authorizationHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authorizationHeader[:len(bearerPrefix)], bearerPrefix) {
		return authDomain.ErrMalformedAuthorizationHeader
	}

	token := strings.TrimSpace(authorizationHeader[len(bearerPrefix):])
	if token == "" {
		return authDomain.ErrMalformedAuthorizationHeader
	}

	u.blacklist.Invalidate(token)
	return nil
}

// newUserCreatedEvent builds the outbox event recorded alongside registration.
func newUserCreatedEvent(user *userDomain.User) (*outboxDomain.OutboxEvent, error) {
	payload, err := json.Marshal(map[string]string{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user.created payload")
	}

	return outboxDomain.NewPendingEvent("user.created", string(payload)), nil
}

// NewAuthUseCase creates a new authentication use case instance.
func NewAuthUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	outboxRepo OutboxEventRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	blacklist authService.TokenBlacklist,
) UseCase {
	return &authUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		outboxRepo:      outboxRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		blacklist:       blacklist,
	}
}
