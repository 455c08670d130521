package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/domain"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
)

// jwtTokenService implements TokenService using HMAC-SHA256 signed JWTs.
type jwtTokenService struct {
	secret     []byte
	expiration time.Duration
}

// Issue produces a signed JWT for the given user id.
func (s *jwtTokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate verifies the token and extracts the subject user id.
// All failure modes collapse into ErrInvalidToken.
func (s *jwtTokenService) Validate(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, authDomain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, authDomain.ErrInvalidToken
	}

	return userID, nil
}

// NewJWTTokenService creates a TokenService signing tokens with the given
// symmetric secret. An empty secret is a configuration fault and is
// rejected so the caller can fail startup.
func NewJWTTokenService(secret string, expiration time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("token signing secret must not be empty")
	}

	return &jwtTokenService{
		secret:     []byte(secret),
		expiration: expiration,
	}, nil
}
