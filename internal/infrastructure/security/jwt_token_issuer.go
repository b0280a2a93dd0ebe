package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/sessions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for tokens that are malformed, forged or expired.
var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	UserID   string `json:"_id"`
	Username string `json:"username"`
	Palette  string `json:"palette"`
	Theme    string `json:"theme"`
	jwt.RegisteredClaims
}

type jwtTokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokenIssuer creates a TokenIssuer that signs HS256 tokens valid for ttl.
func NewJWTTokenIssuer(secret string, ttl time.Duration) (sessions.TokenIssuer, error) {
	return newJWTTokenIssuer(secret, ttl, time.Now)
}

func newJWTTokenIssuer(secret string, ttl time.Duration, now func() time.Time) (*jwtTokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &jwtTokenIssuer{secret: []byte(secret), ttl: ttl, now: now}, nil
}

func (i *jwtTokenIssuer) Issue(state users.UserState) (string, error) {
	issuedAt := i.now()
	claims := sessionClaims{
		UserID:   state.ID,
		Username: state.Username,
		Palette:  string(state.Palette),
		Theme:    string(state.Theme),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   state.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (i *jwtTokenIssuer) Verify(token string) (users.UserState, time.Time, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return users.UserState{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return users.UserState{}, time.Time{}, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	state := users.UserState{
		ID:       claims.UserID,
		Username: claims.Username,
		Palette:  users.Palette(claims.Palette),
		Theme:    users.Theme(claims.Theme),
	}
	return state, claims.ExpiresAt.Time, nil
}
