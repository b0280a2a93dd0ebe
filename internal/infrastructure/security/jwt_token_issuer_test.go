//go:build unit
// +build unit

package security

import (
	"testing"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func testState() users.UserState {
	return users.UserState{
		ID:       uuid.NewString(),
		Username: "ryota",
		Palette:  users.PaletteIndigo,
		Theme:    users.ThemeDark,
	}
}

func TestJWTTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := NewJWTTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	state := testState()
	token, err := issuer.Issue(state)
	require.NoError(t, err)

	verified, expiresAt, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, state, verified)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
}

func TestJWTTokenIssuer_TokensAreUnique(t *testing.T) {
	issuer, err := NewJWTTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	state := testState()
	first, err := issuer.Issue(state)
	require.NoError(t, err)
	second, err := issuer.Issue(state)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTTokenIssuer_RejectsExpired(t *testing.T) {
	now := time.Now()
	issuer, err := newJWTTokenIssuer(testSecret, time.Minute, func() time.Time { return now })
	require.NoError(t, err)

	token, err := issuer.Issue(testState())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, _, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTTokenIssuer_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewJWTTokenIssuer("another-secret", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(testState())
	require.NoError(t, err)

	_, _, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTTokenIssuer_RejectsGarbageAndNone(t *testing.T) {
	issuer, err := NewJWTTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "not.a.token", "abc"} {
		_, _, err := issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"_id": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = issuer.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTTokenIssuer_InvalidSettings(t *testing.T) {
	_, err := NewJWTTokenIssuer("", time.Hour)
	assert.Error(t, err)

	_, err = NewJWTTokenIssuer(testSecret, 0)
	assert.Error(t, err)
}
