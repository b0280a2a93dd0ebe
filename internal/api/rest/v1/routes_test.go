//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/sessions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/security"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "0b6c3b8e-8a55-4c1e-9a61-3f4a2f7e1d01"
	testOwnerID = "7d2f9c1a-55b0-4f6e-8c3d-2a9e4b6f0c02"
)

// testRouter bundles an engine wired with mocked services and real session infrastructure
type testRouter struct {
	engine             *gin.Engine
	userService        *MockUserService
	productService     *MockProductService
	transactionService *MockTransactionService
	issuer             sessions.TokenIssuer
	blacklist          *security.MemoryTokenBlacklist
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := security.NewJWTTokenIssuer("unit-test-secret", time.Hour)
	require.NoError(t, err)

	tr := &testRouter{
		engine:             gin.New(),
		userService:        new(MockUserService),
		productService:     new(MockProductService),
		transactionService: new(MockTransactionService),
		issuer:             issuer,
		blacklist:          security.NewMemoryTokenBlacklist(),
	}
	SetupRoutes(tr.engine, tr.userService, tr.productService, tr.transactionService, tr.issuer, tr.blacklist)
	return tr
}

func (tr *testRouter) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := tr.issuer.Issue(users.UserState{
		ID:       userID,
		Username: "tester",
		Palette:  users.DefaultPalette,
		Theme:    users.DefaultTheme,
	})
	require.NoError(t, err)
	return token
}

func TestSetupRoutes_Health(t *testing.T) {
	tr := newTestRouter(t)

	for _, path := range []string{"/", BasePath} {
		t.Run(path, func(t *testing.T) {
			w := testutil.PerformRequest(t, tr.engine, http.MethodGet, path, nil, "")

			assert.Equal(t, http.StatusOK, w.Code)
			var body StatusResponse
			testutil.DecodeJSON(t, w, &body)
			assert.Equal(t, "running", body.Status)
		})
	}
}

// TestSetupRoutes_GuardedRoutesRequireToken verifies that every user-only route rejects anonymous callers
func TestSetupRoutes_GuardedRoutesRequireToken(t *testing.T) {
	tr := newTestRouter(t)

	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "/api/v1/user"},
		{http.MethodGet, "/api/v1/user/transactions"},
		{http.MethodDelete, "/api/v1/user/logout"},
		{http.MethodPut, "/api/v1/user/theme"},
		{http.MethodPut, "/api/v1/user/palette"},
		{http.MethodGet, "/api/v1/product/own"},
		{http.MethodPost, "/api/v1/product"},
		{http.MethodPut, "/api/v1/product/some-id"},
		{http.MethodDelete, "/api/v1/product/some-id"},
		{http.MethodPost, "/api/v1/product/some-id/buy"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := testutil.PerformRequest(t, tr.engine, tt.method, tt.url, nil, "")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, []string{"Invalid token"}, testutil.ErrorMessages(t, w))
		})
	}

	tr.userService.AssertNotCalled(t, "GetByID")
	tr.productService.AssertNotCalled(t, "Create")
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	tr := newTestRouter(t)

	w := testutil.PerformRequest(t, tr.engine, http.MethodGet, "/api/v1/unknown", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
