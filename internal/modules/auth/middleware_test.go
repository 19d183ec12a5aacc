package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocklane/stocklane-backend/internal/modules/user"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role user.Role, secret string) string {
	t.Helper()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "user-1",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Email: "someone@example.com",
		Role:  string(role),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func guardedRequest(t *testing.T, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	var sawIdentity *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawIdentity, _ = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(DefaultPolicy(), testSecret)(next)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		require.NotNil(t, sawIdentity, "identity must reach the handler")
	}
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		token := signToken(t, user.RoleAdmin, testSecret)
		rec := guardedRequest(t, "/api/v1/products", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		rec := guardedRequest(t, "/api/v1/products", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with wrong key is unauthorized", func(t *testing.T) {
		token := signToken(t, user.RoleAdmin, "other-secret")
		rec := guardedRequest(t, "/api/v1/products", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		claims := &Claims{
			StandardClaims: jwt.StandardClaims{
				Subject:   "user-1",
				ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			},
			Role: string(user.RoleAdmin),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		rec := guardedRequest(t, "/api/v1/products", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("role outside the route policy is forbidden", func(t *testing.T) {
		token := signToken(t, user.RoleSales, testSecret)
		rec := guardedRequest(t, "/api/v1/products", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = guardedRequest(t, "/api/v1/sales", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
