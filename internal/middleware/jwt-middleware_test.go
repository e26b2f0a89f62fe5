package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-test-signing-secret-0123")

func protectedEcho(t *testing.T, captured **utils.Claims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	var claims *utils.Claims
	handler := JWTAuth(testSecret)(protectedEcho(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
	assert.Contains(t, rec.Body.String(), "Missing Authorization header")
}

func TestJWTAuth_NotBearerScheme(t *testing.T) {
	var claims *utils.Claims
	handler := JWTAuth(testSecret)(protectedEcho(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	var claims *utils.Claims
	handler := JWTAuth(testSecret)(protectedEcho(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer this-is-not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateSign(utils.NewUserClaims("user-1", "ADMIN", nil, -time.Minute), testSecret)
	require.NoError(t, err)

	var claims *utils.Claims
	handler := JWTAuth(testSecret)(protectedEcho(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, err := utils.GenerateSign(utils.NewUserClaims("user-1", "ADMIN", []string{"users:read"}, time.Hour), testSecret)
	require.NoError(t, err)

	var claims *utils.Claims
	handler := JWTAuth(testSecret)(protectedEcho(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims, "claims should be attached to the request context")
	assert.Equal(t, "user-1", claims.Sub)
	assert.Equal(t, "ADMIN", claims.Role)
}
