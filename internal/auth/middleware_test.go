package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-platform-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &auth.Claims{
		Subject:  "user-1",
		Email:    "admin@acme.example.com",
		TenantID: uuid.New().String(),
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := auth.NewMiddleware(testSecret)
	router := gin.New()
	router.Use(m.RequireAuth())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject":   c.GetString("subject"),
			"tenant_id": c.GetString("tenant_id"),
			"role":      c.GetString("role"),
		})
	})
	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	router := setupRouter()
	token := signToken(t, testSecret, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "admin")
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	router := setupRouter()
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	router := setupRouter()
	token := signToken(t, testSecret, time.Now().Add(-time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestParseToken_RoundTrip(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(time.Hour))

	claims, err := auth.ParseToken(token, testSecret)

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin@acme.example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.TenantID)
}
