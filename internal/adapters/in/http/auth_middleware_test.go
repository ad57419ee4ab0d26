package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapter "radiology/internal/adapters/in/http"
	"radiology/internal/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func signedToken(t *testing.T, secret []byte, userID int64, username string, roles []string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"roles":    roles,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

// echoWithPrincipalProbe wires the middleware in front of a handler that
// records the principal it observed.
func echoWithPrincipalProbe(captured *auth.Principal, found *bool) *echo.Echo {
	e := echo.New()
	e.Use(adapter.NewAuthMiddleware(testSecret))
	e.GET("/probe", func(c echo.Context) error {
		p, ok := auth.FromContext(c.Request().Context())
		*captured = p
		*found = ok
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestAuthMiddleware_ValidToken_AttachesPrincipal(t *testing.T) {
	var principal auth.Principal
	var found bool
	e := echoWithPrincipalProbe(&principal, &found)

	token := signedToken(t, testSecret, 3, "scheduler", []string{"scheduler", "referring_physician"})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, int64(3), principal.UserID)
	assert.Equal(t, "scheduler", principal.Username)
	assert.True(t, principal.Capabilities.Scheduler)
	assert.True(t, principal.Capabilities.Referring)
	assert.False(t, principal.Capabilities.Performing)
}

func TestAuthMiddleware_NoHeader_PassesThroughUnauthenticated(t *testing.T) {
	var principal auth.Principal
	var found bool
	e := echoWithPrincipalProbe(&principal, &found)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, found)
}

func TestAuthMiddleware_WrongSecret_Rejected(t *testing.T) {
	var principal auth.Principal
	var found bool
	e := echoWithPrincipalProbe(&principal, &found)

	token := signedToken(t, []byte("other-secret"), 3, "scheduler", []string{"scheduler"})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuthMiddleware_MalformedHeader_Rejected(t *testing.T) {
	var principal auth.Principal
	var found bool
	e := echoWithPrincipalProbe(&principal, &found)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuthMiddleware_ExpiredToken_Rejected(t *testing.T) {
	var principal auth.Principal
	var found bool
	e := echoWithPrincipalProbe(&principal, &found)

	claims := jwt.MapClaims{
		"user_id":  int64(3),
		"username": "scheduler",
		"roles":    []string{"scheduler"},
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}
