package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planilla-api/pkg/token"
)

func newProtectedApp(maker *token.Maker) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(maker), func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*token.Claims)
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	return app
}

func TestAuthMiddlewareNoTokenIsTerminal(t *testing.T) {
	maker := token.NewMaker("test-secret", time.Hour)
	app := newProtectedApp(maker)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsNonBearerScheme(t *testing.T) {
	maker := token.NewMaker("test-secret", time.Hour)
	app := newProtectedApp(maker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	maker := token.NewMaker("test-secret", time.Hour)
	app := newProtectedApp(maker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	maker := token.NewMaker("test-secret", time.Hour)
	// Same secret, already-elapsed lifetime: the token decrypts fine but
	// fails the expiry check.
	expiredMaker := token.NewMaker("test-secret", -time.Minute)
	expired, err := expiredMaker.GenerateToken(7)
	require.NoError(t, err)

	app := newProtectedApp(maker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareRejectsForeignSecret(t *testing.T) {
	maker := token.NewMaker("test-secret", time.Hour)
	foreign := token.NewMaker("other-secret", time.Hour)
	tok, err := foreign.GenerateToken(7)
	require.NoError(t, err)

	app := newProtectedApp(maker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareForwardsValidToken(t *testing.T) {
	maker := token.NewMaker("test-secret", time.Hour)
	tok, err := maker.GenerateToken(42)
	require.NoError(t, err)

	app := newProtectedApp(maker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
