package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planilla-api/models"
	"planilla-api/pkg/password"
	"planilla-api/pkg/token"
)

func newAuthApp(repo *stubUserRepo) (*fiber.App, *token.Maker) {
	maker := token.NewMaker("test-secret", time.Hour)
	handler := NewAuthHandler(repo, maker)

	app := fiber.New()
	app.Post("/auth/register", handler.Register)
	app.Post("/auth/login", handler.Login)
	return app, maker
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := &stubUserRepo{
		registerUserFn: func(ctx context.Context, username, email, passwordHash string) (int64, error) {
			assert.Equal(t, "jdoe", username)
			assert.Equal(t, "jdoe@example.com", email)
			assert.True(t, password.CheckPasswordHash("Sup3rSecret", passwordHash))
			return 42, nil
		},
	}
	app, maker := newAuthApp(repo)

	resp, body := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"jdoe","email":"jdoe@example.com","password":"Sup3rSecret"}`))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "token")

	var result struct {
		Token string `json:"token"`
	}
	decodeJSON(t, body, &result)
	claims, err := maker.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	repo := &stubUserRepo{
		registerUserFn: func(ctx context.Context, username, email, passwordHash string) (int64, error) {
			return 0, &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
		},
	}
	app, _ := newAuthApp(repo)

	resp, body := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"jdoe","email":"jdoe@example.com","password":"Sup3rSecret"}`))

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "Email already registered")
}

func TestRegisterValidationSkipsDatabase(t *testing.T) {
	repo := &stubUserRepo{}
	app, _ := newAuthApp(repo)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"jdoe","password":"Sup3rSecret"}`))

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.calls)
}

func TestLoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	hash, err := password.HashPassword("RightPassword1")
	require.NoError(t, err)

	unknownEmail := &stubUserRepo{
		authenticateUserFn: func(ctx context.Context, email string) (*models.UserCredential, error) {
			return nil, nil
		},
	}
	wrongPassword := &stubUserRepo{
		authenticateUserFn: func(ctx context.Context, email string) (*models.UserCredential, error) {
			return &models.UserCredential{UserID: 7, PasswordHash: hash}, nil
		},
	}

	appUnknown, _ := newAuthApp(unknownEmail)
	appWrong, _ := newAuthApp(wrongPassword)

	respUnknown, bodyUnknown := doRequest(t, appUnknown, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"WrongPassword1"}`))
	respWrong, bodyWrong := doRequest(t, appWrong, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"jdoe@example.com","password":"WrongPassword1"}`))

	require.Equal(t, http.StatusBadRequest, respUnknown.StatusCode)
	require.Equal(t, http.StatusBadRequest, respWrong.StatusCode)
	assert.Equal(t, bodyUnknown, bodyWrong)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := password.HashPassword("RightPassword1")
	require.NoError(t, err)

	repo := &stubUserRepo{
		authenticateUserFn: func(ctx context.Context, email string) (*models.UserCredential, error) {
			assert.Equal(t, "jdoe@example.com", email)
			return &models.UserCredential{UserID: 7, PasswordHash: hash}, nil
		},
	}
	app, maker := newAuthApp(repo)

	resp, body := doRequest(t, app, jsonRequest(http.MethodPost, "/auth/login",
		`{"email":"jdoe@example.com","password":"RightPassword1"}`))

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	decodeJSON(t, body, &result)
	claims, err := maker.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}
