package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planilla-api/models"
)

func newCollaboratorApp(repo *stubCollabRepo) *fiber.App {
	handler := NewCollaboratorHandler(repo)

	app := fiber.New()
	app.Get("/collaborator", handler.GetCollaboratorName)
	app.Get("/collaborator/badge", handler.GetCollaboratorBadge)
	return app
}

func TestGetCollaboratorNameRequiresCardID(t *testing.T) {
	repo := &stubCollabRepo{}
	app := newCollaboratorApp(repo)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/collaborator", nil))

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "card ID must be provided")
	assert.Zero(t, repo.calls)
}

func TestGetCollaboratorNameUnknown(t *testing.T) {
	repo := &stubCollabRepo{
		getCollaboratorFn: func(ctx context.Context, cardID int) (models.Row, error) {
			return nil, nil
		},
	}
	app := newCollaboratorApp(repo)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/collaborator?cardID=404404", nil))

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "The employee does not exist")
}

func TestGetCollaboratorNameFound(t *testing.T) {
	repo := &stubCollabRepo{
		getCollaboratorFn: func(ctx context.Context, cardID int) (models.Row, error) {
			assert.Equal(t, 123456, cardID)
			return models.Row{"nombre": "Ana Morales"}, nil
		},
	}
	app := newCollaboratorApp(repo)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/collaborator?cardID=123456", nil))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Ana Morales")
}

func TestGetCollaboratorBadgeReturnsPNG(t *testing.T) {
	repo := &stubCollabRepo{
		getCollaboratorFn: func(ctx context.Context, cardID int) (models.Row, error) {
			return models.Row{"nombre": "Ana Morales"}, nil
		},
	}
	app := newCollaboratorApp(repo)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/collaborator/badge?cardID=123456", nil))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, body)
}

func TestGetCollaboratorBadgeUnknownCollaborator(t *testing.T) {
	repo := &stubCollabRepo{
		getCollaboratorFn: func(ctx context.Context, cardID int) (models.Row, error) {
			return nil, nil
		},
	}
	app := newCollaboratorApp(repo)

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/collaborator/badge?cardID=404404", nil))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
