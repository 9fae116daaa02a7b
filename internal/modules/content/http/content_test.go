package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/domain"
	"github.com/xplorekamrul/rareviewit.com-sub001/internal/modules/content/infra"
)

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestServicesPublicListShowsOnlyPublished(t *testing.T) {
	repo := infra.NewMemServiceRepo()
	_, err := repo.Create(domain.Service{Title: "Web Development", Slug: "web-dev", Published: true})
	require.NoError(t, err)
	_, err = repo.Create(domain.Service{Title: "Draft Service", Slug: "draft", Published: false})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/services", ListServicesHandler(repo, true))
	app.Get("/admin/services", ListServicesHandler(repo, false))

	resp := doJSON(t, app, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pub struct {
		Services []domain.Service `json:"services"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pub))
	require.Len(t, pub.Services, 1)
	assert.Equal(t, "web-dev", pub.Services[0].Slug)

	resp = doJSON(t, app, http.MethodGet, "/admin/services", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all struct {
		Services []domain.Service `json:"services"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.Len(t, all.Services, 2)
}

func TestGetServiceHidesUnpublished(t *testing.T) {
	repo := infra.NewMemServiceRepo()
	_, err := repo.Create(domain.Service{Title: "Draft", Slug: "draft", Published: false})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/services/:slug", GetServiceHandler(repo))

	resp := doJSON(t, app, http.MethodGet, "/services/draft", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/services/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateServiceValidation(t *testing.T) {
	repo := infra.NewMemServiceRepo()
	app := fiber.New()
	app.Post("/admin/services", CreateServiceHandler(repo))

	resp := doJSON(t, app, http.MethodPost, "/admin/services", fiber.Map{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/admin/services",
		fiber.Map{"title": "SEO Audit", "slug": "seo-audit", "published": true})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestContactSubmissionFlow(t *testing.T) {
	repo := infra.NewMemContactRepo()
	app := fiber.New()
	app.Post("/contact", CreateContactHandler(repo, nil, ""))
	app.Get("/admin/contact-submissions", ListContactsHandler(repo))

	resp := doJSON(t, app, http.MethodPost, "/contact", fiber.Map{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Quote request",
		"message": "Need a landing page.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// мусорный email отбрасывается до записи
	resp = doJSON(t, app, http.MethodPost, "/contact", fiber.Map{
		"name": "Spam", "email": "not-an-email", "message": "hello there",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	items, err := repo.List(true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "jane@example.com", items[0].Email)

	require.NoError(t, repo.Resolve(items[0].ID, time.Now().UTC()))
	items, err = repo.List(true)
	require.NoError(t, err)
	assert.Empty(t, items)
}
