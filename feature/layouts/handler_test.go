package layouts

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"layout-catalog/core/remote"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *serviceFixture) {
	t.Helper()

	f := newServiceFixture(t, false)
	app := fiber.New()
	require.NoError(t, NewFeature(f.service).Load(app))
	return app, f
}

func postSync(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/layouts/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return resp, out
}

func TestHandleSync(t *testing.T) {
	app, f := setupTestApp(t)
	f.api.On("Get", mock.Anything, "/wpcom/v2/sites/42/block-layouts", map[string]string{
		"preview_width": "300",
		"scale":         "2",
	}).Return(validPayload(), nil).Once()

	resp, body := postSync(t, app, `{"site_id":42,"token":"secret","width":300,"height":200}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "site-42", body["scope"])
	assert.NotEmpty(t, body["sync_id"])

	catalog := body["catalog"].(map[string]any)
	assert.Len(t, catalog["layouts"], 1)
	f.api.AssertExpectations(t)
}

func TestHandleSync_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		setup  func(f *serviceFixture)
		status int
		kind   string
	}{
		{
			name:   "Invalid body",
			body:   `{"site_id":`,
			status: http.StatusBadRequest,
		},
		{
			name:   "Missing width",
			body:   `{}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "Token without site",
			body:   `{"token":"secret","width":300}`,
			status: http.StatusBadRequest,
			kind:   "configuration",
		},
		{
			name: "Transport",
			body: `{"width":300}`,
			setup: func(f *serviceFixture) {
				f.api.On("Get", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, &remote.StatusError{Method: "GET", Path: "/wpcom/v2/common-block-layouts", StatusCode: 500}).Once()
			},
			status: http.StatusBadGateway,
			kind:   "transport",
		},
		{
			name: "Parse",
			body: `{"width":300}`,
			setup: func(f *serviceFixture) {
				f.api.On("Get", mock.Anything, mock.Anything, mock.Anything).Return("not a catalog", nil).Once()
			},
			status: http.StatusUnprocessableEntity,
			kind:   "parse",
		},
		{
			name: "Persistence",
			body: `{"width":300}`,
			setup: func(f *serviceFixture) {
				f.api.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(validPayload(), nil).Once()
				f.store.Close()
			},
			status: http.StatusInternalServerError,
			kind:   "persistence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, f := setupTestApp(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			resp, body := postSync(t, app, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
			if tt.kind != "" {
				assert.Equal(t, tt.kind, body["kind"])
			}
		})
	}
}

func TestHandleListCategoriesAndLayouts(t *testing.T) {
	app, f := setupTestApp(t)
	f.api.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(validPayload(), nil).Once()

	_, err := f.service.FetchLayouts(context.Background(), Account{}, Size{Width: 300})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/layouts/categories", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "about", categories[0]["slug"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/layouts?category=about", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var layouts []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&layouts))
	require.Len(t, layouts, 1)
	assert.Equal(t, "l1", layouts[0]["slug"])
	assert.Equal(t, []any{"about"}, layouts[0]["categories"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/layouts?category=contact", nil), -1)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&layouts))
	assert.Empty(t, layouts)
}
