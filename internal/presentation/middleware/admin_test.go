package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		host     string
		referer  string
		prefix   string
		expected bool
	}{
		{"admin page", "img.example.com", "https://img.example.com/admin.html", "", true},
		{"admin subpath", "img.example.com", "https://img.example.com/admin/list", "/admin", true},
		{"public page", "img.example.com", "https://img.example.com/index.html", "", false},
		{"other origin", "img.example.com", "https://evil.example.com/admin.html", "", false},
		{"no referer", "img.example.com", "", "", false},
		{"relative referer", "img.example.com", "/admin.html", "", false},
		{"custom prefix", "img.example.com", "https://img.example.com/manage", "/manage", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/upload", http.NoBody)
			req.Host = tt.host
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}

			assert.Equal(t, tt.expected, IsAdmin(req, tt.prefix))
		})
	}
}

func TestDetectAdmin(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/upload", http.NoBody)
	req.Host = "img.example.com"
	req.Header.Set("Referer", "https://img.example.com/admin.html")
	c := e.NewContext(req, httptest.NewRecorder())

	var seen bool
	handler := DetectAdmin("")(func(c echo.Context) error {
		seen = AdminFrom(c)

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, seen)
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}

	t.Run("rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/manage/settings", http.NoBody)
		rec := httptest.NewRecorder()

		require.NoError(t, RequireAdmin("")(next)(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Forbidden"}`, rec.Body.String())
	})

	t.Run("allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/manage/settings", http.NoBody)
		req.Host = "img.example.com"
		req.Header.Set("Referer", "http://img.example.com/admin-waterfall.html")
		rec := httptest.NewRecorder()

		require.NoError(t, RequireAdmin("")(next)(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
