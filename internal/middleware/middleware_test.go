package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	r := ginext.New("test")
	r.Use(AdminAuth("secret"))
	r.GET("/admin", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer secret", http.StatusOK},
		{"wrong token", "Bearer guess", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic secret", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, serve(r, req).Code)
		})
	}
}

func TestAdminAuth_EmptyTokenDisables(t *testing.T) {
	r := ginext.New("test")
	r.Use(AdminAuth(""))
	r.GET("/admin", func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer ")

	assert.Equal(t, http.StatusForbidden, serve(r, req).Code)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Metrics())
	r.GET("/ping", func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
