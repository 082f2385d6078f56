package wire

import (
	"BlogAdmin/internal/api/config"
	"BlogAdmin/internal/model"
	"BlogAdmin/internal/pkg/security"
	"BlogAdmin/internal/repository"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{AdminRole: "ADMIN"},
	}
}

func build(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryPostRepo(&model.Post{ID: 1, Title: "Hello", Slug: "hello", Markdown: "# Hi"})
	app, err := BuildApplication(repo, nil, nil, cfg)
	require.NoError(t, err)
	return app.Router
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := build(t, testConfig())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestRouter_AdminAndPublicRoutesCoexist(t *testing.T) {
	r := build(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/posts/admin/hello", nil)
	req.Header.Set("Accept", "text/html")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<form id="post-form"`)

	req = httptest.NewRequest(http.MethodGet, "/posts/hello", nil)
	req.Header.Set("Accept", "text/html")
	w = serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<h1 id="hi">Hi</h1>`)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/posts/hello", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"hello"`)
}

func TestRouter_UpdateRedirects(t *testing.T) {
	r := build(t, testConfig())

	form := url.Values{"title": {"Hi"}, "slug": {"hi"}, "markdown": {"# Hello"}}
	req := httptest.NewRequest(http.MethodPost, "/posts/admin/hello", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(r, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/admin/hi", w.Header().Get("Location"))
}

func TestRouter_SimulatedDelayOnlyOnUpdate(t *testing.T) {
	cfg := testConfig()
	cfg.Admin.SimulatedDelayMs = 50
	r := build(t, cfg)

	start := time.Now()
	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/posts/hello", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	form := url.Values{"title": {"Hi"}, "slug": {"hello"}, "markdown": {"# Hi"}}
	req := httptest.NewRequest(http.MethodPost, "/posts/admin/hello", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	start = time.Now()
	w = serve(r, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRouter_AdminRequiresRoleWhenSecretSet(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = "secret"
	r := build(t, cfg)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/posts/admin/hello", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := security.GenerateToken("secret", 1, []string{"ADMIN"}, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/posts/admin/hello", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "text/html")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/posts/hello", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
