package handler

import (
	"BlogAdmin/internal/model"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_RendersMarkdown(t *testing.T) {
	r := newTestEngine(t, newRepo(&model.Post{
		ID: 1, Title: "Hello", Slug: "hello", Markdown: "# Hi\n\nSome **bold** text.",
	}), false)

	w := get(r, "/posts/hello", "text/html")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<strong>bold</strong>")
	assert.Contains(t, body, `href="/posts/admin/hello"`)
}

func TestShow_MissingPost(t *testing.T) {
	r := newTestEngine(t, newRepo(), false)

	w := get(r, "/posts/nope", "text/html")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPost_JSON(t *testing.T) {
	r := newTestEngine(t, newRepo(), false)

	w := get(r, "/api/posts/hello", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Title    string `json:"title"`
			Slug     string `json:"slug"`
			Markdown string `json:"markdown"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Hello", resp.Data.Title)
	assert.Equal(t, "hello", resp.Data.Slug)
	assert.Equal(t, "# Hi", resp.Data.Markdown)
}

func TestGetPost_MissingUsesEnvelope(t *testing.T) {
	r := newTestEngine(t, newRepo(), false)

	w := get(r, "/api/posts/nope", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":404,"message":"文章不存在","data":null}`, w.Body.String())
}
