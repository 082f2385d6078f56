package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_RendersHeadingWithID(t *testing.T) {
	out, err := NewRenderer().ToHTML("# Hi")
	require.NoError(t, err)
	assert.Contains(t, string(out), `<h1 id="hi">Hi</h1>`)
}

func TestToHTML_EmptySource(t *testing.T) {
	out, err := NewRenderer().ToHTML("  \n ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestToHTML_DoesNotPassRawHTML(t *testing.T) {
	out, err := NewRenderer().ToHTML("<script>alert(1)</script>\n\ntext")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "text")
}

func TestExcerpt_StripsMarkupAndCode(t *testing.T) {
	r := NewRenderer()
	out, err := r.ToHTML("# Title\n\nSome **bold** text.\n\n```go\nfmt.Println()\n```\n")
	require.NoError(t, err)

	excerpt, err := Excerpt(out, 100)
	require.NoError(t, err)
	assert.Equal(t, "Title Some bold text.", excerpt)
}

func TestExcerpt_TruncatesOnWordBoundary(t *testing.T) {
	excerpt, err := Excerpt("<p>alpha beta gamma delta</p>", 13)
	require.NoError(t, err)
	assert.Equal(t, "alpha beta…", excerpt)
	assert.False(t, strings.HasSuffix(excerpt, " …"))
}

func TestExcerpt_NonPositiveLimit(t *testing.T) {
	excerpt, err := Excerpt("<p>alpha</p>", 0)
	require.NoError(t, err)
	assert.Empty(t, excerpt)
}
