package markdown

import (
	"bytes"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer 把文章 markdown 转换为 HTML
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.DefinitionList,
			extension.Footnote, extension.Typographer,
			highlighting.Highlighting),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()))
	return &Renderer{md: md}
}

// ToHTML 原始 HTML 不会被透传 (goldmark 默认不开启 unsafe)
func (r *Renderer) ToHTML(source string) (template.HTML, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", errors.Wrap(err, "convert markdown")
	}
	return template.HTML(buf.String()), nil
}

// Excerpt 提取渲染后 HTML 的纯文本摘要, 超出 maxChars 时在单词边界截断
func Excerpt(rendered template.HTML, maxChars int) (string, error) {
	if maxChars < 1 || rendered == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(rendered)))
	if err != nil {
		return "", errors.Wrap(err, "parse rendered html")
	}
	doc.Find("pre, script, style").Remove()
	text := strings.Join(strings.Fields(doc.Text()), " ")
	if utf8.RuneCountInString(text) <= maxChars {
		return text, nil
	}

	runes := []rune(text)
	cut := string(runes[:maxChars])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:") + "…", nil
}
