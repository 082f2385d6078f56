package view

import (
	"BlogAdmin/internal/api/dto"
	"BlogAdmin/internal/pkg/consts"
	"embed"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PostEditTemplate = "post_edit.html"
	PostShowTemplate = "post_show.html"
	ErrorTemplate    = "error.html"
)

const (
	submitIdleLabel = "Update Post"
	submitBusyLabel = "Updating..."
)

// Templates 解析内嵌的页面模板, 模板名为文件名
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

func AdminPostURL(slug string) string {
	return consts.AdminPostPathPrefix + url.PathEscape(slug)
}

func PublicPostURL(slug string) string {
	return consts.PublicPostPathPrefix + url.PathEscape(slug)
}

// FieldView 表单字段: 当前值与内联错误
type FieldView struct {
	Name  string
	Label string
	Value string
	Error string
}

// EditFormView 后台编辑页
type EditFormView struct {
	Action    string
	PublicURL string
	Title     FieldView
	Slug      FieldView
	Markdown  FieldView
	State     FormState
}

// NewEditFormView slug 为 URL 中的 slug, 表单始终提交回该地址
func NewEditFormView(slug string, values *dto.PostUpdateDTO, errs *dto.PostFormErrors, state FormState) EditFormView {
	if values == nil {
		values = &dto.PostUpdateDTO{}
	}
	if errs == nil {
		errs = &dto.PostFormErrors{}
	}
	return EditFormView{
		Action:    AdminPostURL(slug),
		PublicURL: PublicPostURL(slug),
		Title:     FieldView{Name: "title", Label: "Post Title:", Value: values.Title, Error: deref(errs.Title)},
		Slug:      FieldView{Name: "slug", Label: "Post Slug:", Value: values.Slug, Error: deref(errs.Slug)},
		Markdown:  FieldView{Name: "markdown", Label: "Markdown:", Value: values.Markdown, Error: deref(errs.Markdown)},
		State:     state,
	}
}

// EditFormFromPost 加载完成后的初始表单
func EditFormFromPost(post *dto.PostDTO) EditFormView {
	return NewEditFormView(post.Slug, &dto.PostUpdateDTO{
		Title:    post.Title,
		Slug:     post.Slug,
		Markdown: post.Markdown,
	}, nil, FormStateIdle)
}

func (v EditFormView) SubmitLabel() string {
	if v.State.InFlight() {
		return submitBusyLabel
	}
	return submitIdleLabel
}

func (v EditFormView) SubmitDisabled() bool {
	return v.State.InFlight()
}

func (v EditFormView) IdleLabel() string { return submitIdleLabel }

func (v EditFormView) BusyLabel() string { return submitBusyLabel }

// PostShowView 前台文章页
type PostShowView struct {
	Title   string
	Excerpt string
	Body    template.HTML
	EditURL string
}

func NewPostShowView(page *dto.PostPageDTO) PostShowView {
	return PostShowView{
		Title:   page.Post.Title,
		Excerpt: page.Excerpt,
		Body:    page.HTML,
		EditURL: AdminPostURL(page.Post.Slug),
	}
}

// ErrorView 错误页
type ErrorView struct {
	Status  int
	Title   string
	Message string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
