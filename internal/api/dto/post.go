package dto

import "html/template"

// PostDTO 文章
type PostDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Markdown  string `json:"markdown"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PostUpdateDTO 后台编辑表单
type PostUpdateDTO struct {
	Title    string `form:"title" json:"title" binding:"required" validate:"required"`
	Slug     string `form:"slug" json:"slug" binding:"required,excludes=/" validate:"required,excludes=/"`
	Markdown string `form:"markdown" json:"markdown" binding:"required" validate:"required"`
}

// PostPageDTO 前台文章页
type PostPageDTO struct {
	Post    *PostDTO
	HTML    template.HTML
	Excerpt string
}

// PostUpdatedEvent 文章更新事件
type PostUpdatedEvent struct {
	EventID   string `json:"event_id"`
	OldSlug   string `json:"old_slug"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
}
