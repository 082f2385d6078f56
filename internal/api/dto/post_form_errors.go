package dto

// PostFormErrors 字段名 -> 错误信息, 无错误的字段序列化为 null
type PostFormErrors struct {
	Title    *string `json:"title"`
	Slug     *string `json:"slug"`
	Markdown *string `json:"markdown"`
}

func (e *PostFormErrors) HasErrors() bool {
	return e.Title != nil || e.Slug != nil || e.Markdown != nil
}

// Set 按表单字段名记录错误, 未知字段返回 false
func (e *PostFormErrors) Set(field, message string) bool {
	msg := message
	switch field {
	case "title":
		e.Title = &msg
	case "slug":
		e.Slug = &msg
	case "markdown":
		e.Markdown = &msg
	default:
		return false
	}
	return true
}

// Clear 清除指定字段的错误
func (e *PostFormErrors) Clear(fields ...string) {
	for _, field := range fields {
		switch field {
		case "title":
			e.Title = nil
		case "slug":
			e.Slug = nil
		case "markdown":
			e.Markdown = nil
		}
	}
}
