package consts

const (
	PostSlugKey = "post:slug:"
)
