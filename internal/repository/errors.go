package repository

import "errors"

var (
	ErrPostNotExist  = errors.New("post does not exist")
	ErrDuplicateSlug = errors.New("duplicate post slug")
)
