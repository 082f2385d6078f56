package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid  = errors.New("参数错误")
	ErrPostNotFound  = errors.New("文章不存在")
	ErrSlugTaken     = errors.New("slug 已被其他文章使用")
	ErrFieldNotText  = errors.New("表单字段必须是文本")
	ErrPersistFailed = errors.New("文章保存失败")
	UnExpectedError  = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:  BadRequest,
	ErrPostNotFound:  NotFound,
	ErrSlugTaken:     Conflict,
	ErrFieldNotText:  InternalServerError,
	ErrPersistFailed: InternalServerError,
	UnExpectedError:  InternalServerError,
}

// CodeOf 返回错误对应的业务码, 未登记的错误返回 false
func CodeOf(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
