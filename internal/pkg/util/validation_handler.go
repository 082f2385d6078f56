package util

import (
	"BlogAdmin/internal/api/dto"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(formTagName)
}

func formTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

// FieldMessage 校验失败的展示文案
func FieldMessage(fe validator.FieldError) string {
	label := fe.StructField()
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "excludes":
		return fmt.Sprintf("%s must not contain %q", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}

// PostFormErrors 把校验错误转换成逐字段的错误表, 非校验类错误原样返回
func PostFormErrors(err error) (*dto.PostFormErrors, error) {
	formErrs := &dto.PostFormErrors{}
	if err == nil {
		return formErrs, nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil, err
	}
	for _, fe := range vErrs {
		formErrs.Set(formFieldName(fe), FieldMessage(fe))
	}
	return formErrs, nil
}

// formFieldName gin 自带的校验器不注册 tag name, Field() 可能是结构体字段名
func formFieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

// MultipartFileFields 返回以文件形式提交的字段名
func MultipartFileFields(r *http.Request, fields ...string) []string {
	if r.MultipartForm == nil {
		return nil
	}
	var found []string
	for _, field := range fields {
		if hasFile(r.MultipartForm, field) {
			found = append(found, field)
		}
	}
	return found
}

func hasFile(form *multipart.Form, field string) bool {
	files, ok := form.File[field]
	return ok && len(files) > 0
}
