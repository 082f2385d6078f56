package view

import (
	"BlogAdmin/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// WantsHTML 浏览器请求返回页面, 其余 (包括没有 Accept 头) 返回 JSON
func WantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(binding.MIMEJSON, binding.MIMEHTML) == binding.MIMEHTML
}

// AbortWithStatus 按协商结果输出错误页或 JSON, HTTP 状态码与业务码一致
func AbortWithStatus(c *gin.Context, code int, message string) {
	if WantsHTML(c) {
		c.HTML(code, ErrorTemplate, ErrorView{
			Status:  code,
			Title:   http.StatusText(code),
			Message: message,
		})
		c.Abort()
		return
	}
	response.AbortWithStatus(c, code, message)
}

// AbortWithError 把错误映射为状态码后输出
func AbortWithError(c *gin.Context, err error) {
	code, message := response.Resolve(c, err)
	AbortWithStatus(c, code, message)
}
