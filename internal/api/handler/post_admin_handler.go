package handler

import (
	"BlogAdmin/internal/api/dto"
	"BlogAdmin/internal/api/view"
	"BlogAdmin/internal/pkg/util"
	"BlogAdmin/internal/service"
	"fmt"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var postFormFields = []string{"title", "slug", "markdown"}

// PostAdminHandler 后台文章编辑页
type PostAdminHandler struct {
	postSvc           service.PostService
	maskPersistErrors bool
}

// NewPostAdminHandler maskPersistErrors 为 true 时保存失败只记录日志, 照常重定向
func NewPostAdminHandler(postSvc service.PostService, maskPersistErrors bool) *PostAdminHandler {
	return &PostAdminHandler{
		postSvc:           postSvc,
		maskPersistErrors: maskPersistErrors,
	}
}

// Edit GET /posts/admin/:slug
func (h *PostAdminHandler) Edit(c *gin.Context) {
	post, err := h.postSvc.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		view.AbortWithError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.PostEditTemplate, view.EditFormFromPost(post))
}

// Update POST /posts/admin/:slug
func (h *PostAdminHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	var req dto.PostUpdateDTO
	formErrs, err := util.PostFormErrors(c.ShouldBindWith(&req, binding.Form))
	if err != nil {
		view.AbortWithError(c, fmt.Errorf("%w: %v", service.ErrParamInvalid, err))
		return
	}

	// 以文件形式提交的字段视为已填写, 留给下面的类型检查
	fileFields := util.MultipartFileFields(c.Request, postFormFields...)
	formErrs.Clear(fileFields...)

	if formErrs.HasErrors() {
		h.renderFormErrors(c, slug, &req, formErrs)
		return
	}

	if len(fileFields) > 0 {
		log.ErrorContext(ctx, "post form field is not text", "slug", slug, "fields", fileFields)
		view.AbortWithError(c, service.ErrFieldNotText)
		return
	}

	if _, err = h.postSvc.UpdatePost(ctx, slug, &req); err != nil {
		log.ErrorContext(ctx, "update post failed", "slug", slug, "new_slug", req.Slug, "err", err)
		if !h.maskPersistErrors {
			view.AbortWithError(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, view.AdminPostURL(req.Slug))
}

// renderFormErrors 浏览器重新渲染表单, 其余客户端直接拿到错误表
func (h *PostAdminHandler) renderFormErrors(c *gin.Context, slug string, req *dto.PostUpdateDTO, formErrs *dto.PostFormErrors) {
	if view.WantsHTML(c) {
		c.HTML(http.StatusOK, view.PostEditTemplate, view.NewEditFormView(slug, req, formErrs, view.FormStateErrored))
		return
	}
	c.JSON(http.StatusOK, formErrs)
}
