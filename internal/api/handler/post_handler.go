package handler

import (
	"BlogAdmin/internal/api/view"
	"BlogAdmin/internal/pkg/response"
	"BlogAdmin/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// Show GET /posts/:slug
func (s *PostHandler) Show(c *gin.Context) {
	page, err := s.postSvc.GetPostPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		view.AbortWithError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.PostShowTemplate, view.NewPostShowView(page))
}

// GetPost GET /api/posts/:slug
func (s *PostHandler) GetPost(c *gin.Context) {
	post, err := s.postSvc.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
