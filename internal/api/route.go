package api

import (
	"BlogAdmin/internal/api/config"
	"BlogAdmin/internal/api/middleware"
	"BlogAdmin/internal/api/view"
	"BlogAdmin/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// TraceId & Logger
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.CORSMiddleware())
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})
		apiGroup.GET("/posts/:slug", group.PostHandler.GetPost)
	}

	postGroup := r.Group("/posts")
	{
		postGroup.GET("/:slug", group.PostHandler.Show)

		adminGroup := postGroup.Group("/admin")
		if cfg.Auth.JWTSecret != "" {
			adminGroup.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret), middleware.CheckRoles(cfg.Auth.AdminRole))
		}
		{
			adminGroup.GET("/:slug", group.PostAdminHandler.Edit)
			adminGroup.POST("/:slug", middleware.SimulatedLatency(cfg.Admin.SimulatedDelay()), group.PostAdminHandler.Update)
		}
	}

	return r, nil
}
