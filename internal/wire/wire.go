package wire

import (
	"BlogAdmin/internal/api"
	"BlogAdmin/internal/api/config"
	"BlogAdmin/internal/api/handler"
	"BlogAdmin/internal/pkg/markdown"
	"BlogAdmin/internal/repository"
	"BlogAdmin/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	PostSvc service.PostService
}

// BuildApplication cache 与 publisher 为 nil 时对应功能关闭
func BuildApplication(postRepo repository.PostRepo, cache service.PostCache, publisher service.PostEventPublisher, cfg *config.Config) (*ApplicationContainer, error) {
	postService := service.NewPostService(postRepo, cache, publisher, markdown.NewRenderer())

	handlers := &api.HandlersGroup{
		PostAdminHandler: handler.NewPostAdminHandler(postService, cfg.Admin.MaskPersistErrors),
		PostHandler:      handler.NewPostHandler(postService),
	}

	router, err := api.SetupRouter(handlers, cfg)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:  router,
		PostSvc: postService,
	}, nil
}
