package middleware

import (
	"BlogAdmin/internal/api/view"
	"BlogAdmin/internal/pkg/consts"
	"BlogAdmin/internal/pkg/response"
	"BlogAdmin/internal/pkg/security"
	"context"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// AuthCookieName 浏览器访问后台页面时携带 Token 的 Cookie
const AuthCookieName = "blog_token"

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := security.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
				tokenString, ok = cookie, true
			}
		}
		if !ok {
			view.AbortWithStatus(c, response.Unauthorized, "Token 缺失或格式错误")
			return
		}

		claims, err := security.ValidateToken(secret, tokenString)
		if err != nil {
			log.WarnContext(c.Request.Context(), "reject admin token", "err", err)
			view.AbortWithStatus(c, response.Unauthorized, "Token 无效或已过期")
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.RolesKey, claims.Roles)

		newCtx := context.WithValue(c.Request.Context(), consts.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
