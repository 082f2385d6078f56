package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTIssuer         = "BlogAdmin"
	JWTExpirationTime = time.Hour * 24
)

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole 是否拥有至少一个指定角色
func (c *UserClaims) HasRole(required ...string) bool {
	for _, r := range required {
		for _, role := range c.Roles {
			if r == role {
				return true
			}
		}
	}
	return false
}
