package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/configs"
	"github.com/yeisme/filedrive/pkg/internal/types"
)

const scopeContextKey = "scope"

// ScopeMiddleware 每个请求解析一次调用者归属，下游不再区分组织与个人空间.
//   - 用户标识来自认证层注入的邮箱头，开发模式可用 ?user= 兜底
//   - X-Org-ID 存在时 scope 为该组织，否则为调用者个人空间
//   - X-Role 解析为 member（默认）或 admin
func ScopeMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-Auth-Request-Email"))
		if userID == "" {
			userID = strings.TrimSpace(c.GetHeader("X-Forwarded-Email"))
		}

		if userID == "" && conf.DevAllowQuery {
			userID = strings.TrimSpace(c.Query("user"))
		}

		scope := types.Scope{
			ID:     userID,
			UserID: userID,
			Role:   parseRole(c.GetHeader("X-Role")),
		}

		if org := strings.TrimSpace(c.GetHeader("X-Org-ID")); org != "" {
			scope.ID = org
		}

		c.Set(scopeContextKey, scope)
		c.Next()
	}
}

// parseRole 解析角色头，未知值降级为 member.
func parseRole(s string) types.Role {
	if strings.EqualFold(strings.TrimSpace(s), string(types.RoleAdmin)) {
		return types.RoleAdmin
	}

	return types.RoleMember
}

// GetScope 从 gin.Context 获取已解析的调用者归属.
// 第二个返回值为 false 表示请求未携带身份.
func GetScope(c *gin.Context) (types.Scope, bool) {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return types.Scope{}, false
	}

	scope, ok := v.(types.Scope)
	if !ok || scope.UserID == "" {
		return types.Scope{}, false
	}

	return scope, true
}
