package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/context"
	"github.com/yeisme/filedrive/pkg/internal/storage"
)

// StorageMiddleware 将存储管理器注入请求上下文，service 层据此取用客户端.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
