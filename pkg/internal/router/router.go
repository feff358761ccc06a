// Package router 管理路由配置，只负责将路径绑定到 handle 提供的处理器.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes 将全部业务路由注册到 /api/v1 路由组.
func RegisterAPIRoutes(g *gin.RouterGroup) {
	RegisterFilesRoutes(g)
	RegisterTrashRoutes(g)
	RegisterHealthCheckRoute(g)
	RegisterSchedulerRoutes(g)
}
