package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/internal/handle"
)

// RegisterTrashRoutes 注册回收站相关路由.
func RegisterTrashRoutes(g *gin.RouterGroup) {
	trashRoutes := g.Group("/trash")
	{
		// 回收站列表
		trashRoutes.GET("", handle.ListTrash)

		// 单个文件操作
		fileGroup := trashRoutes.Group("/:id")
		{
			fileGroup.POST("/restore", handle.RestoreTrash) // 恢复（仅管理员）
			fileGroup.DELETE("", handle.PurgeTrash)         // 永久删除（仅管理员）
		}
	}
}
