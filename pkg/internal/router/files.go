package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/internal/handle"
)

// RegisterFilesRoutes 注册文件与收藏相关路由.
func RegisterFilesRoutes(g *gin.RouterGroup) {
	filesRoutes := g.Group("/files")
	{
		// 登记文件元数据
		filesRoutes.POST("", handle.CreateFile)
		// 列表与搜索
		filesRoutes.GET("", handle.ListFiles)

		// 单个文件操作
		singleGroup := filesRoutes.Group("/:id")
		{
			// 软删除（移入回收站）
			singleGroup.DELETE("", handle.DeleteFile)
			// 收藏/取消收藏切换
			singleGroup.POST("/favorite", handle.ToggleFavorite)
		}
	}

	// 当前用户的收藏列表
	g.GET("/favorites", handle.ListFavorites)
}
