package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/internal/service"
)

// ToggleFavorite 收藏/取消收藏切换，同一用户对同一文件再次调用即取反.
//
//	@Summary	切换收藏状态
//	@Tags		收藏
//	@Produce	json
//	@Param		id	path		string	true	"文件 ID"
//	@Success	200	{object}	types.ToggleFavoriteResponse
//	@Failure	401	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/files/{id}/favorite [post]
func ToggleFavorite(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file id"})
		return
	}

	svc := service.NewFavoriteService(c.Request.Context())

	resp, err := svc.Toggle(c.Request.Context(), scope, fileID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListFavorites 列出当前用户在当前归属下收藏的文件 ID.
//
//	@Summary	收藏列表
//	@Tags		收藏
//	@Produce	json
//	@Success	200	{object}	types.ListFavoritesResponse
//	@Failure	401	{object}	map[string]string
//	@Router		/api/v1/favorites [get]
func ListFavorites(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	svc := service.NewFavoriteService(c.Request.Context())

	resp, err := svc.ListByCaller(c.Request.Context(), scope)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
