package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/internal/service"
	"github.com/yeisme/filedrive/pkg/internal/types"
)

// DeleteFile 软删除：文件移入回收站，列表不再可见但可由管理员恢复.
//
//	@Summary	删除文件（移入回收站）
//	@Tags		回收站
//	@Produce	json
//	@Param		id	path		string	true	"文件 ID"
//	@Success	200	{object}	types.TrashActionResponse
//	@Failure	401	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/files/{id} [delete]
func DeleteFile(c *gin.Context) {
	singleFileAction(c, "trashed", func(svc *service.TrashService, scope types.Scope, fileID string) error {
		return svc.MarkForDeletion(c.Request.Context(), scope, fileID)
	})
}

// ListTrash 获取当前归属的回收站列表.
//
//	@Summary	回收站列表
//	@Tags		回收站
//	@Produce	json
//	@Success	200	{object}	types.TrashListResponse
//	@Failure	401	{object}	map[string]string
//	@Router		/api/v1/trash [get]
func ListTrash(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	svc := service.NewTrashService(c.Request.Context())

	resp, err := svc.ListTrash(c.Request.Context(), scope)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RestoreTrash 恢复回收站文件，仅归属管理员可用.
//
//	@Summary	恢复回收站文件
//	@Tags		回收站
//	@Produce	json
//	@Param		id	path		string	true	"文件 ID"
//	@Success	200	{object}	types.TrashActionResponse
//	@Failure	403	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/trash/{id}/restore [post]
func RestoreTrash(c *gin.Context) {
	singleFileAction(c, "restored", func(svc *service.TrashService, scope types.Scope, fileID string) error {
		return svc.Restore(c.Request.Context(), scope, fileID)
	})
}

// PurgeTrash 永久删除回收站文件并级联清除其收藏记录，仅归属管理员可用.
//
//	@Summary	永久删除回收站文件
//	@Tags		回收站
//	@Produce	json
//	@Param		id	path		string	true	"文件 ID"
//	@Success	200	{object}	types.TrashActionResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	403	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/trash/{id} [delete]
func PurgeTrash(c *gin.Context) {
	singleFileAction(c, "purged", func(svc *service.TrashService, scope types.Scope, fileID string) error {
		return svc.Purge(c.Request.Context(), scope, fileID)
	})
}

// singleFileAction 抽取公共逻辑：校验归属、获取 path id、调用具体动作.
func singleFileAction(c *gin.Context, message string, act func(svc *service.TrashService, scope types.Scope, fileID string) error) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	fileID := c.Param("id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file id"})
		return
	}

	svc := service.NewTrashService(c.Request.Context())

	if err := act(svc, scope, fileID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TrashActionResponse{FileID: fileID, Message: message})
}
