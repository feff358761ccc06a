package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/internal/service"
	"github.com/yeisme/filedrive/pkg/internal/types"
	"github.com/yeisme/filedrive/pkg/log"
)

// CreateFile 登记一条文件元数据.
//
//	@Summary	创建文件记录
//	@Tags		文件
//	@Accept		json
//	@Produce	json
//	@Param		body	body		types.CreateFileRequest	true	"文件元数据"
//	@Success	201		{object}	types.CreateFileResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	401		{object}	map[string]string
//	@Router		/api/v1/files [post]
func CreateFile(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	var req types.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	svc := service.NewFileService(c.Request.Context())

	info, err := svc.Create(c.Request.Context(), scope, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.CreateFileResponse{File: info})
}

// ListFiles 列出当前归属可见的文件，支持子串搜索、类型过滤与仅收藏过滤.
//
//	@Summary	文件列表/搜索
//	@Tags		文件
//	@Produce	json
//	@Param		q			query		string	false	"名称子串（大小写不敏感）"
//	@Param		type		query		string	false	"文件类型(image|pdf|csv)"
//	@Param		favorites	query		bool	false	"仅返回当前用户收藏的文件"
//	@Success	200			{object}	types.ListFilesResponse
//	@Failure	400			{object}	map[string]string
//	@Failure	401			{object}	map[string]string
//	@Router		/api/v1/files [get]
func ListFiles(c *gin.Context) {
	l := log.Logger()

	scope, ok := requireScope(c)
	if !ok {
		return
	}

	var req types.ListFilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		l.Warn().Err(err).Msg("invalid list query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})

		return
	}

	svc := service.NewFileService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), scope, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
