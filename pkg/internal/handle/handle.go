// Package handle 提供请求处理器的实现，负责 HTTP 入参解析与业务错误到状态码的映射.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/internal/service"
	"github.com/yeisme/filedrive/pkg/internal/types"
	"github.com/yeisme/filedrive/pkg/log"
	"github.com/yeisme/filedrive/pkg/middleware"
)

// requireScope 获取当前请求的调用者归属，缺失时返回 401 并终止请求.
func requireScope(c *gin.Context) (types.Scope, bool) {
	scope, ok := middleware.GetScope(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return types.Scope{}, false
	}

	return scope, true
}

// writeServiceError 将 service 层的哨兵错误映射为 HTTP 状态码.
// 未识别的错误视为内部错误并记录日志.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage temporarily unavailable"})
	default:
		log.Logger().Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
