// Package api 将业务路由组挂载到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/filedrive/pkg/internal/router"
)

// APIBasePath 业务路由前缀.
const APIBasePath = "/api/v1"

// RegisterGroup 注册全部业务路由到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	router.RegisterAPIRoutes(e.Group(APIBasePath))
	router.RegisterSwaggerRoute(e)

	return e
}
