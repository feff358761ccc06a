// Package middleware 提供 HTTP 中间件：认证、作用域解析、限流、熔断、
// 监控、追踪、日志与存储注入.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// GzipMiddleware 响应压缩.
func GzipMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
