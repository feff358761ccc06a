package service

import "errors"

// 服务层错误分类，handler 层据此映射 HTTP 状态码.
var (
	// ErrInvalidArgument 请求参数不合法（空名称、未知类型等）→ 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 文件不存在；跨 scope 访问同样返回该错误，不泄露存在性 → 404.
	ErrNotFound = errors.New("file not found")
	// ErrPermissionDenied 角色不足（非管理员执行恢复/清除）→ 403.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUpstreamUnavailable 数据库或对象存储不可达 → 503.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
