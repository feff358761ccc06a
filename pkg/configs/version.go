package configs

// AppName 应用名称，用于客户端标识与默认资源命名.
const AppName = "filedrive"

// AppVersion 应用版本号，构建时可通过 ldflags 覆盖.
var AppVersion = "1.0.0"
