// Package main 启动应用程序
package main

import "github.com/yeisme/filedrive/pkg/cmd"

//	@title			FileDrive API
//	@version		1.0
//	@description	FileDrive 是一个多租户文件元数据注册表，提供文件登记、搜索、收藏与两阶段删除（回收站）能力。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
