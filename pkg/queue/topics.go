// Package queue 定义消息主题常量，供发布/订阅使用.
package queue

// 主题命名规范：fd.<域>.<动作>，尽量稳定且向后兼容.
// 域：file(文件元数据生命周期)、favorite(收藏)
// 动作：created/trashed/restored/purged/toggled

const (
	// 文件生命周期领域.
	TopicFileCreated  = "fd.file.created"  // 元数据已登记（对象已由上传方写入对象存储）
	TopicFileTrashed  = "fd.file.trashed"  // 文件被软删除（进入回收站）
	TopicFileRestored = "fd.file.restored" // 文件从回收站恢复
	TopicFilePurged   = "fd.file.purged"   // 文件被永久清除（收藏关联已级联移除）

	// 收藏领域.
	TopicFavoriteToggled = "fd.favorite.toggled" // 收藏状态翻转
)
