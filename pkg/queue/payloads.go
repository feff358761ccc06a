package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// FileRef 标识注册表中的一条文件记录及其对象存储引用.
type FileRef struct {
	FileID     string `json:"file_id"`
	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	StorageRef string `json:"storage_ref,omitempty"`
	ScopeID    string `json:"scope_id"`
	OwnerID    string `json:"owner_id,omitempty"`
}

// FileCreatedPayload 元数据登记完成.
type FileCreatedPayload struct {
	File FileRef `json:"file"`
}

// FileTrashedPayload 文件进入回收站.
type FileTrashedPayload struct {
	File FileRef `json:"file"`
	// RequestedBy 发起软删除的用户.
	RequestedBy string `json:"requested_by,omitempty"`
}

// FileRestoredPayload 文件从回收站恢复.
type FileRestoredPayload struct {
	File FileRef `json:"file"`
	// RestoredBy 执行恢复的管理员.
	RestoredBy string `json:"restored_by,omitempty"`
}

// FilePurgedPayload 文件被永久清除.
type FilePurgedPayload struct {
	File FileRef `json:"file"`
	// FavoritesRemoved 级联移除的收藏记录数.
	FavoritesRemoved int `json:"favorites_removed,omitempty"`
	// Source 触发来源：sweep（定时清扫）或 admin（管理端点）.
	Source string `json:"source,omitempty"`
}

// FavoriteToggledPayload 收藏状态翻转.
type FavoriteToggledPayload struct {
	File        FileRef `json:"file"`
	FavoritedBy string  `json:"favorited_by"`
	Favorited   bool    `json:"favorited"`
}
