package model

import "time"

// Favorite 收藏记录，按 (file_id, favorited_by) 唯一.
// 收藏跟随调用者个人，不随 scope 共享；文件被软删除后仍可收藏，
// 只有永久清除才会级联移除收藏.
type Favorite struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// FileID 被收藏的文件
	FileID string `gorm:"size:26;index:uk_file_user,unique;index" json:"file_id"`
	// FavoritedBy 收藏者用户标识
	FavoritedBy string `gorm:"size:255;index:uk_file_user,unique;index" json:"favorited_by"`
	// ScopeID 冗余存储收藏发生时的 scope，便于按空间聚合
	ScopeID   string `gorm:"size:255;index" json:"scope_id"`
	CreatedAt time.Time
}
