// Package model 定义注册表的数据库模型.
package model

import (
	"time"

	"gorm.io/gorm"
)

// File 文件元数据记录.
// 注册表不保存文件内容，只保存名称、类型与对象存储引用；
// 同一 scope 内的成员可见同一批记录.
type File struct {
	// ID 为 ULID 字符串，按时间有序，创建时生成
	ID string `gorm:"primaryKey;size:26" json:"id"`
	// Name 展示名，大小写保留，搜索时大小写不敏感
	Name string `gorm:"size:512;index" json:"name"`
	// Type 文件类型标签：image、pdf、csv
	Type string `gorm:"size:32;index" json:"type"`
	// StorageRef 对象存储引用（S3 key），内容由上传方写入
	StorageRef string `gorm:"size:1024" json:"storage_ref"`
	// ScopeID 所属组织或个人空间标识
	ScopeID string `gorm:"size:255;index:idx_scope;index:idx_scope_name" json:"scope_id"`
	// OwnerUserID 登记该文件的用户
	OwnerUserID string `gorm:"size:255;index" json:"owner_user_id"`
	// 软删除与审计；DeletedAt 非空即"标记删除"，等待清扫或恢复
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// FileTypes 是合法的文件类型集合.
var FileTypes = []string{"image", "pdf", "csv"}

// IsValidFileType 判断类型标签是否合法.
func IsValidFileType(t string) bool {
	for _, v := range FileTypes {
		if v == t {
			return true
		}
	}

	return false
}
