package types

import "time"

// CreateFileRequest 登记文件元数据请求.
// 对象内容由上传方先行写入对象存储，这里只记录引用.
type CreateFileRequest struct {
	Name       string `binding:"required,min=1,max=512" json:"name"`
	Type       string `binding:"required,oneof=image pdf csv" json:"type"`
	StorageRef string `binding:"required,min=1,max=1024" json:"storage_ref"`
}

// FileInfo 列表中的单条文件记录.
type FileInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	StorageRef string    `json:"storage_ref"`
	ScopeID    string    `json:"scope_id"`
	CreatedAt  time.Time `json:"created_at"`
	// IsFavorited 按调用者个人标注
	IsFavorited bool `json:"is_favorited"`
	// URL 预签名访问地址；对象存储不可达时为 null，列表本身不报错
	URL *string `json:"url"`
	// Owner 登记者展示信息，profile 缺失时为空
	Owner *OwnerInfo `json:"owner,omitempty"`
	// DeletedAt 仅回收站视图返回
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// OwnerInfo 文件登记者的展示信息.
type OwnerInfo struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Image  string `json:"image,omitempty"`
}

// ListFilesRequest 查询引擎读路径的参数.
type ListFilesRequest struct {
	// Query 名称子串，大小写不敏感
	Query string `form:"q" json:"q"`
	// FavoritesOnly 仅返回调用者收藏的文件
	FavoritesOnly bool `form:"favorites" json:"favorites"`
	// Type 按文件类型过滤，与其他条件取交集
	Type string `binding:"omitempty,oneof=image pdf csv" form:"type" json:"type"`
}

// ListFilesResponse 文件列表响应.
type ListFilesResponse struct {
	Total int        `json:"total"`
	Files []FileInfo `json:"files"`
}

// CreateFileResponse 登记成功响应.
type CreateFileResponse struct {
	File FileInfo `json:"file"`
}
