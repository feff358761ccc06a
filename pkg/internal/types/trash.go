package types

// TrashListResponse 回收站列表响应.
type TrashListResponse struct {
	Total int        `json:"total"`
	Files []FileInfo `json:"files"`
}

// TrashActionResponse 软删除/恢复/清除的通用动作响应.
type TrashActionResponse struct {
	FileID  string `json:"file_id"`
	Message string `json:"message,omitempty"`
}
