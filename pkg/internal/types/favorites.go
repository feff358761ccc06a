package types

// ToggleFavoriteResponse 收藏翻转结果.
type ToggleFavoriteResponse struct {
	FileID string `json:"file_id"`
	// Favorited 翻转后的状态
	Favorited bool `json:"favorited"`
}

// ListFavoritesResponse 调用者收藏的文件 ID 集合.
type ListFavoritesResponse struct {
	Total   int      `json:"total"`
	FileIDs []string `json:"file_ids"`
}
