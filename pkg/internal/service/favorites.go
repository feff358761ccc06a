package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeisme/filedrive/pkg/internal/model"
	"github.com/yeisme/filedrive/pkg/internal/types"
)

// Toggle 原子翻转调用者对某文件的收藏状态，返回翻转后的状态.
// 软删除中的文件同样可收藏；文件不存在或属于其他 scope 时一律 NotFound.
func (f *FavoriteService) Toggle(ctx context.Context, scope types.Scope, fileID string) (types.ToggleFavoriteResponse, error) {
	if fileID == "" {
		return types.ToggleFavoriteResponse{}, fmt.Errorf("%w: file id required", ErrInvalidArgument)
	}

	var file model.File

	err := f.dbClient.GetDB().WithContext(ctx).Unscoped().
		Where("id = ? AND scope_id = ?", fileID, scope.ID).
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.ToggleFavoriteResponse{}, ErrNotFound
	}

	if err != nil {
		return types.ToggleFavoriteResponse{}, wrapStorageErr(err)
	}

	var favorited bool

	// 事务内先删后插；(file_id, favorited_by) 唯一索引兜底并发翻转
	txErr := f.dbClient.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("file_id = ? AND favorited_by = ?", fileID, scope.UserID).
			Delete(&model.Favorite{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			favorited = false
			return nil
		}

		favorited = true

		return tx.Create(&model.Favorite{
			FileID:      fileID,
			FavoritedBy: scope.UserID,
			ScopeID:     scope.ID,
		}).Error
	})
	if txErr != nil {
		return types.ToggleFavoriteResponse{}, wrapStorageErr(txErr)
	}

	f.publishFavoriteToggled(&file, scope.UserID, favorited)

	return types.ToggleFavoriteResponse{FileID: fileID, Favorited: favorited}, nil
}

// ListByCaller 返回调用者在当前 scope 内收藏的文件 ID 集合.
// 含软删除文件的收藏，收藏状态在删除/恢复周期中保持.
func (f *FavoriteService) ListByCaller(ctx context.Context, scope types.Scope) (types.ListFavoritesResponse, error) {
	var favs []model.Favorite

	err := f.dbClient.GetDB().WithContext(ctx).
		Where("favorited_by = ? AND scope_id = ?", scope.UserID, scope.ID).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return types.ListFavoritesResponse{}, wrapStorageErr(err)
	}

	ids := make([]string, len(favs))
	for i, fav := range favs {
		ids[i] = fav.FileID
	}

	return types.ListFavoritesResponse{Total: len(ids), FileIDs: ids}, nil
}
