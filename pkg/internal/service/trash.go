package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/filedrive/pkg/cache"
	"github.com/yeisme/filedrive/pkg/internal/model"
	"github.com/yeisme/filedrive/pkg/internal/types"
	nlog "github.com/yeisme/filedrive/pkg/log"
	"github.com/yeisme/filedrive/pkg/metrics"
)

// findInScope 按 id+scope 查找记录（含软删除）.跨 scope 与不存在同样返回 NotFound.
func (t *TrashService) findInScope(ctx context.Context, scope types.Scope, fileID string) (*model.File, error) {
	if fileID == "" {
		return nil, fmt.Errorf("%w: file id required", ErrInvalidArgument)
	}

	var file model.File

	err := t.dbClient.GetDB().WithContext(ctx).Unscoped().
		Where("id = ? AND scope_id = ?", fileID, scope.ID).
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, wrapStorageErr(err)
	}

	return &file, nil
}

// MarkForDeletion 将文件标记删除（进入回收站）.
// scope 内任意成员可操作；幂等，重复标记不报错也不触发新事件.
func (t *TrashService) MarkForDeletion(ctx context.Context, scope types.Scope, fileID string) error {
	file, err := t.findInScope(ctx, scope, fileID)
	if err != nil {
		return err
	}

	if file.DeletedAt.Valid {
		return nil
	}

	if err := t.dbClient.GetDB().WithContext(ctx).Delete(file).Error; err != nil {
		return wrapStorageErr(err)
	}

	t.publishFileTrashed(file, scope.UserID)

	return nil
}

// ListTrash 列出 scope 内已标记删除的文件.
func (t *TrashService) ListTrash(ctx context.Context, scope types.Scope) (types.TrashListResponse, error) {
	var rows []model.File

	err := t.dbClient.GetDB().WithContext(ctx).Unscoped().
		Where("scope_id = ? AND deleted_at IS NOT NULL", scope.ID).
		Order("deleted_at DESC").
		Find(&rows).Error
	if err != nil {
		return types.TrashListResponse{}, wrapStorageErr(err)
	}

	files := t.annotate(ctx, scope, rows, true)

	return types.TrashListResponse{Total: len(files), Files: files}, nil
}

// Restore 取消删除标记，仅限 scope 管理员.
// 角色检查先于存在性检查：非管理员对任何 id 都得到 PermissionDenied.
// 对删除标记采用后写覆盖语义，恢复已活跃的文件是空操作.
func (t *TrashService) Restore(ctx context.Context, scope types.Scope, fileID string) error {
	if !scope.IsAdmin() {
		return fmt.Errorf("%w: restore requires admin role", ErrPermissionDenied)
	}

	file, err := t.findInScope(ctx, scope, fileID)
	if err != nil {
		return err
	}

	if !file.DeletedAt.Valid {
		return nil
	}

	err = t.dbClient.GetDB().WithContext(ctx).Unscoped().
		Model(&model.File{}).
		Where("id = ? AND scope_id = ?", fileID, scope.ID).
		Update("deleted_at", nil).Error
	if err != nil {
		return wrapStorageErr(err)
	}

	t.publishFileRestored(file, scope.UserID)

	return nil
}

// Purge 立即永久清除一个已标记删除的文件，仅限 scope 管理员.
// 活跃文件不可直接清除，必须先标记删除；收藏关联级联移除.
func (t *TrashService) Purge(ctx context.Context, scope types.Scope, fileID string) error {
	if !scope.IsAdmin() {
		return fmt.Errorf("%w: purge requires admin role", ErrPermissionDenied)
	}

	file, err := t.findInScope(ctx, scope, fileID)
	if err != nil {
		return err
	}

	if !file.DeletedAt.Valid {
		return fmt.Errorf("%w: file is not in trash", ErrInvalidArgument)
	}

	removed, err := t.purgeOne(ctx, file)
	if err != nil {
		return err
	}

	t.publishFilePurged(file, removed, "admin")

	return nil
}

// purgeOne 在单个事务中硬删文件并级联移除收藏，返回移除的收藏数.
func (t *TrashService) purgeOne(ctx context.Context, file *model.File) (int, error) {
	var favoritesRemoved int64

	txErr := t.dbClient.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("file_id = ?", file.ID).Delete(&model.Favorite{})
		if res.Error != nil {
			return res.Error
		}

		favoritesRemoved = res.RowsAffected

		return tx.Unscoped().Where("id = ?", file.ID).Delete(&model.File{}).Error
	})
	if txErr != nil {
		return 0, wrapStorageErr(txErr)
	}

	metrics.FilesPurged.Inc()

	if t.urlCache != nil {
		_ = t.urlCache.Delete(ctx, cache.Key("url", file.StorageRef))
	}

	return int(favoritesRemoved), nil
}

// SweepExpired 清扫所有 scope 中删除时间早于保留期的文件，返回清除数量.
// 由后台定时任务调用，是永久清除的常规路径.
func (t *TrashService) SweepExpired(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-retention)

	var rows []model.File

	err := t.dbClient.GetDB().WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Find(&rows).Error
	if err != nil {
		return 0, wrapStorageErr(err)
	}

	purged := 0

	for i := range rows {
		removed, err := t.purgeOne(ctx, &rows[i])
		if err != nil {
			nlog.Logger().Error().Err(err).Str("file_id", rows[i].ID).Msg("sweep purge failed")
			continue
		}

		t.publishFilePurged(&rows[i], removed, "sweep")
		purged++
	}

	return purged, nil
}
