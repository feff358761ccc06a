package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yeisme/filedrive/pkg/cache"
	"github.com/yeisme/filedrive/pkg/configs"
	"github.com/yeisme/filedrive/pkg/internal/model"
	"github.com/yeisme/filedrive/pkg/internal/types"
	nlog "github.com/yeisme/filedrive/pkg/log"
	"github.com/yeisme/filedrive/pkg/metrics"
)

// maxConcurrentResolves 限制单次列表的并发预签名数.
const maxConcurrentResolves = 8

// wrapStorageErr 将基础设施错误归入 UpstreamUnavailable 分类.
func wrapStorageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}

// Create 登记一条文件元数据.对象内容须已由上传方写入对象存储.
func (s *FileService) Create(ctx context.Context, scope types.Scope, req types.CreateFileRequest) (types.FileInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return types.FileInfo{}, fmt.Errorf("%w: name must not be blank", ErrInvalidArgument)
	}

	if !model.IsValidFileType(req.Type) {
		return types.FileInfo{}, fmt.Errorf("%w: unknown file type %q", ErrInvalidArgument, req.Type)
	}

	if strings.TrimSpace(req.StorageRef) == "" {
		return types.FileInfo{}, fmt.Errorf("%w: storage_ref must not be blank", ErrInvalidArgument)
	}

	file := model.File{
		ID:          newFileID(),
		Name:        name,
		Type:        req.Type,
		StorageRef:  req.StorageRef,
		ScopeID:     scope.ID,
		OwnerUserID: scope.UserID,
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Create(&file).Error; err != nil {
		return types.FileInfo{}, wrapStorageErr(err)
	}

	s.publishFileCreated(&file)

	infos := s.annotate(ctx, scope, []model.File{file}, false)

	return infos[0], nil
}

// List 查询引擎读路径：scope 内未删除文件，大小写不敏感子串过滤，
// 可按类型过滤、可只看调用者收藏；所有条件取交集.
func (s *FileService) List(ctx context.Context, scope types.Scope, req types.ListFilesRequest) (types.ListFilesResponse, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx).
		Model(&model.File{}).
		Where("scope_id = ?", scope.ID)

	if q := strings.TrimSpace(req.Query); q != "" {
		dbx = dbx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	if req.Type != "" {
		if !model.IsValidFileType(req.Type) {
			return types.ListFilesResponse{}, fmt.Errorf("%w: unknown file type %q", ErrInvalidArgument, req.Type)
		}

		dbx = dbx.Where("type = ?", req.Type)
	}

	if req.FavoritesOnly {
		dbx = dbx.Where("id IN (?)",
			s.dbClient.GetDB().Model(&model.Favorite{}).
				Select("file_id").
				Where("favorited_by = ?", scope.UserID))
	}

	var rows []model.File
	if err := dbx.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return types.ListFilesResponse{}, wrapStorageErr(err)
	}

	files := s.annotate(ctx, scope, rows, false)

	return types.ListFilesResponse{Total: len(files), Files: files}, nil
}

// annotate 为一批记录补全收藏标记、登记者信息与预签名 URL.
// trashView 为 true 时附带删除时间且跳过 URL 解析.
func (s *FileService) annotate(ctx context.Context, scope types.Scope, rows []model.File, trashView bool) []types.FileInfo {
	files := make([]types.FileInfo, len(rows))
	if len(rows) == 0 {
		return files
	}

	favSet := s.favoriteSet(ctx, scope.UserID, rows)
	profiles := s.ownerProfiles(ctx, rows)

	for i, r := range rows {
		info := types.FileInfo{
			ID:          r.ID,
			Name:        r.Name,
			Type:        r.Type,
			StorageRef:  r.StorageRef,
			ScopeID:     r.ScopeID,
			CreatedAt:   r.CreatedAt,
			IsFavorited: favSet[r.ID],
		}

		info.Owner = &types.OwnerInfo{UserID: r.OwnerUserID}
		if p, ok := profiles[r.OwnerUserID]; ok {
			info.Owner.Name = p.Name
			info.Owner.Image = p.Image
		}

		if trashView && r.DeletedAt.Valid {
			t := r.DeletedAt.Time
			info.DeletedAt = &t
		}

		files[i] = info
	}

	if !trashView {
		s.resolveURLs(ctx, files)
	}

	return files
}

// favoriteSet 返回调用者在这批文件上的收藏集合.
func (s *FileService) favoriteSet(ctx context.Context, userID string, rows []model.File) map[string]bool {
	set := make(map[string]bool, len(rows))
	if userID == "" {
		return set
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	var favs []model.Favorite
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("favorited_by = ? AND file_id IN ?", userID, ids).
		Find(&favs).Error; err != nil {
		nlog.Logger().Warn().Err(err).Msg("load favorite set failed")
		return set
	}

	for _, f := range favs {
		set[f.FileID] = true
	}

	return set
}

// ownerProfiles 批量加载登记者展示信息，缺失不影响列表.
func (s *FileService) ownerProfiles(ctx context.Context, rows []model.File) map[string]model.UserProfile {
	owners := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))

	for _, r := range rows {
		if r.OwnerUserID != "" && !seen[r.OwnerUserID] {
			seen[r.OwnerUserID] = true
			owners = append(owners, r.OwnerUserID)
		}
	}

	result := make(map[string]model.UserProfile, len(owners))
	if len(owners) == 0 {
		return result
	}

	var profiles []model.UserProfile
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("user_id IN ?", owners).
		Find(&profiles).Error; err != nil {
		nlog.Logger().Warn().Err(err).Msg("load owner profiles failed")
		return result
	}

	for _, p := range profiles {
		result[p.UserID] = p
	}

	return result
}

// resolveURLs 并发解析预签名 URL；单个文件失败只降级为 null，不影响整个列表.
func (s *FileService) resolveURLs(ctx context.Context, files []types.FileInfo) {
	if s.s3Client == nil {
		metrics.URLResolveFailures.WithLabelValues("no_client").Add(float64(len(files)))
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentResolves)

	for i := range files {
		g.Go(func() error {
			url, err := s.resolveOneURL(gctx, files[i].StorageRef)
			if err != nil {
				metrics.URLResolveFailures.WithLabelValues("presign").Inc()
				nlog.Logger().Debug().Err(err).Str("storage_ref", files[i].StorageRef).Msg("url resolve failed")

				return nil
			}

			files[i].URL = &url

			return nil
		})
	}

	_ = g.Wait()
}

// resolveOneURL 解析单个对象的预签名 URL，命中缓存时不触达对象存储.
// 缓存 TTL 必须小于预签名有效期，避免返回已过期的链接.
func (s *FileService) resolveOneURL(ctx context.Context, storageRef string) (string, error) {
	resolve := func() (string, error) {
		return s.s3Client.ResolveURL(ctx, storageRef)
	}

	if s.urlCache == nil {
		return resolve()
	}

	ttl := configs.GetConfig().S3.GetURLCacheTTL()

	return cache.GetOrSet(ctx, s.urlCache, cache.Key("url", storageRef), resolve, ttl)
}
