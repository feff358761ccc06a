// Package service 实现文件注册表的业务逻辑：元数据登记、查询、收藏与两段式删除.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid"

	"github.com/yeisme/filedrive/pkg/cache"
	ctxPkg "github.com/yeisme/filedrive/pkg/context"
	"github.com/yeisme/filedrive/pkg/internal/storage"
	dbc "github.com/yeisme/filedrive/pkg/internal/storage/db"
	kvc "github.com/yeisme/filedrive/pkg/internal/storage/kv"
	mqc "github.com/yeisme/filedrive/pkg/internal/storage/mq"
	s3c "github.com/yeisme/filedrive/pkg/internal/storage/s3"
)

// FileService 聚合注册表操作所需的存储客户端.
type FileService struct {
	dbClient *dbc.Client
	s3Client *s3c.Client
	kvClient *kvc.Client
	mqClient *mqc.Client
	urlCache *cache.Cache
}

// NewFileService 从请求上下文中的存储管理器构造服务.
func NewFileService(c context.Context) *FileService {
	return NewFileServiceWithManager(ctxPkg.GetManager(c))
}

// NewFileServiceWithManager 直接注入 Manager，测试用.
func NewFileServiceWithManager(mgr *storage.Manager) *FileService {
	s := &FileService{}
	if mgr == nil {
		return s
	}

	s.dbClient = mgr.GetDBClient()
	s.s3Client = mgr.GetS3Client()
	s.kvClient = mgr.GetKVClient()
	s.mqClient = mgr.GetMQClient()

	if s.kvClient != nil {
		s.urlCache = cache.NewCache(s.kvClient)
	}

	return s
}

// FavoriteService 收藏相关能力.
type FavoriteService struct{ *FileService }

// NewFavoriteService 构造收藏服务.
func NewFavoriteService(c context.Context) *FavoriteService {
	return &FavoriteService{NewFileService(c)}
}

// NewFavoriteServiceWithManager 直接注入 Manager，测试用.
func NewFavoriteServiceWithManager(mgr *storage.Manager) *FavoriteService {
	return &FavoriteService{NewFileServiceWithManager(mgr)}
}

// TrashService 回收站与生命周期能力.
type TrashService struct{ *FileService }

// NewTrashService 构造回收站服务.
func NewTrashService(c context.Context) *TrashService {
	return &TrashService{NewFileService(c)}
}

// NewTrashServiceWithManager 直接注入 Manager，测试用.
func NewTrashServiceWithManager(mgr *storage.Manager) *TrashService {
	return &TrashService{NewFileServiceWithManager(mgr)}
}

// ULID 熵源；Monotonic reader 非并发安全，加锁保护.
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// newFileID 生成按时间有序的文件 ID.
func newFileID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Now(), entropy).String()
}
