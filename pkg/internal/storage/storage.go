// Package storage 聚合注册表依赖的存储资源：数据库、对象存储、KV 缓存与消息队列.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储客户端
//
//	s3Client := mgr.GetS3Client()
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"
	"sync"

	"github.com/yeisme/filedrive/pkg/configs"
	dbc "github.com/yeisme/filedrive/pkg/internal/storage/db"
	kvc "github.com/yeisme/filedrive/pkg/internal/storage/kv"
	mqc "github.com/yeisme/filedrive/pkg/internal/storage/mq"
	s3c "github.com/yeisme/filedrive/pkg/internal/storage/s3"
	nlog "github.com/yeisme/filedrive/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	S3 *s3c.Client
	DB *dbc.Client
	KV *kvc.Client
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
// MQ 为可选依赖：未开启 strict_connect 时连接失败仅记录告警，事件发布降级为空操作.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		// DB
		if dbi, e := dbc.New(ctx, &cfg.DB); e != nil {
			err = e
			return
		} else {
			m.DB = dbi
		}

		// S3
		if s3i, e := s3c.New(ctx, &cfg.S3); e != nil {
			err = e
			return
		} else {
			m.S3 = s3i
		}

		// KV
		if kvi, e := kvc.NewKVClient(ctx, &cfg.KV); e != nil {
			err = e
			return
		} else {
			m.KV = kvi
		}

		// MQ
		if mqi, e := mqc.New(ctx, &cfg.MQ); e != nil {
			if cfg.MQ.Common.StrictConnect {
				err = e
				return
			}

			nlog.Logger().Warn().Err(e).Msg("mq unavailable, event publishing disabled")
		} else {
			m.MQ = mqi
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// NewManager 构造一个非单例的 Manager，主要用于测试注入.
func NewManager(db *dbc.Client, s3 *s3c.Client, kv *kvc.Client, mq *mqc.Client) *Manager {
	return &Manager{DB: db, S3: s3, KV: kv, MQ: mq}
}

// GetS3Client 获取 S3 客户端.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取 MQ 客户端，可能为 nil.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}

// Close 释放所有存储资源.
func (m *Manager) Close() error {
	var err error

	if m.MQ != nil {
		if e := m.MQ.Close(); e != nil {
			err = e
		}
	}

	if m.KV != nil {
		if e := m.KV.Close(); e != nil {
			err = e
		}
	}

	if m.S3 != nil {
		if e := m.S3.Close(); e != nil {
			err = e
		}
	}

	if m.DB != nil {
		if sqlDB, e := m.DB.DB.DB(); e == nil {
			if e := sqlDB.Close(); e != nil {
				err = e
			}
		}
	}

	return err
}
