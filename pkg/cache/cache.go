// Package cache 提供基于键值存储的泛型缓存实现.
//
// 注册表用它缓存已解析的预签名 URL：键由 Key 派生（xxhash 摘要，避免
// storage_ref 中的特殊字符撑爆后端键空间），TTL 必须小于预签名有效期.
//
// 基本用法:
//
//	c := cache.NewCache(kvStore)
//
//	// 缓存解析结果
//	err := cache.Set(ctx, c, cache.Key("url", storageRef), url, ttl)
//
//	// 获取缓存数据
//	url, err := cache.Get[string](ctx, c, cache.Key("url", storageRef))
//
//	// 使用GetOrSet模式
//	url, err := cache.GetOrSet(ctx, c, key, func() (string, error) {
//	    return resolvePresigned(storageRef)
//	}, ttl)
//
// 线程安全取决于底层的KV存储实现，缓存未命中不会被视为错误.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"

	"github.com/yeisme/filedrive/pkg/internal/storage/kv"
)

// Cache 基于KV存储的缓存实现.
type Cache struct {
	kvStore kv.KVStore
}

// NewCache 创建一个新的缓存实例.
func NewCache(kvStore kv.KVStore) *Cache {
	return &Cache{
		kvStore: kvStore,
	}
}

// Key 由命名空间和原始键派生一个定长缓存键.
func Key(namespace, raw string) string {
	return fmt.Sprintf("%s:%x", namespace, xxhash.Sum64String(raw))
}

// Get 泛型获取缓存值.
func Get[T any](ctx context.Context, c *Cache, key string) (T, error) {
	var zero T

	data, err := c.kvStore.Get(ctx, key)
	if err != nil {
		return zero, err
	}

	var value T
	if err := sonic.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return value, nil
}

// Set 泛型设置缓存值.
func Set[T any](ctx context.Context, c *Cache, key string, value T, ttl time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return c.kvStore.Set(ctx, key, data, ttl)
}

// Delete 删除缓存键.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.kvStore.Delete(ctx, key)
}

// Exists 检查缓存键是否存在.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	return c.kvStore.Exists(ctx, key)
}

// GetOrSet 获取缓存值，如果不存在则通过 getter 计算并回填.
func GetOrSet[T any](ctx context.Context, c *Cache, key string, getter func() (T, error), ttl time.Duration) (T, error) {
	var zero T

	if value, err := Get[T](ctx, c, key); err == nil {
		return value, nil
	}

	value, err := getter()
	if err != nil {
		return zero, err
	}

	if setErr := Set(ctx, c, key, value, ttl); setErr != nil {
		// 缓存回填失败不影响返回值
		return value, nil
	}

	return value, nil
}

// Clear 清空缓存（如果后端支持枚举键）.
func (c *Cache) Clear(ctx context.Context) error {
	keys, err := c.kvStore.Keys(ctx, "*")
	if err != nil {
		return err
	}

	for _, key := range keys {
		if delErr := c.kvStore.Delete(ctx, key); delErr != nil {
			return delErr
		}
	}

	return nil
}
