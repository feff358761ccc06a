package cache_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yeisme/filedrive/pkg/cache"
)

// resolvedURL 测试用的缓存负载，模拟预签名 URL 解析结果.
type resolvedURL struct {
	StorageRef string `json:"storage_ref"`
	URL        string `json:"url"`
}

// mockKVStore 模拟KV存储实现.
type mockKVStore struct {
	data map[string][]byte
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		data: make(map[string][]byte),
	}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, exists := m.data[key]; exists {
		return value, nil
	}

	return nil, fmt.Errorf("key not found")
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockKVStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKVStore) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data[key]
	return exists, nil
}

func (m *mockKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *mockKVStore) Close() error {
	return nil
}

// TestKeyDeterministic 同一输入生成相同键，不同输入生成不同键.
func TestKeyDeterministic(t *testing.T) {
	k1 := cache.Key("url", "org1/cat.png")
	k2 := cache.Key("url", "org1/cat.png")
	k3 := cache.Key("url", "org1/dog.png")

	if k1 != k2 {
		t.Errorf("same input produced different keys: %s vs %s", k1, k2)
	}

	if k1 == k3 {
		t.Errorf("different inputs produced same key: %s", k1)
	}

	if k1 == cache.Key("trash", "org1/cat.png") {
		t.Error("namespace should change the key")
	}
}

// TestCacheRoundTrip 测试 Set/Get 往返.
func TestCacheRoundTrip(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	if _, err := cache.Get[resolvedURL](ctx, c, "nonexistent"); err == nil {
		t.Error("expected error for nonexistent key")
	}

	entry := resolvedURL{StorageRef: "org1/cat.png", URL: "http://minio/presigned"}
	key := cache.Key("url", entry.StorageRef)

	if err := cache.Set(ctx, c, key, entry, 0); err != nil {
		t.Fatalf("failed to set cache: %v", err)
	}

	got, err := cache.Get[resolvedURL](ctx, c, key)
	if err != nil {
		t.Fatalf("failed to get cache: %v", err)
	}

	if got != entry {
		t.Errorf("retrieved %+v does not match original %+v", got, entry)
	}
}

// TestCacheDelete 测试 Delete 与 Exists.
func TestCacheDelete(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	key := cache.Key("url", "org1/report.pdf")
	if err := cache.Set(ctx, c, key, "http://minio/presigned", 0); err != nil {
		t.Fatalf("failed to set cache: %v", err)
	}

	exists, err := c.Exists(ctx, key)
	if err != nil || !exists {
		t.Fatalf("exists = %v, %v; want true, nil", exists, err)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("failed to delete cache: %v", err)
	}

	exists, err = c.Exists(ctx, key)
	if err != nil {
		t.Fatalf("failed to check existence after deletion: %v", err)
	}

	if exists {
		t.Error("key should not exist after deletion")
	}
}

// TestGetOrSet 测试 GetOrSet 只计算一次.
func TestGetOrSet(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	callCount := 0
	getter := func() (string, error) {
		callCount++
		return "http://minio/presigned", nil
	}

	key := cache.Key("url", "org1/photo.jpg")

	url1, err := cache.GetOrSet(ctx, c, key, getter, time.Minute)
	if err != nil {
		t.Fatalf("failed to get or set: %v", err)
	}

	url2, err := cache.GetOrSet(ctx, c, key, getter, time.Minute)
	if err != nil {
		t.Fatalf("failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("expected getter to be called once, got %d", callCount)
	}

	if url1 != url2 {
		t.Errorf("results don't match: %s vs %s", url1, url2)
	}
}

// TestGetOrSet_GetterError 测试 getter 返回错误的情况.
func TestGetOrSet_GetterError(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	getter := func() (string, error) {
		return "", errors.New("presign failed")
	}

	if _, err := cache.GetOrSet(ctx, c, "url:error", getter, 0); err == nil {
		t.Error("expected error from getter")
	}
}

// TestCacheClear 测试 Clear 方法.
func TestCacheClear(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	for i := range 3 {
		key := cache.Key("url", fmt.Sprintf("org1/file-%d", i))
		if err := cache.Set(ctx, c, key, "http://minio/presigned", 0); err != nil {
			t.Fatalf("failed to set cache %d: %v", i, err)
		}
	}

	if len(mockStore.data) != 3 {
		t.Fatalf("expected 3 items, got %d", len(mockStore.data))
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("failed to clear cache: %v", err)
	}

	if len(mockStore.data) != 0 {
		t.Errorf("expected 0 items after clear, got %d", len(mockStore.data))
	}
}
