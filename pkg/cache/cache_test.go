package cache_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yeisme/tunevault/pkg/cache"
)

// trackSummary 测试用的列表项结构体.
type trackSummary struct {
	ID        string `json:"id"`
	ObjectKey string `json:"object_key"`
	Size      int64  `json:"size"`
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

// TestCacheRoundTrip 测试 Set/Get 往返.
func TestCacheRoundTrip(t *testing.T) {
	c := cache.NewCache(newMockKVStore())
	ctx := context.Background()

	// 获取不存在的键
	if _, err := cache.Get[[]trackSummary](ctx, c, "tracks:list"); err == nil {
		t.Error("Expected error for nonexistent key")
	}

	list := []trackSummary{
		{ID: "01A", ObjectKey: "song_one.mp3", Size: 1024},
		{ID: "01B", ObjectKey: "song_two.flac", Size: 2048},
	}

	if err := cache.Set(ctx, c, "tracks:list", list, 0); err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	got, err := cache.Get[[]trackSummary](ctx, c, "tracks:list")
	if err != nil {
		t.Fatalf("Failed to get cache: %v", err)
	}

	if len(got) != 2 || got[0].ObjectKey != "song_one.mp3" || got[1].Size != 2048 {
		t.Errorf("Retrieved list %+v does not match original %+v", got, list)
	}
}

// TestCacheDelete 测试删除后读取失败.
func TestCacheDelete(t *testing.T) {
	c := cache.NewCache(newMockKVStore())
	ctx := context.Background()

	if err := cache.Set(ctx, c, "tracks:list", []trackSummary{{ID: "01A"}}, 0); err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	if err := c.Delete(ctx, "tracks:list"); err != nil {
		t.Fatalf("Failed to delete cache: %v", err)
	}

	exists, err := c.Exists(ctx, "tracks:list")
	if err != nil || exists {
		t.Errorf("expected key gone, exists=%v err=%v", exists, err)
	}
}

// TestGetOrSet 测试 GetOrSet 模式.
func TestGetOrSet(t *testing.T) {
	c := cache.NewCache(newMockKVStore())
	ctx := context.Background()

	calls := 0
	getter := func() ([]trackSummary, error) {
		calls++
		return []trackSummary{{ID: "01C", ObjectKey: "third.ogg"}}, nil
	}

	for range 2 {
		got, err := cache.GetOrSet(ctx, c, "tracks:list", getter, time.Minute)
		if err != nil {
			t.Fatalf("GetOrSet failed: %v", err)
		}

		if len(got) != 1 || got[0].ID != "01C" {
			t.Errorf("unexpected value: %+v", got)
		}
	}

	if calls != 1 {
		t.Errorf("getter called %d times, want 1", calls)
	}
}

// TestGetOrSetGetterError getter 错误应当透传.
func TestGetOrSetGetterError(t *testing.T) {
	c := cache.NewCache(newMockKVStore())
	ctx := context.Background()

	wantErr := errors.New("db unavailable")

	_, err := cache.GetOrSet(ctx, c, "tracks:list", func() ([]trackSummary, error) {
		return nil, wantErr
	}, time.Minute)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected getter error, got %v", err)
	}
}
