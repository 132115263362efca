package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/gamerec/core"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	_, err := s.Get(ctx, "missing")
	assert.True(t, core.IsStoreNotFound(err))

	val := []byte("v1")
	require.NoError(t, s.Set(ctx, "k", val))
	val[0] = 'x'
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	got[0] = 'y'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, "v1", string(again))

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.True(t, core.IsStoreNotFound(err))
	assert.NoError(t, s.Close())
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "short", []byte("a"), 5))
	require.NoError(t, s.Set(ctx, "forever", []byte("b"), 0))
	assert.Equal(t, 2, s.Len())

	now = now.Add(6 * time.Second)
	_, err := s.Get(ctx, "short")
	assert.True(t, core.IsStoreNotFound(err))
	_, err = s.Get(ctx, "forever")
	assert.NoError(t, err)

	s.evict()
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreMaxEntries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(WithMaxEntries(3))
	defer s.Close()
	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "a", []byte("1"), 10))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))
	require.NoError(t, s.Set(ctx, "c", []byte("3"), 5))
	require.NoError(t, s.Set(ctx, "d", []byte("4")))
	assert.Equal(t, 3, s.Len())
	_, err := s.Get(ctx, "c")
	assert.True(t, core.IsStoreNotFound(err), "soonest-expiring entry is evicted first")

	// 覆盖已有 key 不触发淘汰
	require.NoError(t, s.Set(ctx, "a", []byte("1b"), 10))
	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.Set(ctx, "e", []byte("5")))
	_, err = s.Get(ctx, "a")
	assert.True(t, core.IsStoreNotFound(err))
	for _, k := range []string{"b", "d", "e"} {
		_, err := s.Get(ctx, k)
		assert.NoError(t, err, k)
	}

	// 全部不过期时按 key 淘汰，容量始终不超过上限
	require.NoError(t, s.Set(ctx, "f", []byte("6")))
	assert.Equal(t, 3, s.Len())
	_, err = s.Get(ctx, "b")
	assert.True(t, core.IsStoreNotFound(err))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Config{Backend: BackendNone})
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = Open(ctx, Config{Backend: BackendMemory})
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, s.Name())
	assert.Equal(t, DefaultMaxEntries, s.(*MemoryStore).maxEntries)
	_ = s.Close()

	s, err = Open(ctx, Config{Backend: BackendMemory, MaxEntries: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, s.(*MemoryStore).maxEntries)
	_ = s.Close()

	_, err = Open(ctx, Config{Backend: "etcd"})
	assert.True(t, core.IsNotSupported(err))
}

// 设置 GAMEREC_TEST_REDIS_ADDR 后运行，例如 localhost:6379
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("GAMEREC_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("GAMEREC_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	s, err := NewRedisStore(ctx, RedisOptions{Addr: addr, KeyPrefix: "gamerec:test:"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 10))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.True(t, core.IsStoreNotFound(err))
}

func TestRedisStoreUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisStore(ctx, RedisOptions{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	de := core.GetDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, core.ErrorCodeUnavailable, de.Code)
}
