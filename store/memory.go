package store

import (
	"context"
	"sync"
	"time"

	"github.com/rushteam/gamerec/core"
)

// MemoryStore 是内存实现的 Store，用于单进程部署与测试。
// 支持 TTL（过期时间），进程重启后数据丢失。
// 条目数达到 MaxEntries 时，写入新 key 前先淘汰最早过期的条目（不过期的条目最后淘汰）。
type MemoryStore struct {
	mu         sync.RWMutex
	data       map[string]entry
	maxEntries int
	now        func() time.Time
	clean      *time.Ticker
	done       chan struct{}
	once       sync.Once
}

// DefaultMaxEntries 是 MemoryStore 的默认容量。
const DefaultMaxEntries = core.DefaultCacheMaxEntries

// MemoryOption 配置 MemoryStore。
type MemoryOption func(*MemoryStore)

// WithMaxEntries 设置容量上限，<= 0 使用 DefaultMaxEntries。
func WithMaxEntries(n int) MemoryOption {
	return func(m *MemoryStore) {
		if n > 0 {
			m.maxEntries = n
		}
	}
}

type entry struct {
	value  []byte
	expire time.Time // 零值表示不过期
}

func (e entry) expired(now time.Time) bool {
	return !e.expire.IsZero() && now.After(e.expire)
}

// NewMemoryStore 创建 MemoryStore，并启动后台过期清理。调用方需 Close。
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	ms := &MemoryStore{
		data:       make(map[string]entry),
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
		clean:      time.NewTicker(10 * time.Second),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	go ms.cleanup()
	return ms
}

func (m *MemoryStore) Name() string { return BackendMemory }

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[key]
	if !ok || e.expired(m.now()) {
		return nil, core.ErrStoreNotFound
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl ...int) error {
	e := entry{value: append([]byte(nil), value...)}
	if len(ttl) > 0 && ttl[0] > 0 {
		e.expire = m.now().Add(time.Duration(ttl[0]) * time.Second)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok && len(m.data) >= m.maxEntries {
		m.evictLocked(m.now())
		for len(m.data) >= m.maxEntries {
			m.dropSoonestLocked()
		}
	}
	m.data[key] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Len 返回未过期的 key 数量。
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.now()
	n := 0
	for _, e := range m.data {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

func (m *MemoryStore) Close() error {
	m.once.Do(func() {
		m.clean.Stop()
		close(m.done)
	})
	return nil
}

func (m *MemoryStore) cleanup() {
	for {
		select {
		case <-m.done:
			return
		case <-m.clean.C:
			m.evict()
		}
	}
}

func (m *MemoryStore) evict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictLocked(m.now())
}

func (m *MemoryStore) evictLocked(now time.Time) {
	for k, e := range m.data {
		if e.expired(now) {
			delete(m.data, k)
		}
	}
}

// dropSoonestLocked 淘汰一个条目：过期时间最早者优先，同为不过期时按 key 取最小者。
func (m *MemoryStore) dropSoonestLocked() {
	var victim string
	var best entry
	found := false
	for k, e := range m.data {
		if !found || sooner(e, k, best, victim) {
			victim, best, found = k, e, true
		}
	}
	if found {
		delete(m.data, victim)
	}
}

func sooner(a entry, ak string, b entry, bk string) bool {
	switch {
	case a.expire.IsZero() != b.expire.IsZero():
		return !a.expire.IsZero()
	case !a.expire.Equal(b.expire):
		return a.expire.Before(b.expire)
	default:
		return ak < bk
	}
}

var _ core.Store = (*MemoryStore)(nil)
