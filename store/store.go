// Package store 提供 core.Store 的实现：进程内 MemoryStore 与 Redis 共享的 RedisStore。
//
// 推荐引擎用它缓存画像查询结果，黑名单过滤器用它读取 ID 列表。
//
//	var s core.Store = store.NewMemoryStore()
package store

import (
	"context"
	"fmt"

	"github.com/rushteam/gamerec/core"
)

// 后端名称
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config 选择并配置存储后端。
type Config struct {
	Backend    string
	RedisAddr  string
	RedisDB    int
	KeyPrefix  string
	MaxEntries int // 仅 memory 后端；<= 0 使用 DefaultMaxEntries
}

// Open 按 Config 创建存储；Backend 为 none 或空时返回 (nil, nil)。
func Open(ctx context.Context, cfg Config) (core.Store, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return nil, nil
	case BackendMemory:
		return NewMemoryStore(WithMaxEntries(cfg.MaxEntries)), nil
	case BackendRedis:
		rs, err := NewRedisStore(ctx, RedisOptions{Addr: cfg.RedisAddr, DB: cfg.RedisDB, KeyPrefix: cfg.KeyPrefix})
		if err != nil {
			return nil, err
		}
		return rs, nil
	default:
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeNotSupported,
			fmt.Sprintf("store: unknown backend %q", cfg.Backend))
	}
}
