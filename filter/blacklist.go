package filter

import (
	"context"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pkg/textnorm"
)

// BlacklistFilter 过滤掉黑名单中的物品，可按 ID 或名称（归一化后比较）指定。
type BlacklistFilter struct {
	ids   map[string]struct{}
	names map[string]struct{}

	// Store 用于从存储中读取黑名单 ID（可选）
	Store BlacklistStore

	// Key 是 Store 中的黑名单 key（可选）
	Key string
}

// BlacklistStore 是黑名单存储接口。
type BlacklistStore interface {
	// GetBlacklist 获取黑名单物品 ID 列表
	GetBlacklist(ctx context.Context, key string) ([]string, error)
}

// NewBlacklistFilter 创建一个黑名单过滤器。
func NewBlacklistFilter(itemIDs, names []string, storeAdapter *StoreAdapter, key string) *BlacklistFilter {
	f := &BlacklistFilter{
		ids:   make(map[string]struct{}, len(itemIDs)),
		names: make(map[string]struct{}, len(names)),
		Key:   key,
	}
	for _, id := range itemIDs {
		f.ids[id] = struct{}{}
	}
	for _, n := range names {
		f.names[textnorm.Text(n)] = struct{}{}
	}
	if storeAdapter != nil {
		f.Store = storeAdapter
	}
	return f
}

func (f *BlacklistFilter) Name() string {
	return "filter.blacklist"
}

func (f *BlacklistFilter) ShouldFilter(
	ctx context.Context,
	_ *core.RecommendContext,
	rec *core.Recommendation,
) (bool, error) {
	if rec == nil || rec.Item == nil {
		return true, nil
	}
	if _, ok := f.ids[rec.Item.ID]; ok {
		return true, nil
	}
	if len(f.names) > 0 {
		if _, ok := f.names[textnorm.Text(rec.Item.Name)]; ok {
			return true, nil
		}
	}

	if f.Store != nil && f.Key != "" {
		blacklist, err := f.Store.GetBlacklist(ctx, f.Key)
		if err != nil {
			if core.IsStoreNotFound(err) {
				return false, nil
			}
			return false, err
		}
		for _, id := range blacklist {
			if rec.Item.ID == id {
				return true, nil
			}
		}
	}
	return false, nil
}
