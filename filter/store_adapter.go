package filter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rushteam/gamerec/core"
)

// StoreAdapter 将 core.Store 适配为过滤器所需的存储接口。
// 黑名单以 JSON 字符串数组保存，例如 ["3","17"]。
type StoreAdapter struct {
	store core.Store
}

// NewStoreAdapter 创建一个 core.Store 适配器。
func NewStoreAdapter(s core.Store) *StoreAdapter {
	return &StoreAdapter{store: s}
}

// GetBlacklist 从 Store 读取黑名单。
func (a *StoreAdapter) GetBlacklist(ctx context.Context, key string) ([]string, error) {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("blacklist %s: %w", key, err)
	}
	return ids, nil
}

// SetBlacklist 写入黑名单，ttl 单位为秒。
func (a *StoreAdapter) SetBlacklist(ctx context.Context, key string, ids []string, ttl int) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, key, data, ttl)
}
