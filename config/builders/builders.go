// Package builders 在 init 中注册内置后处理 Node，入口处以空白导入启用。
package builders

import (
	"fmt"

	"github.com/rushteam/gamerec/config"
	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/filter"
	"github.com/rushteam/gamerec/pipeline"
	"github.com/rushteam/gamerec/pkg/conv"
	"github.com/rushteam/gamerec/rerank"
)

func init() {
	config.Register("filter.expr", BuildExprFilterNode)
	config.Register("filter.blacklist", BuildBlacklistNode)
	config.Register("rerank.diversity", BuildDiversityNode)
	config.Register("rerank.topn", BuildTopNNode)
}

// BuildExprFilterNode 配置：expr（必填），strict
func BuildExprFilterNode(_ config.Deps, cfg map[string]any) (pipeline.Node, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("filter.expr: expr is required")
	}
	f, err := filter.NewExprFilter(expr)
	if err != nil {
		return nil, err
	}
	return &filter.FilterNode{
		Filters: []filter.Filter{f},
		Strict:  conv.ConfigGet(cfg, "strict", false),
	}, nil
}

// BuildBlacklistNode 配置：item_ids、names、key（从 Store 读取 JSON 数组）
func BuildBlacklistNode(deps config.Deps, cfg map[string]any) (pipeline.Node, error) {
	key := conv.ConfigGet(cfg, "key", "")
	var adapter *filter.StoreAdapter
	if key != "" {
		if deps.Store == nil {
			return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
				"filter.blacklist: key "+key+" requires a store backend")
		}
		adapter = filter.NewStoreAdapter(deps.Store)
	}
	f := filter.NewBlacklistFilter(
		conv.ConfigGetStrings(cfg, "item_ids"),
		conv.ConfigGetStrings(cfg, "names"),
		adapter,
		key,
	)
	return &filter.FilterNode{Filters: []filter.Filter{f}}, nil
}

// BuildDiversityNode 配置：group（genre/platform/mode），max_per_key
func BuildDiversityNode(_ config.Deps, cfg map[string]any) (pipeline.Node, error) {
	group := conv.ConfigGet(cfg, "group", core.GroupGenre)
	switch group {
	case core.GroupGenre, core.GroupPlatform, core.GroupMode:
	default:
		return nil, fmt.Errorf("rerank.diversity: unknown group %q", group)
	}
	return &rerank.Diversity{
		Group:     group,
		MaxPerKey: conv.ConfigGetInt(cfg, "max_per_key", 1),
	}, nil
}

// BuildTopNNode 配置：n
func BuildTopNNode(_ config.Deps, cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{N: conv.ConfigGetInt(cfg, "n", core.DefaultProfileTopN)}, nil
}
