package filter

import (
	"context"
	"fmt"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pipeline"
)

// LabelFilterError 记录宽松模式下出错、被跳过的过滤器名称。
const LabelFilterError = "filter_error"

// FilterNode 组合多个过滤器，任何一个过滤器返回 true，该结果就会被移除。
// 结果的相对顺序保持不变。
type FilterNode struct {
	Filters []Filter

	// Strict 为 true 时过滤器出错会中止 Pipeline；否则跳过出错的过滤器
	Strict bool
}

func (n *FilterNode) Name() string {
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if len(n.Filters) == 0 || len(items) == 0 {
		return items, nil
	}

	out := make([]*core.Recommendation, 0, len(items))
	for _, rec := range items {
		if rec == nil {
			continue
		}
		drop := false
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, rec)
			if err != nil {
				if n.Strict {
					return nil, fmt.Errorf("%s: %w", f.Name(), err)
				}
				rec.PutLabel(LabelFilterError, core.Label{Value: f.Name(), Source: "filter"})
				continue
			}
			if ok {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, rec)
		}
	}
	return out, nil
}
