// Package pipeline 把排序之后的后处理拆成可组合的 Node 链（过滤、多样性、截断）。
package pipeline

import (
	"context"
	"fmt"

	"github.com/rushteam/gamerec/core"
)

// Pipeline 依次执行 Nodes，任一 Node 出错即中止。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if p == nil {
		return items, nil
	}
	cur := items
	for _, node := range p.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", node.Name(), err)
		}
		cur = next
	}
	return cur, nil
}

// With 返回追加了 nodes 的新 Pipeline，原 Pipeline 不变。
func (p *Pipeline) With(nodes ...Node) *Pipeline {
	var base []Node
	if p != nil {
		base = p.Nodes
	}
	out := make([]Node, 0, len(base)+len(nodes))
	out = append(out, base...)
	out = append(out, nodes...)
	return &Pipeline{Nodes: out}
}
