package rerank

import (
	"context"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pipeline"
)

// TopNNode 截取前 N 个结果，引擎总是把它作为 Pipeline 的最后一个节点。
//
//	p := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rerank.Diversity{MaxPerKey: 2}, // 多样性
//	        &rerank.TopNNode{N: 10},         // 截取 Top 10
//	    },
//	}
type TopNNode struct {
	// N 要保留的数量；N <= 0 返回空结果，N 超过结果数时原样返回
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if n.N <= 0 {
		return []*core.Recommendation{}, nil
	}
	if len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
