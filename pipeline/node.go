package pipeline

import (
	"context"

	"github.com/rushteam/gamerec/core"
)

// Kind 用于标记 Node 类型，方便观测与按阶段打点。
type Kind string

const (
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合约束的结果
	KindReRank      Kind = "rerank"      // 重排阶段：多样性、截断
	KindPostProcess Kind = "postprocess" // 其它结果修饰
)

// Node 是后处理 Pipeline 的最小可扩展单元。
// 输入是已排序、已按 min_score 过滤的结果，输出仍需保持相对顺序。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		items []*core.Recommendation,
	) ([]*core.Recommendation, error)
}
