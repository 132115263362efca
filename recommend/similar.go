package recommend

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/metrics"
	"github.com/rushteam/gamerec/rank"
	"github.com/rushteam/gamerec/rerank"
	"github.com/rushteam/gamerec/resolve"
)

// RecommendSimilarTo 返回与 name 最相似的 topN 个物品，查询物品自身总被排除。
// minScore 非 nil 时先剔除低于它的物品再截断。
func (e *Engine) RecommendSimilarTo(ctx context.Context, name string, topN int, minScore *float64) (res *core.Result, err error) {
	start := time.Now()
	defer func() { observe(core.QuerySimilar, start, err) }()

	m, err := e.current()
	if err != nil {
		return nil, err
	}

	names := m.Names()
	r, err := e.resolver.Resolve(name, names)
	if err != nil {
		if core.IsNotFound(err) {
			metrics.ResolveTier.WithLabelValues("not_found").Inc()
			e.log.Debug().Str("query", name).Err(err).Msg("item not found")
		}
		return nil, err
	}
	metrics.ResolveTier.WithLabelValues(r.Tier).Inc()
	if r.Tier == resolve.TierFuzzy {
		e.log.Info().
			Str("query", name).
			Str("match", names[r.Index]).
			Float64("ratio", r.Ratio).
			Strs("alternatives", r.Alternatives).
			Msg("fuzzy name resolution")
	}

	exclude := r.Index
	scored := rank.Order(rank.FromRow(m.Matrix.Row(r.Index)), rank.Options{Exclude: &exclude, MinScore: minScore})

	query := core.QueryInfo{
		Kind:         core.QuerySimilar,
		Name:         name,
		Resolved:     names[r.Index],
		Tier:         r.Tier,
		Ratio:        r.Ratio,
		Alternatives: r.Alternatives,
		BuildID:      m.BuildID,
	}
	rctx := &core.RecommendContext{RequestID: uuid.NewString(), Query: &query}

	recs, err := e.run(ctx, rctx, toRecommendations(m, scored, map[string]core.Label{
		LabelScoreSource: {Value: ScoreItemCosine, Source: "rank"},
		LabelResolveTier: {Value: r.Tier, Source: "resolve"},
	}), topN)
	if err != nil {
		return nil, err
	}
	return &core.Result{Query: query, Recommendations: recs}, nil
}

// 引擎写入的 Label，可在 CEL 表达式中以 label.<key> 读取
const (
	LabelScoreSource = "score_source"
	LabelResolveTier = "resolve_tier"
)

// score_source 的取值
const (
	ScoreItemCosine    = "item_cosine"
	ScoreProfileCosine = "profile_cosine"
)

// toRecommendations 按排序结果创建推荐项，每项都写入 labels。
func toRecommendations(m *Model, scored []rank.Scored, labels map[string]core.Label) []*core.Recommendation {
	out := make([]*core.Recommendation, 0, len(scored))
	for _, s := range scored {
		rec := &core.Recommendation{
			Item:     m.Corpus.Item(s.Index),
			Position: s.Index,
			Score:    s.Score,
		}
		for k, lbl := range labels {
			rec.PutLabel(k, lbl)
		}
		out = append(out, rec)
	}
	return out
}

// cloneRecs 复制结果，Labels 也重新分配，调用方之间互不影响。
func cloneRecs(recs []core.Recommendation) []core.Recommendation {
	out := make([]core.Recommendation, len(recs))
	for i, r := range recs {
		out[i] = r
		if r.Labels != nil {
			out[i].Labels = make(map[string]core.Label, len(r.Labels))
			for k, v := range r.Labels {
				out[i].Labels[k] = v
			}
		}
	}
	return out
}

func topNNode(n int) *rerank.TopNNode { return &rerank.TopNNode{N: n} }
