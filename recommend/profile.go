package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/metrics"
	"github.com/rushteam/gamerec/pkg/textnorm"
	"github.com/rushteam/gamerec/rank"
	"github.com/rushteam/gamerec/similarity"
)

// cachedRec 是缓存中的一条结果，物品从模型按位置还原。
type cachedRec struct {
	Position int                   `json:"p"`
	Score    float64               `json:"s"`
	Labels   map[string]core.Label `json:"l,omitempty"`
}

// RecommendForProfile 按偏好画像推荐 topN 个物品。
// 词表外的标签不贡献权重；所有标签都未知时，物品以 0 分按语料顺序返回。
func (e *Engine) RecommendForProfile(ctx context.Context, p core.Profile, topN int) (res *core.Result, err error) {
	start := time.Now()
	defer func() { observe(core.QueryProfile, start, err) }()

	m, err := e.current()
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, &core.InvalidQueryError{Reason: "genres, platforms and modes are all empty"}
	}
	doc := textnorm.Text(p.Document())
	if doc == "" {
		return nil, &core.InvalidQueryError{Reason: "profile is empty after normalization"}
	}

	norm := normalizeProfile(p)
	query := core.QueryInfo{
		Kind:     core.QueryProfile,
		Profile:  &norm,
		Document: doc,
		BuildID:  m.BuildID,
	}

	key := profileKey(m.Fingerprint, norm, topN)
	if recs, ok := e.cacheGet(ctx, m, key); ok {
		return &core.Result{Query: query, Recommendations: recs}, nil
	}

	// 合并的请求共享同一次计算，计算不随任何一个调用方取消；
	// 每个调用方在返回前只检查自己的 ctx
	shared := context.WithoutCancel(ctx)
	v, err, _ := e.group.Do(key, func() (any, error) {
		scores := similarity.ToCorpus(m.Space.Transform(doc), m.Vectors)
		scored := rank.Order(rank.FromRow(scores), rank.Options{})
		rctx := &core.RecommendContext{RequestID: uuid.NewString(), Query: &query}
		recs, err := e.run(shared, rctx, toRecommendations(m, scored, map[string]core.Label{
			LabelScoreSource: {Value: ScoreProfileCosine, Source: "rank"},
		}), topN)
		if err != nil {
			return nil, err
		}
		e.cacheSet(shared, key, recs)
		return recs, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &core.Result{Query: query, Recommendations: cloneRecs(v.([]core.Recommendation))}, nil
}

func normalizeProfile(p core.Profile) core.Profile {
	return core.Profile{
		Genres:    normalizeTags(p.Genres),
		Platforms: normalizeTags(p.Platforms),
		Modes:     normalizeTags(p.Modes),
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := textnorm.Text(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// profileKey 以模型指纹开头：同一语料与参数的多个实例共享缓存条目，模型变化后旧条目自然失效。
func profileKey(fingerprint string, p core.Profile, topN int) string {
	return fmt.Sprintf("profile:%s:%d:%s|%s|%s", fingerprint, topN,
		strings.Join(p.Genres, ","), strings.Join(p.Platforms, ","), strings.Join(p.Modes, ","))
}

// 缓存读取失败只记录告警，按未命中处理
func (e *Engine) cacheGet(ctx context.Context, m *Model, key string) ([]core.Recommendation, bool) {
	if e.store == nil {
		return nil, false
	}
	data, err := e.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			metrics.Cache.WithLabelValues(metrics.CacheMiss).Inc()
		} else {
			metrics.Cache.WithLabelValues(metrics.CacheError).Inc()
			e.log.Warn().Err(err).Str("backend", e.store.Name()).Msg("cache get failed")
		}
		return nil, false
	}
	var cached []cachedRec
	if err := json.Unmarshal(data, &cached); err != nil {
		metrics.Cache.WithLabelValues(metrics.CacheError).Inc()
		e.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt")
		return nil, false
	}
	recs := make([]core.Recommendation, 0, len(cached))
	for _, c := range cached {
		if c.Position < 0 || c.Position >= m.Corpus.Len() {
			metrics.Cache.WithLabelValues(metrics.CacheError).Inc()
			return nil, false
		}
		recs = append(recs, core.Recommendation{
			Item:     m.Corpus.Item(c.Position),
			Position: c.Position,
			Score:    c.Score,
			Labels:   c.Labels,
		})
	}
	metrics.Cache.WithLabelValues(metrics.CacheHit).Inc()
	return recs, true
}

func (e *Engine) cacheSet(ctx context.Context, key string, recs []core.Recommendation) {
	if e.store == nil {
		return
	}
	cached := make([]cachedRec, len(recs))
	for i, r := range recs {
		cached[i] = cachedRec{Position: r.Position, Score: r.Score, Labels: r.Labels}
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := e.store.Set(ctx, key, data, e.cacheTTL); err != nil {
		metrics.Cache.WithLabelValues(metrics.CacheError).Inc()
		e.log.Warn().Err(err).Str("backend", e.store.Name()).Msg("cache set failed")
	}
}
