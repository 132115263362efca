// Package recommend 是推荐引擎：持有当前模型，提供物品到物品与画像到物品两种推荐。
//
// 模型通过 atomic.Pointer 发布，重建在旁路完成后整体替换，
// 请求在开始时取得模型快照，整个请求只使用这一份快照。
package recommend

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rushteam/gamerec/catalog"
	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/feature"
	"github.com/rushteam/gamerec/metrics"
	"github.com/rushteam/gamerec/pipeline"
	"github.com/rushteam/gamerec/resolve"
)

// Engine 可被多个 goroutine 并发使用。
type Engine struct {
	model atomic.Pointer[Model]

	log        zerolog.Logger
	vectorizer feature.Vectorizer
	resolver   *resolve.Resolver
	pipeline   *pipeline.Pipeline
	workers    int

	store    core.Store
	cacheTTL int
	group    singleflight.Group
}

// New 创建尚未加载模型的引擎。
func New(opts ...Option) *Engine {
	e := &Engine{
		log:        zerolog.Nop(),
		vectorizer: feature.DefaultVectorizer(),
		resolver:   resolve.New(),
		pipeline:   &pipeline.Pipeline{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load 构建模型并发布。构建失败时保留当前模型。
func (e *Engine) Load(ctx context.Context, corpus *catalog.Corpus, stats catalog.LoadStats) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := Build(corpus, BuildConfig{Vectorizer: e.vectorizer, Workers: e.workers, Stats: stats})
	if err != nil {
		e.log.Error().Err(err).Msg("model build failed, keeping current model")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.Swap(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Swap 发布一个已构建的模型，返回前旧模型仍可被进行中的请求使用。
func (e *Engine) Swap(m *Model) error {
	if m == nil || m.Corpus == nil || m.Space == nil || m.Matrix == nil {
		return core.NewDomainError(core.ModuleRecommend, core.ErrorCodeInvalidInput, "recommend: incomplete model")
	}
	prev := e.model.Swap(m)
	metrics.SetModel(m.Corpus.Len(), m.Space.Size(), m.BuildDuration)

	ev := e.log.Info().
		Int("items", m.Corpus.Len()).
		Int("vocabulary", m.Space.Size()).
		Int("excluded", m.Stats.Excluded).
		Int("duplicates", m.Stats.Duplicates).
		Str("build_id", m.BuildID).
		Dur("duration", m.BuildDuration)
	if prev != nil {
		ev = ev.Str("previous_build_id", prev.BuildID)
	}
	ev.Msg("model published")
	return nil
}

// Model 返回当前模型，未加载时为 nil。
func (e *Engine) Model() *Model { return e.model.Load() }

// SystemInfo 返回诊断信息；未加载模型时 Ready 为 false。
func (e *Engine) SystemInfo() core.SystemInfo {
	m := e.model.Load()
	if m == nil {
		return core.SystemInfo{}
	}
	return m.Info()
}

// Items 按语料顺序返回全部物品。
func (e *Engine) Items() ([]*core.CatalogItem, error) {
	m := e.model.Load()
	if m == nil {
		return nil, core.ErrNotReady
	}
	return m.Corpus.Items(), nil
}

func (e *Engine) current() (*Model, error) {
	m := e.model.Load()
	if m == nil {
		return nil, core.ErrNotReady
	}
	return m, nil
}

// run 执行后处理并截断，始终返回非 nil 的结果切片。
func (e *Engine) run(ctx context.Context, rctx *core.RecommendContext, recs []*core.Recommendation, topN int) ([]core.Recommendation, error) {
	out, err := e.pipeline.With(topNNode(topN)).Run(ctx, rctx, recs)
	if err != nil {
		return nil, err
	}
	res := make([]core.Recommendation, 0, len(out))
	for _, r := range out {
		res = append(res, *r)
	}
	return res, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case core.IsNotFound(err):
		return metrics.OutcomeNotFound
	case core.IsInvalidQuery(err), core.IsInvalidInput(err):
		return metrics.OutcomeInvalid
	case core.IsNotReady(err):
		return metrics.OutcomeNotReady
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return metrics.OutcomeError
	}
}

func observe(kind core.QueryKind, start time.Time, err error) {
	metrics.ObserveRequest(string(kind), outcome(err), start)
}
