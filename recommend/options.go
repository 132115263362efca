package recommend

import (
	"github.com/rs/zerolog"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/feature"
	"github.com/rushteam/gamerec/pipeline"
	"github.com/rushteam/gamerec/resolve"
)

// Option 配置 Engine。
type Option func(*Engine)

// WithLogger 设置日志器，引擎会附加 component=recommend。
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l.With().Str("component", "recommend").Logger() }
}

// WithVectorizer 设置 Load 使用的向量化参数。
func WithVectorizer(v feature.Vectorizer) Option {
	return func(e *Engine) { e.vectorizer = v }
}

// WithResolver 设置名称解析器。
func WithResolver(r *resolve.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithPipeline 设置后处理 Pipeline，引擎会在末尾追加 Top-N 截断。
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(e *Engine) { e.pipeline = p }
}

// WithStore 启用画像结果缓存，ttl 单位为秒（<= 0 不过期）。
func WithStore(s core.Store, ttl int) Option {
	return func(e *Engine) {
		e.store = s
		e.cacheTTL = ttl
	}
}

// WithWorkers 设置构建相似度矩阵的并发数。
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}
