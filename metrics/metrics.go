// Package metrics 定义推荐引擎的 Prometheus 指标，由 recommend 包记录。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 请求结果
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeNotReady = "not_ready"
	OutcomeError    = "error"
)

// 缓存结果
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamerec_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"kind", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamerec_request_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"kind"},
	)

	ResolveTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamerec_resolve_tier_total",
			Help: "Name resolutions by matching tier",
		},
		[]string{"tier"}, // exact, case_insensitive, fuzzy, not_found
	)

	Cache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamerec_cache_total",
			Help: "Profile result cache lookups",
		},
		[]string{"result"},
	)

	ModelItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamerec_model_items",
			Help: "Number of items in the active model",
		},
	)

	ModelVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamerec_model_vocabulary",
			Help: "Vocabulary size of the active model",
		},
	)

	ModelBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamerec_model_build_duration_seconds",
			Help:    "Time spent fitting the vectorizer and building the similarity matrix",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ObserveRequest 记录一次请求的结果与耗时。
func ObserveRequest(kind, outcome string, start time.Time) {
	Requests.WithLabelValues(kind, outcome).Inc()
	RequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// SetModel 在模型发布后更新规模指标。
func SetModel(items, vocabulary int, build time.Duration) {
	ModelItems.Set(float64(items))
	ModelVocabulary.Set(float64(vocabulary))
	ModelBuildDuration.Observe(build.Seconds())
}
