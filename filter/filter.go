// Package filter 提供后处理阶段的过滤 Node 与过滤器（CEL 表达式、黑名单）。
package filter

import (
	"context"

	"github.com/rushteam/gamerec/core"
)

// Filter 判断一条推荐结果是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断 rec 是否应该被过滤
	ShouldFilter(ctx context.Context, rctx *core.RecommendContext, rec *core.Recommendation) (bool, error)
}
