package filter

import (
	"context"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pkg/dsl"
)

// ExprFilter 保留使 CEL 表达式为 true 的结果，例如 `"RPG" in item.genres`。
type ExprFilter struct {
	Expr *dsl.Expr
}

// NewExprFilter 编译表达式并创建过滤器。
func NewExprFilter(expr string) (*ExprFilter, error) {
	e, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{Expr: e}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	rec *core.Recommendation,
) (bool, error) {
	if f.Expr == nil {
		return false, nil
	}
	keep, err := f.Expr.Evaluate(rec, rctx)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
