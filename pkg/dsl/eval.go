// Package dsl 提供基于 CEL (Common Expression Language) 的结果表达式。
//
// 表达式在 Compile 时编译一次，之后 Evaluate 可并发调用。可用变量：
//   - item.id / item.name / item.genres / item.platforms / item.modes
//   - item.score / item.position / item.attrs
//   - label.<key>（Label 的 Value）
//   - query.kind / query.name / query.genres / query.platforms / query.modes
//
// 示例：
//   - `"RPG" in item.genres`
//   - `item.score >= 0.2 && !("Mobile" in item.platforms)`
//   - `query.kind == "profile" || item.name != query.name`
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/gamerec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("query", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Expr 是编译好的布尔表达式。
type Expr struct {
	src string
	prg cel.Program
}

// Compile 编译表达式，语法错误返回 INVALID_INPUT。
func Compile(src string) (*Expr, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			fmt.Sprintf("dsl: compile %q: %v", src, issues.Err()))
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			fmt.Sprintf("dsl: program %q: %v", src, err))
	}
	return &Expr{src: src, prg: prg}, nil
}

// String 返回表达式源码。
func (e *Expr) String() string { return e.src }

// Evaluate 对一条推荐结果求值，表达式必须返回 bool。
func (e *Expr) Evaluate(rec *core.Recommendation, rctx *core.RecommendContext) (bool, error) {
	out, _, err := e.prg.Eval(Input(rec, rctx))
	if err != nil {
		return false, fmt.Errorf("dsl: eval %q: %w", e.src, err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("dsl: expression %q must return boolean, got %T", e.src, out.Value())
	}
	return result, nil
}

// Input 构建 CEL 的输入变量。
// 缺失的列表一律给空列表，这样 `x in item.genres` 不会因 null 报错。
func Input(rec *core.Recommendation, rctx *core.RecommendContext) map[string]any {
	item := map[string]any{
		"id":        "",
		"name":      "",
		"genres":    []string{},
		"platforms": []string{},
		"modes":     []string{},
		"attrs":     map[string]string{},
		"score":     0.0,
		"position":  -1,
	}
	label := map[string]any{}
	if rec != nil {
		item["score"] = rec.Score
		item["position"] = rec.Position
		if it := rec.Item; it != nil {
			item["id"] = it.ID
			item["name"] = it.Name
			item["genres"] = orEmpty(it.Genres)
			item["platforms"] = orEmpty(it.Platforms)
			item["modes"] = orEmpty(it.Modes)
			if it.Attrs != nil {
				item["attrs"] = it.Attrs
			}
		}
		for k, v := range rec.Labels {
			label[k] = v.Value
		}
	}

	query := map[string]any{
		"kind":      "",
		"name":      "",
		"genres":    []string{},
		"platforms": []string{},
		"modes":     []string{},
	}
	if rctx != nil && rctx.Query != nil {
		q := rctx.Query
		query["kind"] = string(q.Kind)
		query["name"] = q.Resolved
		if q.Profile != nil {
			query["genres"] = orEmpty(q.Profile.Genres)
			query["platforms"] = orEmpty(q.Profile.Platforms)
			query["modes"] = orEmpty(q.Profile.Modes)
		}
	}

	return map[string]any{
		"item":  item,
		"label": label,
		"query": query,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
