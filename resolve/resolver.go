// Package resolve 把用户输入的名称解析为语料中的唯一位置。
//
// 解析分三级，依次尝试：精确匹配、大小写折叠匹配、模糊匹配。
// 前一级命中即返回，所以 ["Halo", "HALO Infinite"] 中查询 "Halo" 总是命中位置 0。
package resolve

import (
	"sort"
	"strings"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pkg/textnorm"
)

// 解析层级
const (
	TierExact           = "exact"
	TierCaseInsensitive = "case_insensitive"
	TierFuzzy           = "fuzzy"
)

// Resolution 是一次成功解析的结果。
type Resolution struct {
	Index        int
	Tier         string
	Ratio        float64  // 模糊匹配的比例；精确/折叠匹配为 1
	Alternatives []string // 模糊匹配时其余超过阈值的候选，按比例降序
}

// Resolver 是无状态的名称解析器，可并发使用。
type Resolver struct {
	// Cutoff 模糊匹配的最低比例，默认 0.6
	Cutoff float64
	// MaxSuggestions 候选上限（含命中项），默认 5
	MaxSuggestions int
	// Scorer 默认 SequenceRatio
	Scorer Scorer
}

// New 返回使用默认参数的解析器。
func New() *Resolver {
	return &Resolver{
		Cutoff:         core.DefaultResolveCutoff,
		MaxSuggestions: core.DefaultMaxSuggestions,
		Scorer:         SequenceRatio,
	}
}

type candidate struct {
	index int
	ratio float64
}

// Resolve 在 names 中查找 query。
// 查询为空返回 INVALID_INPUT；找不到返回 *core.NotFoundError，附带低于阈值的近似名称。
func (r *Resolver) Resolve(query string, names []string) (Resolution, error) {
	if strings.TrimSpace(query) == "" {
		return Resolution{}, core.NewDomainError(core.ModuleResolve, core.ErrorCodeInvalidInput, "resolve: empty query")
	}

	for i, n := range names {
		if n == query {
			return Resolution{Index: i, Tier: TierExact, Ratio: 1}, nil
		}
	}
	for i, n := range names {
		if textnorm.EqualFold(n, query) {
			return Resolution{Index: i, Tier: TierCaseInsensitive, Ratio: 1}, nil
		}
	}

	scorer := r.Scorer
	if scorer == nil {
		scorer = SequenceRatio
	}
	limit := r.MaxSuggestions
	if limit <= 0 {
		limit = core.DefaultMaxSuggestions
	}

	q := textnorm.Text(query)
	var above, below []candidate
	for i, n := range names {
		ratio := scorer(q, textnorm.Text(n))
		switch {
		case ratio >= r.Cutoff:
			above = append(above, candidate{i, ratio})
		case ratio > 0:
			below = append(below, candidate{i, ratio})
		}
	}
	byRatio(above)

	if len(above) == 0 {
		byRatio(below)
		if len(below) > limit {
			below = below[:limit]
		}
		sugg := make([]string, 0, len(below))
		for _, c := range below {
			sugg = append(sugg, names[c.index])
		}
		return Resolution{}, &core.NotFoundError{Query: query, Suggestions: sugg, Total: len(names)}
	}

	if len(above) > limit {
		above = above[:limit]
	}
	res := Resolution{Index: above[0].index, Tier: TierFuzzy, Ratio: above[0].ratio}
	for _, c := range above[1:] {
		res.Alternatives = append(res.Alternatives, names[c.index])
	}
	return res, nil
}

// 比例降序，同比例按语料位置升序
func byRatio(cs []candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].ratio != cs[j].ratio {
			return cs[i].ratio > cs[j].ratio
		}
		return cs[i].index < cs[j].index
	})
}
