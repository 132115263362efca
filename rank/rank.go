// Package rank 把相似度分数转换为有序的推荐位置列表。
//
// 排序是确定性的：分数降序，同分按语料位置升序。
// 排除项与 MinScore 在截断之前生效。
package rank

import "sort"

// Scored 是语料位置与其分数。
type Scored struct {
	Index int
	Score float64
}

// Options 控制排序结果。
type Options struct {
	// Exclude 非 nil 时剔除该位置（物品到物品模式剔除查询物品自身）
	Exclude *int
	// MinScore 非 nil 时剔除分数低于它的项
	MinScore *float64
	// TopN 只对 Rank 生效；<= 0 返回空结果
	TopN int
}

// FromRow 把一行稠密分数（下标即语料位置）转换为 Scored 列表，保持位置顺序。
func FromRow(row []float64) []Scored {
	out := make([]Scored, len(row))
	for i, s := range row {
		out[i] = Scored{Index: i, Score: s}
	}
	return out
}

// Order 过滤并排序，不截断。输入切片不会被修改；Exclude 按 Scored.Index 匹配。
func Order(scored []Scored, opts Options) []Scored {
	out := make([]Scored, 0, len(scored))
	for _, s := range scored {
		if opts.Exclude != nil && *opts.Exclude == s.Index {
			continue
		}
		if opts.MinScore != nil && s.Score < *opts.MinScore {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Rank 返回 Order 结果的前 TopN 项，不足时不补齐。
func Rank(scored []Scored, opts Options) []Scored {
	if opts.TopN <= 0 {
		return []Scored{}
	}
	out := Order(scored, opts)
	if len(out) > opts.TopN {
		out = out[:opts.TopN]
	}
	return out
}
