package rerank

import (
	"context"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pipeline"
	"github.com/rushteam/gamerec/pkg/textnorm"
)

// LabelDiversityKey 记录结果参与多样性计数时使用的类别。
const LabelDiversityKey = "diversity_key"

// Diversity 限制同一类别在结果中出现的次数。
// 类别取 Group 属性组的第一个标签（归一化后比较），没有标签的结果不受限制。
// 在截断之前执行，被挤掉的位置由后续结果补上。
type Diversity struct {
	Group     string // 默认 genre
	MaxPerKey int    // <= 0 表示不限制
}

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Diversity) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if n.MaxPerKey <= 0 || len(items) == 0 {
		return items, nil
	}

	group := n.Group
	if group == "" {
		group = core.GroupGenre
	}

	seen := make(map[string]int, 16)
	out := make([]*core.Recommendation, 0, len(items))
	for _, rec := range items {
		if rec == nil || rec.Item == nil {
			continue
		}
		tags := rec.Item.Group(group)
		if len(tags) == 0 {
			out = append(out, rec)
			continue
		}
		key := textnorm.Text(tags[0])
		if seen[key] >= n.MaxPerKey {
			continue
		}
		seen[key]++
		rec.PutLabel(LabelDiversityKey, core.Label{Value: group + ":" + key, Source: "rerank"})
		out = append(out, rec)
	}
	return out, nil
}
