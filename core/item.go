package core

import "time"

// 属性组名称，供 Diversity / 表达式过滤等节点按名称取值。
const (
	GroupGenre    = "genre"
	GroupPlatform = "platform"
	GroupMode     = "mode"
)

// CatalogItem 是目录中的一个物品（游戏），加载后不可变。
// ID 在目录内唯一；Name 归一化后非空（不满足的行在加载阶段被剔除）。
type CatalogItem struct {
	ID        string
	Name      string
	Genres    []string
	Platforms []string
	Modes     []string

	// Attrs 保存加载时识别到、但不参与向量化的列（如 price、average_rating）
	Attrs map[string]string
}

// Group 按名称返回属性组，未知名称返回 nil。
func (it *CatalogItem) Group(name string) []string {
	switch name {
	case GroupGenre:
		return it.Genres
	case GroupPlatform:
		return it.Platforms
	case GroupMode:
		return it.Modes
	default:
		return nil
	}
}

// Label 用于结果解释：记录分数来源、解析方式、过滤原因等。
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // resolve / rank / rerank / filter ...
}

// MergeLabel 合并同名 Label：Value 以 '|' 累积，Source 以 ',' 累积。
func MergeLabel(existing, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" || incoming == existing {
		return existing
	}
	merged := Label{Value: existing.Value + "|" + incoming.Value, Source: existing.Source}
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source != "" && incoming.Source != existing.Source:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}

// Recommendation 是推荐结果中的一项：物品引用、语料位置和相似度分数。
type Recommendation struct {
	Item     *CatalogItem     `json:"item"`
	Position int              `json:"position"`
	Score    float64          `json:"score"`
	Labels   map[string]Label `json:"labels,omitempty"`
}

// PutLabel 写入 Label；若已存在同名 key，则按 MergeLabel 累积。
func (r *Recommendation) PutLabel(key string, lbl Label) {
	if r.Labels == nil {
		r.Labels = make(map[string]Label)
	}
	if old, ok := r.Labels[key]; ok {
		r.Labels[key] = MergeLabel(old, lbl)
		return
	}
	r.Labels[key] = lbl
}

// QueryKind 区分两种推荐模式。
type QueryKind string

const (
	QuerySimilar QueryKind = "similar" // 物品到物品
	QueryProfile QueryKind = "profile" // 偏好画像到物品
)

// QueryInfo 描述一次请求是如何被解释的。
type QueryInfo struct {
	Kind QueryKind `json:"kind"`

	// 物品到物品模式
	Name         string   `json:"name,omitempty"`
	Resolved     string   `json:"resolved,omitempty"`
	Tier         string   `json:"tier,omitempty"`
	Ratio        float64  `json:"ratio,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`

	// 画像模式
	Profile  *Profile `json:"profile,omitempty"`
	Document string   `json:"document,omitempty"`

	BuildID string `json:"build_id"`
}

// Result 是一次推荐的输出：按分数降序、同分按语料位置升序。
type Result struct {
	Query           QueryInfo        `json:"query"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Len 返回结果数量。
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Recommendations)
}

// Names 按顺序返回结果中的物品名称。
func (r *Result) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		out = append(out, rec.Item.Name)
	}
	return out
}

// SystemInfo 是诊断/健康检查信息。
type SystemInfo struct {
	Ready          bool      `json:"ready"`
	ItemCount      int       `json:"item_count"`
	VocabularySize int       `json:"vocabulary_size"`
	MatrixShape    [2]int    `json:"matrix_shape"`
	Excluded       int       `json:"excluded"`
	BuildID        string    `json:"build_id,omitempty"`
	Fingerprint    string    `json:"fingerprint,omitempty"`
	BuiltAt        time.Time `json:"built_at,omitempty"`
}
