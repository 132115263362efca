// Package feature 实现 TF-IDF 向量化：在语料文档上拟合词表，并把物品或偏好伪文档投影到同一空间。
package feature

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/rushteam/gamerec/core"
)

// Vectorizer 是 TF-IDF 向量化器的参数：n-gram 跨度、文档频率上下限和最短词元长度。
//
// 词元 = 连续的字母/数字/下划线，长度不少于 MinTokenLen（按 rune 计）。
// n-gram 由相邻词元以单个空格连接。
type Vectorizer struct {
	NGramMin int

	NGramMax int

	// MaxDF 文档频率上限：<= 1 时为比例（df > MaxDF*N 的词被剔除），> 1 时为绝对文档数
	MaxDF float64

	// MinDF 词至少出现的文档数
	MinDF int

	MinTokenLen int
}

// DefaultVectorizer 返回默认参数：unigram + bigram，max_df 0.95，min_df 1。
func DefaultVectorizer() Vectorizer {
	return Vectorizer{
		NGramMin:    core.DefaultNGramMin,
		NGramMax:    core.DefaultNGramMax,
		MaxDF:       core.DefaultMaxDF,
		MinDF:       core.DefaultMinDF,
		MinTokenLen: core.DefaultMinTokenLen,
	}
}

// Validate 检查参数合法性。
func (v Vectorizer) Validate() error {
	switch {
	case v.NGramMin < 1:
		return invalidParam("ngram_min must be >= 1, got %d", v.NGramMin)
	case v.NGramMax < v.NGramMin:
		return invalidParam("ngram_max (%d) must be >= ngram_min (%d)", v.NGramMax, v.NGramMin)
	case v.MaxDF <= 0 || math.IsNaN(v.MaxDF):
		return invalidParam("max_df must be > 0, got %v", v.MaxDF)
	case v.MinDF < 1:
		return invalidParam("min_df must be >= 1, got %d", v.MinDF)
	case v.MinTokenLen < 1:
		return invalidParam("min_token_len must be >= 1, got %d", v.MinTokenLen)
	}
	return nil
}

func invalidParam(format string, args ...any) error {
	return core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput, "feature: "+fmt.Sprintf(format, args...))
}

// Tokens 把（已归一化的）文档切分为词元。
func (v Vectorizer) Tokens(doc string) []string {
	minLen := v.MinTokenLen
	if minLen < 1 {
		minLen = 1
	}
	fields := strings.FieldsFunc(doc, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_')
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minLen {
			out = append(out, f)
		}
	}
	return out
}

// Analyze 返回文档的全部词项（词元及其 n-gram），按出现顺序、可重复。
func (v Vectorizer) Analyze(doc string) []string {
	tokens := v.Tokens(doc)
	lo, hi := v.NGramMin, v.NGramMax
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if lo == 1 && hi == 1 {
		return tokens
	}
	terms := make([]string, 0, len(tokens)*(hi-lo+1))
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			if n == 1 {
				terms = append(terms, tokens[i])
				continue
			}
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// Fit 在文档集合上拟合词表与 IDF。
//
// 没有非空文档，或剪枝后词表为空时返回 EMPTY_CORPUS；不会静默产生空词表。
func (v Vectorizer) Fit(docs []string) (*VectorSpace, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	nonEmpty := 0
	df := make(map[string]int)
	for _, doc := range docs {
		if strings.TrimSpace(doc) == "" {
			continue
		}
		nonEmpty++
		seen := make(map[string]struct{})
		for _, term := range v.Analyze(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if nonEmpty == 0 {
		return nil, core.ErrEmptyCorpus
	}

	n := len(docs)
	maxDocs := v.MaxDF
	if maxDocs <= 1 {
		maxDocs = v.MaxDF * float64(n)
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if float64(count) > maxDocs || count < v.MinDF {
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeEmptyCorpus,
			fmt.Sprintf("feature: no terms remain after pruning (%d documents, %d candidate terms, max_df=%v, min_df=%d)",
				n, len(df), v.MaxDF, v.MinDF))
	}
	sort.Strings(terms)

	space := &VectorSpace{
		params: v,
		nDocs:  n,
		terms:  terms,
		vocab:  make(map[string]int, len(terms)),
		df:     make([]int, len(terms)),
		idf:    make([]float64, len(terms)),
	}
	for i, term := range terms {
		space.vocab[term] = i
		space.df[i] = df[term]
		// 平滑 IDF：ln((1+N)/(1+df)) + 1
		space.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}
	return space, nil
}

// VectorSpace 是拟合后的词表和文档频率统计，只读，可并发使用。
type VectorSpace struct {
	params Vectorizer
	nDocs  int
	terms  []string
	vocab  map[string]int
	df     []int
	idf    []float64
}

// Size 返回词表大小（向量维度）。
func (s *VectorSpace) Size() int { return len(s.terms) }

// Docs 返回拟合时的文档数。
func (s *VectorSpace) Docs() int { return s.nDocs }

// Params 返回拟合参数。
func (s *VectorSpace) Params() Vectorizer { return s.params }

// Terms 按维度顺序返回词表。
func (s *VectorSpace) Terms() []string { return append([]string(nil), s.terms...) }

// Index 返回词项的维度。
func (s *VectorSpace) Index(term string) (int, bool) {
	i, ok := s.vocab[term]
	return i, ok
}

// IDF 返回词项的 IDF，词表外返回 0。
func (s *VectorSpace) IDF(term string) float64 {
	if i, ok := s.vocab[term]; ok {
		return s.idf[i]
	}
	return 0
}

// DF 返回词项的文档频率，词表外返回 0。
func (s *VectorSpace) DF(term string) int {
	if i, ok := s.vocab[term]; ok {
		return s.df[i]
	}
	return 0
}

// Transform 把文档投影到已拟合的空间：词频 × IDF 后做 L2 归一化。
// 词表外的词项权重为 0；空文档得到零向量。不修改 VectorSpace。
func (s *VectorSpace) Transform(doc string) Vector {
	counts := make(map[int]float64)
	for _, term := range s.params.Analyze(doc) {
		if i, ok := s.vocab[term]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	idx := make([]int, 0, len(counts))
	for i := range counts {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	vals := make([]float64, len(idx))
	var sq float64
	for k, i := range idx {
		w := counts[i] * s.idf[i]
		vals[k] = w
		sq += w * w
	}
	norm := math.Sqrt(sq)
	for k := range vals {
		vals[k] /= norm
	}
	return Vector{Indices: idx, Values: vals}
}

// TransformAll 批量投影。
func (s *VectorSpace) TransformAll(docs []string) []Vector {
	out := make([]Vector, len(docs))
	for i, d := range docs {
		out[i] = s.Transform(d)
	}
	return out
}
