package resolve

import (
	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
)

// Scorer 计算查询与候选名称的相似比例，取值 [0,1]，1 表示完全相同。
type Scorer func(query, candidate string) float64

// ScorerByName 按配置名称选择打分器：sequence（默认）或 levenshtein。
func ScorerByName(name string) (Scorer, bool) {
	switch name {
	case "", "sequence":
		return SequenceRatio, true
	case "levenshtein":
		return LevenshteinRatio, true
	default:
		return nil, false
	}
}

// LevenshteinRatio = 1 - 编辑距离 / 较长串的 rune 数。
func LevenshteinRatio(query, candidate string) float64 {
	la, lb := len([]rune(query)), len([]rune(candidate))
	longest := max(la, lb)
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(query, candidate)
	return 1 - float64(d)/float64(longest)
}

// SequenceRatio 是 Ratcliff/Obershelp 比例 2*M/T：M 为最长公共块总长度，T 为两串 rune 数之和。
// 候选名作为 a 序列、查询作为 b 序列，与 difflib.get_close_matches 的取向一致。
func SequenceRatio(query, candidate string) float64 {
	return difflib.NewMatcher(runeSeq(candidate), runeSeq(query)).Ratio()
}

// runeSeq 把字符串拆成单 rune 元素，使 SequenceMatcher 按字符而不是按行比较。
func runeSeq(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
