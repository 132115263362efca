// Package textnorm 提供向量化前的确定性文本清洗。
//
// Text 是纯函数且幂等：Text(Text(s)) == Text(s)。
// 大小写转换使用完整的 Unicode 映射（golang.org/x/text/cases），保留重音字符。
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separators 是会被替换为空格的分隔符集合。
const Separators = "/,;():-|"

// TagSeparators 是单元格内多个标签之间的分隔符。
const TagSeparators = ",;|/"

var separatorReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(Separators))
	for _, r := range Separators {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}()

// Text 归一化文本：NFC、分隔符替换为空格、合并空白、去首尾空白、小写。
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = separatorReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Caser 有内部状态，不能跨 goroutine 共享
	s = cases.Lower(language.Und).String(s)
	return norm.NFC.String(s)
}

// Join 归一化每个片段后用单个空格拼接，忽略归一化为空的片段。
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := Text(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

// Tags 把单元格拆成标签，保留原始大小写，去掉空白标签。
// 没有分隔符的单元格整体作为一个标签。
func Tags(cell string) []string {
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return strings.ContainsRune(TagSeparators, r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.Join(strings.Fields(f), " "); f != "" {
			out = append(out, f)
		}
	}
	return out
}

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// Fold 返回去重音、case-fold 后的形式，仅用于表头匹配等宽松比较。
func Fold(s string) string {
	t := transform.Chain(norm.NFD, stripMarks, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(cases.Fold().String(out))
}

// EqualFold 按 Unicode case folding 比较（不去重音）。
func EqualFold(a, b string) bool {
	if a == b {
		return true
	}
	return cases.Fold().String(a) == cases.Fold().String(b)
}
