package catalog

import (
	"strings"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pkg/textnorm"
)

// Field 是目录的逻辑字段。
type Field string

const (
	FieldName     Field = "name"
	FieldGenre    Field = "genre"
	FieldPlatform Field = "platform"
	FieldMode     Field = "mode"
	FieldID       Field = "id"
)

// RequiredFields 是必需的逻辑字段（按报错时的展示顺序）。
var RequiredFields = []Field{FieldName, FieldGenre, FieldPlatform, FieldMode}

// Synonyms 是各逻辑字段的表头同义词（已 Fold，按优先级排列）。
// 表头经 textnorm.Fold 后做子串匹配。
var Synonyms = map[Field][]string{
	FieldName:     {"nome", "name", "titulo", "title", "jogo", "game"},
	FieldGenre:    {"genero", "genre", "categoria", "category"},
	FieldPlatform: {"plataforma", "platform", "console", "sistema"},
	FieldMode:     {"modo", "mode"},
}

// matchOrder 决定字段认领列的顺序："Modo de jogo" 必须先被 mode 认领，
// 否则 name 会通过 "jogo" 抢走它。
var matchOrder = []Field{FieldMode, FieldPlatform, FieldGenre, FieldName}

// Schema 是一次性解析出的列映射，下游只使用强类型的 CatalogItem。
type Schema struct {
	Name     int
	Genre    int
	Platform int
	Mode     int
	ID       int // -1 表示没有 id 列

	// Extra 是未被认领的列：列序号 -> 归一化后的表头
	Extra map[int]string

	Headers []string
}

// Column 返回逻辑字段对应的列序号。
func (s Schema) Column(f Field) int {
	switch f {
	case FieldName:
		return s.Name
	case FieldGenre:
		return s.Genre
	case FieldPlatform:
		return s.Platform
	case FieldMode:
		return s.Mode
	case FieldID:
		return s.ID
	}
	return -1
}

// ResolveSchema 按同义词把表头映射到逻辑字段，与列顺序、大小写、重音无关。
// 任一必需字段缺失时返回 *core.SchemaError。
func ResolveSchema(headers []string) (Schema, error) {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = textnorm.Fold(h)
	}

	claimed := make(map[int]bool, len(headers))
	cols := map[Field]int{}

	if idx := findIDColumn(folded); idx >= 0 {
		cols[FieldID] = idx
		claimed[idx] = true
	}

	for _, f := range matchOrder {
		if idx := findColumn(folded, Synonyms[f], claimed); idx >= 0 {
			cols[f] = idx
			claimed[idx] = true
		}
	}

	found := make([]string, 0, len(RequiredFields))
	required := make([]string, 0, len(RequiredFields))
	for _, f := range RequiredFields {
		required = append(required, string(f))
		if _, ok := cols[f]; ok {
			found = append(found, string(f))
		}
	}
	if len(found) != len(required) {
		return Schema{}, &core.SchemaError{
			Found:    found,
			Required: required,
			Headers:  append([]string(nil), headers...),
		}
	}

	s := Schema{
		Name:     cols[FieldName],
		Genre:    cols[FieldGenre],
		Platform: cols[FieldPlatform],
		Mode:     cols[FieldMode],
		ID:       -1,
		Extra:    make(map[int]string),
		Headers:  append([]string(nil), headers...),
	}
	if idx, ok := cols[FieldID]; ok {
		s.ID = idx
	}
	for i, h := range folded {
		if !claimed[i] && h != "" {
			s.Extra[i] = strings.Join(strings.Fields(h), "_")
		}
	}
	return s, nil
}

func findColumn(folded, synonyms []string, claimed map[int]bool) int {
	for _, syn := range synonyms {
		for i, h := range folded {
			if claimed[i] {
				continue
			}
			if strings.Contains(h, syn) {
				return i
			}
		}
	}
	return -1
}

// findIDColumn 只接受 "id"、"id_xxx"、"xxx_id"、"xxx id" 这类表头，避免误认领 "video" 之类。
func findIDColumn(folded []string) int {
	for i, h := range folded {
		if h == "id" || strings.HasPrefix(h, "id_") || strings.HasSuffix(h, "_id") || strings.HasSuffix(h, " id") {
			return i
		}
	}
	return -1
}
