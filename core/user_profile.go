package core

import "strings"

// Profile 是用户偏好画像：选中的类型、平台和游戏模式。
//
// 各组的最小数量由调用方（表单/接口层）校验；核心只拒绝退化画像，
// 即三组全部为空，或拼接后的文档归一化为空串。
type Profile struct {
	Genres    []string `json:"genres"`
	Platforms []string `json:"platforms"`
	Modes     []string `json:"modes"`
}

// IsEmpty 判断三组是否全部没有非空白标签。
func (p Profile) IsEmpty() bool {
	for _, group := range [][]string{p.Genres, p.Platforms, p.Modes} {
		for _, tag := range group {
			if strings.TrimSpace(tag) != "" {
				return false
			}
		}
	}
	return true
}

// Document 按 类型 → 平台 → 模式 的顺序拼接成伪文档（未归一化）。
func (p Profile) Document() string {
	parts := make([]string, 0, len(p.Genres)+len(p.Platforms)+len(p.Modes))
	parts = append(parts, p.Genres...)
	parts = append(parts, p.Platforms...)
	parts = append(parts, p.Modes...)
	return strings.Join(parts, " ")
}

// Group 按名称返回属性组。
func (p Profile) Group(name string) []string {
	switch name {
	case GroupGenre:
		return p.Genres
	case GroupPlatform:
		return p.Platforms
	case GroupMode:
		return p.Modes
	default:
		return nil
	}
}
