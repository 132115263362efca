// Package catalog 负责把异构的表格数据加载为强类型、位置连续的语料（Corpus）。
package catalog

import (
	"fmt"
	"strings"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pkg/textnorm"
)

// Corpus 是有序的物品集合，位置从 0 连续编号，构建后不可变。
// 需要变更目录时，整体重建 Corpus 和向量空间。
type Corpus struct {
	items []*core.CatalogItem
	index map[string]int // ID -> 位置
	docs  []string
}

// NewCorpus 从物品列表构建语料；ID 重复或名称归一化为空时返回 INVALID_INPUT。
// 输入会被深拷贝，调用方后续修改不影响语料。
func NewCorpus(items []core.CatalogItem) (*Corpus, error) {
	c := &Corpus{
		items: make([]*core.CatalogItem, 0, len(items)),
		index: make(map[string]int, len(items)),
		docs:  make([]string, 0, len(items)),
	}
	for i := range items {
		it := cloneItem(items[i])
		if textnorm.Text(it.Name) == "" {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: item %q at position %d has an empty name", it.ID, i))
		}
		if _, dup := c.index[it.ID]; dup {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: duplicate item id %q", it.ID))
		}
		c.index[it.ID] = len(c.items)
		c.items = append(c.items, it)
		c.docs = append(c.docs, Document(it))
	}
	return c, nil
}

// Document 生成物品的描述文档：类型 + 平台 + 模式，归一化后以空格拼接。
func Document(it *core.CatalogItem) string {
	return textnorm.Join(
		strings.Join(it.Genres, " "),
		strings.Join(it.Platforms, " "),
		strings.Join(it.Modes, " "),
	)
}

// Len 返回物品数量。
func (c *Corpus) Len() int { return len(c.items) }

// Item 返回位置 i 的物品。
func (c *Corpus) Item(i int) *core.CatalogItem { return c.items[i] }

// ID 返回位置 i 的物品 ID。
func (c *Corpus) ID(i int) string { return c.items[i].ID }

// Position 按 ID 查位置。
func (c *Corpus) Position(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Items 按位置顺序返回物品（切片为副本，元素只读）。
func (c *Corpus) Items() []*core.CatalogItem {
	return append([]*core.CatalogItem(nil), c.items...)
}

// Names 按位置顺序返回物品名称。
func (c *Corpus) Names() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Name
	}
	return out
}

// Documents 按位置顺序返回描述文档。
func (c *Corpus) Documents() []string {
	return append([]string(nil), c.docs...)
}

// Doc 返回位置 i 的描述文档。
func (c *Corpus) Doc(i int) string { return c.docs[i] }

func cloneItem(it core.CatalogItem) *core.CatalogItem {
	out := &core.CatalogItem{
		ID:        it.ID,
		Name:      strings.TrimSpace(it.Name),
		Genres:    append([]string(nil), it.Genres...),
		Platforms: append([]string(nil), it.Platforms...),
		Modes:     append([]string(nil), it.Modes...),
	}
	if len(it.Attrs) > 0 {
		out.Attrs = make(map[string]string, len(it.Attrs))
		for k, v := range it.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}
