// Package config 负责两类配置：进程级 Settings（koanf 分层加载）和后处理 Node 的注册表。
package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pipeline"
)

// 使用配置驱动时，需在入口处 import _ "github.com/rushteam/gamerec/config/builders"
// 以触发内置 Node（filter.expr、filter.blacklist、rerank.diversity、rerank.topn）的 init 注册。

// Deps 是构建 Node 时可注入的运行时依赖。
type Deps struct {
	// Store 供需要读写外部数据的 Node 使用（如黑名单），可为 nil
	Store core.Store
}

// NodeBuilder 根据依赖和 config 构建 Node。
// 各组件在 init 中调用 Register(typeName, builder) 即可被配置驱动。
type NodeBuilder func(deps Deps, cfg map[string]any) (pipeline.Node, error)

var (
	defaultBuilders   = make(map[string]NodeBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register 注册一种 Node 的构建逻辑，同名覆盖。
func Register(typeName string, builder NodeBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// SupportedTypes 返回当前已注册的 Node 类型列表（排序），用于错误提示与校验。
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// NewFactory 返回绑定了 deps 的 NodeFactory，包含所有已注册的 Node 类型。
func NewFactory(deps Deps) *pipeline.NodeFactory {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	f := pipeline.NewNodeFactory()
	for typeName, builder := range defaultBuilders {
		b := builder
		f.Register(typeName, func(cfg map[string]any) (pipeline.Node, error) {
			return b(deps, cfg)
		})
	}
	return f
}

// DefaultFactory 等价于 NewFactory(Deps{})。
func DefaultFactory() *pipeline.NodeFactory {
	return NewFactory(Deps{})
}

// ValidatePipelineConfig 校验所有 node 类型均已注册；若有未支持类型则返回包含已支持列表的错误。
func ValidatePipelineConfig(cfg *pipeline.Config) error {
	if cfg == nil {
		return nil
	}
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	for i, nc := range cfg.Nodes {
		if _, ok := defaultBuilders[nc.Type]; !ok {
			types := make([]string, 0, len(defaultBuilders))
			for t := range defaultBuilders {
				types = append(types, t)
			}
			sort.Strings(types)
			return core.NewDomainError(core.ModulePipeline, core.ErrorCodeNotSupported,
				fmt.Sprintf("postprocess node #%d: unsupported type %q (supported: %v)", i, nc.Type, types))
		}
	}
	return nil
}
