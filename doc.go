// Package gamerec 是一个基于内容的游戏推荐工具包。
//
// 设计要点：
// - Model-first: 目录加载后一次性构建 TF-IDF 向量空间与相似度矩阵，构建完成后只读
// - 两种查询：按游戏名查相似游戏（精确 → 忽略大小写 → 模糊解析），按偏好画像查游戏
// - Pipeline 后处理: 排序结果经 Filter / ReRank Node 串联，最后截断为 TopN
package gamerec

import (
	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pipeline"
	"github.com/rushteam/gamerec/recommend"
)

// 轻量 facade：便于用户直接 import "gamerec" 使用核心抽象。
type Engine = recommend.Engine
type Model = recommend.Model
type Option = recommend.Option

type Profile = core.Profile
type Result = core.Result
type Recommendation = core.Recommendation
type SystemInfo = core.SystemInfo

type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindFilter      = pipeline.KindFilter
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)

// New 创建推荐引擎，需调用 Load 载入目录后才能查询。
func New(opts ...Option) *Engine { return recommend.New(opts...) }
