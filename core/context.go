package core

// RecommendContext 承载一次请求的查询信息，贯穿后处理 Pipeline 透传。
type RecommendContext struct {
	RequestID string

	// Query 描述本次请求（模式、解析结果、画像）
	Query *QueryInfo

	// Params 请求级参数，供自定义 Node 使用
	Params map[string]any
}

// Param 读取请求级参数。
func (rctx *RecommendContext) Param(key string) (any, bool) {
	if rctx == nil || rctx.Params == nil {
		return nil, false
	}
	v, ok := rctx.Params[key]
	return v, ok
}
