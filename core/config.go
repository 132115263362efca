package core

// 推荐链路的默认参数，和原始系统保持一致。
const (
	DefaultProfileTopN     = 10    // 画像推荐默认返回数
	DefaultSimilarTopN     = 5     // 相似推荐默认返回数
	DefaultNGramMin        = 1     // n-gram 下界
	DefaultNGramMax        = 2     // n-gram 上界
	DefaultMaxDF           = 0.95  // 出现在超过该比例文档中的词被剔除
	DefaultMinDF           = 1     // 至少出现在 1 篇文档中
	DefaultMinTokenLen     = 2     // 词元最少字符数
	DefaultResolveCutoff   = 0.6   // 模糊匹配阈值
	DefaultMaxSuggestions  = 5     // 模糊匹配最多返回的候选数
	DefaultCacheTTLSeconds = 300   // 画像结果缓存 TTL
	DefaultCacheMaxEntries = 10000 // 内存缓存容量上限
)
