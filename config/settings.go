package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pipeline"
)

// EnvPrefix 是环境变量前缀：GAMEREC_RANKER_TOP_N -> ranker.top_n
const EnvPrefix = "GAMEREC_"

// ConfigPathEnvVar 可覆盖配置文件路径。
const ConfigPathEnvVar = "GAMEREC_CONFIG"

// Settings 是进程级配置。优先级：环境变量 > 配置文件 > 默认值。
type Settings struct {
	Catalog     CatalogSettings     `koanf:"catalog"`
	Vectorizer  VectorizerSettings  `koanf:"vectorizer"`
	Resolver    ResolverSettings    `koanf:"resolver"`
	Ranker      RankerSettings      `koanf:"ranker"`
	Cache       CacheSettings       `koanf:"cache"`
	Log         LogSettings         `koanf:"log"`
	Engine      EngineSettings      `koanf:"engine"`
	PostProcess PostProcessSettings `koanf:"postprocess"`
}

// CatalogSettings 目录来源；Path 为空时使用内置目录。
type CatalogSettings struct {
	Path string `koanf:"path"`
}

type VectorizerSettings struct {
	NGramMin    int     `koanf:"ngram_min" validate:"gte=1"`
	NGramMax    int     `koanf:"ngram_max" validate:"gtefield=NGramMin"`
	MaxDF       float64 `koanf:"max_df" validate:"gt=0"`
	MinDF       int     `koanf:"min_df" validate:"gte=1"`
	MinTokenLen int     `koanf:"min_token_len" validate:"gte=1"`
}

type ResolverSettings struct {
	Cutoff         float64 `koanf:"cutoff" validate:"gte=0,lte=1"`
	MaxSuggestions int     `koanf:"max_suggestions" validate:"gte=1"`
	Scorer         string  `koanf:"scorer" validate:"oneof=sequence levenshtein"`
}

type RankerSettings struct {
	TopN        int     `koanf:"top_n"`
	SimilarTopN int     `koanf:"similar_top_n"`
	MinScore    float64 `koanf:"min_score" validate:"gte=0,lte=1"`
}

type CacheSettings struct {
	Backend    string `koanf:"backend" validate:"oneof=none memory redis"`
	RedisAddr  string `koanf:"redis_addr" validate:"required_if=Backend redis"`
	RedisDB    int    `koanf:"redis_db" validate:"gte=0"`
	KeyPrefix  string `koanf:"key_prefix"`
	TTL        int    `koanf:"ttl" validate:"gte=0"`         // 秒
	MaxEntries int    `koanf:"max_entries" validate:"gte=0"` // memory 后端容量
}

type LogSettings struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type EngineSettings struct {
	Workers int `koanf:"workers" validate:"gte=0"` // 0 = GOMAXPROCS
}

// PostProcessSettings 后处理 Pipeline：内联 nodes 或单独的文件。
type PostProcessSettings struct {
	File  string                `koanf:"file"`
	Nodes []pipeline.NodeConfig `koanf:"nodes"`
}

// DefaultSettings 返回所有默认值。
func DefaultSettings() *Settings {
	return &Settings{
		Vectorizer: VectorizerSettings{
			NGramMin:    core.DefaultNGramMin,
			NGramMax:    core.DefaultNGramMax,
			MaxDF:       core.DefaultMaxDF,
			MinDF:       core.DefaultMinDF,
			MinTokenLen: core.DefaultMinTokenLen,
		},
		Resolver: ResolverSettings{
			Cutoff:         core.DefaultResolveCutoff,
			MaxSuggestions: core.DefaultMaxSuggestions,
			Scorer:         "sequence",
		},
		Ranker: RankerSettings{
			TopN:        core.DefaultProfileTopN,
			SimilarTopN: core.DefaultSimilarTopN,
		},
		Cache: CacheSettings{
			Backend:    "memory",
			KeyPrefix:  "gamerec:",
			TTL:        core.DefaultCacheTTLSeconds,
			MaxEntries: core.DefaultCacheMaxEntries,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

var validate = validator.New()

// Validate 校验字段取值。
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput, fmt.Sprintf("config: %v", err))
	}
	return nil
}

// Pipeline 返回后处理配置；设置了 File 时从文件加载，忽略内联 nodes。
func (s *Settings) Pipeline() (*pipeline.Config, error) {
	if s.PostProcess.File != "" {
		return pipeline.LoadFile(s.PostProcess.File)
	}
	return &pipeline.Config{Nodes: s.PostProcess.Nodes}, nil
}

// Load 分三层加载配置：默认值、YAML 文件（path 为空时读 GAMEREC_CONFIG）、环境变量。
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultSettings(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	s := &Settings{}
	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

var sections = []string{"catalog", "vectorizer", "resolver", "ranker", "cache", "log", "engine", "postprocess"}

// envTransformFunc 把环境变量名映射为 koanf 路径，只拆分第一段作为 section：
//   - GAMEREC_CATALOG_PATH -> catalog.path
//   - GAMEREC_RANKER_SIMILAR_TOP_N -> ranker.similar_top_n
//   - GAMEREC_CONFIG 与未知 section 被忽略
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(key, sec+"_"); ok && rest != "" {
			return sec + "." + rest
		}
	}
	return ""
}
