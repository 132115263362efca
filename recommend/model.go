package recommend

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/rushteam/gamerec/catalog"
	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/feature"
	"github.com/rushteam/gamerec/similarity"
)

// Model 是一次构建的完整产物：语料、向量空间、物品向量和相似度矩阵。
// 四者总是一起构建、一起发布，发布后只读。
type Model struct {
	Corpus  *catalog.Corpus
	Space   *feature.VectorSpace
	Vectors []feature.Vector
	Matrix  *similarity.Matrix
	Stats   catalog.LoadStats

	// BuildID 标识一次构建；Fingerprint 由语料内容与向量化参数决定，
	// 相同输入在任何进程中得到相同值，用作共享缓存的 key
	BuildID       string
	Fingerprint   string
	BuiltAt       time.Time
	BuildDuration time.Duration

	names []string
}

// BuildConfig 控制模型构建。
type BuildConfig struct {
	// Vectorizer 零值时使用 feature.DefaultVectorizer()
	Vectorizer feature.Vectorizer
	// Workers 构建相似度矩阵的并发数，<= 0 使用 GOMAXPROCS
	Workers int
	// Stats 由加载阶段传入，SystemInfo 会透出其中的剔除数
	Stats catalog.LoadStats
}

// Build 在旁路构建模型，不影响任何已发布的模型。
func Build(corpus *catalog.Corpus, cfg BuildConfig) (*Model, error) {
	if corpus == nil || corpus.Len() == 0 {
		return nil, core.ErrEmptyCorpus
	}
	vec := cfg.Vectorizer
	if vec == (feature.Vectorizer{}) {
		vec = feature.DefaultVectorizer()
	}

	start := time.Now()
	docs := corpus.Documents()
	space, err := vec.Fit(docs)
	if err != nil {
		return nil, fmt.Errorf("fit vectorizer over %d items: %w", corpus.Len(), err)
	}
	vectors := space.TransformAll(docs)
	matrix := similarity.Build(vectors, cfg.Workers)

	return &Model{
		Corpus:        corpus,
		Space:         space,
		Vectors:       vectors,
		Matrix:        matrix,
		Stats:         cfg.Stats,
		BuildID:       uuid.NewString(),
		Fingerprint:   fingerprint(corpus, space.Params()),
		BuiltAt:       time.Now(),
		BuildDuration: time.Since(start),
		names:         corpus.Names(),
	}, nil
}

// fingerprint 依次哈希向量化参数和每个物品的 ID、名称、文档。
func fingerprint(corpus *catalog.Corpus, v feature.Vectorizer) string {
	d := xxhash.New()
	fmt.Fprintf(d, "%d|%d|%g|%d|%d\n", v.NGramMin, v.NGramMax, v.MaxDF, v.MinDF, v.MinTokenLen)
	for i := 0; i < corpus.Len(); i++ {
		it := corpus.Item(i)
		fmt.Fprintf(d, "%s\x00%s\x00%s\n", it.ID, it.Name, corpus.Doc(i))
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// Names 返回按语料位置排列的名称，调用方不得修改。
func (m *Model) Names() []string { return m.names }

// Info 返回模型的诊断信息。
func (m *Model) Info() core.SystemInfo {
	return core.SystemInfo{
		Ready:          true,
		ItemCount:      m.Corpus.Len(),
		VocabularySize: m.Space.Size(),
		MatrixShape:    m.Matrix.Shape(),
		Excluded:       m.Stats.Excluded + m.Stats.Duplicates,
		BuildID:        m.BuildID,
		Fingerprint:    m.Fingerprint,
		BuiltAt:        m.BuiltAt,
	}
}
