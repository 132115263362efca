package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rushteam/gamerec/catalog"
	"github.com/rushteam/gamerec/config"
	_ "github.com/rushteam/gamerec/config/builders"
	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/feature"
	"github.com/rushteam/gamerec/logging"
	"github.com/rushteam/gamerec/recommend"
	"github.com/rushteam/gamerec/resolve"
	"github.com/rushteam/gamerec/store"
)

// app 是一次命令执行所需的全部运行时对象。
type app struct {
	settings *config.Settings
	engine   *recommend.Engine
	store    core.Store
	log      zerolog.Logger
}

func (a *app) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

// setup 加载配置和目录，构建并发布模型。
func setup(ctx context.Context) (*app, error) {
	s, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if catalogPath != "" {
		s.Catalog.Path = catalogPath
	}

	logging.Init(logging.Config{Level: s.Log.Level, Format: s.Log.Format})
	log := logging.With().Str("component", "cli").Logger()

	corpus, stats, err := loadCatalog(s.Catalog.Path)
	if err != nil {
		return nil, err
	}
	if stats.Excluded > 0 || stats.Duplicates > 0 {
		log.Warn().
			Str("path", s.Catalog.Path).
			Int("rows", stats.Rows).
			Int("excluded", stats.Excluded).
			Int("duplicates", stats.Duplicates).
			Msg("catalog rows skipped")
	}

	st, err := store.Open(ctx, store.Config{
		Backend:    s.Cache.Backend,
		RedisAddr:  s.Cache.RedisAddr,
		RedisDB:    s.Cache.RedisDB,
		KeyPrefix:  s.Cache.KeyPrefix,
		MaxEntries: s.Cache.MaxEntries,
	})
	if err != nil {
		return nil, err
	}
	a := &app{settings: s, store: st, log: log}

	pc, err := s.Pipeline()
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := config.ValidatePipelineConfig(pc); err != nil {
		a.Close()
		return nil, err
	}
	pipe, err := pc.BuildPipeline(config.NewFactory(config.Deps{Store: st}))
	if err != nil {
		a.Close()
		return nil, err
	}

	scorer, ok := resolve.ScorerByName(s.Resolver.Scorer)
	if !ok {
		a.Close()
		return nil, fmt.Errorf("unknown resolver scorer %q", s.Resolver.Scorer)
	}

	opts := []recommend.Option{
		recommend.WithLogger(logging.Logger()),
		recommend.WithVectorizer(feature.Vectorizer{
			NGramMin:    s.Vectorizer.NGramMin,
			NGramMax:    s.Vectorizer.NGramMax,
			MaxDF:       s.Vectorizer.MaxDF,
			MinDF:       s.Vectorizer.MinDF,
			MinTokenLen: s.Vectorizer.MinTokenLen,
		}),
		recommend.WithResolver(&resolve.Resolver{
			Cutoff:         s.Resolver.Cutoff,
			MaxSuggestions: s.Resolver.MaxSuggestions,
			Scorer:         scorer,
		}),
		recommend.WithPipeline(pipe),
		recommend.WithWorkers(s.Engine.Workers),
	}
	if st != nil {
		opts = append(opts, recommend.WithStore(st, s.Cache.TTL))
	}
	a.engine = recommend.New(opts...)

	if _, err := a.engine.Load(ctx, corpus, stats); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func loadCatalog(path string) (*catalog.Corpus, catalog.LoadStats, error) {
	if path == "" {
		c := catalog.Builtin()
		return c, catalog.LoadStats{Rows: c.Len(), Loaded: c.Len()}, nil
	}
	return catalog.Load(path)
}
