package builders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/gamerec/config"
	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pipeline"
	"github.com/rushteam/gamerec/rerank"
	"github.com/rushteam/gamerec/store"
)

func TestRegistered(t *testing.T) {
	types := config.SupportedTypes()
	for _, want := range []string{"filter.blacklist", "filter.expr", "rerank.diversity", "rerank.topn"} {
		assert.Contains(t, types, want)
	}
}

func TestBuildFromYAML(t *testing.T) {
	cfg, err := pipeline.ParseYAML([]byte(`
nodes:
  - type: filter.expr
    config:
      expr: '!("Mobile" in item.platforms)'
  - type: rerank.diversity
    config:
      group: genre
      max_per_key: 2
  - type: rerank.topn
    config:
      n: 3
`))
	require.NoError(t, err)
	require.NoError(t, config.ValidatePipelineConfig(cfg))

	p, err := cfg.BuildPipeline(config.DefaultFactory())
	require.NoError(t, err)
	require.Len(t, p.Nodes, 3)

	div, ok := p.Nodes[1].(*rerank.Diversity)
	require.True(t, ok)
	assert.Equal(t, 2, div.MaxPerKey)
	assert.Equal(t, 3, p.Nodes[2].(*rerank.TopNNode).N)
}

func TestBuildErrors(t *testing.T) {
	f := config.DefaultFactory()

	_, err := f.Build("filter.expr", nil)
	assert.Error(t, err)

	_, err = f.Build("rerank.diversity", map[string]any{"group": "price"})
	assert.Error(t, err)

	_, err = f.Build("filter.blacklist", map[string]any{"key": "bl"})
	assert.True(t, core.IsInvalidInput(err))

	bad := &pipeline.Config{Nodes: []pipeline.NodeConfig{{Type: "rank.lr"}}}
	assert.True(t, core.IsNotSupported(config.ValidatePipelineConfig(bad)))
}

func TestBlacklistWithStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	defer s.Close()
	require.NoError(t, s.Set(ctx, "bl", []byte(`["2"]`)))

	node, err := config.NewFactory(config.Deps{Store: s}).Build("filter.blacklist", map[string]any{
		"key":      "bl",
		"item_ids": []any{"1"},
	})
	require.NoError(t, err)

	items := []*core.Recommendation{
		{Item: &core.CatalogItem{ID: "1", Name: "A"}},
		{Item: &core.CatalogItem{ID: "2", Name: "B"}},
		{Item: &core.CatalogItem{ID: "3", Name: "C"}},
	}
	out, err := node.Process(ctx, nil, items)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].Item.ID)
}
