package filter

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/store"
)

func sample() []*core.Recommendation {
	items := []*core.CatalogItem{
		{ID: "1", Name: "The Witcher 3: Wild Hunt", Genres: []string{"RPG", "Ação"}, Platforms: []string{"PC"}},
		{ID: "2", Name: "Among Us", Genres: []string{"Party"}, Platforms: []string{"PC", "Mobile"}},
		{ID: "3", Name: "Hades", Genres: []string{"Roguelike", "Ação"}, Platforms: []string{"PC", "Switch"}},
	}
	scores := []float64{0.9, 0.8, 0.7}
	out := make([]*core.Recommendation, len(items))
	for i, it := range items {
		out[i] = &core.Recommendation{Item: it, Position: i, Score: scores[i]}
	}
	return out
}

func ids(recs []*core.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Item.ID)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExprFilter(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{`!("Mobile" in item.platforms)`, []string{"1", "3"}},
		{`"Ação" in item.genres`, []string{"1", "3"}},
		{`item.score >= 0.8`, []string{"1", "2"}},
		{`true`, []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := NewExprFilter(tt.expr)
			if err != nil {
				t.Fatalf("NewExprFilter() error = %v", err)
			}
			node := &FilterNode{Filters: []Filter{f}}
			out, err := node.Process(context.Background(), nil, sample())
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if got := ids(out); !equal(got, tt.want) {
				t.Errorf("Process() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NewExprFilter(`item.score >`); err == nil {
		t.Error("invalid expression should fail")
	}
}

func TestBlacklistFilter(t *testing.T) {
	ctx := context.Background()
	f := NewBlacklistFilter([]string{"2"}, []string{"the witcher 3 - wild hunt"}, nil, "")
	out, err := (&FilterNode{Filters: []Filter{f}}).Process(ctx, nil, sample())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := ids(out); !equal(got, []string{"3"}) {
		t.Errorf("Process() = %v", got)
	}
}

func TestBlacklistFromStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	defer s.Close()

	adapter := NewStoreAdapter(s)
	f := NewBlacklistFilter(nil, nil, adapter, "blacklist:global")

	out, err := (&FilterNode{Filters: []Filter{f}, Strict: true}).Process(ctx, nil, sample())
	if err != nil {
		t.Fatalf("missing key should not fail: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("Process() = %v", ids(out))
	}

	if err := adapter.SetBlacklist(ctx, "blacklist:global", []string{"3"}, 0); err != nil {
		t.Fatal(err)
	}
	out, _ = (&FilterNode{Filters: []Filter{f}}).Process(ctx, nil, sample())
	if got := ids(out); !equal(got, []string{"1", "2"}) {
		t.Errorf("Process() = %v", got)
	}
}

type brokenFilter struct{}

func (brokenFilter) Name() string { return "broken" }
func (brokenFilter) ShouldFilter(context.Context, *core.RecommendContext, *core.Recommendation) (bool, error) {
	return false, errors.New("backend down")
}

func TestFilterNodeErrors(t *testing.T) {
	ctx := context.Background()
	lenient := &FilterNode{Filters: []Filter{brokenFilter{}}}
	out, err := lenient.Process(ctx, nil, sample())
	if err != nil || len(out) != 3 {
		t.Errorf("lenient Process() = %v, %v", ids(out), err)
	}
	for _, r := range out {
		if lbl := r.Labels[LabelFilterError]; lbl.Value != "broken" || lbl.Source != "filter" {
			t.Errorf("item %s label = %+v", r.Item.ID, lbl)
		}
	}

	strict := &FilterNode{Filters: []Filter{brokenFilter{}}, Strict: true}
	if _, err := strict.Process(ctx, nil, sample()); err == nil {
		t.Error("strict node should return filter error")
	}
}

func TestExprFilterReadsLabels(t *testing.T) {
	f, err := NewExprFilter(`label.resolve_tier != "fuzzy"`)
	if err != nil {
		t.Fatalf("NewExprFilter() error = %v", err)
	}
	items := sample()
	items[1].PutLabel("resolve_tier", core.Label{Value: "fuzzy", Source: "resolve"})
	items[0].PutLabel("resolve_tier", core.Label{Value: "exact", Source: "resolve"})
	items[2].PutLabel("resolve_tier", core.Label{Value: "case_insensitive", Source: "resolve"})

	out, err := (&FilterNode{Filters: []Filter{f}, Strict: true}).Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := ids(out); !equal(got, []string{"1", "3"}) {
		t.Errorf("Process() = %v", got)
	}
}
