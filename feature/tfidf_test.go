package feature

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rushteam/gamerec/core"
)

func TestVectorizerAnalyze(t *testing.T) {
	v := DefaultVectorizer()
	got := v.Analyze("rpg ação pc a mundo aberto")
	want := []string{"rpg", "ação", "pc", "mundo", "aberto", "rpg ação", "ação pc", "pc mundo", "mundo aberto"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Analyze() = %q, want %q", got, want)
	}

	uni := Vectorizer{NGramMin: 1, NGramMax: 1, MaxDF: 1, MinDF: 1, MinTokenLen: 1}
	if got := uni.Analyze("a b_c 3"); !reflect.DeepEqual(got, []string{"a", "b_c", "3"}) {
		t.Fatalf("unigram Analyze() = %q", got)
	}
}

func TestFitVocabularyAndPruning(t *testing.T) {
	docs := []string{"rpg pc", "rpg xbox", "rpg switch"}
	space, err := DefaultVectorizer().Fit(docs)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	// "rpg" 出现在 3/3 > 0.95*3 篇文档中，被剔除
	want := []string{"pc", "rpg pc", "rpg switch", "rpg xbox", "switch", "xbox"}
	if got := space.Terms(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Terms() = %q, want %q", got, want)
	}
	if space.IDF("rpg") != 0 || space.DF("rpg") != 0 {
		t.Errorf("pruned term should have zero idf/df")
	}
	wantIDF := math.Log(4.0/2.0) + 1
	if got := space.IDF("pc"); math.Abs(got-wantIDF) > 1e-12 {
		t.Errorf("IDF(pc) = %v, want %v", got, wantIDF)
	}
	if space.Docs() != 3 || space.Size() != 6 {
		t.Errorf("Docs() = %d, Size() = %d", space.Docs(), space.Size())
	}
}

func TestFitMinDF(t *testing.T) {
	v := DefaultVectorizer()
	v.MinDF = 2
	v.MaxDF = 1.0
	space, err := v.Fit([]string{"fps pc", "fps xbox", "rpg pc"})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if got := space.Terms(); !reflect.DeepEqual(got, []string{"fps", "pc"}) {
		t.Fatalf("Terms() = %q", got)
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	tests := []struct {
		name string
		docs []string
	}{
		{name: "no documents", docs: nil},
		{name: "blank documents", docs: []string{"", "   "}},
		{name: "tokens too short", docs: []string{"a b", "c"}},
		{name: "everything pruned", docs: []string{"rpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultVectorizer().Fit(tt.docs)
			if !core.IsEmptyCorpus(err) {
				t.Fatalf("Fit() error = %v, want EMPTY_CORPUS", err)
			}
			if !errors.Is(err, core.ErrEmptyCorpus) {
				t.Fatalf("errors.Is(err, ErrEmptyCorpus) = false")
			}
		})
	}
}

func TestFitInvalidParams(t *testing.T) {
	for _, v := range []Vectorizer{
		{NGramMin: 0, NGramMax: 1, MaxDF: 1, MinDF: 1, MinTokenLen: 1},
		{NGramMin: 2, NGramMax: 1, MaxDF: 1, MinDF: 1, MinTokenLen: 1},
		{NGramMin: 1, NGramMax: 2, MaxDF: 0, MinDF: 1, MinTokenLen: 1},
		{NGramMin: 1, NGramMax: 2, MaxDF: 1, MinDF: 0, MinTokenLen: 1},
	} {
		if _, err := v.Fit([]string{"rpg pc"}); !core.IsInvalidInput(err) {
			t.Errorf("Fit(%+v) error = %v, want INVALID_INPUT", v, err)
		}
	}
}

func TestTransform(t *testing.T) {
	space, err := DefaultVectorizer().Fit([]string{
		"strategy pc multiplayer",
		"strategy pc single player",
		"action console single player",
	})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	vecs := space.TransformAll([]string{"strategy pc multiplayer", "", "rhythm pc"})
	if n := vecs[0].Norm(); math.Abs(n-1) > 1e-12 {
		t.Errorf("row norm = %v, want 1", n)
	}
	for k := 1; k < len(vecs[0].Indices); k++ {
		if vecs[0].Indices[k] <= vecs[0].Indices[k-1] {
			t.Fatalf("indices not strictly ascending: %v", vecs[0].Indices)
		}
	}
	if !vecs[1].IsZero() {
		t.Errorf("empty document should give zero vector, got %+v", vecs[1])
	}

	// 词表外的 "rhythm" 不报错，只剩 "pc" 一个维度
	pc, _ := space.Index("pc")
	if vecs[2].NNZ() != 1 || math.Abs(vecs[2].Get(pc)-1) > 1e-12 {
		t.Errorf("Transform(rhythm pc) = %+v, want unit weight on pc", vecs[2])
	}

	before := space.Terms()
	space.Transform("brand new words here")
	if !reflect.DeepEqual(before, space.Terms()) {
		t.Error("Transform must not modify the vocabulary")
	}
}

func TestVectorDense(t *testing.T) {
	v := Vector{Indices: []int{1, 3}, Values: []float64{0.6, 0.8}}
	if got := v.Dense(4); !reflect.DeepEqual(got, []float64{0, 0.6, 0, 0.8}) {
		t.Errorf("Dense() = %v", got)
	}
	if v.Get(2) != 0 || v.Get(3) != 0.8 {
		t.Errorf("Get() mismatch")
	}
}
