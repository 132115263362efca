package textnorm

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t\n ", want: ""},
		{name: "separators only", in: "/,;():-|", want: ""},
		{name: "lowercases and trims", in: "  RPG Ação  ", want: "rpg ação"},
		{name: "replaces separators", in: "Single-player/Multiplayer", want: "single player multiplayer"},
		{name: "collapses runs", in: "Ação,  Aventura;;(RPG)", want: "ação aventura rpg"},
		{name: "colon and pipe", in: "The Witcher 3: Wild Hunt|PC", want: "the witcher 3 wild hunt pc"},
		{name: "keeps accents", in: "SIMULAÇÃO ÉPICA", want: "simulação épica"},
		{name: "decomposed input is composed", in: "Ac\u0327a\u0303o", want: "a\u00e7\u00e3o"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"", "a", "  Mundo   Aberto ", "FPS/Battle Royale", "İstanbul", "ß STRASSE",
		"Ελληνικά ΚΕΦΑΛΑΙΑ", "émoji 🎮 - test", "tab\tsep\nnewline", "(((x)))", "Ǆ digraph",
	}
	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Errorf("Text not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestJoin(t *testing.T) {
	got := Join("RPG Ação", "", "  ", "PC/PlayStation", "Single-player")
	want := "rpg ação pc playstation single player"
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{}},
		{in: "RPG Ação", want: []string{"RPG Ação"}},
		{in: "PC, PlayStation;Xbox | Switch/Mobile", want: []string{"PC", "PlayStation", "Xbox", "Switch", "Mobile"}},
		{in: " , ,", want: []string{}},
		{in: "Single-player", want: []string{"Single-player"}},
	}
	for _, tt := range tests {
		if got := Tags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tags(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Gênero"); got != "genero" {
		t.Errorf("Fold(Gênero) = %q", got)
	}
	if !EqualFold("HALO infinite", "Halo Infinite") {
		t.Error("EqualFold should match case variants")
	}
	if EqualFold("Ação", "Acao") {
		t.Error("EqualFold must not strip accents")
	}
}
