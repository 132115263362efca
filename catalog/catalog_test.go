package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/rushteam/gamerec/core"
)

func TestResolveSchema(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    Schema
	}{
		{
			name:    "portuguese headers",
			headers: []string{"Nome", "Gênero", "Plataforma", "Modo de jogo"},
			want:    Schema{Name: 0, Genre: 1, Platform: 2, Mode: 3, ID: -1},
		},
		{
			name:    "english headers any order and case",
			headers: []string{"GAME MODE", "platforms", "Title", "Genre"},
			want:    Schema{Name: 2, Genre: 3, Platform: 1, Mode: 0, ID: -1},
		},
		{
			name:    "accentless genero and extra columns",
			headers: []string{"id_product", "name_product", "genero", "platform", "game_mode", "price"},
			want:    Schema{Name: 1, Genre: 2, Platform: 3, Mode: 4, ID: 0},
		},
		{
			name:    "mode column is not stolen by name synonym jogo",
			headers: []string{"Modo de jogo", "Jogo", "Categoria", "Console"},
			want:    Schema{Name: 1, Genre: 2, Platform: 3, Mode: 0, ID: -1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSchema(tt.headers)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, got.Name, "name")
			assert.Equal(t, tt.want.Genre, got.Genre, "genre")
			assert.Equal(t, tt.want.Platform, got.Platform, "platform")
			assert.Equal(t, tt.want.Mode, got.Mode, "mode")
			assert.Equal(t, tt.want.ID, got.ID, "id")
		})
	}
}

func TestResolveSchemaMissingFields(t *testing.T) {
	_, err := ResolveSchema([]string{"Nome", "Preço", "Plataforma"})
	require.Error(t, err)

	var se *core.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{"name", "platform"}, se.Found)
	assert.Equal(t, []string{"name", "genre", "platform", "mode"}, se.Required)
	assert.True(t, core.IsSchema(err))
	assert.True(t, errors.Is(err, core.ErrSchema))
	assert.Contains(t, err.Error(), "genre, mode")
	assert.Contains(t, err.Error(), "Preço")
}

func TestFromTableExcludesEmptyNames(t *testing.T) {
	tbl := Table{
		Header: []string{"Nome", "Gênero", "Plataforma", "Modo de jogo", "price"},
		Rows: [][]string{
			{"Chess Club", "Strategy", "PC", "Multiplayer", "10"},
			{"   ", "Action", "PC", "Single-player", ""},
			{"", "Action", "PC", "Single-player"},
			{"--", "Action", "PC", "Single-player"},
			{"Space Shooter", "Action", "Console", "Single-player"},
		},
	}
	c, stats, err := FromTable(tbl)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, LoadStats{Rows: 5, Loaded: 2, Excluded: 3}, stats)
	assert.Equal(t, []string{"Chess Club", "Space Shooter"}, c.Names())

	pos, ok := c.Position("5")
	require.True(t, ok, "row-number ids are 1-based source rows")
	assert.Equal(t, 1, pos)
	assert.Equal(t, "10", c.Item(0).Attrs["price"])
	assert.Nil(t, c.Item(1).Attrs)
}

func TestFromTableDuplicateIDs(t *testing.T) {
	tbl := Table{
		Header: []string{"id", "name", "genre", "platform", "mode"},
		Rows: [][]string{
			{"a", "One", "RPG", "PC", "Single-player"},
			{"a", "Two", "RPG", "PC", "Single-player"},
			{"b", "Three", "RPG", "PC", "Single-player"},
		},
	}
	c, stats, err := FromTable(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Three"}, c.Names())
	assert.Equal(t, 1, stats.Duplicates)
}

func TestFromTableSplitsTags(t *testing.T) {
	tbl := Table{
		Header: []string{"name", "genre", "platform", "mode"},
		Rows:   [][]string{{"X", "RPG, Ação", "PC | PlayStation/Xbox", "Single-player; Mundo Aberto"}},
	}
	c, _, err := FromTable(tbl)
	require.NoError(t, err)
	it := c.Item(0)
	assert.Equal(t, []string{"RPG", "Ação"}, it.Genres)
	assert.Equal(t, []string{"PC", "PlayStation", "Xbox"}, it.Platforms)
	assert.Equal(t, []string{"Single-player", "Mundo Aberto"}, it.Modes)
	assert.Equal(t, "rpg ação pc playstation xbox single player mundo aberto", c.Doc(0))
}

func TestReadCSV(t *testing.T) {
	src := "\ufeffGame,Genre,Platform,Game Mode\n" +
		"Chess Club,Strategy,PC,Multiplayer\n" +
		"\"Chess Masters\",\"Strategy, Board\",PC,Single-player\n"
	c, stats, err := Read(strings.NewReader(src), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Loaded)
	assert.Equal(t, []string{"Strategy", "Board"}, c.Item(1).Genres)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()

	tsvPath := filepath.Join(dir, "games.tsv")
	require.NoError(t, os.WriteFile(tsvPath, []byte("nome\tgenero\tplataforma\tmodo\nPortal 2\tPuzzle\tPC\tCooperativo\n"), 0o644))
	c, _, err := Load(tsvPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Portal 2"}, c.Names())

	xlsxPath := filepath.Join(dir, "games.xlsx")
	f := xlsx.NewFile()
	sh, err := f.AddSheet("games")
	require.NoError(t, err)
	for _, r := range [][]string{
		{"Nome", "Gênero", "Plataforma", "Modo de jogo"},
		{"Skyrim", "RPG, Aventura", "PC", "Single-player"},
		{"Terraria", "Sandbox", "PC, Mobile", "Multiplayer"},
	} {
		row := sh.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	require.NoError(t, f.Save(xlsxPath))

	c, stats, err := Load(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Loaded)
	assert.Equal(t, []string{"Skyrim", "Terraria"}, c.Names())
	assert.Equal(t, []string{"PC", "Mobile"}, c.Item(1).Platforms)

	_, _, err = Load(filepath.Join(dir, "games.json"))
	assert.True(t, core.IsNotSupported(err))
}

func TestNewCorpusIsImmutable(t *testing.T) {
	items := []core.CatalogItem{{ID: "1", Name: "A", Genres: []string{"RPG"}}}
	c, err := NewCorpus(items)
	require.NoError(t, err)
	items[0].Genres[0] = "changed"
	assert.Equal(t, "RPG", c.Item(0).Genres[0])

	_, err = NewCorpus([]core.CatalogItem{{ID: "1", Name: "A"}, {ID: "1", Name: "B"}})
	assert.True(t, core.IsInvalidInput(err))
}

func TestBuiltin(t *testing.T) {
	c := Builtin()
	assert.Equal(t, 30, c.Len())
	assert.Equal(t, "The Witcher 3: Wild Hunt", c.Item(0).Name)
	assert.Equal(t, "rpg ação pc playstation xbox single player mundo aberto", c.Doc(0))
}
