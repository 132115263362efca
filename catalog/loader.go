package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/rushteam/gamerec/core"
	"github.com/rushteam/gamerec/pkg/textnorm"
)

// Table 是内存中的表格数据源：一行表头加若干数据行。
type Table struct {
	Header []string
	Rows   [][]string
}

// LoadStats 记录加载过程的诊断信息。
type LoadStats struct {
	Rows       int // 数据行总数
	Loaded     int // 进入语料的行数
	Excluded   int // 名称为空被剔除的行数
	Duplicates int // ID 重复被剔除的行数
}

// Format 是文件格式。
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath 按扩展名推断格式。
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", core.NewDomainError(core.ModuleCatalog, core.ErrorCodeNotSupported,
		fmt.Sprintf("catalog: unsupported catalog format %q", filepath.Ext(path)))
}

// Load 读取目录文件（csv / tsv / xlsx）并构建语料。
func Load(path string) (*Corpus, LoadStats, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	return FromTable(t)
}

// ReadTable 读取目录文件为 Table。
func ReadTable(path string) (Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Table{}, err
	}
	if format == FormatXLSX {
		return readXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ReadDelimited(f, format)
}

// Read 从流中读取 csv / tsv 并构建语料。
func Read(r io.Reader, format Format) (*Corpus, LoadStats, error) {
	t, err := ReadDelimited(r, format)
	if err != nil {
		return nil, LoadStats{}, err
	}
	return FromTable(t)
}

// ReadDelimited 解析 csv / tsv 流。
func ReadDelimited(r io.Reader, format Format) (Table, error) {
	cr := csv.NewReader(r)
	switch format {
	case FormatCSV:
	case FormatTSV:
		cr.Comma = '\t'
	default:
		return Table{}, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeNotSupported,
			fmt.Sprintf("catalog: format %q is not a delimited format", format))
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse %s: %w", format, err)
	}
	return tableFromRecords(records)
}

func readXLSX(path string) (Table, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open xlsx: %w", err)
	}
	if len(wb.Sheets) == 0 {
		return Table{}, errors.New("parse xlsx: workbook has no sheets")
	}

	var records [][]string
	err = wb.Sheets[0].ForEachRow(func(row *xlsx.Row) error {
		var record []string
		err := row.ForEachCell(func(c *xlsx.Cell) error {
			x, _ := c.GetCoordinates()
			for len(record) < x {
				record = append(record, "")
			}
			record = append(record, c.String())
			return nil
		})
		records = append(records, record)
		return err
	})
	if err != nil {
		return Table{}, fmt.Errorf("parse xlsx: %w", err)
	}
	return tableFromRecords(records)
}

func tableFromRecords(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "catalog: source has no header row")
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return Table{Header: header, Rows: records[1:]}, nil
}

// FromTable 解析表头、逐行构建 CatalogItem，并重新分配连续位置。
// 名称为空的行被剔除并计入 LoadStats.Excluded，不视为错误。
func FromTable(t Table) (*Corpus, LoadStats, error) {
	schema, err := ResolveSchema(t.Header)
	if err != nil {
		return nil, LoadStats{}, err
	}

	stats := LoadStats{Rows: len(t.Rows)}
	items := make([]core.CatalogItem, 0, len(t.Rows))
	seen := make(map[string]bool, len(t.Rows))

	for rowNum, row := range t.Rows {
		name := strings.TrimSpace(cell(row, schema.Name))
		if textnorm.Text(name) == "" {
			stats.Excluded++
			continue
		}

		id := strings.TrimSpace(cell(row, schema.ID))
		if id == "" {
			id = strconv.Itoa(rowNum + 1)
		}
		if seen[id] {
			stats.Duplicates++
			continue
		}
		seen[id] = true

		it := core.CatalogItem{
			ID:        id,
			Name:      name,
			Genres:    textnorm.Tags(cell(row, schema.Genre)),
			Platforms: textnorm.Tags(cell(row, schema.Platform)),
			Modes:     textnorm.Tags(cell(row, schema.Mode)),
		}
		for col, key := range schema.Extra {
			if v := strings.TrimSpace(cell(row, col)); v != "" {
				if it.Attrs == nil {
					it.Attrs = make(map[string]string, len(schema.Extra))
				}
				it.Attrs[key] = v
			}
		}
		items = append(items, it)
	}

	corpus, err := NewCorpus(items)
	if err != nil {
		return nil, stats, err
	}
	stats.Loaded = corpus.Len()
	return corpus, stats, nil
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
