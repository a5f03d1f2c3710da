// Package formatter renders pipeline output as markdown tables.
package formatter

import (
	"strings"

	"zexplorer/internal/jsonval"
	"zexplorer/pkg/utils"

	"github.com/mattn/go-runewidth"
)

// DefaultCellWidth caps the display width of a preview cell.
const DefaultCellWidth = 40

// Column is one preview column: a header and the dotted path it reads.
type Column struct {
	Header string
	Path   string
}

// DefaultColumns lists the fields shown when no projection is configured.
var DefaultColumns = []Column{
	{Header: "zpid", Path: "zpid"},
	{Header: "price", Path: "price.value"},
	{Header: "bedrooms", Path: "bedrooms"},
	{Header: "bathrooms", Path: "bathrooms"},
	{Header: "city", Path: "address.city"},
	{Header: "state", Path: "address.state"},
}

// ColumnsFor builds one column per path, using the path as the header.
func ColumnsFor(paths []string) []Column {
	if len(paths) == 0 {
		return DefaultColumns
	}

	cols := make([]Column, 0, len(paths))
	for _, p := range paths {
		cols = append(cols, Column{Header: p, Path: p})
	}

	return cols
}

// PreviewTable renders up to maxRows records as an aligned markdown table.
// Cells wider than maxCellWidth are truncated; maxRows <= 0 renders every
// record.
func PreviewTable(records []*jsonval.Object, columns []Column, maxRows, maxCellWidth int) string {
	if len(columns) == 0 {
		return ""
	}

	if maxRows > 0 && len(records) > maxRows {
		records = records[:maxRows]
	}

	table := make([][]string, 0, len(records)+1)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = cell(c.Header, maxCellWidth)
	}

	table = append(table, header)

	for _, rec := range records {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cell(cellText(rec, c.Path), maxCellWidth)
		}

		table = append(table, row)
	}

	return strings.Join(renderTable(table), "\n") + "\n"
}

// cellText reads path from rec, preferring a literal key over a dotted path.
func cellText(rec *jsonval.Object, path string) string {
	v, ok := rec.Get(path)
	if !ok {
		v = jsonval.Lookup(rec, path)
	}

	switch v.Kind() {
	case jsonval.KindNull:
		return ""
	case jsonval.KindString:
		s, _ := v.AsString()
		return s
	default:
		data, err := jsonval.Marshal(v)
		if err != nil {
			return ""
		}

		return string(data)
	}
}

func cell(s string, maxWidth int) string {
	s = utils.TruncateString(utils.NormalizeWhitespace(s), maxWidth)
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderTable pads every cell to its column's display width. The first row
// is the header and is followed by a dash separator.
func renderTable(table [][]string) []string {
	colCount := len(table[0])
	colWidths := make([]int, colCount)

	for _, row := range table {
		for i := 0; i < colCount; i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Markdown needs at least "---" in the separator.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	separator := make([]string, colCount)
	for i, w := range colWidths {
		separator[i] = strings.Repeat("-", w)
	}

	result := make([]string, 0, len(table)+1)
	result = append(result, renderRow(table[0], colWidths), renderRow(separator, colWidths))

	for _, row := range table[1:] {
		result = append(result, renderRow(row, colWidths))
	}

	return result
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, content := range row {
		sb.WriteString(" ")
		sb.WriteString(content)

		if padding := colWidths[j] - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
