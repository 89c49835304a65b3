// Package table sorts, pages and formats tabular result data.
package table

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"dataagent/models"

	"github.com/dustin/go-humanize"
)

const (
	RowsPerPage = 10
	pageWindow  = 5

	Asc  = "asc"
	Desc = "desc"
)

// Row is one record keyed by column name.
type Row = map[string]any

// Table is a list of rows with a fixed column order.
type Table struct {
	Columns []string
	Rows    []Row
}

// New builds a table. With no columns given, the first row's keys are used in sorted order.
func New(columns []string, rows []Row) Table {
	if len(columns) == 0 {
		columns = Columns(rows)
	}
	return Table{Columns: columns, Rows: rows}
}

// FromDataPoints lays extracted points out as a label/value table.
func FromDataPoints(points []models.DataPoint) Table {
	rows := make([]Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, Row{"label": p.Label, "value": p.Value})
	}
	return Table{Columns: []string{"label", "value"}, Rows: rows}
}

// Columns returns the keys of the first row, sorted.
func Columns(rows []Row) []string {
	if len(rows) == 0 {
		return []string{}
	}
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Sort returns a sorted copy of the table. An empty field keeps the input order. Numbers
// compare numerically; anything else compares as lower-cased text.
func (t Table) Sort(field, dir string) Table {
	rows := append([]Row(nil), t.Rows...)
	if field == "" {
		return Table{Columns: t.Columns, Rows: rows}
	}
	desc := dir == Desc

	sort.SliceStable(rows, func(i, j int) bool {
		c := compare(rows[i][field], rows[j][field])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return Table{Columns: t.Columns, Rows: rows}
}

func compare(a, b any) int {
	af, aok := Number(a)
	bf, bok := Number(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

// Page returns the requested page, clamped to the valid range.
func (t Table) Page(page int) models.TablePage {
	total := len(t.Rows)
	totalPages := int(math.Ceil(float64(total) / RowsPerPage))

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * RowsPerPage
	end := start + RowsPerPage
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	rows := t.Rows[start:end]
	if rows == nil {
		rows = []Row{}
	}

	first := start + 1
	if total == 0 {
		first = 0
	}

	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}

	display := make([]map[string]string, len(rows))
	for i, row := range rows {
		cells := make(map[string]string, len(columns))
		for _, col := range columns {
			cells[col] = FormatCell(row[col])
		}
		display[i] = cells
	}

	return models.TablePage{
		Columns:     columns,
		Rows:        rows,
		Display:     display,
		Page:        page,
		TotalPages:  totalPages,
		TotalRows:   total,
		Start:       first,
		End:         end,
		PageNumbers: PageNumbers(page, totalPages),
	}
}

// PageNumbers is the window of at most five page buttons around the current page.
func PageNumbers(current, totalPages int) []int {
	n := totalPages
	if n > pageWindow {
		n = pageWindow
	}

	first := 1
	switch {
	case totalPages <= pageWindow, current <= 3:
		first = 1
	case current >= totalPages-2:
		first = totalPages - pageWindow + 1
	default:
		first = current - 2
	}

	pages := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, first+i)
	}
	return pages
}

// FormatCell renders a value for display.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "—"
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		return val
	}

	f, ok := Number(v)
	if !ok {
		return fmt.Sprint(v)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return humanize.Comma(int64(f))
	}
	return humanize.FormatFloat("#,###.##", f)
}

// Number reports v as a float64 if it holds any Go numeric type.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
