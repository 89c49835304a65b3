package table

import (
	"reflect"
	"testing"

	"dataagent/models"
)

func rows(n int) []Row {
	out := make([]Row, n)
	for i := range out {
		out[i] = Row{"id": i + 1}
	}
	return out
}

func TestFromDataPoints(t *testing.T) {
	tbl := FromDataPoints([]models.DataPoint{{Label: "Revenue", Value: 2.5e6}, {Label: "Margin", Value: 45}})
	if !reflect.DeepEqual(tbl.Columns, []string{"label", "value"}) {
		t.Errorf("Columns = %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[1]["label"] != "Margin" || tbl.Rows[1]["value"] != 45.0 {
		t.Errorf("Rows = %v", tbl.Rows)
	}
}

func TestColumns(t *testing.T) {
	got := Columns([]Row{{"region": "West", "retention_rate": 72}})
	if !reflect.DeepEqual(got, []string{"region", "retention_rate"}) {
		t.Errorf("Columns = %v", got)
	}
	if got := Columns(nil); got == nil || len(got) != 0 {
		t.Errorf("Columns(nil) = %v", got)
	}
}

func TestSort(t *testing.T) {
	tbl := New([]string{"name", "score"}, []Row{
		{"name": "beta", "score": 10},
		{"name": "Alpha", "score": 2.5},
		{"name": "gamma", "score": 10},
		{"name": "delta", "score": "n/a"},
	})

	byName := tbl.Sort("name", Asc)
	var names []string
	for _, r := range byName.Rows {
		names = append(names, r["name"].(string))
	}
	if !reflect.DeepEqual(names, []string{"Alpha", "beta", "delta", "gamma"}) {
		t.Errorf("asc by name = %v", names)
	}

	byScore := tbl.Sort("score", Desc)
	names = names[:0]
	for _, r := range byScore.Rows {
		names = append(names, r["name"].(string))
	}
	// "n/a" compares as text against numbers and sorts after them.
	if !reflect.DeepEqual(names, []string{"delta", "beta", "gamma", "Alpha"}) {
		t.Errorf("desc by score = %v", names)
	}

	if tbl.Rows[0]["name"] != "beta" {
		t.Error("Sort must not reorder the receiver")
	}
	if got := tbl.Sort("", Asc); got.Rows[1]["name"] != "Alpha" {
		t.Error("empty field should keep input order")
	}
}

func TestPage(t *testing.T) {
	tbl := New([]string{"id"}, rows(23))

	tests := []struct {
		page       int
		wantPage   int
		start, end int
		firstID    int
	}{
		{1, 1, 1, 10, 1},
		{2, 2, 11, 20, 11},
		{3, 3, 21, 23, 21},
		{99, 3, 21, 23, 21},
		{0, 1, 1, 10, 1},
		{-4, 1, 1, 10, 1},
	}
	for _, tt := range tests {
		p := tbl.Page(tt.page)
		if p.Page != tt.wantPage || p.Start != tt.start || p.End != tt.end {
			t.Errorf("Page(%d) = page %d [%d,%d]", tt.page, p.Page, p.Start, p.End)
		}
		if p.TotalPages != 3 || p.TotalRows != 23 {
			t.Errorf("Page(%d) totals = %d/%d", tt.page, p.TotalPages, p.TotalRows)
		}
		if p.Rows[0]["id"] != tt.firstID {
			t.Errorf("Page(%d) first id = %v", tt.page, p.Rows[0]["id"])
		}
	}
}

func TestPageDisplay(t *testing.T) {
	tbl := New([]string{"region", "revenue", "active"}, []Row{
		{"region": "West", "revenue": 1250000.5, "active": true},
		{"region": "East", "revenue": 980000},
	})

	p := tbl.Page(1)
	if len(p.Display) != 2 {
		t.Fatalf("display rows = %d, want 2", len(p.Display))
	}
	want := []map[string]string{
		{"region": "West", "revenue": "1,250,000.50", "active": "Yes"},
		{"region": "East", "revenue": "980,000", "active": "—"},
	}
	for i := range want {
		for col, cell := range want[i] {
			if got := p.Display[i][col]; got != cell {
				t.Errorf("display[%d][%s] = %q, want %q", i, col, got, cell)
			}
		}
	}
	if p.Rows[0]["revenue"] != 1250000.5 {
		t.Errorf("raw rows should be unformatted: %+v", p.Rows[0])
	}
}

func TestPageEmpty(t *testing.T) {
	p := New(nil, nil).Page(3)
	if p.Page != 1 || p.TotalPages != 0 || p.Start != 0 || p.End != 0 {
		t.Errorf("empty page = %+v", p)
	}
	if p.Rows == nil || p.Columns == nil || p.Display == nil || len(p.PageNumbers) != 0 {
		t.Errorf("empty page should have empty slices: %+v", p)
	}
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 3, []int{1, 2, 3}},
		{2, 10, []int{1, 2, 3, 4, 5}},
		{3, 10, []int{1, 2, 3, 4, 5}},
		{6, 10, []int{4, 5, 6, 7, 8}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		if got := PageNumbers(tt.current, tt.total); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PageNumbers(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "—"},
		{true, "Yes"},
		{false, "No"},
		{"West", "West"},
		{2500000, "2,500,000"},
		{2500000.0, "2,500,000"},
		{-2.1, "-2.10"},
		{1234.567, "1,234.57"},
		{27.1, "27.10"},
	}
	for _, tt := range tests {
		if got := FormatCell(tt.in); got != tt.want {
			t.Errorf("FormatCell(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
