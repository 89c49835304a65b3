package sample

import (
	"testing"

	"dataagent/chart"
	"dataagent/models"
	"dataagent/table"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("Names = %v", names)
	}
	for _, name := range names {
		tbl, ok := Dataset(name)
		if !ok || len(tbl.Rows) == 0 {
			t.Errorf("%s: empty dataset", name)
		}
		for _, row := range tbl.Rows {
			if len(row) != len(tbl.Columns) {
				t.Errorf("%s: row %v does not match columns %v", name, row, tbl.Columns)
			}
		}
	}
}

func TestUnknownDataset(t *testing.T) {
	tbl, ok := Dataset("nope")
	if ok || tbl.Rows == nil || len(tbl.Rows) != 0 {
		t.Errorf("Dataset(nope) = %+v, %v", tbl, ok)
	}
}

func TestDatasetReturnsCopy(t *testing.T) {
	tbl, _ := Dataset("topProducts")
	tbl.Rows[0]["revenue"] = 0

	again, _ := Dataset("topProducts")
	if again.Rows[0]["revenue"] != 2500000 {
		t.Error("datasets must not be shared between callers")
	}
}

func TestRevenueGrowthSortsNegativeLast(t *testing.T) {
	tbl, _ := Dataset("revenueGrowth")
	page := tbl.Sort("growth_percentage", table.Desc).Page(1)
	if got := page.Rows[len(page.Rows)-1]["department"]; got != "Food & Beverage" {
		t.Errorf("last department = %v", got)
	}
}

func TestMarketingROIScatter(t *testing.T) {
	tbl, _ := Dataset("marketingROI")
	cfg := chart.Build(tbl, models.ChartScatter, false)
	if cfg.ChartType != models.ChartScatter || len(cfg.Datasets[0].Points) != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
}
