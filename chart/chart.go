// Package chart turns tabular data into a chart description that a client-side
// plotting library can draw directly.
package chart

import (
	"fmt"
	"strings"

	"dataagent/models"
	"dataagent/table"
)

var (
	lightPalette = []string{"#3B82F6", "#8B5CF6", "#10B981", "#F59E0B", "#EF4444", "#14B8A6", "#F97316"}
	darkPalette  = []string{"#60A5FA", "#8B5CF6", "#34D399", "#FBBF24", "#F87171", "#2DD4BF", "#FB923C"}
)

const (
	legendTop   = "top"
	legendRight = "right"

	maxCategories = 20
)

// columns holds what Build learns about a table before picking a layout.
type columns struct {
	all      []string
	time     string
	numeric  []string
	category string
}

func inspect(t table.Table) columns {
	c := columns{all: t.Columns}
	first := t.Rows[0]

	for _, col := range t.Columns {
		lower := strings.ToLower(col)
		if c.time == "" && (strings.Contains(lower, "date") || strings.Contains(lower, "time") ||
			strings.Contains(lower, "year") || strings.Contains(lower, "month")) {
			c.time = col
		}
		if _, ok := table.Number(first[col]); ok {
			c.numeric = append(c.numeric, col)
		}
	}

	for _, col := range t.Columns {
		if col == c.time || contains(c.numeric, col) {
			continue
		}
		distinct := map[string]struct{}{}
		for _, r := range t.Rows {
			distinct[fmt.Sprint(r[col])] = struct{}{}
		}
		if len(distinct) > 1 && len(distinct) <= maxCategories {
			c.category = col
			break
		}
	}
	return c
}

// Build describes how to draw t as the requested chart type. When the table cannot support the
// requested shape a bar chart is returned instead. ChartNone lets Build choose. An empty table
// yields nil.
func Build(t table.Table, requested models.ChartType, darkMode bool) *models.ChartConfig {
	if len(t.Rows) == 0 {
		return nil
	}

	c := inspect(t)
	palette := lightPalette
	if darkMode {
		palette = darkPalette
	}

	valueCol := ""
	if len(c.numeric) > 0 {
		valueCol = c.numeric[0]
	} else if len(c.all) > 0 {
		valueCol = c.all[0]
	}
	firstCol := ""
	if len(c.all) > 0 {
		firstCol = c.all[0]
	}

	cfg := &models.ChartConfig{
		Requested: requested,
		Theme:     theme(darkMode),
		Legend:    legendTop,
	}
	auto := requested == models.ChartNone
	hasNumeric := len(c.numeric) > 0

	switch {
	case requested == models.ChartBar || (auto && hasNumeric && c.category != ""):
		labelCol := or(c.category, firstCol)
		cfg.ChartType = models.ChartBar
		cfg.Labels = labels(t, labelCol)
		cfg.Datasets = []models.ChartDataset{{
			Label:           valueCol,
			Data:            values(t, valueCol),
			BackgroundColor: []string{palette[0]},
			BorderColor:     palette[0],
			BorderWidth:     1,
		}}

	case requested == models.ChartLine || (auto && c.time != "" && hasNumeric):
		labelCol := or(c.time, firstCol)
		cfg.ChartType = models.ChartLine
		cfg.Labels = labels(t, labelCol)
		cfg.Datasets = []models.ChartDataset{{
			Label:           valueCol,
			Data:            values(t, valueCol),
			BackgroundColor: []string{palette[0] + "33"},
			BorderColor:     palette[0],
			BorderWidth:     2,
			Fill:            true,
		}}

	case requested == models.ChartPie:
		labelCol := or(c.category, firstCol)
		cfg.ChartType = models.ChartPie
		cfg.Labels = labels(t, labelCol)
		colors := make([]string, len(cfg.Labels))
		for i := range colors {
			colors[i] = palette[i%len(palette)]
		}
		border := "white"
		if darkMode {
			border = "rgba(17, 24, 39, 0.8)"
		}
		cfg.Datasets = []models.ChartDataset{{
			Label:           valueCol,
			Data:            values(t, valueCol),
			BackgroundColor: colors,
			BorderColor:     border,
			BorderWidth:     2,
		}}
		cfg.Legend = legendRight

	case requested == models.ChartScatter && len(c.numeric) >= 2:
		x, y := c.numeric[0], c.numeric[1]
		points := make([]models.ChartPoint, 0, len(t.Rows))
		for _, r := range t.Rows {
			xv, _ := table.Number(r[x])
			yv, _ := table.Number(r[y])
			points = append(points, models.ChartPoint{X: xv, Y: yv})
		}
		cfg.ChartType = models.ChartScatter
		cfg.Datasets = []models.ChartDataset{{
			Label:           x + " vs " + y,
			Points:          points,
			BackgroundColor: []string{palette[0]},
			BorderColor:     palette[0],
		}}

	default:
		cfg.ChartType = models.ChartBar
		cfg.Labels = make([]string, len(t.Rows))
		data := make([]float64, len(t.Rows))
		label := "Count"
		if hasNumeric {
			label = c.numeric[0]
		}
		for i, r := range t.Rows {
			if c.category != "" {
				cfg.Labels[i] = fmt.Sprint(r[c.category])
			} else {
				cfg.Labels[i] = fmt.Sprintf("Item %d", i+1)
			}
			if hasNumeric {
				data[i], _ = table.Number(r[c.numeric[0]])
			} else {
				data[i] = 1
			}
		}
		cfg.Datasets = []models.ChartDataset{{
			Label:           label,
			Data:            data,
			BackgroundColor: []string{palette[0]},
			BorderColor:     palette[0],
			BorderWidth:     1,
		}}
	}

	return cfg
}

// FromResult builds the chart for a query result's extracted data.
func FromResult(result models.QueryResult, darkMode bool) *models.ChartConfig {
	if len(result.Data) == 0 || result.ChartType == models.ChartNone {
		return nil
	}
	return Build(table.FromDataPoints(result.Data), result.ChartType, darkMode)
}

func theme(dark bool) models.ChartTheme {
	if dark {
		return models.ChartTheme{Dark: true, TextColor: "#D1D5DB", GridColor: "rgba(75, 85, 99, 0.2)"}
	}
	return models.ChartTheme{TextColor: "#4B5563", GridColor: "rgba(203, 213, 225, 0.5)"}
}

func labels(t table.Table, col string) []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = fmt.Sprint(r[col])
	}
	return out
}

// values reads col as numbers; anything non-numeric plots as 0.
func values(t table.Table, col string) []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i], _ = table.Number(r[col])
	}
	return out
}

func or(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
