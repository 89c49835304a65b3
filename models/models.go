package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChartType is the visualization shape chosen for a result. ChartNone means no chart.
type ChartType string

const (
	ChartNone    ChartType = ""
	ChartBar     ChartType = "bar"
	ChartLine    ChartType = "line"
	ChartPie     ChartType = "pie"
	ChartScatter ChartType = "scatter"
)

// ParseChartType accepts the wire names plus "" and "null" for ChartNone.
func ParseChartType(s string) (ChartType, error) {
	switch ChartType(s) {
	case ChartBar, ChartLine, ChartPie, ChartScatter:
		return ChartType(s), nil
	case ChartNone, "null":
		return ChartNone, nil
	}
	return ChartNone, fmt.Errorf("unknown chart type %q", s)
}

// MarshalJSON writes ChartNone as null.
func (c ChartType) MarshalJSON() ([]byte, error) {
	if c == ChartNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(c))
}

func (c *ChartType) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = ChartNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseChartType(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// DataPoint is a numeric fact pulled out of a model answer.
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// QueryResult is produced once per submitted query and never modified afterwards.
type QueryResult struct {
	Query     string      `json:"query"`
	Answer    string      `json:"answer"`
	Error     bool        `json:"error,omitempty"`
	SQL       string      `json:"sql"`
	Data      []DataPoint `json:"data"`
	ChartType ChartType   `json:"chartType"`
}

// ExportDocument is the downloadable form of a QueryResult.
type ExportDocument struct {
	Query  string      `json:"query"`
	Answer string      `json:"answer"`
	SQL    string      `json:"sql"`
	Data   []DataPoint `json:"data"`
}

type QueryRequest struct {
	Query string `json:"query" binding:"required" example:"What were our top selling products last quarter?"`
}

// SessionView is the API rendering of the session state.
type SessionView struct {
	Current  *QueryResult `json:"current"`
	History  []string     `json:"history"`
	Loading  bool         `json:"loading"`
	DarkMode bool         `json:"darkMode"`
}

type ExportFileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
	Format   string `json:"format"`
}

// TablePage is one page of a sorted table.
type TablePage struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	// Display holds each row's cells formatted for rendering, keyed like Rows.
	Display     []map[string]string `json:"display"`
	Page        int                 `json:"page"`
	TotalPages  int                 `json:"totalPages"`
	TotalRows   int                 `json:"totalRows"`
	Start       int                 `json:"start"`
	End         int                 `json:"end"`
	PageNumbers []int               `json:"pageNumbers"`
	SortField   string              `json:"sortField,omitempty"`
	SortDir     string              `json:"sortDir,omitempty"`
}

// ChartConfig describes a chart for a client-side plotting library.
type ChartConfig struct {
	ChartType ChartType      `json:"chartType"`
	Requested ChartType      `json:"requested"`
	Labels    []string       `json:"labels,omitempty"`
	Datasets  []ChartDataset `json:"datasets"`
	Theme     ChartTheme     `json:"theme"`
	Legend    string         `json:"legend"`
}

type ChartDataset struct {
	Label           string       `json:"label"`
	Data            []float64    `json:"data,omitempty"`
	Points          []ChartPoint `json:"points,omitempty"`
	BackgroundColor []string     `json:"backgroundColor"`
	BorderColor     string       `json:"borderColor"`
	BorderWidth     int          `json:"borderWidth"`
	Fill            bool         `json:"fill,omitempty"`
}

type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartTheme carries the colours that depend on dark mode.
type ChartTheme struct {
	Dark      bool   `json:"dark"`
	TextColor string `json:"textColor"`
	GridColor string `json:"gridColor"`
}
