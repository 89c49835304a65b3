package insight

import (
	"strings"
	"testing"

	"dataagent/models"
)

func TestExtractMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"millions with dollar", "$2.5M in revenue", 2500000},
		{"thousands", "We added 40K subscribers", 40000},
		{"billions", "market cap of $1B overall", 1e9},
		{"percent unscaled", "45%", 45},
		{"comma grouped", "1,234", 1234},
		{"plain integer", "sold 12345 units", 12345},
		{"grouped with fraction", "$1,250,000.50 total", 1250000.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Extract(tt.text)
			if len(points) != 1 {
				t.Fatalf("Extract(%q) returned %d points: %+v", tt.text, len(points), points)
			}
			if points[0].Value != tt.want {
				t.Errorf("value = %v, want %v", points[0].Value, tt.want)
			}
		})
	}
}

func TestExtractGrowthExample(t *testing.T) {
	points := Extract("Q3 growth was 12.1%")
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %+v", points)
	}
	if !strings.Contains(points[0].Label, "growth") {
		t.Errorf("label %q should contain growth", points[0].Label)
	}
	if points[0].Value != 12.1 {
		t.Errorf("value = %v, want 12.1", points[0].Value)
	}
	if got := SelectChart(points); got != models.ChartBar {
		t.Errorf("SelectChart = %q, want bar", got)
	}
}

func TestExtractNoNumbers(t *testing.T) {
	for _, text := range []string{"", "No numeric data here.", "Revenue is trending up across all regions!"} {
		points := Extract(text)
		if points == nil {
			t.Fatalf("Extract(%q) returned nil, want empty slice", text)
		}
		if len(points) != 0 {
			t.Errorf("Extract(%q) = %+v, want empty", text, points)
		}
		if got := SelectChart(points); got != models.ChartNone {
			t.Errorf("SelectChart(%q) = %q, want none", text, got)
		}
	}
}

func TestExtractLabels(t *testing.T) {
	points := Extract("Results: 10, 20")
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %+v", points)
	}
	if points[0].Label != "Results" {
		t.Errorf("first label = %q, want Results", points[0].Label)
	}
	if points[1].Label != "Metric 2" {
		t.Errorf("second label = %q, want Metric 2", points[1].Label)
	}
}

func TestExtractPositionalLabelCountsPoints(t *testing.T) {
	points := Extract("$5M")
	if len(points) != 1 || points[0].Label != "Metric 1" {
		t.Fatalf("got %+v, want single Metric 1", points)
	}
}

func TestExtractOrderAndDuplicates(t *testing.T) {
	text := "Revenue: $5M. Revenue: $5M. Profit: $1M."
	points := Extract(text)
	want := []models.DataPoint{
		{Label: "Revenue", Value: 5e6},
		{Label: "Revenue", Value: 5e6},
		{Label: "Profit", Value: 1e6},
	}
	if len(points) != len(want) {
		t.Fatalf("got %+v", points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, points[i], want[i])
		}
	}
}

func TestExtractSkipsTokensInsideWords(t *testing.T) {
	points := Extract("Q4 and v2.0 shipped as build abc123 with 5K3 flags")
	if len(points) != 0 {
		t.Errorf("expected no points, got %+v", points)
	}
}

func TestExtractLettersAfterNumber(t *testing.T) {
	tests := []struct {
		text string
		want []float64
	}{
		{"Revenue reached $2.5Million", []float64{2500000}},
		{"churn hit 12%of users", []float64{12}},
		{"It was 1.5x higher; margin 20%", []float64{1.5, 20}},
		{"Q4 saw 10x gains in 3Months", []float64{10, 3}},
	}

	for _, tt := range tests {
		points := Extract(tt.text)
		if len(points) != len(tt.want) {
			t.Errorf("Extract(%q) = %+v, want values %v", tt.text, points, tt.want)
			continue
		}
		for i, want := range tt.want {
			if points[i].Value != want {
				t.Errorf("Extract(%q)[%d] = %v, want %v", tt.text, i, points[i].Value, want)
			}
		}
	}
}

func TestExtractLabelWindow(t *testing.T) {
	prefix := strings.Repeat("very ", 30)
	points := Extract("The " + prefix + "long label 7%")
	if len(points) != 1 {
		t.Fatalf("got %+v", points)
	}
	if len(points[0].Label) > labelWindow {
		t.Errorf("label longer than window: %q", points[0].Label)
	}
	if !strings.HasSuffix(points[0].Label, "long label") {
		t.Errorf("label = %q", points[0].Label)
	}
}

func TestExtractMultilineLabel(t *testing.T) {
	points := Extract("Key metrics\n- Retention\nrate: 78%")
	if len(points) != 1 {
		t.Fatalf("got %+v", points)
	}
	if points[0].Label != "Retention rate" {
		t.Errorf("label = %q, want Retention rate", points[0].Label)
	}
}

func TestRegexExtractorImplementsExtractor(t *testing.T) {
	var e Extractor = RegexExtractor{}
	if got := e.Extract("margin of 12%"); len(got) != 1 || got[0].Value != 12 {
		t.Errorf("got %+v", got)
	}
}
