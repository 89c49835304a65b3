package insight

import (
	"strings"

	"dataagent/models"
)

var timeWords = []string{"year", "month", "quarter"}

// SelectChart picks a chart for the extracted points. Rules apply in order and the first hit wins:
// rate-like percentages give pie, time-like labels give line, anything else is bar.
func SelectChart(points []models.DataPoint) models.ChartType {
	if len(points) == 0 {
		return models.ChartNone
	}

	for _, p := range points {
		if p.Value <= 100 && strings.Contains(strings.ToLower(p.Label), "rate") {
			return models.ChartPie
		}
	}

	for _, p := range points {
		label := strings.ToLower(p.Label)
		for _, w := range timeWords {
			if strings.Contains(label, w) {
				return models.ChartLine
			}
		}
	}

	return models.ChartBar
}
