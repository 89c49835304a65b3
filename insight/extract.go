// Package insight turns free-form model answers into data points and picks a chart for them.
package insight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"dataagent/models"
)

// labelWindow is how many characters before a number are searched for its label.
const labelWindow = 50

var (
	// $ prefix, comma-grouped or plain integer part, optional fraction, optional K/M/B or %.
	numberPattern = regexp.MustCompile(`\$?((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?)([KMB%])?`)
	labelPattern  = regexp.MustCompile(`([A-Za-z\s]+):?\s*$`)
)

// Extractor turns answer text into an ordered list of data points.
type Extractor interface {
	Extract(answer string) []models.DataPoint
}

// RegexExtractor is the default Extractor.
type RegexExtractor struct{}

func (RegexExtractor) Extract(answer string) []models.DataPoint {
	return Extract(answer)
}

// Extract scans answer left to right for numeric mentions. A number that continues a word or
// another number ("Q3", "v2.0") is skipped whole. Letters after the number ("10x", "$2.5Million")
// do not stop it from being read.
func Extract(answer string) []models.DataPoint {
	points := []models.DataPoint{}

	for _, m := range numberPattern.FindAllStringSubmatchIndex(answer, -1) {
		start, end := m[0], m[1]
		if !boundaryBefore(answer, start) || !boundaryAfter(answer, end) {
			continue
		}

		literal := strings.ReplaceAll(answer[m[2]:m[3]], ",", "")
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			continue
		}

		if m[4] >= 0 {
			value *= multiplier(answer[m[4]:m[5]])
		}

		label := labelBefore(answer, start)
		if label == "" {
			label = fmt.Sprintf("Metric %d", len(points)+1)
		}

		points = append(points, models.DataPoint{Label: label, Value: value})
	}

	return points
}

func multiplier(suffix string) float64 {
	switch suffix {
	case "K":
		return 1e3
	case "M":
		return 1e6
	case "B":
		return 1e9
	}
	return 1
}

// labelBefore returns the run of letters and spaces (optionally followed by a colon) that ends
// right where the number starts, looking back at most labelWindow characters.
func labelBefore(text string, pos int) string {
	from := pos
	for n := 0; n < labelWindow && from > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}

	match := labelPattern.FindStringSubmatch(text[from:pos])
	if match == nil {
		return ""
	}
	return strings.Join(strings.Fields(match[1]), " ")
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	switch {
	case isWordRune(r), r == '.':
		return false
	case r == ',':
		prev, _ := utf8.DecodeLastRuneInString(text[:pos-1])
		return !isDigit(prev)
	}
	return true
}

// boundaryAfter rejects a match that runs straight into another digit ("5K3").
func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isDigit(r)
}

func isWordRune(r rune) bool {
	return isDigit(r) || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
