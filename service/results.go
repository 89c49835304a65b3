package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"dataagent/models"
)

const exportPrefix = "query-result-"

var ErrInvalidFilename = errors.New("invalid filename")

// ResultsStorage writes export artifacts to a directory.
type ResultsStorage struct {
	resultsDir string
}

func NewResultsStorage(resultsDir string) (*ResultsStorage, error) {
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	return &ResultsStorage{resultsDir: resultsDir}, nil
}

// ExportFileName is the download name for a result exported on t's calendar day.
func ExportFileName(t time.Time) string {
	return exportPrefix + t.UTC().Format("2006-01-02") + ".json"
}

// ExportCSVFileName is ExportFileName with a .csv extension.
func ExportCSVFileName(t time.Time) string {
	return exportPrefix + t.UTC().Format("2006-01-02") + ".csv"
}

// MarshalExport renders the downloadable JSON document for a result.
func MarshalExport(result models.QueryResult) ([]byte, error) {
	data := result.Data
	if data == nil {
		data = []models.DataPoint{}
	}
	doc := models.ExportDocument{
		Query:  result.Query,
		Answer: result.Answer,
		SQL:    result.SQL,
		Data:   data,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return out, nil
}

func ParseExport(data []byte) (*models.ExportDocument, error) {
	var doc models.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if doc.Data == nil {
		doc.Data = []models.DataPoint{}
	}
	return &doc, nil
}

// MarshalExportCSV renders the data points as a label,value table.
func MarshalExportCSV(result models.QueryResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"label", "value"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range result.Data {
		record := []string{p.Label, strconv.FormatFloat(p.Value, 'f', -1, 64)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveExport writes the JSON artifact and returns its file name. A second export on the same
// day gets a numeric suffix instead of overwriting the first.
func (r *ResultsStorage) SaveExport(result models.QueryResult, now time.Time) (string, error) {
	data, err := MarshalExport(result)
	if err != nil {
		return "", err
	}
	return r.write(ExportFileName(now), data)
}

func (r *ResultsStorage) SaveExportCSV(result models.QueryResult, now time.Time) (string, error) {
	data, err := MarshalExportCSV(result)
	if err != nil {
		return "", err
	}
	return r.write(ExportCSVFileName(now), data)
}

func (r *ResultsStorage) write(filename string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for n := 1; ; n++ {
		name := filename
		if n > 1 {
			name = fmt.Sprintf("%s-%d%s", base, n, ext)
		}
		f, err := os.OpenFile(filepath.Join(r.resultsDir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create export file: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("failed to write export file: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("failed to write export file: %w", err)
		}
		return name, nil
	}
}

// GetExport reads a saved JSON artifact.
func (r *ResultsStorage) GetExport(filename string) (*models.ExportDocument, error) {
	path, err := r.ExportPath(filename)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(filename) != ".json" {
		return nil, fmt.Errorf("unsupported file format")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseExport(data)
}

// ExportPath resolves filename inside the results directory, rejecting anything that would
// escape it.
func (r *ResultsStorage) ExportPath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return filepath.Join(r.resultsDir, filename), nil
}

// ListExports returns saved artifacts, newest first.
func (r *ResultsStorage) ListExports() ([]models.ExportFileInfo, error) {
	files, err := os.ReadDir(r.resultsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	exports := []models.ExportFileInfo{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := filepath.Ext(file.Name())
		if ext != ".json" && ext != ".csv" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		exports = append(exports, models.ExportFileInfo{
			Filename: file.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().Format(time.RFC3339),
			Format:   ext[1:],
		})
	}

	sort.SliceStable(exports, func(i, j int) bool {
		return exports[i].Modified > exports[j].Modified
	})
	return exports, nil
}
