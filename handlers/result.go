package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"dataagent/chart"
	"dataagent/db"
	"dataagent/models"
	"dataagent/service"
	"dataagent/session"
	"dataagent/table"

	"github.com/gin-gonic/gin"
)

// currentResult writes a 404 and returns false when nothing has been asked yet.
func (h *Handlers) currentResult(c *gin.Context) (models.QueryResult, bool) {
	result, err := h.store.Current()
	if errors.Is(err, session.ErrNoResult) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No query result yet"})
		return result, false
	}
	return result, true
}

// tablePage sorts and pages tbl from the page, sort and dir query parameters.
func tablePage(c *gin.Context, tbl table.Table) (models.TablePage, bool) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
			return models.TablePage{}, false
		}
		page = n
	}

	field := c.Query("sort")
	if field != "" && !hasColumn(tbl, field) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown sort field: %s", field)})
		return models.TablePage{}, false
	}

	dir := c.DefaultQuery("dir", table.Asc)
	if dir != table.Asc && dir != table.Desc {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dir must be asc or desc"})
		return models.TablePage{}, false
	}

	p := tbl.Sort(field, dir).Page(page)
	if field != "" {
		p.SortField = field
		p.SortDir = dir
	}
	return p, true
}

func hasColumn(tbl table.Table, name string) bool {
	for _, col := range tbl.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// ResultTableHandler pages the current result's data
// @Summary      Current result as a table
// @Description  Get the extracted data points of the current result as a sortable table, 10 rows per page
// @Tags         Result
// @Produce      json
// @Param        page  query     int     false  "Page number (clamped to the valid range)"
// @Param        sort  query     string  false  "Column to sort by (label or value)"
// @Param        dir   query     string  false  "Sort direction (asc or desc)"
// @Success      200   {object}  models.TablePage   "Table page"
// @Failure      400   {object}  map[string]string  "Invalid parameters"
// @Failure      404   {object}  map[string]string  "No query result yet"
// @Router       /api/result/table [get]
func (h *Handlers) ResultTableHandler(c *gin.Context) {
	result, ok := h.currentResult(c)
	if !ok {
		return
	}

	page, ok := tablePage(c, table.FromDataPoints(result.Data))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, page)
}

// ResultChartHandler describes the chart for the current result
// @Summary      Current result as a chart
// @Description  Get a chart configuration for the current result, styled for the session theme. chart is null when the result has no data.
// @Tags         Result
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Chart configuration"
// @Failure      404  {object}  map[string]string       "No query result yet"
// @Router       /api/result/chart [get]
func (h *Handlers) ResultChartHandler(c *gin.Context) {
	result, ok := h.currentResult(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"chart": chart.FromResult(result, h.store.State().DarkMode)})
}

// ExportResultHandler downloads the current result
// @Summary      Download current result
// @Description  Download the current result as query-result-YYYY-MM-DD.json, or as CSV with format=csv
// @Tags         Result
// @Produce      json
// @Produce      text/csv
// @Param        format  query     string  false  "json (default) or csv"
// @Success      200     {object}  models.ExportDocument  "Export document"
// @Failure      400     {object}  map[string]string      "Unsupported format"
// @Failure      404     {object}  map[string]string      "No query result yet"
// @Router       /api/result/export [get]
func (h *Handlers) ExportResultHandler(c *gin.Context) {
	result, ok := h.currentResult(c)
	if !ok {
		return
	}

	var (
		data        []byte
		err         error
		filename    string
		contentType string
	)
	switch c.DefaultQuery("format", "json") {
	case "json":
		data, err = service.MarshalExport(result)
		filename = service.ExportFileName(h.now())
		contentType = "application/json"
	case "csv":
		data, err = service.MarshalExportCSV(result)
		filename = service.ExportCSVFileName(h.now())
		contentType = "text/csv"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or csv"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to export result: %v", err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

// SaveExportHandler saves the current result to the results directory
// @Summary      Save current result
// @Description  Write the current result to the results directory. A second save on the same day gets a numeric suffix.
// @Tags         Result
// @Produce      json
// @Param        format  query     string  false  "json (default) or csv"
// @Success      201     {object}  map[string]string  "Saved file name"
// @Failure      400     {object}  map[string]string  "Unsupported format"
// @Failure      404     {object}  map[string]string  "No query result yet"
// @Failure      500     {object}  map[string]string  "Failed to save"
// @Router       /api/result/export [post]
func (h *Handlers) SaveExportHandler(c *gin.Context) {
	result, ok := h.currentResult(c)
	if !ok {
		return
	}

	var (
		filename string
		err      error
	)
	switch c.DefaultQuery("format", "json") {
	case "json":
		filename, err = h.results.SaveExport(result, h.now())
	case "csv":
		filename, err = h.results.SaveExportCSV(result, h.now())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or csv"})
		return
	}
	if err != nil {
		log.Printf("[EXPORT] Error saving export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save export: %v", err)})
		return
	}

	log.Printf("[EXPORT] Saved %s", filename)
	c.JSON(http.StatusCreated, gin.H{"filename": filename})
}

// ListStoredResultsHandler lists recent results
// @Summary      List recent results
// @Description  Get results produced by this process that have not expired yet, newest first
// @Tags         Result
// @Produce      json
// @Success      200  {object}  map[string][]db.StoredResult  "Stored results"
// @Failure      500  {object}  map[string]string             "Failed to list results"
// @Router       /api/results [get]
func (h *Handlers) ListStoredResultsHandler(c *gin.Context) {
	results, err := h.db.ListResults()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to list results: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetStoredResultHandler returns one stored result
// @Summary      Get a stored result
// @Tags         Result
// @Produce      json
// @Param        id   path      string           true  "Result ID"
// @Success      200  {object}  db.StoredResult     "Stored result"
// @Failure      404  {object}  map[string]string   "Result not found"
// @Router       /api/results/{id} [get]
func (h *Handlers) GetStoredResultHandler(c *gin.Context) {
	stored, err := h.db.GetResult(c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to load result: %v", err)})
		return
	}
	c.JSON(http.StatusOK, stored)
}
