package handlers

import (
	"net/http"

	"dataagent/chart"
	"dataagent/models"
	"dataagent/sample"

	"github.com/gin-gonic/gin"
)

// ListSamplesHandler lists the built-in datasets
// @Summary      List sample datasets
// @Tags         Samples
// @Produce      json
// @Success      200  {object}  map[string][]string  "Dataset names"
// @Router       /api/samples [get]
func (h *Handlers) ListSamplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"samples": sample.Names()})
}

// GetSampleHandler renders a built-in dataset
// @Summary      Get a sample dataset
// @Description  Get one page of a built-in dataset together with a chart configuration for it
// @Tags         Samples
// @Produce      json
// @Param        name   path      string  true   "Dataset name"
// @Param        page   query     int     false  "Page number"
// @Param        sort   query     string  false  "Column to sort by"
// @Param        dir    query     string  false  "Sort direction (asc or desc)"
// @Param        chart  query     string  false  "Chart type (bar, line, pie, scatter); empty picks one"
// @Success      200    {object}  map[string]interface{}  "Table page and chart"
// @Failure      400    {object}  map[string]string       "Invalid parameters"
// @Failure      404    {object}  map[string]string       "Unknown dataset"
// @Router       /api/samples/{name} [get]
func (h *Handlers) GetSampleHandler(c *gin.Context) {
	name := c.Param("name")
	tbl, ok := sample.Dataset(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown dataset: " + name})
		return
	}

	chartType, err := models.ParseChartType(c.Query("chart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, ok := tablePage(c, tbl)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  name,
		"table": page,
		"chart": chart.Build(tbl, chartType, h.store.State().DarkMode),
	})
}
