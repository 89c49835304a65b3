package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API on r.
func (h *Handlers) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthHandler)

	api := r.Group("/api")
	api.POST("/query", h.QueryHandler)

	// Session routes
	api.GET("/state", h.StateHandler)
	api.GET("/history", h.HistoryHandler)
	api.POST("/history/:index", h.ResubmitHandler)
	api.POST("/theme/toggle", h.ToggleThemeHandler)

	// Current result routes
	api.GET("/result/table", h.ResultTableHandler)
	api.GET("/result/chart", h.ResultChartHandler)
	api.GET("/result/export", h.ExportResultHandler)
	api.POST("/result/export", h.SaveExportHandler)
	api.GET("/results", h.ListStoredResultsHandler)
	api.GET("/results/:id", h.GetStoredResultHandler)

	// Export file routes
	api.GET("/exports", h.ListExportsHandler)
	api.GET("/exports/:filename", h.GetExportHandler)

	api.GET("/samples", h.ListSamplesHandler)
	api.GET("/samples/:name", h.GetSampleHandler)
}
