package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"dataagent/service"

	"github.com/gin-gonic/gin"
)

// ListExportsHandler lists saved exports
// @Summary      List saved exports
// @Description  Get a list of all saved result exports (JSON/CSV), newest first
// @Tags         Exports
// @Produce      json
// @Success      200  {object}  map[string][]models.ExportFileInfo  "List of export files"
// @Failure      500  {object}  map[string]string                   "Failed to list files"
// @Router       /api/exports [get]
func (h *Handlers) ListExportsHandler(c *gin.Context) {
	files, err := h.results.ListExports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to list files: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// GetExportHandler retrieves a saved export
// @Summary      Get saved export
// @Description  Get a saved export by filename. JSON exports are returned parsed, CSV exports as a file.
// @Tags         Exports
// @Produce      json
// @Param        filename  path      string  true  "Export file name"
// @Success      200       {object}  models.ExportDocument  "Export content"
// @Failure      400       {object}  map[string]string      "Invalid filename"
// @Failure      404       {object}  map[string]string      "File not found"
// @Router       /api/exports/{filename} [get]
func (h *Handlers) GetExportHandler(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Filename is required"})
		return
	}

	if filepath.Ext(filename) == ".csv" {
		path, err := h.results.ExportPath(filename)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.FileAttachment(path, filename)
		return
	}

	doc, err := h.results.GetExport(filename)
	if errors.Is(err, service.ErrInvalidFilename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("File not found: %v", err)})
		return
	}

	c.JSON(http.StatusOK, doc)
}
