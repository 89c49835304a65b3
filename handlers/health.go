package handlers

import (
	"errors"
	"net/http"

	"dataagent/db"

	"github.com/gin-gonic/gin"
)

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Check the health status of the service and which model provider it is configured for
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":         "healthy",
		"db":             "in_memory",
		"ai_provider":    h.provider,
		"session":        "idle",
		"snapshot":       "none",
		"answer_cache":   "disabled",
		"cached_answers": h.cache.ItemCount(),
	}

	if h.store.State().Loading {
		status["session"] = "busy"
	}
	if h.cache.Enabled() {
		status["answer_cache"] = "enabled"
	}

	if _, err := h.db.LoadSession(); err == nil {
		status["snapshot"] = "saved"
	} else if !errors.Is(err, db.ErrNotFound) {
		status["status"] = "degraded"
		status["db"] = err.Error()
	}

	c.JSON(http.StatusOK, status)
}
