package handlers

import (
	"net/http"

	"dataagent/session"

	"github.com/gin-gonic/gin"
)

// StateHandler returns the session
// @Summary      Get session state
// @Description  Get the current result, recent queries (most recent first), the in-flight flag and the theme
// @Tags         Session
// @Produce      json
// @Success      200  {object}  models.SessionView  "Session state"
// @Router       /api/state [get]
func (h *Handlers) StateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.State().View())
}

// HistoryHandler lists recent queries
// @Summary      List recent queries
// @Description  Get up to 10 recent queries, most recent first
// @Tags         Session
// @Produce      json
// @Success      200  {object}  map[string][]string  "Recent queries"
// @Router       /api/history [get]
func (h *Handlers) HistoryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.store.State().View().History})
}

// ToggleThemeHandler switches between light and dark mode
// @Summary      Toggle dark mode
// @Tags         Session
// @Produce      json
// @Success      200  {object}  models.SessionView  "Session state"
// @Router       /api/theme/toggle [post]
func (h *Handlers) ToggleThemeHandler(c *gin.Context) {
	st := h.store.Dispatch(session.ToggleTheme{})
	c.JSON(http.StatusOK, st.View())
}
