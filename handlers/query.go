package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"dataagent/models"
	"dataagent/session"
	"dataagent/validation"

	"github.com/gin-gonic/gin"
)

// QueryHandler answers a business question
// @Summary      Ask a business question
// @Description  Send a natural-language question. The model's answer comes back with any numbers it mentions and a suggested chart type. Model failures still return 200 with error=true.
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest  true  "Question to ask"
// @Success      200      {object}  models.QueryResult   "Query result"
// @Failure      400      {object}  map[string]string    "Invalid request"
// @Failure      409      {object}  map[string]string    "A query is already being processed"
// @Router       /api/query [post]
func (h *Handlers) QueryHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.queries.Submit(c.Request.Context(), req.Query)
	if err != nil {
		h.submitError(c, err)
		return
	}

	log.Printf("[QUERY] Sending result to client (error=%v, points=%d)", result.Error, len(result.Data))
	c.JSON(http.StatusOK, result)
}

// ResubmitHandler runs a past query again
// @Summary      Resubmit a history entry
// @Description  Run the query at the given history position again. Index 0 is the most recent query.
// @Tags         Session
// @Produce      json
// @Param        index  path      int                 true  "History index"
// @Success      200    {object}  models.QueryResult  "Query result"
// @Failure      400    {object}  map[string]string   "Invalid index"
// @Failure      404    {object}  map[string]string   "No such history entry"
// @Failure      409    {object}  map[string]string   "A query is already being processed"
// @Router       /api/history/{index} [post]
func (h *Handlers) ResubmitHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "History index must be a number"})
		return
	}

	result, err := h.queries.Resubmit(c.Request.Context(), index)
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) submitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validation.ErrEmptyQuery), errors.Is(err, validation.ErrQueryTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrHistoryIndex):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[QUERY] Error submitting query: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process query"})
	}
}
