package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/macrotally/backend/internal/domain"
	"github.com/macrotally/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	resolver *usecase.Resolver
	days     domain.DayLog
	targets  usecase.Targets
}

// NewHandler creates a new HTTP handler
func NewHandler(resolver *usecase.Resolver, days domain.DayLog, targets usecase.Targets) *Handler {
	return &Handler{
		resolver: resolver,
		days:     days,
		targets:  targets,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "macrotally-backend",
		"version": "1.0.0",
	})
}

// logRequest is the batch body posted by the text-understanding collaborator.
type logRequest struct {
	Date  string    `json:"date"`
	Items []rawItem `json:"items" binding:"required"`
}

// dayResponse is the full state of one day after a change.
type dayResponse struct {
	Date       string                `json:"date"`
	Items      []domain.ResolvedItem `json:"items"`
	Totals     domain.DailyTotals    `json:"totals"`
	Advisories []domain.Advisory     `json:"advisories"`
}

// LogItems resolves a batch of parsed items and appends them to the day's
// record. The batch either fully succeeds (possibly with unmatched items) or
// fully fails with a single error.
func (h *Handler) LogItems(c *gin.Context) {
	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be an ISO calendar date (YYYY-MM-DD)"})
		return
	}

	items, err := normalizeItems(req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no items to log"})
		return
	}

	resolved, err := h.resolver.ResolveBatch(c.Request.Context(), items)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrLookupFailure) {
			status = http.StatusBadGateway
		}
		if errors.Is(err, domain.ErrInvalidItem) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	record, err := h.days.Append(date, resolved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.dayState(record))
}

// GetDay returns a day's items with recomputed totals and advisories.
func (h *Handler) GetDay(c *gin.Context) {
	record, err := h.days.Get(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.dayState(record))
}

// RemoveItem deletes one logged item and returns the day's updated state.
func (h *Handler) RemoveItem(c *gin.Context) {
	date := c.Param("date")
	if err := h.days.Remove(date, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	record, err := h.days.Get(date)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.dayState(record))
}

// dayState derives the response for a day: totals are always recomputed from
// the item list, never cached.
func (h *Handler) dayState(record *domain.DayRecord) dayResponse {
	totals := usecase.Aggregate(record.Items)
	return dayResponse{
		Date:       record.Date,
		Items:      record.Items,
		Totals:     totals,
		Advisories: usecase.Advise(totals, h.targets),
	}
}
