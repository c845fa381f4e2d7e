package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "readingtimer/internal/errors"
	"readingtimer/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Users(c *gin.Context) {
	users, apiErr := h.statsService.Users(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *StatsHandler) Dates(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		writeError(c, apperrors.BadRequest("missing_user", "user is required"))
		return
	}

	dates, apiErr := h.statsService.Dates(c.Request.Context(), user)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, dates)
}

func (h *StatsHandler) Books(c *gin.Context) {
	user := c.Query("user")
	datesParam := c.Query("dates")
	if user == "" || datesParam == "" {
		writeError(c, apperrors.BadRequest("missing_params", "user and dates are required"))
		return
	}

	books, apiErr := h.statsService.Books(c.Request.Context(), user, parseDates(datesParam))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (h *StatsHandler) Steps(c *gin.Context) {
	user := c.Query("user")
	datesParam := c.Query("dates")
	book := c.Query("book")
	if user == "" || datesParam == "" || book == "" {
		writeError(c, apperrors.BadRequest("missing_params", "user, dates and book are required"))
		return
	}

	steps, apiErr := h.statsService.Steps(c.Request.Context(), user, parseDates(datesParam), book)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, steps)
}

func (h *StatsHandler) Summary(c *gin.Context) {
	user := c.Query("user")
	datesParam := c.Query("dates")
	book := c.Query("book")
	if user == "" || datesParam == "" || book == "" {
		writeError(c, apperrors.BadRequest("missing_params", "user, dates and book are required"))
		return
	}

	summary, apiErr := h.statsService.Summary(c.Request.Context(), user, parseDates(datesParam), book)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// parseDates splits a comma-joined date list, dropping blanks. An all-blank
// value yields an empty set, which downstream short-circuits to an empty
// result rather than an error.
func parseDates(raw string) []string {
	parts := strings.Split(raw, ",")
	dates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			dates = append(dates, trimmed)
		}
	}
	return dates
}
