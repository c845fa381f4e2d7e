package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readingtimer/internal/service"
)

type StepHandler struct {
	stepService *service.StepService
}

// recordStepRequest uses pointers for the numeric fields so a missing value is
// distinguishable from zero. pagesRead is not accepted from the client; it is
// always derived server-side.
type recordStepRequest struct {
	User      string `json:"user"`
	Date      string `json:"date"`
	Book      string `json:"book"`
	StartPage *int   `json:"startPage"`
	EndPage   *int   `json:"endPage"`
	Timestamp *int64 `json:"timestamp"`
}

func NewStepHandler(stepService *service.StepService) *StepHandler {
	return &StepHandler{stepService: stepService}
}

func (h *StepHandler) Create(c *gin.Context) {
	var req recordStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	step, apiErr := h.stepService.Record(c.Request.Context(), service.RecordStepInput{
		User:      req.User,
		Date:      req.Date,
		Book:      req.Book,
		StartPage: req.StartPage,
		EndPage:   req.EndPage,
		Timestamp: req.Timestamp,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"step": step})
}
