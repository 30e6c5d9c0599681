package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunyar/focusflow-api/internal/ai"
	"github.com/hunyar/focusflow-api/internal/service"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
	"github.com/hunyar/focusflow-api/pkg/response"
)

// InsightHandler handles the AI insight endpoints. Responses are transient
// view state; nothing returned here is ever persisted.
type InsightHandler struct {
	service *service.InsightService
}

// NewInsightHandler constructs an insight handler.
func NewInsightHandler(svc *service.InsightService) *InsightHandler {
	return &InsightHandler{service: svc}
}

// StudySuggestions godoc
// @Summary Generate a study plan
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body ai.StudySuggestionsRequest true "Subjects and exam topics"
// @Success 200 {object} response.Envelope
// @Router /insights/study-suggestions [post]
func (h *InsightHandler) StudySuggestions(c *gin.Context) {
	var req ai.StudySuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.StudySuggestions(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// MarkAnalysis godoc
// @Summary Generate an advisor report from current mark summaries
// @Tags Insights
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /insights/mark-analysis [post]
func (h *InsightHandler) MarkAnalysis(c *gin.Context) {
	result, err := h.service.AnalyzeMarks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Conceptor godoc
// @Summary Answer a free-form question
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body ai.ConceptorRequest true "Question"
// @Success 200 {object} response.Envelope
// @Router /insights/conceptor [post]
func (h *InsightHandler) Conceptor(c *gin.Context) {
	var req ai.ConceptorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.Conceptor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
