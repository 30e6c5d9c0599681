package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunyar/focusflow-api/internal/service"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
	"github.com/hunyar/focusflow-api/pkg/response"
)

// MarkHandler handles mark endpoints.
type MarkHandler struct {
	service *service.MarkService
}

// NewMarkHandler constructs a mark handler.
func NewMarkHandler(svc *service.MarkService) *MarkHandler {
	return &MarkHandler{service: svc}
}

// List godoc
// @Summary List marks, most recent first
// @Tags Marks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /marks [get]
func (h *MarkHandler) List(c *gin.Context) {
	marks := h.service.List(c.Request.Context())
	response.JSON(c, http.StatusOK, marks)
}

// Create godoc
// @Summary Record a mark
// @Tags Marks
// @Accept json
// @Produce json
// @Param payload body service.CreateMarkRequest true "Mark payload"
// @Success 201 {object} response.Envelope
// @Router /marks [post]
func (h *MarkHandler) Create(c *gin.Context) {
	var req service.CreateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	mark, err := h.service.Create(c.Request.Context(), req)
	respondCreate(c, mark, err)
}

// Delete godoc
// @Summary Delete a mark
// @Tags Marks
// @Produce json
// @Param id path string true "Mark ID"
// @Success 204
// @Router /marks/{id} [delete]
func (h *MarkHandler) Delete(c *gin.Context) {
	respondDelete(c, h.service.Delete(c.Request.Context(), c.Param("id")))
}

// Summaries godoc
// @Summary Per-subject and overall mark summaries
// @Tags Marks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /marks/summaries [get]
func (h *MarkHandler) Summaries(c *gin.Context) {
	summaries, cached, err := h.service.Summaries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaries, map[string]interface{}{"cache_hit": cached})
}
