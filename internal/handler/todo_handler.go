package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hunyar/focusflow-api/internal/service"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
	"github.com/hunyar/focusflow-api/pkg/response"
)

// TodoHandler handles todo list endpoints.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler constructs a todo handler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// List godoc
// @Summary List todos
// @Tags Todos
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	todos := h.service.List(c.Request.Context())
	response.JSON(c, http.StatusOK, todos)
}

// Create godoc
// @Summary Add a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param payload body service.CreateTodoRequest true "Todo payload"
// @Success 201 {object} response.Envelope
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req service.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	todo, err := h.service.Create(c.Request.Context(), req)
	respondCreate(c, todo, err)
}

// Toggle godoc
// @Summary Toggle a todo's completed flag
// @Tags Todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} response.Envelope
// @Router /todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c *gin.Context) {
	todo, err := h.service.Toggle(c.Request.Context(), c.Param("id"))
	respondMutation(c, http.StatusOK, todo, err)
}

// Delete godoc
// @Summary Delete a todo
// @Tags Todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 204
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	respondDelete(c, h.service.Delete(c.Request.Context(), c.Param("id")))
}
