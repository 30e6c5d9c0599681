package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hunyar/focusflow-api/internal/service"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
	"github.com/hunyar/focusflow-api/pkg/response"
)

// UnlockRequest carries the passkey attempt.
type UnlockRequest struct {
	Passkey string `json:"passkey" binding:"required"`
}

// UnlockResponse carries the issued session token.
type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UnlockHandler handles the session edit gate.
type UnlockHandler struct {
	service *service.UnlockService
}

// NewUnlockHandler constructs an unlock handler.
func NewUnlockHandler(svc *service.UnlockService) *UnlockHandler {
	return &UnlockHandler{service: svc}
}

// Unlock godoc
// @Summary Exchange the passkey for an edit-session token
// @Tags Unlock
// @Accept json
// @Produce json
// @Param payload body UnlockRequest true "Passkey"
// @Success 200 {object} response.Envelope
// @Router /unlock [post]
func (h *UnlockHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "passkey is required"))
		return
	}
	token, expiresAt, err := h.service.Unlock(req.Passkey)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, UnlockResponse{Token: token, ExpiresAt: expiresAt})
}
