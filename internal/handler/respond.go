package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
	"github.com/hunyar/focusflow-api/pkg/response"
)

// respondMutation finishes a mutating request. A failed namespace write is
// not a failed mutation: the change is live in memory and will be retried on
// the next successful write, so the record is returned with 202 and a
// persisted=false meta flag instead of an error.
func respondMutation(c *gin.Context, status int, data interface{}, err error) {
	if err == nil {
		response.JSON(c, status, data)
		return
	}
	appErr := appErrors.FromError(err)
	if appErr.Code == appErrors.ErrStoreUnsynced.Code && data != nil {
		response.JSON(c, http.StatusAccepted, data, map[string]interface{}{"persisted": false})
		return
	}
	response.Error(c, err)
}

// respondCreate finishes a create request with 201 on success, mapping the
// fail-open write divergence the same way as respondMutation.
func respondCreate(c *gin.Context, data interface{}, err error) {
	if err == nil {
		response.Created(c, data)
		return
	}
	respondMutation(c, http.StatusCreated, data, err)
}

// respondDelete finishes an idempotent delete, mapping the fail-open write
// divergence the same way.
func respondDelete(c *gin.Context, err error) {
	if err == nil {
		response.NoContent(c)
		return
	}
	appErr := appErrors.FromError(err)
	if appErr.Code == appErrors.ErrStoreUnsynced.Code {
		response.JSON(c, http.StatusAccepted, nil, map[string]interface{}{"persisted": false})
		return
	}
	response.Error(c, err)
}
