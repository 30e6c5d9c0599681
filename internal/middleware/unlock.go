package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hunyar/focusflow-api/internal/service"
	appErrors "github.com/hunyar/focusflow-api/pkg/errors"
	"github.com/hunyar/focusflow-api/pkg/response"
)

// RequireUnlock guards mutating routes behind the session unlock gate. With
// the gate disabled (or no service wired) every request passes; reads are
// never guarded.
func RequireUnlock(unlockSvc *service.UnlockService, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled || unlockSvc == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrLocked, "unlock this session before editing"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrLocked, "invalid unlock header"))
			c.Abort()
			return
		}

		if err := unlockSvc.Validate(parts[1]); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
