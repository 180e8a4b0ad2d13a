package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/professionals-backend/internal/http/response"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

// Recovery turns a handler panic into the standard 500 error body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}
		response.RespondError(c, log, err)
	})
}
