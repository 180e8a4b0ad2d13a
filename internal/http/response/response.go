package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/professionals-backend/internal/platform/ctxutil"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

// RespondError maps err and writes it. Server errors are logged with the
// request's trace ids; client errors are left to the access log.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	body := MapError(err)
	if body.StatusCode >= http.StatusInternalServerError && log != nil {
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		}
		if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
			fields = append(fields, "trace_id", td.TraceID, "request_id", td.RequestID)
			if td.ProfessionalID != "" {
				fields = append(fields, "professional_id", td.ProfessionalID)
			}
		}
		log.Error("request failed", fields...)
	}
	c.AbortWithStatusJSON(body.StatusCode, body)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
