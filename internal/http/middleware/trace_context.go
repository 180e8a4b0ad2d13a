package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/professionals-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	professionalRoutePrefix = "/api/professionals/:id"
)

// AttachTraceContext stores request/trace ids, and the professional id of
// professional-scoped routes, on the request context and gin keys.
// Incoming ids are honored; otherwise the otel span or a fresh uuid is used.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		td := &ctxutil.TraceData{
			RequestID:      headerOrNew(c, headerRequestID, ""),
			TraceID:        headerOrNew(c, headerTraceID, spanTraceID(span)),
			ProfessionalID: professionalParam(c),
		}
		if td.ProfessionalID != "" {
			c.Set("professional_id", td.ProfessionalID)
			span.SetAttributes(attribute.String("professional.id", td.ProfessionalID))
		}

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), td))
		c.Set("trace_id", td.TraceID)
		c.Set("request_id", td.RequestID)
		c.Writer.Header().Set(headerTraceID, td.TraceID)
		c.Writer.Header().Set(headerRequestID, td.RequestID)
		c.Next()
	}
}

func headerOrNew(c *gin.Context, header, fallback string) string {
	if v := strings.TrimSpace(c.GetHeader(header)); v != "" {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return uuid.New().String()
}

func spanTraceID(span trace.Span) string {
	sc := span.SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// professionalParam returns the :id of /api/professionals/:id routes when it
// parses as a uuid. Malformed ids are left for the handler to reject.
func professionalParam(c *gin.Context) string {
	if !strings.HasPrefix(c.FullPath(), professionalRoutePrefix) {
		return ""
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return ""
	}
	return id.String()
}
