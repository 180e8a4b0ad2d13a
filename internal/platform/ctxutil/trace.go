package ctxutil

import "context"

type traceDataKey struct{}

// TraceData is the per-request correlation carried on the request context.
type TraceData struct {
	TraceID   string
	RequestID string
	// ProfessionalID is set for routes scoped to one professional.
	ProfessionalID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if ctx == nil {
		return nil
	}
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}
