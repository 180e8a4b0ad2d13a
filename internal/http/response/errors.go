package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/apierr"
	"github.com/yungbote/professionals-backend/internal/platform/validate"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Details    string              `json:"details,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

// MapError translates any error into a status and body. It never panics;
// a nil error maps to a generic 500.
func MapError(err error) ErrorResponse {
	if err == nil {
		return ErrorResponse{StatusCode: http.StatusInternalServerError, Message: "unknown error"}
	}

	if fault := aggregates.StorageFaultOf(err); fault != nil {
		return storageResponse(*fault)
	}

	var aggErr *domainagg.Error
	if errors.As(err, &aggErr) {
		switch aggErr.Code {
		case domainagg.CodeValidation:
			return ErrorResponse{StatusCode: http.StatusBadRequest, Message: "Validation failed", Errors: aggErr.Fields}
		case domainagg.CodeNotFound:
			return ErrorResponse{StatusCode: http.StatusNotFound, Message: aggErr.Message}
		case domainagg.CodeDuplicateAssociation:
			return ErrorResponse{StatusCode: http.StatusConflict, Message: aggErr.Message}
		case domainagg.CodeLimitExceeded:
			return ErrorResponse{StatusCode: http.StatusUnprocessableEntity, Message: aggErr.Message}
		}
	}

	var verrs validate.Errors
	if errors.As(err, &verrs) {
		return ErrorResponse{StatusCode: http.StatusBadRequest, Message: "Validation failed", Errors: verrs}
	}

	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case apierr.CodeInvalidJSON:
			return ErrorResponse{StatusCode: http.StatusBadRequest, Message: "Invalid JSON format", Details: apiErr.Error()}
		case apierr.CodeRouteNotFound:
			return ErrorResponse{StatusCode: http.StatusNotFound, Message: "Route not found"}
		}
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return ErrorResponse{StatusCode: apiErr.Status, Message: apiErr.Error()}
		}
	}

	msg := err.Error()
	return ErrorResponse{StatusCode: http.StatusInternalServerError, Message: msg, Details: msg}
}

func storageResponse(f domainagg.StorageFault) ErrorResponse {
	out := ErrorResponse{Details: storageDetails(f)}
	switch f.Kind {
	case domainagg.StorageUnique:
		out.StatusCode = http.StatusConflict
		out.Message = "Unique constraint violation"
	case domainagg.StorageNotNull:
		out.StatusCode = http.StatusBadRequest
		out.Message = "Not null violation"
	case domainagg.StorageForeignKey:
		out.StatusCode = http.StatusBadRequest
		out.Message = "Foreign key violation"
	default:
		out.StatusCode = http.StatusInternalServerError
		out.Message = "Storage constraint violation"
	}
	return out
}

// storageDetails renders "<code>: <detail>" with the position appended when
// the engine reported one.
func storageDetails(f domainagg.StorageFault) string {
	var b strings.Builder
	if code := strings.TrimSpace(f.Code); code != "" {
		b.WriteString(code)
		b.WriteString(": ")
	}
	b.WriteString(strings.TrimSpace(f.Detail))
	if pos := strings.TrimSpace(f.Position); pos != "" {
		b.WriteString(" (position ")
		b.WriteString(pos)
		b.WriteString(")")
	}
	return b.String()
}
