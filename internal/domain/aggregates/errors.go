package aggregates

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrorCode standardizes failure semantics across rules and services.
type ErrorCode string

const (
	CodeValidation           ErrorCode = "validation"
	CodeNotFound             ErrorCode = "not_found"
	CodeDuplicateAssociation ErrorCode = "duplicate_association"
	CodeLimitExceeded        ErrorCode = "limit_exceeded"
	CodeStorageConstraint    ErrorCode = "storage_constraint"
	CodeInternal             ErrorCode = "internal"
)

// StorageKind classifies a constraint violation raised by the persistence engine.
type StorageKind string

const (
	StorageUnique     StorageKind = "unique"
	StorageNotNull    StorageKind = "not_null"
	StorageForeignKey StorageKind = "foreign_key"
)

// StorageFault carries the engine's own diagnostics verbatim.
type StorageFault struct {
	Kind       StorageKind
	Code       string
	Detail     string
	Position   string
	Constraint string
}

// Error is the canonical aggregate error.
type Error struct {
	Code    ErrorCode
	Op      string
	Entity  string
	Message string
	Fields  map[string][]string
	Storage *StorageFault
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an aggregate error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with aggregate error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// NotFound reports a missing referenced entity, e.g. NotFound(op, "country").
func NotFound(op, entity string) error {
	entity = strings.TrimSpace(entity)
	return &Error{
		Code:    CodeNotFound,
		Op:      strings.TrimSpace(op),
		Entity:  entity,
		Message: capitalize(entity) + " not found",
	}
}

// Validation reports per-field input violations. An empty field map yields nil.
func Validation(op string, fields map[string][]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{
		Code:    CodeValidation,
		Op:      strings.TrimSpace(op),
		Message: "validation failed",
		Fields:  fields,
	}
}

func DuplicateAssociation(op, kind string) error {
	kind = strings.TrimSpace(kind)
	return &Error{
		Code:    CodeDuplicateAssociation,
		Op:      strings.TrimSpace(op),
		Entity:  kind,
		Message: capitalize(kind) + " already associated",
	}
}

func LimitExceeded(op, kind string, limit int) error {
	kind = strings.TrimSpace(kind)
	return &Error{
		Code:    CodeLimitExceeded,
		Op:      strings.TrimSpace(op),
		Entity:  kind,
		Message: fmt.Sprintf("%s limit exceeded (max %d)", capitalize(kind), limit),
	}
}

func StorageConstraint(op string, fault StorageFault, cause error) error {
	msg := fault.Detail
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    CodeStorageConstraint,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(msg),
		Storage: &fault,
		Cause:   cause,
	}
}

// IsCode checks whether err (or wrapped err) carries the given aggregate code.
func IsCode(err error, code ErrorCode) bool {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return false
	}
	return aggErr.Code == code
}

// CodeOf extracts the aggregate error code when available.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}

func capitalize(s string) string {
	if s == "" {
		return "Entity"
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
