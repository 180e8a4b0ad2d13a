// Package validate collects structural field violations for inbound commands.
//
// Commands declare their constraints as plain function calls against an
// Errors set; Err returns nil when no field was rejected.
package validate

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Errors maps a field name to its violation messages.
type Errors map[string][]string

func New() Errors { return Errors{} }

func (e Errors) Add(field, format string, args ...any) {
	e[field] = append(e[field], fmt.Sprintf(format, args...))
}

func (e Errors) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "%s is required", field)
		return false
	}
	return true
}

func (e Errors) MaxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		e.Add(field, "%s must be at most %d characters", field, max)
	}
}

func (e Errors) RequiredID(field string, id uuid.UUID) {
	if id == uuid.Nil {
		e.Add(field, "%s is required", field)
	}
}

func (e Errors) IntRange(field string, v, min, max int) {
	if v < min || v > max {
		e.Add(field, "%s must be between %d and %d", field, min, max)
	}
}

func (e Errors) FloatRange(field string, v *float64, min, max float64) {
	if v == nil {
		return
	}
	if *v < min || *v > max {
		e.Add(field, "%s must be between %g and %g", field, min, max)
	}
}

func (e Errors) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 || strings.Count(value, "@") != 1 || strings.ContainsAny(value, " \t") {
		e.Add(field, "%s must be a valid email address", field)
	}
}

// Merge copies every violation of other into e.
func (e Errors) Merge(other Errors) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, field+": "+strings.Join(e[field], ", "))
	}
	return strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when nothing was recorded.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
