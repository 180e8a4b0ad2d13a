package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// FoldSearch normalises a free-text filter for case-insensitive LIKE matching.
// Returns "" when there is nothing to filter on.
func FoldSearch(term string) string {
	term = strings.Join(strings.Fields(term), " ")
	if term == "" {
		return ""
	}
	return lower.String(term)
}

// LikePattern wraps a folded term in wildcards and escapes LIKE metacharacters.
func LikePattern(folded string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(folded) + "%"
}
