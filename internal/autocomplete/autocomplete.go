// Package autocomplete suggests previously used item names.
package autocomplete

import (
	"strings"
	"unicode/utf8"

	"fjacquet/household-tracker/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxSuggestions caps the number of names returned by Suggest.
	MaxSuggestions = 5
	// MinQueryLength is the shortest trimmed query that produces suggestions.
	MinQueryLength = 2
)

// Names returns the distinct item names of recs in first-seen order.
func Names(recs []models.ExpenseRecord) []string {
	seen := make(map[string]struct{}, len(recs))
	var names []string
	for _, rec := range recs {
		if _, ok := seen[rec.Name]; ok {
			continue
		}
		seen[rec.Name] = struct{}{}
		names = append(names, rec.Name)
	}
	return names
}

// Suggest returns up to MaxSuggestions distinct names from recs containing
// partial, compared case-insensitively, in first-seen order. Queries shorter
// than MinQueryLength characters after trimming return nothing.
func Suggest(recs []models.ExpenseRecord, partial string) []string {
	lower := cases.Lower(language.Und)
	query := lower.String(strings.TrimSpace(partial))
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []string{}
	}

	matches := []string{}
	for _, name := range Names(recs) {
		if strings.Contains(lower.String(name), query) {
			matches = append(matches, name)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}
	return matches
}
