package service

import (
	"strings"

	"gorm.io/gorm"
)

// DishFilter holds the optional criteria a user picked for the random
// draw. Zero values mean "no constraint"; an empty filter matches every
// dish. Values are not checked against the enums here — an unknown value
// simply matches nothing downstream.
type DishFilter struct {
	Category    string
	Calories    string
	Difficulty  string
	Ingredients []string
}

// Apply translates the filter into query clauses. Each present scalar
// becomes an equality condition. Every supplied ingredient term must match
// the stored ingredient list case-insensitively as a substring (all-of).
func (f DishFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Calories != "" {
		query = query.Where("calories = ?", f.Calories)
	}
	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}

	// Terms match anywhere in the serialized ingredient list, so "ei" also
	// matches inside "Reis". A term containing a quote or comma can span
	// element boundaries of the JSON encoding.
	for _, term := range TrimSearchTerms(f.Ingredients) {
		like := "%" + escapeLike(strings.ToLower(term)) + "%"
		if query.Dialector.Name() == "postgres" {
			query = query.Where(`LOWER(ingredients::text) LIKE ? ESCAPE '\'`, like)
		} else {
			query = query.Where(`LOWER(ingredients) LIKE ? ESCAPE '\'`, like)
		}
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so user terms match literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// TrimSearchTerms trims leading and trailing whitespace from each free-text
// term and drops terms that are empty after trimming.
func TrimSearchTerms(terms []string) []string {
	trimmed := make([]string, 0, len(terms))
	for _, term := range terms {
		if t := strings.TrimSpace(term); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return trimmed
}
