package category

import (
	"strings"

	"tastyshare/entities"
)

// Classify returns the subsequence of recipes whose joined category names
// contain bucketName under case-insensitive exact match. Input order is
// preserved and the input slice is never mutated.
func Classify(recipes []*entities.Recipe, bucketName string) []*entities.Recipe {
	matched := make([]*entities.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if HasCategory(r, bucketName) {
			matched = append(matched, r)
		}
	}
	return matched
}

// HasCategory reports whether the recipe carries the named category. The
// recipe's category assignments must be loaded with their categories.
func HasCategory(recipe *entities.Recipe, name string) bool {
	for _, rc := range recipe.Categories {
		if rc.Category != nil && strings.EqualFold(rc.Category.Name, name) {
			return true
		}
	}
	return false
}
