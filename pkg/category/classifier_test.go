package category

import (
	"testing"

	"tastyshare/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func tagged(title string, names ...string) *entities.Recipe {
	r := &entities.Recipe{ID: uuid.New(), Title: title}
	for _, name := range names {
		r.Categories = append(r.Categories, &entities.RecipeCategory{
			Category: &entities.Category{ID: uuid.New(), Name: name},
		})
	}
	return r
}

func TestClassify(t *testing.T) {
	recipes := []*entities.Recipe{
		tagged("a", "featured"),
		tagged("b", "popular"),
		tagged("c", "Featured", "seasonal"),
		tagged("d"),
	}

	t.Run("matches case-insensitively preserving order", func(t *testing.T) {
		got := Classify(recipes, "FEATURED")
		assert.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Title)
		assert.Equal(t, "c", got[1].Title)
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		assert.Empty(t, Classify(recipes, "dessert"))
	})

	t.Run("exact name only, no substring match", func(t *testing.T) {
		assert.Empty(t, Classify(recipes, "season"))
	})
}

func TestHasCategory(t *testing.T) {
	r := tagged("a", "dinner")
	assert.True(t, HasCategory(r, "DINNER"))
	assert.False(t, HasCategory(r, "lunch"))

	// unloaded assignment rows are skipped
	r.Categories = append(r.Categories, &entities.RecipeCategory{})
	assert.False(t, HasCategory(r, "lunch"))
}
