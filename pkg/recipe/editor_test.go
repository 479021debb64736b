package recipe

import (
	"testing"

	"tastyshare/domain"

	"github.com/stretchr/testify/assert"
)

func TestTagSet(t *testing.T) {
	t.Run("add normalizes trim and case", func(t *testing.T) {
		ts := NewTagSet()
		ts.AddFromInput("  Dessert  ")
		ts.AddFromInput("VEGAN")
		assert.Equal(t, []string{"dessert", "vegan"}, ts.Tags())
	})

	t.Run("duplicates and empty input are ignored", func(t *testing.T) {
		ts := NewTagSet("dessert")
		ts.AddFromInput("Dessert")
		ts.AddFromInput("   ")
		ts.AddFromInput("")
		assert.Equal(t, 1, ts.Len())
	})

	t.Run("remove by index with out-of-range no-op", func(t *testing.T) {
		ts := NewTagSet("a", "b", "c")
		ts.Remove(1)
		assert.Equal(t, []string{"a", "c"}, ts.Tags())
		ts.Remove(5)
		ts.Remove(-1)
		assert.Equal(t, []string{"a", "c"}, ts.Tags())
	})

	t.Run("backspace pops last", func(t *testing.T) {
		ts := NewTagSet("a", "b")
		ts.BackspaceRemoveLast()
		assert.Equal(t, []string{"a"}, ts.Tags())
		ts.BackspaceRemoveLast()
		ts.BackspaceRemoveLast()
		assert.Equal(t, 0, ts.Len())
	})

	t.Run("contains is case-insensitive", func(t *testing.T) {
		ts := NewTagSet("dessert")
		assert.True(t, ts.Contains("DESSERT"))
		assert.False(t, ts.Contains("vegan"))
	})
}

func TestTagSetSuggest(t *testing.T) {
	universe := []string{
		"dessert", "dinner", "drinks", "breakfast", "brunch",
		"indian", "italian", "indonesian", "grilled", "fried",
	}

	t.Run("empty partial yields nothing", func(t *testing.T) {
		ts := NewTagSet()
		assert.Nil(t, ts.Suggest("", universe))
		assert.Nil(t, ts.Suggest("   ", universe))
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		ts := NewTagSet()
		assert.Equal(t, []string{"dinner", "drinks", "indian", "indonesian"}, ts.Suggest("IN", universe))
	})

	t.Run("selected tags are excluded", func(t *testing.T) {
		ts := NewTagSet("dinner")
		assert.Equal(t, []string{"drinks", "indian", "indonesian"}, ts.Suggest("in", universe))
	})

	t.Run("result is capped", func(t *testing.T) {
		wide := []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9", "r10"}
		ts := NewTagSet()
		assert.Len(t, ts.Suggest("r", wide), MaxTagSuggestions)
	})
}

func TestIngredientList(t *testing.T) {
	t.Run("starts with one blank row", func(t *testing.T) {
		l := NewIngredientList(nil)
		assert.Len(t, l.Rows(), 1)
		assert.False(t, l.CanRemove())
	})

	t.Run("sole row cannot be removed", func(t *testing.T) {
		l := NewIngredientList(nil)
		l.RemoveAt(0)
		assert.Len(t, l.Rows(), 1)
	})

	t.Run("update targets one field", func(t *testing.T) {
		l := NewIngredientList(nil)
		l.UpdateField(0, "name", "flour")
		l.UpdateField(0, "quantity", "200g")
		l.UpdateField(3, "name", "stale")
		rows := l.Rows()
		assert.Equal(t, domain.IngredientRow{Name: "flour", Quantity: "200g"}, rows[0])
	})

	t.Run("compact keeps named rows only", func(t *testing.T) {
		l := NewIngredientList([]domain.IngredientRow{
			{Name: "flour", Quantity: "200g"},
			{Name: "", Quantity: "1 tsp"},
			{Name: "sugar"},
		})
		got := l.Compact()
		assert.Equal(t, []domain.IngredientRow{
			{Name: "flour", Quantity: "200g"},
			{Name: "sugar"},
		}, got)
	})
}

func TestInstructionList(t *testing.T) {
	t.Run("starts with one blank row", func(t *testing.T) {
		l := NewInstructionList(nil)
		assert.Len(t, l.Rows(), 1)
		assert.False(t, l.CanRemove())
	})

	t.Run("compact renumbers by surviving order", func(t *testing.T) {
		l := NewInstructionList([]domain.InstructionRow{
			{StepNumber: 1, Description: "preheat oven"},
			{StepNumber: 2, Description: ""},
			{StepNumber: 3, Description: "mix batter"},
			{StepNumber: 4, Description: "bake"},
		})
		got := l.Compact()
		assert.Equal(t, []domain.InstructionRow{
			{StepNumber: 1, Description: "preheat oven"},
			{StepNumber: 2, Description: "mix batter"},
			{StepNumber: 3, Description: "bake"},
		}, got)
	})

	t.Run("remove mid row then compact", func(t *testing.T) {
		l := NewInstructionList([]domain.InstructionRow{
			{StepNumber: 1, Description: "a"},
			{StepNumber: 2, Description: "b"},
			{StepNumber: 3, Description: "c"},
		})
		l.RemoveAt(1)
		got := l.Compact()
		assert.Equal(t, []domain.InstructionRow{
			{StepNumber: 1, Description: "a"},
			{StepNumber: 2, Description: "c"},
		}, got)
	})
}

func TestSanitizeSearchQuery(t *testing.T) {
	assert.Equal(t, "pasta", SanitizeSearchQuery("  pasta  "))
	assert.Equal(t, "pasta", SanitizeSearchQuery(`pa%s_t'a"\`))
	assert.Equal(t, "", SanitizeSearchQuery(`%_'"\`))
}
