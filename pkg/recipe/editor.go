package recipe

import (
	"strings"

	"tastyshare/domain"
)

// MaxTagSuggestions caps the autocomplete candidate list.
const MaxTagSuggestions = 8

// TagSet is the edit-form state for a recipe's category tags: an ordered
// set of unique, lower-cased, trimmed labels.
type TagSet struct {
	tags []string
}

func NewTagSet(initial ...string) *TagSet {
	ts := &TagSet{}
	for _, t := range initial {
		ts.AddFromInput(t)
	}
	return ts
}

// AddFromInput trims and lower-cases the raw input and appends it to the
// set. Empty input and already-present tags are silently ignored.
func (ts *TagSet) AddFromInput(raw string) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" || ts.Contains(tag) {
		return
	}
	ts.tags = append(ts.tags, tag)
}

func (ts *TagSet) Contains(name string) bool {
	for _, t := range ts.tags {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// Remove drops the tag at index; out-of-range indexes are a no-op.
func (ts *TagSet) Remove(index int) {
	if index < 0 || index >= len(ts.tags) {
		return
	}
	ts.tags = append(ts.tags[:index], ts.tags[index+1:]...)
}

// BackspaceRemoveLast pops the last tag; the form invokes it when a
// deletion gesture arrives while the input field is empty.
func (ts *TagSet) BackspaceRemoveLast() {
	if len(ts.tags) == 0 {
		return
	}
	ts.tags = ts.tags[:len(ts.tags)-1]
}

// Suggest returns up to MaxTagSuggestions category names containing the
// partial input case-insensitively, skipping names already selected. The
// list is recomputed on every call; an empty partial yields nothing.
func (ts *TagSet) Suggest(partial string, universe []string) []string {
	needle := strings.ToLower(strings.TrimSpace(partial))
	if needle == "" {
		return nil
	}

	var out []string
	for _, name := range universe {
		if !strings.Contains(strings.ToLower(name), needle) || ts.Contains(name) {
			continue
		}
		out = append(out, name)
		if len(out) == MaxTagSuggestions {
			break
		}
	}
	return out
}

func (ts *TagSet) Tags() []string {
	out := make([]string, len(ts.tags))
	copy(out, ts.tags)
	return out
}

func (ts *TagSet) Len() int {
	return len(ts.tags)
}

// IngredientList is the edit-form state for a recipe's ingredient rows.
type IngredientList struct {
	rows []domain.IngredientRow
}

func NewIngredientList(initial []domain.IngredientRow) *IngredientList {
	l := &IngredientList{rows: append([]domain.IngredientRow(nil), initial...)}
	if len(l.rows) == 0 {
		l.AppendBlank()
	}
	return l
}

func (l *IngredientList) AppendBlank() {
	l.rows = append(l.rows, domain.IngredientRow{})
}

// UpdateField replaces one field of the row at index. Stale indexes and
// unknown fields are silently ignored.
func (l *IngredientList) UpdateField(index int, field, value string) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	switch field {
	case "name":
		l.rows[index].Name = value
	case "quantity":
		l.rows[index].Quantity = value
	}
}

// CanRemove reports whether row removal is enabled; the sole remaining
// row is kept so the form never collapses to nothing.
func (l *IngredientList) CanRemove() bool {
	return len(l.rows) > 1
}

func (l *IngredientList) RemoveAt(index int) {
	if !l.CanRemove() || index < 0 || index >= len(l.rows) {
		return
	}
	l.rows = append(l.rows[:index], l.rows[index+1:]...)
}

func (l *IngredientList) Rows() []domain.IngredientRow {
	out := make([]domain.IngredientRow, len(l.rows))
	copy(out, l.rows)
	return out
}

// Compact returns the rows that survive submission: those with a
// non-empty name, in their current order.
func (l *IngredientList) Compact() []domain.IngredientRow {
	out := make([]domain.IngredientRow, 0, len(l.rows))
	for _, row := range l.rows {
		if row.Name != "" {
			out = append(out, row)
		}
	}
	return out
}

// InstructionList is the edit-form state for a recipe's instruction rows.
type InstructionList struct {
	rows []domain.InstructionRow
}

func NewInstructionList(initial []domain.InstructionRow) *InstructionList {
	l := &InstructionList{rows: append([]domain.InstructionRow(nil), initial...)}
	if len(l.rows) == 0 {
		l.AppendBlank()
	}
	return l
}

func (l *InstructionList) AppendBlank() {
	l.rows = append(l.rows, domain.InstructionRow{})
}

func (l *InstructionList) UpdateDescription(index int, value string) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	l.rows[index].Description = value
}

func (l *InstructionList) CanRemove() bool {
	return len(l.rows) > 1
}

func (l *InstructionList) RemoveAt(index int) {
	if !l.CanRemove() || index < 0 || index >= len(l.rows) {
		return
	}
	l.rows = append(l.rows[:index], l.rows[index+1:]...)
}

func (l *InstructionList) Rows() []domain.InstructionRow {
	out := make([]domain.InstructionRow, len(l.rows))
	copy(out, l.rows)
	return out
}

// Compact drops rows with empty descriptions and renumbers the survivors
// 1..K by their current order, not their original index.
func (l *InstructionList) Compact() []domain.InstructionRow {
	out := make([]domain.InstructionRow, 0, len(l.rows))
	for _, row := range l.rows {
		if row.Description == "" {
			continue
		}
		out = append(out, domain.InstructionRow{
			StepNumber:  len(out) + 1,
			Description: row.Description,
		})
	}
	return out
}
