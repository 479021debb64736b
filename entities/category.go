package entities

import (
	"github.com/google/uuid"
)

// Category names are stored lower-cased and act as global, de-duplicated
// labels. Rows persist even when no recipe references them.
type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}

type RecipeCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID   uuid.UUID `gorm:"index" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"index" json:"category_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}
