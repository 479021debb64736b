package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`

	User         *User             `gorm:"foreignKey:UserID"`
	Ingredients  []*Ingredient     `gorm:"foreignKey:RecipeID"`
	Instructions []*Instruction    `gorm:"foreignKey:RecipeID"`
	Categories   []*RecipeCategory `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// Ingredient rows carry no sequence column; ordering is insertion order
// within their recipe.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"index" json:"recipe_id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

// Instruction step numbers are dense 1..N per recipe; a save replaces the
// whole set, so rows get new ids on every edit.
type Instruction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `gorm:"index" json:"recipe_id"`
	StepNumber  int       `json:"step_number"`
	Description string    `gorm:"type:text" json:"description"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
