package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	VoteLike       = "like"
	VoteThumbsUp   = "thumbs_up"
	VoteThumbsDown = "thumbs_down"
)

// RecipeVote holds at most one row per (recipe, user) pair; changing kind
// is a delete-then-insert replace, not an update in place.
type RecipeVote struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"index" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"index" json:"user_id"`
	VoteType  string    `json:"vote_type"` // "like", "thumbs_up", "thumbs_down"
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
}
