package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"`

	Profile *Profile `gorm:"foreignKey:UserID"`
	Timestamp
}

// Profile holds the public-facing part of an account, keyed one-to-one
// by the owning user id.
type Profile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	FullName   string    `json:"full_name"`
	Hobbies    string    `json:"hobbies"`
	ProfilePic string    `json:"profile_pic,omitempty"`

	Timestamp
}
