package models

import "time"

// RegisteredUser is a viewer account. Registration only gates contact
// info and premium content; it carries no roles or profile ownership.
type RegisteredUser struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string `gorm:"not null" json:"full_name"`
	PasswordHash string `gorm:"not null" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
