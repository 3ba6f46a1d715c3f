package users

import "time"

// User is a CMS editor account. Accounts are managed by the admin side; this
// service only reads them to validate draft-preview tokens.
type User struct {
	ID uint `gorm:"primaryKey"`

	Name     string
	Lastname string
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`

	Role       string `gorm:"not null;default:'editor'"`
	IsVerified bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
