package pages

import (
	"encoding/json"
	"time"
)

// Page is a standalone CMS page (about, imprint, ...).
type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug  string `gorm:"not null;uniqueIndex" json:"slug"`
	Title string `gorm:"not null" json:"title"`

	Status string `gorm:"not null;default:'draft';index" json:"status"`

	Body json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
