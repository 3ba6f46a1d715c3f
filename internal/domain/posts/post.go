package posts

import (
	"encoding/json"
	"time"
)

// Post is a blog entry authored through the CMS.
type Post struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title string `gorm:"not null" json:"title"`
	Slug  string `gorm:"not null;uniqueIndex" json:"slug"`

	Status      string     `gorm:"not null;default:'draft';index" json:"status"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`

	Body json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
