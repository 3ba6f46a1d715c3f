package media

import "time"

// Media is one uploaded asset (image or video). Rows are written by the CMS
// admin side; this service only reads them.
type Media struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`

	MimeType string  `gorm:"not null;default:''" json:"mime_type"`
	Filename *string `gorm:"index" json:"filename,omitempty"`

	// URL may be a relative path under the content base, or an absolute URL
	// for externally hosted assets (CDN). Absolute URLs are served as-is.
	URL *string `json:"url,omitempty"`

	Filesize int64 `gorm:"not null;default:0" json:"filesize"`
	Width    *int  `json:"width,omitempty"`
	Height   *int  `json:"height,omitempty"`

	FocalX *float64 `gorm:"column:focal_x" json:"focal_x,omitempty"`
	FocalY *float64 `gorm:"column:focal_y" json:"focal_y,omitempty"`

	Sizes []Size `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;" json:"sizes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Size is a named pre-derived rendition of an image ("thumbnail", "medium", ...).
type Size struct {
	ID uint `gorm:"primaryKey" json:"-"`

	MediaID string `gorm:"type:uuid;not null;uniqueIndex:idx_media_sizes_media_name,priority:1" json:"-"`
	Name    string `gorm:"not null;uniqueIndex:idx_media_sizes_media_name,priority:2" json:"name"`

	URL      string `gorm:"not null" json:"url"`
	Width    int    `gorm:"not null;default:0" json:"width"`
	Height   int    `gorm:"not null;default:0" json:"height"`
	MimeType string `gorm:"not null;default:''" json:"mime_type"`
	Filesize int64  `gorm:"not null;default:0" json:"filesize"`
	Filename string `json:"filename"`
}

func (Size) TableName() string { return "media_sizes" }
