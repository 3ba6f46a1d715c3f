package projects

import (
	"encoding/json"
	"time"

	"portfolio-cms/internal/domain/media"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Project is one portfolio entry. Authored through the CMS; publicly readable
// once status = published.
type Project struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title string `gorm:"not null" json:"title"`
	Slug  string `gorm:"not null;uniqueIndex" json:"slug"`

	HeroImageID *string      `gorm:"type:uuid" json:"hero_image_id,omitempty"`
	HeroImage   *media.Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hero_image,omitempty"`

	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	Year        int        `gorm:"not null;default:0" json:"year"`
	NewlyAdded  bool       `gorm:"not null;default:false" json:"newly_added"`

	Status string `gorm:"not null;default:'draft';index" json:"status"`

	Categories []Category `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"categories,omitempty"`
	Sections   []Section  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"sections,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PubliclyListable reports whether the project is eligible for the public
// listing: published, with a hero image and a publish timestamp.
func (p Project) PubliclyListable() bool {
	return p.Status == StatusPublished && p.HeroImageID != nil && p.PublishedAt != nil
}

// Category is a display tag on a project.
type Category struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProjectID string `gorm:"type:uuid;not null;uniqueIndex:idx_project_categories_name,priority:1" json:"-"`
	Name      string `gorm:"not null;uniqueIndex:idx_project_categories_name,priority:2" json:"name"`
}

func (Category) TableName() string { return "project_categories" }

// Section is a titled content block within a project. SortIndex is contiguous
// and unique within the parent project; deleting the project cascades here.
type Section struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ProjectID string `gorm:"type:uuid;not null;index:idx_sections_project_sort,priority:1" json:"-"`
	SortIndex int    `gorm:"not null;default:0;index:idx_sections_project_sort,priority:2" json:"sort_index"`

	Title string `gorm:"column:section_title;not null" json:"section_title"`

	// Body holds the authored rich-text document (tree with a root node).
	Body json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"body"`

	Media []SectionMedia `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"media,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SectionMedia is one gallery entry of a section. MediaID is nullable: a
// dangling reference degrades to a skipped gallery item, never a failure.
type SectionMedia struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	SectionID string `gorm:"type:uuid;not null;index:idx_section_media_section_sort,priority:1" json:"-"`
	SortIndex int    `gorm:"not null;default:0;index:idx_section_media_section_sort,priority:2" json:"sort_index"`

	MediaID *string      `gorm:"type:uuid" json:"media_id,omitempty"`
	Media   *media.Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"media,omitempty"`

	Caption string `json:"caption,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SectionMedia) TableName() string { return "section_media" }
