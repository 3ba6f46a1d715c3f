package projectsapi

import (
	"portfolio-cms/internal/domain/projects"

	"gorm.io/gorm"
)

// publishedQuery filters to projects eligible for public listing: published
// with a hero image and a publish timestamp.
func publishedQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&projects.Project{}).
		Where("status = ? AND hero_image_id IS NOT NULL AND published_at IS NOT NULL",
			projects.StatusPublished)
}

// filteredQuery builds a fresh query for the given params. Callers needing
// both a count and a page build it twice instead of reusing a finished chain.
func filteredQuery(db *gorm.DB, params listParams) *gorm.DB {
	var q *gorm.DB
	switch {
	case params.Status == projects.StatusPublished:
		q = publishedQuery(db)
	case params.Status != "":
		q = db.Model(&projects.Project{}).Where("status = ?", params.Status)
	default:
		q = db.Model(&projects.Project{})
	}
	if params.Slug != "" {
		q = q.Where("slug = ?", params.Slug)
	}
	return q
}

// withRelations preloads the relations a response at the given depth needs.
// Section and gallery rows always arrive in stored order.
func withRelations(db *gorm.DB, depth int) *gorm.DB {
	q := db.
		Preload("Categories").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		Preload("Sections.Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		})
	if depth >= 1 {
		q = q.Preload("HeroImage.Sizes")
	}
	if depth >= 2 {
		q = q.Preload("Sections.Media.Media.Sizes")
	}
	return q
}
