package pagesapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-cms/database"
	"portfolio-cms/internal/content"
	"portfolio-cms/internal/domain/pages"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PageDoc struct {
	ID    string          `json:"id"`
	Slug  string          `json:"slug"`
	Title string          `json:"title"`
	Body  json.RawMessage `json:"body,omitempty"`
}

type PageList struct {
	Docs []PageDoc `json:"docs"`
	content.ListMeta
}

// ------------------------------
// GET /api/pages
// ------------------------------
func ListPages(c *gin.Context) {
	var rows []pages.Page
	if err := database.DB.
		Where("status = ?", "published").
		Order("slug ASC").
		Find(&rows).Error; err != nil {
		log.Error().Err(err).Msg("loading pages failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	out := PageList{
		Docs:     make([]PageDoc, 0, len(rows)),
		ListMeta: content.NewListMeta(len(rows), max(len(rows), 1), 1),
	}
	for _, row := range rows {
		out.Docs = append(out.Docs, PageDoc{ID: row.ID, Slug: row.Slug, Title: row.Title})
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /api/pages/:slug
// ------------------------------
func GetPageBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var p pages.Page
	err := database.DB.First(&p, "slug = ? AND status = ?", slug, "published").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("loading page failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, PageDoc{ID: p.ID, Slug: p.Slug, Title: p.Title, Body: p.Body})
}
