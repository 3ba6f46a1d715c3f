package projectsapi

import (
	"errors"
	"net/http"

	"portfolio-cms/database"
	"portfolio-cms/internal/content"
	"portfolio-cms/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/projects
// ------------------------------
func ListProjects(c *gin.Context) {
	params := parseListParams(c.Request.URL.Query())

	var total int64
	if err := filteredQuery(database.DB, params).Count(&total).Error; err != nil {
		log.Error().Err(err).Msg("counting projects failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	query := filteredQuery(database.DB, params).
		Order(params.order()).Limit(params.Limit).Offset(params.offset())

	var docs []content.Project
	if params.SelectSlug {
		var rows []projects.Project
		if err := query.Select("id", "slug").Find(&rows).Error; err != nil {
			log.Error().Err(err).Msg("loading project slugs failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
			return
		}
		docs = make([]content.Project, 0, len(rows))
		for _, row := range rows {
			docs = append(docs, toSlugProjection(row))
		}
	} else {
		var rows []projects.Project
		if err := withRelations(query, params.Depth).Find(&rows).Error; err != nil {
			log.Error().Err(err).Msg("loading projects failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
			return
		}
		docs = make([]content.Project, 0, len(rows))
		for _, row := range rows {
			docs = append(docs, toWireProject(row, params.Depth))
		}
	}

	c.JSON(http.StatusOK, content.ProjectList{
		Docs:     docs,
		ListMeta: content.NewListMeta(int(total), params.Limit, params.Page),
	})
}

// ------------------------------
// GET /api/projects/:id
// ------------------------------
func GetProjectByID(c *gin.Context) {
	id := c.Param("id")
	params := parseListParams(c.Request.URL.Query())

	var p projects.Project
	err := withRelations(database.DB, params.Depth).
		First(&p, "id::text = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Error().Err(err).Str("id", id).Msg("loading project failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	c.JSON(http.StatusOK, toWireProject(p, params.Depth))
}

// ------------------------------
// GET /api/projects/preview/:slug  (preview token required)
// ------------------------------
// Draft lookup for editors: same shape as the public single-project query,
// without the published filter and always fully expanded.
func PreviewProjectBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var p projects.Project
	err := withRelations(database.DB, 2).
		First(&p, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("loading preview failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	c.JSON(http.StatusOK, content.ProjectList{
		Docs:     []content.Project{toWireProject(p, 2)},
		ListMeta: content.NewListMeta(1, 1, 1),
	})
}
