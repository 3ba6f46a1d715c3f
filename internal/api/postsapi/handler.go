package postsapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio-cms/database"
	"portfolio-cms/internal/content"
	"portfolio-cms/internal/domain/posts"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PostDoc struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Status      string          `json:"_status,omitempty"`
	PublishedAt *time.Time      `json:"publishedAt,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
}

type PostList struct {
	Docs []PostDoc `json:"docs"`
	content.ListMeta
}

func toPostDoc(p posts.Post, includeBody bool) PostDoc {
	doc := PostDoc{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
	}
	if includeBody {
		doc.Body = p.Body
	}
	return doc
}

// ------------------------------
// GET /api/posts
// ------------------------------
func ListPosts(c *gin.Context) {
	limit := 10
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 && n <= 100 {
		limit = n
	}
	page := 1
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		page = n
	}

	q := database.DB.Model(&posts.Post{}).
		Where("status = ? AND published_at IS NOT NULL", "published")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Error().Err(err).Msg("counting posts failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	var rows []posts.Post
	if err := q.Order("published_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&rows).Error; err != nil {
		log.Error().Err(err).Msg("loading posts failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	out := PostList{
		Docs:     make([]PostDoc, 0, len(rows)),
		ListMeta: content.NewListMeta(int(total), limit, page),
	}
	for _, row := range rows {
		out.Docs = append(out.Docs, toPostDoc(row, false))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /api/posts/:slug
// ------------------------------
func GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var p posts.Post
	err := database.DB.
		First(&p, "slug = ? AND status = ?", slug, "published").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("loading post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	c.JSON(http.StatusOK, toPostDoc(p, true))
}
