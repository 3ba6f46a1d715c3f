package mediaapi

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"portfolio-cms/config"
	"portfolio-cms/database"
	"portfolio-cms/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ------------------------------
// GET /media/file/:key
// ------------------------------
// Fallback resolution route: key may be a media id or a filename. Externally
// hosted assets redirect to their absolute URL; everything else is served
// from the media directory.
func ServeMediaFile(c *gin.Context) {
	key := c.Param("key")

	var m media.Media
	err := database.DB.First(&m, "id::text = ? OR filename = ?", key, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Legacy assets may exist on disk without a row.
			serveFromDisk(c, key)
			return
		}
		log.Error().Err(err).Str("key", key).Msg("media lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}

	if m.URL != nil && isAbsolute(*m.URL) {
		c.Redirect(http.StatusTemporaryRedirect, *m.URL)
		return
	}

	filename := key
	if m.Filename != nil && *m.Filename != "" {
		filename = *m.Filename
	}
	serveFromDisk(c, filename)
}

// ------------------------------
// GET /media/:filename
// ------------------------------
func ServeMediaByFilename(c *gin.Context) {
	serveFromDisk(c, c.Param("filename"))
}

func serveFromDisk(c *gin.Context, name string) {
	// Base() strips any traversal components.
	path := filepath.Join(config.MEDIA_DIR, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}
	c.File(path)
}

func isAbsolute(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != ""
}
