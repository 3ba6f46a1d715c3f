package routes

import (
	"portfolio-cms/internal/api/mediaapi"
	"portfolio-cms/internal/api/pagesapi"
	"portfolio-cms/internal/api/postsapi"
	"portfolio-cms/internal/api/projectsapi"
	"portfolio-cms/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/projects", projectsapi.ListProjects)
	api.GET("/projects/:id", projectsapi.GetProjectByID)
	api.GET("/projects/preview/:slug", middleware.RequirePreviewToken(), projectsapi.PreviewProjectBySlug)

	api.GET("/posts", postsapi.ListPosts)
	api.GET("/posts/:slug", postsapi.GetPostBySlug)

	api.GET("/pages", pagesapi.ListPages)
	api.GET("/pages/:slug", pagesapi.GetPageBySlug)

	// Media fallback routes used by URL resolution.
	r.GET("/media/file/:key", mediaapi.ServeMediaFile)
	r.GET("/media/:filename", mediaapi.ServeMediaByFilename)
}
