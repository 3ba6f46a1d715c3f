// Package web serves the rendered portfolio site on top of the content API.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"portfolio-cms/internal/compose"
	"portfolio-cms/internal/content"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server renders the public site from content API data.
type Server struct {
	client   *content.Client
	resolver content.Resolver
	tmpl     *template.Template
}

func NewServer(client *content.Client, resolver content.Resolver) *Server {
	return &Server{
		client:   client,
		resolver: resolver,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.tmpl")),
	}
}

// Router builds the site's HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.handleHome)
	r.GET("/projects/:slug", s.handleProject)

	return r
}

// ProjectCard is one entry of the home listing.
type ProjectCard struct {
	Title      string
	Slug       string
	Date       string
	Year       int
	NewlyAdded bool
	HeroURL    string
}

func (s *Server) handleHome(c *gin.Context) {
	projects := s.client.GetAllProjects(c.Request.Context(), content.DefaultListLimit, "")

	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, ProjectCard{
			Title:      p.Title,
			Slug:       p.Slug,
			Date:       compose.FormatPublishedDate(p.PublishedAt),
			Year:       p.Year,
			NewlyAdded: p.NewlyAdded,
			HeroURL:    s.resolver.Resolve(p.HeroImage, "medium"),
		})
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{"Cards": cards})
}

func (s *Server) handleProject(c *gin.Context) {
	slug := c.Param("slug")

	project := s.client.GetProjectBySlug(c.Request.Context(), slug)
	page := compose.ProjectPage(project, s.resolver)
	if page == nil {
		c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{"Slug": slug})
		return
	}

	c.HTML(http.StatusOK, "project.tmpl", page)
}
