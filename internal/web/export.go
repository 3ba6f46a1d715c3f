package web

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"portfolio-cms/internal/compose"
	"portfolio-cms/internal/content"

	"github.com/rs/zerolog/log"
)

// Export pre-renders the home page and every enumerable project page into
// dir. An empty path enumeration (content API down, nothing published) still
// produces a home page; unrenderable projects are skipped, not fatal.
func (s *Server) Export(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var home bytes.Buffer
	projects := s.client.GetAllProjects(ctx, content.DefaultListLimit, "")
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
	if err := s.tmpl.ExecuteTemplate(&home, "home.tmpl", map[string]any{"Cards": cards}); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), home.Bytes(), 0o644); err != nil {
		return err
	}

	exported := 0
	for _, path := range compose.StaticProjectPaths(ctx, s.client) {
		project := s.client.GetProjectBySlug(ctx, path.Slug)
		page := compose.ProjectPage(project, s.resolver)
		if page == nil {
			log.Warn().Str("slug", path.Slug).Msg("skipping unrenderable project")
			continue
		}

		var buf bytes.Buffer
		if err := s.tmpl.ExecuteTemplate(&buf, "project.tmpl", page); err != nil {
			return err
		}

		target := filepath.Join(dir, "projects", path.Slug)
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(target, "index.html"), buf.Bytes(), 0o644); err != nil {
			return err
		}
		exported++
	}

	log.Info().Int("projects", exported).Str("dir", dir).Msg("export finished")
	return nil
}
