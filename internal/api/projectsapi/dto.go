package projectsapi

import (
	"portfolio-cms/internal/content"
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/projects"
)

func toWireMedia(m *media.Media) content.Media {
	wm := content.Media{
		ID:       m.ID,
		Alt:      m.Alt,
		Caption:  m.Caption,
		MimeType: m.MimeType,
		Filesize: m.Filesize,
		Width:    m.Width,
		Height:   m.Height,
		FocalX:   m.FocalX,
		FocalY:   m.FocalY,
	}
	if m.URL != nil {
		wm.URL = *m.URL
	}
	if m.Filename != nil {
		wm.Filename = *m.Filename
	}
	if len(m.Sizes) > 0 {
		wm.Sizes = make(map[string]content.ImageSize, len(m.Sizes))
		for _, s := range m.Sizes {
			wm.Sizes[s.Name] = content.ImageSize{
				URL:      s.URL,
				Width:    s.Width,
				Height:   s.Height,
				MimeType: s.MimeType,
				Filesize: s.Filesize,
				Filename: s.Filename,
			}
		}
	}
	return wm
}

// toMediaRef narrows a relation to either an expanded object or a bare
// identifier, depending on whether the query depth reached it.
func toMediaRef(id *string, m *media.Media, expand bool) content.MediaRef {
	if expand && m != nil {
		return content.Expanded(toWireMedia(m))
	}
	if id != nil {
		return content.Identifier(*id)
	}
	return content.MediaRef{}
}

func toWireProject(p projects.Project, depth int) content.Project {
	wp := content.Project{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Year:       p.Year,
		NewlyAdded: p.NewlyAdded,
		Status:     p.Status,
		HeroImage:  toMediaRef(p.HeroImageID, p.HeroImage, depth >= 1),
	}
	if p.PublishedAt != nil {
		wp.PublishedAt = *p.PublishedAt
	}
	for _, c := range p.Categories {
		wp.Categories = append(wp.Categories, c.Name)
	}
	for _, s := range p.Sections {
		ws := content.Section{
			ID:    s.ID,
			Order: s.SortIndex,
			Title: s.Title,
			Body:  s.Body,
		}
		for _, item := range s.Media {
			ws.Media = append(ws.Media, content.GalleryItem{
				ID:        item.ID,
				Order:     item.SortIndex,
				MediaItem: toMediaRef(item.MediaID, item.Media, depth >= 2),
				Caption:   item.Caption,
			})
		}
		wp.Sections = append(wp.Sections, ws)
	}
	return wp
}

// toSlugProjection keeps only the identifying fields, for select[slug]
// queries driving static path enumeration.
func toSlugProjection(p projects.Project) content.Project {
	return content.Project{ID: p.ID, Slug: p.Slug}
}
