// Package compose assembles fetched content into ordered, renderable pages.
package compose

import (
	"html/template"
	"regexp"
	"sort"
	"strings"
	"time"

	"portfolio-cms/internal/content"
	"portfolio-cms/internal/richtext"
)

// Page is a fully composed project page, in render order.
type Page struct {
	Title      string
	Date       string
	Year       int
	NewlyAdded bool

	HeroURL   string
	HeroAlt   string
	HeroVideo bool

	Categories []string
	Sections   []SectionView
}

// SectionView is one titled content block with its rendered body and gallery.
type SectionView struct {
	AnchorID string
	Title    string
	Body     template.HTML
	Gallery  []GalleryView
}

// GalleryView is one resolved gallery entry.
type GalleryView struct {
	URL     string
	Alt     string
	Caption string
	Video   bool
}

// ProjectPage composes a fetched project into a page: header, hero, then the
// sections in stored order, each with rendered body and gallery. Gallery
// entries whose media cannot be resolved are skipped, not errored on; the
// hero is expected to be expanded already (the fetcher guarantees it).
func ProjectPage(project *content.Project, resolver content.Resolver) *Page {
	if project == nil || project.Title == "" {
		return nil
	}

	page := &Page{
		Title:      project.Title,
		Date:       FormatPublishedDate(project.PublishedAt),
		Year:       project.Year,
		NewlyAdded: project.NewlyAdded,
		Categories: project.Categories,
	}

	if project.HeroImage.IsExpanded() {
		page.HeroURL = resolver.Resolve(project.HeroImage, "")
		page.HeroAlt = project.HeroImage.Media.Alt
		if page.HeroAlt == "" {
			page.HeroAlt = project.Title
		}
		page.HeroVideo = project.HeroImage.Media.IsVideo()
	}

	sections := make([]content.Section, len(project.Sections))
	copy(sections, project.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	for _, section := range sections {
		if section.Title == "" {
			continue
		}
		page.Sections = append(page.Sections, composeSection(section, resolver))
	}

	return page
}

func composeSection(section content.Section, resolver content.Resolver) SectionView {
	view := SectionView{
		AnchorID: SectionAnchor(section.Title),
		Title:    section.Title,
		Body:     richtext.Render(section.Body),
	}

	items := make([]content.GalleryItem, len(section.Media))
	copy(items, section.Media)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})

	for _, item := range items {
		if !item.MediaItem.IsExpanded() {
			continue
		}
		url := resolver.Resolve(item.MediaItem, "")
		if url == "" {
			continue
		}
		media := item.MediaItem.Media
		alt := media.Alt
		if alt == "" {
			alt = item.Caption
		}
		view.Gallery = append(view.Gallery, GalleryView{
			URL:     url,
			Alt:     alt,
			Caption: item.Caption,
			Video:   media.IsVideo(),
		})
	}

	return view
}

// FormatPublishedDate renders a publish timestamp as "MM.YYYY". The timestamp
// is read in local time without timezone normalization, matching the stored
// display behavior.
func FormatPublishedDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("01.2006")
}

var nonAnchor = regexp.MustCompile(`[^a-z0-9]+`)

// SectionAnchor derives a URL-fragment id from a section title.
func SectionAnchor(title string) string {
	anchor := nonAnchor.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(anchor, "-")
}
