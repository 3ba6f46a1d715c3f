package compose

import (
	"context"
	"strings"
	"testing"
	"time"

	"portfolio-cms/internal/content"
)

var testResolver = content.NewResolver("https://cms.example.com")

func expandedMedia(id, url string) content.MediaRef {
	return content.Expanded(content.Media{ID: id, URL: url, MimeType: "image/jpeg"})
}

func TestProjectPageNil(t *testing.T) {
	if page := ProjectPage(nil, testResolver); page != nil {
		t.Error("nil project should compose to nil")
	}
	if page := ProjectPage(&content.Project{}, testResolver); page != nil {
		t.Error("untitled project should compose to nil")
	}
}

func TestProjectPageHeader(t *testing.T) {
	published := time.Date(2024, time.March, 2, 23, 50, 0, 0, time.Local)
	project := &content.Project{
		Title:       "Matilda",
		PublishedAt: published,
		Year:        2024,
		HeroImage:   expandedMedia("m1", "/media/hero.jpg"),
	}

	page := ProjectPage(project, testResolver)
	if page == nil {
		t.Fatal("expected a page")
	}
	if page.Title != "Matilda" {
		t.Errorf("Title = %q", page.Title)
	}
	if page.Date != "03.2024" {
		t.Errorf("Date = %q, want 03.2024", page.Date)
	}
	if page.HeroURL != "https://cms.example.com/media/hero.jpg" {
		t.Errorf("HeroURL = %q", page.HeroURL)
	}
	if page.HeroAlt != "Matilda" {
		t.Errorf("HeroAlt should fall back to the title, got %q", page.HeroAlt)
	}
}

func TestFormatPublishedDate(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"zero padded month", time.Date(2023, time.January, 15, 12, 0, 0, 0, time.Local), "01.2023"},
		{"december", time.Date(2022, time.December, 1, 0, 0, 0, 0, time.Local), "12.2022"},
		{"zero time", time.Time{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPublishedDate(tt.t); got != tt.expected {
				t.Errorf("FormatPublishedDate = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProjectPageSectionOrdering(t *testing.T) {
	body := []byte(`{"root": {"type": "root", "children": [
		{"type": "paragraph", "children": [{"type": "text", "text": "body", "format": 0}]}
	]}}`)

	project := &content.Project{
		Title:     "Ordered",
		HeroImage: expandedMedia("m1", "/media/hero.jpg"),
		Sections: []content.Section{
			{Order: 2, Title: "Third", Body: body},
			{Order: 0, Title: "First", Body: body},
			{Order: 1, Title: "Second", Body: body},
		},
	}

	page := ProjectPage(project, testResolver)
	if page == nil {
		t.Fatal("expected a page")
	}
	if len(page.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(page.Sections))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if page.Sections[i].Title != want {
			t.Errorf("section %d = %q, want %q", i, page.Sections[i].Title, want)
		}
	}
	if !strings.Contains(string(page.Sections[0].Body), "body") {
		t.Errorf("section body not rendered: %q", page.Sections[0].Body)
	}
	if page.Sections[0].AnchorID != "first" {
		t.Errorf("AnchorID = %q, want first", page.Sections[0].AnchorID)
	}
}

func TestProjectPageGallerySkipsUnresolvable(t *testing.T) {
	project := &content.Project{
		Title:     "Gallery",
		HeroImage: expandedMedia("m1", "/media/hero.jpg"),
		Sections: []content.Section{{
			Order: 0,
			Title: "Shots",
			Media: []content.GalleryItem{
				{Order: 0, MediaItem: expandedMedia("g1", "/media/a.jpg"), Caption: "first"},
				{Order: 1}, // null media reference
				{Order: 2, MediaItem: content.Identifier("dangling")},
				{Order: 3, MediaItem: content.Expanded(content.Media{Alt: "unresolvable"})},
				{Order: 4, MediaItem: expandedMedia("g2", "/media/b.jpg")},
			},
		}},
	}

	page := ProjectPage(project, testResolver)
	if page == nil {
		t.Fatal("expected a page")
	}
	gallery := page.Sections[0].Gallery
	if len(gallery) != 2 {
		t.Fatalf("expected 2 surviving gallery items, got %d", len(gallery))
	}
	if gallery[0].Caption != "first" || !strings.HasSuffix(gallery[1].URL, "/media/b.jpg") {
		t.Errorf("unexpected gallery: %+v", gallery)
	}
}

func TestProjectPageGalleryOrdering(t *testing.T) {
	project := &content.Project{
		Title:     "Gallery",
		HeroImage: expandedMedia("m1", "/media/hero.jpg"),
		Sections: []content.Section{{
			Order: 0,
			Title: "Shots",
			Media: []content.GalleryItem{
				{Order: 1, MediaItem: expandedMedia("g2", "/media/second.jpg")},
				{Order: 0, MediaItem: expandedMedia("g1", "/media/first.jpg")},
			},
		}},
	}

	gallery := ProjectPage(project, testResolver).Sections[0].Gallery
	if len(gallery) != 2 {
		t.Fatalf("expected 2 gallery items, got %d", len(gallery))
	}
	if !strings.HasSuffix(gallery[0].URL, "first.jpg") || !strings.HasSuffix(gallery[1].URL, "second.jpg") {
		t.Errorf("gallery must follow stored order, got %+v", gallery)
	}
}

func TestSectionAnchor(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Process & Materials", "process-materials"},
		{"  Simple  ", "simple"},
		{"2024 Review", "2024-review"},
	}
	for _, tt := range tests {
		if got := SectionAnchor(tt.title); got != tt.expected {
			t.Errorf("SectionAnchor(%q) = %q, want %q", tt.title, got, tt.expected)
		}
	}
}

type stubLister struct {
	slugs []string
}

func (s stubLister) GetAllProjectSlugs(ctx context.Context) []string { return s.slugs }

func TestStaticProjectPaths(t *testing.T) {
	paths := StaticProjectPaths(context.Background(), stubLister{slugs: []string{"one", "two"}})
	if len(paths) != 2 || paths[0].Slug != "one" || paths[1].Slug != "two" {
		t.Errorf("paths = %v", paths)
	}

	empty := StaticProjectPaths(context.Background(), stubLister{})
	if len(empty) != 0 {
		t.Errorf("expected no paths on empty listing, got %v", empty)
	}
}
