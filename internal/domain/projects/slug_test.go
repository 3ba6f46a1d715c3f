package projects

import (
	"testing"
	"time"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Matilda Demo", "matilda-demo"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Symbols & Co.!", "symbols-co"},
		{"already-a-slug", "already-a-slug"},
		{"ÜberÇool", "berool"},
		{"", "project"},
		{"!!!", "project"},
	}
	for _, tt := range tests {
		if got := MakeSlug(tt.title); got != tt.expected {
			t.Errorf("MakeSlug(%q) = %q, want %q", tt.title, got, tt.expected)
		}
	}
}

func TestPubliclyListable(t *testing.T) {
	now := time.Now()
	hero := "6f1f8f7a-0000-0000-0000-000000000000"

	tests := []struct {
		name     string
		project  Project
		expected bool
	}{
		{
			name:     "published with hero and timestamp",
			project:  Project{Status: StatusPublished, HeroImageID: &hero, PublishedAt: &now},
			expected: true,
		},
		{
			name:     "draft",
			project:  Project{Status: StatusDraft, HeroImageID: &hero, PublishedAt: &now},
			expected: false,
		},
		{
			name:     "published without hero",
			project:  Project{Status: StatusPublished, PublishedAt: &now},
			expected: false,
		},
		{
			name:     "published without timestamp",
			project:  Project{Status: StatusPublished, HeroImageID: &hero},
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.project.PubliclyListable(); got != tt.expected {
				t.Errorf("PubliclyListable() = %v, want %v", got, tt.expected)
			}
		})
	}
}
