package content

import (
	"encoding/json"
	"testing"
)

func TestMediaRefUnmarshal(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantID       string
		wantExpanded bool
	}{
		{"bare identifier", `"abc-123"`, "abc-123", false},
		{"expanded object", `{"id": "abc-123", "url": "/media/x.jpg"}`, "abc-123", true},
		{"null", `null`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref MediaRef
			if err := json.Unmarshal([]byte(tt.input), &ref); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if ref.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", ref.ID, tt.wantID)
			}
			if ref.IsExpanded() != tt.wantExpanded {
				t.Errorf("IsExpanded() = %v, want %v", ref.IsExpanded(), tt.wantExpanded)
			}
		})
	}
}

func TestMediaRefMarshal(t *testing.T) {
	expanded, err := json.Marshal(Expanded(Media{ID: "abc", URL: "/media/x.jpg"}))
	if err != nil {
		t.Fatal(err)
	}
	var m Media
	if err := json.Unmarshal(expanded, &m); err != nil || m.ID != "abc" {
		t.Errorf("expanded ref marshalled to %s", expanded)
	}

	bare, err := json.Marshal(Identifier("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if string(bare) != `"abc"` {
		t.Errorf("identifier ref marshalled to %s, want \"abc\"", bare)
	}

	empty, err := json.Marshal(MediaRef{})
	if err != nil {
		t.Fatal(err)
	}
	if string(empty) != "null" {
		t.Errorf("zero ref marshalled to %s, want null", empty)
	}
}

func TestNewListMeta(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		limit       int
		page        int
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
		wantNext    int // 0 = nil
		wantPrev    int // 0 = nil
	}{
		{"single page", 5, 10, 1, 1, false, false, 0, 0},
		{"first of three", 25, 10, 1, 3, true, false, 2, 0},
		{"middle page", 25, 10, 2, 3, true, true, 3, 1},
		{"last page", 25, 10, 3, 3, false, true, 0, 2},
		{"empty collection", 0, 10, 1, 1, false, false, 0, 0},
		{"exact boundary", 20, 10, 2, 2, false, true, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewListMeta(tt.total, tt.limit, tt.page)
			if meta.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.HasNextPage != tt.wantHasNext || meta.HasPrevPage != tt.wantHasPrev {
				t.Errorf("HasNextPage/HasPrevPage = %v/%v, want %v/%v",
					meta.HasNextPage, meta.HasPrevPage, tt.wantHasNext, tt.wantHasPrev)
			}
			if (meta.NextPage == nil) != (tt.wantNext == 0) {
				t.Errorf("NextPage = %v, want %d", meta.NextPage, tt.wantNext)
			} else if meta.NextPage != nil && *meta.NextPage != tt.wantNext {
				t.Errorf("NextPage = %d, want %d", *meta.NextPage, tt.wantNext)
			}
			if (meta.PrevPage == nil) != (tt.wantPrev == 0) {
				t.Errorf("PrevPage = %v, want %d", meta.PrevPage, tt.wantPrev)
			} else if meta.PrevPage != nil && *meta.PrevPage != tt.wantPrev {
				t.Errorf("PrevPage = %d, want %d", *meta.PrevPage, tt.wantPrev)
			}
		})
	}
}

func TestMediaKindHelpers(t *testing.T) {
	if !(Media{MimeType: "video/mp4"}).IsVideo() {
		t.Error("video/mp4 should be a video")
	}
	if !(Media{MimeType: "image/webp"}).IsImage() {
		t.Error("image/webp should be an image")
	}
	if (Media{}).IsVideo() || (Media{}).IsImage() {
		t.Error("empty mime type is neither image nor video")
	}
}
