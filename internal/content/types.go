// Package content defines the wire shapes of the content API and a read
// client over it. The same types are marshalled by the server handlers and
// unmarshalled by the site renderer.
package content

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Media is an uploaded asset as it appears on the wire.
type Media struct {
	ID       string   `json:"id"`
	Alt      string   `json:"alt,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	URL      string   `json:"url,omitempty"`
	Filename string   `json:"filename,omitempty"`
	MimeType string   `json:"mimeType,omitempty"`
	Filesize int64    `json:"filesize,omitempty"`
	Width    *int     `json:"width,omitempty"`
	Height   *int     `json:"height,omitempty"`
	FocalX   *float64 `json:"focalX,omitempty"`
	FocalY   *float64 `json:"focalY,omitempty"`

	Sizes map[string]ImageSize `json:"sizes,omitempty"`
}

// IsVideo reports whether the asset is a video by mime type.
func (m Media) IsVideo() bool { return strings.HasPrefix(m.MimeType, "video/") }

// IsImage reports whether the asset is an image by mime type.
func (m Media) IsImage() bool { return strings.HasPrefix(m.MimeType, "image/") }

// ImageSize is one named pre-derived rendition of an image.
type ImageSize struct {
	URL      string `json:"url"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Filesize int64  `json:"filesize,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// MediaRef is a relation field that is either a bare identifier or an
// expanded Media object, depending on the query depth. Consumers must narrow
// with IsExpanded before touching Media; expansion is never assumed.
type MediaRef struct {
	ID    string
	Media *Media
}

// IsExpanded reports whether the relation came back as a full object.
func (r MediaRef) IsExpanded() bool { return r.Media != nil }

// IsZero reports whether the reference is absent entirely (null on the wire).
func (r MediaRef) IsZero() bool { return r.Media == nil && r.ID == "" }

// Expanded builds an expanded reference.
func Expanded(m Media) MediaRef { return MediaRef{ID: m.ID, Media: &m} }

// Identifier builds a bare-identifier reference.
func Identifier(id string) MediaRef { return MediaRef{ID: id} }

func (r MediaRef) MarshalJSON() ([]byte, error) {
	if r.Media != nil {
		return json.Marshal(r.Media)
	}
	if r.ID != "" {
		return json.Marshal(r.ID)
	}
	return []byte("null"), nil
}

func (r *MediaRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = MediaRef{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = MediaRef{ID: id}
		return nil
	}
	var m Media
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*r = MediaRef{ID: m.ID, Media: &m}
	return nil
}

// Project is one portfolio entry as served by the content API.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	HeroImage   MediaRef  `json:"heroImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt,omitzero"`
	Year        int       `json:"year,omitempty"`
	NewlyAdded  bool      `json:"newlyAdded,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
	Status      string    `json:"_status,omitempty"`
}

// Section is a titled content block of a project. Order is the stored sort
// index; renderers must respect it, not the array position.
type Section struct {
	ID    string          `json:"id,omitempty"`
	Order int             `json:"order"`
	Title string          `json:"sectionTitle"`
	Body  json.RawMessage `json:"textBody,omitempty"`
	Media []GalleryItem   `json:"media,omitempty"`
}

// GalleryItem is one ordered entry of a section gallery.
type GalleryItem struct {
	ID        string   `json:"id,omitempty"`
	Order     int      `json:"order"`
	MediaItem MediaRef `json:"mediaItem,omitempty"`
	Caption   string   `json:"caption,omitempty"`
}

// ListMeta is the pagination envelope shared by every collection listing.
type ListMeta struct {
	TotalDocs     int  `json:"totalDocs"`
	Limit         int  `json:"limit"`
	TotalPages    int  `json:"totalPages"`
	Page          int  `json:"page"`
	PagingCounter int  `json:"pagingCounter"`
	HasPrevPage   bool `json:"hasPrevPage"`
	HasNextPage   bool `json:"hasNextPage"`
	PrevPage      *int `json:"prevPage"`
	NextPage      *int `json:"nextPage"`
}

// NewListMeta computes the pagination envelope for a listing.
func NewListMeta(totalDocs, limit, page int) ListMeta {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	totalPages := (totalDocs + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	meta := ListMeta{
		TotalDocs:     totalDocs,
		Limit:         limit,
		TotalPages:    totalPages,
		Page:          page,
		PagingCounter: (page-1)*limit + 1,
	}
	if page > 1 {
		meta.HasPrevPage = true
		prev := page - 1
		meta.PrevPage = &prev
	}
	if page < totalPages {
		meta.HasNextPage = true
		next := page + 1
		meta.NextPage = &next
	}
	return meta
}

// ProjectList is the response envelope of /api/projects.
type ProjectList struct {
	Docs []Project `json:"docs"`
	ListMeta
}
