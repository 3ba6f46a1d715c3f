package content

import (
	"net/url"

	"github.com/rs/zerolog/log"
)

// Resolver turns media references into absolute URLs against a configured
// content base. It is a pure function of its input and the base URL.
type Resolver struct {
	base string
}

// NewResolver builds a resolver for the given content base URL. A trailing
// slash on the base is trimmed so joins stay predictable.
func NewResolver(base string) Resolver {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return Resolver{base: base}
}

// Base returns the configured content base URL.
func (r Resolver) Base() string { return r.base }

// Resolve produces the URL for a media reference, optionally for a named size
// variant. Resolution order:
//
//  1. bare identifier            -> {base}/media/file/{id}
//  2. absolute media URL         -> returned unmodified, even when a size
//     variant was requested (externally hosted assets are not re-derivable)
//  3. requested size variant URL -> kept if absolute, else prefixed with base
//  4. relative media URL         -> prefixed with base
//  5. filename                   -> {base}/media/{filename}
//  6. identifier                 -> {base}/media/file/{id}
//
// On failure it logs and returns the empty string; callers must treat an
// empty result as "omit this media".
func (r Resolver) Resolve(ref MediaRef, size string) string {
	if !ref.IsExpanded() {
		if ref.ID == "" {
			log.Error().Msg("unable to construct media URL: empty reference")
			return ""
		}
		return r.base + "/media/file/" + ref.ID
	}

	m := ref.Media

	if m.URL != "" && isAbsolute(m.URL) {
		return m.URL
	}

	if size != "" {
		if variant, ok := m.Sizes[size]; ok && variant.URL != "" {
			if isAbsolute(variant.URL) {
				return variant.URL
			}
			return r.base + variant.URL
		}
	}

	if m.URL != "" {
		return r.base + m.URL
	}

	if m.Filename != "" {
		return r.base + "/media/" + m.Filename
	}

	if m.ID != "" {
		return r.base + "/media/file/" + m.ID
	}

	log.Error().Str("alt", m.Alt).Msg("unable to construct media URL")
	return ""
}

func isAbsolute(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != ""
}
