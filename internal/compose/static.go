package compose

import "context"

// SlugLister enumerates the published project slugs.
type SlugLister interface {
	GetAllProjectSlugs(ctx context.Context) []string
}

// PathParams identifies one pre-renderable project page.
type PathParams struct {
	Slug string
}

// StaticProjectPaths derives the set of sluggable paths for pre-rendering.
// If the underlying fetch fails the list is simply empty, so a build can
// proceed without pre-rendered detail pages.
func StaticProjectPaths(ctx context.Context, lister SlugLister) []PathParams {
	slugs := lister.GetAllProjectSlugs(ctx)
	paths := make([]PathParams, 0, len(slugs))
	for _, slug := range slugs {
		paths = append(paths, PathParams{Slug: slug})
	}
	return paths
}
