package projectsapi

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	defaultDepth = 1
	maxDepth     = 3
)

// sortColumns whitelists the sortable fields and maps the API names onto
// database columns.
var sortColumns = map[string]string{
	"publishedAt": "published_at",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"title":       "title",
	"year":        "year",
	"slug":        "slug",
}

type listParams struct {
	Limit      int
	Page       int
	SortColumn string
	SortDesc   bool
	Status     string
	Slug       string
	Depth      int
	SelectSlug bool
}

// parseListParams reads the bracketed query surface the frontend sends
// (where[_status][equals]=..., select[slug]=true, ...). Malformed values
// fall back to defaults; nothing here is a hard error.
func parseListParams(q url.Values) listParams {
	p := listParams{
		Limit:      defaultLimit,
		Page:       1,
		SortColumn: "created_at",
		SortDesc:   true,
		Depth:      defaultDepth,
	}

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		p.Limit = min(limit, maxLimit)
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if depth, err := strconv.Atoi(q.Get("depth")); err == nil && depth >= 0 {
		p.Depth = min(depth, maxDepth)
	}

	if sort := q.Get("sort"); sort != "" {
		desc := strings.HasPrefix(sort, "-")
		if column, ok := sortColumns[strings.TrimPrefix(sort, "-")]; ok {
			p.SortColumn = column
			p.SortDesc = desc
		}
	}

	p.Status = q.Get("where[_status][equals]")
	p.Slug = q.Get("where[slug][equals]")
	p.SelectSlug = q.Get("select[slug]") == "true"

	return p
}

func (p listParams) order() string {
	if p.SortDesc {
		return p.SortColumn + " DESC"
	}
	return p.SortColumn + " ASC"
}

func (p listParams) offset() int {
	return (p.Page - 1) * p.Limit
}
