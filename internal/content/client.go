package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultListLimit bounds listing queries against the content API.
	DefaultListLimit = 100

	// DefaultSort orders listings newest-first by publish timestamp.
	DefaultSort = "-publishedAt"

	defaultTimeout  = 10 * time.Second
	projectCacheTTL = 60 * time.Second
)

// Client is a read client over the content API. Fetch failures never escape
// to callers: every method degrades to its empty result (nil or empty slice)
// so a page render can proceed as a not-found instead of crashing.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *gocache.Cache
	log     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client (tests, custom
// timeouts).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger substitutes the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a content API client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   gocache.New(projectCacheTTL, 2*projectCacheTTL),
		log:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetProjectBySlug fetches a single published project with relations expanded
// two levels deep, so the hero image and every section gallery entry arrive
// as full media objects. Returns nil when no published project matches, when
// the hero image came back unexpanded, or on any fetch failure. Results are
// cached per slug for about a minute; staleness within that window is
// acceptable.
func (c *Client) GetProjectBySlug(ctx context.Context, slug string) *Project {
	if slug == "" {
		return nil
	}

	if cached, ok := c.cache.Get(slug); ok {
		p := cached.(Project)
		return &p
	}

	q := url.Values{}
	q.Set("where[_status][equals]", "published")
	q.Set("where[slug][equals]", slug)
	q.Set("depth", "2")
	q.Set("limit", "1")

	var list ProjectList
	if err := c.getJSON(ctx, "/api/projects", q, &list); err != nil {
		c.log.Error().Err(err).Str("slug", slug).Msg("fetching project failed")
		return nil
	}

	if len(list.Docs) == 0 {
		return nil
	}

	project := list.Docs[0]

	// A project without its hero image resolved is not renderable; treat an
	// unexpanded relation like a fetch failure.
	if !project.HeroImage.IsExpanded() {
		c.log.Error().Str("slug", slug).Msg("hero image not expanded in response")
		return nil
	}

	c.cache.SetDefault(slug, project)
	return &project
}

// GetAllProjects fetches published projects, newest first by default. Returns
// an empty slice on any failure.
func (c *Client) GetAllProjects(ctx context.Context, limit int, sort string) []Project {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if sort == "" {
		sort = DefaultSort
	}

	q := url.Values{}
	q.Set("where[_status][equals]", "published")
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("sort", sort)
	q.Set("depth", "1")

	var list ProjectList
	if err := c.getJSON(ctx, "/api/projects", q, &list); err != nil {
		c.log.Error().Err(err).Msg("fetching projects failed")
		return []Project{}
	}
	return list.Docs
}

// GetAllProjectSlugs fetches the slugs of all published projects, for static
// path enumeration. Returns an empty slice on any failure.
func (c *Client) GetAllProjectSlugs(ctx context.Context) []string {
	q := url.Values{}
	q.Set("where[_status][equals]", "published")
	q.Set("limit", fmt.Sprintf("%d", DefaultListLimit))
	q.Set("select[slug]", "true")

	var list ProjectList
	if err := c.getJSON(ctx, "/api/projects", q, &list); err != nil {
		c.log.Error().Err(err).Msg("fetching project slugs failed")
		return []string{}
	}

	slugs := make([]string, 0, len(list.Docs))
	for _, doc := range list.Docs {
		if doc.Slug != "" {
			slugs = append(slugs, doc.Slug)
		}
	}
	return slugs
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("content API returned %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
