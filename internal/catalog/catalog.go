package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"besthair/internal/routes"
	"besthair/internal/slug"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	Slug        string
	Name        string
	Description string
}

type Location struct {
	Slug string
	Name string
}

type BlogPost struct {
	Slug            string
	Title           string
	Author          string
	Date            time.Time
	Content         string
	Excerpt         string
	FeaturedImage   string
	MetaDescription string
	Keywords        []string
}

func (p BlogPost) DateISO() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("2006-01-02")
}

// DisplayDate formats the publish date the way Australian readers expect it,
// e.g. "4 November 2024".
func (p BlogPost) DisplayDate() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("2 January 2006")
}

// Data is the raw input to New. Slices keep their order; it becomes the
// native order of every listing.
type Data struct {
	Services       []Service
	Locations      []Location
	Posts          []BlogPost
	Content        map[string]ServiceContent
	DefaultContent string
}

// Catalog is immutable after New returns and safe for concurrent use.
type Catalog struct {
	services      []Service
	serviceIndex  map[string]int
	locations     []Location
	locationIndex map[string]int
	posts         []BlogPost
	postIndex     map[string]int

	content        map[string]ServiceContent
	defaultContent string
}

func New(data Data) (*Catalog, error) {
	c := &Catalog{
		services:      make([]Service, 0, len(data.Services)),
		serviceIndex:  make(map[string]int, len(data.Services)),
		locations:     make([]Location, 0, len(data.Locations)),
		locationIndex: make(map[string]int, len(data.Locations)),
		posts:         make([]BlogPost, 0, len(data.Posts)),
		postIndex:     make(map[string]int, len(data.Posts)),
		content:       make(map[string]ServiceContent, len(data.Content)),
	}

	for idx, service := range data.Services {
		normalized, err := segmentSlug(service.Slug, service.Name)
		if err != nil {
			return nil, fmt.Errorf("service #%d: %w", idx, err)
		}
		service.Slug = normalized
		service.Name = strings.TrimSpace(service.Name)
		service.Description = strings.TrimSpace(service.Description)
		if service.Name == "" {
			return nil, fmt.Errorf("service %q: name is required", service.Slug)
		}
		if _, exists := c.serviceIndex[service.Slug]; exists {
			return nil, fmt.Errorf("service %q: duplicate slug", service.Slug)
		}
		c.serviceIndex[service.Slug] = len(c.services)
		c.services = append(c.services, service)
	}

	for idx, location := range data.Locations {
		normalized, err := segmentSlug(location.Slug, location.Name)
		if err != nil {
			return nil, fmt.Errorf("location #%d: %w", idx, err)
		}
		location.Slug = normalized
		location.Name = strings.TrimSpace(location.Name)
		if location.Name == "" {
			return nil, fmt.Errorf("location %q: name is required", location.Slug)
		}
		if _, exists := c.locationIndex[location.Slug]; exists {
			return nil, fmt.Errorf("location %q: duplicate slug", location.Slug)
		}
		c.locationIndex[location.Slug] = len(c.locations)
		c.locations = append(c.locations, location)
	}

	for _, post := range data.Posts {
		normalized, err := slug.Normalize(post.Slug)
		if err != nil {
			return nil, fmt.Errorf("blog post: %w", err)
		}
		post.Slug = normalized
		if strings.TrimSpace(post.Title) == "" {
			return nil, fmt.Errorf("blog post %q: title is required", post.Slug)
		}
		if post.Date.IsZero() {
			return nil, fmt.Errorf("blog post %q: date is required", post.Slug)
		}
		c.posts = append(c.posts, post)
	}

	sort.SliceStable(c.posts, func(i int, j int) bool {
		if !c.posts[i].Date.Equal(c.posts[j].Date) {
			return c.posts[i].Date.After(c.posts[j].Date)
		}
		return c.posts[i].Slug < c.posts[j].Slug
	})
	for idx, post := range c.posts {
		if _, exists := c.postIndex[post.Slug]; exists {
			return nil, fmt.Errorf("blog post %q: duplicate slug", post.Slug)
		}
		c.postIndex[post.Slug] = idx
	}

	if err := c.setContent(data.Content, data.DefaultContent); err != nil {
		return nil, err
	}

	return c, nil
}

func segmentSlug(raw string, name string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		raw = slug.Generate(name)
	}

	normalized, err := slug.Normalize(raw)
	if err != nil {
		return "", err
	}
	if err := routes.CheckSegment(normalized); err != nil {
		return "", err
	}

	return normalized, nil
}

func (c *Catalog) Services() []Service {
	return append([]Service(nil), c.services...)
}

func (c *Catalog) Locations() []Location {
	return append([]Location(nil), c.locations...)
}

// Posts lists blog posts newest first.
func (c *Catalog) Posts() []BlogPost {
	return append([]BlogPost(nil), c.posts...)
}

func (c *Catalog) Service(serviceSlug string) (Service, error) {
	idx, ok := c.serviceIndex[serviceSlug]
	if !ok {
		return Service{}, fmt.Errorf("service %q: %w", serviceSlug, ErrNotFound)
	}
	return c.services[idx], nil
}

func (c *Catalog) Location(locationSlug string) (Location, error) {
	idx, ok := c.locationIndex[locationSlug]
	if !ok {
		return Location{}, fmt.Errorf("location %q: %w", locationSlug, ErrNotFound)
	}
	return c.locations[idx], nil
}

func (c *Catalog) Post(postSlug string) (BlogPost, error) {
	idx, ok := c.postIndex[postSlug]
	if !ok {
		return BlogPost{}, fmt.Errorf("blog post %q: %w", postSlug, ErrNotFound)
	}
	return c.posts[idx], nil
}

func (c *Catalog) ServiceSlugs() []string {
	slugs := make([]string, 0, len(c.services))
	for _, service := range c.services {
		slugs = append(slugs, service.Slug)
	}
	return slugs
}

func (c *Catalog) LocationSlugs() []string {
	slugs := make([]string, 0, len(c.locations))
	for _, location := range c.locations {
		slugs = append(slugs, location.Slug)
	}
	return slugs
}

func (c *Catalog) PostSlugs() []string {
	slugs := make([]string, 0, len(c.posts))
	for _, post := range c.posts {
		slugs = append(slugs, post.Slug)
	}
	return slugs
}

// Routes enumerates every static route the catalog backs.
func (c *Catalog) Routes() routes.Set {
	return routes.Enumerate(routes.Input{
		Services:  c.ServiceSlugs(),
		Locations: c.LocationSlugs(),
		Posts:     c.PostSlugs(),
	})
}
