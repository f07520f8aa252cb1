package appcore

import (
	"errors"
	"strings"
	"time"

	"besthair/internal/catalog"
	"besthair/internal/routes"
	"besthair/internal/seo"
	"besthair/internal/site"
)

var errCatalogUnavailable = errors.New("catalog unavailable")

// Context is shared by every page loader. It is read-only after NewContext.
type Context struct {
	catalog *catalog.Catalog
	profile site.Profile
	rootURL string
	routes  routes.Set
	now     func() time.Time
}

func NewContext(cat *catalog.Catalog, profile site.Profile, rootURL string) *Context {
	appCtx := &Context{
		catalog: cat,
		profile: profile,
		rootURL: strings.TrimSuffix(strings.TrimSpace(rootURL), "/"),
		now:     time.Now,
	}
	if cat != nil {
		appCtx.routes = cat.Routes()
	}
	return appCtx
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, catalog.ErrNotFound)
}

func (c *Context) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *Context) Profile() site.Profile {
	return c.profile
}

func (c *Context) RootURL() string {
	return c.rootURL
}

// Routes is the enumerated static route set of the catalog.
func (c *Context) Routes() routes.Set {
	return c.routes
}

// URL makes path absolute against the site root.
func (c *Context) URL(path string) string {
	return seo.AbsoluteURL(c.rootURL, path)
}

func catalogOf(appCtx *Context) (*catalog.Catalog, error) {
	if appCtx == nil || appCtx.catalog == nil {
		return nil, errCatalogUnavailable
	}
	return appCtx.catalog, nil
}
