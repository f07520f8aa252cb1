package web

import (
	"net/http"
	"time"

	"besthair/framework/httpserver"
	"besthair/internal/routes"
	"besthair/internal/seo"
	"besthair/internal/web/appcore"
)

const (
	SitemapPath = "/sitemap.xml"
	RobotsPath  = "/robots.txt"
)

type sitemapPolicy struct {
	changeFreq string
	priority   float64
}

var sitemapPolicies = map[routes.Family]sitemapPolicy{
	routes.FamilyPage:     {changeFreq: "monthly", priority: 0.8},
	routes.FamilyService:  {changeFreq: "monthly", priority: 0.9},
	routes.FamilyLocation: {changeFreq: "monthly", priority: 0.8},
	routes.FamilyCombined: {changeFreq: "monthly", priority: 0.7},
	routes.FamilyBlog:     {changeFreq: "yearly", priority: 0.6},
}

func fileRoutes(appCtx *appcore.Context) []httpserver.FileRoute {
	return []httpserver.FileRoute{
		{
			Path:        SitemapPath,
			ContentType: "application/xml; charset=utf-8",
			Render: func(*http.Request) ([]byte, error) {
				return seo.Sitemap(appCtx.RootURL(), sitemapEntries(appCtx))
			},
		},
		{
			Path:        RobotsPath,
			ContentType: "text/plain; charset=utf-8",
			Render: func(*http.Request) ([]byte, error) {
				return seo.Robots(appCtx.RootURL()), nil
			},
		},
	}
}

// sitemapEntries lists every generated page. Only blog posts carry a
// lastmod so the document is stable between builds.
func sitemapEntries(appCtx *appcore.Context) []seo.SitemapEntry {
	all := appCtx.Routes().All()
	entries := make([]seo.SitemapEntry, 0, len(all))
	for _, staticPath := range all {
		policy := sitemapPolicies[staticPath.Family]
		entry := seo.SitemapEntry{
			Path:       staticPath.Path,
			ChangeFreq: policy.changeFreq,
			Priority:   policy.priority,
		}
		if staticPath.Path == "/" {
			entry.ChangeFreq = "weekly"
			entry.Priority = 1.0
		}
		if staticPath.Family == routes.FamilyBlog {
			entry.LastMod = postDate(appCtx, staticPath.Params["slug"])
		}
		entries = append(entries, entry)
	}
	return entries
}

func postDate(appCtx *appcore.Context, slug string) time.Time {
	if appCtx.Catalog() == nil {
		return time.Time{}
	}
	post, err := appCtx.Catalog().Post(slug)
	if err != nil {
		return time.Time{}
	}
	return post.Date
}
