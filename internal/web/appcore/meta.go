package appcore

import (
	"html/template"
	"strings"
	"time"

	"besthair/internal/catalog"
	"besthair/internal/images"
	"besthair/internal/seo"
	"besthair/internal/site"
)

const (
	footerServicesLimit  = 6
	footerLocationsLimit = 8
)

func newPage(appCtx *Context, path string, meta seo.Meta, jsonLD ...map[string]any) Page {
	meta.Canonical = appCtx.URL(path)
	meta = meta.Defaults(appCtx.profile.Title())

	blocks := make([]template.JS, 0, len(jsonLD))
	for _, payload := range jsonLD {
		if encoded := seo.JSON(payload); encoded != "" {
			blocks = append(blocks, encoded)
		}
	}

	page := Page{
		Meta:    meta,
		Path:    path,
		Profile: appCtx.profile,
		JSONLD:  blocks,
		Year:    appCtx.now().Year(),
		Years:   appCtx.profile.Years(appCtx.now()),
	}
	if appCtx.catalog != nil {
		services := appCtx.catalog.Services()
		page.FooterServices = services[:min(footerServicesLimit, len(services))]
		page.FooterLocations = appCtx.catalog.FirstLocations(footerLocationsLimit)
	}
	return page
}

var notFoundTitles = map[string]string{
	"/services/[service]":   "Service Not Found",
	"/locations/[location]": "Location Not Found",
	"/blog/[slug]":          "Post Not Found",
}

// NewNotFoundView builds the 404 page. It needs no catalog lookups so it
// renders even when the request never reached a loader. routePattern is the
// route whose loader gave up, empty when no route matched.
func NewNotFoundView(appCtx *Context, requestPath string, routePattern string) NotFoundView {
	title, ok := notFoundTitles[routePattern]
	if !ok {
		title = "Page Not Found"
	}

	page := newPage(appCtx, requestPath, seo.Meta{
		Title:       title,
		Description: "The page you are looking for does not exist.",
		Robots:      "noindex",
	})
	return NotFoundView{Page: page, RequestPath: requestPath}
}

func (c *Context) business(areaNames []string) seo.Business {
	return seo.Business{
		Name:      c.profile.Title(),
		URL:       c.rootURL,
		Phone:     c.profile.Phone,
		Email:     c.profile.Email,
		Image:     images.Resolve(images.Hero, 1),
		Region:    c.profile.Region,
		AreaNames: areaNames,
		Hours:     openingHours(c.profile.Hours),
	}
}

func (c *Context) breadcrumbs(links ...Link) map[string]any {
	items := make([]seo.BreadcrumbItem, 0, len(links)+1)
	items = append(items, seo.BreadcrumbItem{Name: "Home", Item: c.URL("/")})
	for _, link := range links {
		items = append(items, seo.BreadcrumbItem{Name: link.Label, Item: c.URL(link.Href)})
	}
	return seo.BreadcrumbList(items)
}

func faqQuestions(faqs []catalog.FAQ) []seo.Question {
	questions := make([]seo.Question, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, seo.Question{Question: faq.Question, Answer: faq.Answer})
	}
	return questions
}

func locationNames(locations []catalog.Location) []string {
	names := make([]string, 0, len(locations))
	for _, location := range locations {
		names = append(names, location.Name)
	}
	return names
}

// openingHours converts "9:00 AM - 6:00 PM" rows into 24 hour specs.
// Closed days and rows that do not parse are left out.
func openingHours(hours []site.Hours) []seo.OpeningHours {
	out := make([]seo.OpeningHours, 0, len(hours))
	for _, row := range hours {
		if row.Closed {
			continue
		}

		opens, closes, ok := strings.Cut(row.Open, "-")
		if !ok {
			continue
		}
		openAt, err := time.Parse("3:04 PM", strings.TrimSpace(opens))
		if err != nil {
			continue
		}
		closeAt, err := time.Parse("3:04 PM", strings.TrimSpace(closes))
		if err != nil {
			continue
		}

		out = append(out, seo.OpeningHours{
			Day:   row.Day,
			Opens: openAt.Format("15:04"),
			Close: closeAt.Format("15:04"),
		})
	}
	return out
}
