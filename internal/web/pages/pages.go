// Package pages renders view models into HTML. Page bodies live in embedded
// html/template files and are exposed as templ components so the framework
// can compose them with the shared layout.
package pages

import (
	"context"
	"embed"
	"html/template"
	"io"
	"strings"

	"besthair/internal/routes"
	"besthair/internal/web/appcore"
	"github.com/a-h/templ"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

var funcs = template.FuncMap{
	"lower":        strings.ToLower,
	"telHref":      telHref,
	"servicePath":  routes.ServicePath,
	"locationPath": routes.LocationPath,
	"combinedPath": routes.CombinedPath,
	"blogPath":     routes.BlogPath,
}

type layoutData struct {
	appcore.Page
	Body template.HTML
}

// telHref lets tel: links through html/template, which only trusts http,
// https and mailto URLs. Anything else degrades to the contact page.
func telHref(href string) template.URL {
	href = strings.TrimSpace(href)
	if !strings.HasPrefix(href, "tel:") || strings.ContainsAny(href, "\"'<> ") {
		return template.URL("/contact")
	}
	return template.URL(href)
}

func page(name string, view any) templ.Component {
	return templ.FromGoHTML(templates.Lookup(name), view)
}

// Layout wraps child in the document shell: head metadata, JSON-LD, header
// navigation and footer.
func Layout[VM appcore.LayoutView](view VM, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := templ.ToGoHTML(ctx, child)
		if err != nil {
			return err
		}
		return templates.ExecuteTemplate(w, "layout", layoutData{Page: view.LayoutPage(), Body: body})
	})
}

func Home(view appcore.HomeView) templ.Component {
	return page("home", view)
}

func About(view appcore.AboutView) templ.Component {
	return page("about", view)
}

func Contact(view appcore.ContactView) templ.Component {
	return page("contact", view)
}

func Services(view appcore.ServicesView) templ.Component {
	return page("services", view)
}

func Service(view appcore.ServiceView) templ.Component {
	return page("service", view)
}

func Locations(view appcore.LocationsView) templ.Component {
	return page("locations", view)
}

func Location(view appcore.LocationView) templ.Component {
	return page("location", view)
}

func Combined(view appcore.CombinedView) templ.Component {
	return page("combined", view)
}

func Blog(view appcore.BlogView) templ.Component {
	return page("blog", view)
}

func Post(view appcore.PostView) templ.Component {
	return page("post", view)
}

// NotFound is a complete document, layout included.
func NotFound(view appcore.NotFoundView) templ.Component {
	return Layout(view, page("notfound", view))
}
