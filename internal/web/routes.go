package web

import (
	"besthair/framework"
	"besthair/internal/routes"
	"besthair/internal/web/appcore"
	"besthair/internal/web/pages"
)

type appContext = *appcore.Context

// Handlers is the site route table. Registration order is the order static
// paths are generated in.
func Handlers() []framework.RouteHandler[appContext] {
	return []framework.RouteHandler[appContext]{
		fixedPage[appcore.HomeView]("/", appcore.LoadHomePage, pages.Home),
		fixedPage[appcore.AboutView]("/about", appcore.LoadAboutPage, pages.About),
		fixedPage[appcore.ContactView]("/contact", appcore.LoadContactPage, pages.Contact),
		fixedPage[appcore.ServicesView]("/services", appcore.LoadServicesPage, pages.Services),
		fixedPage[appcore.LocationsView]("/locations", appcore.LoadLocationsPage, pages.Locations),
		fixedPage[appcore.BlogView]("/blog", appcore.LoadBlogPage, pages.Blog),
		slugPage[appcore.ServiceView]("/services/[service]", "service", routes.FamilyService, appcore.LoadServicePage, pages.Service),
		slugPage[appcore.LocationView]("/locations/[location]", "location", routes.FamilyLocation, appcore.LoadLocationPage, pages.Location),
		slugPage[appcore.CombinedView]("/[slug]", "slug", routes.FamilyCombined, appcore.LoadCombinedPage, pages.Combined),
		slugPage[appcore.PostView]("/blog/[slug]", "slug", routes.FamilyBlog, appcore.LoadBlogPostPage, pages.Post),
	}
}

func fixedPage[VM appcore.LayoutView](
	pattern string,
	load framework.PageLoader[appContext, framework.EmptyParams, VM],
	render framework.PageRenderer[VM],
) framework.RouteHandler[appContext] {
	return framework.PageOnlyRouteHandler[appContext, framework.EmptyParams, VM]{
		Page: framework.PageModule[appContext, framework.EmptyParams, VM]{
			Pattern:     pattern,
			ParseParams: framework.ExactPath(pattern),
			Load:        load,
			Render:      render,
			Layouts:     []framework.LayoutRenderer[VM]{pages.Layout[VM]},
		},
	}
}

// slugPage serves a single-wildcard pattern and pre-renders every path of
// family.
func slugPage[VM appcore.LayoutView](
	pattern string,
	param string,
	family routes.Family,
	load framework.PageLoader[appContext, framework.SlugParams, VM],
	render framework.PageRenderer[VM],
) framework.RouteHandler[appContext] {
	return framework.PageOnlyRouteHandler[appContext, framework.SlugParams, VM]{
		Page: framework.PageModule[appContext, framework.SlugParams, VM]{
			Pattern:     pattern,
			ParseParams: framework.SlugParam(pattern, param),
			Load:        load,
			Render:      render,
			Layouts:     []framework.LayoutRenderer[VM]{pages.Layout[VM]},
			StaticPaths: func(appCtx appContext) ([]string, error) {
				return routes.PathsOf(appCtx.Routes().Family(family)), nil
			},
		},
	}
}
