package framework

import (
	"context"
	"fmt"
	"net/http"

	"besthair/framework/router"
	"github.com/a-h/templ"
)

type EmptyParams struct{}

type SlugParams struct {
	Slug string
}

type ParamsParser[P interface{}] func(path string) (P, bool)

// ExactPath accepts only request paths equal to pattern.
func ExactPath(pattern string) ParamsParser[EmptyParams] {
	return func(path string) (EmptyParams, bool) {
		params, ok := router.MatchPathPattern(pattern, path)
		return EmptyParams{}, ok && len(params) == 0
	}
}

// SlugParam extracts the wildcard called name from pattern, for example
// SlugParam("/blog/[slug]", "slug").
func SlugParam(pattern string, name string) ParamsParser[SlugParams] {
	return func(path string) (SlugParams, bool) {
		params, ok := router.MatchPathPattern(pattern, path)
		if !ok {
			return SlugParams{}, false
		}

		value, ok := params[name]
		if !ok || value == "" {
			return SlugParams{}, false
		}
		return SlugParams{Slug: value}, true
	}
}

type PageLoader[C interface{}, P interface{}, VM interface{}] func(
	ctx context.Context,
	appCtx C,
	r *http.Request,
	params P,
) (VM, error)

type PageRenderer[VM interface{}] func(view VM) templ.Component

type LayoutRenderer[VM interface{}] func(view VM, child templ.Component) templ.Component

// StaticPathsFunc lists the concrete request paths a route pre-renders.
type StaticPathsFunc[C interface{}] func(appCtx C) ([]string, error)

type PageModule[C interface{}, P interface{}, VM interface{}] struct {
	Pattern     string
	ParseParams ParamsParser[P]
	Load        PageLoader[C, P, VM]
	Render      PageRenderer[VM]
	Layouts     []LayoutRenderer[VM]
	StaticPaths StaticPathsFunc[C]
}

type RuntimeContext[C interface{}] interface {
	AppContext() C
	RenderPage(r *http.Request, w http.ResponseWriter, route string, component templ.Component) error
	IsNotFound(err error) bool
	RespondNotFound(w http.ResponseWriter, r *http.Request, notFoundContext NotFoundContext)
	RespondServerError(w http.ResponseWriter, r *http.Request, err error)
}

type NotFoundSource string

const (
	NotFoundSourcePageLoad       NotFoundSource = "page_load"
	NotFoundSourceUnmatchedRoute NotFoundSource = "unmatched_route"
)

type NotFoundContext struct {
	RequestPath         string
	MatchedRoutePattern string
	Source              NotFoundSource
}

type RouteHandler[C interface{}] interface {
	RoutePattern() string
	TryServe(runtime RuntimeContext[C], w http.ResponseWriter, r *http.Request) bool
	StaticPaths(appCtx C) ([]string, error)
}

type PageOnlyRouteHandler[C interface{}, P interface{}, VM interface{}] struct {
	Page PageModule[C, P, VM]
}

func (h PageOnlyRouteHandler[C, P, VM]) RoutePattern() string {
	return h.Page.Pattern
}

func (h PageOnlyRouteHandler[C, P, VM]) TryServe(
	runtime RuntimeContext[C],
	w http.ResponseWriter,
	r *http.Request,
) bool {
	return servePageModule(runtime, w, r, h.Page)
}

// StaticPaths falls back to the pattern itself when it has no wildcards.
func (h PageOnlyRouteHandler[C, P, VM]) StaticPaths(appCtx C) ([]string, error) {
	if h.Page.StaticPaths != nil {
		paths, err := h.Page.StaticPaths(appCtx)
		if err != nil {
			return nil, fmt.Errorf("static paths for route %q: %w", h.Page.Pattern, err)
		}
		return paths, nil
	}

	path, err := router.ExpandPattern(h.Page.Pattern, nil)
	if err != nil {
		return nil, fmt.Errorf("route %q has wildcards but no static paths", h.Page.Pattern)
	}
	return []string{path}, nil
}

func applyLayouts[VM interface{}](
	layouts []LayoutRenderer[VM],
	view VM,
	child templ.Component,
) templ.Component {
	wrapped := child
	for idx := len(layouts) - 1; idx >= 0; idx-- {
		wrapped = layouts[idx](view, wrapped)
	}
	return wrapped
}

func servePageModule[C interface{}, P interface{}, VM interface{}](
	runtime RuntimeContext[C],
	w http.ResponseWriter,
	r *http.Request,
	module PageModule[C, P, VM],
) bool {
	params, ok := module.ParseParams(r.URL.Path)
	if !ok {
		return false
	}

	view, err := module.Load(r.Context(), runtime.AppContext(), r, params)
	if err != nil {
		handleLoadError(runtime, w, r, err, module.Pattern, NotFoundSourcePageLoad)
		return true
	}

	component := applyLayouts(module.Layouts, view, module.Render(view))
	if err := runtime.RenderPage(r, w, module.Pattern, component); err != nil {
		runtime.RespondServerError(w, r, fmt.Errorf("render route %q: %w", module.Pattern, err))
	}
	return true
}

func handleLoadError[C interface{}](
	runtime RuntimeContext[C],
	w http.ResponseWriter,
	r *http.Request,
	err error,
	routePattern string,
	source NotFoundSource,
) {
	if runtime.IsNotFound(err) {
		runtime.RespondNotFound(w, r, NotFoundContext{
			RequestPath:         r.URL.Path,
			MatchedRoutePattern: routePattern,
			Source:              source,
		})
		return
	}

	runtime.RespondServerError(w, r, fmt.Errorf("load route %q: %w", routePattern, err))
}
