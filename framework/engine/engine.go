package engine

import (
	"errors"
	"fmt"
	"net/http"

	"besthair/framework"
	"besthair/framework/router"
	"github.com/a-h/templ"
)

type Config[C interface{}] struct {
	AppContext C
	Handlers   []framework.RouteHandler[C]

	RenderPage func(r *http.Request, w http.ResponseWriter, route string, component templ.Component) error

	IsNotFoundError   func(err error) bool
	HandleNotFound    func(w http.ResponseWriter, r *http.Request, notFoundContext framework.NotFoundContext)
	HandleServerError func(w http.ResponseWriter, r *http.Request, err error)
}

// Engine dispatches requests to route handlers. Handlers are tried in
// router precedence order, so static routes win over wildcard ones.
type Engine[C interface{}] struct {
	appContext C
	handlers   []framework.RouteHandler[C]
	byPattern  map[string]framework.RouteHandler[C]
	registered []string
	router     *router.AppRouter

	renderPage func(r *http.Request, w http.ResponseWriter, route string, component templ.Component) error

	isNotFound  func(err error) bool
	notFound    func(w http.ResponseWriter, r *http.Request, notFoundContext framework.NotFoundContext)
	serverError func(w http.ResponseWriter, r *http.Request, err error)
}

func New[C interface{}](cfg Config[C]) (*Engine[C], error) {
	if cfg.RenderPage == nil {
		return nil, errors.New("render page callback is required")
	}
	if len(cfg.Handlers) == 0 {
		return nil, errors.New("at least one route handler is required")
	}

	patterns := make([]string, 0, len(cfg.Handlers))
	byPattern := make(map[string]framework.RouteHandler[C], len(cfg.Handlers))
	for _, handler := range cfg.Handlers {
		pattern, err := router.NormalizePattern(handler.RoutePattern())
		if err != nil {
			return nil, err
		}
		if _, exists := byPattern[pattern]; exists {
			return nil, fmt.Errorf("duplicate route pattern %q", pattern)
		}
		byPattern[pattern] = handler
		patterns = append(patterns, pattern)
	}

	appRouter, err := router.NewAppRouter(patterns...)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	ordered := make([]framework.RouteHandler[C], 0, len(cfg.Handlers))
	for _, pattern := range appRouter.Patterns() {
		ordered = append(ordered, byPattern[pattern])
	}

	isNotFound := cfg.IsNotFoundError
	if isNotFound == nil {
		isNotFound = func(error) bool { return false }
	}

	notFound := cfg.HandleNotFound
	if notFound == nil {
		notFound = func(w http.ResponseWriter, r *http.Request, _ framework.NotFoundContext) {
			http.NotFound(w, r)
		}
	}

	serverError := cfg.HandleServerError
	if serverError == nil {
		serverError = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return &Engine[C]{
		appContext:  cfg.AppContext,
		handlers:    ordered,
		byPattern:   byPattern,
		registered:  patterns,
		router:      appRouter,
		renderPage:  cfg.RenderPage,
		isNotFound:  isNotFound,
		notFound:    notFound,
		serverError: serverError,
	}, nil
}

func (engine *Engine[C]) ServeRoute(w http.ResponseWriter, r *http.Request) bool {
	match, ok := engine.router.Match(r.URL.Path)
	if !ok {
		return false
	}

	if handler, ok := engine.byPattern[match.ID]; ok && handler.TryServe(engine, w, r) {
		return true
	}

	for _, handler := range engine.handlers {
		if handler.TryServe(engine, w, r) {
			return true
		}
	}

	return false
}

// Patterns lists route patterns in match precedence order.
func (engine *Engine[C]) Patterns() []string {
	return engine.router.Patterns()
}

// StaticPaths collects the pre-render paths of every handler in
// registration order. A path that would be served by a different route than
// the one that listed it is an error.
func (engine *Engine[C]) StaticPaths() ([]string, error) {
	seen := make(map[string]string)
	paths := make([]string, 0, len(engine.handlers))

	for _, pattern := range engine.registered {
		handlerPaths, err := engine.byPattern[pattern].StaticPaths(engine.appContext)
		if err != nil {
			return nil, err
		}

		for _, path := range handlerPaths {
			match, ok := engine.router.Match(path)
			if !ok || match.ID != pattern {
				return nil, fmt.Errorf("static path %q of route %q is not served by that route", path, pattern)
			}
			if owner, exists := seen[path]; exists {
				return nil, fmt.Errorf("static path %q listed by %q and %q", path, owner, pattern)
			}
			seen[path] = pattern
			paths = append(paths, path)
		}
	}

	return paths, nil
}

func (engine *Engine[C]) AppContext() C {
	return engine.appContext
}

func (engine *Engine[C]) RenderPage(
	r *http.Request,
	w http.ResponseWriter,
	route string,
	component templ.Component,
) error {
	return engine.renderPage(r, w, route, component)
}

func (engine *Engine[C]) IsNotFound(err error) bool {
	return engine.isNotFound(err)
}

func (engine *Engine[C]) RespondNotFound(
	w http.ResponseWriter,
	r *http.Request,
	notFoundContext framework.NotFoundContext,
) {
	engine.notFound(w, r, notFoundContext)
}

func (engine *Engine[C]) RespondServerError(w http.ResponseWriter, r *http.Request, err error) {
	engine.serverError(w, r, err)
}
