package httpserver

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"besthair/framework"
	"besthair/framework/engine"
	"besthair/internal/logging"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const defaultCacheControlPolicy = "public, max-age=3600, s-maxage=3600"
const defaultHealthPath = "/healthz"
const defaultHealthBody = "ok"
const defaultStaticPrefix = "/static/"
const defaultMetricsPath = "/metrics"

// StaticMount serves assets from Dir when set, otherwise from FS.
type StaticMount struct {
	URLPrefix string
	Dir       string
	FS        fs.FS
}

type CachePolicies struct {
	HTML   string
	Static string
	Files  string
	Health string
	Error  string
}

func DefaultCachePolicies() CachePolicies {
	return CachePolicies{
		HTML:   defaultCacheControlPolicy,
		Static: defaultCacheControlPolicy,
		Files:  defaultCacheControlPolicy,
		Health: "no-store",
		Error:  "no-store",
	}
}

// FileRoute serves a generated non-HTML document such as sitemap.xml.
type FileRoute struct {
	Path        string
	ContentType string
	Render      func(r *http.Request) ([]byte, error)
}

type Config[C interface{}] struct {
	AppContext C
	Handlers   []framework.RouteHandler[C]

	Static StaticMount
	Files  []FileRoute

	CachePolicies CachePolicies

	IsNotFoundError func(err error) bool
	NotFoundPage    func(notFoundContext framework.NotFoundContext) templ.Component

	Logger      *zap.Logger
	Middlewares []func(http.Handler) http.Handler

	Metrics     *Metrics
	MetricsPath string

	HealthPath string
	HealthBody string
}

type Server[C interface{}] struct {
	cachePolicies CachePolicies
	notFoundPage  func(notFoundContext framework.NotFoundContext) templ.Component
	logger        *zap.Logger
	metrics       *Metrics
	healthBody    string
	files         []FileRoute
	staticPrefix  string

	routeEngine *engine.Engine[C]
	handler     http.Handler
}

func New[C interface{}](cfg Config[C]) (*Server[C], error) {
	healthBody := strings.TrimSpace(cfg.HealthBody)
	if healthBody == "" {
		healthBody = defaultHealthBody
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &Server[C]{
		cachePolicies: withDefaultPolicies(cfg.CachePolicies),
		notFoundPage:  cfg.NotFoundPage,
		logger:        logger,
		metrics:       cfg.Metrics,
		healthBody:    healthBody,
		files:         cfg.Files,
	}

	routeEngine, err := engine.New(engine.Config[C]{
		AppContext:        cfg.AppContext,
		Handlers:          cfg.Handlers,
		RenderPage:        srv.renderPage,
		IsNotFoundError:   cfg.IsNotFoundError,
		HandleNotFound:    srv.handleNotFound,
		HandleServerError: srv.handleServerError,
	})
	if err != nil {
		return nil, fmt.Errorf("create route engine: %w", err)
	}
	srv.routeEngine = routeEngine

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP)
	router.Use(cfg.Middlewares...)
	router.Use(middleware.Recoverer, middleware.GetHead)

	router.Get(normalizePath(cfg.HealthPath, defaultHealthPath), srv.handleHealth)

	if cfg.Metrics != nil {
		router.Method(http.MethodGet, normalizePath(cfg.MetricsPath, defaultMetricsPath), cfg.Metrics.Handler())
	}

	seenFiles := make(map[string]bool, len(cfg.Files))
	for _, file := range cfg.Files {
		if !strings.HasPrefix(file.Path, "/") || file.Render == nil {
			return nil, fmt.Errorf("invalid file route %q", file.Path)
		}
		if seenFiles[file.Path] {
			return nil, fmt.Errorf("duplicate file route %q", file.Path)
		}
		seenFiles[file.Path] = true
		router.Get(file.Path, srv.fileHandler(file))
	}

	if static, ok := staticFileSystem(cfg.Static); ok {
		prefix := normalizeStaticPrefix(cfg.Static.URLPrefix)
		srv.staticPrefix = prefix
		files := http.StripPrefix(prefix, http.FileServer(static))
		router.Handle(prefix+"*", withCachePolicy(srv.cachePolicies.Static, files))
	}

	router.Get("/", srv.handleRoute)
	router.Get("/*", srv.handleRoute)
	srv.handler = router

	return srv, nil
}

func (s *Server[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// StaticPaths lists every page path followed by every file route path.
func (s *Server[C]) StaticPaths() ([]string, error) {
	paths, err := s.routeEngine.StaticPaths()
	if err != nil {
		return nil, err
	}
	for _, file := range s.files {
		paths = append(paths, file.Path)
	}
	return paths, nil
}

// RoutePatterns lists page route patterns in match precedence order.
func (s *Server[C]) RoutePatterns() []string {
	return s.routeEngine.Patterns()
}

func (s *Server[C]) StaticPrefix() string {
	return s.staticPrefix
}

func (s *Server[C]) handleRoute(w http.ResponseWriter, r *http.Request) {
	if s.routeEngine.ServeRoute(w, r) {
		return
	}

	s.handleNotFound(w, r, framework.NotFoundContext{
		RequestPath: r.URL.Path,
		Source:      framework.NotFoundSourceUnmatchedRoute,
	})
}

func (s *Server[C]) renderPage(r *http.Request, w http.ResponseWriter, route string, component templ.Component) error {
	started := time.Now()
	err := s.renderPageWithStatus(r, w, component, http.StatusOK, s.cachePolicies.HTML)
	s.metrics.observeRender(route, started, err)
	return err
}

// renderPageWithStatus buffers the page so a failing component never leaves
// a half-written 200 response behind.
func (s *Server[C]) renderPageWithStatus(
	r *http.Request,
	w http.ResponseWriter,
	component templ.Component,
	statusCode int,
	cachePolicy string,
) error {
	var body bytes.Buffer
	if err := component.Render(r.Context(), &body); err != nil {
		return err
	}

	setCachePolicy(w, cachePolicy)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := body.WriteTo(w)
	return err
}

func (s *Server[C]) fileHandler(file FileRoute) http.HandlerFunc {
	contentType := strings.TrimSpace(file.ContentType)
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		body, err := file.Render(r)
		if err != nil {
			s.handleServerError(w, r, fmt.Errorf("render file %q: %w", file.Path, err))
			return
		}

		setCachePolicy(w, s.cachePolicies.Files)
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}
}

func (s *Server[C]) handleNotFound(
	w http.ResponseWriter,
	r *http.Request,
	notFoundContext framework.NotFoundContext,
) {
	s.metrics.observeNotFound(string(notFoundContext.Source))

	if s.notFoundPage == nil {
		setCachePolicy(w, s.cachePolicies.Error)
		http.NotFound(w, r)
		return
	}

	component := s.notFoundPage(notFoundContext)
	if component == nil {
		setCachePolicy(w, s.cachePolicies.Error)
		http.NotFound(w, r)
		return
	}
	if err := s.renderPageWithStatus(r, w, component, http.StatusNotFound, s.cachePolicies.Error); err != nil {
		s.handleServerError(w, r, fmt.Errorf("render not found page: %w", err))
	}
}

func (s *Server[C]) handleServerError(w http.ResponseWriter, r *http.Request, err error) {
	setCachePolicy(w, s.cachePolicies.Error)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	logging.FromRequest(r, s.logger).Error("server error", zap.Error(err))
}

func (s *Server[C]) handleHealth(w http.ResponseWriter, _ *http.Request) {
	setCachePolicy(w, s.cachePolicies.Health)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.healthBody))
}

func staticFileSystem(mount StaticMount) (http.FileSystem, bool) {
	if strings.TrimSpace(mount.Dir) != "" {
		return http.Dir(mount.Dir), true
	}
	if mount.FS != nil {
		return http.FS(mount.FS), true
	}
	return nil, false
}

func normalizeStaticPrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return defaultStaticPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

func normalizePath(path string, fallback string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return fallback
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func withDefaultPolicies(policies CachePolicies) CachePolicies {
	defaults := DefaultCachePolicies()
	if strings.TrimSpace(policies.HTML) == "" {
		policies.HTML = defaults.HTML
	}
	if strings.TrimSpace(policies.Static) == "" {
		policies.Static = defaults.Static
	}
	if strings.TrimSpace(policies.Files) == "" {
		policies.Files = policies.HTML
	}
	if strings.TrimSpace(policies.Health) == "" {
		policies.Health = defaults.Health
	}
	if strings.TrimSpace(policies.Error) == "" {
		policies.Error = defaults.Error
	}
	return policies
}

func setCachePolicy(w http.ResponseWriter, policy string) {
	policy = strings.TrimSpace(policy)
	if policy == "" {
		return
	}
	w.Header().Set("Cache-Control", policy)
}

func withCachePolicy(policy string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCachePolicy(w, policy)
		next.ServeHTTP(w, r)
	})
}
