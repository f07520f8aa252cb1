package web

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"besthair/framework"
	"besthair/framework/httpserver"
	"besthair/internal/catalog"
	"besthair/internal/config"
	"besthair/internal/content"
	"besthair/internal/logging"
	"besthair/internal/site"
	"besthair/internal/web/appcore"
	"besthair/internal/web/pages"
	"besthair/internal/web/static"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// NewAppContext loads the datasets and business profile, from ContentDir
// when it is set and from the embedded content otherwise.
func NewAppContext(cfg config.Config) (*appcore.Context, error) {
	contentFS := content.FS()
	if dir := strings.TrimSpace(cfg.ContentDir); dir != "" {
		contentFS = os.DirFS(dir)
	}

	cat, err := catalog.Load(contentFS)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	profile, err := site.Load(contentFS)
	if err != nil {
		return nil, fmt.Errorf("load site profile: %w", err)
	}

	return appcore.NewContext(cat, profile, cfg.RootURL), nil
}

// NewServer builds the site HTTP handler. registry is only used when
// metrics are enabled.
func NewServer(
	cfg config.Config,
	appCtx *appcore.Context,
	logger *zap.Logger,
	registry *prometheus.Registry,
) (*httpserver.Server[*appcore.Context], error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	middlewares := []func(http.Handler) http.Handler{logging.RequestLogger(logger)}
	if cfg.RequestTimeout > 0 {
		middlewares = append(middlewares, middleware.Timeout(cfg.RequestTimeout))
	}

	var metrics *httpserver.Metrics
	if cfg.MetricsEnabled {
		if registry == nil {
			registry = prometheus.NewRegistry()
		}
		metrics = httpserver.NewMetrics(registry)
	}

	server, err := httpserver.New(httpserver.Config[*appcore.Context]{
		AppContext:    appCtx,
		Handlers:      Handlers(),
		Static:        staticMount(cfg),
		Files:         fileRoutes(appCtx),
		CachePolicies: cachePolicies(cfg),

		IsNotFoundError: appcore.IsNotFoundError,
		NotFoundPage: func(notFoundContext framework.NotFoundContext) templ.Component {
			return pages.NotFound(appcore.NewNotFoundView(appCtx, notFoundContext.RequestPath, notFoundContext.MatchedRoutePattern))
		},

		Logger:      logger,
		Middlewares: middlewares,
		Metrics:     metrics,
		MetricsPath: cfg.MetricsPath,
	})
	if err != nil {
		return nil, fmt.Errorf("create http server: %w", err)
	}

	return server, nil
}

func staticMount(cfg config.Config) httpserver.StaticMount {
	if dir := strings.TrimSpace(cfg.StaticDir); dir != "" {
		return httpserver.StaticMount{URLPrefix: StaticPrefix, Dir: dir}
	}
	return httpserver.StaticMount{URLPrefix: StaticPrefix, FS: static.FS()}
}

// StaticAssets is the asset tree copied into a static build.
func StaticAssets(cfg config.Config) fs.FS {
	if dir := strings.TrimSpace(cfg.StaticDir); dir != "" {
		return os.DirFS(dir)
	}
	return static.FS()
}
