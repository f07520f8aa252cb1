package staticgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

// NotFoundFile is written when Config.NotFoundPath is set.
const NotFoundFile = "404.html"

type Config struct {
	Handler     http.Handler
	Paths       []string
	OutDir      string
	Concurrency int

	// NotFoundPath is rendered once more expecting a 404 and stored as 404.html.
	NotFoundPath string

	Assets       fs.FS
	AssetsPrefix string

	Logger *zap.Logger
}

type Result struct {
	Pages  int
	Assets int
}

// Generate renders every path through Handler and writes the responses below
// OutDir. "/" becomes index.html, "/about" becomes about/index.html and a path
// with an extension such as "/sitemap.xml" is written as is. Any response
// other than 200 fails the build.
func Generate(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Handler == nil {
		return Result{}, errors.New("handler is required")
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return Result{}, errors.New("output directory is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	targets := make(map[string]string, len(cfg.Paths))
	for _, requestPath := range cfg.Paths {
		file, err := OutputFile(requestPath)
		if err != nil {
			return Result{}, err
		}
		if other, exists := targets[file]; exists {
			return Result{}, fmt.Errorf("paths %q and %q both write %s", other, requestPath, file)
		}
		targets[file] = requestPath
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	var pages atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for _, requestPath := range cfg.Paths {
		group.Go(func() error {
			body, err := render(groupCtx, cfg.Handler, requestPath, http.StatusOK)
			if err != nil {
				return err
			}

			file, _ := OutputFile(requestPath)
			if err := writeFile(cfg.OutDir, file, body); err != nil {
				return fmt.Errorf("write %q: %w", requestPath, err)
			}

			pages.Add(1)
			logger.Debug("page written", zap.String("path", requestPath), zap.String("file", file))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	if cfg.NotFoundPath != "" {
		body, err := render(ctx, cfg.Handler, cfg.NotFoundPath, http.StatusNotFound)
		if err != nil {
			return Result{}, err
		}
		if err := writeFile(cfg.OutDir, NotFoundFile, body); err != nil {
			return Result{}, fmt.Errorf("write %s: %w", NotFoundFile, err)
		}
	}

	assets := 0
	if cfg.Assets != nil {
		copied, err := copyAssets(cfg.Assets, filepath.Join(cfg.OutDir, filepath.FromSlash(strings.Trim(cfg.AssetsPrefix, "/"))))
		if err != nil {
			return Result{}, fmt.Errorf("copy assets: %w", err)
		}
		assets = copied
	}

	result := Result{Pages: int(pages.Load()), Assets: assets}
	logger.Info("static build complete",
		zap.Int("pages", result.Pages),
		zap.Int("assets", result.Assets),
		zap.String("out_dir", cfg.OutDir),
	)
	return result, nil
}

// OutputFile maps a request path to its slash-separated file below the
// output directory.
func OutputFile(requestPath string) (string, error) {
	if !strings.HasPrefix(requestPath, "/") {
		return "", fmt.Errorf("path %q must start with /", requestPath)
	}

	cleaned := path.Clean(requestPath)
	if cleaned != strings.TrimSuffix(requestPath, "/") && cleaned != requestPath {
		return "", fmt.Errorf("path %q is not clean", requestPath)
	}
	if cleaned == "/" {
		return "index.html", nil
	}

	rel := strings.TrimPrefix(cleaned, "/")
	if path.Ext(path.Base(rel)) != "" {
		return rel, nil
	}
	return rel + "/index.html", nil
}

func render(ctx context.Context, handler http.Handler, requestPath string, wantStatus int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %q: %w", requestPath, err)
	}

	rec := newResponseBuffer()
	handler.ServeHTTP(rec, req)
	status := rec.status
	if !rec.wroteHeader {
		status = http.StatusOK
	}
	if status != wantStatus {
		return nil, fmt.Errorf("render %q: status %d, want %d", requestPath, status, wantStatus)
	}

	return rec.body.Bytes(), nil
}

func writeFile(outDir string, file string, body []byte) error {
	target := filepath.Join(outDir, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, body, 0o644)
}

func copyAssets(assets fs.FS, targetDir string) (int, error) {
	copied := 0
	err := fs.WalkDir(assets, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}
		if err := writeFile(targetDir, name, data); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

// responseBuffer captures a handler response in memory.
type responseBuffer struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: make(http.Header)}
}

func (b *responseBuffer) Header() http.Header {
	return b.header
}

func (b *responseBuffer) WriteHeader(status int) {
	if b.wroteHeader {
		return
	}
	b.status = status
	b.wroteHeader = true
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	b.WriteHeader(http.StatusOK)
	return b.body.Write(p)
}
