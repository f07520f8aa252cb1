package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"besthair/framework/httpserver"
	"besthair/internal/config"
	"besthair/internal/content"
	"besthair/internal/web/appcore"
	"github.com/prometheus/client_golang/prometheus"
)

func testConfig() config.Config {
	return config.Config{
		RootURL:        "https://www.besthair.com.au",
		CacheHTML:      "public, max-age=0, must-revalidate",
		CacheStatic:    "public, max-age=604800",
		MetricsEnabled: true,
		MetricsPath:    "/metrics",
	}
}

func newTestServer(t *testing.T) *httpserver.Server[*appcore.Context] {
	t.Helper()

	cfg := testConfig()
	appCtx, err := NewAppContext(cfg)
	if err != nil {
		t.Fatalf("new app context: %v", err)
	}

	server, err := NewServer(cfg, appCtx, nil, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server
}

func requireBody(t *testing.T, body io.Reader) string {
	t.Helper()

	content, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(content)
}

func performRequest(handler http.Handler, method string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandlerPageRoutesRenderHTML(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	cases := []struct {
		path        string
		mustContain string
	}{
		{path: "/", mustContain: "<title>BestHair - Professional Hairdressing Gold Coast | Haircuts, Colour &amp; Styling</title>"},
		{path: "/about", mustContain: "<title>About BestHair | Award-Winning Hairdressers Gold Coast</title>"},
		{path: "/contact", mustContain: "<title>Contact BestHair | Book Your Appointment | Gold Coast Hairdresser</title>"},
		{path: "/services", mustContain: "<title>Our Services | Professional Hairdressing Gold Coast | BestHair</title>"},
		{path: "/services/hair-colouring", mustContain: "<title>Hair Colouring Gold Coast | Professional Hair Services | BestHair</title>"},
		{path: "/locations", mustContain: "<title>Service Areas | Professional Hairdresser Across Gold Coast | BestHair</title>"},
		{path: "/locations/burleigh-heads", mustContain: "<title>Hairdresser Burleigh Heads | Professional Hair Services | BestHair</title>"},
		{path: "/womens-haircuts-in-broadbeach", mustContain: "<title>Women&#39;s Haircuts in Broadbeach | BestHair Gold Coast | Book Today</title>"},
		{path: "/blog", mustContain: "<title>Hair Care Tips &amp; Advice Blog | BestHair Gold Coast</title>"},
		{path: "/blog/balayage-vs-highlights", mustContain: "| BestHair Blog</title>"},
	}

	for _, tc := range cases {
		rec := performRequest(server, http.MethodGet, tc.path)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s status: expected %d, got %d", tc.path, http.StatusOK, rec.Code)
		}

		if contentType := rec.Header().Get("Content-Type"); !strings.Contains(contentType, "text/html") {
			t.Fatalf("%s content-type: expected html, got %q", tc.path, contentType)
		}
		if got := rec.Header().Get("Cache-Control"); got != "public, max-age=0, must-revalidate" {
			t.Fatalf("%s cache-control: got %q", tc.path, got)
		}

		body := requireBody(t, rec.Body)
		if !strings.Contains(body, tc.mustContain) {
			t.Fatalf("%s body missing %q", tc.path, tc.mustContain)
		}
	}
}

func TestHandlerNotFoundAndHealth(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	recHealth := performRequest(server, http.MethodGet, "/healthz")
	if recHealth.Code != http.StatusOK {
		t.Fatalf("healthz status: expected %d, got %d", http.StatusOK, recHealth.Code)
	}
	if body := strings.TrimSpace(requireBody(t, recHealth.Body)); body != "ok" {
		t.Fatalf("healthz body: expected %q, got %q", "ok", body)
	}

	missing := []struct {
		path  string
		title string
	}{
		{path: "/not-a-valid-slug", title: "Page Not Found"},
		{path: "/bridal-hair-in-broadbeach-in-coomera", title: "Page Not Found"},
		{path: "/zz-nonexistent-zz-in-broadbeach", title: "Page Not Found"},
		{path: "/services/zz-nonexistent-zz", title: "Service Not Found"},
		{path: "/locations/atlantis", title: "Location Not Found"},
		{path: "/blog/zz-nonexistent-zz", title: "Post Not Found"},
		{path: "/services/bridal-hair/extra", title: "Page Not Found"},
	}
	for _, tc := range missing {
		path := tc.path
		rec := performRequest(server, http.MethodGet, path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s status: expected %d, got %d", path, http.StatusNotFound, rec.Code)
		}
		if got := rec.Header().Get("Cache-Control"); got != "no-store" {
			t.Fatalf("%s cache-control: expected no-store, got %q", path, got)
		}
		body := requireBody(t, rec.Body)
		if !strings.Contains(body, "<title>"+tc.title+"</title>") {
			t.Fatalf("%s: expected not found title %q", path, tc.title)
		}
		if !strings.Contains(body, "<h1>"+tc.title+"</h1>") {
			t.Fatalf("%s: expected not found heading %q", path, tc.title)
		}
	}
}

func TestHandlerSitemapAndRobots(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	rec := performRequest(server, http.MethodGet, SitemapPath)
	if rec.Code != http.StatusOK {
		t.Fatalf("sitemap status: expected %d, got %d", http.StatusOK, rec.Code)
	}
	if contentType := rec.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "application/xml") {
		t.Fatalf("sitemap content-type: got %q", contentType)
	}

	body := requireBody(t, rec.Body)
	if got := strings.Count(body, "<url>"); got != 6+12+24+12*24+4 {
		t.Fatalf("sitemap url count: got %d", got)
	}
	if !strings.Contains(body, "<loc>https://www.besthair.com.au/hair-extensions-in-coolangatta</loc>") {
		t.Fatalf("sitemap missing combined route")
	}
	if !strings.Contains(body, "<lastmod>2024-11-18</lastmod>") {
		t.Fatalf("sitemap missing blog lastmod")
	}

	robots := performRequest(server, http.MethodGet, RobotsPath)
	if !strings.Contains(requireBody(t, robots.Body), "Sitemap: https://www.besthair.com.au/sitemap.xml") {
		t.Fatalf("robots missing sitemap reference")
	}
}

func TestHandlerStaticAssetsAndMetrics(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	css := performRequest(server, http.MethodGet, "/static/site.css")
	if css.Code != http.StatusOK {
		t.Fatalf("stylesheet status: expected %d, got %d", http.StatusOK, css.Code)
	}
	if got := css.Header().Get("Cache-Control"); got != "public, max-age=604800" {
		t.Fatalf("stylesheet cache-control: got %q", got)
	}

	_ = performRequest(server, http.MethodGet, "/services")
	_ = performRequest(server, http.MethodGet, "/nope-in-nowhere")

	metrics := requireBody(t, performRequest(server, http.MethodGet, "/metrics").Body)
	if !strings.Contains(metrics, `besthair_pages_rendered_total{route="/services"} 1`) {
		t.Fatalf("metrics missing rendered page counter")
	}
	if !strings.Contains(metrics, `besthair_not_found_total{source="page_load"} 1`) {
		t.Fatalf("metrics missing not found counter")
	}
}

func TestServerStaticPaths(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	paths, err := server.StaticPaths()
	if err != nil {
		t.Fatalf("static paths: %v", err)
	}

	if len(paths) != 6+12+24+12*24+4+2 {
		t.Fatalf("static path count: got %d", len(paths))
	}
	if paths[0] != "/" {
		t.Fatalf("expected home first, got %q", paths[0])
	}
	if paths[len(paths)-2] != SitemapPath || paths[len(paths)-1] != RobotsPath {
		t.Fatalf("expected file routes last, got %v", paths[len(paths)-2:])
	}

	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		if seen[path] {
			t.Fatalf("duplicate static path %q", path)
		}
		seen[path] = true
	}
}

func TestNewAppContextReadsContentDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.CopyFS(dir, content.FS()); err != nil {
		t.Fatalf("copy content: %v", err)
	}
	locations := "locations:\n  - slug: broadbeach\n    name: Broadbeach\n  - slug: coomera\n    name: Coomera\n"
	if err := os.WriteFile(filepath.Join(dir, "locations.yaml"), []byte(locations), 0o644); err != nil {
		t.Fatalf("write locations: %v", err)
	}

	cfg := testConfig()
	cfg.ContentDir = dir
	appCtx, err := NewAppContext(cfg)
	if err != nil {
		t.Fatalf("new app context: %v", err)
	}

	if got := len(appCtx.Catalog().Locations()); got != 2 {
		t.Fatalf("expected 2 locations from the content dir, got %d", got)
	}

	server, err := NewServer(cfg, appCtx, nil, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	if rec := performRequest(server, http.MethodGet, "/bridal-hair-in-coomera"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a location in the content dir, got %d", rec.Code)
	}
	if rec := performRequest(server, http.MethodGet, "/bridal-hair-in-southport"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a location missing from the content dir, got %d", rec.Code)
	}
}

func TestNewAppContextRejectsBrokenContentDir(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.ContentDir = t.TempDir()
	if _, err := NewAppContext(cfg); err == nil {
		t.Fatal("expected an error for a content dir without datasets")
	}
}
