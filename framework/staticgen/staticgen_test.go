package staticgen

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
)

func TestOutputFile(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/", expected: "index.html"},
		{path: "/about", expected: "about/index.html"},
		{path: "/about/", expected: "about/index.html"},
		{path: "/services/bridal-hair", expected: "services/bridal-hair/index.html"},
		{path: "/sitemap.xml", expected: "sitemap.xml"},
		{path: "/robots.txt", expected: "robots.txt"},
	}

	for _, tc := range tests {
		got, err := OutputFile(tc.path)
		if err != nil {
			t.Fatalf("output file for %q: %v", tc.path, err)
		}
		if got != tc.expected {
			t.Fatalf("output file for %q: expected %q, got %q", tc.path, tc.expected, got)
		}
	}

	for _, invalid := range []string{"about", "/a/../b", ""} {
		if _, err := OutputFile(invalid); err == nil {
			t.Fatalf("expected error for %q", invalid)
		}
	}
}

func TestGenerateWritesPagesFilesAndAssets(t *testing.T) {
	outDir := t.TempDir()
	var inFlight atomic.Int32
	var maxInFlight atomic.Int32

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			seen := maxInFlight.Load()
			if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
				break
			}
		}

		if r.URL.Path == "/missing-page" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("page:" + r.URL.Path))
	})

	result, err := Generate(context.Background(), Config{
		Handler:      handler,
		Paths:        []string{"/", "/about", "/bridal-hair-in-broadbeach", "/sitemap.xml"},
		OutDir:       outDir,
		Concurrency:  2,
		NotFoundPath: "/missing-page",
		Assets:       fstest.MapFS{"site.css": {Data: []byte("body{}")}, "img/logo.svg": {Data: []byte("<svg/>")}},
		AssetsPrefix: "/static/",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Pages != 4 || result.Assets != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if maxInFlight.Load() > 2 {
		t.Fatalf("expected at most 2 concurrent renders, saw %d", maxInFlight.Load())
	}

	expected := map[string]string{
		"index.html":                           "page:/",
		"about/index.html":                     "page:/about",
		"bridal-hair-in-broadbeach/index.html": "page:/bridal-hair-in-broadbeach",
		"sitemap.xml":                          "page:/sitemap.xml",
		"static/site.css":                      "body{}",
		"static/img/logo.svg":                  "<svg/>",
	}
	for file, body := range expected {
		data, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(file)))
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		if string(data) != body {
			t.Fatalf("%s: expected %q, got %q", file, body, string(data))
		}
	}

	notFound, err := os.ReadFile(filepath.Join(outDir, NotFoundFile))
	if err != nil {
		t.Fatalf("read 404 page: %v", err)
	}
	if !strings.Contains(string(notFound), "404 page not found") {
		t.Fatalf("unexpected 404 page body %q", string(notFound))
	}
}

func TestGenerateFailsOnNonOKResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	_, err := Generate(context.Background(), Config{
		Handler: handler,
		Paths:   []string{"/", "/broken"},
		OutDir:  t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected build failure")
	}
	if !strings.Contains(err.Error(), "/broken") {
		t.Fatalf("expected error to name the failing path, got %v", err)
	}
}

func TestGenerateRejectsCollidingPaths(t *testing.T) {
	_, err := Generate(context.Background(), Config{
		Handler: http.NotFoundHandler(),
		Paths:   []string{"/about", "/about/"},
		OutDir:  t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected collision error")
	}
}
