package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapEntry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders a sitemaps.org document with one <url> per entry, in order.
func Sitemap(baseURL string, entries []SitemapEntry) ([]byte, error) {
	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("sitemap: base url is required")
	}

	set := sitemapURLSet{
		XMLNS: sitemapNamespace,
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, entry := range entries {
		item := sitemapURL{
			Loc:        AbsoluteURL(base, entry.Path),
			ChangeFreq: entry.ChangeFreq,
		}
		if !entry.LastMod.IsZero() {
			item.LastMod = entry.LastMod.UTC().Format("2006-01-02")
		}
		if entry.Priority > 0 {
			item.Priority = fmt.Sprintf("%.1f", entry.Priority)
		}
		set.URLs = append(set.URLs, item)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// Robots allows every crawler and points at the sitemap.
func Robots(baseURL string) []byte {
	lines := []string{
		"User-agent: *",
		"Allow: /",
	}

	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if base != "" {
		lines = append(lines, fmt.Sprintf("Sitemap: %s/sitemap.xml", base))
	}

	return []byte(strings.Join(lines, "\n") + "\n")
}
