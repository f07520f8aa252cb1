package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// Defaults fills the Open Graph and Twitter fields that were left empty
// from the page level fields.
func (m Meta) Defaults(siteName string) Meta {
	if m.OG.Title == "" {
		m.OG.Title = m.Title
	}
	if m.OG.Description == "" {
		m.OG.Description = m.Description
	}
	if m.OG.URL == "" {
		m.OG.URL = m.Canonical
	}
	if m.OG.Type == "" {
		m.OG.Type = "website"
	}
	if m.OG.SiteName == "" {
		m.OG.SiteName = siteName
	}
	if m.OG.Locale == "" {
		m.OG.Locale = "en_AU"
	}
	if m.Twitter.Card == "" {
		m.Twitter.Card = "summary_large_image"
	}
	if m.Twitter.Image == "" {
		m.Twitter.Image = m.OG.Image
	}
	return m
}

func Keywords(values []string) string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, ", ")
}

// AbsoluteURL joins a site-relative path onto baseURL.
func AbsoluteURL(baseURL string, path string) string {
	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
