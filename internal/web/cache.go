package web

import (
	"besthair/framework/httpserver"
	"besthair/internal/config"
)

const StaticPrefix = "/static/"

// cachePolicies maps the configured policies onto the server. Sitemap and
// robots follow the HTML policy; health and error responses are never cached.
func cachePolicies(cfg config.Config) httpserver.CachePolicies {
	return httpserver.CachePolicies{
		HTML:   cfg.CacheHTML,
		Static: cfg.CacheStatic,
		Files:  cfg.CacheHTML,
		Health: "no-store",
		Error:  "no-store",
	}
}
