package web

import (
	"testing"

	"besthair/internal/config"
)

func TestCachePoliciesFollowConfig(t *testing.T) {
	policies := cachePolicies(config.Config{
		CacheHTML:   "public, max-age=60",
		CacheStatic: "public, max-age=86400",
	})

	if policies.HTML != "public, max-age=60" {
		t.Fatalf("expected html policy from config, got %q", policies.HTML)
	}
	if policies.Files != policies.HTML {
		t.Fatalf("expected file routes to share the html policy, got %q", policies.Files)
	}
	if policies.Static != "public, max-age=86400" {
		t.Fatalf("expected static policy from config, got %q", policies.Static)
	}
	if policies.Health != "no-store" || policies.Error != "no-store" {
		t.Fatalf("expected uncached health and error responses, got %q and %q", policies.Health, policies.Error)
	}
}
