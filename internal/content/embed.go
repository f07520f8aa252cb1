// Package content holds the datasets the site is built from: services,
// locations, blog posts and the business profile.
package content

import (
	"embed"
	"io/fs"
)

//go:embed services.yaml locations.yaml site.toml blog/*.md
var files embed.FS

// FS returns the embedded dataset tree.
func FS() fs.FS {
	return files
}
