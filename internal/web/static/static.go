// Package static embeds the stylesheet served under /static/.
package static

import (
	"embed"
	"io/fs"
)

//go:embed site.css
var files embed.FS

func FS() fs.FS {
	return files
}
