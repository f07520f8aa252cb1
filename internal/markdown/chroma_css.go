package markdown

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

type codeTheme struct {
	media string
	style string
}

var codeThemes = []codeTheme{
	{media: "(prefers-color-scheme: light)", style: "github"},
	{media: "(prefers-color-scheme: dark)", style: "monokai"},
}

// ChromaCSS is the stylesheet for highlighted code blocks, one media block
// per colour scheme.
var ChromaCSS = sync.OnceValue(func() template.CSS {
	var out strings.Builder
	for _, theme := range codeThemes {
		css, err := themeCSS(theme.style)
		if err != nil || css == "" {
			continue
		}
		out.WriteString("@media " + theme.media + " {\n")
		out.WriteString(css)
		out.WriteString("}\n")
	}
	return template.CSS(out.String())
})

func themeCSS(name string) (string, error) {
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}

	var buffer bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buffer, style); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
