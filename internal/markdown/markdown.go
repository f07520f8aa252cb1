package markdown

import (
	stdhtml "html"
	"html/template"
	"io"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	md "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Options controls link handling. Absolute links under RootURL are
// rewritten to site-relative paths and keep opening in the same tab.
type Options struct {
	RootURL string
}

const lastGoodBreakRatio = 0.8

func newParser() *parser.Parser {
	return parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
}

// ToHTML renders blog markdown. Raw HTML in the source is dropped.
func ToHTML(input string, opts Options) template.HTML {
	if strings.TrimSpace(input) == "" {
		return template.HTML("")
	}

	doc := newParser().Parse([]byte(input))
	normalizeLinks(doc, opts)

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags:          mdhtml.CommonFlags | mdhtml.SkipHTML,
		RenderNodeHook: renderNodeHook,
	})

	return template.HTML(md.Render(doc, renderer))
}

// Excerpt returns at most maxChars runes of plain text, cut on a word
// boundary where one is close enough.
func Excerpt(input string, maxChars int) string {
	if maxChars < 1 {
		return ""
	}

	clean := markdownToPlainText(input)
	if clean == "" {
		return ""
	}

	if utf8.RuneCountInString(clean) <= maxChars {
		return clean
	}

	return truncateRunes(clean, maxChars)
}

// markdownToPlainText keeps the readable text of a document. Code blocks,
// tables, images and raw HTML contribute nothing; link text is kept.
func markdownToPlainText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	doc := newParser().Parse([]byte(input))

	var out strings.Builder
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch typedNode := node.(type) {
		case *ast.CodeBlock, *ast.Table, *ast.Image, *ast.HorizontalRule,
			*ast.HTMLBlock, *ast.HTMLSpan, *ast.Math, *ast.MathBlock:
			return ast.SkipChildren
		case *ast.Text:
			out.Write(typedNode.Literal)
		case *ast.Code:
			out.Write(typedNode.Literal)
		case *ast.Hardbreak, *ast.Softbreak:
			out.WriteByte(' ')
		case *ast.Paragraph, *ast.Heading, *ast.ListItem:
			if !entering {
				out.WriteByte(' ')
			}
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(out.String()), " ")
}

func truncateRunes(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	truncateAt := maxChars
	minBreak := int(float64(maxChars) * lastGoodBreakRatio)
	for idx := maxChars - 1; idx >= minBreak; idx-- {
		if unicode.IsSpace(runes[idx]) {
			truncateAt = idx
			break
		}
	}

	truncated := strings.TrimSpace(string(runes[:truncateAt]))
	if truncated == "" {
		truncated = strings.TrimSpace(string(runes[:maxChars]))
	}

	return truncated + "..."
}

func normalizeLinks(doc ast.Node, opts Options) {
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		link, ok := node.(*ast.Link)
		if !ok {
			return ast.GoToNext
		}

		normalizedHref, isCurrentWebsite := normalizeCurrentWebsiteLink(string(link.Destination), opts.RootURL)
		link.Destination = []byte(normalizedHref)
		link.AdditionalAttributes = applyLinkAttributes(link.AdditionalAttributes, isCurrentWebsite)

		return ast.GoToNext
	})
}

func renderNodeHook(writer io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	if !entering {
		return ast.GoToNext, false
	}

	switch typedNode := node.(type) {
	case *ast.CodeBlock:
		renderCodeBlock(writer, typedNode)
		return ast.SkipChildren, true
	case *ast.Code:
		renderInlineCode(writer, typedNode)
		return ast.SkipChildren, true
	default:
		return ast.GoToNext, false
	}
}

func renderCodeBlock(writer io.Writer, block *ast.CodeBlock) {
	code := string(block.Literal)
	lexer := pickLexer(codeLanguage(block.Info), code)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		renderPlainCodeBlock(writer, code)
		return
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(writer, styles.Fallback, iterator); err != nil {
		renderPlainCodeBlock(writer, code)
	}
}

func renderInlineCode(writer io.Writer, code *ast.Code) {
	_, _ = io.WriteString(writer, `<code class="inline-code">`)
	_, _ = io.WriteString(writer, stdhtml.EscapeString(string(code.Literal)))
	_, _ = io.WriteString(writer, `</code>`)
}

func renderPlainCodeBlock(writer io.Writer, code string) {
	_, _ = io.WriteString(writer, `<pre class="chroma"><code>`)
	_, _ = io.WriteString(writer, stdhtml.EscapeString(code))
	_, _ = io.WriteString(writer, `</code></pre>`)
}

func pickLexer(language string, code string) chroma.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}

	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}

	return lexers.Fallback
}

func codeLanguage(info []byte) string {
	trimmed := strings.TrimSpace(string(info))
	if trimmed == "" {
		return ""
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(fields[0])
}

func normalizeCurrentWebsiteLink(href string, rootURL string) (string, bool) {
	if !isWebLink(href) {
		return href, true
	}

	rootURL = strings.TrimRight(rootURL, "/")
	if rootURL == "" || !strings.HasPrefix(href, rootURL) {
		return href, false
	}
	if rest := href[len(rootURL):]; rest != "" && !strings.ContainsAny(rest[:1], "/?#") {
		return href, false
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href, true
	}

	normalized := parsed.Path
	if normalized == "" {
		normalized = "/"
	}
	if parsed.RawQuery != "" {
		normalized += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		normalized += "#" + parsed.Fragment
	}

	return normalized, true
}

func applyLinkAttributes(existing []string, isCurrentWebsite bool) []string {
	attrs := make([]string, 0, len(existing)+2)
	for _, attr := range existing {
		normalized := strings.ToLower(strings.TrimSpace(attr))
		if strings.HasPrefix(normalized, "target=") || strings.HasPrefix(normalized, "rel=") {
			continue
		}
		attrs = append(attrs, attr)
	}

	if !isCurrentWebsite {
		attrs = append(attrs, `target="_blank"`, `rel="noopener noreferrer"`)
	}

	return attrs
}

// isWebLink reports whether href leaves the page for another origin.
// Relative paths, fragments and mailto/tel links do not.
func isWebLink(href string) bool {
	parsed, err := url.Parse(href)
	if err != nil {
		return true
	}
	if parsed.Host != "" {
		return true
	}

	switch strings.ToLower(parsed.Scheme) {
	case "":
		return false
	case "mailto", "tel":
		return false
	default:
		return true
	}
}
