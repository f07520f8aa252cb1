package pages

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"besthair/framework"
	"besthair/internal/catalog"
	"besthair/internal/content"
	"besthair/internal/site"
	"besthair/internal/web/appcore"
	"github.com/a-h/templ"
)

func newAppContext(t *testing.T) *appcore.Context {
	t.Helper()

	cat, err := catalog.Load(content.FS())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	profile, err := site.Load(content.FS())
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return appcore.NewContext(cat, profile, "https://www.besthair.com.au")
}

func render(t *testing.T, component templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestCombinedPageRendersLayoutAndBody(t *testing.T) {
	appCtx := newAppContext(t)
	view, err := appcore.LoadCombinedPage(context.Background(), appCtx, httptest.NewRequest("GET", "/", nil),
		framework.SlugParams{Slug: "bridal-hair-in-coomera"})
	if err != nil {
		t.Fatalf("load combined page: %v", err)
	}

	body := render(t, Layout(view, Combined(view)))

	mustContain := []string{
		fmt.Sprintf("<strong>%d+</strong>", view.Years),
		"<title>Bridal Hair in Coomera | BestHair Gold Coast | Book Today</title>",
		`<link rel="canonical" href="https://www.besthair.com.au/bridal-hair-in-coomera">`,
		`<script type="application/ld+json">`,
		`"@type":"FAQPage"`,
		"<h1>Bridal Hair in Coomera</h1>",
		"Do you provide bridal hair to Coomera?",
		`href="tel:1300BESTHAIR"`,
		`action="mailto:info@besthair.com.au"`,
		`href="/womens-haircuts-in-coomera"`,
		`href="/bridal-hair-in-surfers-paradise"`,
		`class="nav-link"`,
	}
	for _, want := range mustContain {
		if !strings.Contains(body, want) {
			t.Fatalf("combined page missing %q", want)
		}
	}
	if strings.Contains(body, "#ZgotmplZ") {
		t.Fatalf("combined page contains a filtered URL")
	}
}

func TestServicePageMarksActiveSection(t *testing.T) {
	appCtx := newAppContext(t)
	view, err := appcore.LoadServicePage(context.Background(), appCtx, httptest.NewRequest("GET", "/", nil),
		framework.SlugParams{Slug: "mens-haircuts"})
	if err != nil {
		t.Fatalf("load service page: %v", err)
	}

	body := render(t, Layout(view, Service(view)))

	if !strings.Contains(body, `<a class="nav-link active" href="/services">Services</a>`) {
		t.Fatalf("services nav link not marked active")
	}
	if !strings.Contains(body, "We provide men&#39;s haircuts across Gold Coast:") {
		t.Fatalf("service page missing service area intro")
	}
	if !strings.Contains(body, "Do you do skin fades?") {
		t.Fatalf("service page missing FAQ")
	}
}

func TestBlogPostRendersMarkdownBody(t *testing.T) {
	appCtx := newAppContext(t)
	view, err := appcore.LoadBlogPostPage(context.Background(), appCtx, httptest.NewRequest("GET", "/", nil),
		framework.SlugParams{Slug: "summer-hair-care-gold-coast"})
	if err != nil {
		t.Fatalf("load blog post: %v", err)
	}

	body := render(t, Layout(view, Post(view)))

	if !strings.Contains(body, `<meta property="og:type" content="article">`) {
		t.Fatalf("blog post missing article og type")
	}
	if !strings.Contains(body, "<h2 id=") {
		t.Fatalf("blog post body was not rendered from markdown")
	}
	if !strings.Contains(body, "Sarah Mitchell &bull;") {
		t.Fatalf("blog post missing author byline")
	}
}

func TestEmptyBlogShowsComingSoon(t *testing.T) {
	body := render(t, Blog(appcore.BlogView{}))
	if !strings.Contains(body, "Blog Coming Soon") {
		t.Fatalf("empty blog missing placeholder")
	}
}

func TestNotFoundRendersFullDocument(t *testing.T) {
	appCtx := newAppContext(t)
	body := render(t, NotFound(appcore.NewNotFoundView(appCtx, "/nope", "")))

	for _, want := range []string{
		"<title>Page Not Found</title>",
		`<meta name="robots" content="noindex">`,
		"<code>/nope</code>",
		`href="/locations"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("not found page missing %q", want)
		}
	}
}

func TestTelHref(t *testing.T) {
	cases := map[string]string{
		"tel:1300BESTHAIR":    "tel:1300BESTHAIR",
		" tel:0755551234 ":    "tel:0755551234",
		"javascript:alert(1)": "/contact",
		"":                    "/contact",
		`tel:1"onclick`:       "/contact",
	}
	for input, want := range cases {
		if got := string(telHref(input)); got != want {
			t.Fatalf("telHref(%q): expected %q, got %q", input, want, got)
		}
	}
}
