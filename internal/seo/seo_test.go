package seo

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetaDefaults(t *testing.T) {
	t.Parallel()

	meta := Meta{
		Title:       "Bridal Hair in Broadbeach",
		Description: "Wedding styling.",
		Canonical:   "https://www.besthair.com.au/bridal-hair-in-broadbeach",
		OG:          OpenGraph{Image: "https://images.unsplash.com/photo-1"},
	}.Defaults("BestHair")

	require.Equal(t, "Bridal Hair in Broadbeach", meta.OG.Title)
	require.Equal(t, "Wedding styling.", meta.OG.Description)
	require.Equal(t, meta.Canonical, meta.OG.URL)
	require.Equal(t, "website", meta.OG.Type)
	require.Equal(t, "BestHair", meta.OG.SiteName)
	require.Equal(t, "en_AU", meta.OG.Locale)
	require.Equal(t, "https://images.unsplash.com/photo-1", meta.Twitter.Image)

	article := Meta{Title: "x", OG: OpenGraph{Type: "article"}}.Defaults("BestHair")
	require.Equal(t, "article", article.OG.Type)
}

func TestKeywordsAndAbsoluteURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "balayage, highlights", Keywords([]string{" balayage ", "", "highlights"}))
	require.Equal(t, "", Keywords(nil))

	require.Equal(t, "https://www.besthair.com.au/", AbsoluteURL("https://www.besthair.com.au/", "/"))
	require.Equal(t, "https://www.besthair.com.au/blog", AbsoluteURL("https://www.besthair.com.au", "blog"))
	require.Equal(t, "https://www.besthair.com.au/services/bridal-hair", AbsoluteURL("https://www.besthair.com.au/", "/services/bridal-hair"))
}

func TestJSONEscapesScriptBreakout(t *testing.T) {
	t.Parallel()

	out := string(JSON(map[string]any{"name": "</script><b>"}))
	require.NotContains(t, out, "</script>")
	require.Contains(t, out, `\u003c/script\u003e`)

	require.Empty(t, string(JSON(map[string]any{"bad": make(chan int)})))
}

func TestHairSalon(t *testing.T) {
	t.Parallel()

	payload := HairSalon(Business{
		Name:      "BestHair",
		URL:       "https://www.besthair.com.au",
		Phone:     "1300 BESTHAIR",
		Region:    "Gold Coast",
		AreaNames: []string{"Broadbeach"},
		Hours:     []OpeningHours{{Day: "Monday", Opens: "09:00", Close: "18:00"}},
	})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON(payload)), &decoded))
	require.Equal(t, "HairSalon", decoded["@type"])
	require.Equal(t, "https://www.besthair.com.au#business", decoded["@id"])
	require.Len(t, decoded["areaServed"], 1)
	require.Len(t, decoded["openingHoursSpecification"], 1)
	require.NotContains(t, decoded, "email")
}

func TestBreadcrumbAndFAQ(t *testing.T) {
	t.Parallel()

	crumbs := BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://www.besthair.com.au/"},
		{Name: "Services", Item: "https://www.besthair.com.au/services"},
	})
	items := crumbs["itemListElement"].([]map[string]any)
	require.Len(t, items, 2)
	require.Equal(t, 2, items[1]["position"])

	faq := FAQPage([]Question{{Question: "How long?", Answer: "An hour."}})
	entities := faq["mainEntity"].([]map[string]any)
	require.Equal(t, "How long?", entities[0]["name"])
}

func TestBlogPostingOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	post := BlogPosting("Summer Hair", "", "https://www.besthair.com.au/blog/summer", "", "Sarah Mitchell", "2024-11-18", "BestHair")
	require.Equal(t, "BlogPosting", post["@type"])
	require.NotContains(t, post, "description")
	require.NotContains(t, post, "image")
	require.Equal(t, "2024-11-18", post["datePublished"])
}

func TestSitemap(t *testing.T) {
	t.Parallel()

	out, err := Sitemap("https://www.besthair.com.au/", []SitemapEntry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1},
		{Path: "/blog/summer-hair-care", LastMod: time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC), Priority: 0.6},
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), xml.Header))

	var decoded sitemapURLSet
	require.NoError(t, xml.Unmarshal(out, &decoded))
	require.Equal(t, sitemapNamespace, decoded.XMLNS)
	require.Len(t, decoded.URLs, 2)
	require.Equal(t, "https://www.besthair.com.au/", decoded.URLs[0].Loc)
	require.Equal(t, "1.0", decoded.URLs[0].Priority)
	require.Equal(t, "2024-11-18", decoded.URLs[1].LastMod)
	require.Equal(t, "0.6", decoded.URLs[1].Priority)

	_, err = Sitemap("  ", nil)
	require.Error(t, err)
}

func TestRobots(t *testing.T) {
	t.Parallel()

	require.Equal(t, "User-agent: *\nAllow: /\nSitemap: https://www.besthair.com.au/sitemap.xml\n", string(Robots("https://www.besthair.com.au/")))
	require.Equal(t, "User-agent: *\nAllow: /\n", string(Robots("")))
}
