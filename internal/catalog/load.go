package catalog

import (
	"errors"
	"fmt"
	stdhtml "html"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"besthair/internal/markdown"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

const (
	ServicesFile  = "services.yaml"
	LocationsFile = "locations.yaml"
	BlogDir       = "blog"

	excerptLength = 160
)

var textPolicy = bluemonday.StrictPolicy()

type servicesDocument struct {
	DefaultContent string          `yaml:"default_content"`
	Services       []serviceRecord `yaml:"services"`
}

type serviceRecord struct {
	Slug        string         `yaml:"slug"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Content     *contentRecord `yaml:"content"`
}

type contentRecord struct {
	Intro       string      `yaml:"intro"`
	WhatWeOffer string      `yaml:"what_we_offer"`
	Benefits    []string    `yaml:"benefits"`
	Process     string      `yaml:"process"`
	FAQs        []faqRecord `yaml:"faqs"`
}

type faqRecord struct {
	Q string `yaml:"q"`
	A string `yaml:"a"`
}

type locationsDocument struct {
	Locations []locationRecord `yaml:"locations"`
}

type locationRecord struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

type postFrontMatter struct {
	Slug            string   `yaml:"slug"`
	Title           string   `yaml:"title"`
	Author          string   `yaml:"author"`
	Date            string   `yaml:"date"`
	Excerpt         string   `yaml:"excerpt"`
	FeaturedImage   string   `yaml:"featured_image"`
	MetaDescription string   `yaml:"meta_description"`
	Keywords        []string `yaml:"keywords"`
}

// Load reads services.yaml, locations.yaml and blog/*.md from fsys.
// A missing blog directory yields an empty blog.
func Load(fsys fs.FS) (*Catalog, error) {
	var services servicesDocument
	if err := decodeYAML(fsys, ServicesFile, &services); err != nil {
		return nil, err
	}

	var locations locationsDocument
	if err := decodeYAML(fsys, LocationsFile, &locations); err != nil {
		return nil, err
	}

	posts, err := loadPosts(fsys)
	if err != nil {
		return nil, err
	}

	data := Data{
		Services:       make([]Service, 0, len(services.Services)),
		Locations:      make([]Location, 0, len(locations.Locations)),
		Posts:          posts,
		Content:        make(map[string]ServiceContent, len(services.Services)),
		DefaultContent: services.DefaultContent,
	}

	for _, record := range services.Services {
		service := Service{
			Slug:        record.Slug,
			Name:        record.Name,
			Description: record.Description,
		}
		data.Services = append(data.Services, service)
		if record.Content == nil {
			continue
		}

		key := strings.TrimSpace(record.Slug)
		if key == "" {
			normalized, err := segmentSlug("", record.Name)
			if err != nil {
				return nil, fmt.Errorf("%s: service %q: %w", ServicesFile, record.Name, err)
			}
			key = normalized
		}
		data.Content[strings.ToLower(key)] = record.Content.toContent()
	}

	for _, record := range locations.Locations {
		data.Locations = append(data.Locations, Location{Slug: record.Slug, Name: record.Name})
	}

	catalog, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	return catalog, nil
}

func (r *contentRecord) toContent() ServiceContent {
	faqs := make([]FAQ, 0, len(r.FAQs))
	for _, faq := range r.FAQs {
		faqs = append(faqs, FAQ{
			Question: strings.TrimSpace(faq.Q),
			Answer:   strings.TrimSpace(faq.A),
		})
	}

	benefits := make([]string, 0, len(r.Benefits))
	for _, benefit := range r.Benefits {
		if trimmed := strings.TrimSpace(benefit); trimmed != "" {
			benefits = append(benefits, trimmed)
		}
	}

	return ServiceContent{
		Intro:       strings.TrimSpace(r.Intro),
		WhatWeOffer: strings.TrimSpace(r.WhatWeOffer),
		Benefits:    benefits,
		Process:     strings.TrimSpace(r.Process),
		FAQs:        faqs,
	}
}

func decodeYAML(fsys fs.FS, name string, target interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func loadPosts(fsys fs.FS) ([]BlogPost, error) {
	entries, err := fs.ReadDir(fsys, BlogDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", BlogDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	posts := make([]BlogPost, 0, len(names))
	for _, name := range names {
		filePath := path.Join(BlogDir, name)
		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filePath, err)
		}

		post, err := parsePost(strings.TrimSuffix(name, ".md"), string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func parsePost(fileSlug string, source string) (BlogPost, error) {
	fm, body := splitFrontMatter(source)

	front := postFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return BlogPost{}, fmt.Errorf("parse front matter: %w", err)
		}
	}

	date, err := parseContentDate(front.Date)
	if err != nil {
		return BlogPost{}, err
	}

	postSlug := strings.TrimSpace(front.Slug)
	if postSlug == "" {
		postSlug = fileSlug
	}

	keywords := make([]string, 0, len(front.Keywords))
	for _, keyword := range front.Keywords {
		if cleaned := plainText(keyword); cleaned != "" {
			keywords = append(keywords, cleaned)
		}
	}

	excerpt := plainText(front.Excerpt)
	if excerpt == "" {
		excerpt = markdown.Excerpt(body, excerptLength)
	}

	return BlogPost{
		Slug:            postSlug,
		Title:           plainText(front.Title),
		Author:          plainText(front.Author),
		Date:            date,
		Content:         strings.TrimSpace(body),
		Excerpt:         excerpt,
		FeaturedImage:   strings.TrimSpace(front.FeaturedImage),
		MetaDescription: plainText(front.MetaDescription),
		Keywords:        keywords,
	}, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimPrefix(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}

	return "", input
}

func parseContentDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

// plainText strips any markup from front-matter text. The result is
// unescaped because templates escape on output.
func plainText(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return strings.TrimSpace(stdhtml.UnescapeString(textPolicy.Sanitize(value)))
}
