package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v for a <script type="application/ld+json"> block. The
// encoder escapes <, > and &, so the output cannot close the script element.
// It returns an empty value on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

type Business struct {
	Name      string
	URL       string
	Phone     string
	Email     string
	Image     string
	Region    string
	AreaNames []string
	Hours     []OpeningHours
}

type OpeningHours struct {
	Day   string
	Opens string
	Close string
}

// HairSalon builds the schema.org HairSalon payload for the business.
func HairSalon(b Business) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "HairSalon",
		"name":     b.Name,
	}
	if b.URL != "" {
		m["url"] = b.URL
		m["@id"] = b.URL + "#business"
	}
	if b.Phone != "" {
		m["telephone"] = b.Phone
	}
	if b.Email != "" {
		m["email"] = b.Email
	}
	if b.Image != "" {
		m["image"] = b.Image
	}
	if b.Region != "" {
		m["address"] = map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": b.Region,
			"addressRegion":   "QLD",
			"addressCountry":  "AU",
		}
	}
	if len(b.AreaNames) > 0 {
		areas := make([]map[string]any, 0, len(b.AreaNames))
		for _, name := range b.AreaNames {
			areas = append(areas, map[string]any{"@type": "Place", "name": name})
		}
		m["areaServed"] = areas
	}
	if len(b.Hours) > 0 {
		specs := make([]map[string]any, 0, len(b.Hours))
		for _, h := range b.Hours {
			specs = append(specs, map[string]any{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": h.Day,
				"opens":     h.Opens,
				"closes":    h.Close,
			})
		}
		m["openingHoursSpecification"] = specs
	}
	return m
}

// Service describes one service offered in an area.
func Service(name, description, url, providerURL, area string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        name,
		"serviceType": name,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if providerURL != "" {
		m["provider"] = map[string]any{"@id": providerURL + "#business"}
	}
	if area != "" {
		m["areaServed"] = map[string]any{"@type": "Place", "name": area}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

type Question struct {
	Question string
	Answer   string
}

func FAQPage(questions []Question) map[string]any {
	entities := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  q.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  q.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// BlogPosting returns a BlogPosting payload. datePublished is ISO 8601.
func BlogPosting(headline, description, url, imageURL, authorName, datePublished, publisher string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "BlogPosting",
		"headline": headline,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
		m["mainEntityOfPage"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Person", "name": authorName}
	}
	if datePublished != "" {
		m["datePublished"] = datePublished
	}
	if publisher != "" {
		m["publisher"] = map[string]any{"@type": "Organization", "name": publisher}
	}
	return m
}
