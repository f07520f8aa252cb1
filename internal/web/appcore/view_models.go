package appcore

import (
	"html/template"
	"strings"

	"besthair/internal/catalog"
	"besthair/internal/seo"
	"besthair/internal/site"
)

// LayoutView is implemented by every page view model.
type LayoutView interface {
	LayoutPage() Page
}

// Page carries what the shared layout needs: head metadata, structured data
// and the footer listings.
type Page struct {
	Meta            seo.Meta
	Path            string
	Profile         site.Profile
	FooterServices  []catalog.Service
	FooterLocations []catalog.Location
	JSONLD          []template.JS
	Year            int
	// Years is how long the business has been trading.
	Years int
}

func (p Page) LayoutPage() Page {
	return p
}

// NavClass marks the header link of the section the page belongs to.
func (p Page) NavClass(section string) string {
	active := p.Path == section
	if section != "/" && strings.HasPrefix(p.Path, section+"/") {
		active = true
	}
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

// Card is a linked tile with an image, used by service listings.
type Card struct {
	Title       string
	Description string
	Href        string
	Image       string
}

type Link struct {
	Label string
	Href  string
}

type HomeView struct {
	Page
	HeroImage    string
	Services     []Card
	Locations    []catalog.Location
	Testimonials []site.Testimonial
}

type AboutView struct {
	Page
	HeroImage string
	Team      []site.Member
}

type ContactView struct {
	Page
}

type ServicesView struct {
	Page
	Services []Card
}

type ServiceView struct {
	Page
	Service   catalog.Service
	Content   catalog.ServiceContent
	HeroImage string
	AreaLinks []Link
	Related   []Card
}

type LocationsView struct {
	Page
	Locations []catalog.Location
}

type LocationView struct {
	Page
	Location  catalog.Location
	HeroImage string
	Services  []Card
	Nearby    []Link
}

type CombinedView struct {
	Page
	Service   catalog.Service
	Location  catalog.Location
	HeroImage string
	Related   []Link
	Nearby    []Link
	FAQs      []catalog.FAQ
}

type BlogView struct {
	Page
	Posts []catalog.BlogPost
}

type PostView struct {
	Page
	Post    catalog.BlogPost
	Body    template.HTML
	CodeCSS template.CSS
	Related []catalog.BlogPost
}

type NotFoundView struct {
	Page
	RequestPath string
}
