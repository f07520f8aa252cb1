package appcore

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"besthair/framework"
	"besthair/internal/catalog"
	"besthair/internal/images"
	"besthair/internal/markdown"
	"besthair/internal/routes"
	"besthair/internal/seo"
)

const (
	relatedServicesLimit = 3
	nearbyLocationsLimit = 6
	serviceAreaLimit     = 8
	homeLocationsLimit   = 6
	relatedPostsLimit    = 3
)

func LoadHomePage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	_ framework.EmptyParams,
) (HomeView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return HomeView{}, err
	}

	heroImage := images.Resolve(images.Hero, 1)
	page := newPage(appCtx, "/", seo.Meta{
		Title:       "BestHair - Professional Hairdressing Gold Coast | Haircuts, Colour & Styling",
		Description: "Gold Coast's leading hairdressing salon. Expert women's & men's haircuts, colour, balayage, extensions, bridal hair & more. Book your appointment today!",
		Keywords:    "hairdresser Gold Coast, hair salon Gold Coast, haircuts Gold Coast, hair colour, balayage, hair extensions, bridal hair",
		OG: seo.OpenGraph{
			Title:       "BestHair - Professional Hairdressing Gold Coast",
			Description: "Expert hairdressing services across Gold Coast. Haircuts, colour, styling & more.",
			Image:       heroImage,
		},
	}, seo.HairSalon(appCtx.business(locationNames(cat.Locations()))))

	return HomeView{
		Page:         page,
		HeroImage:    heroImage,
		Services:     serviceCards(cat.Services()),
		Locations:    cat.FirstLocations(homeLocationsLimit),
		Testimonials: appCtx.profile.Testimonials,
	}, nil
}

func LoadAboutPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	_ framework.EmptyParams,
) (AboutView, error) {
	heroImage := images.Resolve(images.About, 0)
	years := strconv.Itoa(appCtx.profile.Years(appCtx.now()))
	page := newPage(appCtx, "/about", seo.Meta{
		Title:       "About BestHair | Award-Winning Hairdressers Gold Coast",
		Description: "Meet the BestHair team. Over " + years + " years serving Gold Coast with expert hairdressing, cutting-edge techniques, and exceptional customer service.",
		OG:          seo.OpenGraph{Image: heroImage},
	}, appCtx.breadcrumbs(Link{Label: "About", Href: "/about"}))

	return AboutView{
		Page:      page,
		HeroImage: heroImage,
		Team:      appCtx.profile.Team,
	}, nil
}

func LoadContactPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	_ framework.EmptyParams,
) (ContactView, error) {
	page := newPage(appCtx, "/contact", seo.Meta{
		Title:       "Contact BestHair | Book Your Appointment | Gold Coast Hairdresser",
		Description: "Book your hairdressing appointment today. Call 1300 BESTHAIR or fill out our contact form. Serving all Gold Coast suburbs.",
	}, seo.HairSalon(appCtx.business(nil)), appCtx.breadcrumbs(Link{Label: "Contact", Href: "/contact"}))

	return ContactView{Page: page}, nil
}

func LoadServicesPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	_ framework.EmptyParams,
) (ServicesView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return ServicesView{}, err
	}

	page := newPage(appCtx, "/services", seo.Meta{
		Title:       "Our Services | Professional Hairdressing Gold Coast | BestHair",
		Description: "Complete range of hairdressing services: cuts, colour, balayage, extensions, treatments, bridal hair & more. Expert stylists, premium products.",
	}, appCtx.breadcrumbs(Link{Label: "Services", Href: "/services"}))

	return ServicesView{Page: page, Services: serviceCards(cat.Services())}, nil
}

func LoadServicePage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	params framework.SlugParams,
) (ServiceView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return ServiceView{}, err
	}

	service, err := cat.Service(params.Slug)
	if err != nil {
		return ServiceView{}, err
	}

	content := cat.Content(service.Slug)
	heroImage := images.Resolve(service.Slug, 0)
	path := routes.ServicePath(service.Slug)

	areaLinks := make([]Link, 0, serviceAreaLimit)
	for _, location := range cat.FirstLocations(serviceAreaLimit) {
		areaLinks = append(areaLinks, Link{
			Label: service.Name + " in " + location.Name,
			Href:  routes.CombinedPath(service.Slug, location.Slug),
		})
	}

	page := newPage(appCtx, path, seo.Meta{
		Title:       service.Name + " Gold Coast | Professional Hair Services | BestHair",
		Description: "Expert " + strings.ToLower(service.Name) + " services in Gold Coast. " + service.Description + " Book your appointment today!",
		OG:          seo.OpenGraph{Image: heroImage},
	},
		seo.Service(service.Name, service.Description, appCtx.URL(path), appCtx.rootURL, appCtx.profile.Region),
		appCtx.breadcrumbs(Link{Label: "Services", Href: "/services"}, Link{Label: service.Name, Href: path}),
		seo.FAQPage(faqQuestions(content.FAQs)),
	)

	return ServiceView{
		Page:      page,
		Service:   service,
		Content:   content,
		HeroImage: heroImage,
		AreaLinks: areaLinks,
		Related:   serviceCards(cat.RelatedServices(service.Slug, relatedServicesLimit)),
	}, nil
}

func LoadLocationsPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	_ framework.EmptyParams,
) (LocationsView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return LocationsView{}, err
	}

	locations := cat.Locations()
	page := newPage(appCtx, "/locations", seo.Meta{
		Title:       "Service Areas | Professional Hairdresser Across Gold Coast | BestHair",
		Description: "BestHair serves all Gold Coast suburbs from Coolangatta to Coomera. Find professional hairdressing services in your area.",
	}, appCtx.breadcrumbs(Link{Label: "Locations", Href: "/locations"}))

	return LocationsView{Page: page, Locations: locations}, nil
}

func LoadLocationPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	params framework.SlugParams,
) (LocationView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return LocationView{}, err
	}

	location, err := cat.Location(params.Slug)
	if err != nil {
		return LocationView{}, err
	}

	heroImage := images.Resolve(images.Hero, 1)
	path := routes.LocationPath(location.Slug)

	services := cat.Services()
	cards := make([]Card, 0, len(services))
	for idx, service := range services {
		cards = append(cards, Card{
			Title:       service.Name,
			Description: service.Description,
			Href:        routes.CombinedPath(service.Slug, location.Slug),
			Image:       images.Resolve(service.Slug, idx),
		})
	}

	nearby := make([]Link, 0, nearbyLocationsLimit)
	for _, near := range cat.NearbyLocations(location.Slug, nearbyLocationsLimit) {
		nearby = append(nearby, Link{Label: near.Name, Href: routes.LocationPath(near.Slug)})
	}

	page := newPage(appCtx, path, seo.Meta{
		Title:       "Hairdresser " + location.Name + " | Professional Hair Services | BestHair",
		Description: "Professional hairdressing services in " + location.Name + ", Gold Coast. Expert cuts, colour, styling & more. Call BestHair today for your appointment!",
		OG:          seo.OpenGraph{Image: heroImage},
	},
		seo.HairSalon(appCtx.business([]string{location.Name})),
		appCtx.breadcrumbs(Link{Label: "Locations", Href: "/locations"}, Link{Label: location.Name, Href: path}),
	)

	return LocationView{
		Page:      page,
		Location:  location,
		HeroImage: heroImage,
		Services:  cards,
		Nearby:    nearby,
	}, nil
}

// LoadCombinedPage serves "/{service}-in-{location}". A slug that does not
// split into a known service and location is a not-found.
func LoadCombinedPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	params framework.SlugParams,
) (CombinedView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return CombinedView{}, err
	}

	pair, ok := routes.Parse(params.Slug)
	if !ok {
		return CombinedView{}, fmt.Errorf("combined slug %q: %w", params.Slug, catalog.ErrNotFound)
	}

	service, err := cat.Service(pair.Service)
	if err != nil {
		return CombinedView{}, err
	}
	location, err := cat.Location(pair.Location)
	if err != nil {
		return CombinedView{}, err
	}

	heroImage := images.Resolve(service.Slug, 0)
	path := routes.CombinedPath(service.Slug, location.Slug)
	faqs := combinedFAQs(service, location, appCtx.profile.Years(appCtx.now()))

	related := make([]Link, 0, relatedServicesLimit)
	for _, other := range cat.RelatedServices(service.Slug, relatedServicesLimit) {
		related = append(related, Link{
			Label: other.Name,
			Href:  routes.CombinedPath(other.Slug, location.Slug),
		})
	}

	nearby := make([]Link, 0, nearbyLocationsLimit)
	for _, near := range cat.NearbyLocations(location.Slug, nearbyLocationsLimit) {
		nearby = append(nearby, Link{
			Label: service.Name + " in " + near.Name,
			Href:  routes.CombinedPath(service.Slug, near.Slug),
		})
	}

	name := service.Name + " in " + location.Name
	page := newPage(appCtx, path, seo.Meta{
		Title:       name + " | BestHair Gold Coast | Book Today",
		Description: "Professional " + strings.ToLower(service.Name) + " services in " + location.Name + ", Gold Coast. Expert stylists, premium products, satisfaction guaranteed. Call 1300 BESTHAIR now!",
		OG:          seo.OpenGraph{Image: heroImage},
	},
		seo.Service(name, service.Description, appCtx.URL(path), appCtx.rootURL, location.Name),
		appCtx.breadcrumbs(
			Link{Label: "Services", Href: "/services"},
			Link{Label: service.Name, Href: routes.ServicePath(service.Slug)},
			Link{Label: location.Name, Href: path},
		),
		seo.FAQPage(faqQuestions(faqs)),
	)

	return CombinedView{
		Page:      page,
		Service:   service,
		Location:  location,
		HeroImage: heroImage,
		Related:   related,
		Nearby:    nearby,
		FAQs:      faqs,
	}, nil
}

func LoadBlogPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	_ framework.EmptyParams,
) (BlogView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return BlogView{}, err
	}

	page := newPage(appCtx, "/blog", seo.Meta{
		Title:       "Hair Care Tips & Advice Blog | BestHair Gold Coast",
		Description: "Expert hair care advice, styling tips, and industry insights from BestHair professional stylists. Your guide to beautiful, healthy hair.",
	}, appCtx.breadcrumbs(Link{Label: "Blog", Href: "/blog"}))

	// Posts without a featured image get a default picture that no other
	// card in the listing shows.
	posts := cat.Posts()
	used := images.NewUsed()
	for _, post := range posts {
		if post.FeaturedImage != "" {
			used.Add(post.FeaturedImage)
		}
	}
	for idx := range posts {
		if posts[idx].FeaturedImage == "" {
			posts[idx].FeaturedImage = images.Unique(images.Default, idx, used)
		}
	}

	return BlogView{Page: page, Posts: posts}, nil
}

func LoadBlogPostPage(
	_ context.Context,
	appCtx *Context,
	_ *http.Request,
	params framework.SlugParams,
) (PostView, error) {
	cat, err := catalogOf(appCtx)
	if err != nil {
		return PostView{}, err
	}

	post, err := cat.Post(params.Slug)
	if err != nil {
		return PostView{}, err
	}

	description := post.MetaDescription
	if description == "" {
		description = post.Excerpt
	}

	path := routes.BlogPath(post.Slug)
	page := newPage(appCtx, path, seo.Meta{
		Title:       post.Title + " | BestHair Blog",
		Description: description,
		Keywords:    seo.Keywords(post.Keywords),
		OG: seo.OpenGraph{
			Type:  "article",
			Image: post.FeaturedImage,
		},
	},
		seo.BlogPosting(post.Title, description, appCtx.URL(path), post.FeaturedImage, post.Author, post.DateISO(), appCtx.profile.Title()),
		appCtx.breadcrumbs(Link{Label: "Blog", Href: "/blog"}, Link{Label: post.Title, Href: path}),
	)

	return PostView{
		Page:    page,
		Post:    post,
		Body:    markdown.ToHTML(post.Content, markdown.Options{RootURL: appCtx.rootURL}),
		CodeCSS: markdown.ChromaCSS(),
		Related: cat.RelatedPosts(post.Slug, relatedPostsLimit),
	}, nil
}

func serviceCards(services []catalog.Service) []Card {
	cards := make([]Card, 0, len(services))
	for idx, service := range services {
		cards = append(cards, Card{
			Title:       service.Name,
			Description: service.Description,
			Href:        routes.ServicePath(service.Slug),
			Image:       images.Resolve(service.Slug, idx),
		})
	}
	return cards
}

func combinedFAQs(service catalog.Service, location catalog.Location, years int) []catalog.FAQ {
	serviceName := strings.ToLower(service.Name)
	return []catalog.FAQ{
		{
			Question: "Do you provide " + serviceName + " to " + location.Name + "?",
			Answer:   "Yes! BestHair proudly serves " + location.Name + " and all surrounding Gold Coast suburbs with professional " + serviceName + " services. We have over " + strconv.Itoa(years) + " years of experience serving the " + location.Name + " community.",
		},
		{
			Question: "How quickly can you book an appointment?",
			Answer:   "We offer same-day appointments when available, and typically can book you within 24-48 hours. Call us now on 1300 BESTHAIR for the fastest service.",
		},
		{
			Question: "What makes BestHair different from other " + location.Name + " hairdressers?",
			Answer:   "Our combination of experienced professionals, premium products, personalized service, and 100% satisfaction guarantee sets us apart. We've built our reputation on consistently excellent results and outstanding customer care.",
		},
		{
			Question: "Are your stylists qualified and experienced?",
			Answer:   "Absolutely! All our stylists hold professional certifications and have extensive experience. Our team regularly undergoes training to stay current with the latest techniques and trends.",
		},
	}
}
