package routes

type Family string

const (
	FamilyPage     Family = "page"
	FamilyService  Family = "service"
	FamilyLocation Family = "location"
	FamilyCombined Family = "combined"
	FamilyBlog     Family = "blog"
)

var Families = []Family{FamilyPage, FamilyService, FamilyLocation, FamilyCombined, FamilyBlog}

var fixedPages = []string{"/", "/about", "/contact", "/services", "/locations", "/blog"}

type StaticPath struct {
	Family Family
	Path   string
	Params map[string]string
}

type Input struct {
	Services  []string
	Locations []string
	Posts     []string
}

type Set struct {
	Pages     []StaticPath
	Services  []StaticPath
	Locations []StaticPath
	Combined  []StaticPath
	Blog      []StaticPath
}

func ServicePath(serviceSlug string) string {
	return "/services/" + serviceSlug
}

func LocationPath(locationSlug string) string {
	return "/locations/" + locationSlug
}

func CombinedPath(serviceSlug string, locationSlug string) string {
	return "/" + Compose(serviceSlug, locationSlug)
}

func BlogPath(postSlug string) string {
	return "/blog/" + postSlug
}

// Enumerate lists every route to pre-render. Combined routes are the full
// services x locations product in service-major order.
func Enumerate(in Input) Set {
	set := Set{
		Pages:     make([]StaticPath, 0, len(fixedPages)),
		Services:  make([]StaticPath, 0, len(in.Services)),
		Locations: make([]StaticPath, 0, len(in.Locations)),
		Combined:  make([]StaticPath, 0, len(in.Services)*len(in.Locations)),
		Blog:      make([]StaticPath, 0, len(in.Posts)),
	}

	for _, page := range fixedPages {
		set.Pages = append(set.Pages, StaticPath{Family: FamilyPage, Path: page})
	}

	for _, service := range in.Services {
		set.Services = append(set.Services, StaticPath{
			Family: FamilyService,
			Path:   ServicePath(service),
			Params: map[string]string{"service": service},
		})
	}

	for _, location := range in.Locations {
		set.Locations = append(set.Locations, StaticPath{
			Family: FamilyLocation,
			Path:   LocationPath(location),
			Params: map[string]string{"location": location},
		})
	}

	for _, service := range in.Services {
		for _, location := range in.Locations {
			set.Combined = append(set.Combined, StaticPath{
				Family: FamilyCombined,
				Path:   CombinedPath(service, location),
				Params: map[string]string{"slug": Compose(service, location)},
			})
		}
	}

	for _, post := range in.Posts {
		set.Blog = append(set.Blog, StaticPath{
			Family: FamilyBlog,
			Path:   BlogPath(post),
			Params: map[string]string{"slug": post},
		})
	}

	return set
}

func (s Set) Family(family Family) []StaticPath {
	switch family {
	case FamilyPage:
		return s.Pages
	case FamilyService:
		return s.Services
	case FamilyLocation:
		return s.Locations
	case FamilyCombined:
		return s.Combined
	case FamilyBlog:
		return s.Blog
	default:
		return nil
	}
}

func (s Set) All() []StaticPath {
	all := make([]StaticPath, 0, s.Len())
	for _, family := range Families {
		all = append(all, s.Family(family)...)
	}
	return all
}

func (s Set) Len() int {
	return len(s.Pages) + len(s.Services) + len(s.Locations) + len(s.Combined) + len(s.Blog)
}

func (s Set) Paths() []string {
	return PathsOf(s.All())
}

func PathsOf(staticPaths []StaticPath) []string {
	paths := make([]string, 0, len(staticPaths))
	for _, staticPath := range staticPaths {
		paths = append(paths, staticPath.Path)
	}
	return paths
}
