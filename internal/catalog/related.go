package catalog

// RelatedServices returns up to limit services other than serviceSlug, in catalog order.
func (c *Catalog) RelatedServices(serviceSlug string, limit int) []Service {
	return takeExcept(c.services, func(service Service) bool {
		return service.Slug == serviceSlug
	}, limit)
}

// NearbyLocations returns up to limit locations other than locationSlug, in catalog order.
func (c *Catalog) NearbyLocations(locationSlug string, limit int) []Location {
	return takeExcept(c.locations, func(location Location) bool {
		return location.Slug == locationSlug
	}, limit)
}

func (c *Catalog) RelatedPosts(postSlug string, limit int) []BlogPost {
	return takeExcept(c.posts, func(post BlogPost) bool {
		return post.Slug == postSlug
	}, limit)
}

// FirstLocations returns the first limit locations without excluding any.
func (c *Catalog) FirstLocations(limit int) []Location {
	return takeExcept(c.locations, func(Location) bool { return false }, limit)
}

func takeExcept[T interface{}](items []T, skip func(T) bool, limit int) []T {
	if limit <= 0 {
		return []T{}
	}

	out := make([]T, 0, min(limit, len(items)))
	for _, item := range items {
		if len(out) == limit {
			break
		}
		if skip(item) {
			continue
		}
		out = append(out, item)
	}

	return out
}
