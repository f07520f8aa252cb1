package router

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
)

var dynamicSegmentNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

type pathSegment struct {
	name    string
	isParam bool
}

type appRoute struct {
	id          string
	segments    []pathSegment
	staticCount int
	patternKey  string
}

type AppRouteMatch struct {
	ID     string
	Params map[string]string
}

func (m AppRouteMatch) Param(name string) (string, bool) {
	if m.Params == nil {
		return "", false
	}

	value, ok := m.Params[name]
	return value, ok
}

// AppRouter matches request paths against route patterns such as
// "/services/[service]". Routes with more static segments win, so "/about"
// is preferred over "/[slug]".
type AppRouter struct {
	routes []appRoute
}

func NewAppRouter(patterns ...string) (*AppRouter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no route patterns given")
	}

	routes := make([]appRoute, 0, len(patterns))
	seenPattern := make(map[string]string, len(patterns))

	for _, pattern := range patterns {
		route, err := parseAppRoute(pattern)
		if err != nil {
			return nil, err
		}

		if existing, ok := seenPattern[route.patternKey]; ok {
			return nil, fmt.Errorf("route pattern conflict: %q and %q", existing, route.id)
		}
		seenPattern[route.patternKey] = route.id
		routes = append(routes, route)
	}

	sort.SliceStable(routes, func(i int, j int) bool {
		left := routes[i]
		right := routes[j]

		if left.staticCount != right.staticCount {
			return left.staticCount > right.staticCount
		}
		if len(left.segments) != len(right.segments) {
			return len(left.segments) > len(right.segments)
		}
		return left.id < right.id
	})

	return &AppRouter{routes: routes}, nil
}

// Patterns lists the normalized route patterns in match precedence order.
func (router *AppRouter) Patterns() []string {
	out := make([]string, 0, len(router.routes))
	for _, route := range router.routes {
		out = append(out, route.id)
	}
	return out
}

// NormalizePattern cleans a route pattern the way NewAppRouter does.
func NormalizePattern(pattern string) (string, error) {
	route, err := parseAppRoute(pattern)
	if err != nil {
		return "", err
	}
	return route.id, nil
}

func parseAppRoute(pattern string) (appRoute, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return appRoute{}, errors.New("route pattern cannot be empty")
	}
	if !strings.HasPrefix(trimmed, "/") {
		return appRoute{}, fmt.Errorf("route pattern %q must start with /", pattern)
	}

	parts := splitPathSegments(trimmed)
	segments := make([]pathSegment, 0, len(parts))
	patternParts := make([]string, 0, len(parts))
	normalizedIDParts := make([]string, 0, len(parts))
	staticCount := 0

	for _, part := range parts {
		name, isParam, normalizedIDPart, err := parseWildcardSegment(part)
		if err != nil {
			return appRoute{}, fmt.Errorf("route pattern %q: %w", pattern, err)
		}

		if isParam {
			segments = append(segments, pathSegment{name: name, isParam: true})
			patternParts = append(patternParts, ":")
			normalizedIDParts = append(normalizedIDParts, normalizedIDPart)
			continue
		}

		segments = append(segments, pathSegment{name: part, isParam: false})
		patternParts = append(patternParts, part)
		normalizedIDParts = append(normalizedIDParts, part)
		staticCount++
	}

	return appRoute{
		id:          "/" + strings.Join(normalizedIDParts, "/"),
		segments:    segments,
		staticCount: staticCount,
		patternKey:  "/" + strings.Join(patternParts, "/"),
	}, nil
}

func parseWildcardSegment(segment string) (string, bool, string, error) {
	if strings.HasPrefix(segment, "[") || strings.HasSuffix(segment, "]") {
		if !strings.HasPrefix(segment, "[") || !strings.HasSuffix(segment, "]") {
			return "", false, "", fmt.Errorf("invalid wildcard segment %q", segment)
		}

		name := strings.TrimSpace(segment[1 : len(segment)-1])
		if !dynamicSegmentNamePattern.MatchString(name) {
			return "", false, "", fmt.Errorf("invalid wildcard name %q", name)
		}

		return name, true, "[" + name + "]", nil
	}

	if strings.ContainsAny(segment, "[]") {
		return "", false, "", fmt.Errorf("invalid static segment %q", segment)
	}

	return "", false, "", nil
}

func (router *AppRouter) Match(requestPath string) (AppRouteMatch, bool) {
	requestSegments := splitPathSegments(requestPath)

	for _, route := range router.routes {
		if len(route.segments) != len(requestSegments) {
			continue
		}

		params := make(map[string]string, 2)
		matched := true

		for idx, segment := range route.segments {
			requestValue := requestSegments[idx]
			if segment.isParam {
				params[segment.name] = requestValue
				continue
			}
			if segment.name != requestValue {
				matched = false
				break
			}
		}

		if !matched {
			continue
		}

		if len(params) == 0 {
			return AppRouteMatch{ID: route.id}, true
		}
		return AppRouteMatch{ID: route.id, Params: params}, true
	}

	return AppRouteMatch{}, false
}

// MatchPathPattern matches a single pattern without building a router.
func MatchPathPattern(pattern string, requestPath string) (map[string]string, bool) {
	patternSegments := splitPathSegments(pattern)
	requestSegments := splitPathSegments(requestPath)
	if len(patternSegments) != len(requestSegments) {
		return nil, false
	}

	params := make(map[string]string, 2)
	for idx, patternSegment := range patternSegments {
		name, isParam, _, err := parseWildcardSegment(patternSegment)
		if err != nil {
			return nil, false
		}

		requestSegment := requestSegments[idx]
		if !isParam {
			if patternSegment != requestSegment {
				return nil, false
			}
			continue
		}

		params[name] = requestSegment
	}

	return params, true
}

// ExpandPattern substitutes params into pattern, e.g. "/services/[service]"
// with service=bridal-hair gives "/services/bridal-hair".
func ExpandPattern(pattern string, params map[string]string) (string, error) {
	segments := splitPathSegments(pattern)
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		name, isParam, _, err := parseWildcardSegment(segment)
		if err != nil {
			return "", err
		}
		if !isParam {
			out = append(out, segment)
			continue
		}

		value := params[name]
		if value == "" || strings.Contains(value, "/") {
			return "", fmt.Errorf("pattern %q: invalid value %q for param %q", pattern, value, name)
		}
		out = append(out, value)
	}

	return "/" + strings.Join(out, "/"), nil
}

func splitPathSegments(raw string) []string {
	cleaned := path.Clean("/" + strings.TrimSpace(raw))
	if cleaned == "/" {
		return []string{}
	}

	trimmed := strings.Trim(cleaned, "/")
	if trimmed == "" {
		return []string{}
	}

	return strings.Split(trimmed, "/")
}
