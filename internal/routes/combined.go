package routes

import (
	"errors"
	"fmt"
	"strings"

	"besthair/internal/slug"
)

// Separator joins a service slug and a location slug into one path segment.
const Separator = "-in-"

var ErrAmbiguousSegment = errors.New("slug is not separator-safe")

type Pair struct {
	Service  string
	Location string
}

func Compose(serviceSlug string, locationSlug string) string {
	return serviceSlug + Separator + locationSlug
}

// Parse splits a combined slug. The separator must occur exactly once and
// both halves must be non-empty.
func Parse(combined string) (Pair, bool) {
	if strings.Count(combined, Separator) != 1 {
		return Pair{}, false
	}

	service, location, _ := strings.Cut(combined, Separator)
	if service == "" || location == "" {
		return Pair{}, false
	}

	return Pair{Service: service, Location: location}, true
}

// CheckSegment reports whether value may be used on either side of a combined
// slug. Composing two checked segments always yields exactly one separator.
func CheckSegment(value string) error {
	if !slug.Valid(value) {
		return fmt.Errorf("%q: invalid slug", value)
	}
	if strings.Contains(value, Separator) {
		return fmt.Errorf("%q contains %q: %w", value, Separator, ErrAmbiguousSegment)
	}
	if strings.HasPrefix(value, "in-") {
		return fmt.Errorf("%q starts with %q: %w", value, "in-", ErrAmbiguousSegment)
	}
	if strings.HasSuffix(value, "-in") {
		return fmt.Errorf("%q ends with %q: %w", value, "-in", ErrAmbiguousSegment)
	}

	return nil
}
