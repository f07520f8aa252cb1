package images

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		index    int
		want     string
	}{
		{name: "first image", category: "mens-haircuts", index: 0, want: catalog["mens-haircuts"][0]},
		{name: "wraps past end", category: "mens-haircuts", index: 4, want: catalog["mens-haircuts"][1]},
		{name: "negative wraps", category: "mens-haircuts", index: -1, want: catalog["mens-haircuts"][2]},
		{name: "unknown category falls back", category: "zz-nonexistent-zz", index: 1, want: catalog[Default][1]},
		{name: "hero has two images", category: Hero, index: 3, want: catalog[Hero][1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Resolve(tt.category, tt.index))
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	for category := range catalog {
		for index := -5; index < 5; index++ {
			first := Resolve(category, index)
			require.Equal(t, first, Resolve(category, index))
			require.True(t, strings.HasPrefix(first, "https://images.unsplash.com/"), first)
		}
	}
}

func TestUniqueUsesCallerSet(t *testing.T) {
	t.Parallel()

	used := NewUsed()
	list := catalog["bridal-hair"]

	got := make([]string, 0, len(list))
	for i := range list {
		got = append(got, Unique("bridal-hair", i, used))
	}
	require.Equal(t, list, got)

	require.Equal(t, Resolve("bridal-hair", 5), Unique("bridal-hair", 5, used))

	fresh := NewUsed()
	require.Equal(t, list[0], Unique("bridal-hair", 0, fresh))
	require.Equal(t, list[1], Resolve("bridal-hair", 1))
	require.Equal(t, list[0], Unique("bridal-hair", 0, nil))
}

func TestUniqueIndependentSetsDoNotInterfere(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Unique("kids-haircuts", 0, NewUsed())
		}(i)
	}
	wg.Wait()

	for _, url := range results {
		require.Equal(t, catalog["kids-haircuts"][0], url)
	}
}

func TestEveryServiceCategoryHasImages(t *testing.T) {
	t.Parallel()

	services := []string{
		"womens-haircuts", "mens-haircuts", "hair-colouring", "balayage-highlights",
		"hair-extensions", "bridal-hair", "hair-treatments", "blow-dry-styling",
		"perms-waves", "hair-straightening", "kids-haircuts", "formal-hair-styling",
	}
	for _, service := range services {
		require.Contains(t, catalog, service)
		require.Len(t, catalog[service], 3, service)
	}
	require.NotContains(t, catalog, "zz-nonexistent-zz")
}
