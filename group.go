package songbook

import (
	"cmp"
	"slices"
	"strings"
)

// GroupBySource partitions a section's songs by source value. Groups are
// sorted by source name and songs within a group by artist, both
// case-insensitively. Sorting is stable: equal keys keep row order.
// The empty source forms a group that sorts before all others.
func GroupBySource(songs []Song) []SourceGroup {
	bySource := make(map[string][]Song)
	var sources []string
	for _, song := range songs {
		if _, seen := bySource[song.Source]; !seen {
			sources = append(sources, song.Source)
		}
		bySource[song.Source] = append(bySource[song.Source], song)
	}

	slices.SortStableFunc(sources, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	groups := make([]SourceGroup, 0, len(sources))
	for _, source := range sources {
		grouped := bySource[source]
		slices.SortStableFunc(grouped, func(a, b Song) int {
			return cmp.Compare(strings.ToLower(a.Artist), strings.ToLower(b.Artist))
		})
		groups = append(groups, SourceGroup{Source: source, Songs: grouped})
	}
	return groups
}
