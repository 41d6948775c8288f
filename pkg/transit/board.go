package transit

import (
	"fmt"
	"sort"
	"strings"
)

// PlatformGroup holds the departures for one platform, soonest first.
type PlatformGroup struct {
	Platform   string
	Departures []Departure
}

// GroupByPlatform partitions departures by their platform label. Groups come
// back in lexicographic platform order; within a group departures are sorted
// by minutes remaining, ties keeping their input order. Platform labels are
// compared as-is, so an empty label forms its own group and sorts first.
func GroupByPlatform(deps []Departure) []PlatformGroup {
	byPlatform := make(map[string][]Departure)
	for _, d := range deps {
		byPlatform[d.Platform] = append(byPlatform[d.Platform], d)
	}

	keys := make([]string, 0, len(byPlatform))
	for k := range byPlatform {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]PlatformGroup, 0, len(keys))
	for _, k := range keys {
		group := byPlatform[k]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].MinutesRemaining < group[j].MinutesRemaining
		})
		groups = append(groups, PlatformGroup{Platform: k, Departures: group})
	}

	return groups
}

// RenderBoard renders departures as fixed-width display lines, one section
// per platform. An empty input produces no lines at all.
func RenderBoard(deps []Departure) []string {
	var lines []string

	for _, g := range GroupByPlatform(deps) {
		lines = append(lines,
			"",
			fmt.Sprintf("=== Platform %s ===", g.Platform),
			fmt.Sprintf("%-6s %-35s %-5s %s", "Line", "Destination", "Live", "Min"),
			strings.Repeat("-", 60),
		)

		for _, d := range g.Departures {
			live := "No"
			if d.IsRealtime {
				live = "Yes"
			}
			lines = append(lines, fmt.Sprintf("%-6s %-35s %-5s %dm",
				d.Line, d.Direction, live, d.MinutesRemaining))
		}
	}

	return lines
}
