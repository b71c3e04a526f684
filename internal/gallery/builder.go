// Package gallery turns configured file lists into the ordered sequence shown on the page.
// Position i of the result is the tile and viewer index i; nothing reorders it afterwards.
package gallery

import (
	"sort"

	"github.com/RacoonMediaServer/rms-gallery/internal/analysis"
	"github.com/RacoonMediaServer/rms-gallery/internal/model"
)

// Input is a set of files and a rule how to order them
type Input struct {
	// Base is a regular list of files
	Base []string

	// Priority is a list of files for special placement, may be empty
	Priority []string

	// Policy defines where priority files go
	Policy model.Policy
}

// Build makes unique ordered sequence of media. The random source is used only by PolicyInterleaved,
// nil means a fresh time-seeded source.
func Build(in Input, rnd RandomSource) []model.Media {
	paths := unique(in.Priority, in.Base)
	items := make([]model.Media, len(paths))
	for i, p := range paths {
		items[i] = analysis.Describe(p)
	}

	if in.Policy != model.PolicyInterleaved {
		return items
	}

	if rnd == nil {
		rnd = NewRandomSource()
	}
	return interleave(items, in.Priority, rnd)
}

// unique keeps the first occurrence of every path
func unique(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	seen := make(map[string]struct{}, total)
	result := make([]string, 0, total)
	for _, l := range lists {
		for _, p := range l {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func interleave(items []model.Media, priority []string, rnd RandomSource) []model.Media {
	prioritySet := make(map[string]struct{}, len(priority))
	for _, p := range priority {
		prioritySet[p] = struct{}{}
	}

	var newItems, baseItems []model.Media
	for _, item := range items {
		if _, ok := prioritySet[item.Path()]; ok {
			newItems = append(newItems, item)
		} else {
			baseItems = append(baseItems, item)
		}
	}

	sortByRecency(baseItems)

	positions := Positions(rnd, len(newItems), len(baseItems))
	result := make([]model.Media, 0, len(items))
	next := 0
	for idx, pos := range positions {
		result = append(result, baseItems[next:pos]...)
		result = append(result, newItems[idx])
		next = pos
	}
	result = append(result, baseItems[next:]...)

	// more priority items than slots: every slot is taken, the rest go to the tail
	result = append(result, newItems[len(positions):]...)
	return result
}

// sortByRecency orders items from the newest to the oldest, ties are broken by path
func sortByRecency(items []model.Media) {
	keys := make(map[string]analysis.Recency, len(items))
	for _, item := range items {
		keys[item.Path()] = analysis.RecencyKey(item.Path())
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Path(), items[j].Path()
		if c := keys[a].Compare(keys[b]); c != 0 {
			return c > 0
		}
		return a < b
	})
}
