package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rewearhq/rewear/internal/model"
)

// Sort orders: newest/oldest by listing date, points-low/points-high by
// point cost, popular by view count, title by locale-aware collation.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortPointsLow  = "points-low"
	SortPointsHigh = "points-high"
	SortPopular    = "popular"
	SortTitle      = "title"
)

// Sort returns a new slice ordered by the given key. The input is never
// mutated; an unknown key returns the items in their original order.
func Sort(items []model.Item, key string) []model.Item {
	sorted := append([]model.Item(nil), items...)

	switch key {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortPointsLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Points < sorted[j].Points
		})
	case SortPointsHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Points > sorted[j].Points
		})
	case SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Views > sorted[j].Views
		})
	case SortTitle:
		c := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	}

	return sorted
}
