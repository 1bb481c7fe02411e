// Package query holds pure functions over store snapshots: search, sort and
// aggregate analytics. Nothing here mutates its input.
package query

import (
	"strconv"
	"strings"

	"github.com/rewearhq/rewear/internal/model"
)

// Filters narrows a search. Empty values disable the corresponding filter;
// the gender sentinel "all" likewise matches everything. Point bounds are
// parsed leniently: non-numeric input disables that bound rather than
// excluding items.
type Filters struct {
	Category  string
	Gender    string
	Size      string
	Condition string
	Color     string
	MinPoints string
	MaxPoints string
}

// Search returns the approved items matching the query and all active
// filters. A non-empty query is a case-insensitive substring match against
// title, description, brand or any tag. Any one field matching qualifies
// the item.
func Search(items []model.Item, query string, f Filters) []model.Item {
	var out []model.Item

	term := strings.ToLower(query)
	minPts, hasMin := parseBound(f.MinPoints)
	maxPts, hasMax := parseBound(f.MaxPoints)

	for _, it := range items {
		if it.Status != model.ItemStatusApproved {
			continue
		}
		if term != "" && !matchesTerm(it, term) {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Gender != "" && f.Gender != "all" && it.Gender != f.Gender {
			continue
		}
		if f.Size != "" && it.Size != f.Size {
			continue
		}
		if f.Condition != "" && it.Condition != f.Condition {
			continue
		}
		if f.Color != "" && it.Color != f.Color {
			continue
		}
		if hasMin && it.Points < minPts {
			continue
		}
		if hasMax && it.Points > maxPts {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesTerm(it model.Item, term string) bool {
	if strings.Contains(strings.ToLower(it.Title), term) ||
		strings.Contains(strings.ToLower(it.Description), term) ||
		strings.Contains(strings.ToLower(it.Brand), term) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func parseBound(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
