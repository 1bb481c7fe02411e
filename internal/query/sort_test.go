package query

import (
	"testing"
	"time"

	"github.com/rewearhq/rewear/internal/model"
)

func TestSortByPoints(t *testing.T) {
	items := []model.Item{
		{ID: "a", Points: 30},
		{ID: "b", Points: 80},
		{ID: "c", Points: 45},
	}

	high := Sort(items, SortPointsHigh)
	if high[0].Points != 80 || high[1].Points != 45 || high[2].Points != 30 {
		t.Errorf("points-high order wrong: %v", ids(high))
	}

	low := Sort(items, SortPointsLow)
	if low[0].Points != 30 || low[1].Points != 45 || low[2].Points != 80 {
		t.Errorf("points-low order wrong: %v", ids(low))
	}
}

func TestSortUnknownKeyPassthrough(t *testing.T) {
	items := []model.Item{{ID: "x"}, {ID: "y"}, {ID: "z"}}

	got := Sort(items, "unknown-key")
	if got[0].ID != "x" || got[1].ID != "y" || got[2].ID != "z" {
		t.Errorf("unknown key must preserve input order, got %v", ids(got))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := []model.Item{{ID: "a", Points: 30}, {ID: "b", Points: 80}}

	Sort(items, SortPointsHigh)

	if items[0].ID != "a" || items[1].ID != "b" {
		t.Error("Sort must return a new slice, not reorder its input")
	}
}

func TestSortByDate(t *testing.T) {
	now := time.Now()
	items := []model.Item{
		{ID: "mid", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "new", CreatedAt: now},
		{ID: "old", CreatedAt: now.Add(-48 * time.Hour)},
	}

	newest := Sort(items, SortNewest)
	if newest[0].ID != "new" || newest[2].ID != "old" {
		t.Errorf("newest order wrong: %v", ids(newest))
	}

	oldest := Sort(items, SortOldest)
	if oldest[0].ID != "old" || oldest[2].ID != "new" {
		t.Errorf("oldest order wrong: %v", ids(oldest))
	}
}

func TestSortByPopularity(t *testing.T) {
	items := []model.Item{
		{ID: "quiet", Views: 2},
		{ID: "hot", Views: 90},
		{ID: "warm", Views: 40},
	}

	got := Sort(items, SortPopular)
	if got[0].ID != "hot" || got[1].ID != "warm" || got[2].ID != "quiet" {
		t.Errorf("popular order wrong: %v", ids(got))
	}
}

func TestSortByTitle(t *testing.T) {
	items := []model.Item{
		{ID: "c", Title: "Wool Scarf"},
		{ID: "a", Title: "aviator jacket"},
		{ID: "b", Title: "Ball Gown"},
	}

	got := Sort(items, SortTitle)
	// Collation is case-insensitive at the primary level, unlike a plain
	// byte comparison.
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("title order wrong: %v", ids(got))
	}
}
