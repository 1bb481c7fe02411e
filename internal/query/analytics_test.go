package query

import (
	"math"
	"testing"
	"time"

	"github.com/rewearhq/rewear/internal/model"
)

func TestAnalyticsEmptyState(t *testing.T) {
	r := Analytics(nil, nil, nil, time.Now())

	if r.TotalUsers != 0 || r.TotalItems != 0 || r.TotalSwaps != 0 {
		t.Errorf("expected zero totals, got %+v", r)
	}
	// No users must not divide by zero.
	if r.AverageUserRating != 0 {
		t.Errorf("expected rating 0 for empty user set, got %f", r.AverageUserRating)
	}
}

func TestAnalyticsCounts(t *testing.T) {
	// Fixed midday reference keeps the "today" window deterministic.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

	users := []model.User{
		{ID: "u1", Rating: 5.0, Points: 100, TotalSwaps: 3, CreatedAt: daysAgo(40)},
		{ID: "u2", Rating: 4.0, Points: 250, TotalSwaps: 0, CreatedAt: daysAgo(10)},
		{ID: "u3", Rating: 4.5, Points: 50, TotalSwaps: 1, CreatedAt: now.Add(-time.Hour)},
	}
	items := []model.Item{
		{ID: "i1", Status: model.ItemStatusApproved, CreatedAt: daysAgo(3)},
		{ID: "i2", Status: model.ItemStatusApproved, CreatedAt: daysAgo(20)},
		{ID: "i3", Status: model.ItemStatusPending, Flagged: true, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "i4", Status: model.ItemStatusRejected, CreatedAt: daysAgo(40)},
	}
	completedRecently := daysAgo(2)
	completedLongAgo := daysAgo(25)
	swaps := []model.Swap{
		{ID: "s1", Status: model.SwapStatusCompleted, CompletedAt: &completedRecently},
		{ID: "s2", Status: model.SwapStatusCompleted, CompletedAt: &completedLongAgo},
		{ID: "s3", Status: model.SwapStatusPending},
	}

	r := Analytics(users, items, swaps, now)

	if r.TotalUsers != 3 || r.TotalItems != 4 || r.TotalSwaps != 3 {
		t.Errorf("totals wrong: %+v", r)
	}
	if r.ApprovedItems != 2 || r.PendingItems != 1 || r.RejectedItems != 1 {
		t.Errorf("status counts wrong: %+v", r)
	}
	if r.FlaggedItems != 1 {
		t.Errorf("expected 1 flagged item, got %d", r.FlaggedItems)
	}
	if r.ActiveUsers != 2 {
		t.Errorf("expected 2 active users, got %d", r.ActiveUsers)
	}

	// Windows: today / rolling 7d / rolling 30d.
	if r.NewUsersToday != 1 || r.NewUsersThisWeek != 1 || r.NewUsersThisMonth != 2 {
		t.Errorf("user windows wrong: today=%d week=%d month=%d",
			r.NewUsersToday, r.NewUsersThisWeek, r.NewUsersThisMonth)
	}
	if r.ItemsListedToday != 1 || r.ItemsListedThisWeek != 2 || r.ItemsListedThisMonth != 3 {
		t.Errorf("item windows wrong: today=%d week=%d month=%d",
			r.ItemsListedToday, r.ItemsListedThisWeek, r.ItemsListedThisMonth)
	}
	// Completed-swap windows key off CompletedAt and require completed status.
	if r.SwapsCompletedToday != 0 || r.SwapsCompletedThisWeek != 1 || r.SwapsCompletedThisMonth != 2 {
		t.Errorf("swap windows wrong: today=%d week=%d month=%d",
			r.SwapsCompletedToday, r.SwapsCompletedThisWeek, r.SwapsCompletedThisMonth)
	}

	if math.Abs(r.AverageUserRating-4.5) > 1e-9 {
		t.Errorf("expected average rating 4.5, got %f", r.AverageUserRating)
	}
	if r.TotalPointsInCirculation != 400 {
		t.Errorf("expected 400 points in circulation, got %d", r.TotalPointsInCirculation)
	}
}

func TestAnalyticsIgnoresCompletedAtOnUnfinishedSwaps(t *testing.T) {
	now := time.Now()
	ts := now.Add(-time.Hour)

	// A stray timestamp on a non-completed swap must not be counted.
	swaps := []model.Swap{
		{ID: "s1", Status: model.SwapStatusAccepted, CompletedAt: &ts},
	}

	r := Analytics(nil, nil, swaps, now)
	if r.SwapsCompletedThisWeek != 0 {
		t.Errorf("expected 0 completed swaps, got %d", r.SwapsCompletedThisWeek)
	}
}
