package query

import (
	"time"

	"github.com/rewearhq/rewear/internal/model"
)

// Report is the aggregate analytics snapshot consumed by the admin
// dashboard. "Today" starts at local midnight; week and month windows are
// rolling 7x24h and 30x24h.
type Report struct {
	TotalUsers    int `json:"total_users"`
	TotalItems    int `json:"total_items"`
	TotalSwaps    int `json:"total_swaps"`
	ApprovedItems int `json:"approved_items"`
	PendingItems  int `json:"pending_items"`
	RejectedItems int `json:"rejected_items"`
	FlaggedItems  int `json:"flagged_items"`
	ActiveUsers   int `json:"active_users"`

	NewUsersToday     int `json:"new_users_today"`
	NewUsersThisWeek  int `json:"new_users_this_week"`
	NewUsersThisMonth int `json:"new_users_this_month"`

	ItemsListedToday     int `json:"items_listed_today"`
	ItemsListedThisWeek  int `json:"items_listed_this_week"`
	ItemsListedThisMonth int `json:"items_listed_this_month"`

	SwapsCompletedToday     int `json:"swaps_completed_today"`
	SwapsCompletedThisWeek  int `json:"swaps_completed_this_week"`
	SwapsCompletedThisMonth int `json:"swaps_completed_this_month"`

	AverageUserRating        float64 `json:"average_user_rating"`
	TotalPointsInCirculation int     `json:"total_points_in_circulation"`
}

// Analytics computes the report from a single snapshot at the given time.
func Analytics(users []model.User, items []model.Item, swaps []model.Swap, now time.Time) Report {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-7 * 24 * time.Hour)
	monthStart := now.Add(-30 * 24 * time.Hour)

	r := Report{
		TotalUsers: len(users),
		TotalItems: len(items),
		TotalSwaps: len(swaps),
	}

	var ratingSum float64
	for _, u := range users {
		ratingSum += u.Rating
		r.TotalPointsInCirculation += u.Points
		if u.TotalSwaps > 0 {
			r.ActiveUsers++
		}
		if !u.CreatedAt.Before(todayStart) {
			r.NewUsersToday++
		}
		if !u.CreatedAt.Before(weekStart) {
			r.NewUsersThisWeek++
		}
		if !u.CreatedAt.Before(monthStart) {
			r.NewUsersThisMonth++
		}
	}
	if len(users) > 0 {
		r.AverageUserRating = ratingSum / float64(len(users))
	}

	for _, it := range items {
		switch it.Status {
		case model.ItemStatusApproved:
			r.ApprovedItems++
		case model.ItemStatusPending:
			r.PendingItems++
		case model.ItemStatusRejected:
			r.RejectedItems++
		}
		if it.Flagged {
			r.FlaggedItems++
		}
		if !it.CreatedAt.Before(todayStart) {
			r.ItemsListedToday++
		}
		if !it.CreatedAt.Before(weekStart) {
			r.ItemsListedThisWeek++
		}
		if !it.CreatedAt.Before(monthStart) {
			r.ItemsListedThisMonth++
		}
	}

	for _, sw := range swaps {
		if sw.Status != model.SwapStatusCompleted || sw.CompletedAt == nil {
			continue
		}
		if !sw.CompletedAt.Before(todayStart) {
			r.SwapsCompletedToday++
		}
		if !sw.CompletedAt.Before(weekStart) {
			r.SwapsCompletedThisWeek++
		}
		if !sw.CompletedAt.Before(monthStart) {
			r.SwapsCompletedThisMonth++
		}
	}

	return r
}
