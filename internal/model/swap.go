package model

import "time"

// Swap represents a proposed or completed item exchange between two users.
type Swap struct {
	ID          string     `json:"id"`
	FromUserID  string     `json:"from_user_id"`
	ToUserID    string     `json:"to_user_id"`
	FromItemID  string     `json:"from_item_id"`
	ToItemID    string     `json:"to_item_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Swap statuses.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

// ValidSwapStatus reports whether status is one of the known swap statuses.
func ValidSwapStatus(status string) bool {
	switch status {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}
	return false
}
