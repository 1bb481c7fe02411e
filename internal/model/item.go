package model

import "time"

// Item represents a clothing item listed for swapping or point redemption.
type Item struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category"`
	Gender          string    `json:"gender"`
	Size            string    `json:"size"`
	Condition       string    `json:"condition"`
	Brand           string    `json:"brand,omitempty"`
	Color           string    `json:"color,omitempty"`
	Material        string    `json:"material,omitempty"`
	Points          int       `json:"points"`
	Tags            []string  `json:"tags,omitempty"`
	Images          []string  `json:"images,omitempty"`
	UserID          string    `json:"user_id"`
	Status          string    `json:"status"`
	Available       bool      `json:"available"`
	Views           int       `json:"views"`
	ExchangeOptions []string  `json:"exchange_options,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	Flagged         bool      `json:"flagged"`
	FlagReason      string    `json:"flag_reason,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}

// Item statuses.
const (
	ItemStatusPending  = "pending"
	ItemStatusApproved = "approved"
	ItemStatusRejected = "rejected"
)

// Item conditions.
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
)

// ValidItemStatus reports whether status is one of the known item statuses.
func ValidItemStatus(status string) bool {
	switch status {
	case ItemStatusPending, ItemStatusApproved, ItemStatusRejected:
		return true
	}
	return false
}

// ValidCondition reports whether condition is one of the known conditions.
func ValidCondition(condition string) bool {
	switch condition {
	case ConditionExcellent, ConditionGood, ConditionFair:
		return true
	}
	return false
}

// ItemPatch lists the item fields an owner can edit after listing.
// Nil fields are left unchanged. Moderation fields (status, flags) have
// dedicated store operations and are deliberately not patchable.
type ItemPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Gender          *string   `json:"gender,omitempty"`
	Size            *string   `json:"size,omitempty"`
	Condition       *string   `json:"condition,omitempty"`
	Brand           *string   `json:"brand,omitempty"`
	Color           *string   `json:"color,omitempty"`
	Material        *string   `json:"material,omitempty"`
	Points          *int      `json:"points,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	Images          *[]string `json:"images,omitempty"`
	ExchangeOptions *[]string `json:"exchange_options,omitempty"`
}

// Apply merges the patch into the item.
func (p ItemPatch) Apply(it *Item) {
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Gender != nil {
		it.Gender = *p.Gender
	}
	if p.Size != nil {
		it.Size = *p.Size
	}
	if p.Condition != nil {
		it.Condition = *p.Condition
	}
	if p.Brand != nil {
		it.Brand = *p.Brand
	}
	if p.Color != nil {
		it.Color = *p.Color
	}
	if p.Material != nil {
		it.Material = *p.Material
	}
	if p.Points != nil {
		it.Points = *p.Points
	}
	if p.Tags != nil {
		it.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Images != nil {
		it.Images = append([]string(nil), (*p.Images)...)
	}
	if p.ExchangeOptions != nil {
		it.ExchangeOptions = append([]string(nil), (*p.ExchangeOptions)...)
	}
}
