package store

import (
	"context"
	"time"

	"github.com/rewearhq/rewear/internal/model"
)

// NewItem carries the caller-supplied fields for a listing submission.
type NewItem struct {
	Title           string
	Description     string
	Category        string
	Gender          string
	Size            string
	Condition       string
	Brand           string
	Color           string
	Material        string
	Points          int
	Tags            []string
	Images          []string
	UserID          string
	Status          string
	Available       *bool
	ExchangeOptions []string
}

// CreateItem appends a new listing. Submissions start pending unless the
// caller supplies a valid status override; availability defaults to true.
func (s *Store) CreateItem(ctx context.Context, ni NewItem) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := model.Item{
		ID:              s.generateID(),
		Title:           ni.Title,
		Description:     ni.Description,
		Category:        ni.Category,
		Gender:          ni.Gender,
		Size:            ni.Size,
		Condition:       ni.Condition,
		Brand:           ni.Brand,
		Color:           ni.Color,
		Material:        ni.Material,
		Points:          ni.Points,
		Tags:            append([]string(nil), ni.Tags...),
		Images:          append([]string(nil), ni.Images...),
		UserID:          ni.UserID,
		Status:          model.ItemStatusPending,
		Available:       true,
		Views:           0,
		ExchangeOptions: append([]string(nil), ni.ExchangeOptions...),
		CreatedAt:       time.Now(),
	}
	if it.Gender == "" {
		it.Gender = "unisex"
	}
	if model.ValidItemStatus(ni.Status) {
		it.Status = ni.Status
	}
	if ni.Available != nil {
		it.Available = *ni.Available
	}

	s.st.Items = append(s.st.Items, it)
	s.save(ctx)
	return &it
}

// GetItemByID returns the item, or nil when absent.
func (s *Store) GetItemByID(id string) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.itemIndex(id); i >= 0 {
		it := s.st.Items[i]
		return &it
	}
	return nil
}

// GetAllItems returns a copy of the item collection.
func (s *Store) GetAllItems() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Item(nil), s.st.Items...)
}

// GetUserItems returns the items owned by the given user.
func (s *Store) GetUserItems(userID string) []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []model.Item
	for i := range s.st.Items {
		if s.st.Items[i].UserID == userID {
			items = append(items, s.st.Items[i])
		}
	}
	return items
}

// UpdateItem applies the patch to the matched item and returns the updated
// record, or nil when the id is unknown.
func (s *Store) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.itemIndex(id); i >= 0 {
		patch.Apply(&s.st.Items[i])
		s.save(ctx)
		it := s.st.Items[i]
		return &it
	}
	return nil
}

// UpdateItemStatus sets the item's moderation status, recording reason as
// the rejection reason when non-empty. Unknown statuses are rejected at the
// write boundary.
func (s *Store) UpdateItemStatus(ctx context.Context, id, status, reason string) (*model.Item, error) {
	if !model.ValidItemStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return nil, nil
	}
	s.st.Items[i].Status = status
	if reason != "" {
		s.st.Items[i].RejectionReason = reason
	}
	s.save(ctx)
	it := s.st.Items[i]
	return &it, nil
}

// ApproveItem marks the listing approved and awards the listing bonus to its
// owner. A missing owner skips the bonus silently.
func (s *Store) ApproveItem(ctx context.Context, id string) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return nil
	}
	s.st.Items[i].Status = model.ItemStatusApproved

	for j := range s.st.Users {
		if s.st.Users[j].ID == s.st.Items[i].UserID {
			s.st.Users[j].Points += ApprovalBonus
			break
		}
	}

	s.save(ctx)
	it := s.st.Items[i]
	return &it
}

// RejectItem marks the listing rejected and records the supplied reason.
func (s *Store) RejectItem(ctx context.Context, id, reason string) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return nil
	}
	s.st.Items[i].Status = model.ItemStatusRejected
	s.st.Items[i].RejectionReason = reason
	s.save(ctx)
	it := s.st.Items[i]
	return &it
}

// UpdateItemAvailability sets the availability flag.
func (s *Store) UpdateItemAvailability(ctx context.Context, id string, available bool) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return nil
	}
	s.st.Items[i].Available = available
	s.save(ctx)
	it := s.st.Items[i]
	return &it
}

// IncrementItemViews bumps the view counter, returning the new count. The
// second return value distinguishes a missing item from zero views.
func (s *Store) IncrementItemViews(ctx context.Context, id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return 0, false
	}
	s.st.Items[i].Views++
	s.save(ctx)
	return s.st.Items[i].Views, true
}

// FlagItem marks the listing for moderator attention.
func (s *Store) FlagItem(ctx context.Context, id, reason string) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return nil
	}
	s.st.Items[i].Flagged = true
	s.st.Items[i].FlagReason = reason
	s.save(ctx)
	it := s.st.Items[i]
	return &it
}

// DeleteItem removes the listing outright and returns the removed record, or
// nil when the id is unknown. There is no tombstone.
func (s *Store) DeleteItem(ctx context.Context, id string) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return nil
	}
	it := s.st.Items[i]
	s.st.Items = append(s.st.Items[:i], s.st.Items[i+1:]...)
	s.save(ctx)
	return &it
}

// RedeemItem exchanges the redeemer's points for the item: the redeemer pays
// the point cost, the owner is credited, and the item becomes unavailable.
func (s *Store) RedeemItem(ctx context.Context, itemID, redeemerID string) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(itemID)
	if i < 0 {
		return nil, nil
	}
	it := &s.st.Items[i]
	if it.Status != model.ItemStatusApproved || !it.Available {
		return nil, ErrItemUnavailable
	}

	var redeemer *model.User
	for j := range s.st.Users {
		if s.st.Users[j].ID == redeemerID {
			redeemer = &s.st.Users[j]
			break
		}
	}
	if redeemer == nil {
		return nil, nil
	}
	if redeemer.Points < it.Points {
		return nil, ErrInsufficientPoints
	}

	redeemer.Points -= it.Points
	for j := range s.st.Users {
		if s.st.Users[j].ID == it.UserID {
			s.st.Users[j].Points += it.Points
			break
		}
	}
	it.Available = false

	s.save(ctx)
	out := *it
	return &out, nil
}

func (s *Store) itemIndex(id string) int {
	for i := range s.st.Items {
		if s.st.Items[i].ID == id {
			return i
		}
	}
	return -1
}
