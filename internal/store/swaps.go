package store

import (
	"context"
	"time"

	"github.com/rewearhq/rewear/internal/model"
)

// NewSwap carries the participants and items of a swap proposal.
type NewSwap struct {
	FromUserID string
	ToUserID   string
	FromItemID string
	ToItemID   string
}

// CreateSwap records a swap proposal. Proposals always start pending with no
// completion timestamp, regardless of caller input.
func (s *Store) CreateSwap(ctx context.Context, ns NewSwap) *model.Swap {
	s.mu.Lock()
	defer s.mu.Unlock()

	sw := model.Swap{
		ID:         s.generateID(),
		FromUserID: ns.FromUserID,
		ToUserID:   ns.ToUserID,
		FromItemID: ns.FromItemID,
		ToItemID:   ns.ToItemID,
		Status:     model.SwapStatusPending,
		CreatedAt:  time.Now(),
	}

	s.st.Swaps = append(s.st.Swaps, sw)
	s.save(ctx)
	return &sw
}

// GetSwapByID returns the swap, or nil when absent.
func (s *Store) GetSwapByID(id string) *model.Swap {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Swaps {
		if s.st.Swaps[i].ID == id {
			sw := s.st.Swaps[i]
			return &sw
		}
	}
	return nil
}

// GetAllSwaps returns a copy of the swap collection.
func (s *Store) GetAllSwaps() []model.Swap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Swap(nil), s.st.Swaps...)
}

// GetUserSwaps returns every swap the user participates in, on either side.
func (s *Store) GetUserSwaps(userID string) []model.Swap {
	s.mu.Lock()
	defer s.mu.Unlock()

	var swaps []model.Swap
	for i := range s.st.Swaps {
		if s.st.Swaps[i].FromUserID == userID || s.st.Swaps[i].ToUserID == userID {
			swaps = append(swaps, s.st.Swaps[i])
		}
	}
	return swaps
}

// UpdateSwapStatus transitions a swap. Moving into completed sets the
// completion timestamp and increments both participants' swap counters
// exactly once: a swap that is already completed is left unchanged, so
// re-completing is a no-op. Participants that no longer exist are skipped.
func (s *Store) UpdateSwapStatus(ctx context.Context, id, status string) (*model.Swap, error) {
	if !model.ValidSwapStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.st.Swaps {
		if s.st.Swaps[i].ID != id {
			continue
		}
		sw := &s.st.Swaps[i]

		if sw.Status == model.SwapStatusCompleted {
			out := *sw
			return &out, nil
		}

		sw.Status = status
		if status == model.SwapStatusCompleted {
			now := time.Now()
			sw.CompletedAt = &now
			s.bumpTotalSwaps(sw.FromUserID)
			s.bumpTotalSwaps(sw.ToUserID)
		}

		s.save(ctx)
		out := *sw
		return &out, nil
	}
	return nil, nil
}

func (s *Store) bumpTotalSwaps(userID string) {
	for i := range s.st.Users {
		if s.st.Users[i].ID == userID {
			s.st.Users[i].TotalSwaps++
			return
		}
	}
}
