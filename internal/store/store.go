// Package store owns the application state tree: users, items, swaps and
// categories. All reads return defensive copies and every mutation is
// followed by a full-tree write to the persistence slot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rewearhq/rewear/internal/model"
	"github.com/rewearhq/rewear/internal/storage"
)

// Sentinel errors for operations with a real failure mode. Plain not-found
// is signalled by a nil record instead.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrItemUnavailable    = errors.New("item not available")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// ApprovalBonus is awarded to an item's owner when the listing is approved.
const ApprovalBonus = 25

// Store mediates every read and write of the state tree.
type Store struct {
	mu   sync.Mutex
	st   *model.State
	slot storage.Store
}

// New loads the state tree from the slot. An empty slot or a blob that fails
// to parse falls back to the seed dataset; only real storage I/O errors are
// returned.
func New(ctx context.Context, slot storage.Store) (*Store, error) {
	s := &Store{slot: slot}

	data, err := slot.Load(ctx)
	switch {
	case err == storage.ErrEmpty:
		s.st = seedState(time.Now())
		s.save(ctx)
	case err != nil:
		return nil, fmt.Errorf("loading state: %w", err)
	default:
		st := model.NewState()
		if err := json.Unmarshal(data, st); err != nil {
			slog.Warn("saved state failed to parse, falling back to seed data", "error", err)
			s.st = seedState(time.Now())
			s.save(ctx)
			break
		}
		s.st = st
	}

	return s, nil
}

// save serializes the whole tree into the slot. A failed write is logged and
// otherwise ignored: in-memory state stays the source of truth for the rest
// of the session.
func (s *Store) save(ctx context.Context) {
	data, err := json.Marshal(s.st)
	if err != nil {
		slog.Error("failed to serialize state", "error", err)
		return
	}
	if err := s.slot.Save(ctx, data); err != nil {
		slog.Error("failed to persist state", "error", err)
	}
}

// generateID returns a fresh opaque identifier: the monotonic counter
// combined with a wall-clock timestamp.
func (s *Store) generateID() string {
	id := fmt.Sprintf("id_%d_%d", s.st.NextID, time.Now().UnixMilli())
	s.st.NextID++
	return id
}

// ExportData returns a pretty-printed serialization of the full state tree.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting state: %w", err)
	}
	return data, nil
}

// ImportData replaces the entire tree with the parsed blob. On malformed
// input the current state is left untouched and the parse error is returned.
func (s *Store) ImportData(ctx context.Context, data []byte) error {
	st := model.NewState()
	if err := json.Unmarshal(data, st); err != nil {
		return fmt.Errorf("importing state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
	s.save(ctx)
	return nil
}

// Reset wipes the slot and replaces the tree with a fresh seed dataset.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Clear(ctx); err != nil {
		return fmt.Errorf("clearing state: %w", err)
	}
	s.st = seedState(time.Now())
	s.save(ctx)
	return nil
}
