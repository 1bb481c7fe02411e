// Package storage provides the persistence slot for the store: a single
// named location holding the entire serialized state tree.
package storage

import (
	"context"
	"errors"
)

// ErrEmpty is returned by Load when the slot has never been written.
var ErrEmpty = errors.New("storage: empty slot")

// Store is the persistence port. Save overwrites the slot with the full
// serialized state tree; Load returns the last saved blob or ErrEmpty;
// Clear wipes the slot.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}
