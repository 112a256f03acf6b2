// Package storage defines the key-value store that game progress is saved to.
package storage

import (
	"context"
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
)

// ErrNotFound is returned by Get when the key has no value.
// It matches domain.ErrNotFound under errors.Is.
var ErrNotFound = fmt.Errorf("%w: no value stored for key", domain.ErrNotFound)

// Store is a byte-oriented key-value store.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the store's resources.
	Close() error
}
