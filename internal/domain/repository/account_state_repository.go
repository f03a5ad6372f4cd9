// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrAccountStateNotFound is returned when nothing is stored for an account.
var ErrAccountStateNotFound = errors.New("account state not found")

// AccountStateRepository is key/value storage for per-account state.
// Writes merge into the stored keys and never overwrite unrelated ones.
type AccountStateRepository interface {
	// Load returns every stored key for the account.
	Load(ctx context.Context, account string) (map[string]string, error)

	// Merge upserts the given keys. A nil value deletes the key.
	Merge(ctx context.Context, account string, values map[string]*string) error

	// Delete removes all keys of the account.
	Delete(ctx context.Context, account string) error
}
