// Package memory keeps account state in process memory. It backs the
// default storage driver and tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"smartlunch/internal/domain/repository"
)

// AccountStateRepository is a map-backed repository.AccountStateRepository.
type AccountStateRepository struct {
	mu       sync.RWMutex
	accounts map[string]map[string]string
}

var _ repository.AccountStateRepository = (*AccountStateRepository)(nil)

// NewAccountStateRepository creates an empty repository.
func NewAccountStateRepository() *AccountStateRepository {
	return &AccountStateRepository{accounts: map[string]map[string]string{}}
}

// Load returns a copy of the stored keys.
func (r *AccountStateRepository) Load(_ context.Context, account string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values, ok := r.accounts[account]
	if !ok {
		return nil, repository.ErrAccountStateNotFound
	}

	return maps.Clone(values), nil
}

// Merge applies upserts and nil deletions.
func (r *AccountStateRepository) Merge(_ context.Context, account string, values map[string]*string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account]
	if !ok {
		stored = map[string]string{}
		r.accounts[account] = stored
	}
	for key, value := range values {
		if value == nil {
			delete(stored, key)

			continue
		}
		stored[key] = *value
	}

	return nil
}

// Delete drops every key of the account.
func (r *AccountStateRepository) Delete(_ context.Context, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.accounts, account)

	return nil
}
