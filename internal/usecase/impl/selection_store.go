package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "smartlunch/internal/delivery/context"
	"smartlunch/internal/domain/entity"
	"smartlunch/internal/domain/repository"
)

// selectionStore holds the selection of one account. Memory is updated
// first; persistence is a best-effort merge-write of the changed key only.
type selectionStore struct {
	account string
	repo    repository.AccountStateRepository
	logger  *slog.Logger

	mu  sync.RWMutex
	sel entity.Selection
}

func newSelectionStore(account string, repo repository.AccountStateRepository, logger *slog.Logger, initial entity.Selection) *selectionStore {
	return &selectionStore{
		account: account,
		repo:    repo,
		logger:  logger,
		sel:     initial.Clone(),
	}
}

// Get returns a copy of the current selection.
func (s *selectionStore) Get() entity.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sel.Clone()
}

// SetPlace stores the place id; nil clears it. Reports whether it changed.
func (s *selectionStore) SetPlace(ctx context.Context, id *int64) bool {
	s.mu.Lock()
	if equalID(s.sel.PlaceID, id) {
		s.mu.Unlock()

		return false
	}
	var value *string
	if id != nil {
		v := *id
		s.sel.PlaceID = &v
		value = strPtr(entity.FormatPlaceID(v))
	} else {
		s.sel.PlaceID = nil
	}
	s.mu.Unlock()

	s.persist(ctx, entity.StateKeyPlaceID, value)

	return true
}

// SetDay stores the day; empty clears it. Reports whether it changed.
func (s *selectionStore) SetDay(ctx context.Context, day string) bool {
	return s.setString(ctx, entity.StateKeyDay, &s.sel.Day, day)
}

// SetHour stores the hour; empty clears it. Reports whether it changed.
func (s *selectionStore) SetHour(ctx context.Context, hour string) bool {
	return s.setString(ctx, entity.StateKeyHour, &s.sel.Hour, hour)
}

func (s *selectionStore) setString(ctx context.Context, key string, field *string, value string) bool {
	s.mu.Lock()
	if *field == value {
		s.mu.Unlock()

		return false
	}
	*field = value
	s.mu.Unlock()

	var stored *string
	if value != "" {
		stored = strPtr(value)
	}
	s.persist(ctx, key, stored)

	return true
}

func (s *selectionStore) persist(ctx context.Context, key string, value *string) {
	if err := s.repo.Merge(ctx, s.account, map[string]*string{key: value}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to persist selection",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func equalID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func strPtr(s string) *string {
	return &s
}
