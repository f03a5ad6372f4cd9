// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"smartlunch/internal/domain/repository"
	"smartlunch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountStateRepository implements the repository.AccountStateRepository interface.
type accountStateRepository struct {
	db *gorm.DB
}

// NewAccountStateRepository is the constructor for accountStateRepository.
func NewAccountStateRepository(db *gorm.DB) repository.AccountStateRepository {
	return &accountStateRepository{
		db: db,
	}
}

// Load retrieves every stored key of an account.
func (repo *accountStateRepository) Load(ctx context.Context, account string) (map[string]string, error) {
	var rows []*model.AccountStateModel

	if err := repo.db.WithContext(ctx).
		Where("account = ?", account).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load account state")
	}
	if len(rows) == 0 {
		return nil, repository.ErrAccountStateNotFound
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	return values, nil
}

// Merge upserts the given keys and deletes the ones mapped to nil, in one transaction.
func (repo *accountStateRepository) Merge(ctx context.Context, account string, values map[string]*string) error {
	upserts, deletes := splitMerge(account, values, time.Now().UTC())

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(upserts) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "account"}, {Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&upserts).Error; err != nil {
				return errors.Wrap(err, "failed to upsert account state")
			}
		}

		if len(deletes) > 0 {
			if err := tx.
				Where("account = ? AND key IN ?", account, deletes).
				Delete(&model.AccountStateModel{}).Error; err != nil {
				return errors.Wrap(err, "failed to delete account state keys")
			}
		}

		return nil
	})
}

// Delete removes the whole state of an account.
func (repo *accountStateRepository) Delete(ctx context.Context, account string) error {
	if err := repo.db.WithContext(ctx).
		Where("account = ?", account).
		Delete(&model.AccountStateModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete account state")
	}

	return nil
}

func splitMerge(account string, values map[string]*string, now time.Time) ([]*model.AccountStateModel, []string) {
	var (
		upserts []*model.AccountStateModel
		deletes []string
	)
	for key, value := range values {
		if value == nil {
			deletes = append(deletes, key)

			continue
		}
		upserts = append(upserts, &model.AccountStateModel{
			Account:   account,
			Key:       key,
			Value:     *value,
			UpdatedAt: now,
		})
	}

	return upserts, deletes
}
