package model

import "time"

// AccountStateModel is the GORM-specific struct for the 'account_states' table.
// Each row is one key of one account's persisted state.
type AccountStateModel struct {
	Account   string `gorm:"type:varchar(320);primaryKey"`
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountStateModel) TableName() string {
	return "account_states"
}
