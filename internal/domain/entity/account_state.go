package entity

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Keys of the persisted account state.
const (
	StateKeyEmail   = "email"
	StateKeyBase    = "base"
	StateKeyCookies = "cookies"
	StateKeyExpiry  = "remember_exp"
	StateKeyPlaceID = "place_id"
	StateKeyDay     = "day"
	StateKeyHour    = "hour"
)

// AccountState is everything persisted for one account. It never holds the password.
type AccountState struct {
	Email       string
	BaseURL     string
	Cookies     map[string]string
	TokenExpiry *time.Time
	Selection   Selection
}

// AccountStateFromValues decodes persisted key/value pairs.
// Malformed optional values are dropped rather than failing the load.
func AccountStateFromValues(values map[string]string) (*AccountState, error) {
	state := &AccountState{
		Email:   values[StateKeyEmail],
		BaseURL: values[StateKeyBase],
		Cookies: map[string]string{},
	}

	if raw := values[StateKeyCookies]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &state.Cookies); err != nil {
			return nil, errors.Wrap(err, "decode persisted cookies")
		}
	}

	if raw := values[StateKeyExpiry]; raw != "" {
		if exp, err := time.Parse(time.RFC3339, raw); err == nil {
			state.TokenExpiry = &exp
		}
	}

	if raw := values[StateKeyPlaceID]; raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			state.Selection.PlaceID = &id
		}
	}
	state.Selection.Day = values[StateKeyDay]
	state.Selection.Hour = values[StateKeyHour]

	return state, nil
}

// SessionValues returns the merge-write set for the session part of the state.
func SessionValues(session *SessionContext) (map[string]*string, error) {
	cookies, err := json.Marshal(session.Cookies)
	if err != nil {
		return nil, errors.Wrap(err, "encode cookies")
	}

	values := map[string]*string{
		StateKeyEmail:   ptr(session.Email),
		StateKeyBase:    ptr(session.BaseURL),
		StateKeyCookies: ptr(string(cookies)),
		StateKeyExpiry:  nil,
	}
	if session.TokenExpiry != nil {
		values[StateKeyExpiry] = ptr(session.TokenExpiry.UTC().Format(time.RFC3339))
	}

	return values, nil
}

func ptr(s string) *string {
	return &s
}
