package entity

import (
	"strconv"
	"time"
)

// Level is one step of the place -> day -> hour cascade.
type Level string

const (
	LevelPlace Level = "place"
	LevelDay   Level = "day"
	LevelHour  Level = "hour"
)

// ParseLevel converts a raw level name into a Level.
func ParseLevel(raw string) (Level, bool) {
	switch Level(raw) {
	case LevelPlace, LevelDay, LevelHour:
		return Level(raw), true
	default:
		return "", false
	}
}

// Selection is the user's choice on every cascade level. Empty values mean unset.
type Selection struct {
	PlaceID *int64 `json:"place_id,omitempty"`
	Day     string `json:"day,omitempty"`
	Hour    string `json:"hour,omitempty"`
}

// Clone returns a copy that shares no pointers with s.
func (s Selection) Clone() Selection {
	out := s
	if s.PlaceID != nil {
		id := *s.PlaceID
		out.PlaceID = &id
	}

	return out
}

// Option is one entry of an option set.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionSet is the current list of valid choices for one level. It is
// replaced wholesale on each successful refresh.
type OptionSet struct {
	Level     Level     `json:"level"`
	Options   []Option  `json:"options"`
	Current   string    `json:"current,omitempty"` // Resolved value, empty when none.
	Default   string    `json:"default,omitempty"` // Server-declared default, place level only.
	Available bool      `json:"available"`         // False when the last refresh failed or never succeeded.
	LastError string    `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether value is one of the options.
func (o *OptionSet) Contains(value string) bool {
	for _, opt := range o.Options {
		if opt.Value == value {
			return true
		}
	}

	return false
}

// Values returns the option values in order.
func (o *OptionSet) Values() []string {
	values := make([]string, 0, len(o.Options))
	for _, opt := range o.Options {
		values = append(values, opt.Value)
	}

	return values
}

// FormatPlaceID renders a place id the way option values carry it.
func FormatPlaceID(id int64) string {
	return strconv.FormatInt(id, 10)
}
