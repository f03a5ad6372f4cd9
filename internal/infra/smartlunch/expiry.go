package smartlunch

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// rememberPayload is the signed part of the remember cookie.
type rememberPayload struct {
	Rails *struct {
		Exp string `json:"exp"`
	} `json:"_rails"`
}

// DecodeExpiry extracts the expiry embedded in a remember cookie value.
// The value is URL-decoded, cut at the first "--", base64 decoded with or
// without padding, and read as JSON. Any malformation yields nil.
func DecodeExpiry(value string) *time.Time {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return nil
	}

	head, _, _ := strings.Cut(raw, "--")
	data, ok := decodeBase64Loose(head)
	if !ok {
		return nil
	}

	var payload rememberPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}
	if payload.Rails == nil || payload.Rails.Exp == "" {
		return nil
	}

	exp, err := time.Parse(time.RFC3339Nano, payload.Rails.Exp)
	if err != nil {
		return nil
	}

	return &exp
}

// decodeBase64Loose accepts both alphabets and missing padding.
func decodeBase64Loose(s string) ([]byte, bool) {
	// QueryUnescape turns a literal '+' into a space; undo that first.
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "+")
	s = strings.NewReplacer("-", "+", "_", "/", "\n", "", "\r", "").Replace(s)
	s = strings.TrimRight(s, "=")
	if s == "" {
		return nil, false
	}

	data, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}

	return data, true
}
