package service

import (
	"context"
	"encoding/json"

	"smartlunch/internal/domain/entity"
)

// SessionManager owns the authenticated session of one account.
type SessionManager interface {
	// Login performs the interactive sign-in and replaces the session on success.
	// The password is used for this call only.
	Login(ctx context.Context, email, password string) (*entity.SessionContext, error)

	// Validate reports whether the remote service still accepts the session.
	// Every failure, including network errors, reads as false.
	Validate(ctx context.Context) bool

	// Attach replaces the whole cookie store with exactly the given cookies.
	Attach(cookies map[string]string)

	// Session returns a snapshot of the current session context.
	Session() *entity.SessionContext
}

// DeliveryFetcher retrieves the read-only ordering resources.
type DeliveryFetcher interface {
	FetchDeliveryPlaces(ctx context.Context) (*DeliveryPlacesPayload, error)
	FetchDeliveryDates(ctx context.Context, placeID int64) (*DeliveryDatesPayload, error)
	FetchFundingForDay(ctx context.Context, day string) (*FundingPayload, error)

	// SetDeliveryPlace would change the server-side default place. The remote
	// service has no confirmed endpoint for it, so implementations reject it.
	SetDeliveryPlace(ctx context.Context, placeID int64) error
}

// SmartLunchClient is the per-account remote client.
type SmartLunchClient interface {
	SessionManager
	DeliveryFetcher
}

// ClientFactory builds a remote client bound to one account and origin.
type ClientFactory interface {
	NewClient(email, baseURL string) (SmartLunchClient, error)
}

// DeliveryPlacesPayload is the body of the delivery places endpoint.
type DeliveryPlacesPayload struct {
	Companies []CompanyDeliveryPlaces `json:"companies_delivery_places"`
}

// CompanyDeliveryPlaces groups the places of one company.
type CompanyDeliveryPlaces struct {
	DeliveryPlaces []DeliveryPlace `json:"delivery_places"`
}

// DeliveryPlace is one location entry. ID is nil when the server omitted it.
type DeliveryPlace struct {
	ID      *int64 `json:"id"`
	NamePL  string `json:"name_pl"`
	Name    string `json:"name"`
	Default any    `json:"default"`
}

// IsDefault reports whether the server marked the place as default.
// Only a literal JSON true counts.
func (p DeliveryPlace) IsDefault() bool {
	b, ok := p.Default.(bool)

	return ok && b
}

// DeliveryDatesPayload is the body of the delivery dates endpoint.
type DeliveryDatesPayload struct {
	DeliveryDates []DeliveryDate `json:"delivery_dates"`
}

// DeliveryDate is one orderable day with its hours. Hours keeps raw JSON
// values; non-string entries are ignored by consumers.
type DeliveryDate struct {
	Date  string `json:"date"`
	Hours []any  `json:"hours"`
}

// FundingPayload is the body of the funding settings endpoint.
type FundingPayload struct {
	FundingSetting *FundingSetting `json:"funding_setting"`
	Raw            json.RawMessage `json:"-"`
}

// FundingSetting wraps the available funding amounts.
type FundingSetting struct {
	AvailableFundings *AvailableFundings `json:"available_fundings"`
}

// AvailableFundings keeps raw values so that malformed fields can be
// dropped one by one.
type AvailableFundings struct {
	DailyCents   any `json:"daily_cents"`
	MonthlyCents any `json:"monthly_cents"`
}
