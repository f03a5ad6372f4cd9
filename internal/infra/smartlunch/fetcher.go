package smartlunch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	domainerrors "smartlunch/internal/domain/errors"
	"smartlunch/internal/domain/service"

	"github.com/pkg/errors"
)

// Request performs an authenticated call and returns the JSON body.
//
// 401, 403 and 419 become an AuthError, other non-2xx statuses an HTTPError,
// and a 2xx body that is not valid JSON a DecodeError. Transport failures,
// timeouts included, are HTTPErrors with status 0.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.setBaseHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if csrf := c.csrfToken(); csrf != "" {
		req.Header.Set("X-CSRF-Token", csrf)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewHTTPError(0, path, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, domainerrors.NewHTTPError(resp.StatusCode, path, err.Error())
	}

	switch {
	case isAuthStatus(resp.StatusCode):
		c.logger.Warn("Remote service rejected session",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.NewAuthError(resp.StatusCode, truncate(string(raw), maxDetailLength))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, domainerrors.NewHTTPError(resp.StatusCode, path, truncate(string(raw), maxDetailLength))
	case !json.Valid(raw):
		return nil, domainerrors.NewDecodeError(path, errors.New("response body is not valid JSON"))
	}

	return raw, nil
}

func isAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden || status == 419
}

func (c *Client) getJSON(ctx context.Context, path string, out any) (json.RawMessage, error) {
	raw, err := c.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, domainerrors.NewDecodeError(path, err)
	}

	return raw, nil
}

// FetchDeliveryPlaces returns the grouped delivery places of the account.
func (c *Client) FetchDeliveryPlaces(ctx context.Context) (*service.DeliveryPlacesPayload, error) {
	var payload service.DeliveryPlacesPayload
	if _, err := c.getJSON(ctx, DeliveryPlacesPath, &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

// FetchDeliveryDates returns the orderable days and hours of one place.
func (c *Client) FetchDeliveryDates(ctx context.Context, placeID int64) (*service.DeliveryDatesPayload, error) {
	var payload service.DeliveryDatesPayload
	if _, err := c.getJSON(ctx, fmt.Sprintf(DeliveryDatesPathTpl, placeID), &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

// FetchFundingForDay returns the funding settings for an ISO date (YYYY-MM-DD).
func (c *Client) FetchFundingForDay(ctx context.Context, day string) (*service.FundingPayload, error) {
	var payload service.FundingPayload
	raw, err := c.getJSON(ctx, fmt.Sprintf(FundingPathTpl, day), &payload)
	if err != nil {
		return nil, err
	}
	payload.Raw = raw

	return &payload, nil
}

// SetDeliveryPlace is not offered by the remote service.
func (c *Client) SetDeliveryPlace(_ context.Context, placeID int64) error {
	return domainerrors.ErrUnsupportedOperation.WithDetails(
		fmt.Sprintf("no endpoint to set delivery place %d on the server", placeID))
}
