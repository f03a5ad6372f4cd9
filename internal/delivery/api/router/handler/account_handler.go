package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"smartlunch/internal/delivery/api/response"
	deliverycontext "smartlunch/internal/delivery/context"
	"smartlunch/internal/domain/entity"
	"smartlunch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler exposes the account registry to the host.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// LoginRequest represents the request body for adding an account
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	BaseURL  string `json:"base_url" validate:"omitempty,url"`
}

// ReauthRequest represents the request body for re-authentication
type ReauthRequest struct {
	Password string `json:"password" validate:"required"`
}

// SelectRequest carries the chosen option. An empty value clears the selection.
type SelectRequest struct {
	Value string `json:"value"`
}

// ServerDefaultPlaceRequest represents the request body for changing the server default place
type ServerDefaultPlaceRequest struct {
	PlaceID int64 `json:"place_id" validate:"required,gt=0"`
}

// FundingView is the funding snapshot with display strings.
type FundingView struct {
	*entity.FundingSnapshot
	Daily   string `json:"daily,omitempty"`
	Monthly string `json:"monthly,omitempty"`
}

// Login signs an account in and starts polling it
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid login input", err.Error())
	}

	status, err := h.accountUC.Login(c.Request().Context(), req.Email, req.Password, req.BaseURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, status)
}

// ListAccounts returns the keys of the live accounts
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string][]string{"accounts": h.accountUC.Accounts()})
}

// Setup restores an account from its persisted session
func (h *AccountHandler) Setup(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.accountUC.Setup(ctx, email); err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.accountUC.Session(ctx, email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Delete stops polling an account; with ?purge=true its stored state is removed too
func (h *AccountHandler) Delete(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	purge, _ := strconv.ParseBool(c.QueryParam("purge"))
	ctx := c.Request().Context()
	if purge {
		err = h.accountUC.Remove(ctx, email)
	} else {
		err = h.accountUC.Teardown(ctx, email)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Account deleted",
		slog.String("account", entity.AccountKey(email)),
		slog.Bool("purge", purge),
	)

	return response.NoContent(c)
}

// Reauth logs the account in again with a fresh password
func (h *AccountHandler) Reauth(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	var req ReauthRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid re-authentication input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid re-authentication input", err.Error())
	}

	status, err := h.accountUC.Reauth(c.Request().Context(), email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Refresh refreshes every level of the account now
func (h *AccountHandler) Refresh(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	if err := h.accountUC.Refresh(c.Request().Context(), email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Session returns the session status of the account
func (h *AccountHandler) Session(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	status, err := h.accountUC.Session(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Options returns the option set of one level
func (h *AccountHandler) Options(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	level, ok := entity.ParseLevel(c.Param("level"))
	if !ok {
		return response.BadRequest(c, "UNKNOWN_LEVEL", "Level must be place, day or hour")
	}

	set, err := h.accountUC.Snapshot(c.Request().Context(), email, level)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, set)
}

// Select stores the selection of one level
func (h *AccountHandler) Select(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	level, ok := entity.ParseLevel(c.Param("level"))
	if !ok {
		return response.BadRequest(c, "UNKNOWN_LEVEL", "Level must be place, day or hour")
	}

	var req SelectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	set, err := h.accountUC.Select(c.Request().Context(), email, level, req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, set)
}

// SetServerDefaultPlace asks the server to change the default place
func (h *AccountHandler) SetServerDefaultPlace(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	var req ServerDefaultPlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid place input", err.Error())
	}

	if err := h.accountUC.SetServerDefaultPlace(c.Request().Context(), email, req.PlaceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Funding returns the funding snapshot of the account
func (h *AccountHandler) Funding(c echo.Context) error {
	email, err := accountParam(c)
	if err != nil {
		return err
	}

	funding, err := h.accountUC.Funding(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view := FundingView{FundingSnapshot: funding}
	view.Daily, _ = funding.DailyDisplay()
	view.Monthly, _ = funding.MonthlyDisplay()

	return response.Success(c, http.StatusOK, view)
}

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func accountParam(c echo.Context) (string, error) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil || email == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid account email")
	}

	return email, nil
}
