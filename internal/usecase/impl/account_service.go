package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"smartlunch/config"
	deliverycontext "smartlunch/internal/delivery/context"
	"smartlunch/internal/domain/entity"
	domainerrors "smartlunch/internal/domain/errors"
	"smartlunch/internal/domain/repository"
	"smartlunch/internal/domain/service"
	"smartlunch/internal/infra/clock"
	"smartlunch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// account is the live state of one set-up account.
type account struct {
	key    string
	email  string
	client service.SmartLunchClient
	coord  *coordinator

	needsReauth atomic.Bool
	expired     atomic.Bool

	// epoch counts re-authentications. A rejection seen by a call that
	// started under an older epoch belongs to the replaced session.
	epoch atomic.Uint64

	mu      sync.Mutex
	cancels []func()
}

func (a *account) stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, cancel := range a.cancels {
		cancel()
	}
	a.cancels = nil
}

type accountService struct {
	cfg       *config.Config
	factory   service.ClientFactory
	repo      repository.AccountStateRepository
	poller    service.Poller
	publisher service.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger

	mu       sync.RWMutex
	accounts map[string]*account
}

// AccountServiceParams holds dependencies for the account service, injected by Fx
type AccountServiceParams struct {
	fx.In

	Config    *config.Config
	Factory   service.ClientFactory
	Repo      repository.AccountStateRepository
	Poller    service.Poller
	Publisher service.EventPublisher
	Clock     clock.Clock
	Logger    *slog.Logger
}

// NewAccountService creates the account registry.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		cfg:       params.Config,
		factory:   params.Factory,
		repo:      params.Repo,
		poller:    params.Poller,
		publisher: params.Publisher,
		clock:     params.Clock,
		logger:    params.Logger,
		accounts:  map[string]*account{},
	}
}

func (s *accountService) Login(ctx context.Context, email, password, baseURL string) (*entity.SessionStatus, error) {
	key := entity.AccountKey(email)
	if s.lookup(key) != nil {
		return nil, domainerrors.ErrAccountExists.WithDetails(key)
	}
	if baseURL == "" {
		baseURL = s.cfg.SmartLunch.BaseURL
	}

	client, err := s.factory.NewClient(email, baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "create client")
	}
	session, err := client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !client.Validate(ctx) {
		return nil, domainerrors.NewAuthError(0, "login succeeded but the session was not accepted")
	}

	if err := s.persistSession(ctx, key, session); err != nil {
		return nil, err
	}

	acc, err := s.activate(ctx, key, email, client, entity.Selection{})
	if err != nil {
		return nil, err
	}

	return s.status(acc), nil
}

func (s *accountService) Setup(ctx context.Context, email string) error {
	key := entity.AccountKey(email)
	if s.lookup(key) != nil {
		return domainerrors.ErrAccountExists.WithDetails(key)
	}

	state, err := s.loadState(ctx, key)
	if errors.Is(err, repository.ErrAccountStateNotFound) {
		return domainerrors.ErrNeedsReauth.WithDetails("no stored state for " + key)
	}
	if err != nil {
		return err
	}
	if len(state.Cookies) == 0 {
		return domainerrors.ErrNeedsReauth.WithDetails("no stored session")
	}

	client, err := s.factory.NewClient(state.Email, state.BaseURL)
	if err != nil {
		return errors.Wrap(err, "create client")
	}
	client.Attach(state.Cookies)
	if !client.Validate(ctx) {
		return domainerrors.ErrNeedsReauth.WithDetails("stored session was rejected")
	}

	_, err = s.activate(ctx, key, state.Email, client, state.Selection)

	return err
}

func (s *accountService) Teardown(_ context.Context, email string) error {
	key := entity.AccountKey(email)

	s.mu.Lock()
	acc, ok := s.accounts[key]
	delete(s.accounts, key)
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrAccountNotFound.WithDetails(key)
	}
	acc.stop()
	s.logger.Info("Account torn down", slog.String("account", key))

	return nil
}

func (s *accountService) Remove(ctx context.Context, email string) error {
	key := entity.AccountKey(email)
	if err := s.Teardown(ctx, key); err != nil && !errors.Is(err, domainerrors.ErrAccountNotFound) {
		return err
	}

	return errors.Wrap(s.repo.Delete(ctx, key), "delete account state")
}

func (s *accountService) Reauth(ctx context.Context, email, password string) (*entity.SessionStatus, error) {
	key := entity.AccountKey(email)
	acc := s.lookup(key)
	if acc == nil {
		return s.reauthInactive(ctx, key, email, password)
	}

	var session *entity.SessionContext
	err := acc.coord.Exclusive(func() error {
		var err error
		if session, err = acc.client.Login(ctx, acc.email, password); err != nil {
			return err
		}
		acc.epoch.Add(1)
		acc.needsReauth.Store(false)
		acc.expired.Store(false)

		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.persistSession(ctx, key, session); err != nil {
		s.logger.Error("Failed to persist re-authenticated session",
			slog.String("account", key),
			slog.Any("error", err),
		)
	}
	s.logger.Info("Account re-authenticated", slog.String("account", key))

	epoch := acc.epoch.Load()
	if err := acc.coord.RefreshAll(s.jobContext(ctx, acc, "reauth")); err != nil {
		if s.handleRefreshError(ctx, acc, epoch, "reauth", err) {
			return nil, err
		}
	}

	return s.status(acc), nil
}

// reauthInactive logs in for an account whose setup failed, then sets it up.
func (s *accountService) reauthInactive(ctx context.Context, key, email, password string) (*entity.SessionStatus, error) {
	state, err := s.loadState(ctx, key)
	if errors.Is(err, repository.ErrAccountStateNotFound) {
		return nil, domainerrors.ErrAccountNotFound.WithDetails(key)
	}
	if err != nil {
		return nil, err
	}
	if state.Email != "" {
		email = state.Email
	}

	client, err := s.factory.NewClient(email, state.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "create client")
	}
	session, err := client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.persistSession(ctx, key, session); err != nil {
		return nil, err
	}

	acc, err := s.activate(ctx, key, email, client, state.Selection)
	if err != nil {
		return nil, err
	}

	return s.status(acc), nil
}

func (s *accountService) Refresh(ctx context.Context, email string) error {
	acc, err := s.get(email)
	if err != nil {
		return err
	}

	epoch := acc.epoch.Load()
	err = acc.coord.RefreshAll(s.jobContext(ctx, acc, "manual"))
	if domainerrors.IsAuth(err) {
		s.handleRefreshError(ctx, acc, epoch, "manual", err)
	}

	return err
}

func (s *accountService) Select(ctx context.Context, email string, level entity.Level, value string) (*entity.OptionSet, error) {
	acc, err := s.get(email)
	if err != nil {
		return nil, err
	}

	epoch := acc.epoch.Load()
	set, err := acc.coord.Select(ctx, level, value)
	if domainerrors.IsAuth(err) {
		s.handleRefreshError(ctx, acc, epoch, string(level), err)
	}

	return set, err
}

func (s *accountService) Snapshot(_ context.Context, email string, level entity.Level) (*entity.OptionSet, error) {
	acc, err := s.get(email)
	if err != nil {
		return nil, err
	}

	return acc.coord.Snapshot(level)
}

func (s *accountService) Funding(_ context.Context, email string) (*entity.FundingSnapshot, error) {
	acc, err := s.get(email)
	if err != nil {
		return nil, err
	}

	return acc.coord.Funding(), nil
}

func (s *accountService) Session(_ context.Context, email string) (*entity.SessionStatus, error) {
	acc, err := s.get(email)
	if err != nil {
		return nil, err
	}

	return s.status(acc), nil
}

func (s *accountService) SetServerDefaultPlace(ctx context.Context, email string, placeID int64) error {
	acc, err := s.get(email)
	if err != nil {
		return err
	}

	return acc.client.SetDeliveryPlace(ctx, placeID)
}

func (s *accountService) Accounts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.accounts))
	for key := range s.accounts {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

// activate builds the coordinator, runs the first refresh and schedules
// the polling jobs. A rejected session fails the activation, and so does a
// teardown that lands during the first refresh.
func (s *accountService) activate(
	ctx context.Context,
	key, email string,
	client service.SmartLunchClient,
	selection entity.Selection,
) (*account, error) {
	logger := s.logger.With(slog.String("account", key))
	store := newSelectionStore(key, s.repo, logger, selection)
	acc := &account{
		key:    key,
		email:  email,
		client: client,
		coord:  newCoordinator(key, client, store, s.cfg.SmartLunch.DefaultPlacePolicy, s.clock, logger),
	}

	s.mu.Lock()
	if _, exists := s.accounts[key]; exists {
		s.mu.Unlock()

		return nil, domainerrors.ErrAccountExists.WithDetails(key)
	}
	s.accounts[key] = acc
	s.mu.Unlock()

	if err := acc.coord.RefreshAll(s.jobContext(ctx, acc, "setup")); err != nil {
		if domainerrors.IsAuth(err) {
			s.unregister(acc)

			return nil, domainerrors.ErrNeedsReauth.WithDetails(err.Error())
		}
		logger.Warn("First refresh incomplete", slog.Any("error", err))
	}

	s.mu.Lock()
	if s.accounts[key] != acc {
		s.mu.Unlock()

		return nil, domainerrors.ErrAccountNotFound.WithDetails(key + " was torn down during setup")
	}
	s.schedule(acc)
	s.mu.Unlock()

	logger.Info("Account set up", slog.Int("accounts", len(s.Accounts())))

	return acc, nil
}

// unregister drops acc unless the key already belongs to a newer account.
func (s *accountService) unregister(acc *account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accounts[acc.key] == acc {
		delete(s.accounts, acc.key)
	}
}

// schedule registers the polling jobs. Callers hold s.mu so that a
// concurrent Teardown either precedes it or cancels what it registers.
func (s *accountService) schedule(acc *account) {
	refresh := s.cfg.Refresh
	jobs := []struct {
		name     string
		interval time.Duration
		fn       func(context.Context) error
	}{
		{name: string(entity.LevelPlace), interval: refresh.Places, fn: acc.coord.RefreshPlaces},
		{name: string(entity.LevelDay), interval: refresh.Days, fn: acc.coord.RefreshDays},
		{name: string(entity.LevelHour), interval: refresh.Hours, fn: acc.coord.RefreshHours},
		{name: "funding", interval: refresh.Funding, fn: acc.coord.RefreshFunding},
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	for _, job := range jobs {
		acc.cancels = append(acc.cancels,
			s.poller.Every(acc.key+"/"+job.name, job.interval, s.job(acc, job.name, job.fn)))
	}
	acc.cancels = append(acc.cancels,
		s.poller.Every(acc.key+"/expiry", refresh.Expiry, func(context.Context) { s.checkExpiry(acc) }))
}

// job wraps a refresh for the poller: skipped while the account needs
// re-authentication, tagged with a run id otherwise.
func (s *accountService) job(acc *account, name string, fn func(context.Context) error) func(context.Context) {
	return func(ctx context.Context) {
		if acc.needsReauth.Load() {
			s.logger.Debug("Skipping refresh until re-authentication",
				slog.String("account", acc.key),
				slog.String("job", name),
			)

			return
		}

		epoch := acc.epoch.Load()
		runCtx := s.jobContext(ctx, acc, name)
		if err := fn(runCtx); err != nil {
			s.handleRefreshError(runCtx, acc, epoch, name, err)
		}
	}
}

func (s *accountService) jobContext(ctx context.Context, acc *account, name string) context.Context {
	runID := uuid.NewString()
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("account", acc.key),
		slog.String("job", name),
		slog.String("run_id", runID),
	)
	ctx = deliverycontext.WithRunID(ctx, runID)

	return deliverycontext.WithLogger(ctx, logger)
}

// handleRefreshError reports whether err was an AuthError. The first
// AuthError after a healthy period flags the account and publishes a
// ReauthRequired event; later ones are only logged. epoch is the session
// epoch read before the failed call started.
func (s *accountService) handleRefreshError(ctx context.Context, acc *account, epoch uint64, level string, err error) bool {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	if !domainerrors.IsAuth(err) {
		logger.Debug("Refresh failed, retrying next interval", slog.Any("error", err))

		return false
	}
	if epoch != acc.epoch.Load() {
		logger.Debug("Ignoring rejection of a replaced session", slog.Any("error", err))

		return true
	}
	if !acc.needsReauth.CompareAndSwap(false, true) {
		return true
	}

	logger.Warn("Session rejected, re-authentication required", slog.Any("error", err))

	event := &service.ReauthEvent{
		RequestID:  deliverycontext.CorrelationID(ctx),
		EventID:    uuid.NewString(),
		Account:    acc.key,
		BaseURL:    acc.client.Session().BaseURL,
		Level:      level,
		Reason:     err.Error(),
		OccurredAt: s.clock.Now(),
	}
	if pubErr := s.publisher.PublishReauthRequired(context.WithoutCancel(ctx), event); pubErr != nil {
		logger.Error("Failed to publish reauth event", slog.Any("error", pubErr))
	}

	return true
}

// checkExpiry flags the session as expired once the decoded remember
// token expiry has passed. It makes no network call.
func (s *accountService) checkExpiry(acc *account) {
	exp := acc.client.Session().TokenExpiry
	if exp == nil || s.clock.Now().Before(*exp) {
		return
	}
	if acc.expired.CompareAndSwap(false, true) {
		s.logger.Warn("Remember token expired",
			slog.String("account", acc.key),
			slog.Time("expired_at", *exp),
		)
	}
}

func (s *accountService) status(acc *account) *entity.SessionStatus {
	session := acc.client.Session()
	expired := acc.expired.Load()
	if session.TokenExpiry != nil && !s.clock.Now().Before(*session.TokenExpiry) {
		expired = true
	}

	return &entity.SessionStatus{
		Email:       session.Email,
		BaseURL:     session.BaseURL,
		TokenExpiry: session.TokenExpiry,
		Expired:     expired,
		NeedsReauth: acc.needsReauth.Load(),
	}
}

func (s *accountService) persistSession(ctx context.Context, key string, session *entity.SessionContext) error {
	values, err := entity.SessionValues(session)
	if err != nil {
		return err
	}

	return errors.Wrap(s.repo.Merge(ctx, key, values), "persist session")
}

func (s *accountService) loadState(ctx context.Context, key string) (*entity.AccountState, error) {
	values, err := s.repo.Load(ctx, key)
	if errors.Is(err, repository.ErrAccountStateNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "load account state")
	}

	state, err := entity.AccountStateFromValues(values)
	if err != nil {
		return nil, err
	}
	if state.Email == "" {
		state.Email = key
	}
	if state.BaseURL == "" {
		state.BaseURL = s.cfg.SmartLunch.BaseURL
	}

	return state, nil
}

func (s *accountService) lookup(key string) *account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accounts[key]
}

func (s *accountService) get(email string) (*account, error) {
	key := entity.AccountKey(email)
	if acc := s.lookup(key); acc != nil {
		return acc, nil
	}

	return nil, domainerrors.ErrAccountNotFound.WithDetails(key)
}
