package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"smartlunch/config"
	"smartlunch/internal/domain/entity"
	domainerrors "smartlunch/internal/domain/errors"
	"smartlunch/internal/domain/repository"
	"smartlunch/internal/domain/service"
	"smartlunch/internal/infra/clock"
	"smartlunch/internal/infra/persistence/memory"
	"smartlunch/internal/infra/smartlunch"
	"smartlunch/internal/infra/smartlunch/smartlunchtest"
	mockService "smartlunch/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// manualPoller records scheduled jobs and runs them only when told to.
type manualPoller struct {
	mu   sync.Mutex
	jobs map[string]func(context.Context)
}

func newManualPoller() *manualPoller {
	return &manualPoller{jobs: map[string]func(context.Context){}}
}

func (p *manualPoller) Every(name string, _ time.Duration, fn func(context.Context)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs[name] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.jobs, name)
	}
}

func (p *manualPoller) Now(_ string, fn func(context.Context)) {
	fn(context.Background())
}

func (p *manualPoller) run(t *testing.T, name string) {
	t.Helper()

	p.mu.Lock()
	fn, ok := p.jobs[name]
	p.mu.Unlock()
	require.True(t, ok, "job %s is not scheduled", name)

	fn(context.Background())
}

func (p *manualPoller) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.jobs))
	for name := range p.jobs {
		names = append(names, name)
	}

	return names
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   *accountService
	server    *smartlunchtest.Server
	repo      *memory.AccountStateRepository
	poller    *manualPoller
	publisher *mockService.MockEventPublisher
	clock     *clock.FakeClock
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	server := smartlunchtest.NewServer()
	t.Cleanup(server.Close)
	server.SetPlaces(
		smartlunchtest.Place{ID: 10, Name: "Biuro", Default: true},
		smartlunchtest.Place{ID: 11, Name: "Magazyn"},
	)
	server.SetDates(10,
		smartlunchtest.Date{Date: "2024-06-01", Hours: []any{"11:30", "12:00"}},
		smartlunchtest.Date{Date: "2024-06-02", Hours: []any{}},
	)
	server.SetFunding(map[string]any{
		"funding_setting": map[string]any{
			"available_fundings": map[string]any{"daily_cents": 2500, "monthly_cents": 41000},
		},
	})

	cfg := &config.Config{}
	cfg.SmartLunch.BaseURL = server.URL
	cfg.SmartLunch.Timeout = 2 * time.Second
	cfg.ApplyDefaults()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewAccountStateRepository()
	poller := newManualPoller()
	publisher := mockService.NewMockEventPublisher(t)
	clk := clock.Fake(testNow)

	svc := NewAccountService(AccountServiceParams{
		Config:    cfg,
		Factory:   smartlunch.NewFactory(cfg, logger),
		Repo:      repo,
		Poller:    poller,
		Publisher: publisher,
		Clock:     clk,
		Logger:    logger,
	})

	return accountServiceFixtures{
		service:   svc.(*accountService),
		server:    server,
		repo:      repo,
		poller:    poller,
		publisher: publisher,
		clock:     clk,
	}
}

func loginDefault(t *testing.T, fx accountServiceFixtures) *entity.SessionStatus {
	t.Helper()

	status, err := fx.service.Login(context.Background(),
		smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword, "")
	require.NoError(t, err)

	return status
}

func TestAccountService_LoginAndSelect(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	status := loginDefault(t, fx)
	assert.Equal(t, smartlunchtest.DefaultEmail, status.Email)
	assert.False(t, status.NeedsReauth)
	assert.False(t, status.Expired)
	require.NotNil(t, status.TokenExpiry)

	places, err := fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelPlace)
	require.NoError(t, err)
	assert.Equal(t, []entity.Option{{Value: "10", Label: "Biuro"}, {Value: "11", Label: "Magazyn"}}, places.Options)
	assert.Equal(t, "10", places.Current)

	days, err := fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelDay)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02"}, optionValues(days))

	hours, err := fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelHour)
	require.NoError(t, err)
	assert.Empty(t, hours.Options)

	_, err = fx.service.Select(ctx, smartlunchtest.DefaultEmail, entity.LevelDay, "2024-06-01")
	require.NoError(t, err)
	hours, err = fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelHour)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:30", "12:00"}, optionValues(hours))

	set, err := fx.service.Select(ctx, smartlunchtest.DefaultEmail, entity.LevelHour, "12:00")
	require.NoError(t, err)
	assert.Equal(t, "12:00", set.Current)

	_, err = fx.service.Select(ctx, smartlunchtest.DefaultEmail, entity.LevelHour, "13:00")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationRejected))

	funding, err := fx.service.Funding(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	daily, ok := funding.DailyDisplay()
	require.True(t, ok)
	assert.Equal(t, "25.00", daily)
	assert.Equal(t, "2024-06-01", funding.SourceDay)

	stored, err := fx.repo.Load(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", stored[entity.StateKeyDay])
	assert.Equal(t, "12:00", stored[entity.StateKeyHour])
	assert.Equal(t, fx.server.URL, stored[entity.StateKeyBase])
	assert.Contains(t, stored[entity.StateKeyCookies], smartlunch.RememberCookie)
	assert.NotContains(t, stored, "password")

	assert.ElementsMatch(t, []string{
		"jan@example.com/place",
		"jan@example.com/day",
		"jan@example.com/hour",
		"jan@example.com/funding",
		"jan@example.com/expiry",
	}, fx.poller.names())
}

func TestAccountService_LoginRejected(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Login(context.Background(), smartlunchtest.DefaultEmail, "wrong", "")
	assert.True(t, domainerrors.IsAuth(err))
	assert.Empty(t, fx.service.Accounts())

	_, err = fx.repo.Load(context.Background(), smartlunchtest.DefaultEmail)
	assert.True(t, errors.Is(err, repository.ErrAccountStateNotFound))
}

func TestAccountService_LoginTwice(t *testing.T) {
	fx := createTestAccountService(t)
	loginDefault(t, fx)

	_, err := fx.service.Login(context.Background(), "JAN@example.com", smartlunchtest.DefaultPassword, "")
	assert.True(t, errors.Is(err, domainerrors.ErrAccountExists))
}

func TestAccountService_SessionExpiryAndReauth(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	loginDefault(t, fx)

	fx.server.ExpireSessions()
	fx.publisher.EXPECT().PublishReauthRequired(mock.Anything, mock.MatchedBy(func(event *service.ReauthEvent) bool {
		return event.Account == smartlunchtest.DefaultEmail &&
			event.Level == "place" &&
			event.BaseURL == fx.server.URL &&
			event.EventID != ""
	})).Return(nil).Once()

	fx.poller.run(t, "jan@example.com/place")

	status, err := fx.service.Session(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	assert.True(t, status.NeedsReauth)

	// Scheduled refreshes are skipped until re-authentication.
	before := fx.server.Count("/employees/api/v1/delivery_places")
	fx.poller.run(t, "jan@example.com/place")
	fx.poller.run(t, "jan@example.com/funding")
	assert.Equal(t, before, fx.server.Count("/employees/api/v1/delivery_places"))

	// A manual refresh still reaches the server but does not publish again.
	err = fx.service.Refresh(ctx, smartlunchtest.DefaultEmail)
	assert.True(t, domainerrors.IsAuth(err))

	status, err = fx.service.Reauth(ctx, smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword)
	require.NoError(t, err)
	assert.False(t, status.NeedsReauth)

	places, err := fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelPlace)
	require.NoError(t, err)
	assert.True(t, places.Available)

	fx.poller.run(t, "jan@example.com/place")
	assert.Greater(t, fx.server.Count("/employees/api/v1/delivery_places"), before)
}

func TestAccountService_ReauthWithWrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	loginDefault(t, fx)

	_, err := fx.service.Reauth(context.Background(), smartlunchtest.DefaultEmail, "wrong")
	assert.True(t, domainerrors.IsAuth(err))
}

func TestAccountService_TransientFailureDoesNotFlag(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	loginDefault(t, fx)

	fx.server.FailNext("/employees/api/v1/delivery_places", 1)
	fx.poller.run(t, "jan@example.com/place")

	status, err := fx.service.Session(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	assert.False(t, status.NeedsReauth)

	places, err := fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelPlace)
	require.NoError(t, err)
	assert.False(t, places.Available)
	assert.Len(t, places.Options, 2)

	fx.poller.run(t, "jan@example.com/place")
	places, err = fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelPlace)
	require.NoError(t, err)
	assert.True(t, places.Available)
}

func TestAccountService_Setup(t *testing.T) {
	t.Run("without stored state", func(t *testing.T) {
		fx := createTestAccountService(t)

		err := fx.service.Setup(context.Background(), smartlunchtest.DefaultEmail)
		assert.True(t, errors.Is(err, domainerrors.ErrNeedsReauth))
	})

	t.Run("restores persisted session and selection", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		loginDefault(t, fx)
		_, err := fx.service.Select(ctx, smartlunchtest.DefaultEmail, entity.LevelPlace, "11")
		require.NoError(t, err)
		require.NoError(t, fx.service.Teardown(ctx, smartlunchtest.DefaultEmail))
		assert.Empty(t, fx.poller.names(), "teardown cancels every job")

		require.NoError(t, fx.service.Setup(ctx, smartlunchtest.DefaultEmail))

		places, err := fx.service.Snapshot(ctx, smartlunchtest.DefaultEmail, entity.LevelPlace)
		require.NoError(t, err)
		assert.Equal(t, "11", places.Current)
		assert.Len(t, fx.poller.names(), 5)
	})

	t.Run("rejected stored session", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		loginDefault(t, fx)
		require.NoError(t, fx.service.Teardown(ctx, smartlunchtest.DefaultEmail))
		fx.server.ExpireSessions()

		err := fx.service.Setup(ctx, smartlunchtest.DefaultEmail)
		assert.True(t, errors.Is(err, domainerrors.ErrNeedsReauth))
		assert.Empty(t, fx.service.Accounts())

		// Reauth of an account that is not live logs in and sets it up.
		status, err := fx.service.Reauth(ctx, smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword)
		require.NoError(t, err)
		assert.False(t, status.NeedsReauth)
		assert.Equal(t, []string{smartlunchtest.DefaultEmail}, fx.service.Accounts())
	})
}

func TestAccountService_ReauthUnknownAccount(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Reauth(context.Background(), "nobody@example.com", "x")
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Remove(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	loginDefault(t, fx)

	require.NoError(t, fx.service.Remove(ctx, smartlunchtest.DefaultEmail))

	_, err := fx.repo.Load(ctx, smartlunchtest.DefaultEmail)
	assert.True(t, errors.Is(err, repository.ErrAccountStateNotFound))
	_, err = fx.service.Session(ctx, smartlunchtest.DefaultEmail)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))

	// Removing again only clears storage.
	assert.NoError(t, fx.service.Remove(ctx, smartlunchtest.DefaultEmail))
}

func TestAccountService_SetServerDefaultPlace(t *testing.T) {
	fx := createTestAccountService(t)
	loginDefault(t, fx)

	err := fx.service.SetServerDefaultPlace(context.Background(), smartlunchtest.DefaultEmail, 11)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedOperation))
}

func TestAccountService_ExpiryWatch(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	loginDefault(t, fx)
	requests := len(fx.server.Requests())

	fx.poller.run(t, "jan@example.com/expiry")
	status, err := fx.service.Session(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	assert.False(t, status.Expired)

	// The fake issues tokens that expire on 2030-01-01.
	fx.clock.Advance(time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC).Sub(testNow))
	fx.poller.run(t, "jan@example.com/expiry")

	status, err = fx.service.Session(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	assert.True(t, status.Expired)
	assert.False(t, status.NeedsReauth)
	assert.Equal(t, requests, len(fx.server.Requests()), "expiry watch makes no requests")
}

func TestAccountService_UnknownAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.Snapshot(ctx, "x@example.com", entity.LevelPlace)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	_, err = fx.service.Select(ctx, "x@example.com", entity.LevelPlace, "1")
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	assert.True(t, errors.Is(fx.service.Teardown(ctx, "x@example.com"), domainerrors.ErrAccountNotFound))
}

// hookedFactory wraps every client it builds so tests can step into the
// middle of a fetch.
type hookedFactory struct {
	inner        service.ClientFactory
	beforePlaces func(ctx context.Context) error
	beforeDates  func(ctx context.Context, placeID int64) error
}

func (f *hookedFactory) NewClient(email, baseURL string) (service.SmartLunchClient, error) {
	client, err := f.inner.NewClient(email, baseURL)
	if err != nil {
		return nil, err
	}

	return &hookedClient{SmartLunchClient: client, factory: f}, nil
}

type hookedClient struct {
	service.SmartLunchClient
	factory *hookedFactory
}

func (c *hookedClient) FetchDeliveryPlaces(ctx context.Context) (*service.DeliveryPlacesPayload, error) {
	if hook := c.factory.beforePlaces; hook != nil {
		if err := hook(ctx); err != nil {
			return nil, err
		}
	}

	return c.SmartLunchClient.FetchDeliveryPlaces(ctx)
}

func (c *hookedClient) FetchDeliveryDates(ctx context.Context, placeID int64) (*service.DeliveryDatesPayload, error) {
	if hook := c.factory.beforeDates; hook != nil {
		if err := hook(ctx, placeID); err != nil {
			return nil, err
		}
	}

	return c.SmartLunchClient.FetchDeliveryDates(ctx, placeID)
}

func TestAccountService_TeardownDuringFirstRefresh(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	var tornDown atomic.Bool
	var teardownErr error
	fx.service.factory = &hookedFactory{
		inner: fx.service.factory,
		beforePlaces: func(ctx context.Context) error {
			if tornDown.CompareAndSwap(false, true) {
				teardownErr = fx.service.Teardown(ctx, smartlunchtest.DefaultEmail)
			}

			return nil
		},
	}

	_, err := fx.service.Login(ctx, smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword, "")

	require.True(t, tornDown.Load())
	require.NoError(t, teardownErr)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	assert.Empty(t, fx.service.Accounts())
	assert.Empty(t, fx.poller.names())

	// The key is free again and a fresh login schedules normally.
	loginDefault(t, fx)
	assert.Equal(t, []string{"jan@example.com"}, fx.service.Accounts())
	assert.Len(t, fx.poller.names(), 5)
}

func TestAccountService_UnregisterKeepsNewerAccount(t *testing.T) {
	fx := createTestAccountService(t)
	loginDefault(t, fx)

	current := fx.service.lookup("jan@example.com")
	require.NotNil(t, current)

	fx.service.unregister(&account{key: current.key})
	assert.Same(t, current, fx.service.lookup("jan@example.com"))

	fx.service.unregister(current)
	assert.Nil(t, fx.service.lookup("jan@example.com"))
}

func TestAccountService_ReauthWaitsForInFlightSelect(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	var armed atomic.Bool
	started := make(chan struct{})
	release := make(chan struct{})
	fx.service.factory = &hookedFactory{
		inner: fx.service.factory,
		beforeDates: func(_ context.Context, placeID int64) error {
			if placeID != 11 || !armed.CompareAndSwap(true, false) {
				return nil
			}
			close(started)
			<-release

			return domainerrors.NewAuthError(http.StatusUnauthorized, "session from before the re-login")
		},
	}
	loginDefault(t, fx)

	fx.publisher.EXPECT().PublishReauthRequired(mock.Anything, mock.MatchedBy(func(event *service.ReauthEvent) bool {
		return event.Level == "place"
	})).Return(nil).Once()

	armed.Store(true)
	selectErr := make(chan error, 1)
	go func() {
		_, err := fx.service.Select(ctx, smartlunchtest.DefaultEmail, entity.LevelPlace, "11")
		selectErr <- err
	}()
	<-started

	reauthErr := make(chan error, 1)
	go func() {
		_, err := fx.service.Reauth(ctx, smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword)
		reauthErr <- err
	}()

	// Give Reauth time to reach the coordinator before the select fails.
	time.Sleep(50 * time.Millisecond)
	close(release)

	assert.True(t, domainerrors.IsAuth(<-selectErr))
	require.NoError(t, <-reauthErr)

	status, err := fx.service.Session(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	assert.False(t, status.NeedsReauth)
}

func TestAccountService_RejectionOfReplacedSessionIsIgnored(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	loginDefault(t, fx)

	acc := fx.service.lookup("jan@example.com")
	require.NotNil(t, acc)
	staleEpoch := acc.epoch.Load()

	_, err := fx.service.Reauth(ctx, smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, staleEpoch+1, acc.epoch.Load())

	// The publisher mock has no expectation, so a publish fails the test.
	handled := fx.service.handleRefreshError(ctx, acc, staleEpoch, "hour",
		domainerrors.NewAuthError(http.StatusUnauthorized, "old cookie"))
	assert.True(t, handled)

	status, err := fx.service.Session(ctx, smartlunchtest.DefaultEmail)
	require.NoError(t, err)
	assert.False(t, status.NeedsReauth)
}
