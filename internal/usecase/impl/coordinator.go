package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"smartlunch/config"
	deliverycontext "smartlunch/internal/delivery/context"
	"smartlunch/internal/domain/entity"
	domainerrors "smartlunch/internal/domain/errors"
	"smartlunch/internal/domain/service"
	"smartlunch/internal/infra/clock"
)

// coordinator owns the option sets of one account and keeps them
// consistent with its selection. Every refresh and selection command runs
// under mu, so the place -> day -> hour cascade is one ordered sequence.
type coordinator struct {
	account string
	fetcher service.DeliveryFetcher
	store   *selectionStore
	policy  string
	clock   clock.Clock
	logger  *slog.Logger

	mu            sync.Mutex
	places        entity.OptionSet
	days          entity.OptionSet
	hours         entity.OptionSet
	funding       entity.FundingSnapshot
	serverDefault *int64

	// Last effective place and day the cascade acted on.
	observedPlace *int64
	observedDay   string
}

func newCoordinator(
	account string,
	fetcher service.DeliveryFetcher,
	store *selectionStore,
	policy string,
	clk clock.Clock,
	logger *slog.Logger,
) *coordinator {
	return &coordinator{
		account: account,
		fetcher: fetcher,
		store:   store,
		policy:  policy,
		clock:   clk,
		logger:  logger,
		places:  entity.OptionSet{Level: entity.LevelPlace},
		days:    entity.OptionSet{Level: entity.LevelDay},
		hours:   entity.OptionSet{Level: entity.LevelHour},
	}
}

// RefreshPlaces refreshes the place level and cascades if the effective place moved.
func (c *coordinator) RefreshPlaces(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.refreshPlacesLocked(ctx); err != nil {
		return err
	}

	return c.settleLocked(ctx)
}

// RefreshDays refreshes the day level and cascades if the day was invalidated.
func (c *coordinator) RefreshDays(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.refreshDaysLocked(ctx); err != nil {
		return err
	}

	return c.settleLocked(ctx)
}

// RefreshHours refreshes the hour level.
func (c *coordinator) RefreshHours(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshHoursLocked(ctx)
}

// RefreshFunding refreshes the funding snapshot for today.
func (c *coordinator) RefreshFunding(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshFundingLocked(ctx)
}

// Exclusive runs fn while no refresh or selection is in progress.
func (c *coordinator) Exclusive(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn()
}

// RefreshAll refreshes every level in dependency order. Each level fails
// on its own; an AuthError stops the sequence and is returned.
func (c *coordinator) RefreshAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for _, refresh := range []func(context.Context) error{
		c.refreshPlacesLocked,
		c.refreshDaysLocked,
		c.refreshHoursLocked,
		c.refreshFundingLocked,
	} {
		err := refresh(ctx)
		if domainerrors.IsAuth(err) {
			return err
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	c.observeLocked()

	return firstErr
}

// Select validates value against the latest options of level, stores it
// and cascades. Failures of the cascade other than AuthError only mark
// their level unavailable.
func (c *coordinator) Select(ctx context.Context, level entity.Level, value string) (*entity.OptionSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set := c.setLocked(level)
	if set == nil {
		return nil, domainerrors.ErrUnknownLevel.WithDetails(string(level))
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	if value != "" && !set.Contains(value) {
		logger.Warn("Selection rejected",
			slog.String("level", string(level)),
			slog.String("value", value),
			slog.Int("options", len(set.Options)),
		)

		return nil, domainerrors.ErrValidationRejected.WithDetails(
			fmt.Sprintf("%s %q is not among %d current options", level, value, len(set.Options)))
	}

	switch level {
	case entity.LevelPlace:
		var id *int64
		if value != "" {
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, domainerrors.ErrValidationRejected.WithDetails("place id must be an integer")
			}
			id = &parsed
		}
		c.store.SetPlace(ctx, id)
	case entity.LevelDay:
		c.store.SetDay(ctx, value)
	case entity.LevelHour:
		c.store.SetHour(ctx, value)
	}

	err := c.settleLocked(ctx)

	return c.snapshotLocked(level), err
}

// Snapshot returns a copy of the option set of level with its resolved value.
func (c *coordinator) Snapshot(level entity.Level) (*entity.OptionSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.setLocked(level) == nil {
		return nil, domainerrors.ErrUnknownLevel.WithDetails(string(level))
	}

	return c.snapshotLocked(level), nil
}

// Funding returns a copy of the latest funding snapshot.
func (c *coordinator) Funding() *entity.FundingSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	funding := c.funding

	return &funding
}

// settleLocked runs the cross-trigger rule: a moved effective place
// refreshes days then hours, a moved day refreshes hours. The observation
// is re-synchronised afterwards so that the refreshes' own invalidations
// do not cascade a second time.
func (c *coordinator) settleLocked(ctx context.Context) error {
	place := c.effectivePlaceLocked()
	day := c.store.Get().Day

	switch {
	case !equalID(place, c.observedPlace):
		c.observedPlace = place
		if err := c.refreshDaysLocked(ctx); domainerrors.IsAuth(err) {
			return err
		}
		if err := c.refreshHoursLocked(ctx); domainerrors.IsAuth(err) {
			return err
		}
	case day != c.observedDay:
		if err := c.refreshHoursLocked(ctx); domainerrors.IsAuth(err) {
			return err
		}
	}
	c.observeLocked()

	return nil
}

func (c *coordinator) observeLocked() {
	c.observedPlace = c.effectivePlaceLocked()
	c.observedDay = c.store.Get().Day
}

// effectivePlaceLocked is the selected place, else the server default.
func (c *coordinator) effectivePlaceLocked() *int64 {
	if id := c.store.Get().PlaceID; id != nil {
		return id
	}
	if c.serverDefault != nil {
		id := *c.serverDefault

		return &id
	}

	return nil
}

func (c *coordinator) refreshPlacesLocked(ctx context.Context) error {
	payload, err := c.fetcher.FetchDeliveryPlaces(ctx)
	if err != nil {
		c.failLocked(ctx, &c.places, err)

		return err
	}

	options, def := flattenPlaces(payload, c.policy)
	c.places = entity.OptionSet{
		Level:     entity.LevelPlace,
		Options:   options,
		Available: true,
		UpdatedAt: c.clock.Now(),
	}
	c.serverDefault = def
	if def != nil {
		c.places.Default = entity.FormatPlaceID(*def)
	}

	if id := c.store.Get().PlaceID; id != nil && !c.places.Contains(entity.FormatPlaceID(*id)) {
		c.invalidate(ctx, entity.LevelPlace, entity.FormatPlaceID(*id))
		c.store.SetPlace(ctx, nil)
	}

	return nil
}

func (c *coordinator) refreshDaysLocked(ctx context.Context) error {
	place := c.effectivePlaceLocked()
	if place == nil {
		c.days = entity.OptionSet{Level: entity.LevelDay, Available: true, UpdatedAt: c.clock.Now()}
		c.clearStaleDayLocked(ctx)

		return nil
	}

	payload, err := c.fetcher.FetchDeliveryDates(ctx, *place)
	if err != nil {
		c.failLocked(ctx, &c.days, err)

		return err
	}

	c.days = entity.OptionSet{
		Level:     entity.LevelDay,
		Options:   dayOptions(payload),
		Available: true,
		UpdatedAt: c.clock.Now(),
	}
	c.clearStaleDayLocked(ctx)

	return nil
}

func (c *coordinator) clearStaleDayLocked(ctx context.Context) {
	if day := c.store.Get().Day; day != "" && !c.days.Contains(day) {
		c.invalidate(ctx, entity.LevelDay, day)
		c.store.SetDay(ctx, "")
	}
}

func (c *coordinator) refreshHoursLocked(ctx context.Context) error {
	place := c.effectivePlaceLocked()
	day := c.store.Get().Day
	if place == nil || day == "" {
		c.hours = entity.OptionSet{Level: entity.LevelHour, Available: true, UpdatedAt: c.clock.Now()}
		c.clearStaleHourLocked(ctx)

		return nil
	}

	payload, err := c.fetcher.FetchDeliveryDates(ctx, *place)
	if err != nil {
		c.failLocked(ctx, &c.hours, err)

		return err
	}

	c.hours = entity.OptionSet{
		Level:     entity.LevelHour,
		Options:   hourOptions(payload, day),
		Available: true,
		UpdatedAt: c.clock.Now(),
	}
	c.clearStaleHourLocked(ctx)

	return nil
}

func (c *coordinator) clearStaleHourLocked(ctx context.Context) {
	if hour := c.store.Get().Hour; hour != "" && !c.hours.Contains(hour) {
		c.invalidate(ctx, entity.LevelHour, hour)
		c.store.SetHour(ctx, "")
	}
}

func (c *coordinator) refreshFundingLocked(ctx context.Context) error {
	day := c.clock.Now().Format(time.DateOnly)

	payload, err := c.fetcher.FetchFundingForDay(ctx, day)
	if err != nil {
		c.funding.Available = false
		c.funding.LastError = err.Error()
		deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("Funding refresh failed",
			slog.String("day", day),
			slog.Any("error", err),
		)

		return err
	}

	daily, monthly := fundingAmounts(payload)
	c.funding = entity.FundingSnapshot{
		DailyCents:   daily,
		MonthlyCents: monthly,
		SourceDay:    day,
		Available:    true,
		FetchedAt:    c.clock.Now(),
	}

	return nil
}

// failLocked marks a level unavailable and keeps its previous options.
func (c *coordinator) failLocked(ctx context.Context, set *entity.OptionSet, err error) {
	set.Available = false
	set.LastError = err.Error()

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("Refresh failed",
		slog.String("level", string(set.Level)),
		slog.Bool("auth", domainerrors.IsAuth(err)),
		slog.Any("error", err),
	)
}

func (c *coordinator) invalidate(ctx context.Context, level entity.Level, value string) {
	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Info("Selection no longer offered, cleared",
		slog.String("level", string(level)),
		slog.String("value", value),
	)
}

func (c *coordinator) setLocked(level entity.Level) *entity.OptionSet {
	switch level {
	case entity.LevelPlace:
		return &c.places
	case entity.LevelDay:
		return &c.days
	case entity.LevelHour:
		return &c.hours
	default:
		return nil
	}
}

func (c *coordinator) snapshotLocked(level entity.Level) *entity.OptionSet {
	set := *c.setLocked(level)
	set.Options = append([]entity.Option(nil), set.Options...)

	sel := c.store.Get()
	switch level {
	case entity.LevelPlace:
		if place := c.effectivePlaceLocked(); place != nil {
			set.Current = entity.FormatPlaceID(*place)
		}
	case entity.LevelDay:
		set.Current = sel.Day
	case entity.LevelHour:
		set.Current = sel.Hour
	}

	return &set
}

// flattenPlaces turns the grouped payload into options. Entries without
// an id are skipped. When several places are marked default, policy
// decides whether the first or the last one wins.
func flattenPlaces(payload *service.DeliveryPlacesPayload, policy string) ([]entity.Option, *int64) {
	var (
		options []entity.Option
		def     *int64
	)
	if payload == nil {
		return options, nil
	}

	for _, company := range payload.Companies {
		for _, place := range company.DeliveryPlaces {
			if place.ID == nil {
				continue
			}
			id := *place.ID
			options = append(options, entity.Option{
				Value: entity.FormatPlaceID(id),
				Label: placeLabel(place),
			})
			if place.IsDefault() && (def == nil || policy != config.DefaultPlaceFirst) {
				def = &id
			}
		}
	}

	return options, def
}

func placeLabel(place service.DeliveryPlace) string {
	switch {
	case place.NamePL != "":
		return place.NamePL
	case place.Name != "":
		return place.Name
	default:
		return fmt.Sprintf("Place %d", *place.ID)
	}
}

// dayOptions keeps the server order of the dates.
func dayOptions(payload *service.DeliveryDatesPayload) []entity.Option {
	var options []entity.Option
	if payload == nil {
		return options
	}

	seen := map[string]bool{}
	for _, date := range payload.DeliveryDates {
		if date.Date == "" || seen[date.Date] {
			continue
		}
		seen[date.Date] = true
		options = append(options, entity.Option{Value: date.Date, Label: date.Date})
	}

	return options
}

// hourOptions returns the string hours of day; other JSON types are dropped.
func hourOptions(payload *service.DeliveryDatesPayload, day string) []entity.Option {
	var options []entity.Option
	if payload == nil {
		return options
	}

	for _, date := range payload.DeliveryDates {
		if date.Date != day {
			continue
		}
		for _, raw := range date.Hours {
			if hour, ok := raw.(string); ok && hour != "" {
				options = append(options, entity.Option{Value: hour, Label: hour})
			}
		}

		break
	}

	return options
}
