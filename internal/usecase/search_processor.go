package usecase

import (
	"context"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"
)

// SearchProcessor runs one poll cycle: for every active search it
// builds the trip windows, fetches latest prices, filters and formats
// the matches, drops everything already seen, and posts one digest per
// search to each notifier.
type SearchProcessor struct {
	searchRepo       repository.SearchRepository
	priceRepo        repository.PriceRepository
	flightRecordRepo repository.FlightRecordRepository
	notifiers        []repository.Notifier
	formatter        *FlightFormatter
	metrics          *metrics.Metrics
	logger           logger.Logger
	maxHoursPassed   int
	now              func() time.Time
}

// NewSearchProcessor creates a new search processor
func NewSearchProcessor(
	searchRepo repository.SearchRepository,
	priceRepo repository.PriceRepository,
	flightRecordRepo repository.FlightRecordRepository,
	notifiers []repository.Notifier,
	formatter *FlightFormatter,
	m *metrics.Metrics,
	log logger.Logger,
	maxHoursPassed int,
) *SearchProcessor {
	return &SearchProcessor{
		searchRepo:       searchRepo,
		priceRepo:        priceRepo,
		flightRecordRepo: flightRecordRepo,
		notifiers:        notifiers,
		formatter:        formatter,
		metrics:          m,
		logger:           log,
		maxHoursPassed:   maxHoursPassed,
		now:              time.Now,
	}
}

// ProcessSearches runs the poll cycle over all active searches. A
// failing search is logged and counted but never aborts the remaining
// ones.
func (p *SearchProcessor) ProcessSearches(ctx context.Context) error {
	started := p.now()

	searches, err := p.searchRepo.FindActive(ctx)
	if err != nil {
		p.logger.Error("Failed to load searches", "error", err)
		p.metrics.ErrorsCount.WithLabelValues("load_searches").Inc()
		return err
	}

	p.logger.Info("Starting poll cycle", "searches", len(searches))

	for _, search := range searches {
		if err := p.processSearch(ctx, search); err != nil {
			p.logger.Error("Search failed", "search", search.Name, "error", err)
			p.metrics.ErrorsCount.WithLabelValues("process_search").Inc()
			continue
		}
		p.metrics.SearchesProcessed.Inc()
	}

	p.metrics.CycleDuration.Observe(p.now().Sub(started).Seconds())
	p.logger.Info("Poll cycle finished", "duration", p.now().Sub(started).String())
	return nil
}

func (p *SearchProcessor) processSearch(ctx context.Context, search *entity.Search) error {
	today := p.now()

	pairs, err := GenerateDatePairs(search, today)
	if err != nil {
		return err
	}
	months, err := ScanMonths(search, today)
	if err != nil {
		return err
	}

	flights, err := p.priceRepo.GetLatest(ctx, search.Destinations, months)
	if err != nil {
		return err
	}
	p.metrics.FlightsFetched.Add(float64(len(flights)))
	p.logger.Debug("Fetched latest flights",
		"search", search.Name,
		"flights", len(flights),
		"pairs", len(pairs),
		"months", len(months))

	filtered, err := FilterFlights(flights, pairs, FilterOptions{
		MaxPrice:             search.MaxPrice,
		MaxHoursPassed:       p.maxHoursPassed,
		ExcludedDestinations: search.ExcludedDestinations,
		Now:                  p.now(),
	})
	if err != nil {
		return err
	}

	formatted := p.formatter.FormatFlights(filtered)
	unique := dedupeFlights(formatted)

	fresh, err := p.flightRecordRepo.FilterNew(ctx, unique)
	if err != nil {
		return err
	}
	p.metrics.FlightsMatched.Add(float64(len(fresh)))

	if len(fresh) == 0 {
		p.logger.Info("No new flights", "search", search.Name)
		return nil
	}

	p.logger.Info("Found new flights", "search", search.Name, "count", len(fresh))

	for _, notifier := range p.notifiers {
		if err := notifier.Post(ctx, search.Name, fresh); err != nil {
			// One dead channel should not silence the others.
			p.logger.Error("Notifier failed", "notifier", notifier.Name(), "search", search.Name, "error", err)
			p.metrics.ErrorsCount.WithLabelValues("notify_" + notifier.Name()).Inc()
			continue
		}
		p.metrics.NotificationsSent.Inc()
	}

	return nil
}

// dedupeFlights drops in-batch duplicates, keeping first occurrences.
// The generator may emit the same window from consecutive days and the
// provider reports per month, so overlaps are expected.
func dedupeFlights(flights []entity.FormattedFlight) []entity.FormattedFlight {
	seen := make(map[string]struct{}, len(flights))
	unique := make([]entity.FormattedFlight, 0, len(flights))

	for _, f := range flights {
		key := f.DedupeKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, f)
	}

	return unique
}
