// internal/service/price_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"goldvault/internal/cache"
	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/upstream"
)

// Freshness windows of the two price caches.
const (
	SnapshotWindow  = time.Minute
	LivePriceWindow = 60 * time.Second
)

// PriceService defines the interface for gold price retrieval.
//
// The two read paths carry different failure policies on purpose:
// CurrentPrice is fail-soft (a static fallback snapshot substitutes for any
// upstream failure), LivePrice is fail-hard (upstream failures surface as
// errors).
type PriceService interface {
	// CurrentPrice returns the cached snapshot when fresh, otherwise fetches,
	// converts, persists and returns a new one. Never fails.
	CurrentPrice(ctx context.Context) *domain.GoldPrice
	// LivePrice returns the live converted spot price with the raw quote and
	// FX rate. Fails with util.ErrUpstream when a provider is unusable.
	LivePrice(ctx context.Context) (*domain.LiveGoldPrice, error)
	// HistoricalPrices returns snapshots from the trailing number of days,
	// oldest first.
	HistoricalPrices(ctx context.Context, days int) ([]domain.GoldPrice, error)
}

// priceService implements the PriceService interface.
type priceService struct {
	q         repository.DBExecutor
	prices    repository.GoldPriceRepository
	snapshots cache.PriceCache
	live      *cache.Memory[domain.LiveGoldPrice]
	gold      upstream.GoldFeed
	rates     upstream.RateFeed
	logger    *slog.Logger
	now       func() time.Time
}

// NewPriceService creates a new instance of PriceService.
func NewPriceService(
	q repository.DBExecutor,
	prices repository.GoldPriceRepository,
	snapshots cache.PriceCache,
	live *cache.Memory[domain.LiveGoldPrice],
	gold upstream.GoldFeed,
	rates upstream.RateFeed,
	logger *slog.Logger,
) PriceService {
	return &priceService{
		q:         q,
		prices:    prices,
		snapshots: snapshots,
		live:      live,
		gold:      gold,
		rates:     rates,
		logger:    logger,
		now:       time.Now,
	}
}

// CurrentPrice implements the fail-soft policy: the caller always gets a
// snapshot, marked source="fallback" when the provider is unreachable.
func (s *priceService) CurrentPrice(ctx context.Context) *domain.GoldPrice {
	cached, err := s.snapshots.Latest(ctx)
	if err == nil && s.snapshots.Fresh(cached) {
		return cached
	}

	spot, err := s.gold.SpotPrice(ctx)
	if err != nil {
		s.logger.Warn("gold price fetch failed, using fallback", "error", err)
		return domain.FallbackGoldPrice(s.now().UTC())
	}

	gram24k := domain.PerGram(spot.Price).Mul(domain.UsdToQarStatic)
	price := domain.NewGoldPrice(gram24k, "QAR", "FreeGoldAPI", s.now().UTC())

	if err := s.snapshots.Store(ctx, price); err != nil {
		// The computed price is still good; only the history write failed.
		s.logger.Warn("failed to store gold price snapshot", "error", err)
	}
	return price
}

// LivePrice implements the fail-hard policy with a live FX conversion.
func (s *priceService) LivePrice(ctx context.Context) (*domain.LiveGoldPrice, error) {
	if cached, ok := s.live.Get(); ok {
		return &cached, nil
	}

	spot, err := s.gold.SpotPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("live price: %w", err)
	}

	rate, err := s.rates.Rate(ctx, "QAR")
	if err != nil {
		return nil, fmt.Errorf("live price: %w", err)
	}

	ounceQAR := spot.Price.Mul(rate)
	price := domain.LiveGoldPrice{
		Source:    "FreeGoldAPI + OpenExchangeRates",
		Timestamp: s.now().UTC(),
		OunceUSD:  spot.Price.Round(2),
		UsdToQar:  rate.Round(4),
		OunceQAR:  ounceQAR.Round(2),
		GramQAR:   domain.PerGram(ounceQAR).Round(2),
		GoldDate:  spot.Date,
	}

	s.live.Put(price)
	return &price, nil
}

func (s *priceService) HistoricalPrices(ctx context.Context, days int) ([]domain.GoldPrice, error) {
	if days <= 0 {
		days = 7
	}
	since := s.now().UTC().AddDate(0, 0, -days)

	snapshots, err := s.prices.SnapshotsSince(ctx, s.q, since, 1000)
	if err != nil {
		return nil, fmt.Errorf("historical prices: %w", err)
	}
	return snapshots, nil
}
