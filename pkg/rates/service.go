package rates

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ratedesk/ratedesk/pkg/config"
	"github.com/ratedesk/ratedesk/pkg/domain"
	"github.com/ratedesk/ratedesk/pkg/eventbus"
	"github.com/ratedesk/ratedesk/pkg/provider"
)

// Service resolves rate snapshots honoring the freshness policy, with a
// live -> durable-cache fallback. It owns the single in-memory snapshot;
// every mutation of that state happens under one mutex so a freshness check
// can never race a stale overwrite.
type Service struct {
	fiat   provider.FiatRates
	crypto provider.CryptoPrice
	metal  provider.MetalPrice
	store  provider.SnapshotStore
	bus    eventbus.EventBus
	logger *slog.Logger
	cfg    *config.Rates

	now func() time.Time

	mu      sync.Mutex
	current *domain.RateSnapshot
}

// New creates a rate service over the three upstream fetchers and the
// durable snapshot store.
func New(
	fiat provider.FiatRates,
	crypto provider.CryptoPrice,
	metal provider.MetalPrice,
	store provider.SnapshotStore,
	bus eventbus.EventBus,
	logger *slog.Logger,
	cfg *config.Rates,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fiat:   fiat,
		crypto: crypto,
		metal:  metal,
		store:  store,
		bus:    bus,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// GetRates returns the current snapshot: from memory if fresh, else from a
// live fetch, else from the durable cache record. When the durable fallback
// is served, an OfflineModeEngaged advisory event is published.
func (s *Service) GetRates(ctx context.Context) (*domain.RateSnapshot, error) {
	snapshot, event, err := s.resolve(ctx)
	if event != nil && s.bus != nil {
		// Advisory only; published after the critical section so slow
		// subscribers cannot hold the snapshot lock.
		_ = s.bus.Publish(ctx, event)
	}
	return snapshot, err
}

func (s *Service) resolve(ctx context.Context) (*domain.RateSnapshot, domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.current != nil && s.current.Age(now) < s.cfg.Freshness {
		return s.current, nil, nil
	}

	snapshot, fetchErr := s.fetchLive(ctx, now)
	if fetchErr == nil {
		s.current = snapshot
		if err := s.store.Save(snapshot); err != nil {
			s.logger.Warn("Failed to persist rate snapshot", "error", err)
		}
		s.logger.Info("Live rate snapshot assembled",
			"fiat_count", len(snapshot.FiatRates),
			"crypto_usd", snapshot.CryptoUSDPrice,
			"metal_usd_oz", snapshot.MetalUSDPricePerOz,
		)
		return snapshot, nil, nil
	}
	s.logger.Warn("Live rate fetch failed, trying durable cache", "error", fetchErr)

	cached, loadErr := s.store.Load()
	if loadErr != nil {
		s.logger.Error("Durable cache unavailable", "error", loadErr)
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrRatesUnavailable, fetchErr)
	}

	// The persisted timestamp is kept as-is: the snapshot stays stale, so the
	// next call retries the live fetch until it succeeds.
	cached.Origin = domain.OriginCachedFile
	s.current = cached

	event := domain.OfflineModeEngaged{
		EventID:     uuid.New(),
		Reason:      fetchErr.Error(),
		SnapshotAge: cached.Age(now),
		Timestamp:   now,
	}
	return cached, event, nil
}

// fetchLive issues the three sub-fetches concurrently, each bounded by the
// configured per-fetch timeout. Assembly is all-or-nothing: any failure
// aborts the attempt and nothing is stored.
func (s *Service) fetchLive(ctx context.Context, now time.Time) (*domain.RateSnapshot, error) {
	var (
		fiatRates   map[string]float64
		cryptoPrice float64
		metalPrice  float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.cfg.FetchTimeout)
		defer cancel()
		rates, err := s.fiat.FetchRates(fctx, s.cfg.BaseCurrency)
		if err != nil {
			return fmt.Errorf("fiat source %s: %w", s.fiat.Name(), err)
		}
		fiatRates = rates
		return nil
	})

	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.cfg.FetchTimeout)
		defer cancel()
		price, err := s.crypto.FetchUSDPrice(fctx)
		if err != nil {
			return fmt.Errorf("crypto source %s: %w", s.crypto.Name(), err)
		}
		cryptoPrice = price
		return nil
	})

	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.cfg.FetchTimeout)
		defer cancel()
		price, err := s.metal.FetchUSDPricePerOunce(fctx)
		if err != nil {
			return fmt.Errorf("metal source %s: %w", s.metal.Name(), err)
		}
		metalPrice = price
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &domain.RateSnapshot{
		FiatRates:          fiatRates,
		CryptoUSDPrice:     cryptoPrice,
		MetalUSDPricePerOz: metalPrice,
		FetchedAt:          now.Unix(),
		Origin:             domain.OriginLive,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ClearCache discards the in-memory snapshot, resets freshness to "never
// fetched", and deletes the durable record. Clearing an empty cache is a
// no-op success.
func (s *Service) ClearCache(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	err := s.store.Delete()
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to delete durable rate cache: %w", err)
	}

	if s.bus != nil {
		_ = s.bus.Publish(ctx, domain.CacheCleared{
			EventID:   uuid.New(),
			Timestamp: s.now(),
		})
	}
	s.logger.Info("Rate cache cleared")
	return nil
}
