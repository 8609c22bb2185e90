package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/metrics"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
)

// DefaultTokenRetention is how long expired or revoked refresh tokens are
// kept for audit before housekeeping deletes them.
const DefaultTokenRetention = 30 * 24 * time.Hour

// HousekeepingService periodically purges refresh tokens that expired or were
// revoked longer ago than Retention. The auth flows never delete tokens.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Now       func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour and a
// non-positive retention to DefaultTokenRetention.
func NewHousekeepingService(
	s store.Store,
	logger *slog.Logger,
	interval, retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = DefaultTokenRetention
	}

	return &HousekeepingService{
		Store:     s,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		Now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"retention", s.Retention,
	)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup performs a single purge pass and returns the number of deleted
// tokens.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	cutoff := s.Now().UTC().Add(-s.Retention)

	n, err := s.Store.RefreshTokens().DeleteRefreshTokensBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to purge refresh tokens", "error", err)
		return 0
	}

	metrics.RefreshTokensPurged.Add(float64(n))
	s.Logger.Info("housekeeping cleanup completed",
		"purged_refresh_tokens", n,
		"cutoff", cutoff,
	)
	return n
}
