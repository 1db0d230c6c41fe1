// Package sweeper runs the periodic expiration passes: deactivating
// reservations whose check-in date has passed and retiring lapsed
// impulse promotions.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultInterval = time.Hour

type ReservationStore interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type ImpulseStore interface {
	ExpireLapsed(ctx context.Context, now time.Time) (int64, error)
}

type Sweeper struct {
	reservations ReservationStore
	impulses     ImpulseStore
	interval     time.Duration
}

func New(reservations ReservationStore, impulses ImpulseStore, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Sweeper{
		reservations: reservations,
		impulses:     impulses,
		interval:     interval,
	}
}

// Run sweeps once immediately, then on every tick until ctx is
// cancelled. Each pass only touches rows still matching its expiry
// filter, so overlapping with request traffic or re-running after a
// crash changes nothing it already handled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep executes both expiration passes. The two passes are
// independent: a failure in one does not stop the other.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now()

	deactivated, err := s.reservations.DeactivateExpired(ctx, now)
	if err != nil {
		zap.L().Error("reservation sweep failed", zap.Error(err))
	} else if deactivated > 0 {
		zap.L().Info("deactivated expired reservations", zap.Int64("count", deactivated))
	}

	lapsed, err := s.impulses.ExpireLapsed(ctx, now)
	if err != nil {
		zap.L().Error("impulse sweep failed", zap.Error(err))
	} else if lapsed > 0 {
		zap.L().Info("retired lapsed impulses", zap.Int64("count", lapsed))
	}
}
