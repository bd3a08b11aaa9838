// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/pkg/locker"
)

// StatusScheduler periodically rolls fixed departure statuses forward
// (upcoming -> ongoing -> completed) as their travel dates pass. A
// distributed lock ensures only one instance does the sweep per tick.
type StatusScheduler struct {
	departures *service.DepartureService
	interval   time.Duration
	timeout    time.Duration
	logger     *zap.Logger
	locker     locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// StatusConfig holds status scheduler configuration.
type StatusConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewStatusScheduler creates a new StatusScheduler.
func NewStatusScheduler(
	departures *service.DepartureService,
	cfg StatusConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *StatusScheduler {
	return &StatusScheduler{
		departures: departures,
		interval:   cfg.Interval,
		timeout:    cfg.Timeout,
		logger:     logger,
		locker:     locker,
	}
}

// Start begins the background sweep.
func (s *StatusScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting departure status scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *StatusScheduler) Stop() {
	s.logger.Info("stopping departure status scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("departure status scheduler stopped")
}

func (s *StatusScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	if runOnStartup {
		s.sweep()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep performs one roll-over pass under the distributed lock.
//
// The lock TTL equals the interval (cooldown model): a successful sweep
// holds the lock for the whole interval so other instances skip their
// tick; a failed sweep releases it so any instance can retry sooner.
func (s *StatusScheduler) sweep() {
	const lockKey = "departure:status:lock"

	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))
		return
	}
	if !acquired {
		s.logger.Debug("another instance is sweeping departure statuses, skipping")
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	updated, err := s.departures.RollOverStatuses(ctx)
	if err != nil {
		s.logger.Error("departure status sweep failed", zap.Error(err))

		// Let another instance retry before the cooldown expires.
		if relErr := s.locker.Release(ctx, lockKey); relErr != nil {
			s.logger.Warn("failed to release lock after sweep failure", zap.Error(relErr))
		}
		return
	}

	s.logger.Debug("departure status sweep completed", zap.Int("updated", updated))
}
