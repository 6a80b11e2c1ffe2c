package worker

import (
	"context"
	"sync"
	"time"

	"tipbot/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper periodically drives the two background reconciliation passes:
// balance consolidation across all linked accounts, and refunds of
// expired unclaimed tips. Both passes are also the retry path for
// transfers that failed inline, so the interval bounds how long a
// failure stays unresolved.
type Sweeper struct {
	consolidator ports.Consolidator
	unclaimed    ports.UnclaimedTipManager
	interval     time.Duration
	log          zerolog.Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSweeper creates a sweeper ticking at the given interval.
func NewSweeper(consolidator ports.Consolidator, unclaimed ports.UnclaimedTipManager,
	interval time.Duration, log zerolog.Logger) *Sweeper {

	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		consolidator: consolidator,
		unclaimed:    unclaimed,
		interval:     interval,
		log:          log,
		stop:         make(chan struct{}),
	}
}

// Start launches the sweep loop. The first pass runs one interval after
// startup.
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.log.Info().Dur("interval", s.interval).Msg("sweep worker started")
		for {
			select {
			case <-ticker.C:
				s.runOnce(ctx)
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close stops the sweep loop and waits for an in-flight pass to finish.
func (s *Sweeper) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.wg.Wait()
}

func (s *Sweeper) runOnce(ctx context.Context) {
	if err := s.consolidator.Sweep(ctx); err != nil {
		s.log.Error().Err(err).Msg("consolidation sweep failed")
	}
	if err := s.unclaimed.ExpireSweep(ctx); err != nil {
		s.log.Error().Err(err).Msg("unclaimed tip expiry sweep failed")
	}
}
