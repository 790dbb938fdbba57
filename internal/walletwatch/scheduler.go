package walletwatch

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/walletbot/internal/pkg/x/chflow"
)

// scheduler runs tick periodically on a single goroutine. The next period
// starts once the previous tick has returned, so ticks never overlap.
type scheduler struct {
	interval time.Duration
	tick     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func newScheduler(interval time.Duration, tick func(ctx context.Context)) *scheduler {
	return &scheduler{
		interval: interval,
		tick:     tick,
	}
}

// start launches the loop. It is a no-op while already running.
func (s *scheduler) start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done

	go s.run(ctx, done)
}

func (s *scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for chflow.Sleep(ctx, s.interval) {
		s.tick(ctx)
	}
}

// stop cancels the loop and waits for an in-flight tick to return. It is safe
// to call in any state; once it returns no further tick runs.
func (s *scheduler) stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func (s *scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancel != nil
}
