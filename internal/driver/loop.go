// Package driver runs a tick function at a fixed rate without a terminal.
// The interactive front end uses Bubble Tea's tick command instead.
package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFPS is used when the requested rate is not positive.
const DefaultFPS = 60

// TickFunc is called once per tick with the 1-based tick number.
// Returning false stops the loop.
type TickFunc func(ctx context.Context, tick int) bool

// Loop calls a TickFunc at a steady rate until it stops or the context is
// cancelled.
type Loop struct {
	interval time.Duration
	logger   *log.Logger
}

// New creates a loop running at fps ticks per second. A nil logger
// discards output.
func New(fps int, logger *log.Logger) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		logger:   logger,
	}
}

// Interval returns the time between ticks.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run blocks until fn returns false, fn panics, or ctx is done. It returns
// ctx.Err() on cancellation and an error wrapping the panic value if fn
// panicked.
func (l *Loop) Run(ctx context.Context, fn TickFunc) (err error) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("loop started", "interval", l.interval)

	tick := 0
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop cancelled", "ticks", tick)
			return ctx.Err()
		case <-ticker.C:
			tick++
			cont, perr := l.call(ctx, fn, tick)
			if perr != nil {
				l.logger.Error("tick panicked", "tick", tick, "err", perr)
				return perr
			}
			if !cont {
				l.logger.Debug("loop finished", "ticks", tick)
				return nil
			}
		}
	}
}

func (l *Loop) call(ctx context.Context, fn TickFunc, tick int) (cont bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("driver: panic in tick %d: %v", tick, r)
		}
	}()
	return fn(ctx, tick), nil
}
