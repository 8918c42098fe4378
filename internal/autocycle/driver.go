// Package autocycle implements the timer-driven loop that periodically
// re-randomizes the studio parameters and regenerates the greeting set.
package autocycle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/lumina-api/internal/config"
)

// Cycler is what the driver controls.
type Cycler interface {
	// Generate requests a greeting set with the current parameters.
	Generate(ctx context.Context) error

	// Randomize replaces the current parameters with a random set.
	Randomize(ctx context.Context)
}

// Driver runs at most one auto-cycle loop at a time.
//
// On Start it triggers one generation immediately, then ticks and tracks
// progress through the cycle. When progress reaches 100 it randomizes,
// generates again and restarts the clock. Parameter changes made by anyone
// else while the loop runs do not touch the clock.
type Driver struct {
	logger      *slog.Logger
	cycler      Cycler
	cycleLength time.Duration
	tick        time.Duration

	// ctrl serializes Start and Stop, including the wait for the loop to exit.
	ctrl sync.Mutex

	mu       sync.Mutex
	running  bool
	progress float64
	cancel   context.CancelFunc
	done     chan struct{}
	inflight sync.WaitGroup
}

// New creates a stopped driver.
func New(logger *slog.Logger, cycler Cycler, cfg config.AutoCycleConfig) *Driver {
	cycleLength := cfg.CycleLength
	if cycleLength <= 0 {
		cycleLength = config.DefaultCycleLength
	}
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = config.DefaultTickInterval
	}
	return &Driver{
		logger:      logger.With("component", "autocycle"),
		cycler:      cycler,
		cycleLength: cycleLength,
		tick:        tick,
	}
}

// Start launches the loop bound to parent. It reports false if a loop was
// already running.
func (d *Driver) Start(parent context.Context) bool {
	d.ctrl.Lock()
	defer d.ctrl.Unlock()

	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	d.running = true
	d.progress = 0
	d.cancel = cancel
	d.done = done
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "Auto-cycle started",
		"cycle_length_ms", d.cycleLength.Milliseconds(),
		"tick_ms", d.tick.Milliseconds())

	go d.loop(ctx, done)
	return true
}

// Stop cancels the loop, waits for it and any generation it started, and
// resets progress to 0. It reports false if no loop was running.
func (d *Driver) Stop() bool {
	d.ctrl.Lock()
	defer d.ctrl.Unlock()

	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		// A loop ended by its parent may still have a generation in flight.
		d.inflight.Wait()
		return false
	}
	cancel, done := d.cancel, d.done
	d.mu.Unlock()

	cancel()
	<-done
	d.inflight.Wait()

	d.logger.Info("Auto-cycle stopped")
	return true
}

// Running reports whether a loop is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Progress is the elapsed share of the current cycle, 0 to 100.
func (d *Driver) Progress() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progress
}

func (d *Driver) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer d.finish(done)

	d.generate(ctx)
	start := time.Now()

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			p := Progress(now.Sub(start), d.cycleLength)
			d.setProgress(ctx, p)
			if p < 100 {
				continue
			}

			d.logger.InfoContext(ctx, "Auto-cycle complete, randomizing")
			d.cycler.Randomize(ctx)
			d.generate(ctx)
			start = time.Now()
		}
	}
}

// finish clears the running state when the loop that owns done exits,
// so a loop ended by its parent context no longer reports as running.
func (d *Driver) finish(done chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done != done {
		return
	}
	d.running = false
	d.progress = 0
	d.cancel = nil
	d.done = nil
}

// generate runs one generation off the loop goroutine so the clock keeps
// ticking while the text service answers.
func (d *Driver) generate(ctx context.Context) {
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		if err := d.cycler.Generate(ctx); err != nil && ctx.Err() == nil {
			d.logger.WarnContext(ctx, "Auto-cycle generation failed", "error", err)
		}
	}()
}

func (d *Driver) setProgress(ctx context.Context, p float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	d.progress = p
}

// Progress converts elapsed time into a 0–100 share of cycle.
func Progress(elapsed, cycle time.Duration) float64 {
	if cycle <= 0 || elapsed >= cycle {
		return 100
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(cycle) * 100
}
