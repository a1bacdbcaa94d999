package stealth

import (
	"context"
	"math/rand/v2"
	"time"
)

// PaceConfig holds the bounds of the randomized pause taken between page actions
type PaceConfig struct {
	MinMs int // inclusive
	MaxMs int // exclusive
}

// DefaultPaceConfig returns the 0.5-2 second window used between search steps
func DefaultPaceConfig() PaceConfig {
	return PaceConfig{
		MinMs: 500,
		MaxMs: 2000,
	}
}

// Pacer suspends the caller for a random duration between page actions
type Pacer struct {
	config PaceConfig
	intN   func(n int) int
	sleep  func(ctx context.Context, d time.Duration)
}

// NewPacer creates a pacer drawing uniformly from config's window
func NewPacer(config PaceConfig) *Pacer {
	if config.MaxMs < config.MinMs {
		config.MaxMs = config.MinMs
	}
	return &Pacer{
		config: config,
		intN:   rand.IntN,
		sleep:  sleepContext,
	}
}

// Next draws the next pause duration without sleeping
func (p *Pacer) Next() time.Duration {
	return RandomMillis(p.intN, p.config.MinMs, p.config.MaxMs)
}

// Pace waits for the next drawn duration. It cannot fail; a cancelled
// context only cuts the wait short.
func (p *Pacer) Pace(ctx context.Context) {
	p.sleep(ctx, p.Next())
}

// RandomMillis returns a duration in [min, max) milliseconds using intN as the
// source of randomness
func RandomMillis(intN func(n int) int, min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Millisecond
	}
	n := intN(max-min) + min
	return time.Duration(n) * time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
