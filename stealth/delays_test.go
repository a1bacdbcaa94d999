package stealth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_NextStaysInWindow(t *testing.T) {
	p := NewPacer(DefaultPaceConfig())

	for i := 0; i < 1000; i++ {
		d := p.Next()
		require.GreaterOrEqual(t, d, 500*time.Millisecond)
		require.Less(t, d, 2000*time.Millisecond)
	}
}

func TestPacer_WindowEdges(t *testing.T) {
	p := NewPacer(DefaultPaceConfig())

	p.intN = func(n int) int { return 0 }
	assert.Equal(t, 500*time.Millisecond, p.Next())

	p.intN = func(n int) int { return n - 1 }
	assert.Equal(t, 1999*time.Millisecond, p.Next())
}

func TestPacer_PaceSleepsDrawnDuration(t *testing.T) {
	p := NewPacer(PaceConfig{MinMs: 100, MaxMs: 200})
	p.intN = func(n int) int { return 42 }

	var slept []time.Duration
	p.sleep = func(ctx context.Context, d time.Duration) {
		slept = append(slept, d)
	}

	p.Pace(context.Background())
	p.Pace(context.Background())

	assert.Equal(t, []time.Duration{142 * time.Millisecond, 142 * time.Millisecond}, slept)
}

func TestPacer_CancelledContextEndsWait(t *testing.T) {
	p := NewPacer(PaceConfig{MinMs: 5000, MaxMs: 5001})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	p.Pace(ctx)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewPacer_InvertedWindow(t *testing.T) {
	p := NewPacer(PaceConfig{MinMs: 300, MaxMs: 100})
	assert.Equal(t, 300*time.Millisecond, p.Next())
}

func TestLaunchFlags(t *testing.T) {
	cfg := &StealthConfig{
		UserAgent: "test-agent",
		Viewport:  &Viewport{Width: 1280, Height: 720},
	}

	flags := LaunchFlags(cfg)

	assert.Contains(t, flags, Flag{Name: "user-agent", Value: "test-agent"})
	assert.Contains(t, flags, Flag{Name: "window-size", Value: "1280,720"})
	assert.Contains(t, flags, Flag{Name: "disable-blink-features", Value: "AutomationControlled"})
}
