package humanize

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// TypingConfig holds configuration for human-like typing
type TypingConfig struct {
	// Base delay between keystrokes in milliseconds
	BaseDelayMs int
	// Random variation added to base delay (±)
	VariationMs int
	// Probability of a longer "thinking" pause (0-100)
	ThinkPauseProbability int
	ThinkPauseMinMs       int
	ThinkPauseMaxMs       int
}

// DefaultTypingConfig returns the cadence used for search queries, roughly
// 50ms a key with some jitter
func DefaultTypingConfig() *TypingConfig {
	return &TypingConfig{
		BaseDelayMs:           50,
		VariationMs:           20,
		ThinkPauseProbability: 3,
		ThinkPauseMinMs:       150,
		ThinkPauseMaxMs:       400,
	}
}

// KeyFunc delivers a single keystroke to the focused input
type KeyFunc func(ctx context.Context, key string) error

// Typist types text one character at a time. Browser engines supply the
// KeyFunc; the Typist only owns the timing between keys.
type Typist struct {
	config *TypingConfig
	intN   func(n int) int
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewTypist creates a typist; a nil config selects DefaultTypingConfig
func NewTypist(config *TypingConfig) *Typist {
	if config == nil {
		config = DefaultTypingConfig()
	}
	return &Typist{
		config: config,
		intN:   rand.IntN,
		sleep:  sleepContext,
	}
}

// Type sends text through key rune by rune, pausing between keystrokes
func (t *Typist) Type(ctx context.Context, text string, key KeyFunc) error {
	position := 0
	for _, char := range text {
		if err := key(ctx, string(char)); err != nil {
			return fmt.Errorf("failed to type %q: %w", char, err)
		}
		if err := t.sleep(ctx, t.keystrokeDelay(char, position)); err != nil {
			return err
		}
		position++
	}
	return nil
}

// keystrokeDelay returns a human-like delay for a keystroke:
// - word boundaries and punctuation are slower
// - shifted characters are slower
// - the first key is slowest
// - occasional thinking pauses
func (t *Typist) keystrokeDelay(char rune, position int) time.Duration {
	cfg := t.config
	baseDelay := cfg.BaseDelayMs

	switch {
	case char == ' ':
		baseDelay = int(float64(baseDelay) * 1.3)
	case char == '.' || char == '!' || char == '?':
		baseDelay = int(float64(baseDelay) * 1.8)
	case char == ',' || char == ';' || char == ':':
		baseDelay = int(float64(baseDelay) * 1.4)
	case char >= 'A' && char <= 'Z':
		baseDelay = int(float64(baseDelay) * 1.2)
	case char >= '0' && char <= '9':
		baseDelay = int(float64(baseDelay) * 1.15)
	case char == '&' || char == '@' || char == '#':
		baseDelay = int(float64(baseDelay) * 1.4)
	}

	if position == 0 {
		baseDelay = int(float64(baseDelay) * 1.5)
	}

	delay := baseDelay
	if cfg.VariationMs > 0 {
		delay += t.intN(cfg.VariationMs*2) - cfg.VariationMs
	}

	// Ensure minimum delay
	if delay < 30 {
		delay = 30
	}

	if t.intN(100) < cfg.ThinkPauseProbability && cfg.ThinkPauseMaxMs > cfg.ThinkPauseMinMs {
		delay += t.intN(cfg.ThinkPauseMaxMs-cfg.ThinkPauseMinMs) + cfg.ThinkPauseMinMs
	}

	return time.Duration(delay) * time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
