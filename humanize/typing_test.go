package humanize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTypist() (*Typist, *[]time.Duration) {
	var delays []time.Duration
	t := NewTypist(nil)
	t.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return t, &delays
}

func TestTypist_TypesEveryRuneInOrder(t *testing.T) {
	typist, delays := newTestTypist()

	var keys []string
	err := typist.Type(context.Background(), "Acmé 1", func(ctx context.Context, key string) error {
		keys = append(keys, key)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "c", "m", "é", " ", "1"}, keys)
	assert.Len(t, *delays, len(keys))
}

func TestTypist_DelaysHaveFloor(t *testing.T) {
	typist, delays := newTestTypist()
	typist.config = &TypingConfig{BaseDelayMs: 1, VariationMs: 0}

	err := typist.Type(context.Background(), "abc", func(ctx context.Context, key string) error { return nil })
	require.NoError(t, err)

	for _, d := range *delays {
		assert.GreaterOrEqual(t, d, 30*time.Millisecond)
	}
}

func TestTypist_FirstKeySlower(t *testing.T) {
	typist, _ := newTestTypist()
	typist.config = &TypingConfig{BaseDelayMs: 100}

	assert.Equal(t, 150*time.Millisecond, typist.keystrokeDelay('a', 0))
	assert.Equal(t, 100*time.Millisecond, typist.keystrokeDelay('a', 1))
	assert.Equal(t, 130*time.Millisecond, typist.keystrokeDelay(' ', 1))
}

func TestTypist_KeyErrorStopsTyping(t *testing.T) {
	typist, _ := newTestTypist()
	boom := errors.New("detached")

	calls := 0
	err := typist.Type(context.Background(), "Globex", func(ctx context.Context, key string) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestTypist_CancelledContext(t *testing.T) {
	typist := NewTypist(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := typist.Type(ctx, "Initech", func(ctx context.Context, key string) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
