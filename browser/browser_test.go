package browser

import (
	"context"
	"testing"

	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nehilsa2/company_resolver/stealth"
)

func testStealth() *stealth.StealthConfig {
	return &stealth.StealthConfig{
		Headless:  true,
		UserAgent: "resolver-test",
		Viewport:  &stealth.Viewport{Width: 1366, Height: 768},
	}
}

func TestLaunch_UnknownEngine(t *testing.T) {
	_, err := Launch(context.Background(), Options{Engine: "netscape", Stealth: testStealth()})
	require.ErrorIs(t, err, ErrUnknownEngine)
}

func TestNewRodLauncher_CarriesStealthFlags(t *testing.T) {
	l := newRodLauncher(testStealth())

	assert.True(t, l.Has(flags.Headless))
	assert.Equal(t, "resolver-test", l.Get(flags.Flag("user-agent")))
	assert.Equal(t, "1366,768", l.Get(flags.Flag("window-size")))
	assert.True(t, l.Has(flags.Flag("no-first-run")))
}

func TestNewRodLauncher_Headed(t *testing.T) {
	cfg := testStealth()
	cfg.Headless = false

	l := newRodLauncher(cfg)
	assert.False(t, l.Has(flags.Headless))
}

func TestAllocatorOptions_AppendsStealthFlags(t *testing.T) {
	opts := allocatorOptions(testStealth())

	// defaults, the headless override, then one option per stealth flag
	want := len(defaultAllocatorOptions()) + 1 + len(stealth.LaunchFlags(testStealth()))
	assert.Len(t, opts, want)
}
