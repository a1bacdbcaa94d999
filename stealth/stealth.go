package stealth

import (
	"fmt"
	"math/rand/v2"
)

// StealthConfig holds the identity the automated browser presents
type StealthConfig struct {
	Headless  bool
	UserAgent string
	Viewport  *Viewport
}

// Viewport represents browser window dimensions
type Viewport struct {
	Width  int
	Height int
}

// Flag is a single Chrome command-line switch. An empty Value means a bare switch.
type Flag struct {
	Name  string
	Value string
}

// Common realistic viewport sizes (desktop)
var commonViewports = []Viewport{
	{1920, 1080},
	{1366, 768},
	{1536, 864},
	{1440, 900},
	{1280, 720},
	{1600, 900},
}

var commonUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
}

// DefaultConfig returns a randomized configuration
func DefaultConfig(headless bool) *StealthConfig {
	return &StealthConfig{
		Headless:  headless,
		UserAgent: randomUserAgent(),
		Viewport:  randomViewport(),
	}
}

func randomUserAgent() string {
	return commonUserAgents[rand.IntN(len(commonUserAgents))]
}

// randomViewport returns a common viewport nudged by a few pixels
func randomViewport() *Viewport {
	vp := commonViewports[rand.IntN(len(commonViewports))]
	vp.Width += rand.IntN(20) - 10
	vp.Height += rand.IntN(20) - 10
	return &vp
}

// LaunchFlags returns the Chrome switches both browser engines launch with.
// Headless mode is left to the engine since each has its own toggle for it.
func LaunchFlags(config *StealthConfig) []Flag {
	if config == nil {
		config = DefaultConfig(true)
	}

	return []Flag{
		// keeps navigator.webdriver unset
		{Name: "disable-blink-features", Value: "AutomationControlled"},
		{Name: "disable-infobars"},
		{Name: "no-first-run"},
		{Name: "no-default-browser-check"},
		{Name: "disable-dev-shm-usage"},
		{Name: "disable-extensions"},
		{Name: "window-size", Value: fmt.Sprintf("%d,%d", config.Viewport.Width, config.Viewport.Height)},
		{Name: "user-agent", Value: config.UserAgent},
	}
}
