// Package browser is the capability boundary between the search flow and a
// concrete browser automation engine.
package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Nehilsa2/company_resolver/stealth"
)

const (
	EngineRod      = "rod"
	EngineChromedp = "chromedp"
)

// ErrUnknownEngine is returned by Launch for an engine name it does not know
var ErrUnknownEngine = errors.New("unknown browser engine")

// Page is a single navigable tab. Every Navigate replaces whatever the page
// showed before, so callers must not hold on to earlier content.
//
// Blocking calls honour ctx cancellation and deadlines.
type Page interface {
	Navigate(ctx context.Context, url string) error
	// Clear empties the input matched by selector
	Clear(ctx context.Context, selector string) error
	// TypeKey sends a single keystroke into the input matched by selector
	TypeKey(ctx context.Context, selector, key string) error
	// Submit presses Enter on the focused element
	Submit(ctx context.Context) error
	// WaitFor blocks until selector matches an element or ctx is done
	WaitFor(ctx context.Context, selector string) error
	// HTML returns a snapshot of the current document
	HTML(ctx context.Context) (string, error)
}

// Session owns one browser process and the one page that is reused for
// every search.
type Session interface {
	Page() Page
	Close() error
}

// Options configures Launch
type Options struct {
	Engine  string
	Stealth *stealth.StealthConfig
	Logger  logrus.FieldLogger
}

// Launch starts a browser with the configured engine and opens its page
func Launch(ctx context.Context, opts Options) (Session, error) {
	if opts.Stealth == nil {
		opts.Stealth = stealth.DefaultConfig(true)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Engine == "" {
		opts.Engine = EngineRod
	}

	log := opts.Logger.WithFields(logrus.Fields{
		"engine":   opts.Engine,
		"headless": opts.Stealth.Headless,
		"viewport": fmt.Sprintf("%dx%d", opts.Stealth.Viewport.Width, opts.Stealth.Viewport.Height),
	})

	var (
		s   Session
		err error
	)
	switch opts.Engine {
	case EngineRod:
		s, err = launchRod(ctx, opts.Stealth)
	case EngineChromedp:
		s, err = launchChromedp(ctx, opts.Stealth)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, opts.Engine)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to launch %s browser: %w", opts.Engine, err)
	}

	log.WithField("user_agent", opts.Stealth.UserAgent).Info("browser launched")
	return s, nil
}
