package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"

	"github.com/Nehilsa2/company_resolver/stealth"
)

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rodPage
}

// newRodLauncher creates a Chrome launcher carrying the stealth flags
func newRodLauncher(config *stealth.StealthConfig) *launcher.Launcher {
	l := launcher.New().
		Headless(config.Headless).
		// Don't use leakless (can cause issues)
		Leakless(false)

	for _, f := range stealth.LaunchFlags(config) {
		if f.Value == "" {
			l = l.Set(flags.Flag(f.Name))
			continue
		}
		l = l.Set(flags.Flag(f.Name), f.Value)
	}
	return l
}

func launchRod(ctx context.Context, config *stealth.StealthConfig) (*rodSession, error) {
	l := newRodLauncher(config).Context(ctx)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	p, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	err = p.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             config.Viewport.Width,
		Height:            config.Viewport.Height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		_ = b.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to set viewport: %w", err)
	}

	return &rodSession{
		launcher: l,
		browser:  b,
		page:     &rodPage{page: p},
	}, nil
}

func (s *rodSession) Page() Page {
	return s.page
}

func (s *rodSession) Close() error {
	err := s.browser.Close()
	s.launcher.Cleanup()
	return err
}

type rodPage struct {
	page *rod.Page
}

func (p *rodPage) Navigate(ctx context.Context, url string) error {
	pg := p.page.Context(ctx)
	if err := pg.Navigate(url); err != nil {
		return err
	}
	return pg.WaitLoad()
}

func (p *rodPage) Clear(ctx context.Context, selector string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return err
	}
	return el.Type(input.Backspace)
}

func (p *rodPage) TypeKey(ctx context.Context, selector, key string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.Input(key)
}

func (p *rodPage) Submit(ctx context.Context) error {
	return p.page.Context(ctx).Keyboard.Type(input.Enter)
}

func (p *rodPage) WaitFor(ctx context.Context, selector string) error {
	// Element retries until it matches or the context gives up
	_, err := p.page.Context(ctx).Element(selector)
	return err
}

func (p *rodPage) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}
