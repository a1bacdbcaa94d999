package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"github.com/Nehilsa2/company_resolver/stealth"
)

type chromedpSession struct {
	allocCancel context.CancelFunc
	tabCancel   context.CancelFunc
	page        *chromedpPage
}

// allocatorOptions translates the stealth config into exec allocator options
func allocatorOptions(config *stealth.StealthConfig) []chromedp.ExecAllocatorOption {
	opts := append(defaultAllocatorOptions(), chromedp.Flag("headless", config.Headless))
	for _, f := range stealth.LaunchFlags(config) {
		if f.Value == "" {
			opts = append(opts, chromedp.Flag(f.Name, true))
			continue
		}
		opts = append(opts, chromedp.Flag(f.Name, f.Value))
	}
	return opts
}

func defaultAllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := make([]chromedp.ExecAllocatorOption, len(chromedp.DefaultExecAllocatorOptions))
	copy(opts, chromedp.DefaultExecAllocatorOptions[:])
	return opts
}

func launchChromedp(ctx context.Context, config *stealth.StealthConfig) (*chromedpSession, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(config)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...interface{}) {
		// Silent logging
	}))

	// The first Run starts the browser
	if err := chromedp.Run(tabCtx, chromedp.Navigate("about:blank")); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	return &chromedpSession{
		allocCancel: allocCancel,
		tabCancel:   tabCancel,
		page:        &chromedpPage{tab: tabCtx},
	}, nil
}

func (s *chromedpSession) Page() Page {
	return s.page
}

func (s *chromedpSession) Close() error {
	s.tabCancel()
	s.allocCancel()
	return nil
}

type chromedpPage struct {
	tab context.Context
}

// run executes actions on the tab while honouring the caller's ctx. Actions
// must run on a context derived from the tab, so ctx is bridged onto one.
func (p *chromedpPage) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(p.tab)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

func (p *chromedpPage) Navigate(ctx context.Context, url string) error {
	return p.run(ctx, chromedp.Navigate(url))
}

func (p *chromedpPage) Clear(ctx context.Context, selector string) error {
	return p.run(ctx, chromedp.SetValue(selector, "", chromedp.ByQuery))
}

func (p *chromedpPage) TypeKey(ctx context.Context, selector, key string) error {
	return p.run(ctx, chromedp.SendKeys(selector, key, chromedp.ByQuery))
}

func (p *chromedpPage) Submit(ctx context.Context) error {
	return p.run(ctx, chromedp.KeyEvent(kb.Enter))
}

func (p *chromedpPage) WaitFor(ctx context.Context, selector string) error {
	return p.run(ctx, chromedp.WaitReady(selector, chromedp.ByQuery))
}

func (p *chromedpPage) HTML(ctx context.Context) (string, error) {
	var html string
	if err := p.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}
