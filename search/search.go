// Package search opens the search page, submits a query and parses what comes back
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nehilsa2/company_resolver/browser"
	"github.com/Nehilsa2/company_resolver/humanize"
	"github.com/Nehilsa2/company_resolver/stealth"
)

const (
	// DefaultSearchURL is DuckDuckGo's static-markup entry point
	DefaultSearchURL      = "https://html.duckduckgo.com/html"
	DefaultResultsTimeout = 30 * time.Second

	queryInputSelector = `input[name="q"]`
)

// ErrResultsTimeout means the results container never rendered within the bound
var ErrResultsTimeout = errors.New("timed out waiting for search results")

// Pacer pauses between page actions
type Pacer interface {
	Pace(ctx context.Context)
}

// Typist enters text keystroke by keystroke
type Typist interface {
	Type(ctx context.Context, text string, key humanize.KeyFunc) error
}

// Config configures an Executor. Zero values select the defaults.
type Config struct {
	SearchURL      string
	ResultsTimeout time.Duration
	Pacer          Pacer
	Typist         Typist
	Logger         logrus.FieldLogger
}

// Executor runs one query at a time against a page it is handed
type Executor struct {
	searchURL      string
	resultsTimeout time.Duration
	pacer          Pacer
	typist         Typist
	logger         logrus.FieldLogger
}

// NewExecutor creates an executor, filling in defaults
func NewExecutor(cfg Config) *Executor {
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	if cfg.ResultsTimeout <= 0 {
		cfg.ResultsTimeout = DefaultResultsTimeout
	}
	if cfg.Pacer == nil {
		cfg.Pacer = stealth.NewPacer(stealth.DefaultPaceConfig())
	}
	if cfg.Typist == nil {
		cfg.Typist = humanize.NewTypist(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	return &Executor{
		searchURL:      cfg.SearchURL,
		resultsTimeout: cfg.ResultsTimeout,
		pacer:          cfg.Pacer,
		typist:         cfg.Typist,
		logger:         cfg.Logger,
	}
}

// Search submits query on page and returns the non-sponsored result links.
// The page is re-navigated, so whatever it showed before is gone.
func (e *Executor) Search(ctx context.Context, page browser.Page, query string) ([]string, error) {
	log := e.logger.WithField("query", query)
	log.Info("performing search")

	if err := page.Navigate(ctx, e.searchURL); err != nil {
		return nil, fmt.Errorf("failed to open search page: %w", err)
	}
	e.pacer.Pace(ctx)

	if err := page.Clear(ctx, queryInputSelector); err != nil {
		return nil, fmt.Errorf("failed to clear query field: %w", err)
	}
	err := e.typist.Type(ctx, query, func(ctx context.Context, key string) error {
		return page.TypeKey(ctx, queryInputSelector, key)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to type query: %w", err)
	}
	if err := page.Submit(ctx); err != nil {
		return nil, fmt.Errorf("failed to submit query: %w", err)
	}
	e.pacer.Pace(ctx)

	if err := e.waitForResults(ctx, page); err != nil {
		return nil, err
	}

	html, err := page.HTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read results page: %w", err)
	}

	links, err := ParseResults(strings.NewReader(html), e.searchURL)
	if err != nil {
		return nil, err
	}

	log.WithField("links", len(links)).Info("search finished")
	return links, nil
}

func (e *Executor) waitForResults(ctx context.Context, page browser.Page) error {
	waitCtx, cancel := context.WithTimeout(ctx, e.resultsTimeout)
	defer cancel()

	err := page.WaitFor(waitCtx, ResultsSelector)
	if err == nil {
		return nil
	}
	// only our own bound counts as a timeout; a cancelled parent does not
	if ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w (%s)", ErrResultsTimeout, e.resultsTimeout)
	}
	return fmt.Errorf("failed waiting for search results: %w", err)
}
