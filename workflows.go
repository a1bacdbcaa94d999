package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Nehilsa2/company_resolver/browser"
	"github.com/Nehilsa2/company_resolver/companies"
	"github.com/Nehilsa2/company_resolver/humanize"
	"github.com/Nehilsa2/company_resolver/persistence"
	"github.com/Nehilsa2/company_resolver/report"
	"github.com/Nehilsa2/company_resolver/resolve"
	"github.com/Nehilsa2/company_resolver/search"
	"github.com/Nehilsa2/company_resolver/stealth"
)

// Launcher starts a browser session. browser.Launch is the production one.
type Launcher func(ctx context.Context, opts browser.Options) (browser.Session, error)

// Workflow wires the reader, browser, resolver and report writer together
type Workflow struct {
	cfg    Config
	logger *logrus.Logger
	launch Launcher

	// searcher overrides the DuckDuckGo executor; tests set it
	searcher resolve.Searcher
}

// NewWorkflow creates a workflow that launches real browsers
func NewWorkflow(cfg Config, logger *logrus.Logger) *Workflow {
	return &Workflow{
		cfg:    cfg,
		logger: logger,
		launch: browser.Launch,
	}
}

// RunResolution reads the company list, resolves every company and writes the
// report. It returns an error only when the run cannot start: the input is
// unreadable or the browser does not launch. A failed report write is logged
// and the run still counts as done.
func (w *Workflow) RunResolution(ctx context.Context) error {
	names, err := companies.ReadFile(w.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read companies: %w", err)
	}
	w.logger.WithFields(logrus.Fields{
		"input":     w.cfg.InputPath,
		"companies": len(names),
	}).Info("loaded company list")

	session, err := w.launch(ctx, browser.Options{
		Engine:  w.cfg.Engine,
		Stealth: stealth.DefaultConfig(w.cfg.Headless),
		Logger:  w.logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			w.logger.WithError(err).Warn("failed to close browser")
		}
	}()

	resolver := resolve.New(w.searcherOrDefault(), w.logger)
	rows := report.Assemble(resolver.ResolveAll(ctx, session.Page(), names))

	failed := 0
	for _, row := range rows {
		if row.Error != "" {
			failed++
		}
	}
	log := w.logger.WithFields(logrus.Fields{
		"output":    w.cfg.OutputPath,
		"companies": len(rows),
		"failed":    failed,
	})

	// written with a fresh context so an interrupt still leaves a report behind
	if err := writeReport(context.WithoutCancel(ctx), w.cfg.OutputPath, rows); err != nil {
		log.WithError(err).Error("failed to write report")
		return nil
	}
	log.Info("report written")
	return nil
}

func (w *Workflow) searcherOrDefault() resolve.Searcher {
	if w.searcher != nil {
		return w.searcher
	}
	return search.NewExecutor(search.Config{
		ResultsTimeout: w.cfg.ResultsTimeout,
		Pacer:          stealth.NewPacer(stealth.DefaultPaceConfig()),
		Typist:         humanize.NewTypist(nil),
		Logger:         w.logger,
	})
}

// writeReport picks the format from the output path's extension
func writeReport(ctx context.Context, path string, rows []report.Row) error {
	if persistence.IsSQLitePath(path) {
		store, err := persistence.NewStore(path)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.SaveReport(ctx, persistence.NewRunID(), rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
