package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nehilsa2/company_resolver/browser"
	"github.com/Nehilsa2/company_resolver/search"
)

const (
	envInput  = "COMPANY_INPUT"
	envOutput = "COMPANY_OUTPUT"
)

var errMissingPaths = errors.New("both an input and an output path are required")

// Config holds everything a run needs from the command line and environment
type Config struct {
	InputPath      string
	OutputPath     string
	Engine         string
	Headless       bool
	ResultsTimeout time.Duration
	LogLevel       logrus.Level
}

// parseConfig reads flags from args. getenv supplies defaults for the two
// file paths so they can live in .env.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("company_resolver", flag.ContinueOnError)
	fs.SetOutput(output)

	input := fs.String("input", getenv(envInput), "path to the company list, one name per line")
	out := fs.String("output", getenv(envOutput), "report path (.csv, or .db/.sqlite/.sqlite3 for SQLite)")
	engine := fs.String("engine", browser.EngineRod, "browser engine: rod or chromedp")
	headless := fs.Bool("headless", true, "run the browser without a window")
	timeout := fs.Duration("results-timeout", search.DefaultResultsTimeout, "how long to wait for search results")
	level := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// positional form: company_resolver <input> <output>
	if rest := fs.Args(); len(rest) > 0 {
		*input = rest[0]
		if len(rest) > 1 {
			*out = rest[1]
		}
	}

	if *input == "" || *out == "" {
		return Config{}, errMissingPaths
	}

	if *engine != browser.EngineRod && *engine != browser.EngineChromedp {
		return Config{}, fmt.Errorf("%w: %q", browser.ErrUnknownEngine, *engine)
	}

	if *timeout <= 0 {
		return Config{}, fmt.Errorf("results timeout must be positive, got %s", *timeout)
	}

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return Config{
		InputPath:      *input,
		OutputPath:     *out,
		Engine:         *engine,
		Headless:       *headless,
		ResultsTimeout: *timeout,
		LogLevel:       lvl,
	}, nil
}
