// Package resolve finds a website and a LinkedIn company page for each company
// name by searching for it, and searching again with a LinkedIn qualifier when
// the first results have no LinkedIn company link.
package resolve

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Nehilsa2/company_resolver/browser"
	"github.com/Nehilsa2/company_resolver/search"
)

// LinkedInQualifier is appended to the company name for the fallback query
const LinkedInQualifier = "LinkedIn"

// Outcome is either Resolved or Failed
type Outcome interface {
	outcome()
}

// Resolved is a finished lookup. An empty Website or LinkedIn means the
// searches did not turn one up.
type Resolved struct {
	Website  string
	LinkedIn string
}

// Failed is a lookup abandoned because one of its searches failed
type Failed struct {
	Message string
}

func (Resolved) outcome() {}
func (Failed) outcome()   {}

// Resolution is the outcome for one input company
type Resolution struct {
	Name    string
	Outcome Outcome
}

// Searcher runs one query on page. search.Executor is the production one.
type Searcher interface {
	Search(ctx context.Context, page browser.Page, query string) ([]string, error)
}

var _ Searcher = (*search.Executor)(nil)

// Resolver drives the per-company lookup
type Resolver struct {
	searcher Searcher
	logger   logrus.FieldLogger
}

// New creates a resolver
func New(searcher Searcher, logger logrus.FieldLogger) *Resolver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Resolver{
		searcher: searcher,
		logger:   logger,
	}
}

// FallbackQuery is the query used when the plain name found no LinkedIn page
func FallbackQuery(name string) string {
	return name + " " + LinkedInQualifier
}

// ResolveAll resolves names one after another on the same page. A failed
// company never stops the run; the result has one entry per name, in order.
func (r *Resolver) ResolveAll(ctx context.Context, page browser.Page, names []string) []Resolution {
	results := make([]Resolution, 0, len(names))
	for _, name := range names {
		results = append(results, r.Resolve(ctx, page, name))
	}
	return results
}

// Resolve looks up a single company.
//
// The website is the first link of the initial search. The LinkedIn page is the
// first company link of the initial search or, only if there is none, of the
// fallback search. If the fallback search fails the whole company fails,
// including a website the initial search already found.
func (r *Resolver) Resolve(ctx context.Context, page browser.Page, name string) Resolution {
	log := r.logger.WithField("company", name)
	log.Info("processing company")

	initial, err := r.searcher.Search(ctx, page, name)
	if err != nil {
		return r.fail(log, name, err)
	}

	var website string
	if len(initial) > 0 {
		website = initial[0]
	}
	log.WithField("website", website).Info("website selected")

	linkedIn, found := search.FirstLinkedInCompany(initial)
	if !found {
		log.Info("no LinkedIn page in initial results, running fallback search")

		fallback, err := r.searcher.Search(ctx, page, FallbackQuery(name))
		if err != nil {
			return r.fail(log, name, err)
		}
		linkedIn, _ = search.FirstLinkedInCompany(fallback)
	}
	log.WithField("linkedin", linkedIn).Info("company resolved")

	return Resolution{
		Name: name,
		Outcome: Resolved{
			Website:  website,
			LinkedIn: linkedIn,
		},
	}
}

func (r *Resolver) fail(log logrus.FieldLogger, name string, err error) Resolution {
	log.WithError(err).Error("failed to process company")
	return Resolution{
		Name:    name,
		Outcome: Failed{Message: err.Error()},
	}
}
