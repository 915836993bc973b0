package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/filmdex/filmdex/admission"
	"github.com/filmdex/filmdex/catalog"
	"github.com/filmdex/filmdex/report"
)

// Searcher executes keyword searches over an immutable catalog, bounded by
// an admission controller and reporting through a shared sink. A single
// Searcher serves any number of concurrent workers.
type Searcher struct {
	catalog *catalog.Catalog
	ctrl    *admission.Controller
	sink    report.Sink
	monitor Monitor
	pace    time.Duration
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPace sets an artificial delay inserted into each admitted search so
// overlapping workers stay observable in demo runs. Negative values are
// clamped to zero. Default is no delay.
func WithPace(d time.Duration) Option {
	return func(s *Searcher) error {
		if d < 0 {
			d = 0
		}
		s.pace = d
		return nil
	}
}

// WithMonitor sets a monitor observing worker state transitions.
// Default is a no-op monitor.
func WithMonitor(m Monitor) Option {
	return func(s *Searcher) error {
		if m == nil {
			m = &noopMonitor{}
		}
		s.monitor = m
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(cat *catalog.Catalog, ctrl *admission.Controller, sink report.Sink, opts ...Option) (*Searcher, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if ctrl == nil {
		return nil, ErrControllerRequired
	}
	if sink == nil {
		return nil, ErrSinkRequired
	}

	s := &Searcher{
		catalog: cat,
		ctrl:    ctrl,
		sink:    sink,
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Run executes one search request end to end: wait for a permit, scan and
// rank, emit a single report block, release the permit. The permit release
// is deferred right after acquisition, so it happens on every exit path.
// The only error before admission is a cancelled acquire; after admission
// a search always runs to completion, reporting zero matches if nothing
// matched.
func (s *Searcher) Run(ctx context.Context, req Request) error {
	s.monitor.Waiting(req)
	s.logger.Info("waiting for search slot", "worker", req.WorkerID, "keyword", req.Keyword)

	if err := s.ctrl.Acquire(ctx); err != nil {
		return fmt.Errorf("worker %d: acquire permit: %w", req.WorkerID, err)
	}
	defer s.ctrl.Release()
	defer s.monitor.Done(req)

	s.monitor.Admitted(req)
	s.logger.Info("acquired search slot, starting search", "worker", req.WorkerID, "keyword", req.Keyword)

	if s.pace > 0 {
		time.Sleep(s.pace)
	}

	entries := s.scan(req.Keyword)
	Rank(entries)
	s.monitor.Searched(req, len(entries))

	if err := s.sink.Emit(report.Format(req.Keyword, s.rows(entries))); err != nil {
		return fmt.Errorf("worker %d: emit report: %w", req.WorkerID, err)
	}
	s.monitor.Reported(req)

	s.logger.Info("finished search, releasing slot", "worker", req.WorkerID, "matches", len(entries))
	return nil
}

// scan walks the whole catalog in order and collects up to MaxResults
// matching entries. Matches beyond the cap are dropped silently.
func (s *Searcher) scan(keyword string) []Entry {
	entries := make([]Entry, 0, MaxResults)
	for i := 0; i < s.catalog.Size(); i++ {
		if len(entries) == MaxResults {
			break
		}
		rec := s.catalog.RecordAt(i)
		if Matches(rec, keyword) {
			entries = append(entries, Entry{Position: i, Rating: rec.Rating})
		}
	}
	return entries
}

// rows resolves ranked entries back to display fields for the report.
func (s *Searcher) rows(entries []Entry) []report.Row {
	rows := make([]report.Row, len(entries))
	for i, e := range entries {
		rec := s.catalog.RecordAt(e.Position)
		rows[i] = report.Row{
			Title:       rec.Title,
			Director:    rec.Director,
			ReleaseDate: rec.ReleaseDate,
			Rating:      e.Rating,
		}
	}
	return rows
}
