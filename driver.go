// Copyright 2026 Filmdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package filmdex wires the catalog, admission controller, report sink and
// search workers into a runnable demo driver.
package filmdex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/filmdex/filmdex/admission"
	"github.com/filmdex/filmdex/catalog"
	"github.com/filmdex/filmdex/report"
	"github.com/filmdex/filmdex/search"
)

// Demo defaults, matching the classic five-permit setup.
const (
	DefaultPermits = 5
	DefaultPace    = 200 * time.Millisecond
)

// Driver runs one concurrent search worker per keyword against a shared
// catalog, bounded by the admission controller.
type Driver struct {
	catalog  *catalog.Catalog
	ctrl     *admission.Controller
	sink     report.Sink
	searcher *search.Searcher
	logger   *slog.Logger
}

// Option configures a Driver.
type Option func(*driverOptions)

type driverOptions struct {
	permits int
	pace    time.Duration
	output  io.Writer
	logger  *slog.Logger
	monitor search.Monitor
}

// WithPermits sets how many searches may execute simultaneously.
// Default is DefaultPermits.
func WithPermits(n int) Option {
	return func(o *driverOptions) {
		o.permits = n
	}
}

// WithPace sets the artificial delay inside each admitted search.
// Default is DefaultPace.
func WithPace(d time.Duration) Option {
	return func(o *driverOptions) {
		o.pace = d
	}
}

// WithOutput sets the writer receiving report blocks.
// Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *driverOptions) {
		o.output = w
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *driverOptions) {
		o.logger = logger
	}
}

// WithMonitor sets a monitor observing worker state transitions.
func WithMonitor(m search.Monitor) Option {
	return func(o *driverOptions) {
		o.monitor = m
	}
}

// New creates a driver over the given catalog. Construction fails on an
// invalid permit capacity or a missing catalog; such failures are fatal
// configuration errors, no partial run is attempted.
func New(cat *catalog.Catalog, opts ...Option) (*Driver, error) {
	if cat == nil {
		return nil, search.ErrCatalogRequired
	}

	options := &driverOptions{
		permits: DefaultPermits,
		pace:    DefaultPace,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	ctrl, err := admission.New(options.permits)
	if err != nil {
		return nil, fmt.Errorf("create admission controller: %w", err)
	}

	sink := report.NewConsole(options.output)

	searcherOpts := []search.Option{
		search.WithLogger(options.logger),
		search.WithPace(options.pace),
	}
	if options.monitor != nil {
		searcherOpts = append(searcherOpts, search.WithMonitor(options.monitor))
	}

	searcher, err := search.NewSearcher(cat, ctrl, sink, searcherOpts...)
	if err != nil {
		return nil, fmt.Errorf("create searcher: %w", err)
	}

	return &Driver{
		catalog:  cat,
		ctrl:     ctrl,
		sink:     sink,
		searcher: searcher,
		logger:   options.logger,
	}, nil
}

// Controller exposes the permit pool, mainly for accounting checks.
func (d *Driver) Controller() *admission.Controller {
	return d.ctrl
}

// Run spawns one search worker per keyword, all started together, and
// waits for every worker to finish before tearing the pool down. Worker
// spawn failures are fatal and returned; per-worker errors after a
// successful spawn are logged, never propagated.
func (d *Driver) Run(ctx context.Context, keywords []string) error {
	if len(keywords) == 0 {
		d.logger.Info("no keywords to search")
		return nil
	}

	// Pool sized to the request count: admission, not the pool, bounds
	// concurrent search work.
	pool, err := ants.NewPool(len(keywords))
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, keyword := range keywords {
		req := search.Request{Keyword: keyword, WorkerID: i + 1}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := d.searcher.Run(ctx, req); err != nil {
				d.logger.Error("search worker failed", "worker", req.WorkerID, "err", err)
			}
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("spawn worker %d: %w", req.WorkerID, submitErr)
		}
	}
	wg.Wait()

	d.logger.Info("all searches finished", "workers", len(keywords))
	return nil
}
