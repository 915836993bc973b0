package search

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/filmdex/filmdex/admission"
	"github.com/filmdex/filmdex/catalog"
	"github.com/filmdex/filmdex/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dragonCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Record{
		{
			Title: "How to Train Your Dragon", Director: "Chris Sanders",
			ReleaseDate: "2010-03-26", Rating: 92.5,
			Description: "A young Viking befriends a dragon and changes his village forever.",
		},
		{
			Title: "Dragonheart", Director: "Rob Cohen",
			ReleaseDate: "1996-05-31", Rating: 71.0,
			Description: "A knight teams up with a dragon to overthrow a tyrant king.",
		},
		{
			Title: "Spirited Away", Director: "Hayao Miyazaki",
			ReleaseDate: "2001-07-20", Rating: 97.0,
			Description: "A girl enters a spirit world filled with magic, mystery, and courage.",
		},
		{
			Title: "The Girl with the Dragon Tattoo", Director: "David Fincher",
			ReleaseDate: "2011-12-21", Rating: 86.0,
			Description: "A journalist investigates dark secrets behind a dragon tattoo.",
		},
	})
}

func newTestSearcher(t *testing.T, permits int, sink report.Sink, opts ...Option) (*Searcher, *admission.Controller) {
	t.Helper()
	ctrl, err := admission.New(permits)
	require.NoError(t, err)
	s, err := NewSearcher(dragonCatalog(), ctrl, sink, opts...)
	require.NoError(t, err)
	return s, ctrl
}

func TestNewSearcher(t *testing.T) {
	ctrl, err := admission.New(1)
	require.NoError(t, err)
	sink := report.NewConsole(&bytes.Buffer{})
	cat := dragonCatalog()

	t.Run("valid configuration", func(t *testing.T) {
		s, err := NewSearcher(cat, ctrl, sink)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		s, err := NewSearcher(cat, ctrl, sink, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("negative pace is clamped", func(t *testing.T) {
		s, err := NewSearcher(cat, ctrl, sink, WithPace(-time.Second))
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), s.pace)
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewSearcher(nil, ctrl, sink)
		assert.Equal(t, ErrCatalogRequired, err)
	})

	t.Run("nil controller", func(t *testing.T) {
		_, err := NewSearcher(cat, nil, sink)
		assert.Equal(t, ErrControllerRequired, err)
	})

	t.Run("nil sink", func(t *testing.T) {
		_, err := NewSearcher(cat, ctrl, nil)
		assert.Equal(t, ErrSinkRequired, err)
	})
}

func TestRun_EmitsRankedReport(t *testing.T) {
	var buf bytes.Buffer
	s, ctrl := newTestSearcher(t, 1, report.NewConsole(&buf))

	require.NoError(t, s.Run(context.Background(), Request{Keyword: "dragon", WorkerID: 1}))

	out := buf.String()
	assert.Contains(t, out, `Keyword: "dragon" | Matches: 3`)

	// Ranked by rating descending: 92.5, 86.0, 71.0.
	first := strings.Index(out, "How to Train Your Dragon")
	second := strings.Index(out, "The Girl with the Dragon Ta") // clipped to column width
	third := strings.Index(out, "Dragonheart")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	assert.Equal(t, 0, ctrl.InUse())
}

func TestRun_ZeroMatches(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestSearcher(t, 1, report.NewConsole(&buf))

	require.NoError(t, s.Run(context.Background(), Request{Keyword: "submarine", WorkerID: 1}))

	out := buf.String()
	assert.Contains(t, out, `Keyword: "submarine" | Matches: 0`)
	assert.Contains(t, out, "(No matches found)")
}

func TestRun_EmptyKeyword(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestSearcher(t, 1, report.NewConsole(&buf))

	require.NoError(t, s.Run(context.Background(), Request{Keyword: "", WorkerID: 1}))
	assert.Contains(t, buf.String(), `Keyword: "" | Matches: 0`)
}

// stateRecorder records the order of monitor hooks for a single worker.
type stateRecorder struct {
	mu     sync.Mutex
	states []string
}

func (r *stateRecorder) record(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *stateRecorder) Waiting(_ Request)         { r.record("waiting") }
func (r *stateRecorder) Admitted(_ Request)        { r.record("admitted") }
func (r *stateRecorder) Searched(_ Request, _ int) { r.record("searched") }
func (r *stateRecorder) Reported(_ Request)        { r.record("reported") }
func (r *stateRecorder) Done(_ Request)            { r.record("done") }

func TestRun_StateSequence(t *testing.T) {
	rec := &stateRecorder{}
	s, _ := newTestSearcher(t, 1, report.NewConsole(&bytes.Buffer{}), WithMonitor(rec))

	require.NoError(t, s.Run(context.Background(), Request{Keyword: "dragon", WorkerID: 1}))

	assert.Equal(t, []string{"waiting", "admitted", "searched", "reported", "done"}, rec.states)
}

func TestRun_AcquireCancelled(t *testing.T) {
	var buf bytes.Buffer
	s, ctrl := newTestSearcher(t, 1, report.NewConsole(&buf))

	// Exhaust the pool, then cancel the waiting worker.
	require.NoError(t, ctrl.Acquire(context.Background()))
	defer ctrl.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, Request{Keyword: "dragon", WorkerID: 2})
	require.Error(t, err)
	assert.Empty(t, buf.String(), "no report may be emitted without admission")
}

type failingSink struct{}

func (failingSink) Emit(string) error { return errors.New("broken pipe") }

func TestRun_SinkFailureStillReleasesPermit(t *testing.T) {
	s, ctrl := newTestSearcher(t, 1, failingSink{})

	err := s.Run(context.Background(), Request{Keyword: "dragon", WorkerID: 1})
	require.Error(t, err)
	assert.Equal(t, 0, ctrl.InUse())
}

// gateMonitor tracks the maximum number of workers simultaneously between
// Admitted and Done.
type gateMonitor struct {
	inFlight atomic.Int64
	max      atomic.Int64
}

func (g *gateMonitor) Waiting(_ Request)         {}
func (g *gateMonitor) Admitted(_ Request)        { g.bump(g.inFlight.Add(1)) }
func (g *gateMonitor) Searched(_ Request, _ int) {}
func (g *gateMonitor) Reported(_ Request)        {}
func (g *gateMonitor) Done(_ Request)            { g.inFlight.Add(-1) }

func (g *gateMonitor) bump(cur int64) {
	for {
		max := g.max.Load()
		if cur <= max || g.max.CompareAndSwap(max, cur) {
			return
		}
	}
}

func TestRun_ConcurrencyBound(t *testing.T) {
	const permits = 2
	const workers = 12

	gate := &gateMonitor{}
	var buf bytes.Buffer
	s, ctrl := newTestSearcher(t, permits, report.NewConsole(&buf),
		WithMonitor(gate), WithPace(10*time.Millisecond))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, s.Run(context.Background(), Request{Keyword: "dragon", WorkerID: id}))
		}(i + 1)
	}
	wg.Wait()

	assert.LessOrEqual(t, gate.max.Load(), int64(permits))
	assert.Equal(t, int64(0), gate.inFlight.Load())
	assert.Equal(t, 0, ctrl.InUse())
	assert.Equal(t, workers, strings.Count(buf.String(), `Keyword: "dragon"`))
}

func TestRun_FullCatalogOfMatches(t *testing.T) {
	records := make([]catalog.Record, catalog.MaxRecords)
	for i := range records {
		records[i] = catalog.Record{
			Title:       "Movie",
			Rating:      float32(i),
			Description: "an epic dragon tale",
		}
	}

	ctrl, err := admission.New(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	s, err := NewSearcher(catalog.New(records), ctrl, report.NewConsole(&buf))
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background(), Request{Keyword: "dragon", WorkerID: 1}))
	assert.Contains(t, buf.String(), `Matches: 30`)
}
