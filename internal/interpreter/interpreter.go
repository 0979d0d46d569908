// Package interpreter runs queries against a catalog with simulated latency.
//
// Execute never fails: unrecognized input degrades to the first dataset's
// contents or a canned message with sentinel names. Every call waits a random
// delay before returning and cannot be cancelled once started.
package interpreter

import (
	"math/rand"
	"time"

	"github.com/zakazai/querysim/internal/catalog"
	"github.com/zakazai/querysim/internal/parser"
	"github.com/zakazai/querysim/internal/planner"
	"github.com/zakazai/querysim/internal/types"
)

// Default latency bounds, inclusive
const (
	DefaultMinDelay = 50 * time.Millisecond
	DefaultMaxDelay = 350 * time.Millisecond
)

// globalRand draws from math/rand's package-level source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Interpreter evaluates queries. It holds no mutable state, so concurrent
// calls are independent.
type Interpreter struct {
	catalog  *catalog.Catalog
	rng      planner.RandomSource
	sleep    func(time.Duration)
	minDelay time.Duration
	maxDelay time.Duration
	logger   *types.Logger
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithRandomSource replaces the source used for delays and affected-row
// counts. The source must be safe for concurrent use if Execute is.
func WithRandomSource(rng planner.RandomSource) Option {
	return func(i *Interpreter) { i.rng = rng }
}

// WithSleep replaces time.Sleep, mainly so tests need not wait
func WithSleep(sleep func(time.Duration)) Option {
	return func(i *Interpreter) { i.sleep = sleep }
}

// WithDelayRange sets the inclusive latency bounds
func WithDelayRange(min, max time.Duration) Option {
	return func(i *Interpreter) {
		if min < 0 {
			min = 0
		}
		if max < min {
			max = min
		}
		i.minDelay, i.maxDelay = min, max
	}
}

// WithLogger sets the logger; defaults to types.GlobalLogger
func WithLogger(l *types.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// New creates an interpreter over c
func New(c *catalog.Catalog, opts ...Option) *Interpreter {
	i := &Interpreter{
		catalog:  c,
		rng:      globalRand{},
		sleep:    time.Sleep,
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
		logger:   types.GlobalLogger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Catalog returns the datasets queries run against
func (i *Interpreter) Catalog() *catalog.Catalog {
	return i.catalog
}

func (i *Interpreter) delay() time.Duration {
	spanMs := int((i.maxDelay - i.minDelay) / time.Millisecond)
	return i.minDelay + time.Duration(i.rng.Intn(spanMs+1))*time.Millisecond
}

// Execute waits the simulated latency, then evaluates query
func (i *Interpreter) Execute(query string) *types.Result {
	d := i.delay()
	i.sleep(d)

	stmt := parser.Parse(query)
	plan := planner.CreatePlan(stmt, i.catalog)
	res := plan.Execute(i.rng)
	res.ExecutionTimeMs = int(d / time.Millisecond)

	i.logger.Debug("executed %s on %s: %d row(s) in %dms", res.Operation, plan.Table, res.RowCount, res.ExecutionTimeMs)
	return res
}

// Submit runs Execute in the background. The channel receives exactly one
// result and is then closed.
func (i *Interpreter) Submit(query string) <-chan *types.Result {
	ch := make(chan *types.Result, 1)
	go func() {
		defer close(ch)
		ch <- i.Execute(query)
	}()
	return ch
}
