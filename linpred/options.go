// SPDX-License-Identifier: MIT

// Package linpred: functional configuration for Levinson.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that resolves defaults.
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Defaults reproduce the classic behavior: last axis, one worker,
//     heap allocation, no deadline.
package linpred

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/cournape/talkbox/ndarray"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAxis selects the last axis as the lag axis.
	DefaultAxis = -1

	// DefaultWorkers runs batch rows sequentially.
	DefaultWorkers = 1

	// AutoWorkers asks for one worker per available CPU (GOMAXPROCS).
	AutoWorkers = 0
)

// ---------- Internal panic messages ----------

const (
	panicWorkersNegative = "linpred: WithWorkers: n must be >= 0"
	panicNilContext      = "linpred: WithContext: ctx must not be nil"
	panicNilAllocator    = "linpred: WithAllocator: allocator must not be nil"
	panicNilLogger       = "linpred: WithLogger: logger must not be nil"
)

// Option mutates Options. Safe to apply repeatedly; the last setter wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	axis    int               // lag axis, negative counts from the end
	workers int               // >= 1 after gatherOptions
	ctx     context.Context   // row-granular cancellation and deadlines
	alloc   ndarray.Allocator // output allocation service
	logger  *slog.Logger      // structured debug logging
}

// WithAxis selects the axis holding the autocorrelation lags. Negative values
// count from the end; the default is the last axis. The axis is range-checked
// against the input rank at call time (ErrInvalidArgument).
func WithAxis(axis int) Option {
	return func(o *Options) { o.axis = axis }
}

// WithWorkers sets the number of goroutines that process batch rows.
// n == AutoWorkers uses runtime.GOMAXPROCS(0). Each worker owns a private
// scratch buffer and writes disjoint output rows.
// Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithContext attaches a context whose cancellation or deadline aborts the
// remaining rows. An aborted call returns the context error and no outputs.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithAllocator replaces the output allocation service (default
// ndarray.HeapAllocator).
func WithAllocator(a ndarray.Allocator) Option {
	if a == nil {
		panic(panicNilAllocator)
	}

	return func(o *Options) { o.alloc = a }
}

// WithLogger sets the structured logger. Only Debug-level records are emitted.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		axis:    DefaultAxis,
		workers: DefaultWorkers,
		ctx:     context.Background(),
		alloc:   ndarray.HeapAllocator{},
		logger:  slog.Default().With(slog.String("component", "linpred")),
	}
}

// gatherOptions applies opts over the defaults and resolves AutoWorkers.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == AutoWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
