// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/HesamPourabbasian/Strassen-Matrix/internal/logger"
	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
)

// Algorithm names used in logs and metric labels.
const (
	AlgorithmStandard = "standard"
	AlgorithmStrassen = "strassen"
)

// MulFunc is a matrix product under benchmark.
type MulFunc func(a, b matrix.Matrix) (matrix.Matrix, error)

// Result is the outcome for one pair. It is never mutated after Run returns.
type Result struct {
	Size     int
	Standard time.Duration
	Strassen time.Duration
	Match    bool
}

// Runner executes the benchmark sequentially.
type Runner struct {
	log      logger.Logger
	now      func() time.Time
	metrics  *Metrics
	runID    string
	standard MulFunc
	strassen MulFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the progress logger. Without it Run logs through the
// logger carried by its context, or logger.Default().
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock replaces the wall clock used for timing.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithMetrics records durations, pair and mismatch counts into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithRunID overrides the generated ULID run identifier.
func WithRunID(id string) Option {
	return func(r *Runner) {
		if id != "" {
			r.runID = id
		}
	}
}

// WithMultipliers replaces the two products under comparison.
func WithMultipliers(standard, strassen MulFunc) Option {
	return func(r *Runner) {
		if standard != nil {
			r.standard = standard
		}
		if strassen != nil {
			r.strassen = strassen
		}
	}
}

// NewRunner returns a Runner timing matrix.Mul against matrix.Strassen.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		now:      time.Now,
		runID:    ulid.Make().String(),
		standard: matrix.Mul,
		strassen: matrix.Strassen,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunID identifies this run in logs and reports.
func (r *Runner) RunID() string { return r.runID }

// Run benchmarks every pair in order. ctx only carries logging
// attribution; a run is not cancellable.
// MAIN DESCRIPTION:
//   - For each pair: time the standard product, then the Strassen product,
//     then compare the two results cell by cell.
//
// Implementation:
//   - Stage 1: log progress with the dimensions of A.
//   - Stage 2: time each product with the runner clock; the comparison is
//     outside both timed sections.
//   - Stage 3: on mismatch log a warning, count it, and keep going.
//
// Errors:
//   - A failing product (for example a non power-of-two size for Strassen)
//     aborts the run; the error is wrapped with the pair index and algorithm.
func (r *Runner) Run(ctx context.Context, pairs []Pair) ([]Result, error) {
	if r.log != nil {
		ctx = logger.NewContext(ctx, r.log)
	}
	log := logger.L(logger.WithRunID(ctx, r.runID))

	results := make([]Result, 0, len(pairs))
	mismatches := 0

	for i, p := range pairs {
		rows, cols := p.A.Rows(), p.A.Cols()
		log.Info("calculating", "pair", i, "rows", rows, "cols", cols)

		std, stdTime, err := r.timed(r.standard, p)
		if err != nil {
			return nil, fmt.Errorf("bench: pair %d: %s: %w", i, AlgorithmStandard, err)
		}
		fast, fastTime, err := r.timed(r.strassen, p)
		if err != nil {
			return nil, fmt.Errorf("bench: pair %d: %s: %w", i, AlgorithmStrassen, err)
		}

		match := matrix.Equal(std, fast)
		if !match {
			mismatches++
			log.Warn("results do not match", "pair", i, "rows", rows, "cols", cols)
		}

		res := Result{Size: p.Size(), Standard: stdTime, Strassen: fastTime, Match: match}
		if r.metrics != nil {
			r.metrics.observe(res)
		}
		results = append(results, res)
	}

	log.Info("benchmark complete", "pairs", len(results), "mismatches", mismatches)

	return results, nil
}

func (r *Runner) timed(f MulFunc, p Pair) (matrix.Matrix, time.Duration, error) {
	start := r.now()
	m, err := f(p.A, p.B)
	elapsed := r.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	return m, elapsed, err
}
