// SPDX-License-Identifier: MIT

package theta

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/thetasharp/matrix"
)

// Bound is the outcome of one kernel-bound computation.
type Bound struct {
	WeightBound  int // effective weight bound after odd-weight reduction
	Degree       int
	Rows         int
	Cols         int
	Rank         int
	Nullity      int // Rows - Rank: upper bound on the kernel dimension
	AssignmentID uuid.UUID
	Fixed        bool
	Elapsed      time.Duration
}

// UpperBoundOnDimensionOfKernel returns an upper bound on the dimension of
// the kernel of θ# in the given degree for weight bound D.
// See ComputeBound for the options honoured.
func UpperBoundOnDimensionOfKernel(ctx context.Context, weightBound, degree int, opts ...Option) (int, error) {
	b, err := ComputeBound(ctx, weightBound, degree, opts...)
	if err != nil {
		return 0, err
	}

	return b.Nullity, nil
}

// ComputeBound runs Registry.ComputeBound on the process-wide registry, so
// WithClearCache(false) carries the assignment over from the previous query
// with the same weight bound, index count and store.
func ComputeBound(ctx context.Context, weightBound, degree int, opts ...Option) (Bound, error) {
	return defaultRegistry.ComputeBound(ctx, weightBound, degree, opts...)
}

// UpperBound is KernelBound reduced to the nullity.
func (e *Evaluator) UpperBound(ctx context.Context, degree int, opts ...Option) (int, error) {
	b, err := e.KernelBound(ctx, degree, opts...)
	if err != nil {
		return 0, err
	}

	return b.Nullity, nil
}

// KernelBound evaluates the degree-v θ# matrix and returns rows - rank.
//
// Implementation:
//   - Stage 1: with WithWorkers(n > 0), precompute every basis expansion once.
//   - Stage 2: pick the assignment: WithAssignment; else the current one when
//     WithClearCache(false) and one exists; else FixedAssignment under
//     WithFixedTestIntegers; else a fresh RandomAssignment.
//   - Stage 3: Matrix(v) with that assignment, rank with the selected method.
//
// A zero-row or zero-column matrix is a normal result with rank 0.
func (e *Evaluator) KernelBound(ctx context.Context, degree int, opts ...Option) (Bound, error) {
	start := time.Now()
	o := gatherOptions(opts...)
	if err := ctx.Err(); err != nil {
		return Bound{}, thetaErrorf(opUpperBound, err)
	}
	if o.workers > 0 && !e.conv.Expander().Precomputed() {
		if err := e.Precompute(ctx, o.workers); err != nil {
			return Bound{}, thetaErrorf(opUpperBound, err)
		}
	}

	a := o.assignment
	if a == nil && !o.clear {
		a = e.Assignment()
	}
	if a == nil {
		if o.fixed {
			a = FixedAssignment(e.graded)
		} else {
			a = RandomAssignment(e.graded, o.rng, o.randomBound)
		}
	}
	if err := e.SetAssignment(a); err != nil {
		return Bound{}, thetaErrorf(opUpperBound, err)
	}

	m, err := e.Matrix(degree, WithRandomEvaluation(a))
	if err != nil {
		return Bound{}, thetaErrorf(opUpperBound, err)
	}
	if err := ctx.Err(); err != nil {
		return Bound{}, thetaErrorf(opUpperBound, err)
	}
	rank, err := matrix.Rank(m, matrix.WithRankMethod(o.rankMethod))
	if err != nil {
		return Bound{}, thetaErrorf(opUpperBound, err)
	}

	b := Bound{
		WeightBound:  e.alpha.WeightBound(),
		Degree:       degree,
		Rows:         m.Rows(),
		Cols:         m.Cols(),
		Rank:         rank,
		Nullity:      m.Rows() - rank,
		AssignmentID: a.ID(),
		Fixed:        a.Fixed(),
		Elapsed:      time.Since(start),
	}
	kernelBoundDuration.WithLabelValues(o.rankMethod.String()).Observe(b.Elapsed.Seconds())
	e.logger.Info("kernel bound computed",
		slog.Int("weight_bound", b.WeightBound),
		slog.Int("degree", degree),
		slog.Int("rows", b.Rows),
		slog.Int("cols", b.Cols),
		slog.Int("rank", rank),
		slog.Int("nullity", b.Nullity),
		slog.String("assignment", a.ID().String()),
		slog.Bool("fixed", b.Fixed),
		slog.Duration("elapsed", b.Elapsed))

	return b, nil
}
