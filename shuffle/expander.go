// SPDX-License-Identifier: MIT

package shuffle

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/thetasharp/alphabet"
)

// Expander computes and caches dual-PBW basis expansions S_w.
// It is safe for concurrent use.
type Expander struct {
	store       Store
	logger      *slog.Logger
	flight      singleflight.Group
	precomputed atomic.Bool
}

// NewExpander returns an Expander configured by opts.
func NewExpander(opts ...Option) *Expander {
	o := gatherOptions(opts...)

	return &Expander{store: o.store, logger: o.logger}
}

// Store returns the backing store.
func (e *Expander) Store() Store { return e.store }

// MarkPrecomputed switches the expander to lookup-only mode: from now on a
// store miss returns ErrNotPrecomputed instead of recomputing.
func (e *Expander) MarkPrecomputed() { e.precomputed.Store(true) }

// Precomputed reports whether MarkPrecomputed has been called.
func (e *Expander) Precomputed() bool { return e.precomputed.Load() }

// Expand returns S_w in the word basis. The returned Element is shared with
// the cache and must not be modified.
//
// Implementation:
//   - Stage 1: store lookup.
//   - Stage 2: on a miss, fail with ErrNotPrecomputed in lookup-only mode;
//     otherwise compute under singleflight so concurrent callers of the same
//     word wait for one computation.
//
// Recursive calls always target strictly shorter words, so nested
// singleflight calls cannot wait on themselves.
func (e *Expander) Expand(w alphabet.Word) (Element, error) {
	x, ok, err := e.store.Load(w)
	if err != nil {
		return Element{}, shuffleErrorf(opExpand, fmt.Errorf("load %q: %w", w, err))
	}
	if ok {
		expansionLookups.WithLabelValues(resultHit).Inc()
		return x, nil
	}
	expansionLookups.WithLabelValues(resultMiss).Inc()
	if e.precomputed.Load() {
		return Element{}, shuffleErrorf(opExpand, fmt.Errorf("%q: %w", w, ErrNotPrecomputed))
	}

	v, err, _ := e.flight.Do(string(w), func() (any, error) {
		if x, ok, err := e.store.Load(w); err == nil && ok {
			return x, nil
		}
		x, err := e.compute(w)
		if err != nil {
			return nil, err
		}
		if err := e.store.Save(w, x); err != nil {
			return nil, shuffleErrorf(opExpand, fmt.Errorf("save %q: %w", w, err))
		}
		expansionsComputed.Inc()

		return x, nil
	})
	if err != nil {
		return Element{}, err
	}

	return v.(Element), nil
}

// compute evaluates the defining recursion for S_w.
func (e *Expander) compute(w alphabet.Word) (Element, error) {
	switch {
	case w.Len() == 0:
		return One(), nil
	case w.Len() == 1:
		return WordElement(w), nil
	case alphabet.IsLyndon(w):
		sub, err := e.Expand(w.Rest())
		if err != nil {
			return Element{}, err
		}
		return sub.Concat(w.First()), nil
	}

	// Factors are non-increasing, so equal factors are adjacent.
	factors := alphabet.Factorize(w)
	prod := One()
	denom := big.NewInt(1)
	run := 0
	for i, f := range factors {
		sf, err := e.Expand(f)
		if err != nil {
			return Element{}, err
		}
		prod = prod.Shuffle(sf)
		if i > 0 && factors[i-1] == f {
			run++
		} else {
			run = 1
		}
		denom.Mul(denom, big.NewInt(int64(run)))
	}

	return prod.Scale(new(big.Rat).SetFrac(big.NewInt(1), denom)), nil
}

// Precompute expands every word in words with at most workers concurrent
// expansions, filling the store. The first worker error cancels the rest and
// is returned.
func (e *Expander) Precompute(ctx context.Context, words []alphabet.Word, workers int) error {
	if workers < 1 {
		return shuffleErrorf(opPrecompute, ErrInvalidWorkers)
	}
	start := time.Now()
	defer func() { precomputeDuration.Observe(time.Since(start).Seconds()) }()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, w := range words {
		if gctx.Err() != nil {
			break
		}
		w := w
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := e.Expand(w); err != nil {
				return shuffleErrorf(opPrecompute, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return shuffleErrorf(opPrecompute, err)
	}
	e.logger.Debug("expansions precomputed",
		slog.Int("words", len(words)),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}
