// SPDX-License-Identifier: MIT

package theta

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/katalvlaran/thetasharp/shuffle"
)

// registryKey identifies an evaluator. A nil store stands for the default
// in-memory one.
type registryKey struct {
	weightBound int
	indices     int
	store       shuffle.Store
}

// Registry keeps one Evaluator per (weight bound, index count, store), so
// repeated kernel-bound queries reuse θ# images and, under
// WithClearCache(false), the current assignment and its evaluated images.
// It is safe for concurrent use.
//
// WithLogger takes effect when the evaluator for a key is first built.
type Registry struct {
	mu         sync.Mutex
	evaluators map[registryKey]*Evaluator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{evaluators: make(map[registryKey]*Evaluator)}
}

// defaultRegistry backs the package-level ComputeBound and
// UpperBoundOnDimensionOfKernel for the life of the process.
var defaultRegistry = NewRegistry()

// Len returns the number of evaluators held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.evaluators)
}

// Evaluator returns the evaluator for weight bound D and the configured
// index count and store, building it on first use. Stores of a
// non-comparable type cannot be keyed; they get a fresh, unregistered
// evaluator.
func (r *Registry) Evaluator(weightBound int, opts ...Option) (*Evaluator, error) {
	o := gatherOptions(opts...)
	if o.store != nil && !reflect.TypeOf(o.store).Comparable() {
		return New(weightBound, o.indices, opts...)
	}
	k := registryKey{weightBound: weightBound, indices: o.indices, store: o.store}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.evaluators[k]; ok {
		return e, nil
	}
	e, err := New(weightBound, o.indices, opts...)
	if err != nil {
		return nil, err
	}
	r.evaluators[k] = e

	return e, nil
}

// Reset drops every evaluator.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.evaluators = make(map[registryKey]*Evaluator)
	r.mu.Unlock()
}

// ComputeBound resolves the evaluator for the effective weight bound and runs
// KernelBound on it.
//
// Implementation:
//   - Stage 1: validate D; with odd-weight reduction (default) an odd D >= 3
//     becomes D-1, since Li_D is then the only source of the phisigma{D}
//     columns.
//   - Stage 2: Evaluator(D, opts...) then KernelBound(ctx, degree, opts...).
func (r *Registry) ComputeBound(ctx context.Context, weightBound, degree int, opts ...Option) (Bound, error) {
	if weightBound < 1 {
		return Bound{}, thetaErrorf(opUpperBound, fmt.Errorf("D=%d: %w", weightBound, ErrInvalidWeightBound))
	}
	o := gatherOptions(opts...)
	D := weightBound
	if o.reduction && D >= 3 && D%2 == 1 {
		D--
		o.logger.Debug("odd weight bound reduced", slog.Int("from", weightBound), slog.Int("to", D))
	}

	e, err := r.Evaluator(D, opts...)
	if err != nil {
		return Bound{}, thetaErrorf(opUpperBound, err)
	}

	return e.KernelBound(ctx, degree, opts...)
}
