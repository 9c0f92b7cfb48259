// SPDX-License-Identifier: MIT
//
// Functional options for evaluators, images and kernel bounds.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: random assignments are drawn from WithRand or
//     WithSeed; without either a time-seeded source is used.
//   • Later options override earlier ones.

package theta

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/thetasharp/matrix"
	"github.com/katalvlaran/thetasharp/shuffle"
)

// Defaults.
const (
	// DefaultIndices is the index-set size used by
	// UpperBoundOnDimensionOfKernel unless WithIndices is given.
	DefaultIndices = 1

	// DefaultRandomBound is the largest value a random assignment draws.
	DefaultRandomBound int64 = 1 << 20

	// DefaultClearCache draws a fresh assignment on every kernel bound.
	DefaultClearCache = true

	// DefaultOddWeightReduction replaces an odd weight bound D >= 3 by D-1.
	DefaultOddWeightReduction = true
)

const (
	panicNilRand     = "theta: WithRand(nil)"
	panicRandomBound = "theta: WithRandomBound: bound must be >= 1"
	panicIndices     = "theta: WithIndices: count must be >= 1"
	panicWorkers     = "theta: WithWorkers: workers must be >= 0"
	panicNilStore    = "theta: WithStore(nil)"
	panicNilLogger   = "theta: WithLogger(nil)"
	panicNilAssign   = "theta: WithAssignment(nil)"
	panicRankMethod  = "theta: WithRankMethod: unknown method"
)

// Option configures New, Evaluator.UpperBound and
// UpperBoundOnDimensionOfKernel.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	indices     int
	fixed       bool
	clear       bool
	rng         *rand.Rand
	randomBound int64
	reduction   bool
	rankMethod  matrix.RankMethod
	workers     int
	store       shuffle.Store
	logger      *slog.Logger
	assignment  *Assignment
}

// WithIndices sets the index-set size for UpperBoundOnDimensionOfKernel.
func WithIndices(n int) Option {
	if n < 1 {
		panic(panicIndices)
	}

	return func(o *Options) { o.indices = n }
}

// WithFixedTestIntegers evaluates with FixedAssignment instead of random draws.
func WithFixedTestIntegers() Option {
	return func(o *Options) { o.fixed = true }
}

// WithClearCache controls whether a kernel bound draws a new assignment
// (true, default) or reuses the evaluator's current one and its cached
// evaluated images (false).
func WithClearCache(clear bool) Option {
	return func(o *Options) { o.clear = clear }
}

// WithRand draws random assignments from r.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.rng = r }
}

// WithSeed draws random assignments from a source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRandomBound sets the largest value of a random draw.
func WithRandomBound(bound int64) Option {
	if bound < 1 {
		panic(panicRandomBound)
	}

	return func(o *Options) { o.randomBound = bound }
}

// WithOddWeightReduction toggles replacing an odd weight bound D >= 3 by D-1.
func WithOddWeightReduction(on bool) Option {
	return func(o *Options) { o.reduction = on }
}

// WithRankMethod selects the rank kernel (matrix.RankExact by default).
func WithRankMethod(m matrix.RankMethod) Option {
	if m != matrix.RankExact && m != matrix.RankModular {
		panic(panicRankMethod)
	}

	return func(o *Options) { o.rankMethod = m }
}

// WithWorkers precomputes every needed basis expansion with n workers before
// building images. 0 (default) computes expansions lazily on one goroutine.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// WithStore shares an expansion cache between evaluators or runs.
func WithStore(s shuffle.Store) Option {
	if s == nil {
		panic(panicNilStore)
	}

	return func(o *Options) { o.store = s }
}

// WithLogger sets the logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithAssignment evaluates a kernel bound with a. It takes precedence over
// WithFixedTestIntegers and random draws.
func WithAssignment(a *Assignment) Option {
	if a == nil {
		panic(panicNilAssign)
	}

	return func(o *Options) { o.assignment = a }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		indices:     DefaultIndices,
		clear:       DefaultClearCache,
		randomBound: DefaultRandomBound,
		reduction:   DefaultOddWeightReduction,
		rankMethod:  matrix.RankExact,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}

// ImageOption configures Log, Li and Matrix.
type ImageOption func(*imageOptions)

type imageOptions struct {
	evaluate   bool
	assignment *Assignment
	scale      bool
}

// WithRandomEvaluation evaluates with a instead of keeping symbols.
// A nil a makes the call fail with ErrInvalidInvocation.
func WithRandomEvaluation(a *Assignment) ImageOption {
	return func(o *imageOptions) {
		o.evaluate = true
		o.assignment = a
	}
}

// WithContentScaling toggles dividing evaluated images by their content.
// Default: true.
func WithContentScaling(on bool) ImageOption {
	return func(o *imageOptions) { o.scale = on }
}

func gatherImageOptions(opts ...ImageOption) imageOptions {
	o := imageOptions{scale: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
