// SPDX-License-Identifier: MIT

package theta

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"sync"

	"github.com/katalvlaran/thetasharp/alphabet"
	"github.com/katalvlaran/thetasharp/graded"
	"github.com/katalvlaran/thetasharp/poly"
	"github.com/katalvlaran/thetasharp/shuffle"
)

// Φ generator name prefixes.
const (
	phi0Prefix  = "phi0t"
	phi1Prefix  = "phi1t"
	sigmaPrefix = "phisigma"
)

const keyLog = "log"

func keyLi(n int) string { return "Li" + strconv.Itoa(n) }

// Evaluator builds θ# images and matrices for one weight bound and index
// set. It is safe for concurrent use.
type Evaluator struct {
	alpha  *alphabet.Alphabet
	graded *graded.Ring
	conv   *shuffle.Converter
	ring   *poly.Ring
	logger *slog.Logger

	lyndon  int   // generators [0, lyndon) are Lyndon words
	phi0    []int // phi0t{i} by index position
	phi1    []int // phi1t{i} by index position
	sigma   map[int]int
	phiGens []int // Φ generators in registration order

	mu         sync.Mutex
	symbolic   map[string]poly.Poly
	evaluated  map[string]poly.Poly
	assignment *Assignment
}

// New builds an Evaluator for weight bound D and an index set of the given
// size. Honoured options: WithStore, WithLogger.
//
// Implementation:
//   - Stage 1: alphabet and graded ring of Lyndon generators.
//   - Stage 2: clone the ring and append phi0t{i}, phi1t{i} for every index
//     letter, then phisigma{w} for every odd letter.
//   - Stage 3: expander and converter over the configured store.
func New(weightBound, indices int, opts ...Option) (*Evaluator, error) {
	if weightBound < 1 {
		return nil, thetaErrorf(opNew, fmt.Errorf("D=%d: %w", weightBound, ErrInvalidWeightBound))
	}
	o := gatherOptions(opts...)

	alpha, err := alphabet.New(weightBound, indices)
	if err != nil {
		return nil, thetaErrorf(opNew, err)
	}
	gr, err := graded.New(alpha)
	if err != nil {
		return nil, thetaErrorf(opNew, err)
	}

	expOpts := []shuffle.Option{shuffle.WithLogger(o.logger)}
	if o.store != nil {
		expOpts = append(expOpts, shuffle.WithStore(o.store))
	}

	e := &Evaluator{
		alpha:     alpha,
		graded:    gr,
		conv:      shuffle.NewConverter(shuffle.NewExpander(expOpts...)),
		ring:      gr.Poly().Clone(),
		logger:    o.logger,
		lyndon:    gr.Poly().Len(),
		sigma:     make(map[int]int),
		symbolic:  make(map[string]poly.Poly),
		evaluated: make(map[string]poly.Poly),
	}
	if err := e.addPhiGenerators(); err != nil {
		return nil, thetaErrorf(opNew, err)
	}

	return e, nil
}

func (e *Evaluator) addPhiGenerators() error {
	add := func(name string, weight int) (int, error) {
		id, err := e.ring.AddGenerator(name, weight)
		if err == nil {
			e.phiGens = append(e.phiGens, id)
		}
		return id, err
	}
	n := e.alpha.IndexCount()
	e.phi0 = make([]int, n)
	e.phi1 = make([]int, n)
	for i := 0; i < n; i++ {
		id, err := add(phi0Prefix+strconv.Itoa(i), alphabet.IndexWeight)
		if err != nil {
			return err
		}
		e.phi0[i] = id
	}
	for i := 0; i < n; i++ {
		id, err := add(phi1Prefix+strconv.Itoa(i), alphabet.IndexWeight)
		if err != nil {
			return err
		}
		e.phi1[i] = id
	}
	for _, x := range e.alpha.OddLetters() {
		w := e.alpha.Weight(x)
		id, err := add(sigmaPrefix+strconv.Itoa(w), w)
		if err != nil {
			return err
		}
		e.sigma[w] = id
	}

	return nil
}

// WeightBound returns D.
func (e *Evaluator) WeightBound() int { return e.alpha.WeightBound() }

// Graded returns the ring of Lyndon generators.
func (e *Evaluator) Graded() *graded.Ring { return e.graded }

// Ring returns the combined ring (Lyndon generators, then Φ generators).
func (e *Evaluator) Ring() *poly.Ring { return e.ring }

// Converter returns the shuffle-to-dual-PBW converter.
func (e *Evaluator) Converter() *shuffle.Converter { return e.conv }

// IsPhi reports whether gen is a Φ generator.
func (e *Evaluator) IsPhi(gen int) bool { return gen >= e.lyndon }

// PhiDegree returns the Φ-weighted degree shared by every term of p, and
// false when p is zero or its terms disagree.
func (e *Evaluator) PhiDegree(p poly.Poly) (int, bool) {
	deg, seen := 0, false
	for _, t := range p.Terms() {
		phi, _ := t.Mono.Split(e.IsPhi)
		d := e.ring.WeightedDegree(phi)
		if seen && d != deg {
			return 0, false
		}
		deg, seen = d, true
	}

	return deg, seen
}

// Format renders p with generator names.
func (e *Evaluator) Format(p poly.Poly) string { return e.ring.Format(p) }

// Precompute expands, with the given number of workers, every word of weight
// <= D with at most one odd letter and then switches the expander to
// lookup-only mode. The set is closed under rearrangement, so every later
// conversion is a pure cache read.
func (e *Evaluator) Precompute(ctx context.Context, workers int) error {
	words := e.alpha.WordsUpToWeight(e.alpha.WeightBound(), 1)
	e.logger.Info("precomputing basis expansions",
		slog.Int("weight_bound", e.alpha.WeightBound()),
		slog.Int("words", len(words)),
		slog.Int("workers", workers))
	exp := e.conv.Expander()
	if err := exp.Precompute(ctx, words, workers); err != nil {
		return thetaErrorf(opPrecompute, err)
	}
	exp.MarkPrecomputed()

	return nil
}

// Log returns θ#(log) = Σ_i S_{letter i}·phi0t{i}.
func (e *Evaluator) Log(opts ...ImageOption) (poly.Poly, error) {
	p, err := e.image(keyLog, e.buildLog, gatherImageOptions(opts...))
	if err != nil {
		return poly.Poly{}, thetaErrorf(opLog, err)
	}

	return p, nil
}

// Li returns θ#(Li_n) for 1 <= n <= D.
func (e *Evaluator) Li(n int, opts ...ImageOption) (poly.Poly, error) {
	if n < 1 || n > e.alpha.WeightBound() {
		return poly.Poly{}, thetaErrorf(opLi, fmt.Errorf("n=%d, D=%d: %w", n, e.alpha.WeightBound(), ErrDegreeOutOfRange))
	}
	p, err := e.image(keyLi(n), func() (poly.Poly, error) { return e.buildLi(n) }, gatherImageOptions(opts...))
	if err != nil {
		return poly.Poly{}, thetaErrorf(opLi, err)
	}

	return p, nil
}

// image resolves key in the cache selected by o, building on a miss.
// The lock is not held while building; a racing duplicate build produces the
// same value.
func (e *Evaluator) image(key string, build func() (poly.Poly, error), o imageOptions) (poly.Poly, error) {
	if !o.evaluate {
		return e.symbolicImage(key, build)
	}
	if err := e.checkAssignment(o.assignment); err != nil {
		return poly.Poly{}, err
	}
	ckey := key
	if !o.scale {
		ckey += "/unscaled"
	}

	e.mu.Lock()
	e.adoptLocked(o.assignment)
	p, ok := e.evaluated[ckey]
	e.mu.Unlock()
	if ok {
		return p, nil
	}

	sym, err := e.symbolicImage(key, build)
	if err != nil {
		return poly.Poly{}, err
	}
	a := o.assignment
	p = sym.Substitute(func(gen int) (*big.Rat, bool) {
		if gen >= e.lyndon {
			return nil, false
		}
		return a.Value(gen)
	})
	if o.scale {
		p = p.Primitive()
	}
	imagesComputed.WithLabelValues(modeEvaluated).Inc()

	e.mu.Lock()
	if e.assignment == a {
		e.evaluated[ckey] = p
	}
	e.mu.Unlock()

	return p, nil
}

func (e *Evaluator) symbolicImage(key string, build func() (poly.Poly, error)) (poly.Poly, error) {
	e.mu.Lock()
	p, ok := e.symbolic[key]
	e.mu.Unlock()
	if ok {
		return p, nil
	}

	p, err := build()
	if err != nil {
		return poly.Poly{}, err
	}
	imagesComputed.WithLabelValues(modeSymbolic).Inc()
	e.logger.Debug("θ# image built", slog.String("key", key), slog.Int("terms", p.Len()))

	e.mu.Lock()
	e.symbolic[key] = p
	e.mu.Unlock()

	return p, nil
}

func (e *Evaluator) checkAssignment(a *Assignment) error {
	if a == nil {
		return ErrInvalidInvocation
	}
	if a.Len() < e.lyndon {
		return fmt.Errorf("assignment covers %d of %d generators: %w", a.Len(), e.lyndon, ErrInvalidInvocation)
	}

	return nil
}

// adoptLocked makes a the current assignment, dropping evaluated images of
// any other assignment. The symbolic cache is never touched.
func (e *Evaluator) adoptLocked(a *Assignment) {
	if e.assignment != nil && e.assignment.ID() == a.ID() {
		return
	}
	e.assignment = a
	e.evaluated = make(map[string]poly.Poly)
}

// Assignment returns the assignment evaluated images are currently cached for.
func (e *Evaluator) Assignment() *Assignment {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.assignment
}

// SetAssignment makes a current, clearing evaluated images if it differs.
func (e *Evaluator) SetAssignment(a *Assignment) error {
	if err := e.checkAssignment(a); err != nil {
		return err
	}
	e.mu.Lock()
	e.adoptLocked(a)
	e.mu.Unlock()

	return nil
}

// ResetEvaluated drops the current assignment and every evaluated image.
func (e *Evaluator) ResetEvaluated() {
	e.mu.Lock()
	e.assignment = nil
	e.evaluated = make(map[string]poly.Poly)
	e.mu.Unlock()
}

func (e *Evaluator) buildLog() (poly.Poly, error) {
	out := poly.Zero()
	for i, t := range e.alpha.IndexLetters() {
		gen, ok := e.graded.Generator(alphabet.WordOf(t))
		if !ok {
			return poly.Poly{}, fmt.Errorf("%q: %w", t, graded.ErrUnknownGenerator)
		}
		out = out.Add(e.ring.Gen(gen).Mul(e.ring.Gen(e.phi0[i])))
	}

	return out, nil
}

// buildLi assembles the two families of θ#(Li_n):
//
//	(i)  Σ_t Σ_{|w|=n-1} [t·w]·phi0t(w)·phi1t(t)
//	(ii) Σ_X Σ_{|w|=n-wt(X)} [X·w]·phi0t(w)·phisigma(wt(X))
//
// where w ranges over index words and [u] is the graded image of the word u.
func (e *Evaluator) buildLi(n int) (poly.Poly, error) {
	out := poly.Zero()
	one := big.NewRat(1, 1)
	add := func(head alphabet.Letter, tail alphabet.Word, last int) error {
		coef, err := e.graded.FromShuffle(shuffle.WordElement(tail.Prepend(head)), e.conv)
		if err != nil {
			return err
		}
		out.AddScaled(coef.Mul(poly.Term(one, e.phiMonomial(tail, last))), one)
		return nil
	}

	tails := e.alpha.IndexWords(n - 1)
	for i, t := range e.alpha.IndexLetters() {
		for _, w := range tails {
			if err := add(t, w, e.phi1[i]); err != nil {
				return poly.Poly{}, err
			}
		}
	}
	for _, x := range e.alpha.OddLetters() {
		wt := e.alpha.Weight(x)
		if wt > n {
			continue
		}
		for _, w := range e.alpha.IndexWords(n - wt) {
			if err := add(x, w, e.sigma[wt]); err != nil {
				return poly.Poly{}, err
			}
		}
	}

	return out, nil
}

// phiMonomial returns ∏_{letters l of w} phi0t(l) · last.
func (e *Evaluator) phiMonomial(w alphabet.Word, last int) poly.Monomial {
	powers := make([]poly.Power, 0, w.Len()+1)
	for i := 0; i < w.Len(); i++ {
		powers = append(powers, poly.Power{Gen: e.phi0[e.alpha.Position(w.At(i))], Exp: 1})
	}
	powers = append(powers, poly.Power{Gen: last, Exp: 1})

	return poly.NewMonomial(powers...)
}
