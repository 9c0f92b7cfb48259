// SPDX-License-Identifier: MIT

package theta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/thetasharp/matrix"
	"github.com/katalvlaran/thetasharp/poly"
)

// Shape describes the rows and columns of the degree-v θ# matrix.
type Shape struct {
	// Rows holds one exponent vector over (log, Li_1, …, Li_D) per row.
	Rows [][]int
	// Cols holds one Φ monomial per column.
	Cols []poly.Monomial
}

// polylogWeights returns [1, 1, 2, …, D]: log then Li_1..Li_D.
func (e *Evaluator) polylogWeights() []int {
	D := e.alpha.WeightBound()
	w := make([]int, D+1)
	w[0] = 1
	for k := 1; k <= D; k++ {
		w[k] = k
	}

	return w
}

// Shape enumerates the row and column bases in degree v.
// v == 0 gives the single row 1 and the single column 1; v < 0 gives none.
func (e *Evaluator) Shape(v int) (Shape, error) {
	rows, err := poly.WeightedVectors(e.polylogWeights(), v)
	if err != nil {
		return Shape{}, err
	}
	phiWeights := make([]int, len(e.phiGens))
	for i, g := range e.phiGens {
		phiWeights[i] = e.ring.Weight(g)
	}
	exps, err := poly.WeightedVectors(phiWeights, v)
	if err != nil {
		return Shape{}, err
	}
	cols := make([]poly.Monomial, len(exps))
	for i, ex := range exps {
		cols[i] = poly.FromExponents(e.phiGens, ex)
	}

	return Shape{Rows: rows, Cols: cols}, nil
}

// RowLabel renders a row exponent vector, e.g. "log^2*Li3" or "1".
func RowLabel(exps []int) string {
	var parts []string
	for i, k := range exps {
		if k == 0 {
			continue
		}
		name := keyLog
		if i > 0 {
			name = keyLi(i)
		}
		if k > 1 {
			name += "^" + strconv.Itoa(k)
		}
		parts = append(parts, name)
	}
	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, "*")
}

// rowProducts walks the rows of s, handing each row index and the product of
// images ∏ image(var)^e to visit. Powers are memoized per call.
func (e *Evaluator) rowProducts(s Shape, image func(k int) (poly.Poly, error), visit func(r int, p poly.Poly) error) error {
	type powKey struct{ v, e int }
	pows := make(map[powKey]poly.Poly)
	var pow func(v, k int) (poly.Poly, error)
	pow = func(v, k int) (poly.Poly, error) {
		if k == 0 {
			return poly.One(), nil
		}
		if p, ok := pows[powKey{v, k}]; ok {
			return p, nil
		}
		base, err := image(v)
		if err != nil {
			return poly.Poly{}, err
		}
		prev, err := pow(v, k-1)
		if err != nil {
			return poly.Poly{}, err
		}
		p := prev.Mul(base)
		pows[powKey{v, k}] = p
		return p, nil
	}

	for r, exps := range s.Rows {
		prod := poly.One()
		for v, k := range exps {
			if k == 0 {
				continue
			}
			p, err := pow(v, k)
			if err != nil {
				return err
			}
			prod = prod.Mul(p)
		}
		if err := visit(r, prod); err != nil {
			return err
		}
	}

	return nil
}

// variableImage returns θ# of variable k in (log, Li_1, …).
func (e *Evaluator) variableImage(k int, opts ...ImageOption) (poly.Poly, error) {
	if k == 0 {
		return e.Log(opts...)
	}

	return e.Li(k, opts...)
}

func columnIndex(cols []poly.Monomial) map[string]int {
	idx := make(map[string]int, len(cols))
	for j, c := range cols {
		idx[c.Key()] = j
	}

	return idx
}

// Matrix assembles the evaluated θ# matrix in degree v.
// The assignment comes from WithRandomEvaluation or, failing that, the
// evaluator's current assignment; with neither it fails with
// ErrInvalidInvocation.
//
// Implementation:
//   - Stage 1: enumerate rows (weighted vectors over [1,1,2,…,D]) and Φ
//     columns of degree v.
//   - Stage 2: per row, multiply cached powers of evaluated images.
//   - Stage 3: scatter each product term into its column.
//
// Complexity: dominated by the image products, O(rows·T) term merges for T
// terms per product.
func (e *Evaluator) Matrix(v int, opts ...ImageOption) (*matrix.Dense, error) {
	o := gatherImageOptions(opts...)
	if !o.evaluate {
		o.evaluate = true
		o.assignment = e.Assignment()
	}
	if err := e.checkAssignment(o.assignment); err != nil {
		return nil, thetaErrorf(opMatrix, err)
	}
	imgOpts := []ImageOption{WithRandomEvaluation(o.assignment), WithContentScaling(o.scale)}

	s, err := e.Shape(v)
	if err != nil {
		return nil, thetaErrorf(opMatrix, err)
	}
	m, err := matrix.NewDense(len(s.Rows), len(s.Cols))
	if err != nil {
		return nil, thetaErrorf(opMatrix, err)
	}
	matrixCells.Observe(float64(len(s.Rows) * len(s.Cols)))
	cols := columnIndex(s.Cols)

	err = e.rowProducts(s,
		func(k int) (poly.Poly, error) { return e.variableImage(k, imgOpts...) },
		func(r int, p poly.Poly) error {
			for _, t := range p.Terms() {
				j, ok := cols[t.Mono.Key()]
				if !ok {
					return fmt.Errorf("row %s, term %s: %w", RowLabel(s.Rows[r]), e.ring.FormatMonomial(t.Mono), ErrInhomogeneous)
				}
				if err := m.Set(r, j, t.Coef); err != nil {
					return err
				}
			}
			return nil
		})
	if err != nil {
		return nil, thetaErrorf(opMatrix, err)
	}

	return m, nil
}

// SymbolicMatrix assembles the degree-v θ# matrix with entries in the ring
// of Lyndon generators. Entries are indexed [row][column]; absent entries are
// the zero polynomial.
func (e *Evaluator) SymbolicMatrix(v int) (Shape, [][]poly.Poly, error) {
	s, err := e.Shape(v)
	if err != nil {
		return Shape{}, nil, thetaErrorf(opSymbolic, err)
	}
	entries := make([][]poly.Poly, len(s.Rows))
	for r := range entries {
		entries[r] = make([]poly.Poly, len(s.Cols))
	}
	cols := columnIndex(s.Cols)

	err = e.rowProducts(s,
		func(k int) (poly.Poly, error) { return e.variableImage(k) },
		func(r int, p poly.Poly) error {
			for key, c := range p.CollectBy(e.IsPhi) {
				j, ok := cols[key]
				if !ok {
					return fmt.Errorf("row %s, column %s: %w", RowLabel(s.Rows[r]), e.ring.FormatMonomial(c.Outer), ErrInhomogeneous)
				}
				entries[r][j] = c.Coef
			}
			return nil
		})
	if err != nil {
		return Shape{}, nil, thetaErrorf(opSymbolic, err)
	}

	return s, entries, nil
}

// ExactKernelDimension returns the dimension over ℚ of the space of linear
// relations among the symbolic rows in degree v.
//
// Each symbolic entry is expanded into its coefficients on Lyndon monomials,
// giving a rational matrix with one column per (Φ column, Lyndon monomial)
// pair; the answer is rows - rank of that matrix. Exponentially more
// expensive than UpperBound; intended for small cases.
func (e *Evaluator) ExactKernelDimension(v int, opts ...matrix.Option) (int, error) {
	s, entries, err := e.SymbolicMatrix(v)
	if err != nil {
		return 0, thetaErrorf(opExact, err)
	}

	type slot struct {
		col  int
		mono string
	}
	slots := make(map[slot]int)
	for _, row := range entries {
		for j, p := range row {
			for _, t := range p.Terms() {
				k := slot{j, t.Mono.Key()}
				if _, ok := slots[k]; !ok {
					slots[k] = len(slots)
				}
			}
		}
	}

	m, err := matrix.NewDense(len(s.Rows), len(slots))
	if err != nil {
		return 0, thetaErrorf(opExact, err)
	}
	for r, row := range entries {
		for j, p := range row {
			for _, t := range p.Terms() {
				if err := m.Set(r, slots[slot{j, t.Mono.Key()}], t.Coef); err != nil {
					return 0, thetaErrorf(opExact, err)
				}
			}
		}
	}

	left, err := matrix.LeftNullity(m, opts...)
	if err != nil {
		return 0, thetaErrorf(opExact, err)
	}

	return left, nil
}
