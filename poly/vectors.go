// SPDX-License-Identifier: MIT

package poly

import "fmt"

// WeightedVectors returns every non-negative integer vector e with
// Σ e[i]·weights[i] == total.
//
// Implementation:
//   - Stage 1: validate weights are positive.
//   - Stage 2: depth-first over coordinates, the current coordinate taking
//     values from its maximum down to 0.
//
// Order: lexicographically decreasing, so the first vector puts as much
// weight as possible on coordinate 0. total == 0 yields one zero vector;
// total < 0 or an empty weight list with total > 0 yields none.
// Complexity: output-sensitive, O(V·len(weights)) for V vectors.
func WeightedVectors(weights []int, total int) ([][]int, error) {
	for i, w := range weights {
		if w <= 0 {
			return nil, polyErrorf(opWeightedVectors, fmt.Errorf("weights[%d]=%d: %w", i, w, ErrInvalidWeight))
		}
	}
	if total < 0 {
		return nil, nil
	}

	var out [][]int
	cur := make([]int, len(weights))
	var rec func(i, rem int)
	rec = func(i, rem int) {
		if i == len(weights)-1 {
			if rem%weights[i] == 0 {
				cur[i] = rem / weights[i]
				out = append(out, append([]int(nil), cur...))
			}
			cur[i] = 0
			return
		}
		for e := rem / weights[i]; e >= 0; e-- {
			cur[i] = e
			rec(i+1, rem-e*weights[i])
		}
		cur[i] = 0
	}
	if len(weights) == 0 {
		if total == 0 {
			return [][]int{{}}, nil
		}
		return nil, nil
	}
	rec(0, total)

	return out, nil
}
