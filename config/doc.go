// SPDX-License-Identifier: MIT

// Package config loads the kernel-bound driver configuration.
//
// A YAML file is decoded over Default and checked with validator struct tags.
// Zero workers means "one per physical core", resolved by Workers.
//
//	indices: 1
//	weight_bound: 4
//	parallel: true
//	runs:
//	  - {degree: 17, fixed_integers: true}
//	  - {degree: 18, fixed_integers: false}
package config
