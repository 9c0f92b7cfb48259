// SPDX-License-Identifier: MIT

// Command kernelbound bounds the dimension of the kernel of θ# for the runs
// listed in a YAML configuration.
//
//	kernelbound run --config kernelbound.yaml
//	kernelbound run --parallel --workers 8 --metrics-addr :9464
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
