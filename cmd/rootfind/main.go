// SPDX-License-Identifier: MIT

// Command rootfind locates zeros of polynomials and quantiles of common
// distributions from the command line.
//
// Examples:
//
//	rootfind solve --coef 1,0,-2 --min 0 --max 2
//	rootfind solve --coef 1,-6,11,-6 --min 0 --max 4 --initial 2.5 --trace
//	rootfind quantile --dist chi --k 3 --sigma 0.25 --p 0.95
package main

import "os"

// Version and BuildTime are set via ldflags during build.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
