// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matstride

import "github.com/pulsedsp/go-pulse/pulse"

// checkStrided panics if s cannot hold an m x n matrix with the given
// row stride. The last row is not required to carry its padding.
func checkStrided[T pulse.Lanes](name string, s []T, m, n, stride int) {
	if stride < n {
		panic("matstride: " + name + " stride smaller than n")
	}
	if len(s) < (m-1)*stride+n {
		panic("matstride: " + name + " slice too short")
	}
}

// unrolled reports whether the unrolled row bodies should be used.
func unrolled() bool {
	return pulse.CurrentLevel() != pulse.DispatchScalar
}
