// SPDX-License-Identifier: MIT

package fluctuation

// Options configures Analyze.
//
// Fields:
//   - Workers — goroutines used for the layer evolution and for the row blocks
//     of the basis propagation M_k·Q. Values ≤ 1 run sequentially.
type Options struct {
	Workers int
}

// DefaultOptions returns sequential analysis.
func DefaultOptions() Options { return Options{Workers: 1} }

func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}
