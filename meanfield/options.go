// SPDX-License-Identifier: MIT

package meanfield

// Options configures an evolution.
//
// Fields:
//   - KeepHistory — retain every layer snapshot (p+1 states) instead of only the final one.
//   - Workers     — number of goroutines per layer; values ≤ 1 run sequentially.
//
// Example:
//
//	opts := meanfield.DefaultOptions()
//	opts.KeepHistory = true
//	hist, err := meanfield.Evolve(pr, spin.NewState(pr.NumQubits()), sched, &opts)
type Options struct {
	KeepHistory bool
	Workers     int
}

// DefaultOptions returns final-only, sequential evolution.
func DefaultOptions() Options {
	return Options{KeepHistory: false, Workers: 1}
}

// resolve maps nil to the defaults.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}
