// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
)

// Environment overrides consulted by Load.
const (
	EnvWorkers = "MFAOA_WORKERS"
	EnvTau     = "MFAOA_TAU"
	EnvMethod  = "MFAOA_METHOD"
)

// applyEnv overlays environment values on cfg. lookup has the shape of os.LookupEnv.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWorkers, v, err)
		}
		cfg.Analysis.Workers = n
	}
	if v, ok := lookup(EnvTau); ok && v != "" {
		tau, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvTau, v, err)
		}
		cfg.Analysis.Tau = tau
	}
	if v, ok := lookup(EnvMethod); ok && v != "" {
		cfg.Optimize.Method = v
	}

	return nil
}
