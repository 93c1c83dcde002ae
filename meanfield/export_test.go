// SPDX-License-Identifier: MIT

package meanfield

import (
	"github.com/katalvlaran/mfaoa/matrix"
	"github.com/katalvlaran/mfaoa/spin"
)

// EvolveFieldsDriverFirst runs EvolveFields with the two rotation stages swapped.
func EvolveFieldsDriverFirst(s0 spin.State, h []float64, J matrix.Matrix, delta, beta, gamma []float64) (spin.History, error) {
	k, err := rawKernel(len(s0), h, J, delta)
	if err != nil {
		return nil, err
	}
	if err = checkAngles(beta, gamma); err != nil {
		return nil, err
	}
	k.order = driverFirst

	return run(k, s0, beta, gamma, DefaultOptions()), nil
}
