// SPDX-License-Identifier: MIT
// Package spin_test contains unit tests for spin states and histories.
package spin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mfaoa/spin"
)

// TestNewState checks the +x initial state and the empty edge case.
func TestNewState(t *testing.T) {
	t.Parallel()

	s := spin.NewState(3)
	require.Len(t, s, 3)
	for _, v := range s {
		assert.Equal(t, spin.Vec3{1, 0, 0}, v)
	}
	assert.Equal(t, []float64{0, 0, 0}, s.Z())
	assert.Zero(t, s.MaxNormDeviation())

	assert.Empty(t, spin.NewState(0))
	assert.Empty(t, spin.NewState(-2))
}

// TestState_CloneEqual checks independence of clones and exact equality.
func TestState_CloneEqual(t *testing.T) {
	t.Parallel()

	s := spin.State{{0, 1, 0}, {0, 0, -1}}
	c := s.Clone()
	require.True(t, s.Equal(c))

	c[0][spin.AxisY] = 0.5
	assert.False(t, s.Equal(c))
	assert.Equal(t, 1.0, s[0].Y())
	assert.False(t, s.Equal(s[:1]))
}

// TestState_Norms covers the unit-norm diagnostics.
func TestState_Norms(t *testing.T) {
	t.Parallel()

	s := spin.State{{0.6, 0.8, 0}, {0, 0, 1.5}}
	assert.InDelta(t, 0.5, s.MaxNormDeviation(), 1e-15)
	require.ErrorIs(t, s.CheckNorms(spin.NormTolerance), spin.ErrNotUnit)
	require.NoError(t, s[:1].CheckNorms(spin.NormTolerance))

	nan := spin.State{{math.NaN(), 0, 0}}
	assert.True(t, math.IsNaN(nan.MaxNormDeviation()))
	require.ErrorIs(t, nan.CheckNorms(1), spin.ErrNotUnit)
}

// TestHistory checks Final, Layers, Component and CheckNorms.
func TestHistory(t *testing.T) {
	t.Parallel()

	var empty spin.History
	assert.Nil(t, empty.Final())
	assert.Zero(t, empty.Layers())
	assert.Nil(t, empty.Component(0, spin.AxisZ))

	h := spin.History{
		{{1, 0, 0}, {1, 0, 0}},
		{{0, 1, 0}, {0, 0, 1}},
		{{0, 0, -1}, {0, 0, 1}},
	}
	assert.Equal(t, 2, h.Layers())
	assert.Equal(t, h[2], h.Final())
	assert.Equal(t, []float64{0, 0, -1}, h.Component(0, spin.AxisZ))
	assert.Equal(t, []float64{0, 1, 0}, h.Component(0, spin.AxisY))
	assert.Nil(t, h.Component(2, spin.AxisX))
	assert.Nil(t, h.Component(0, 3))
	require.NoError(t, h.CheckNorms(spin.NormTolerance))

	h[1][1] = spin.Vec3{0, 0, 2}
	require.ErrorIs(t, h.CheckNorms(spin.NormTolerance), spin.ErrNotUnit)
}
