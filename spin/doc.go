// Package spin holds the classical spin configuration of the mean-field AOA.
//
// Every qubit i is represented by a unit 3-vector n_i = (n^x, n^y, n^z), the
// classical stand-in for the expectation of its Pauli operators. A State is one
// snapshot of all N vectors; a History is the sequence of snapshots recorded at
// the layer boundaries of an evolution (index 0 is the initial state).
//
// Fresh runs start with every vector at (1,0,0), the +x eigenstate the driver
// prepares in QAOA.
//
// States are plain slices owned by the call that produced them; clone before
// sharing one between concurrent evolutions.
package spin
