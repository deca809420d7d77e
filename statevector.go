package qsim

import (
	"fmt"
	"math"
)

/*
Canonical two-level states. Each constructor returns a fresh slice, so a
caller that mutates its copy during an evolution run never corrupts a
state handed to another run.
*/

// Zero returns the ground state |0⟩.
func Zero() Statevector {
	return Statevector{1, 0}
}

// One returns the excited state |1⟩.
func One() Statevector {
	return Statevector{0, 1}
}

// Plus returns (|0⟩ + |1⟩)/√2, the +1 eigenstate of sigma-x.
func Plus() Statevector {
	inv := complex(1/math.Sqrt2, 0)
	return Statevector{inv, inv}
}

// Minus returns (|0⟩ - |1⟩)/√2, the -1 eigenstate of sigma-x.
func Minus() Statevector {
	inv := complex(1/math.Sqrt2, 0)
	return Statevector{inv, -inv}
}

/*
Superposition builds the normalized state alpha|0⟩ + beta|1⟩ from raw
amplitudes. It fails when both amplitudes vanish, since there is no
direction to normalize along. Non-finite amplitudes are not trapped;
they flow into the returned state.
*/
func Superposition(alpha, beta complex128) (Statevector, error) {
	psi := Statevector{alpha, beta}
	norm := psi.Norm()
	if norm == 0 {
		return nil, fmt.Errorf("zero amplitudes: cannot normalize alpha=%v, beta=%v", alpha, beta)
	}
	inv := complex(1/norm, 0)
	psi[0] *= inv
	psi[1] *= inv
	return psi, nil
}
