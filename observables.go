// observables.go
package qsim

import (
	"fmt"
	"math"
)

// imagTol bounds the imaginary residue accepted when an expectation
// value that should be real is reduced to a float64. Anything larger
// signals a malformed density matrix and is reported, never discarded.
const imagTol = 1e-9

/*
Bloch is a point in the Bloch ball, the real three-vector of Pauli
expectation values (⟨σx⟩, ⟨σy⟩, ⟨σz⟩). Pure states sit on the unit
sphere, mixed states strictly inside, with the maximally mixed state at
the origin.
*/
type Bloch struct {
	X, Y, Z float64
}

// Norm returns the length of the Bloch vector, 1 for pure states and
// 0 for the maximally mixed state.
func (b Bloch) Norm() float64 {
	return math.Sqrt(b.X*b.X + b.Y*b.Y + b.Z*b.Z)
}

/*
Expectation returns Tr(op·rho), the expectation value of an observable
in the state rho. Both matrices must be 2x2. The result is complex:
for a hermitian observable and a valid density matrix the imaginary
part is rounding noise, and callers that need a guaranteed-real value
should go through BlochVector, which enforces that.
*/
func Expectation(op, rho Matrix) (complex128, error) {
	if err := checkTwoByTwo("observable", op); err != nil {
		return 0, err
	}
	if err := checkTwoByTwo("density matrix", rho); err != nil {
		return 0, err
	}
	return op.Mul(rho).Trace(), nil
}

/*
BlochVector maps a density matrix to its Bloch vector. Each component
is an expectation value of a Pauli operator, real for any hermitian
rho; an imaginary residue beyond imagTol means the input was not
hermitian and comes back as an error rather than being dropped.
*/
func BlochVector(rho Matrix) (Bloch, error) {
	if err := checkTwoByTwo("density matrix", rho); err != nil {
		return Bloch{}, err
	}

	ex, err := Expectation(PauliX(), rho)
	if err != nil {
		return Bloch{}, err
	}
	ey, err := Expectation(PauliY(), rho)
	if err != nil {
		return Bloch{}, err
	}
	ez, err := Expectation(PauliZ(), rho)
	if err != nil {
		return Bloch{}, err
	}

	for _, e := range []complex128{ex, ey, ez} {
		if math.Abs(imag(e)) > imagTol {
			return Bloch{}, fmt.Errorf("%w: pauli expectation %v has imaginary part beyond %v", ErrNotHermitian, e, imagTol)
		}
	}
	return Bloch{X: real(ex), Y: real(ey), Z: real(ez)}, nil
}

/*
Purity returns Tr(ρ²), the standard mixedness measure. For a valid
two-level density matrix it lies in [1/2, 1]: exactly 1 for pure
states, exactly 1/2 for the maximally mixed state. Values outside the
band signal an unnormalized or unphysical input; they are returned
as-is so callers can see how far off the state is.
*/
func Purity(rho Matrix) (float64, error) {
	if err := checkTwoByTwo("density matrix", rho); err != nil {
		return 0, err
	}
	return real(rho.Mul(rho).Trace()), nil
}
