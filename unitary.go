// unitary.go
package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

/*
Propagator computes the single-step evolution operator

	U(Δt) = exp(-i·H·Δt/ℏ)

for a 2x2 hermitian Hamiltonian, using the closed form of the matrix
exponential. Writing H = a0·I + a·σ in the Pauli basis,

	U = e^(-i·θ0) · (cos(r)·I - i·sin(r)·(n·σ))

with θ = a·Δt/ℏ, r = |θ| and n = θ/r. The closed form is exactly
unitary in exact arithmetic, so repeated application preserves the
state norm to within floating-point rounding; a truncated series
expansion would leak norm at every step.

The Hamiltonian must be hermitian to within a small relative tolerance.
A matrix with non-finite entries skips that check and the NaN/Inf
values propagate into the returned operator.
*/
func Propagator(h Matrix, dt float64) (Matrix, error) {
	if err := checkTwoByTwo("hamiltonian", h); err != nil {
		return nil, err
	}
	if err := checkTimeStep(dt); err != nil {
		return nil, err
	}
	if !h.IsHermitian(hermitianTol) {
		return nil, fmt.Errorf("%w: hamiltonian must equal its adjoint", ErrNotHermitian)
	}

	// Pauli decomposition of H·Δt/ℏ, in radians. The symmetric reads
	// touch every entry, so a stray NaN anywhere in H reaches the output.
	t := dt / Hbar
	theta0 := 0.5 * real(h[0][0]+h[1][1]) * t
	thetaX := 0.5 * real(h[0][1]+h[1][0]) * t
	thetaY := 0.5 * (imag(h[1][0]) - imag(h[0][1])) * t
	thetaZ := 0.5 * real(h[0][0]-h[1][1]) * t

	phase := cmplx.Exp(complex(0, -theta0))
	r := math.Sqrt(thetaX*thetaX + thetaY*thetaY + thetaZ*thetaZ)
	if r == 0 {
		// Pure global phase, no rotation axis.
		return Matrix{
			{phase, 0},
			{0, phase},
		}, nil
	}

	cosr := complex(math.Cos(r), 0)
	isin := complex(0, -math.Sin(r))
	nz := complex(thetaZ/r, 0)
	nMinus := complex(thetaX/r, -thetaY/r)
	nPlus := complex(thetaX/r, thetaY/r)

	return Matrix{
		{phase * (cosr + isin*nz), phase * isin * nMinus},
		{phase * isin * nPlus, phase * (cosr - isin*nz)},
	}, nil
}

/*
EvolveStatevector advances a pure state through steps applications of
the fixed-step unitary U(Δt), built once and reused for every step.
The input vector is never mutated; with steps = 0 an unchanged copy of
psi comes back after the usual validation.

Because U is exactly unitary, a unit-norm input stays unit-norm over
arbitrarily many steps up to rounding. Normalization of psi itself is
the caller's business: a non-normalized input evolves linearly and
keeps its norm, it is not rescaled.
*/
func EvolveStatevector(psi Statevector, h Matrix, dt float64, steps int) (Statevector, error) {
	return evolveState(psi, h, dt, steps, nil)
}

// evolveState is the worker behind EvolveStatevector. The optional
// observe callback sees every intermediate state, step 0 included, and
// is how trajectory recording hooks into the loop.
func evolveState(psi Statevector, h Matrix, dt float64, steps int, observe func(step int, psi Statevector)) (Statevector, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	if err := checkStateLength(psi); err != nil {
		return nil, err
	}
	u, err := Propagator(h, dt)
	if err != nil {
		return nil, err
	}

	out := psi.Clone()
	if observe != nil {
		observe(0, out)
	}
	for step := 1; step <= steps; step++ {
		out = u.Apply(out)
		if observe != nil {
			observe(step, out)
		}
	}
	return out, nil
}
