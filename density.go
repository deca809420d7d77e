// density.go
package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

/*
DensityFromState forms the projector |ψ⟩⟨ψ| for a pure state. The
result is hermitian and positive by construction, with trace equal to
the squared norm of psi, so a unit-norm input yields a proper density
matrix.
*/
func DensityFromState(psi Statevector) (Matrix, error) {
	if len(psi) == 0 {
		return nil, fmt.Errorf("%w: empty statevector", ErrDimensionMismatch)
	}
	rho := make(Matrix, len(psi))
	for i, a := range psi {
		rho[i] = make([]complex128, len(psi))
		for j, b := range psi {
			rho[i][j] = a * cmplx.Conj(b)
		}
	}
	return rho, nil
}

// MaximallyMixed returns the two-level state of complete ignorance,
// I/2, whose purity sits at the lower bound 1/2.
func MaximallyMixed() Matrix {
	return Matrix{
		{0.5, 0},
		{0, 0.5},
	}
}

/*
Eigenvalues returns the two real eigenvalues of a 2x2 hermitian matrix
in ascending order, from the closed form

	λ = (a+d)/2 ± sqrt(((a-d)/2)² + |b|²)

for [[a, b], [b*, d]]. The closed form sidesteps iterative
eigensolvers entirely; for positivity checks the exactness matters,
since the question is whether an eigenvalue dips below -1e-8.
*/
func Eigenvalues(m Matrix) ([]float64, error) {
	if err := checkTwoByTwo("matrix", m); err != nil {
		return nil, err
	}
	if !m.IsHermitian(hermitianTol) {
		return nil, fmt.Errorf("%w: eigenvalues are only real for hermitian input", ErrNotHermitian)
	}
	mean := 0.5 * real(m[0][0]+m[1][1])
	half := 0.5 * real(m[0][0]-m[1][1])
	off := cmplx.Abs(m[0][1])
	radius := math.Sqrt(half*half + off*off)
	return []float64{mean - radius, mean + radius}, nil
}

/*
CheckDensityMatrix verifies that rho is a physically valid two-level
density matrix: 2x2, hermitian, unit trace and positive semidefinite,
all to within tol. It is a diagnostic for callers and tests; the
propagators deliberately do not run it per step, since the master
equation itself is trace-preserving and the Euler positivity drift is
part of what callers may want to observe.
*/
func CheckDensityMatrix(rho Matrix, tol float64) error {
	if err := checkTwoByTwo("density matrix", rho); err != nil {
		return err
	}
	if !rho.IsHermitian(tol) {
		return fmt.Errorf("%w: not hermitian within %v", ErrNotDensityMatrix, tol)
	}
	tr := rho.Trace()
	if math.Abs(real(tr)-1) > tol || math.Abs(imag(tr)) > tol {
		return fmt.Errorf("%w: trace %v, want 1", ErrNotDensityMatrix, tr)
	}
	// Closed-form eigenvalues, inline rather than via Eigenvalues so the
	// hermiticity gate above is the only one applied at the caller's tol.
	mean := 0.5 * real(rho[0][0]+rho[1][1])
	half := 0.5 * real(rho[0][0]-rho[1][1])
	off := cmplx.Abs(rho[0][1])
	low := mean - math.Sqrt(half*half+off*off)
	if low < -tol {
		return fmt.Errorf("%w: negative eigenvalue %v", ErrNotDensityMatrix, low)
	}
	return nil
}
