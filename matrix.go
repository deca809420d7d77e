// matrix.go
package qsim

import (
	"math"
	"math/cmplx"
)

/*
Matrix is a dense, row-major complex matrix. Hamiltonians, collapse
operators, unitaries and density matrices all share this representation,
so the algebra below never has to convert between operator flavors.

The arithmetic methods allocate a fresh result and never mutate their
receiver or arguments. They assume conformable shapes; the exported
propagators validate shapes once at their boundary so the hot loops can
index without guards.
*/
type Matrix [][]complex128

/*
Statevector holds the complex amplitudes of a pure state in the
computational basis. For a two-level system it has length 2 with
element 0 the |0⟩ amplitude and element 1 the |1⟩ amplitude.
*/
type Statevector []complex128

// NewMatrix returns a zeroed n x n matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]complex128, n)
	}
	return m
}

func (m Matrix) Rows() int {
	return len(m)
}

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy, so callers can keep snapshots while the
// evolution loop keeps writing into its working matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]complex128, len(row))
		copy(out[i], row)
	}
	return out
}

func (m Matrix) Add(o Matrix) Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]complex128, len(m[i]))
		for j := range m[i] {
			out[i][j] = m[i][j] + o[i][j]
		}
	}
	return out
}

func (m Matrix) Sub(o Matrix) Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]complex128, len(m[i]))
		for j := range m[i] {
			out[i][j] = m[i][j] - o[i][j]
		}
	}
	return out
}

func (m Matrix) Scale(c complex128) Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]complex128, len(m[i]))
		for j := range m[i] {
			out[i][j] = c * m[i][j]
		}
	}
	return out
}

func (m Matrix) Mul(o Matrix) Matrix {
	rows, inner, cols := len(m), len(o), o.Cols()
	out := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]complex128, cols)
		for j := 0; j < cols; j++ {
			var sum complex128
			for k := 0; k < inner; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Adjoint returns the conjugate transpose.
func (m Matrix) Adjoint() Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]complex128, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

func (m Matrix) Trace() complex128 {
	var tr complex128
	for i := range m {
		tr += m[i][i]
	}
	return tr
}

// Apply multiplies the matrix into a statevector, returning a new vector.
func (m Matrix) Apply(psi Statevector) Statevector {
	out := make(Statevector, len(m))
	for i := range m {
		var sum complex128
		for j, amp := range psi {
			sum += m[i][j] * amp
		}
		out[i] = sum
	}
	return out
}

// hermitianTol is the relative tolerance used when the engine itself
// checks hermiticity of Hamiltonians and density matrices.
const hermitianTol = 1e-9

/*
IsHermitian reports whether the matrix equals its own adjoint to within
tol, measured relative to the largest entry magnitude. The relative
measure matters here: Hamiltonian entries are of order Hbar, so any
absolute tolerance would either pass everything or nothing.

A matrix containing NaN or infinite entries is not judged at all and
reports true, so that non-finite values propagate through the arithmetic
instead of being trapped as shape errors.
*/
func (m Matrix) IsHermitian(tol float64) bool {
	if m.Rows() != m.Cols() {
		return false
	}
	scale := 0.0
	for i := range m {
		for j := range m[i] {
			a := cmplx.Abs(m[i][j])
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return true
			}
			if a > scale {
				scale = a
			}
		}
	}
	if scale == 0 {
		return true
	}
	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-cmplx.Conj(m[j][i])) > tol*scale {
				return false
			}
		}
	}
	return true
}

// Commutator returns [A, B] = AB - BA.
func Commutator(a, b Matrix) Matrix {
	return a.Mul(b).Sub(b.Mul(a))
}

// Anticommutator returns {A, B} = AB + BA.
func Anticommutator(a, b Matrix) Matrix {
	return a.Mul(b).Add(b.Mul(a))
}

func (v Statevector) Clone() Statevector {
	out := make(Statevector, len(v))
	copy(out, v)
	return out
}

// Norm returns the Euclidean norm sqrt(sum |amplitude|^2).
func (v Statevector) Norm() float64 {
	total := 0.0
	for _, amp := range v {
		total += real(amp * cmplx.Conj(amp))
	}
	return math.Sqrt(total)
}
