package qsim

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the simulation engine. Callers match them with
// errors.Is; the wrapped message carries the offending values.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidTimeStep   = errors.New("invalid time step")
	ErrNegativeSteps     = errors.New("negative step count")
	ErrNegativeCoupling  = errors.New("negative coupling rate")
	ErrNotHermitian      = errors.New("operator is not hermitian")
	ErrNotDensityMatrix  = errors.New("not a valid density matrix")
	ErrInvalidJob        = errors.New("invalid job")
	ErrUnknownName       = errors.New("unknown name")
)

/*
checkTwoByTwo verifies that an operator has the 2x2 shape every two-level
computation in this package assumes. The returned error wraps
ErrDimensionMismatch and names the offending operand.
*/
func checkTwoByTwo(name string, m Matrix) error {
	if len(m) != 2 {
		return fmt.Errorf("%w: %s has %d rows, want 2", ErrDimensionMismatch, name, len(m))
	}
	for i, row := range m {
		if len(row) != 2 {
			return fmt.Errorf("%w: %s row %d has %d columns, want 2", ErrDimensionMismatch, name, i, len(row))
		}
	}
	return nil
}

func checkStateLength(psi Statevector) error {
	if len(psi) != 2 {
		return fmt.Errorf("%w: statevector has length %d, want 2", ErrDimensionMismatch, len(psi))
	}
	return nil
}

/*
checkTimeStep rejects a step size that cannot drive a forward integration.
NaN and infinities are treated as invalid parameters here, unlike state or
operator entries, which are allowed to flow through the arithmetic.
*/
func checkTimeStep(dt float64) error {
	if math.IsInf(dt, 0) || !(dt > 0) {
		return fmt.Errorf("%w: dt = %v, want a finite positive value", ErrInvalidTimeStep, dt)
	}
	return nil
}

func checkSteps(steps int) error {
	if steps < 0 {
		return fmt.Errorf("%w: steps = %d", ErrNegativeSteps, steps)
	}
	return nil
}
