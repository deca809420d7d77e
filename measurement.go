package qsim

import (
	"math/cmplx"
	"math/rand/v2"
)

/*
Probabilities returns the Born-rule weights |amplitude|² for each basis
outcome, normalized to sum to 1. The normalization absorbs any drift a
caller accumulated by working with a not-quite-unit vector; a zero
vector yields all-zero weights rather than dividing by zero.
*/
func Probabilities(psi Statevector) []float64 {
	probs := make([]float64, len(psi))
	total := 0.0
	for i, amp := range psi {
		p := real(amp * cmplx.Conj(amp))
		probs[i] = p
		total += p
	}
	if total > 0 {
		for i := range probs {
			probs[i] /= total
		}
	}
	return probs
}

/*
Measure samples a computational-basis outcome from psi and returns the
outcome index together with the collapsed post-measurement state. The
input vector is left untouched; randomness comes from the caller's
source, so seeded runs reproduce exactly.

An empty state has nothing to measure and returns (-1, nil).
*/
func Measure(psi Statevector, rng *rand.Rand) (int, Statevector) {
	if len(psi) == 0 {
		return -1, nil
	}

	probs := Probabilities(psi)
	r := rng.Float64()

	cumulative := 0.0
	measured := len(probs) - 1
	for i, p := range probs {
		cumulative += p
		if r <= cumulative {
			measured = i
			break
		}
	}

	collapsed := make(Statevector, len(psi))
	collapsed[measured] = 1
	return measured, collapsed
}
