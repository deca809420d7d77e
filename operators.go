package qsim

/*
The fixed operator library for a two-level system. Every constructor
returns a freshly allocated matrix: operators are plain slices, and a
shared instance mutated by one caller would silently poison every other
computation in flight.
*/

// Identity2 returns the 2x2 identity.
func Identity2() Matrix {
	return Matrix{
		{1, 0},
		{0, 1},
	}
}

// PauliX returns sigma-x, the bit-flip operator.
func PauliX() Matrix {
	return Matrix{
		{0, 1},
		{1, 0},
	}
}

// PauliY returns sigma-y.
func PauliY() Matrix {
	return Matrix{
		{0, -1i},
		{1i, 0},
	}
}

// PauliZ returns sigma-z, the phase-flip operator.
func PauliZ() Matrix {
	return Matrix{
		{1, 0},
		{0, -1},
	}
}

/*
Dephasing returns the collapse operator for pure dephasing, the unscaled
sigma-z. Under the master equation this channel decays the off-diagonal
coherences at rate 2*gamma per unit time while leaving the populations
untouched: sigma-z rho sigma-z negates the off-diagonal entries and
{sigma-z^2, rho}/2 = rho, so the diagonal cancels exactly.
*/
func Dephasing() Matrix {
	return PauliZ()
}

/*
AmplitudeDamping returns the collapse operator for spontaneous emission,
the lowering operator sigma-minus = |0⟩⟨1|. It drains population from
|1⟩ into |0⟩ at the channel rate and decays coherences at half that rate.
*/
func AmplitudeDamping() Matrix {
	return Matrix{
		{0, 1},
		{0, 0},
	}
}
