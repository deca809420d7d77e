package qsim

/*
RabiHamiltonian builds the on-resonance Rabi drive Hamiltonian

	H = (ℏ·omega/2) · sigma-x

for a two-level system driven at Rabi frequency omega (rad/s). Both
off-diagonal entries are the purely real coupling ℏ·omega/2 joules; the
diagonal vanishes in the rotating frame. The result is exactly
hermitian by construction, and a non-finite omega flows straight into
the entries rather than being trapped.
*/
func RabiHamiltonian(omega float64) Matrix {
	coupling := complex(0.5*Hbar*omega, 0)
	return Matrix{
		{0, coupling},
		{coupling, 0},
	}
}
