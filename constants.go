package qsim

// Hbar is the reduced Planck constant in joule-seconds (CODATA 2018).
// Hamiltonians in this package carry energy units, so every propagator
// divides by Hbar to convert energies into angular frequencies.
const Hbar = 1.054571817e-34
