// lindblad.go
package qsim

import "fmt"

/*
Channel couples the system to its environment through a collapse
operator acting at a fixed rate. Rate carries units of 1/s and must not
be negative; a zero rate is a disconnected channel and contributes
nothing to the evolution.
*/
type Channel struct {
	Op   Matrix
	Rate float64
}

/*
NewLindbladGenerator builds the right-hand side of the Lindblad master
equation

	dρ/dt = -(i/ℏ)[H, ρ] + Σ_k γ_k·(L_k ρ L_k† - ½{L_k†L_k, ρ})

as a Generator closure. The adjoints and the products L†L are fixed for
the lifetime of the generator, so they are computed here once rather
than on every step.

The commutator term has zero trace for any ρ, and each dissipator term
has zero trace as well, since Tr(LρL†) = Tr(L†Lρ) cancels against the
anticommutator half. The generator therefore preserves Tr(ρ) = 1 up to
rounding under any of the integrators. Positivity is preserved only
approximately by explicit stepping; the per-step violation scales with
(Δt·‖H‖/ℏ)² and stays far below typical tolerances at the step sizes
the engine is meant for.
*/
func NewLindbladGenerator(h Matrix, channels []Channel) (Generator, error) {
	if err := checkTwoByTwo("hamiltonian", h); err != nil {
		return nil, err
	}
	if !h.IsHermitian(hermitianTol) {
		return nil, fmt.Errorf("%w: hamiltonian must equal its adjoint", ErrNotHermitian)
	}

	type dissipator struct {
		op    Matrix
		adj   Matrix
		adjOp Matrix
		rate  complex128
	}
	terms := make([]dissipator, 0, len(channels))
	for i, ch := range channels {
		if err := checkTwoByTwo(fmt.Sprintf("collapse operator %d", i), ch.Op); err != nil {
			return nil, err
		}
		if ch.Rate < 0 {
			return nil, fmt.Errorf("%w: channel %d rate = %v", ErrNegativeCoupling, i, ch.Rate)
		}
		adj := ch.Op.Adjoint()
		terms = append(terms, dissipator{
			op:    ch.Op,
			adj:   adj,
			adjOp: adj.Mul(ch.Op),
			rate:  complex(ch.Rate, 0),
		})
	}

	coherent := complex(0, -1/Hbar)
	return func(rho Matrix) Matrix {
		drift := Commutator(h, rho).Scale(coherent)
		for _, d := range terms {
			jump := d.op.Mul(rho).Mul(d.adj)
			decay := Anticommutator(d.adjOp, rho).Scale(0.5)
			drift = drift.Add(jump.Sub(decay).Scale(d.rate))
		}
		return drift
	}, nil
}

/*
EvolveDensityMatrix advances a density matrix through steps explicit
Euler steps of the Lindblad master equation, with every collapse
operator in ops sharing the single rate gamma. Passing no operators
reduces the evolution to the coherent von Neumann term alone.

The rate is validated even when ops is empty, so a negative gamma never
passes silently. The input matrix is not mutated, and steps = 0 returns
an unchanged copy after validation.
*/
func EvolveDensityMatrix(rho, h Matrix, dt float64, steps int, ops []Matrix, gamma float64) (Matrix, error) {
	if gamma < 0 {
		return nil, fmt.Errorf("%w: gamma = %v", ErrNegativeCoupling, gamma)
	}
	channels := make([]Channel, len(ops))
	for i, op := range ops {
		channels[i] = Channel{Op: op, Rate: gamma}
	}
	return EvolveLindblad(rho, h, dt, steps, channels, Euler{})
}

/*
EvolveLindblad is the general open-system propagator: each channel
carries its own rate, and the stepping scheme is pluggable. A nil
integrator falls back to Euler, matching EvolveDensityMatrix.
*/
func EvolveLindblad(rho, h Matrix, dt float64, steps int, channels []Channel, integ Integrator) (Matrix, error) {
	gen, err := NewLindbladGenerator(h, channels)
	if err != nil {
		return nil, err
	}
	return evolveDensity(rho, gen, dt, steps, integ, nil)
}

// evolveDensity runs the stepping loop shared by the density-matrix
// entry points. The optional observe callback sees every state
// including step 0, mirroring evolveState.
func evolveDensity(rho Matrix, gen Generator, dt float64, steps int, integ Integrator, observe func(step int, rho Matrix)) (Matrix, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	if err := checkTimeStep(dt); err != nil {
		return nil, err
	}
	if err := checkTwoByTwo("density matrix", rho); err != nil {
		return nil, err
	}
	if integ == nil {
		integ = Euler{}
	}

	out := rho.Clone()
	if observe != nil {
		observe(0, out)
	}
	for step := 1; step <= steps; step++ {
		out = integ.Step(out, gen, dt)
		if observe != nil {
			observe(step, out)
		}
	}
	return out, nil
}
