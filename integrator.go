package qsim

/*
Generator computes the instantaneous time derivative dρ/dt of a density
matrix under some master equation. It closes over the Hamiltonian and
collapse operators, so an Integrator only ever sees the current state
and never needs to know which physics produced the derivative.
*/
type Generator func(rho Matrix) Matrix

/*
Integrator advances a density matrix by one fixed time step under a
Generator. Separating the stepping scheme from the generator lets the
same Lindblad physics run under schemes of different order: the
first-order Euler scheme is the engine default, and the higher-order
schemes trade extra generator evaluations for smaller trace and
positivity drift at the same step size.

Step must not mutate rho; it returns a fresh matrix.
*/
type Integrator interface {
	Step(rho Matrix, gen Generator, dt float64) Matrix
}

// Euler is the explicit first-order scheme ρ' = ρ + Δt·G(ρ). One
// generator evaluation per step, local error O(Δt²).
type Euler struct{}

func (Euler) Step(rho Matrix, gen Generator, dt float64) Matrix {
	return rho.Add(gen(rho).Scale(complex(dt, 0)))
}

// Midpoint is the explicit second-order scheme: evaluate the generator
// at a half-step trial state and advance with that slope.
type Midpoint struct{}

func (Midpoint) Step(rho Matrix, gen Generator, dt float64) Matrix {
	halfDt := complex(0.5*dt, 0)
	k1 := gen(rho)
	k2 := gen(rho.Add(k1.Scale(halfDt)))
	return rho.Add(k2.Scale(complex(dt, 0)))
}

// RK4 is the classic fourth-order Runge-Kutta scheme. Four generator
// evaluations per step buy a local error of O(Δt⁵).
type RK4 struct{}

func (RK4) Step(rho Matrix, gen Generator, dt float64) Matrix {
	halfDt := complex(0.5*dt, 0)
	fullDt := complex(dt, 0)
	k1 := gen(rho)
	k2 := gen(rho.Add(k1.Scale(halfDt)))
	k3 := gen(rho.Add(k2.Scale(halfDt)))
	k4 := gen(rho.Add(k3.Scale(fullDt)))
	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return rho.Add(sum.Scale(complex(dt/6, 0)))
}
