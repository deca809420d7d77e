package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIntegratorSchemes(t *testing.T) {
	Convey("Given a constant generator", t, func() {
		slope := Matrix{
			{complex(0, 1), 2},
			{3, complex(0, -1)},
		}
		gen := func(Matrix) Matrix { return slope }
		rho := MaximallyMixed()
		dt := 0.25
		want := rho.Add(slope.Scale(complex(dt, 0)))

		Convey("Then Euler lands exactly on rho + dt*G", func() {
			So(Euler{}.Step(rho, gen, dt), ShouldResemble, want)
		})

		Convey("Then Midpoint agrees, since the slope never changes", func() {
			So(matrixCloseTo(Midpoint{}.Step(rho, gen, dt), want, 1e-12), ShouldBeTrue)
		})

		Convey("Then RK4 agrees as well", func() {
			So(matrixCloseTo(RK4{}.Step(rho, gen, dt), want, 1e-12), ShouldBeTrue)
		})

		Convey("Then the input matrix is left untouched", func() {
			_ = RK4{}.Step(rho, gen, dt)
			So(rho, ShouldResemble, MaximallyMixed())
		})
	})
}

func TestIntegratorOrdering(t *testing.T) {
	Convey("Given coherent precession with a known exact solution", t, func() {
		omega := 1e8
		dt := 1e-9
		steps := 10
		h := RabiHamiltonian(omega)

		gen, err := NewLindbladGenerator(h, nil)
		So(err, ShouldBeNil)

		u, err := Propagator(h, dt)
		So(err, ShouldBeNil)

		exact, err := DensityFromState(Zero())
		So(err, ShouldBeNil)
		for i := 0; i < steps; i++ {
			exact = u.Mul(exact).Mul(u.Adjoint())
		}

		run := func(integ Integrator) Matrix {
			rho, err := DensityFromState(Zero())
			So(err, ShouldBeNil)
			for i := 0; i < steps; i++ {
				rho = integ.Step(rho, gen, dt)
			}
			return rho
		}

		Convey("When stepping with each scheme", func() {
			eulerErr := maxEntryDistance(run(Euler{}), exact)
			midErr := maxEntryDistance(run(Midpoint{}), exact)
			rk4Err := maxEntryDistance(run(RK4{}), exact)

			Convey("Then accuracy improves strictly with order", func() {
				So(eulerErr, ShouldBeGreaterThan, midErr)
				So(midErr, ShouldBeGreaterThan, rk4Err)
			})

			Convey("Then the endpoints are where the orders predict", func() {
				So(eulerErr, ShouldBeLessThan, 0.05)
				So(rk4Err, ShouldBeLessThan, 1e-6)
			})
		})

		Convey("When checking trace conservation", func() {
			for _, integ := range []Integrator{Euler{}, Midpoint{}, RK4{}} {
				rho := run(integ)
				So(real(rho.Trace()), ShouldAlmostEqual, 1.0, 1e-12)
				So(imag(rho.Trace()), ShouldAlmostEqual, 0.0, 1e-12)
			}
		})
	})
}
