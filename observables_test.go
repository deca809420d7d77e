package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBlochVector(t *testing.T) {
	Convey("Given a diagonal mixed state", t, func() {
		rho := Matrix{{0.7, 0}, {0, 0.3}}

		Convey("When mapping to the Bloch ball", func() {
			b, err := BlochVector(rho)

			Convey("Then only the Z component survives", func() {
				So(err, ShouldBeNil)
				So(b.X, ShouldAlmostEqual, 0.0, testTol)
				So(b.Y, ShouldAlmostEqual, 0.0, testTol)
				So(b.Z, ShouldAlmostEqual, 0.4)
			})

			Convey("Then purity matches (1 + |r|^2) / 2", func() {
				p, err := Purity(rho)
				So(err, ShouldBeNil)
				So(p, ShouldAlmostEqual, 0.58)
				So(p, ShouldAlmostEqual, 0.5*(1+b.Norm()*b.Norm()), testTol)
			})
		})
	})

	Convey("Given the canonical states", t, func() {
		Convey("Then the maximally mixed state sits at the origin", func() {
			b, err := BlochVector(MaximallyMixed())
			So(err, ShouldBeNil)
			So(b.Norm(), ShouldAlmostEqual, 0.0, testTol)

			p, err := Purity(MaximallyMixed())
			So(err, ShouldBeNil)
			So(p, ShouldAlmostEqual, 0.5, testTol)
		})

		Convey("Then |+> points along +X on the unit sphere", func() {
			rho, err := DensityFromState(Plus())
			So(err, ShouldBeNil)

			b, err := BlochVector(rho)
			So(err, ShouldBeNil)
			So(b.X, ShouldAlmostEqual, 1.0, testTol)
			So(b.Norm(), ShouldAlmostEqual, 1.0, testTol)

			p, err := Purity(rho)
			So(err, ShouldBeNil)
			So(p, ShouldAlmostEqual, 1.0, testTol)
		})

		Convey("Then |1> points at the south pole", func() {
			rho, err := DensityFromState(One())
			So(err, ShouldBeNil)

			b, err := BlochVector(rho)
			So(err, ShouldBeNil)
			So(b.Z, ShouldAlmostEqual, -1.0, testTol)
		})

		Convey("Then (|0> + i|1>)/sqrt(2) points along +Y", func() {
			psi, err := Superposition(1, complex(0, 1))
			So(err, ShouldBeNil)
			rho, err := DensityFromState(psi)
			So(err, ShouldBeNil)

			b, err := BlochVector(rho)
			So(err, ShouldBeNil)
			So(b.Y, ShouldAlmostEqual, 1.0, testTol)
		})
	})

	Convey("Given malformed input", t, func() {
		Convey("Then the wrong shape is rejected", func() {
			_, err := BlochVector(NewMatrix(3))
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("Then a non-hermitian matrix surfaces as an error", func() {
			rho := Matrix{
				{0.5, complex(0, 0.5)},
				{complex(0, 0.5), 0.5},
			}
			_, err := BlochVector(rho)
			So(errors.Is(err, ErrNotHermitian), ShouldBeTrue)
		})
	})
}

func TestExpectation(t *testing.T) {
	Convey("Given ground-state population measured along Z", t, func() {
		e, err := Expectation(PauliZ(), Matrix{{1, 0}, {0, 0}})

		Convey("Then the expectation is +1", func() {
			So(err, ShouldBeNil)
			So(real(e), ShouldAlmostEqual, 1.0, testTol)
			So(imag(e), ShouldAlmostEqual, 0.0, testTol)
		})
	})

	Convey("Given a wrong-shaped observable", t, func() {
		_, err := Expectation(NewMatrix(3), MaximallyMixed())
		So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
	})
}

func TestPurity(t *testing.T) {
	Convey("Given an unnormalized matrix", t, func() {
		p, err := Purity(Matrix{{2, 0}, {0, 0}})

		Convey("Then the out-of-band value is reported as-is", func() {
			So(err, ShouldBeNil)
			So(p, ShouldAlmostEqual, 4.0, testTol)
		})
	})

	Convey("Given the wrong shape", t, func() {
		_, err := Purity(NewMatrix(3))
		So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
	})
}
