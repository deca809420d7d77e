package qsim

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCanonicalStates(t *testing.T) {
	Convey("Given the canonical basis states", t, func() {
		Convey("Then |0> and |1> are the computational basis", func() {
			So(Zero()[0], ShouldEqual, complex(1, 0))
			So(Zero()[1], ShouldEqual, complex(0, 0))
			So(One()[0], ShouldEqual, complex(0, 0))
			So(One()[1], ShouldEqual, complex(1, 0))
		})

		Convey("Then |+> and |-> are balanced superpositions", func() {
			inv := 1 / math.Sqrt2
			So(real(Plus()[0]), ShouldAlmostEqual, inv, 1e-15)
			So(real(Plus()[1]), ShouldAlmostEqual, inv, 1e-15)
			So(real(Minus()[0]), ShouldAlmostEqual, inv, 1e-15)
			So(real(Minus()[1]), ShouldAlmostEqual, -inv, 1e-15)
			So(Plus().Norm(), ShouldAlmostEqual, 1.0, 1e-12)
			So(Minus().Norm(), ShouldAlmostEqual, 1.0, 1e-12)
		})

		Convey("Then each call returns an independent slice", func() {
			z := Zero()
			z[0] = 5
			So(Zero()[0], ShouldEqual, complex(1, 0))
		})
	})
}

func TestSuperposition(t *testing.T) {
	Convey("Given raw amplitudes", t, func() {
		Convey("When both amplitudes are equal", func() {
			psi, err := Superposition(1, 1)

			Convey("Then the state normalizes to |+>", func() {
				So(err, ShouldBeNil)
				So(vectorCloseTo(psi, Plus(), 1e-12), ShouldBeTrue)
			})
		})

		Convey("When the amplitudes are 3 and 4i", func() {
			psi, err := Superposition(3, 4i)

			Convey("Then the norm is rescaled to one", func() {
				So(err, ShouldBeNil)
				So(psi.Norm(), ShouldAlmostEqual, 1.0, 1e-12)
				So(real(psi[0]), ShouldAlmostEqual, 0.6, 1e-12)
				So(imag(psi[1]), ShouldAlmostEqual, 0.8, 1e-12)
			})
		})

		Convey("When both amplitudes vanish", func() {
			psi, err := Superposition(0, 0)

			Convey("Then there is nothing to normalize", func() {
				So(err, ShouldNotBeNil)
				So(psi, ShouldBeNil)
			})
		})
	})
}
