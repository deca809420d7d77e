package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOperatorLibrary(t *testing.T) {
	Convey("Given the fixed operator library", t, func() {
		Convey("Then sigma-x has the bit-flip structure", func() {
			x := PauliX()
			So(x[0][0], ShouldEqual, complex(0, 0))
			So(x[0][1], ShouldEqual, complex(1, 0))
			So(x[1][0], ShouldEqual, complex(1, 0))
			So(x[1][1], ShouldEqual, complex(0, 0))
		})

		Convey("Then sigma-y carries the imaginary off-diagonal", func() {
			y := PauliY()
			So(y[0][1], ShouldEqual, -1i)
			So(y[1][0], ShouldEqual, 1i)
		})

		Convey("Then sigma-z flips the phase of |1>", func() {
			z := PauliZ()
			So(z[0][0], ShouldEqual, complex(1, 0))
			So(z[1][1], ShouldEqual, complex(-1, 0))
			So(z[0][1], ShouldEqual, complex(0, 0))
		})

		Convey("Then the dephasing operator is the unscaled sigma-z", func() {
			So(Dephasing(), ShouldResemble, PauliZ())
		})

		Convey("Then amplitude damping is the lowering operator", func() {
			l := AmplitudeDamping()
			So(l[0][1], ShouldEqual, complex(1, 0))
			So(l[0][0], ShouldEqual, complex(0, 0))
			So(l[1][0], ShouldEqual, complex(0, 0))
			So(l[1][1], ShouldEqual, complex(0, 0))

			Convey("And its adjoint raises |0> to |1>", func() {
				raised := l.Adjoint().Apply(Zero())
				So(vectorCloseTo(raised, One(), 1e-15), ShouldBeTrue)
			})

			Convey("And it drops |1> to |0>", func() {
				lowered := l.Apply(One())
				So(vectorCloseTo(lowered, Zero(), 1e-15), ShouldBeTrue)
			})
		})

		Convey("When a caller mutates a returned operator", func() {
			x := PauliX()
			x[0][1] = 99

			Convey("Then the next call is unaffected", func() {
				So(PauliX()[0][1], ShouldEqual, complex(1, 0))
			})
		})
	})
}
