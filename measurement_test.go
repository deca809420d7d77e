package qsim

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProbabilities(t *testing.T) {
	Convey("Given Born-rule weights", t, func() {
		Convey("Then |+> splits evenly", func() {
			probs := Probabilities(Plus())
			So(probs[0], ShouldAlmostEqual, 0.5, testTol)
			So(probs[1], ShouldAlmostEqual, 0.5, testTol)
		})

		Convey("Then an unnormalized vector is renormalized", func() {
			probs := Probabilities(Statevector{2, 0})
			So(probs[0], ShouldAlmostEqual, 1.0, testTol)
			So(probs[1], ShouldAlmostEqual, 0.0, testTol)
		})

		Convey("Then a lopsided superposition weighs as amplitude squared", func() {
			psi, err := Superposition(3, complex(0, 4))
			So(err, ShouldBeNil)

			probs := Probabilities(psi)
			So(probs[0], ShouldAlmostEqual, 0.36, testTol)
			So(probs[1], ShouldAlmostEqual, 0.64, testTol)
		})

		Convey("Then the zero vector yields zero weights", func() {
			probs := Probabilities(Statevector{0, 0})
			So(probs[0], ShouldEqual, 0.0)
			So(probs[1], ShouldEqual, 0.0)
		})
	})
}

func TestMeasure(t *testing.T) {
	Convey("Given a seeded random source", t, func() {
		rng := rand.New(rand.NewPCG(1, 2))

		Convey("Then measuring |0> always yields 0", func() {
			for i := 0; i < 10; i++ {
				outcome, collapsed := Measure(Zero(), rng)
				So(outcome, ShouldEqual, 0)
				So(collapsed, ShouldResemble, Statevector{1, 0})
			}
		})

		Convey("Then measuring |1> always yields 1", func() {
			for i := 0; i < 10; i++ {
				outcome, collapsed := Measure(One(), rng)
				So(outcome, ShouldEqual, 1)
				So(collapsed, ShouldResemble, Statevector{0, 1})
			}
		})

		Convey("Then the input state survives the measurement", func() {
			psi := Plus()
			_, _ = Measure(psi, rng)
			So(vectorCloseTo(psi, Plus(), 0), ShouldBeTrue)
		})
	})

	Convey("Given many samples of an even superposition", t, func() {
		rng := rand.New(rand.NewPCG(42, 1024))
		counts := [2]int{}
		for i := 0; i < 1000; i++ {
			outcome, collapsed := Measure(Plus(), rng)
			counts[outcome]++
			So(collapsed[outcome], ShouldEqual, complex(1, 0))
			So(collapsed[1-outcome], ShouldEqual, complex(0, 0))
		}

		Convey("Then both outcomes occur near half the time", func() {
			So(counts[0], ShouldBeBetween, 399, 601)
			So(counts[1], ShouldBeBetween, 399, 601)
		})
	})

	Convey("Given an empty state", t, func() {
		outcome, collapsed := Measure(Statevector{}, rand.New(rand.NewPCG(0, 0)))

		Convey("Then there is nothing to measure", func() {
			So(outcome, ShouldEqual, -1)
			So(collapsed, ShouldBeNil)
		})
	})
}
