package qsim

// defaultMaxPoints caps how many samples a recorder keeps when the
// caller does not say otherwise.
const defaultMaxPoints = 4096

/*
TrajectoryPoint is one sampled snapshot of an evolution. Psi is set for
statevector runs and Rho for density runs; the Bloch vector and purity
are filled in for both, so plotting code never cares which propagator
produced the run.
*/
type TrajectoryPoint struct {
	Step   int
	Time   float64
	Psi    Statevector
	Rho    Matrix
	Bloch  Bloch
	Purity float64
}

// Trajectory is the ordered sequence of samples a recorder collected.
type Trajectory struct {
	Points []TrajectoryPoint
}

/*
Recorder samples snapshots while a propagation loop runs. Stride n
keeps every n-th step with step 0 always included; MaxPoints bounds the
stored history so a long run cannot grow memory without limit. Points
beyond the cap are counted as dropped but still offered to an attached
stream, keeping live views flowing after the buffer fills.

A recorder belongs to a single run; give each job its own.
*/
type Recorder struct {
	Stride    int
	MaxPoints int

	points  []TrajectoryPoint
	dropped int64
	stream  *TrajectoryStream
}

func NewRecorder(stride, maxPoints int) *Recorder {
	if stride < 1 {
		stride = 1
	}
	if maxPoints < 1 {
		maxPoints = defaultMaxPoints
	}
	return &Recorder{
		Stride:    stride,
		MaxPoints: maxPoints,
	}
}

// Attach mirrors every recorded point onto a live stream.
func (r *Recorder) Attach(stream *TrajectoryStream) {
	r.stream = stream
}

func (r *Recorder) observeState(step int, t float64, psi Statevector) {
	if step%r.stride() != 0 {
		return
	}
	point := TrajectoryPoint{Step: step, Time: t, Psi: psi.Clone()}
	if rho, err := DensityFromState(psi); err == nil {
		r.fill(&point, rho)
	}
	r.record(point)
}

func (r *Recorder) observeDensity(step int, t float64, rho Matrix) {
	if step%r.stride() != 0 {
		return
	}
	point := TrajectoryPoint{Step: step, Time: t, Rho: rho.Clone()}
	r.fill(&point, rho)
	r.record(point)
}

// fill derives the observables for one snapshot. A malformed state
// leaves them zero-valued rather than aborting the run mid-loop.
func (r *Recorder) fill(point *TrajectoryPoint, rho Matrix) {
	if b, err := BlochVector(rho); err == nil {
		point.Bloch = b
	}
	if p, err := Purity(rho); err == nil {
		point.Purity = p
	}
}

func (r *Recorder) record(point TrajectoryPoint) {
	if len(r.points) < r.maxPoints() {
		r.points = append(r.points, point)
	} else {
		r.dropped++
	}
	if r.stream != nil {
		r.stream.Publish(point)
	}
}

// Trajectory returns what has been recorded so far.
func (r *Recorder) Trajectory() Trajectory {
	return Trajectory{Points: r.points}
}

// Dropped reports how many samples the cap discarded.
func (r *Recorder) Dropped() int64 {
	return r.dropped
}

// stride and maxPoints tolerate zero-valued literals built without
// NewRecorder.
func (r *Recorder) stride() int {
	if r.Stride < 1 {
		return 1
	}
	return r.Stride
}

func (r *Recorder) maxPoints() int {
	if r.MaxPoints < 1 {
		return defaultMaxPoints
	}
	return r.MaxPoints
}
