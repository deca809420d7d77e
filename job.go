package qsim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobKind selects which propagator a job runs.
type JobKind int

const (
	// StatevectorJob evolves a pure state under the closed-form unitary.
	StatevectorJob JobKind = iota
	// DensityJob integrates the Lindblad master equation.
	DensityJob
)

/*
SimJob describes one self-contained propagation task: an initial state,
a Hamiltonian, a step size and a step count, plus whatever collapse
channels, stepping scheme and recording the caller asked for. Jobs are
plain values; Run works the same whether a caller invokes it directly
or a Lab worker picks the job off the queue.
*/
type SimJob struct {
	ID         string
	Kind       JobKind
	Psi        Statevector
	Rho        Matrix
	H          Matrix
	Dt         float64
	Steps      int
	Channels   []Channel
	Integrator Integrator
	Recorder   *Recorder
	TTL        time.Duration
	StartTime  time.Time
}

// JobOption is a function type for configuring jobs.
type JobOption func(*SimJob)

// WithTTL bounds how long the stored result outlives the run.
func WithTTL(ttl time.Duration) JobOption {
	return func(j *SimJob) {
		j.TTL = ttl
	}
}

// WithIntegrator overrides the default Euler scheme for density jobs.
func WithIntegrator(integ Integrator) JobOption {
	return func(j *SimJob) {
		j.Integrator = integ
	}
}

// WithChannels attaches collapse channels to a density job.
func WithChannels(channels ...Channel) JobOption {
	return func(j *SimJob) {
		j.Channels = append(j.Channels, channels...)
	}
}

// WithRecording samples the evolution every stride steps, keeping at
// most maxPoints snapshots.
func WithRecording(stride, maxPoints int) JobOption {
	return func(j *SimJob) {
		j.Recorder = NewRecorder(stride, maxPoints)
	}
}

// WithStream mirrors recorded samples onto a live stream. Recording is
// switched on with a stride of 1 if the job has none yet.
func WithStream(stream *TrajectoryStream) JobOption {
	return func(j *SimJob) {
		if j.Recorder == nil {
			j.Recorder = NewRecorder(1, defaultMaxPoints)
		}
		j.Recorder.Attach(stream)
	}
}

// NewStateJob builds a statevector job. An empty id gets a fresh UUID.
func NewStateJob(id string, psi Statevector, h Matrix, dt float64, steps int, opts ...JobOption) SimJob {
	if id == "" {
		id = uuid.NewString()
	}
	job := SimJob{
		ID:    id,
		Kind:  StatevectorJob,
		Psi:   psi,
		H:     h,
		Dt:    dt,
		Steps: steps,
	}
	for _, opt := range opts {
		opt(&job)
	}
	return job
}

// NewDensityJob builds a density-matrix job. An empty id gets a fresh UUID.
func NewDensityJob(id string, rho, h Matrix, dt float64, steps int, opts ...JobOption) SimJob {
	if id == "" {
		id = uuid.NewString()
	}
	job := SimJob{
		ID:    id,
		Kind:  DensityJob,
		Rho:   rho,
		H:     h,
		Dt:    dt,
		Steps: steps,
	}
	for _, opt := range opts {
		opt(&job)
	}
	return job
}

/*
Run executes the job synchronously and packages the outcome. Validation
errors from the propagators land in the result's Error field rather
than being returned separately, so queue workers and direct callers
handle failures the same way. For a statevector job the result also
carries the projector of the final state as Rho, which is what the
Bloch vector and purity are derived from.
*/
func (j SimJob) Run() RunResult {
	start := time.Now()
	res := RunResult{
		ID:   j.ID,
		Kind: j.Kind,
		TTL:  j.TTL,
	}

	switch j.Kind {
	case StatevectorJob:
		j.runState(&res)
	case DensityJob:
		j.runDensity(&res)
	default:
		res.Error = fmt.Errorf("%w: unknown kind %d", ErrInvalidJob, j.Kind)
	}

	if j.Recorder != nil {
		traj := j.Recorder.Trajectory()
		res.Trajectory = &traj
	}
	res.CreatedAt = time.Now()
	res.Duration = time.Since(start)
	return res
}

func (j SimJob) runState(res *RunResult) {
	if len(j.Channels) > 0 {
		res.Error = fmt.Errorf("%w: collapse channels require a density-matrix job", ErrInvalidJob)
		return
	}

	var observe func(step int, psi Statevector)
	if j.Recorder != nil {
		observe = func(step int, psi Statevector) {
			j.Recorder.observeState(step, float64(step)*j.Dt, psi)
		}
	}

	psi, err := evolveState(j.Psi, j.H, j.Dt, j.Steps, observe)
	if err != nil {
		res.Error = err
		return
	}
	res.Psi = psi

	rho, err := DensityFromState(psi)
	if err != nil {
		res.Error = err
		return
	}
	j.finishDensity(res, rho)
}

func (j SimJob) runDensity(res *RunResult) {
	gen, err := NewLindbladGenerator(j.H, j.Channels)
	if err != nil {
		res.Error = err
		return
	}

	var observe func(step int, rho Matrix)
	if j.Recorder != nil {
		observe = func(step int, rho Matrix) {
			j.Recorder.observeDensity(step, float64(step)*j.Dt, rho)
		}
	}

	rho, err := evolveDensity(j.Rho, gen, j.Dt, j.Steps, j.Integrator, observe)
	if err != nil {
		res.Error = err
		return
	}
	j.finishDensity(res, rho)
}

// finishDensity derives the summary observables from the final density
// matrix. A malformed matrix surfaces as the job error; NaN states
// flow into the Bloch components untouched.
func (j SimJob) finishDensity(res *RunResult, rho Matrix) {
	res.Rho = rho

	b, err := BlochVector(rho)
	if err != nil {
		res.Error = err
		return
	}
	p, err := Purity(rho)
	if err != nil {
		res.Error = err
		return
	}
	res.Bloch = b
	res.Purity = p
}
