// experiment.go
package qsim

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theapemachine/errnie"
	"gopkg.in/yaml.v3"
)

/*
Experiment is a declarative simulation preset. The YAML form names the
physics instead of wiring it up in code:

	name: rabi-flop
	mode: unitary
	omega: 6.2832e6
	dt: 1e-9
	steps: 500
	initial: zero
	record:
	  stride: 10
	  max_points: 100

Density-matrix presets use mode lindblad, name their channels and may
override the stepping scheme:

	name: pure-dephasing
	mode: lindblad
	gamma: 2e7
	channels: [dephasing]
	initial: plus
	integrator: rk4

All channels in a preset share the single gamma rate; presets that need
per-channel rates build their jobs in code instead.
*/
type Experiment struct {
	Name       string      `yaml:"name"`
	Mode       string      `yaml:"mode"`
	Omega      float64     `yaml:"omega"`
	Dt         float64     `yaml:"dt"`
	Steps      int         `yaml:"steps"`
	Gamma      float64     `yaml:"gamma"`
	Channels   []string    `yaml:"channels"`
	Initial    string      `yaml:"initial"`
	Integrator string      `yaml:"integrator"`
	Record     *RecordSpec `yaml:"record"`
}

// RecordSpec switches on trajectory sampling for a preset.
type RecordSpec struct {
	Stride    int `yaml:"stride"`
	MaxPoints int `yaml:"max_points"`
}

// ParseExperiment decodes a YAML preset.
func ParseExperiment(data []byte) (*Experiment, error) {
	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parsing experiment: %w", err)
	}
	return &exp, nil
}

// LoadExperiment reads a preset from disk.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment %s: %w", path, err)
	}
	exp, err := ParseExperiment(data)
	if err != nil {
		return nil, err
	}
	errnie.Info("LoadExperiment - %s from %s", exp.Name, path)
	return exp, nil
}

/*
Job materializes the preset into a runnable SimJob. Name resolution is
eager: unknown modes, states, channels or integrators come back as
ErrUnknownName before anything runs. Numeric parameters are left to
the propagators, which own that validation.
*/
func (e *Experiment) Job() (SimJob, error) {
	h := RabiHamiltonian(e.Omega)

	var opts []JobOption
	if e.Record != nil {
		opts = append(opts, WithRecording(e.Record.Stride, e.Record.MaxPoints))
	}

	switch strings.ToLower(e.Mode) {
	case "unitary":
		if len(e.Channels) > 0 {
			return SimJob{}, fmt.Errorf("%w: channels in a unitary experiment", ErrInvalidJob)
		}
		psi, err := e.initialState()
		if err != nil {
			return SimJob{}, err
		}
		return NewStateJob(e.Name, psi, h, e.Dt, e.Steps, opts...), nil

	case "lindblad":
		rho, err := e.initialDensity()
		if err != nil {
			return SimJob{}, err
		}
		channels, err := e.collapseChannels()
		if err != nil {
			return SimJob{}, err
		}
		integ, err := e.integrator()
		if err != nil {
			return SimJob{}, err
		}
		opts = append(opts, WithChannels(channels...), WithIntegrator(integ))
		return NewDensityJob(e.Name, rho, h, e.Dt, e.Steps, opts...), nil

	default:
		return SimJob{}, fmt.Errorf("%w: mode %q", ErrUnknownName, e.Mode)
	}
}

// Run materializes and executes the preset in the calling goroutine.
func (e *Experiment) Run() RunResult {
	job, err := e.Job()
	if err != nil {
		return RunResult{ID: e.Name, Error: err, CreatedAt: time.Now()}
	}
	errnie.Info(
		"Run - experiment %s, %d steps of %v s",
		e.Name,
		e.Steps,
		e.Dt,
	)
	return job.Run()
}

func (e *Experiment) initialState() (Statevector, error) {
	switch strings.ToLower(e.Initial) {
	case "", "zero":
		return Zero(), nil
	case "one":
		return One(), nil
	case "plus":
		return Plus(), nil
	case "minus":
		return Minus(), nil
	default:
		return nil, fmt.Errorf("%w: initial state %q", ErrUnknownName, e.Initial)
	}
}

func (e *Experiment) initialDensity() (Matrix, error) {
	if strings.ToLower(e.Initial) == "mixed" {
		return MaximallyMixed(), nil
	}
	psi, err := e.initialState()
	if err != nil {
		return nil, err
	}
	return DensityFromState(psi)
}

func (e *Experiment) collapseChannels() ([]Channel, error) {
	channels := make([]Channel, 0, len(e.Channels))
	for _, name := range e.Channels {
		var op Matrix
		switch strings.ToLower(name) {
		case "dephasing":
			op = Dephasing()
		case "amplitude-damping", "damping":
			op = AmplitudeDamping()
		default:
			return nil, fmt.Errorf("%w: channel %q", ErrUnknownName, name)
		}
		channels = append(channels, Channel{Op: op, Rate: e.Gamma})
	}
	return channels, nil
}

func (e *Experiment) integrator() (Integrator, error) {
	switch strings.ToLower(e.Integrator) {
	case "", "euler":
		return Euler{}, nil
	case "midpoint":
		return Midpoint{}, nil
	case "rk4":
		return RK4{}, nil
	default:
		return nil, fmt.Errorf("%w: integrator %q", ErrUnknownName, e.Integrator)
	}
}
