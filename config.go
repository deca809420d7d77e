package qsim

import (
	"runtime"
	"time"
)

// Config carries the runner's operational knobs. Zero-valued fields
// fall back to the NewConfig defaults when a Lab starts up.
type Config struct {
	Workers           int
	QueueSize         int
	SchedulingTimeout time.Duration
	ResultTTL         time.Duration
}

func NewConfig() *Config {
	return &Config{
		Workers:           runtime.NumCPU(),
		QueueSize:         64,
		SchedulingTimeout: 10 * time.Second,
		ResultTTL:         time.Minute,
	}
}
