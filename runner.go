package qsim

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
Lab is the batch simulation runner: a fixed pool of workers pulling
jobs off a bounded queue, with finished runs parked in a ResultSpace
until their callers collect them. Each job runs on exactly one worker
and each worker owns its job completely, so the physics code stays
free of synchronization.
*/
type Lab struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	jobs    chan SimJob
	space   *ResultSpace
	metrics *Metrics
	config  *Config
}

// NewLab spins up the worker pool. A nil config gets the defaults;
// zero-valued fields in a caller-built config are filled in the same way.
func NewLab(ctx context.Context, config *Config) *Lab {
	if config == nil {
		config = NewConfig()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 64
	}

	ctx, cancel := context.WithCancel(ctx)
	lab := &Lab{
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(chan SimJob, config.QueueSize),
		space:   newResultSpace(),
		metrics: NewMetrics(),
		config:  config,
	}

	errnie.Info(
		"NewLab - workers %d, queue %d",
		config.Workers,
		config.QueueSize,
	)

	for i := 0; i < config.Workers; i++ {
		lab.startWorker(i)
	}

	// Start metrics collection
	lab.wg.Add(1)
	go func() {
		defer lab.wg.Done()
		lab.collectMetrics()
	}()

	return lab
}

func (l *Lab) startWorker(id int) {
	w := &Worker{lab: l, id: id}

	l.metrics.mu.Lock()
	l.metrics.WorkerCount++
	l.metrics.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		w.run()
	}()
}

func (l *Lab) collectMetrics() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-l.ctx.Done():
			return
		case <-ticker.C:
			l.metrics.mu.Lock()
			l.metrics.JobQueueSize = len(l.jobs)
			l.metrics.mu.Unlock()
		}
	}
}

/*
Schedule enqueues a job and returns the channel its result will arrive
on. Options are applied before enqueueing, an empty job ID gets a
UUID, and a job without a TTL inherits the configured result TTL.

The enqueue is bounded by the scheduling timeout: when the queue stays
full past it, the returned channel carries a timeout error instead of
blocking the caller indefinitely.
*/
func (l *Lab) Schedule(job SimJob, opts ...JobOption) chan RunResult {
	for _, opt := range opts {
		opt(&job)
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.TTL == 0 {
		job.TTL = l.config.ResultTTL
	}
	job.StartTime = time.Now()

	ctx, cancel := context.WithTimeout(l.ctx, l.schedulingTimeout())
	defer cancel()

	select {
	case l.jobs <- job:
		return l.space.Await(job.ID)
	case <-ctx.Done():
		ch := make(chan RunResult, 1)
		ch <- RunResult{
			ID:        job.ID,
			Error:     fmt.Errorf("job scheduling timeout: %w", ctx.Err()),
			CreatedAt: time.Now(),
		}
		close(ch)
		return ch
	}
}

// Await retrieves the result channel for a previously scheduled job.
func (l *Lab) Await(id string) chan RunResult {
	return l.space.Await(id)
}

// Metrics returns a point-in-time export of the runner's counters.
func (l *Lab) Metrics() map[string]interface{} {
	return l.metrics.ExportMetrics()
}

func (l *Lab) schedulingTimeout() time.Duration {
	if l.config != nil && l.config.SchedulingTimeout > 0 {
		return l.config.SchedulingTimeout
	}
	return 5 * time.Second // Default timeout
}

// Close stops the workers and the result space. Safe on a nil lab.
func (l *Lab) Close() {
	if l == nil {
		return
	}

	log.Println("Closing lab")

	if l.cancel != nil {
		l.cancel()
	}

	// Wait for all goroutines to finish before closing channels
	l.wg.Wait()

	close(l.jobs)
	l.space.Close()
}

// Example demonstrates driving the lab with both propagators.
func Example() {
	ctx := context.Background()
	lab := NewLab(ctx, NewConfig())
	defer lab.Close()

	// A resonant Rabi drive on a pure state
	rabi := NewStateJob("rabi-demo", Zero(), RabiHamiltonian(2*math.Pi*1e6), 1e-9, 500)
	result := <-lab.Schedule(rabi)
	if result.Error != nil {
		fmt.Printf("rabi job failed: %v\n", result.Error)
		return
	}
	fmt.Printf("excited-state population: %.4f\n", Probabilities(result.Psi)[1])

	// The same machinery with dephasing noise on a superposition
	rho, _ := DensityFromState(Plus())
	open := NewDensityJob("dephasing-demo", rho, NewMatrix(2), 1e-9, 200,
		WithChannels(Channel{Op: Dephasing(), Rate: 2e7}),
		WithTTL(time.Minute),
	)
	decayed := <-lab.Schedule(open)
	fmt.Printf("residual coherence: %.4f, purity: %.4f\n", decayed.Bloch.X, decayed.Purity)
}
