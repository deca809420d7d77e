package qsim

import (
	"log"
	"sync"
	"time"
)

/*
RunResult packages the outcome of one simulation job: the final state,
the derived observables, the recorded trajectory when sampling was on,
and either a nil Error or the validation failure that stopped the run.
Rho is always the final density matrix; for statevector jobs it is the
projector of the final pure state.
*/
type RunResult struct {
	ID         string
	Kind       JobKind
	Psi        Statevector
	Rho        Matrix
	Bloch      Bloch
	Purity     float64
	Trajectory *Trajectory
	Error      error
	CreatedAt  time.Time
	Duration   time.Duration
	TTL        time.Duration
}

/*
ResultSpace stores finished runs and hands them to awaiting callers.
Await works in either order: a result stored before anyone asked is
delivered immediately, and a caller awaiting a result that has not
arrived yet gets woken by Store. Results with a TTL are evicted by a
background sweep once they expire.
*/
type ResultSpace struct {
	mu      sync.RWMutex
	results map[string]RunResult
	waiting map[string][]chan RunResult
	done    chan struct{}
	wg      sync.WaitGroup
}

func newResultSpace() *ResultSpace {
	rs := &ResultSpace{
		results: make(map[string]RunResult),
		waiting: make(map[string][]chan RunResult),
		done:    make(chan struct{}),
	}

	// Start cleanup goroutine
	rs.wg.Add(1)
	go func() {
		defer rs.wg.Done()
		rs.runCleanup()
	}()

	return rs
}

// Store saves a result and wakes everyone awaiting it.
func (rs *ResultSpace) Store(res RunResult) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	rs.results[res.ID] = res

	if channels, ok := rs.waiting[res.ID]; ok {
		for _, ch := range channels {
			select {
			case ch <- res:
				close(ch)
			default:
				log.Printf("result channel for job %s full, dropping notify", res.ID)
			}
		}
		delete(rs.waiting, res.ID)
	}
}

// Await returns a buffered channel that will receive the result once
// it is available, then close.
func (rs *ResultSpace) Await(id string) chan RunResult {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	ch := make(chan RunResult, 1)

	// Check if the result already exists
	if res, ok := rs.results[id]; ok {
		ch <- res
		close(ch)
		return ch
	}

	rs.waiting[id] = append(rs.waiting[id], ch)
	return ch
}

func (rs *ResultSpace) Exists(id string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	_, ok := rs.results[id]
	return ok
}

func (rs *ResultSpace) runCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rs.done:
			return
		case <-ticker.C:
			rs.mu.Lock()
			rs.cleanupExpired()
			rs.mu.Unlock()
		}
	}
}

func (rs *ResultSpace) cleanupExpired() {
	now := time.Now()
	for id, res := range rs.results {
		if res.TTL > 0 && now.Sub(res.CreatedAt) > res.TTL {
			delete(rs.results, id)
		}
	}
}

// Close stops the cleanup sweep and closes any channels still waiting.
func (rs *ResultSpace) Close() {
	close(rs.done)
	rs.wg.Wait()

	rs.mu.Lock()
	defer rs.mu.Unlock()
	for id, channels := range rs.waiting {
		for _, ch := range channels {
			close(ch)
		}
		delete(rs.waiting, id)
	}
	rs.results = nil
}
