package qsim

import (
	"log"
	"time"
)

// Worker executes simulation jobs pulled off the lab queue.
type Worker struct {
	lab *Lab
	id  int
}

func (w *Worker) run() {
	for {
		select {
		case <-w.lab.ctx.Done():
			return
		case job, ok := <-w.lab.jobs:
			if !ok {
				return
			}
			w.process(job)
		}
	}
}

func (w *Worker) process(job SimJob) {
	start := job.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	res := job.Run()

	w.lab.metrics.recordRun(start, job.Steps, res.Error != nil)
	if res.Error != nil {
		log.Printf("worker %d: job %s failed: %v", w.id, job.ID, res.Error)
	}
	w.lab.space.Store(res)
}
