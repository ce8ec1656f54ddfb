// Package parallel runs a fixed-size pool of worker goroutines against a
// shared, mutex-protected job queue: N workers, a single synchronous
// loop per worker, no dynamic scaling. This is a deliberately narrower
// replacement for the dynamically scaling, work-stealing pool this
// package used to be — the concurrency model a simulation driver needs
// is a fixed worker count pulling short, independent jobs off one queue,
// not elastic scaling under backpressure.
package parallel

import (
	"sync"

	"go.uber.org/zap"
)

// defaultWorkers is the worker count NewPool uses when given n <= 0.
const defaultWorkers = 4

// Job is one independent unit of work a worker pulls off the shared
// queue. Run executes the job and returns its result; a Job owns all of
// its own mutable state (hypothesis, RNG, speaker) — nothing about one
// Job is shared with any other, so no locking is needed inside Run.
type Job struct {
	Label string
	Run   func() (any, error)
}

// queue is the shared, mutex-protected job vector. Only pop touches it;
// this and the final result send are the only places a worker can block.
type queue struct {
	mu   sync.Mutex
	jobs []Job
}

func (q *queue) pop() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.jobs) == 0 {
		return Job{}, false
	}
	j := q.jobs[0]
	q.jobs = q.jobs[1:]
	return j, true
}

// Result pairs a completed job's label with the value it returned.
type Result struct {
	Label string
	Value any
}

// Pool runs a fixed number of worker goroutines against a shared job
// queue until it drains. A panic inside one job is recovered and logged;
// it costs that job its result but never corrupts shared state or takes
// down the pool, since the domain and trigger tables a job reads are
// read-only and every job's mutable state is private to it.
type Pool struct {
	workers int
	log     *zap.Logger
}

// NewPool builds a pool with n fixed workers (n <= 0 defaults to
// defaultWorkers). log may be nil, in which case job failures and
// panics are silently dropped rather than logged.
func NewPool(n int, log *zap.Logger) *Pool {
	if n <= 0 {
		n = defaultWorkers
	}
	return &Pool{workers: n, log: log}
}

// Run submits jobs to a fresh shared queue and drives p.workers
// goroutines against it until every job has been popped, joining all of
// them before returning. A job that returns an error or panics produces
// no Result; every other job's Result is present, in no particular
// order since workers race to pop.
func (p *Pool) Run(jobs []Job) []Result {
	q := &queue{jobs: jobs}
	resultCh := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				job, ok := q.pop()
				if !ok {
					return
				}
				p.runJob(workerID, job, resultCh)
			}
		}(w)
	}
	wg.Wait()
	close(resultCh)

	results := make([]Result, 0, len(jobs))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}

func (p *Pool) runJob(workerID int, job Job, resultCh chan<- Result) {
	defer func() {
		if r := recover(); r != nil {
			if p.log != nil {
				p.log.Error("job panicked",
					zap.Int("worker", workerID),
					zap.String("job", job.Label),
					zap.Any("panic", r),
				)
			}
		}
	}()

	val, err := job.Run()
	if err != nil {
		if p.log != nil {
			p.log.Error("job failed", zap.String("job", job.Label), zap.Error(err))
		}
		return
	}
	resultCh <- Result{Label: job.Label, Value: val}
}
