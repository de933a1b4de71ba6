package execution

import (
	"sync"
)

// Progress receives completion counts as pool jobs finish.
type Progress interface {
	Update(successCount, failCount int)
	Finish()
}

// Outcome is the result of one pool job.
type Outcome struct {
	Value any
	Err   error
}

// Pool runs indexed jobs on a fixed number of workers
type Pool struct {
	workers  int
	progress Progress
}

// NewPool creates a Pool with the given worker count
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// SetProgress sets the progress reporter for the pool
func (p *Pool) SetProgress(progress Progress) {
	p.progress = progress
}

// Execute runs job for every index in [0, n) and returns the outcomes
// indexed by submission order, whatever order the workers finish in.
// Every job runs to completion.
func (p *Pool) Execute(n int, job func(i int) (any, error)) []Outcome {
	if n <= 0 {
		return nil
	}

	queue := make(chan int, n)
	for i := 0; i < n; i++ {
		queue <- i
	}
	close(queue)

	outcomes := make([]Outcome, n)
	var mu sync.Mutex
	var successCount, failCount int

	var wg sync.WaitGroup
	for w := 0; w < min(p.workers, n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				value, err := job(i)
				outcomes[i] = Outcome{Value: value, Err: err}

				mu.Lock()
				if err == nil {
					successCount++
				} else {
					failCount++
				}
				if p.progress != nil {
					p.progress.Update(successCount, failCount)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if p.progress != nil {
		p.progress.Finish()
	}
	return outcomes
}
