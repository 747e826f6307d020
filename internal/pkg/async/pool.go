// internal/pkg/async/pool.go
package async

import (
	"context"
	"sync"

	"refsource/pkg/referrer"
)

// ClassifyFunc classifies one referrer URL.
type ClassifyFunc func(rawURL string) referrer.ReferrerInfo

type task struct {
	index int
	url   string
}

type result struct {
	index int
	info  referrer.ReferrerInfo
}

// Pool classifies batches of referrer URLs on a fixed number of workers.
type Pool struct {
	workerCount int
	classify    ClassifyFunc
}

// NewPool returns a pool running workerCount workers. Counts below one are
// raised to one.
func NewPool(workerCount int, classify ClassifyFunc) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Pool{
		workerCount: workerCount,
		classify:    classify,
	}
}

func (p *Pool) worker(ctx context.Context, tasks <-chan task, results chan<- result, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case t, ok := <-tasks:
			if !ok {
				return
			}
			r := result{index: t.index, info: p.classify(t.url)}
			select {
			case results <- r:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Classify returns one ReferrerInfo per URL in input order. When ctx is
// cancelled early it returns the results gathered so far and ctx.Err().
func (p *Pool) Classify(ctx context.Context, urls []string) ([]referrer.ReferrerInfo, error) {
	infos := make([]referrer.ReferrerInfo, len(urls))
	if len(urls) == 0 {
		return infos, nil
	}

	tasks := make(chan task)
	results := make(chan result)
	var wg sync.WaitGroup

	// Start workers
	workers := min(p.workerCount, len(urls))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.worker(ctx, tasks, results, &wg)
	}

	// Send tasks
	go func() {
		defer close(tasks)
		for i, u := range urls {
			select {
			case tasks <- task{index: i, url: u}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results once every worker is done so the collector never blocks
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results
	received := 0
	for r := range results {
		infos[r.index] = r.info
		received++
	}

	if received < len(urls) {
		return infos, ctx.Err()
	}
	return infos, nil
}
