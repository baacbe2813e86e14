package storage

import (
	"context"
	"runtime"
	"sync"
)

// Export batches are independent of each other, so chunk writes fan
// out across a small worker pool instead of going one request at a
// time.
const maxWriters = 4

// writeJob is one batch-write request bound for a single table.
type writeJob func(ctx context.Context) error

// runJobs executes jobs with bounded concurrency and returns the first
// error. Remaining jobs are drained so workers always exit.
func runJobs(ctx context.Context, jobs []writeJob) error {
	if len(jobs) == 0 {
		return nil
	}

	workers := runtime.NumCPU()
	if workers > maxWriters {
		workers = maxWriters
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan writeJob)
	errCh := make(chan error, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if ctx.Err() != nil {
					errCh <- ctx.Err()
					continue
				}
				if err := job(ctx); err != nil {
					errCh <- err
				}
			}
		}()
	}

	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()
	close(errCh)

	return <-errCh
}
