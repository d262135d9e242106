package builder

import (
	"context"
	"sort"
	"sync"
)

// ParallelBuildConfig configures parallel document writing.
type ParallelBuildConfig struct {
	Workers int // Number of concurrent file writers
}

// DefaultParallelBuildConfig returns the writer count used by the CLI
// when none is configured.
func DefaultParallelBuildConfig() ParallelBuildConfig {
	return ParallelBuildConfig{Workers: 4}
}

type writeResult struct {
	path string
	err  error
}

// ParallelBuild writes all documents with config.Workers writers. A
// canceled context stops new writes; documents already being written are
// finished.
func (b *DocumentBuilder) ParallelBuild(ctx context.Context, config ParallelBuildConfig) *BuildStats {
	if config.Workers <= 1 {
		return b.Build()
	}
	if ctx.Err() != nil {
		return NewBuildStats()
	}

	stats := NewBuildStats()
	jobs := b.plan(stats)

	queue := make(chan writeJob)
	written := make(chan writeResult, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				written <- writeResult{job.filePath, job.document.Save(job.filePath)}
			}
		}()
	}

dispatch:
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			break dispatch
		case queue <- job:
		}
	}
	close(queue)
	wg.Wait()
	close(written)

	for r := range written {
		stats.record(r.path, r.err)
	}
	sort.Strings(stats.FilesWritten)
	return stats
}
