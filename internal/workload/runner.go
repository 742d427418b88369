// Package workload drives synthetic load through profiled regions for
// the demo binary: a fixed set of worker goroutines, each owning its
// record, entering its region on a busy/idle cycle.
package workload

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/wesleyorama2/regionprof/internal/config"
	"github.com/wesleyorama2/regionprof/internal/report"
	"github.com/wesleyorama2/regionprof/profiler"
)

// Runner executes one workload against a dedicated profiler instance.
type Runner struct {
	workload *config.Workload
	prof     *profiler.Profiler
	summary  *report.Summary
}

// NewRunner builds a runner whose profiler flushes to out.
func NewRunner(w *config.Workload, out io.Writer) *Runner {
	summary := report.NewSummary()
	prof := profiler.New(profiler.Config{
		ReportTarget: w.ReportTarget.Value(),
		Output:       out,
		Observer:     summary,
	})

	return &Runner{
		workload: w,
		prof:     prof,
		summary:  summary,
	}
}

// Summary returns the flush aggregation, valid after Run returns.
func (r *Runner) Summary() *report.Summary { return r.summary }

// Run spawns the configured workers and blocks until the workload
// duration has elapsed or ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.workload.Duration.Value())
	defer cancel()

	var wg sync.WaitGroup
	for _, spec := range r.workload.Regions {
		region := r.prof.NewRegion(spec.Name)
		for i := 0; i < spec.Workers; i++ {
			wg.Add(1)
			go func(spec config.RegionSpec) {
				defer wg.Done()
				work(ctx, region, spec)
			}(spec)
		}
	}
	wg.Wait()

	// Running out the clock is the normal exit; only a canceled
	// parent context is worth reporting.
	if err := context.Cause(ctx); err != nil && err != context.DeadlineExceeded {
		return err
	}
	return nil
}

// work is one worker goroutine: it owns its record for the region and
// cycles busy/idle until the context ends.
func work(ctx context.Context, region *profiler.Region, spec config.RegionSpec) {
	rec := region.NewRecord()

	busy := spec.Busy.Value()
	idle := spec.Idle.Value()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			defer rec.Start().Stop()
			sleep(ctx, busy)
		}()

		if idle > 0 {
			sleep(ctx, idle)
		}
	}
}

// sleep waits for d or until ctx is canceled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
