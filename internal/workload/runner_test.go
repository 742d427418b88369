//go:build !noprofiler

package workload

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/regionprof/internal/config"
)

func smallWorkload() *config.Workload {
	return &config.Workload{
		SchemaVersion: config.SchemaVersion,
		Duration:      config.Duration(150 * time.Millisecond),
		ReportTarget:  config.Duration(10 * time.Millisecond),
		Regions: []config.RegionSpec{
			{Name: "db", Workers: 2, Busy: config.Duration(time.Millisecond)},
			{Name: "render", Workers: 1, Busy: config.Duration(2 * time.Millisecond), Idle: config.Duration(time.Millisecond)},
		},
	}
}

func TestRunnerProducesFlushes(t *testing.T) {
	// The profiler serializes writes to its sink, and the runner has
	// finished all workers before the buffer is read.
	var buf bytes.Buffer
	r := NewRunner(smallWorkload(), &buf)

	require.NoError(t, r.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `time spent in "db"`)
	assert.Contains(t, out, `time spent in "render"`)

	// Every line has the fixed flush format.
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Regexp(t, `^TID \d+ time spent in "[a-z]+": \d+/\d+ microsec \d+\.\d% \d+x$`, line)
	}

	snap := r.Summary().Snapshot()
	require.Len(t, snap, 2)
	for _, region := range snap {
		assert.Greater(t, region.Flushes, int64(0), "region %s never flushed", region.Region)
		assert.Greater(t, region.Hits, int64(0))
	}
}

func TestRunnerHonorsCancel(t *testing.T) {
	w := smallWorkload()
	w.Duration = config.Duration(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	var buf bytes.Buffer
	start := time.Now()
	err := NewRunner(w, &buf).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 10*time.Second, "cancel did not stop the run")
}
