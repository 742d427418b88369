package report

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/wesleyorama2/regionprof/profiler"
)

func flush(region string, measured, interval, hits int64) profiler.FlushInfo {
	return profiler.FlushInfo{
		Region:   region,
		Measured: measured,
		Interval: interval,
		Percent:  100 * float64(measured) / float64(interval),
		Hits:     hits,
	}
}

func TestSummarySnapshot(t *testing.T) {
	s := NewSummary()

	s.ObserveFlush(flush("db", 4000, 10000, 4))     // 1000us/hit, 40%
	s.ObserveFlush(flush("db", 6000, 10000, 3))     // 2000us/hit, 60%
	s.ObserveFlush(flush("render", 9000, 10000, 1)) // 9000us/hit, 90%

	snap := s.Snapshot()
	require.Len(t, snap, 2)

	// Sorted by total measured time descending.
	assert.Equal(t, "db", snap[0].Region)
	assert.Equal(t, "render", snap[1].Region)

	db := snap[0]
	assert.EqualValues(t, 2, db.Flushes)
	assert.EqualValues(t, 7, db.Hits)
	assert.EqualValues(t, 10000, db.TotalMeasured.Microseconds())
	// HDR histograms bin to 3 significant figures.
	assert.InDelta(t, 2000, db.PerHitMax, 5)
	assert.InDelta(t, 60.0, db.BusyMax, 0.5)
}

func TestSummaryUnclampedPercent(t *testing.T) {
	s := NewSummary()

	// Overlapping guards can push a flush above 100%; the summary
	// must keep it, not saturate at 100.
	s.ObserveFlush(flush("overlap", 20410, 11100, 2)) // ~183.9%

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Greater(t, snap[0].BusyMax, 100.0)
}

func TestSummaryConcurrentObservers(t *testing.T) {
	s := NewSummary()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.ObserveFlush(flush("shared", 500, 10000, 5))
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.EqualValues(t, 800, snap[0].Flushes)
	assert.EqualValues(t, 4000, snap[0].Hits)
}

func TestWriteJSON(t *testing.T) {
	s := NewSummary()
	s.ObserveFlush(flush("db", 4000, 10000, 4))
	s.ObserveFlush(flush("render", 100, 10000, 1))

	var buf bytes.Buffer
	require.NoError(t, s.WriteJSON(&buf))

	body := buf.String()
	require.True(t, gjson.Valid(body), "report is not valid JSON: %s", body)

	assert.EqualValues(t, 2, gjson.Get(body, "regions.#").Int())
	assert.Equal(t, "db", gjson.Get(body, "regions.0.region").String())
	assert.EqualValues(t, 4, gjson.Get(body, "regions.0.hits").Int())
	assert.Equal(t, "render", gjson.Get(body, "regions.1.region").String())
	assert.True(t, gjson.Get(body, "generatedAt").Exists())
}
