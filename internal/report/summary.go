// Package report aggregates profiler flushes into per-region
// statistics for an end-of-run summary.
package report

import (
	"encoding/json"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/wesleyorama2/regionprof/profiler"
)

// Histogram bounds, in the units recorded below.
const (
	histMinMicros = 1
	histMaxMicros = 3_600_000_000 // 1 hour
	histSigFigs   = 3

	// Busy percentage is recorded in tenths of a percent. The upper
	// bound leaves headroom because flush percentages are unclamped
	// and can exceed 100%.
	histMaxBusyTenths = 100_000 // 10,000.0%
)

// Summary collects flush summaries from any number of records and
// goroutines. It implements profiler.FlushObserver.
//
// Flushes are rare (one per record per reporting interval), so a
// single mutex around the histograms is fine; the measurement hot
// path never reaches this type.
type Summary struct {
	mu      sync.Mutex
	regions map[string]*regionStats
	started time.Time
}

type regionStats struct {
	perHit *hdrhistogram.Histogram // mean microseconds per hit, per flush
	busy   *hdrhistogram.Histogram // busy percentage per flush, tenths

	flushes       int64
	hits          int64
	totalMeasured int64 // microseconds
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{
		regions: make(map[string]*regionStats),
		started: time.Now(),
	}
}

// ObserveFlush records one flush. Safe for concurrent use.
func (s *Summary) ObserveFlush(f profiler.FlushInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.regions[f.Region]
	if !ok {
		stats = &regionStats{
			perHit: hdrhistogram.New(histMinMicros, histMaxMicros, histSigFigs),
			busy:   hdrhistogram.New(histMinMicros, histMaxBusyTenths, histSigFigs),
		}
		s.regions[f.Region] = stats
	}

	stats.flushes++
	stats.hits += f.Hits
	stats.totalMeasured += f.Measured

	if f.Hits > 0 {
		stats.perHit.RecordValue(clampValue(f.Measured/f.Hits, histMaxMicros))
	}
	stats.busy.RecordValue(clampValue(int64(f.Percent*10), histMaxBusyTenths))
}

func clampValue(v, max int64) int64 {
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}

// RegionSummary is the aggregated view of one region.
type RegionSummary struct {
	Region        string        `json:"region"`
	Flushes       int64         `json:"flushes"`
	Hits          int64         `json:"hits"`
	TotalMeasured time.Duration `json:"totalMeasured"`

	// Per-hit time across flushes, microseconds.
	PerHitP50 int64 `json:"perHitP50"`
	PerHitP95 int64 `json:"perHitP95"`
	PerHitMax int64 `json:"perHitMax"`

	// Busy percentage across flushes.
	BusyP50 float64 `json:"busyP50"`
	BusyP95 float64 `json:"busyP95"`
	BusyMax float64 `json:"busyMax"`
}

// Snapshot returns per-region summaries sorted by total measured time
// descending, the busiest region first.
func (s *Summary) Snapshot() []RegionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RegionSummary, 0, len(s.regions))
	for name, stats := range s.regions {
		out = append(out, RegionSummary{
			Region:        name,
			Flushes:       stats.flushes,
			Hits:          stats.hits,
			TotalMeasured: time.Duration(stats.totalMeasured) * time.Microsecond,
			PerHitP50:     stats.perHit.ValueAtQuantile(50),
			PerHitP95:     stats.perHit.ValueAtQuantile(95),
			PerHitMax:     stats.perHit.Max(),
			BusyP50:       float64(stats.busy.ValueAtQuantile(50)) / 10,
			BusyP95:       float64(stats.busy.ValueAtQuantile(95)) / 10,
			BusyMax:       float64(stats.busy.Max()) / 10,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMeasured != out[j].TotalMeasured {
			return out[i].TotalMeasured > out[j].TotalMeasured
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// Report is the serializable form of a finished run.
type Report struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Elapsed     time.Duration   `json:"elapsed"`
	Regions     []RegionSummary `json:"regions"`
}

// WriteJSON writes the full report as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	r := Report{
		GeneratedAt: time.Now(),
		Elapsed:     time.Since(s.started),
		Regions:     s.Snapshot(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
