//go:build !noprofiler

package profiler

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wesleyorama2/regionprof/clock"
)

// DefaultReportTarget is the reporting interval used when Config
// leaves ReportTarget zero: the minimum real-time gap between two
// flushes of the same record.
const DefaultReportTarget = time.Second

// Config contains configuration for a Profiler. The zero value is
// usable: system clock, stdout, 1s reporting target, no observer.
type Config struct {
	// ReportTarget is the minimum real-time gap between two flushes
	// of any single record. Process-wide, not per-region. It is read
	// once, at the first flush anywhere in the profiler; changes
	// after that have no effect.
	ReportTarget time.Duration

	// Output receives one formatted line per flush (default: stdout).
	Output io.Writer

	// Clock is the monotonic time source (default: clock.System()).
	Clock clock.Clock

	// Observer, if set, additionally receives each flush summary.
	Observer FlushObserver
}

// Profiler holds the state shared by every region and record: the
// clock, the lazily computed report interval, and the output sink.
//
// Records themselves are exclusively owned by the goroutine that
// created them and are never synchronized; the report interval is the
// only shared mutable word, and it is published with an atomic store
// so a racy first flush among goroutines is benign (every writer
// computes the identical value).
type Profiler struct {
	clk      clock.Clock
	target   time.Duration
	observer FlushObserver

	// reportInterval is in clock ticks; zero means not yet computed.
	reportInterval atomic.Int64

	out   io.Writer
	outMu sync.Mutex

	nextRecordID atomic.Int64
}

// New creates a Profiler with the given configuration.
func New(config Config) *Profiler {
	if config.ReportTarget <= 0 {
		config.ReportTarget = DefaultReportTarget
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Clock == nil {
		config.Clock = clock.System()
	}

	return &Profiler{
		clk:      config.Clock,
		target:   config.ReportTarget,
		observer: config.Observer,
		out:      config.Output,
	}
}

var defaultProfiler = New(Config{})

// NewRegion declares a named region on the default profiler (system
// clock, stdout, 1s reporting target). Typically assigned to a
// package-level variable, once per process per name.
func NewRegion(name string) *Region {
	return defaultProfiler.NewRegion(name)
}

// NewRegion declares a named region on this profiler. The name is the
// output label and is immutable.
func (p *Profiler) NewRegion(name string) *Region {
	return &Region{name: name, p: p}
}

// Region is a named segment of code whose cumulative execution time
// is tracked. A Region is immutable and safe to share; the mutable
// accumulation state lives in per-goroutine Records.
type Region struct {
	name string
	p    *Profiler
}

// Name returns the region's label.
func (r *Region) Name() string { return r.name }

// NewRecord creates the per-goroutine accumulator for this region.
// The returned Record is exclusively owned by the calling goroutine:
// it must not be shared, and because of that it needs no locking.
// Call once per goroutine and keep it for the goroutine's lifetime.
func (r *Region) NewRecord() *Record {
	return &Record{
		region: r,
		id:     r.p.nextRecordID.Add(1),
	}
}

// Record accumulates elapsed time and entry count for one (goroutine,
// region) pair between flushes.
type Record struct {
	// lastReport is the timestamp of the last flush, or of the first
	// measurement before any output has been produced. Zero means the
	// record has never flushed (Unset state).
	lastReport  clock.Timestamp
	accumulated int64 // microseconds since last flush
	hits        int64 // region exits since last flush

	id     int64 // stands in for the thread id in output
	region *Region
}

// ID returns the record's identifier, the "TID" field of its output.
func (rec *Record) ID() int64 { return rec.id }

// Start begins one measurement and returns the guard that ends it.
// The guard must be stopped on every exit path of the measured scope;
// defer is the natural way:
//
//	defer rec.Start().Stop()
func (rec *Record) Start() Guard {
	return Guard{rec: rec, start: rec.region.p.clk.Now()}
}

// Guard brackets one active measurement. Short-lived, never shared,
// never stored beyond the measured scope.
type Guard struct {
	rec   *Record
	start clock.Timestamp
}

// Stop ends the measurement: it adds the elapsed time to the record,
// bumps the hit count, and flushes the record once the reporting
// interval has passed since its last flush. The first Stop of a fresh
// record always reaches the flush path (the interval is still zero)
// and primes the record without producing output.
func (g Guard) Stop() {
	rec := g.rec
	p := rec.region.p

	end := p.clk.Now()
	rec.accumulated += clock.Elapsed(g.start, end)
	rec.hits++

	if clock.Elapsed(rec.lastReport, end) > p.reportInterval.Load() {
		p.flush(rec, g.start, end)
	}
}

// flush emits the record's summary line and resets its accumulators.
func (p *Profiler) flush(rec *Record, start, end clock.Timestamp) {
	// First flush anywhere: derive the interval from the clock
	// frequency and the real-time target, then publish it. The store
	// is atomic, the computation deterministic, so concurrent first
	// flushes all publish the same value and readers never observe a
	// torn one.
	if p.reportInterval.Load() == 0 {
		p.reportInterval.Store(clock.Ticks(p.target))
	}

	// First flush of this record: start a fresh interval instead of
	// reporting a meaningless ratio.
	if rec.lastReport == 0 {
		rec.lastReport = start
		return
	}

	interval := clock.Elapsed(rec.lastReport, end)
	measured := rec.accumulated

	// Not clamped: a measurement spanning more than one reporting
	// interval legitimately reports above 100%.
	percent := 100 * float64(measured) / float64(interval)

	p.outMu.Lock()
	fmt.Fprintf(p.out, "TID %d time spent in \"%s\": %d/%d microsec %.1f%% %dx\n",
		rec.id, rec.region.name, measured, interval, percent, rec.hits)
	p.outMu.Unlock()

	if p.observer != nil {
		p.observer.ObserveFlush(FlushInfo{
			RecordID: rec.id,
			Region:   rec.region.name,
			Measured: measured,
			Interval: interval,
			Percent:  percent,
			Hits:     rec.hits,
		})
	}

	rec.lastReport = end
	rec.accumulated = 0
	rec.hits = 0
}
