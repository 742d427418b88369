// Package profiler measures and periodically reports the cumulative
// time a goroutine spends inside a named code region.
//
// It is built for hot paths: a measurement is two monotonic clock
// reads and a handful of integer additions on a record the measuring
// goroutine owns exclusively, so there is no locking anywhere on the
// measurement path. Results are emitted live as one text line per
// record roughly once per reporting interval (default 1s), with no
// separate collection pipeline.
//
// Usage mirrors declare / define / measure:
//
//	var dbRegion = profiler.NewRegion("db")
//
//	func worker() {
//		rec := dbRegion.NewRecord() // one per goroutine, owned by it
//		for job := range jobs {
//			func() {
//				defer rec.Start().Stop()
//				handle(job)
//			}()
//		}
//	}
//
// Each flushed line has the form
//
//	TID 7 time spent in "db": 912/10431 microsec 8.7% 3x
//
// meaning record 7 spent 912 of the last 10431 microseconds (8.7%)
// inside "db", across 3 entries. The percentage is deliberately not
// clamped and can exceed 100% when a single entry spans more than one
// reporting interval.
//
// Building with -tags noprofiler replaces the entire package surface
// with no-ops: same API, zero state, zero output.
package profiler
