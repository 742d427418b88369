// Package clock wraps the platform monotonic clock behind a small
// adapter so the profiler can be driven by a controllable time source
// in tests.
//
// Timestamps are microsecond ticks from an arbitrary process-local
// epoch. The zero Timestamp is reserved as a sentinel meaning "never
// set"; a real reading from any Clock is always positive.
package clock

import "time"

// TicksPerSecond is the frequency of the Timestamp unit: how many
// ticks make up one real second. Callers use it to convert a real-time
// target (e.g. a 1s reporting interval) into ticks. On platforms where
// the raw counter frequency varies this would be queried once and
// cached; for the fixed microsecond unit it is a constant.
const TicksPerSecond int64 = 1_000_000

// Timestamp is an opaque monotonic reading in microsecond ticks.
// Timestamps from the same Clock are comparable; zero is never
// returned by Now.
type Timestamp int64

// Clock is a monotonic time source.
//
// Implementations must be monotonically non-decreasing and must fail
// loudly (panic) if the underlying source cannot be read: a silently
// biased or negative measurement is worse than a crash for a
// profiling primitive. The system clock below cannot fail on any
// platform Go supports; the contract exists for alternative sources.
type Clock interface {
	// Now returns the current monotonic reading. Always positive.
	Now() Timestamp
}

// Elapsed returns the non-negative tick delta between two readings
// from the same Clock, given end >= start.
func Elapsed(start, end Timestamp) int64 {
	return int64(end - start)
}

// Ticks converts a real-time duration into Timestamp ticks.
func Ticks(d time.Duration) int64 {
	return d.Microseconds()
}

// epoch anchors the system clock. Backdated by one tick so the first
// Now() of the process can never collide with the zero sentinel.
var epoch = time.Now().Add(-time.Microsecond)

type systemClock struct{}

func (systemClock) Now() Timestamp {
	// time.Since uses the runtime monotonic reading carried inside
	// the epoch time.Time, so wall-clock adjustments cannot move
	// this backwards.
	return Timestamp(time.Since(epoch).Microseconds())
}

// System returns the platform monotonic clock.
func System() Clock {
	return systemClock{}
}
