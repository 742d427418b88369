package clock

import "sync/atomic"

// Manual is a Clock whose readings are advanced explicitly. It exists
// for tests that need deterministic elapsed times; it satisfies the
// same contract as the system clock (monotonic, never zero).
type Manual struct {
	now atomic.Int64
}

// NewManual returns a Manual clock positioned at start ticks.
// start must be positive; zero is the unset sentinel.
func NewManual(start Timestamp) *Manual {
	if start <= 0 {
		panic("clock: manual clock must start at a positive timestamp")
	}
	m := &Manual{}
	m.now.Store(int64(start))
	return m
}

// Now returns the current manual reading.
func (m *Manual) Now() Timestamp {
	return Timestamp(m.now.Load())
}

// Advance moves the clock forward by ticks. Negative advances panic:
// the source must stay monotonic.
func (m *Manual) Advance(ticks int64) {
	if ticks < 0 {
		panic("clock: manual clock cannot move backwards")
	}
	m.now.Add(ticks)
}
