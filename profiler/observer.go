package profiler

// FlushInfo is the summary handed to an Observer every time a record
// flushes. Durations are in microseconds, matching the emitted line.
type FlushInfo struct {
	RecordID int64   `json:"recordId"`
	Region   string  `json:"region"`
	Measured int64   `json:"measured"`
	Interval int64   `json:"interval"`
	Percent  float64 `json:"percent"`
	Hits     int64   `json:"hits"`
}

// FlushObserver receives flush summaries in addition to the text line
// written to the output sink. Observers run on the flushing goroutine
// and may be called from several goroutines at once; implementations
// must be safe for concurrent use. Flushes are rare (once per record
// per reporting interval), so this is off the measurement hot path.
type FlushObserver interface {
	ObserveFlush(FlushInfo)
}
