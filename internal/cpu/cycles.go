package cpu

import "time"

// epoch anchors the counter so readings stay small and monotonic.
var epoch = time.Now()

// ReadCycleCounter reads a monotonic tick counter for micro-benchmarking.
// Ticks are nanoseconds of the runtime's monotonic clock.
func ReadCycleCounter() int64 {
	return int64(time.Since(epoch))
}

// CyclesSince returns the number of ticks elapsed since the given start reading.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}
