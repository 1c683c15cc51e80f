package cpu

import (
	"testing"
	"time"
)

func TestReadCycleCounter(t *testing.T) {
	t.Parallel()

	c1 := ReadCycleCounter()

	time.Sleep(time.Microsecond)

	c2 := ReadCycleCounter()

	if c2 <= c1 {
		t.Errorf("Cycle counter not monotonic: c1=%d, c2=%d", c1, c2)
	}
}

func TestCyclesSince(t *testing.T) {
	t.Parallel()

	start := ReadCycleCounter()

	time.Sleep(2 * time.Millisecond)

	elapsed := CyclesSince(start)

	// Ticks are nanoseconds; allow generous scheduler slack on the upper side only
	if elapsed < int64(2*time.Millisecond) {
		t.Errorf("CyclesSince after 2ms sleep = %d ticks, want >= %d", elapsed, int64(2*time.Millisecond))
	}
}

func BenchmarkReadCycleCounter(b *testing.B) {
	for range b.N {
		_ = ReadCycleCounter()
	}
}
