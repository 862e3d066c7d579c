package h8

import (
	"testing"
	"time"
)

// TestPacerSleepsOffWindowRemainder checks that once the window reaches
// pacerWindowStates, the pacer sleeps for the remaining ideal duration
// rather than the elapsed one.
func TestPacerSleepsOffWindowRemainder(t *testing.T) {
	start := time.Unix(0, 0)
	p := NewPacer(start)

	var slept time.Duration
	p.sleep = func(d time.Duration) { slept = d }

	ideal := time.Duration(float64(pacerWindowStates) / cpuClockHz * float64(time.Second))
	// Report the window as complete with no elapsed wall-clock time: the
	// pacer should ask to sleep for (close to) the full ideal duration.
	p.Accumulate(pacerWindowStates, start)

	if slept <= 0 {
		t.Fatalf("expected a positive sleep, got %v", slept)
	}
	if slept > ideal {
		t.Fatalf("slept %v exceeds ideal window duration %v", slept, ideal)
	}
}

// TestPacerNoSleepUnderThreshold checks the pacer never sleeps before the
// window accumulates pacerWindowStates.
func TestPacerNoSleepUnderThreshold(t *testing.T) {
	start := time.Unix(0, 0)
	p := NewPacer(start)

	called := false
	p.sleep = func(time.Duration) { called = true }

	p.Accumulate(pacerWindowStates-1, start)
	if called {
		t.Fatal("pacer slept before reaching its window threshold")
	}
}

// TestPacerNoSleepWhenBehindSchedule checks that a window which took
// longer than its ideal duration produces no sleep call.
func TestPacerNoSleepWhenBehindSchedule(t *testing.T) {
	start := time.Unix(0, 0)
	p := NewPacer(start)

	called := false
	p.sleep = func(time.Duration) { called = true }

	late := start.Add(time.Second) // far longer than any real window's ideal duration
	p.Accumulate(pacerWindowStates, late)
	if called {
		t.Fatal("pacer slept even though the window ran behind schedule")
	}
}
