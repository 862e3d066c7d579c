package h8

import "time"

// cpuClockHz is the nominal H8/300H clock the pacer throttles host
// wall-clock time against (spec.md §2, §4.4).
const cpuClockHz = 20_000_000

// pacerWindowStates is the accumulator threshold at which the pacer
// computes the ideal wall-clock duration for the window and sleeps off
// any positive remainder.
const pacerWindowStates = 14000

// Pacer accumulates state counts from the executor and periodically
// sleeps to throttle host wall-clock time to cpuClockHz, without paying a
// sleep syscall on every single instruction.
type Pacer struct {
	windowStates int
	windowStart  time.Time
	sleep        func(time.Duration)
}

// NewPacer returns a Pacer with its window clock started at now.
func NewPacer(now time.Time) *Pacer {
	return &Pacer{windowStart: now, sleep: time.Sleep}
}

// Accumulate adds states to the window total and, once the window reaches
// pacerWindowStates, sleeps for the remainder of the window's ideal
// duration. now must be the caller's current wall-clock time.
//
// The window's start time is snapshotted before the sleep call, not
// after, so that scheduling error accumulates at most one window's worth
// of drift instead of compounding across windows (see DESIGN.md).
func (p *Pacer) Accumulate(states int, now time.Time) {
	p.windowStates += states
	if p.windowStates < pacerWindowStates {
		return
	}

	ideal := time.Duration(float64(p.windowStates) / cpuClockHz * float64(time.Second))
	elapsed := now.Sub(p.windowStart)
	remaining := ideal - elapsed

	p.windowStart = now
	p.windowStates = 0

	if remaining > 0 {
		p.sleep(remaining)
	}
}
