package h8

// StateType is one of the H8/300H manual's (Table A-1) state-cost
// categories. Each instruction's total state count is the sum of typed
// contributions: calcState(type, multiplier) for each phase the
// instruction goes through.
type StateType int

const (
	StateI StateType = iota // instruction fetch (per opcode/extension word)
	StateJ                  // branch address read
	StateK                  // stack operation (per 16-bit half pushed/popped)
	StateL                  // byte data access
	StateM                  // word data access
	StateN                  // internal operation
)

// stateCost gives the base state count of a single unit of each type on
// the on-chip 16-bit bus. The H8/300H is a uniform 2-state-per-access
// machine for on-chip memory; the per-region wait-state penalty is added
// separately by calcStateWithAddr. This uniform base is what reproduces
// every literal state count returned by original_source/src/cpu.rs's
// instruction handlers (see DESIGN.md for the worked derivation).
var stateCost = [...]int{
	StateI: 2,
	StateJ: 2,
	StateK: 2,
	StateL: 2,
	StateM: 2,
	StateN: 2,
}

// calcState returns multiplier * the base cost of type t.
func calcState(t StateType, multiplier int) int {
	return multiplier * stateCost[t]
}

// calcStateWithAddr is calcState plus one extra state when addr lies in a
// wait-state region (the on-chip 8-bit peripheral bus); other regions are
// single-cycle relative to the base cost.
func calcStateWithAddr(t StateType, multiplier int, addr uint32, bus Bus) int {
	n := calcState(t, multiplier)
	if bus != nil && bus.Class(addr) == ClassOnChip8BitPeripheral {
		n++
	}
	return n
}
