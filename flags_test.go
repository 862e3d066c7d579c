package h8

import "testing"

// TestSetFlagsAddByteBoundary checks spec.md §8(1): ADD.B 0x7F + 0x01
// overflows into the sign bit with a half-carry out of bit 3.
func TestSetFlagsAddByteBoundary(t *testing.T) {
	c := New(NewFlatBus(), 0)
	d, s := uint32(0x7F), uint32(0x01)
	r := d + s
	c.setFlagsAdd(d, s, r, Byte)

	if !c.CCR.Get(FlagN) {
		t.Error("N should be set")
	}
	if !c.CCR.Get(FlagV) {
		t.Error("V should be set")
	}
	if c.CCR.Get(FlagC) {
		t.Error("C should be clear")
	}
	if !c.CCR.Get(FlagH) {
		t.Error("H should be set")
	}
}

// TestSetFlagsAddWordBoundary checks spec.md §8(2): ADD.W 0x7FFF + 1
// overflows the 16-bit sign bit.
func TestSetFlagsAddWordBoundary(t *testing.T) {
	c := New(NewFlatBus(), 0)
	d, s := uint32(0x7FFF), uint32(0x0001)
	r := d + s
	c.setFlagsAdd(d, s, r, Word)

	if !c.CCR.Get(FlagV) {
		t.Error("V should be set")
	}
	if !c.CCR.Get(FlagN) {
		t.Error("N should be set")
	}
}

// TestSetFlagsCmpEqual checks spec.md §8(3): CMP.W of equal operands
// sets Z and clears N, V and C.
func TestSetFlagsCmpEqual(t *testing.T) {
	c := New(NewFlatBus(), 0)
	d := uint32(0x1234)
	c.setFlagsCmp(d, d, d-d, Word)

	if !c.CCR.Get(FlagZ) {
		t.Error("Z should be set")
	}
	if c.CCR.Get(FlagN) {
		t.Error("N should be clear")
	}
	if c.CCR.Get(FlagV) {
		t.Error("V should be clear")
	}
	if c.CCR.Get(FlagC) {
		t.Error("C should be clear")
	}
}

// TestSetFlagsShllLongBoundary checks spec.md §8(4): SHLL.L of
// 0x8000_0000 shifts the sign bit into C and produces a zero result.
func TestSetFlagsShllLongBoundary(t *testing.T) {
	c := New(NewFlatBus(), 0)
	before := uint32(0x80000000)
	after := (before << 1) & Long.Mask()
	c.setFlagsShll(before, after, Long)

	if !c.CCR.Get(FlagZ) {
		t.Error("Z should be set")
	}
	if !c.CCR.Get(FlagC) {
		t.Error("C should be set")
	}
}
