package h8

// This file computes the documented CCR flag subset for each instruction
// family from a single reference formula per flag (spec.md §9's "Design
// Notes" rule against duplicating flag logic across byte/word/long
// variants) — only the bit width changes between sizes.

func halfCarryLowMask(sz Size) uint32 {
	return sz.HalfCarryMask()<<1 - 1
}

// setFlagsAdd sets H,N,Z,V,C after result = dest + src (spec.md §4.3).
func (c *CPU) setFlagsAdd(dest, src, result uint32, sz Size) {
	mask := sz.Mask()
	msb := sz.MSB()
	d, s, r := dest&mask, src&mask, result&mask

	c.CCR.Set(FlagN, r&msb != 0)
	c.CCR.Set(FlagZ, r == 0)
	// Signed overflow: operands share a sign that differs from the result's.
	c.CCR.Set(FlagV, (d^r)&(s^r)&msb != 0)
	c.CCR.Set(FlagC, uint64(d)+uint64(s) > uint64(mask))

	lo := halfCarryLowMask(sz)
	c.CCR.Set(FlagH, (d&lo)+(s&lo) > lo)
}

// setFlagsSub sets H,N,Z,V,C after result = dest - src (spec.md §4.3).
func (c *CPU) setFlagsSub(dest, src, result uint32, sz Size) {
	mask := sz.Mask()
	msb := sz.MSB()
	d, s, r := dest&mask, src&mask, result&mask

	c.CCR.Set(FlagN, r&msb != 0)
	c.CCR.Set(FlagZ, r == 0)
	// Signed overflow: operands differ in sign and the result's sign
	// differs from the minuend's.
	c.CCR.Set(FlagV, (d^s)&(d^r)&msb != 0)
	c.CCR.Set(FlagC, d < s)

	lo := halfCarryLowMask(sz)
	c.CCR.Set(FlagH, (d&lo) < (s&lo))
}

// setFlagsCmp sets N,Z,V,C as for subtraction without storing the result
// (CMP). H is not part of CMP's documented flag set.
func (c *CPU) setFlagsCmp(dest, src, result uint32, sz Size) {
	mask := sz.Mask()
	msb := sz.MSB()
	d, s, r := dest&mask, src&mask, result&mask

	c.CCR.Set(FlagN, r&msb != 0)
	c.CCR.Set(FlagZ, r == 0)
	c.CCR.Set(FlagV, (d^s)&(d^r)&msb != 0)
	c.CCR.Set(FlagC, d < s)
}

// setFlagsMove clears V and sets N/Z from the moved value. H and C are
// left untouched.
func (c *CPU) setFlagsMove(value uint32, sz Size) {
	c.CCR.Set(FlagN, value&sz.MSB() != 0)
	c.CCR.Set(FlagZ, value&sz.Mask() == 0)
	c.CCR.Set(FlagV, false)
}

// setFlagsLogical clears V and C and sets N/Z from the result. H is left
// untouched.
func (c *CPU) setFlagsLogical(result uint32, sz Size) {
	c.CCR.Set(FlagN, result&sz.MSB() != 0)
	c.CCR.Set(FlagZ, result&sz.Mask() == 0)
	c.CCR.Set(FlagV, false)
	c.CCR.Set(FlagC, false)
}

// setFlagsShll sets C to the pre-shift MSB, clears V, and sets N/Z from
// the shifted result (logical shift left, spec.md §4.3).
func (c *CPU) setFlagsShll(before, after uint32, sz Size) {
	c.CCR.Set(FlagC, before&sz.MSB() != 0)
	c.CCR.Set(FlagV, false)
	c.CCR.Set(FlagN, after&sz.MSB() != 0)
	c.CCR.Set(FlagZ, after&sz.Mask() == 0)
}

// setFlagsShal sets C to the pre-shift MSB and sets V if the sign bit
// changed across the shift (arithmetic shift left).
func (c *CPU) setFlagsShal(before, after uint32, sz Size) {
	c.CCR.Set(FlagC, before&sz.MSB() != 0)
	c.CCR.Set(FlagV, (before^after)&sz.MSB() != 0)
	c.CCR.Set(FlagN, after&sz.MSB() != 0)
	c.CCR.Set(FlagZ, after&sz.Mask() == 0)
}

// setFlagsShlr sets C to the pre-shift LSB, clears V, sets N/Z (logical
// shift right always clears N since the vacated MSB is 0).
func (c *CPU) setFlagsShlr(before, after uint32, sz Size) {
	c.CCR.Set(FlagC, before&1 != 0)
	c.CCR.Set(FlagV, false)
	c.CCR.Set(FlagN, after&sz.MSB() != 0)
	c.CCR.Set(FlagZ, after&sz.Mask() == 0)
}

// setFlagsRotl sets C to the bit rotated out (= the new LSB) and N/Z from
// the result; V is cleared.
func (c *CPU) setFlagsRotl(after uint32, sz Size) {
	c.CCR.Set(FlagC, after&1 != 0)
	c.CCR.Set(FlagV, false)
	c.CCR.Set(FlagN, after&sz.MSB() != 0)
	c.CCR.Set(FlagZ, after&sz.Mask() == 0)
}

// setFlagsRotr sets C to the bit rotated out (= the new MSB) and N/Z from
// the result; V is cleared.
func (c *CPU) setFlagsRotr(after uint32, sz Size) {
	c.CCR.Set(FlagC, after&sz.MSB() != 0)
	c.CCR.Set(FlagV, false)
	c.CCR.Set(FlagN, after&sz.MSB() != 0)
	c.CCR.Set(FlagZ, after&sz.Mask() == 0)
}
