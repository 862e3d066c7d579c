package h8

// Bitwise and shift/rotate family (spec.md §4.3; the SHLL.L boundary
// behavior of spec.md §8). Two-register forms share the (dest<<4)|src
// low-byte convention used throughout this package. Shift/rotate forms are
// single-register and shift by exactly one bit per instruction (the
// H8/300H has no single-instruction multi-bit shift); low byte = register
// in the low nibble, with the high nibble distinguishing byte/word/long
// sub-forms sharing the same top byte where convenient.

func init() {
	register(0x14, andBReg)
	register(0x64, andWReg)
	register(0x06, andLReg)

	register(0x15, xorBReg)
	register(0x65, xorWReg)
	register(0x07, xorLReg)

	register(0x16, orBReg)
	register(0x66, orWReg)
	register(0x02, orLReg)

	register(0x17, notB)
	register(0x1E, negB)

	register(0x10, shllB)
	register(0x11, shlrB)
	register(0x12, shalB)
	register(0x13, sharB)
	register(0x04, rotlB)
	register(0x05, rotrB)

	register(0x90, shllSized) // 0x90-0x95: one shift/rotate kind each; size in the low byte's high nibble
	register(0x91, shlrSized)
	register(0x92, shalSized)
	register(0x93, sharSized)
	register(0x94, rotlSized)
	register(0x95, rotrSized)
}

func andBReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "AND.B"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	r := c.Reg.ReadRnB(dst) & c.Reg.ReadRnB(src)
	c.setFlagsLogical(uint32(r), Byte)
	c.Reg.WriteRnB(dst, r)
	return calcState(StateI, 1), nil
}

func andWReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "AND.W"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	r := c.Reg.ReadRnW(dst) & c.Reg.ReadRnW(src)
	c.setFlagsLogical(uint32(r), Word)
	c.Reg.WriteRnW(dst, r)
	return calcState(StateI, 1), nil
}

func andLReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "AND.L"
	lo := uint8(opcode)
	dst, src := hiNibble(lo)&0x07, loNibble(lo)&0x07
	r := c.Reg.ER(dst) & c.Reg.ER(src)
	c.setFlagsLogical(r, Long)
	c.Reg.SetER(dst, r)
	return calcState(StateI, 1), nil
}

func xorBReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "XOR.B"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	r := c.Reg.ReadRnB(dst) ^ c.Reg.ReadRnB(src)
	c.setFlagsLogical(uint32(r), Byte)
	c.Reg.WriteRnB(dst, r)
	return calcState(StateI, 1), nil
}

func xorWReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "XOR.W"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	r := c.Reg.ReadRnW(dst) ^ c.Reg.ReadRnW(src)
	c.setFlagsLogical(uint32(r), Word)
	c.Reg.WriteRnW(dst, r)
	return calcState(StateI, 1), nil
}

func xorLReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "XOR.L"
	lo := uint8(opcode)
	dst, src := hiNibble(lo)&0x07, loNibble(lo)&0x07
	r := c.Reg.ER(dst) ^ c.Reg.ER(src)
	c.setFlagsLogical(r, Long)
	c.Reg.SetER(dst, r)
	return calcState(StateI, 1), nil
}

func orBReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "OR.B"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	r := c.Reg.ReadRnB(dst) | c.Reg.ReadRnB(src)
	c.setFlagsLogical(uint32(r), Byte)
	c.Reg.WriteRnB(dst, r)
	return calcState(StateI, 1), nil
}

func orWReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "OR.W"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	r := c.Reg.ReadRnW(dst) | c.Reg.ReadRnW(src)
	c.setFlagsLogical(uint32(r), Word)
	c.Reg.WriteRnW(dst, r)
	return calcState(StateI, 1), nil
}

func orLReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "OR.L"
	lo := uint8(opcode)
	dst, src := hiNibble(lo)&0x07, loNibble(lo)&0x07
	r := c.Reg.ER(dst) | c.Reg.ER(src)
	c.setFlagsLogical(r, Long)
	c.Reg.SetER(dst, r)
	return calcState(StateI, 1), nil
}

func notB(c *CPU, opcode uint16) (int, error) {
	c.trace = "NOT.B"
	dst := loNibble(uint8(opcode))
	r := ^c.Reg.ReadRnB(dst)
	c.setFlagsLogical(uint32(r), Byte)
	c.Reg.WriteRnB(dst, r)
	return calcState(StateI, 1), nil
}

func negB(c *CPU, opcode uint16) (int, error) {
	c.trace = "NEG.B"
	dst := loNibble(uint8(opcode))
	d := uint32(c.Reg.ReadRnB(dst))
	r := (-d) & 0xFF
	c.setFlagsSub(0, d, r, Byte)
	c.Reg.WriteRnB(dst, uint8(r))
	return calcState(StateI, 1), nil
}

func shllB(c *CPU, opcode uint16) (int, error) { return shiftOp(c, opcode, "SHLL.B", Byte, shiftDirLeft, shiftKindLogical) }
func shlrB(c *CPU, opcode uint16) (int, error) { return shiftOp(c, opcode, "SHLR.B", Byte, shiftDirRight, shiftKindLogical) }
func shalB(c *CPU, opcode uint16) (int, error) { return shiftOp(c, opcode, "SHAL.B", Byte, shiftDirLeft, shiftKindArith) }
func sharB(c *CPU, opcode uint16) (int, error) { return shiftOp(c, opcode, "SHAR.B", Byte, shiftDirRight, shiftKindArith) }
func rotlB(c *CPU, opcode uint16) (int, error) { return rotateOp(c, opcode, "ROTL.B", Byte, shiftDirLeft) }
func rotrB(c *CPU, opcode uint16) (int, error) { return rotateOp(c, opcode, "ROTR.B", Byte, shiftDirRight) }

// shllSized/shlrSized/... decode a size nibble (0=B,1=W,2=L) from the low
// byte's high nibble alongside the register field in its low nibble,
// covering SHLL.W/SHLL.L and so on with one handler per shift kind.
func sizeFromNibble(n uint8) Size {
	switch n {
	case 1:
		return Word
	case 2:
		return Long
	default:
		return Byte
	}
}

func shllSized(c *CPU, opcode uint16) (int, error) {
	lo := uint8(opcode)
	return shiftOp(c, opcode, "SHLL", sizeFromNibble(hiNibble(lo)), shiftDirLeft, shiftKindLogical)
}
func shlrSized(c *CPU, opcode uint16) (int, error) {
	lo := uint8(opcode)
	return shiftOp(c, opcode, "SHLR", sizeFromNibble(hiNibble(lo)), shiftDirRight, shiftKindLogical)
}
func shalSized(c *CPU, opcode uint16) (int, error) {
	lo := uint8(opcode)
	return shiftOp(c, opcode, "SHAL", sizeFromNibble(hiNibble(lo)), shiftDirLeft, shiftKindArith)
}
func sharSized(c *CPU, opcode uint16) (int, error) {
	lo := uint8(opcode)
	return shiftOp(c, opcode, "SHAR", sizeFromNibble(hiNibble(lo)), shiftDirRight, shiftKindArith)
}
func rotlSized(c *CPU, opcode uint16) (int, error) {
	lo := uint8(opcode)
	return rotateOp(c, opcode, "ROTL", sizeFromNibble(hiNibble(lo)), shiftDirLeft)
}
func rotrSized(c *CPU, opcode uint16) (int, error) {
	lo := uint8(opcode)
	return rotateOp(c, opcode, "ROTR", sizeFromNibble(hiNibble(lo)), shiftDirRight)
}

type shiftDir int

const (
	shiftDirLeft shiftDir = iota
	shiftDirRight
)

type shiftKind int

const (
	shiftKindLogical shiftKind = iota
	shiftKindArith
)

func readSized(c *CPU, reg uint8, sz Size) uint32 {
	switch sz {
	case Word:
		return uint32(c.Reg.ReadRnW(reg))
	case Long:
		return c.Reg.ER(reg & 0x07)
	default:
		return uint32(c.Reg.ReadRnB(reg))
	}
}

func writeSized(c *CPU, reg uint8, sz Size, v uint32) {
	switch sz {
	case Word:
		c.Reg.WriteRnW(reg, uint16(v))
	case Long:
		c.Reg.SetER(reg&0x07, v)
	default:
		c.Reg.WriteRnB(reg, uint8(v))
	}
}

func shiftOp(c *CPU, opcode uint16, trace string, sz Size, dir shiftDir, kind shiftKind) (int, error) {
	c.trace = trace
	reg := loNibble(uint8(opcode))
	before := readSized(c, reg, sz) & sz.Mask()
	var after uint32
	if dir == shiftDirLeft {
		after = (before << 1) & sz.Mask()
	} else {
		after = before >> 1
		if kind == shiftKindArith && before&sz.MSB() != 0 {
			after |= sz.MSB()
		}
	}
	writeSized(c, reg, sz, after)
	switch {
	case dir == shiftDirLeft && kind == shiftKindLogical:
		c.setFlagsShll(before, after, sz)
	case dir == shiftDirLeft && kind == shiftKindArith:
		c.setFlagsShal(before, after, sz)
	default:
		c.setFlagsShlr(before, after, sz)
	}
	return calcState(StateI, 1), nil
}

func rotateOp(c *CPU, opcode uint16, trace string, sz Size, dir shiftDir) (int, error) {
	c.trace = trace
	reg := loNibble(uint8(opcode))
	before := readSized(c, reg, sz) & sz.Mask()
	var after uint32
	if dir == shiftDirLeft {
		carry := uint32(0)
		if before&sz.MSB() != 0 {
			carry = 1
		}
		after = ((before << 1) | carry) & sz.Mask()
		writeSized(c, reg, sz, after)
		c.setFlagsRotl(after, sz)
	} else {
		carry := (before & 1) << (sz.Bits() - 1)
		after = (before >> 1) | carry
		writeSized(c, reg, sz, after)
		c.setFlagsRotr(after, sz)
	}
	return calcState(StateI, 1), nil
}
