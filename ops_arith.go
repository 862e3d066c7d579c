package h8

// ADD/SUB/CMP/ADDS/SUBS family (spec.md §4.3, the ADD.B/ADD.W/CMP.W
// boundary behaviors and the ADD.L/MOV.W scenarios of spec.md §8).
//
// The 0x79 and 0x7A groups are spec.md's "sized immediates" and "sized
// immediates with 32-bit imm" groups: the opcode's second byte carries an
// operation selector in its high nibble and the destination register in
// its low nibble, followed by the immediate word(s). This mirrors
// original_source/src/cpu.rs's explicit 0x7A dispatch (0x00=MOV.L,
// 0x10=ADD.L, 0x20=CMP.L, 0x30=SUB.L register-immediate forms); 0x79
// extends the same selector convention one size down to the 16-bit forms,
// which original_source's cpu.rs snippet did not show explicitly.

func init() {
	register(0x08, addBReg)
	register(0x09, addWReg)
	register(0x0A, addLReg)
	register(0x18, subBReg)
	register(0x19, subWReg)
	register(0x1A, subLReg)
	register(0x1C, cmpBReg)
	register(0x1D, cmpWReg)
	register(0x1F, cmpLReg)
	register(0x0B, addsImm)
	register(0x1B, subsImm)

	for b := 0x80; b <= 0x8F; b++ {
		register(uint8(b), addBImm)
	}

	register(0x79, sizedImm16)
	register(0x7A, sizedImm32)
}

func addBReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "ADD.B"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	d, s := uint32(c.Reg.ReadRnB(dst)), uint32(c.Reg.ReadRnB(src))
	r := d + s
	c.setFlagsAdd(d, s, r, Byte)
	c.Reg.WriteRnB(dst, uint8(r))
	return calcState(StateI, 1), nil
}

func addBImm(c *CPU, opcode uint16) (int, error) {
	c.trace = "ADD.B"
	dst := loNibble(uint8(opcode >> 8))
	d := uint32(c.Reg.ReadRnB(dst))
	s := uint32(uint8(opcode))
	r := d + s
	c.setFlagsAdd(d, s, r, Byte)
	c.Reg.WriteRnB(dst, uint8(r))
	return calcState(StateI, 1), nil
}

func addWReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "ADD.W"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	d, s := uint32(c.Reg.ReadRnW(dst)), uint32(c.Reg.ReadRnW(src))
	r := d + s
	c.setFlagsAdd(d, s, r, Word)
	c.Reg.WriteRnW(dst, uint16(r))
	return calcState(StateI, 1), nil
}

func addLReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "ADD.L"
	lo := uint8(opcode)
	dst, src := hiNibble(lo)&0x07, loNibble(lo)&0x07
	d, s := c.Reg.ER(dst), c.Reg.ER(src)
	r := d + s
	c.setFlagsAdd(d, s, r, Long)
	c.Reg.SetER(dst, r)
	return calcState(StateI, 1), nil
}

func subBReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "SUB.B"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	d, s := uint32(c.Reg.ReadRnB(dst)), uint32(c.Reg.ReadRnB(src))
	r := d - s
	c.setFlagsSub(d, s, r, Byte)
	c.Reg.WriteRnB(dst, uint8(r))
	return calcState(StateI, 1), nil
}

func subWReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "SUB.W"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	d, s := uint32(c.Reg.ReadRnW(dst)), uint32(c.Reg.ReadRnW(src))
	r := d - s
	c.setFlagsSub(d, s, r, Word)
	c.Reg.WriteRnW(dst, uint16(r))
	return calcState(StateI, 1), nil
}

func subLReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "SUB.L"
	lo := uint8(opcode)
	dst, src := hiNibble(lo)&0x07, loNibble(lo)&0x07
	d, s := c.Reg.ER(dst), c.Reg.ER(src)
	r := d - s
	c.setFlagsSub(d, s, r, Long)
	c.Reg.SetER(dst, r)
	return calcState(StateI, 1), nil
}

func cmpBReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "CMP.B"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	d, s := uint32(c.Reg.ReadRnB(dst)), uint32(c.Reg.ReadRnB(src))
	c.setFlagsCmp(d, s, d-s, Byte)
	return calcState(StateI, 1), nil
}

func cmpWReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "CMP.W"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	d, s := uint32(c.Reg.ReadRnW(dst)), uint32(c.Reg.ReadRnW(src))
	c.setFlagsCmp(d, s, d-s, Word)
	return calcState(StateI, 1), nil
}

func cmpLReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "CMP.L"
	lo := uint8(opcode)
	dst, src := hiNibble(lo)&0x07, loNibble(lo)&0x07
	d, s := c.Reg.ER(dst), c.Reg.ER(src)
	c.setFlagsCmp(d, s, d-s, Long)
	return calcState(StateI, 1), nil
}

// addsImm/subsImm add or subtract an unsigned immediate of 1, 2 or 4
// (selected by the low byte's high nibble: 0x0→1, 0x8→2, 0x9→4) to/from an
// ERn without touching any CCR flag (spec.md's ADDS/SUBS are flag-inert).
func addsImm(c *CPU, opcode uint16) (int, error) {
	c.trace = "ADDS"
	lo := uint8(opcode)
	amount := addsAmount(hiNibble(lo))
	dst := loNibble(lo) & 0x07
	c.Reg.SetER(dst, c.Reg.ER(dst)+amount)
	return calcState(StateI, 1), nil
}

func subsImm(c *CPU, opcode uint16) (int, error) {
	c.trace = "SUBS"
	lo := uint8(opcode)
	amount := addsAmount(hiNibble(lo))
	dst := loNibble(lo) & 0x07
	c.Reg.SetER(dst, c.Reg.ER(dst)-amount)
	return calcState(StateI, 1), nil
}

func addsAmount(sel uint8) uint32 {
	switch sel {
	case 0x8:
		return 2
	case 0x9:
		return 4
	default:
		return 1
	}
}

func sizedImm16(c *CPU, opcode uint16) (int, error) {
	b2 := uint8(opcode)
	op, dst := hiNibble(b2), loNibble(b2)
	imm, err := c.fetchImmW()
	if err != nil {
		return 0, err
	}
	d := uint32(c.Reg.ReadRnW(dst))
	s := uint32(imm)

	switch op {
	case 0x0:
		c.trace = "MOV.W"
		c.setFlagsMove(s, Word)
		c.Reg.WriteRnW(dst, imm)
	case 0x1:
		c.trace = "ADD.W"
		r := d + s
		c.setFlagsAdd(d, s, r, Word)
		c.Reg.WriteRnW(dst, uint16(r))
	case 0x2:
		c.trace = "CMP.W"
		c.setFlagsCmp(d, s, d-s, Word)
	case 0x3:
		c.trace = "SUB.W"
		r := d - s
		c.setFlagsSub(d, s, r, Word)
		c.Reg.WriteRnW(dst, uint16(r))
	default:
		return 0, &UnimplementedOpcodeError{Opcode: opcode, PC: c.PC - 4}
	}
	return calcState(StateI, 2), nil
}

func sizedImm32(c *CPU, opcode uint16) (int, error) {
	b2 := uint8(opcode)
	op, dst := hiNibble(b2), loNibble(b2)&0x07
	imm, err := c.fetchImmL()
	if err != nil {
		return 0, err
	}
	d := c.Reg.ER(dst)
	s := imm

	switch op {
	case 0x0:
		c.trace = "MOV.L"
		c.setFlagsMove(s, Long)
		c.Reg.SetER(dst, s)
	case 0x1:
		c.trace = "ADD.L"
		r := d + s
		c.setFlagsAdd(d, s, r, Long)
		c.Reg.SetER(dst, r)
	case 0x2:
		c.trace = "CMP.L"
		c.setFlagsCmp(d, s, d-s, Long)
	case 0x3:
		c.trace = "SUB.L"
		r := d - s
		c.setFlagsSub(d, s, r, Long)
		c.Reg.SetER(dst, r)
	default:
		return 0, &UnimplementedOpcodeError{Opcode: opcode, PC: c.PC - 6}
	}
	return calcState(StateI, 3), nil
}
