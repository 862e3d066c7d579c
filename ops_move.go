package h8

// MOV instruction family (spec.md §4.3, §8 scenario 1). Register-register
// and immediate forms follow the general register-field nibble convention
// used across the register-operand instructions in this package: the low
// opcode byte is (dest<<4)|src for two-register forms. MOV.B #imm8,Rd
// (0xF0-0xFF) carries Rd in the low nibble of the high byte and the
// immediate in the low byte. EA forms use splitMovEA's direction-bit
// convention (decode.go).

func init() {
	register(0x0C, movBReg)
	register(0x0D, movWReg)
	register(0x0F, movLReg)

	register(0xF0, movBImm) // 0xF0-0xFF: MOV.B #imm8,Rd
	register(0xF1, movBImm)
	register(0xF2, movBImm)
	register(0xF3, movBImm)
	register(0xF4, movBImm)
	register(0xF5, movBImm)
	register(0xF6, movBImm)
	register(0xF7, movBImm)
	register(0xF8, movBImm)
	register(0xF9, movBImm)
	register(0xFA, movBImm)
	register(0xFB, movBImm)
	register(0xFC, movBImm)
	register(0xFD, movBImm)
	register(0xFE, movBImm)
	register(0xFF, movBImm)

	register(0x68, movBEAErn)
	register(0x6C, movBEAErnInc)
	register(0x69, movWEAErn)
	register(0x6B, movWEAAbs16)
	register(0x6D, movWEAErnInc)
	register(0x6F, movWEAdisp16)
}

func movBReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.B"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	c.setFlagsMove(uint32(c.Reg.ReadRnB(src)), Byte)
	c.Reg.WriteRnB(dst, c.Reg.ReadRnB(src))
	return calcState(StateI, 1), nil
}

func movWReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.W"
	lo := uint8(opcode)
	dst, src := hiNibble(lo), loNibble(lo)
	v := c.Reg.ReadRnW(src)
	c.setFlagsMove(uint32(v), Word)
	c.Reg.WriteRnW(dst, v)
	return calcState(StateI, 1), nil
}

func movLReg(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.L"
	lo := uint8(opcode)
	dst, src := hiNibble(lo)&0x07, loNibble(lo)&0x07
	v := c.Reg.ER(src)
	c.setFlagsMove(v, Long)
	c.Reg.SetER(dst, v)
	return calcState(StateI, 1), nil
}

func movBImm(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.B"
	dst := loNibble(uint8(opcode >> 8))
	imm := uint8(opcode)
	c.setFlagsMove(uint32(imm), Byte)
	c.Reg.WriteRnB(dst, imm)
	return calcState(StateI, 1), nil
}

func movBEAErn(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.B"
	dir, reg, ern := splitMovEA(uint8(opcode))
	if !dir {
		v, err := c.readAtErnB(ern)
		if err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Byte)
		c.Reg.WriteRnB(reg, v)
	} else {
		v := c.Reg.ReadRnB(reg)
		if err := c.writeAtErnB(ern, v); err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Byte)
	}
	addr, _ := c.Reg.ReadRnL(ern)
	return calcStateWithAddr(StateL, 1, addr, c.bus) + calcState(StateI, 1), nil
}

func movBEAErnInc(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.B"
	dir, reg, ern := splitMovEA(uint8(opcode))
	if !dir {
		v, err := c.readErnPostIncB(ern)
		if err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Byte)
		c.Reg.WriteRnB(reg, v)
	} else {
		v := c.Reg.ReadRnB(reg)
		if err := c.writeErnPreDecB(ern, v); err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Byte)
	}
	return calcState(StateL, 1) + calcState(StateI, 1), nil
}

func movWEAErn(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.W"
	dir, reg, ern := splitMovEA(uint8(opcode))
	if !dir {
		v, err := c.readAtErnW(ern)
		if err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
		c.Reg.WriteRnW(reg, v)
	} else {
		v := c.Reg.ReadRnW(reg)
		if err := c.writeAtErnW(ern, v); err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
	}
	addr, _ := c.Reg.ReadRnL(ern)
	return calcStateWithAddr(StateM, 1, addr, c.bus) + calcState(StateI, 1), nil
}

func movWEAErnInc(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.W"
	dir, reg, ern := splitMovEA(uint8(opcode))
	addr, _ := c.Reg.ReadRnL(ern)
	if !dir {
		v, err := c.readErnPostIncW(ern)
		if err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
		c.Reg.WriteRnW(reg, v)
	} else {
		addr -= uint32(Word)
		v := c.Reg.ReadRnW(reg)
		if err := c.writeErnPreDecW(ern, v); err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
	}
	return calcStateWithAddr(StateM, 1, addr, c.bus) + calcState(StateI, 1), nil
}

func movWEAdisp16(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.W"
	dir, reg, ern := splitMovEA(uint8(opcode))
	disp, err := c.fetchImmW()
	if err != nil {
		return 0, err
	}
	base, _ := c.Reg.ReadRnL(ern)
	addr, _ := addrDisp16(base, disp)
	if !dir {
		v, err := c.readDisp16ErnW(ern, disp)
		if err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
		c.Reg.WriteRnW(reg, v)
	} else {
		v := c.Reg.ReadRnW(reg)
		if err := c.writeDisp16ErnW(ern, disp, v); err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
	}
	return calcStateWithAddr(StateM, 1, addr, c.bus) + calcState(StateI, 2), nil
}

// movWEAAbs16 implements opcode 0x6B's two sub-cases, selected the way
// original_source/src/cpu/instruction/mov_w.rs's mov_w dispatches on
// opcode&0xfff0: 0x6B00/0x6B80 is the @aa:16 form (a 16-bit absolute
// fetched after the opcode), 0x6B20/0x6BA0 is the @aa:24 form (a 24-bit
// absolute, encoded as a 32-bit fetch). Direction and register field reuse
// splitMovEA's convention; bit 5 of the low byte (the 0x20 mask) picks the
// address width rather than the register/direction fields.
func movWEAAbs16(c *CPU, opcode uint16) (int, error) {
	c.trace = "MOV.W"
	dir, reg, _ := splitMovEA(uint8(opcode))
	if uint8(opcode)&0x20 != 0 {
		aa, err := c.fetchImmL()
		if err != nil {
			return 0, err
		}
		if !dir {
			v, err := c.readAbs24W(aa)
			if err != nil {
				return 0, err
			}
			c.setFlagsMove(uint32(v), Word)
			c.Reg.WriteRnW(reg, v)
		} else {
			v := c.Reg.ReadRnW(reg)
			if err := c.writeAbs24W(aa, v); err != nil {
				return 0, err
			}
			c.setFlagsMove(uint32(v), Word)
		}
		return calcStateWithAddr(StateM, 1, aa, c.bus) + calcState(StateI, 3), nil
	}
	aa, err := c.fetchImmW()
	if err != nil {
		return 0, err
	}
	if !dir {
		v, err := c.readAbs16W(aa)
		if err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
		c.Reg.WriteRnW(reg, v)
	} else {
		v := c.Reg.ReadRnW(reg)
		if err := c.writeAbs16W(aa, v); err != nil {
			return 0, err
		}
		c.setFlagsMove(uint32(v), Word)
	}
	return calcStateWithAddr(StateM, 1, abs16Addr(aa), c.bus) + calcState(StateI, 2), nil
}
