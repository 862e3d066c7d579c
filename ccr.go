package h8

// CCRField identifies one bit of the H8/300H Condition Code Register.
// Bit positions follow spec.md's {I,U,H,U2,N,Z,V,C} layout at bits 7..0.
// Callers never see the raw bit position, only the field identifier.
type CCRField uint8

const (
	FlagC  CCRField = iota // bit 0: Carry
	FlagV                  // bit 1: Overflow
	FlagZ                  // bit 2: Zero
	FlagN                  // bit 3: Negative
	FlagU2                 // bit 4: User bit 2
	FlagH                  // bit 5: Half-carry
	FlagU                  // bit 6: User bit
	FlagI                  // bit 7: Interrupt mask
)

// CCR is the 8-bit Condition Code Register, addressed only through Get/Set
// so that bit positions stay an implementation detail of this file.
type CCR uint8

// Get reports whether the named field is set.
func (c CCR) Get(f CCRField) bool {
	return c&(1<<uint8(f)) != 0
}

// Set writes the named field to 0 or 1.
func (c *CCR) Set(f CCRField, v bool) {
	if v {
		*c |= 1 << uint8(f)
	} else {
		*c &^= 1 << uint8(f)
	}
}

// SetBit writes the named field from a 0/1 value, mirroring the original
// Rust source's write_ccr(target, val: u8) convention.
func (c *CCR) SetBit(f CCRField, val uint8) {
	c.Set(f, val != 0)
}

// Byte returns the raw 8-bit register value.
func (c CCR) Byte() uint8 {
	return uint8(c)
}
