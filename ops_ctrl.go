package h8

// Miscellaneous control instructions that don't fit the arithmetic,
// logic, move, branch or bit-manipulation families.

func init() {
	register(0x00, nop)
}

func nop(c *CPU, opcode uint16) (int, error) {
	c.trace = "NOP"
	return calcState(StateI, 1), nil
}
