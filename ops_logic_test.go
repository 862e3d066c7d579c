package h8

import "testing"

func TestAndBReg(t *testing.T) {
	bus := NewFlatBus()
	writeWord(bus, 0, 0x1410) // AND.B R0,R1 (dst=1,src=0)
	c := New(bus, 0xFFFFFFFF)
	c.Reg.WriteRnB(1, 0xF0)
	c.Reg.WriteRnB(0, 0x3C)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Reg.ReadRnB(1); got != 0x30 {
		t.Errorf("R1 = %#x, want 0x30", got)
	}
	if c.CCR.Get(FlagV) || c.CCR.Get(FlagC) {
		t.Error("V and C should be clear after a logical op")
	}
}

func TestShllLLongBoundary(t *testing.T) {
	bus := NewFlatBus()
	writeWord(bus, 0, 0x9022) // SHLL.L ER2 (size nibble=2 for Long, reg=2)
	c := New(bus, 0xFFFFFFFF)
	c.Reg.SetER(2, 0x80000000)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Reg.ER(2); got != 0 {
		t.Errorf("ER2 = %#x, want 0", got)
	}
	if !c.CCR.Get(FlagZ) {
		t.Error("Z should be set")
	}
	if !c.CCR.Get(FlagC) {
		t.Error("C should be set")
	}
}

func TestRotlByteWraps(t *testing.T) {
	bus := NewFlatBus()
	writeWord(bus, 0, 0x0403) // ROTL.B R3
	c := New(bus, 0xFFFFFFFF)
	c.Reg.WriteRnB(3, 0x81)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Reg.ReadRnB(3); got != 0x03 {
		t.Errorf("R3 = %#x, want 0x03", got)
	}
	if !c.CCR.Get(FlagC) {
		t.Error("C should carry the rotated-out bit")
	}
}

func TestNotB(t *testing.T) {
	bus := NewFlatBus()
	writeWord(bus, 0, 0x1705) // NOT.B R5
	c := New(bus, 0xFFFFFFFF)
	c.Reg.WriteRnB(5, 0x0F)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Reg.ReadRnB(5); got != 0xF0 {
		t.Errorf("R5 = %#x, want 0xF0", got)
	}
}
