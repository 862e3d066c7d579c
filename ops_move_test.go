package h8

import "testing"

func TestMovBImm(t *testing.T) {
	bus := NewFlatBus()
	writeWord(bus, 0, 0xF200) // MOV.B #0,R2
	c := New(bus, 0xFFFFFFFF)
	c.Reg.WriteRnB(2, 0x55)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Reg.ReadRnB(2); got != 0x00 {
		t.Errorf("R2H = %#x, want 0", got)
	}
	if !c.CCR.Get(FlagZ) {
		t.Error("Z should be set for a zero move")
	}
}

func TestMovBRegReg(t *testing.T) {
	bus := NewFlatBus()
	writeWord(bus, 0, 0x0C10) // MOV.B R0,R1 (dst=1,src=0)
	c := New(bus, 0xFFFFFFFF)
	c.Reg.WriteRnB(0, 0x42)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Reg.ReadRnB(1); got != 0x42 {
		t.Errorf("R1 = %#x, want 0x42", got)
	}
}

func TestMovWEAErnLoadStore(t *testing.T) {
	bus := NewFlatBus()
	// MOV.W @ER0,R1 : opcode 0x69, dir=0 (load), ern=0, reg=1.
	writeWord(bus, 0, 0x6901)
	c := New(bus, 0xFFFFFFFF)
	c.Reg.SetER(0, 0x3000)
	if err := bus.WriteU16(0x3000, 0xBEEF); err != nil {
		t.Fatalf("seed memory: %v", err)
	}

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step load: %v", err)
	}
	if got := c.Reg.ReadRnW(1); got != 0xBEEF {
		t.Errorf("R1 = %#x, want 0xBEEF", got)
	}

	// MOV.W R1,@ER2 : dir=1 (store), ern=2, reg=1.
	writeWord(bus, 2, 0x69A1)
	c.Reg.SetER(2, 0x4000)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step store: %v", err)
	}
	got, err := bus.ReadU16(0x4000)
	if err != nil {
		t.Fatalf("ReadU16: %v", err)
	}
	if got != 0xBEEF {
		t.Errorf("[0x4000] = %#x, want 0xBEEF", got)
	}
}
