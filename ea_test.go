package h8

import "testing"

// TestPreDecPostIncRoundTrip checks spec.md §8(a)'s round-trip law: a
// @-ERn write followed by a @ERn+ read from the same starting ERn value
// observes the written value and leaves ERn back where it started.
func TestPreDecPostIncRoundTrip(t *testing.T) {
	bus := NewFlatBus()
	c := New(bus, 0)
	c.Reg.SetER(0, 0x1000)

	if err := c.writeErnPreDecL(0, 0xDEADBEEF); err != nil {
		t.Fatalf("writeErnPreDecL: %v", err)
	}
	if got := c.Reg.ER(0); got != 0x1000-4 {
		t.Fatalf("ER0 after pre-dec = %#x, want %#x", got, 0x1000-4)
	}

	got, err := c.readErnPostIncL(0)
	if err != nil {
		t.Fatalf("readErnPostIncL: %v", err)
	}
	if got != 0xDEADBEEF {
		t.Errorf("read value = %#x, want 0xDEADBEEF", got)
	}
	if back := c.Reg.ER(0); back != 0x1000 {
		t.Errorf("ER0 after round trip = %#x, want 0x1000", back)
	}
}

func TestAddrDisp16Wraps(t *testing.T) {
	addr, err := addrDisp16(0x1000, 0xFFFF) // disp = -1
	if err != nil {
		t.Fatalf("addrDisp16: %v", err)
	}
	if addr != 0x0FFF {
		t.Errorf("addr = %#x, want 0xFFF", addr)
	}
}

func TestAbs16SignExtends(t *testing.T) {
	if got := abs16Addr(0x8000); got != 0xFF8000 {
		t.Errorf("abs16Addr(0x8000) = %#x, want 0xFF8000", got)
	}
	if got := abs16Addr(0x1234); got != 0x001234 {
		t.Errorf("abs16Addr(0x1234) = %#x, want 0x1234", got)
	}
}

func TestAtErnByteRoundTrip(t *testing.T) {
	bus := NewFlatBus()
	c := New(bus, 0)
	c.Reg.SetER(2, 0x2000)
	if err := c.writeAtErnB(2, 0x42); err != nil {
		t.Fatalf("writeAtErnB: %v", err)
	}
	got, err := c.readAtErnB(2)
	if err != nil {
		t.Fatalf("readAtErnB: %v", err)
	}
	if got != 0x42 {
		t.Errorf("value = %#x, want 0x42", got)
	}
}
