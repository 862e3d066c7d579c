package h8

import "testing"

func TestSizeMask(t *testing.T) {
	cases := map[Size]uint32{Byte: 0xFF, Word: 0xFFFF, Long: 0xFFFFFFFF}
	for sz, want := range cases {
		if got := sz.Mask(); got != want {
			t.Errorf("%s.Mask() = %#x, want %#x", sz, got, want)
		}
	}
}

func TestSizeMSB(t *testing.T) {
	cases := map[Size]uint32{Byte: 0x80, Word: 0x8000, Long: 0x80000000}
	for sz, want := range cases {
		if got := sz.MSB(); got != want {
			t.Errorf("%s.MSB() = %#x, want %#x", sz, got, want)
		}
	}
}

func TestSizeHalfCarryMask(t *testing.T) {
	cases := map[Size]uint32{Byte: 0x08, Word: 0x800, Long: 0x8000000}
	for sz, want := range cases {
		if got := sz.HalfCarryMask(); got != want {
			t.Errorf("%s.HalfCarryMask() = %#x, want %#x", sz, got, want)
		}
	}
}
