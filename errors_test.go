package h8

import (
	"errors"
	"testing"
)

func TestBusAccessErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	err := &BusAccessError{Addr: 0x1000, Size: Word, Op: "read", Err: inner}

	if !errors.Is(err, inner) {
		t.Fatal("errors.Is should find the wrapped cause")
	}
}

func TestInstrContextChains(t *testing.T) {
	inner := &UnimplementedOpcodeError{Opcode: 0xFFFF, PC: 0x100}
	wrapped := instrContext("NOP", 0x100, 0xFFFF, inner)

	var target *UnimplementedOpcodeError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should recover the UnimplementedOpcodeError")
	}
	if target.PC != 0x100 {
		t.Errorf("PC = %#x, want 0x100", target.PC)
	}
}
