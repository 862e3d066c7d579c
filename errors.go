package h8

import "fmt"

// UnimplementedOpcodeError reports that the decoder reached an opcode it
// does not implement. PC is the address of the primary opcode word
// (reported PC - 2 after fetch), per spec.md §4.3.
type UnimplementedOpcodeError struct {
	Opcode uint16
	PC     uint32
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode [%04x] pc [%06x]", e.Opcode, e.PC)
}

// InvalidRegisterFieldError reports a long-register field with bit 3 set.
// Only the long views (ReadRnL/WriteRnL) return it; the byte and word
// views never fail and pick ERn from the low three bits of any field.
type InvalidRegisterFieldError struct {
	Field uint8
}

func (e *InvalidRegisterFieldError) Error() string {
	return fmt.Sprintf("invalid register field [%x]: long access requires bit 3 clear", e.Field)
}

// BusAccessError reports a word/long access through a bus region that
// rejects it (wait-state or MMIO constraint).
type BusAccessError struct {
	Addr uint32
	Size Size
	Op   string // "read" or "write"
	Err  error
}

func (e *BusAccessError) Error() string {
	return fmt.Sprintf("bus %s error at [%06x] (%s): %v", e.Op, e.Addr, e.Size, e.Err)
}

func (e *BusAccessError) Unwrap() error { return e.Err }

// ArithmeticOverflowError reports a host-level overflow computing an
// effective address: the addend computation failed before masking to 24
// bits, mirroring original_source/src/cpu/addressing_mode/disp.rs's
// checked_add_signed failure path.
type ArithmeticOverflowError struct {
	Base uint32
	Disp int32
}

func (e *ArithmeticOverflowError) Error() string {
	return fmt.Sprintf("attempt to add with overflow [%x + %x]", e.Base, e.Disp)
}

// FetchOutOfRangeError reports an instruction fetch outside
// [MEMORY_START, MEMORY_END].
type FetchOutOfRangeError struct {
	PC uint32
}

func (e *FetchOutOfRangeError) Error() string {
	return fmt.Sprintf("fetch error [pc: %08x]", e.PC)
}

// instrContext wraps err with an identifying frame for the instruction,
// sub-instruction, and operand under execution, building the chain of
// context frames spec.md §7 requires. It mirrors the original Rust
// source's anyhow .with_context(...) convention via fmt.Errorf's %w.
func instrContext(mnemonic string, pc uint32, opcode uint16, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[pc: %08x] %s (opcode1 [%04x]): %w", pc, mnemonic, opcode, err)
}

func operandContext(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}
