package h8

import (
	"debug/elf"
	"fmt"
)

// LoadedImage is a program ready to run: its code/data bytes, the address
// at which they were linked to load, and the resolved address of the
// ___exit symbol the CPU halts at (spec.md §6's exit-trap convention).
type LoadedImage struct {
	Addr     uint32
	Bytes    []byte
	ExitAddr uint32
}

// LoadFlatBinary treats data as a raw memory image to be placed at addr,
// with exitAddr supplied directly by the caller (there is no symbol table
// to resolve it from).
func LoadFlatBinary(data []byte, addr, exitAddr uint32) *LoadedImage {
	return &LoadedImage{Addr: addr, Bytes: data, ExitAddr: exitAddr}
}

// LoadELF loads an ELF image built for the H8/300H target, resolving the
// ___exit symbol's address per spec.md §6. It concatenates every
// PT_LOAD-equivalent allocatable section into a single contiguous image
// starting at the lowest section address, matching how FlatBus.LoadImage
// expects to receive a program.
func LoadELF(path string) (*LoadedImage, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("h8: open ELF %s: %w", path, err)
	}
	defer f.Close()

	syms, err := f.Symbols()
	if err != nil {
		return nil, fmt.Errorf("h8: read symbols in %s: %w", path, err)
	}

	var exitAddr uint32
	found := false
	for _, s := range syms {
		if s.Name == "___exit" {
			exitAddr = uint32(s.Value)
			found = true
			break
		}
		if s.Name == "_exit" && !found {
			exitAddr = uint32(s.Value)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("h8: %s has no ___exit symbol", path)
	}

	var minAddr uint32 = MemoryEndAddr
	var maxAddr uint32
	sections := make([]*elf.Section, 0, len(f.Sections))
	for _, sec := range f.Sections {
		if sec.Flags&elf.SHF_ALLOC == 0 || sec.Size == 0 {
			continue
		}
		sections = append(sections, sec)
		if uint32(sec.Addr) < minAddr {
			minAddr = uint32(sec.Addr)
		}
		if end := uint32(sec.Addr + sec.Size); end > maxAddr {
			maxAddr = end
		}
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("h8: %s has no allocatable sections", path)
	}

	image := make([]byte, maxAddr-minAddr)
	for _, sec := range sections {
		if sec.Type == elf.SHT_NOBITS {
			continue
		}
		data, err := sec.Data()
		if err != nil {
			return nil, fmt.Errorf("h8: read section %s: %w", sec.Name, err)
		}
		copy(image[uint32(sec.Addr)-minAddr:], data)
	}

	return &LoadedImage{Addr: minAddr, Bytes: image, ExitAddr: exitAddr}, nil
}
