// Command h8emu loads an H8/300H program image and runs it on the h8
// package's instruction-set core, printing the final register state and
// cycle-state accounting on normal exit.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	h8 "github.com/Kogepan25629/Koge29-H8-300H-Emulator"
)

func main() {
	var (
		flat     bool
		loadAddr uint32
		exitAddr uint32
		trace    bool
		dump     bool
	)

	root := &cobra.Command{
		Use:   "h8emu <image>",
		Short: "Run an H8/300H program image to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var image *h8.LoadedImage
			if flat {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("h8emu: read %s: %w", path, err)
				}
				image = h8.LoadFlatBinary(data, loadAddr, exitAddr)
			} else {
				loaded, err := h8.LoadELF(path)
				if err != nil {
					return err
				}
				image = loaded
			}

			bus := h8.NewFlatBus()
			bus.LoadImage(image.Addr, image.Bytes)
			locked := h8.NewLockedBus(bus)

			h8.EnablePrintOpcode.Store(trace)

			cpu := h8.New(locked, image.ExitAddr)
			if err := cpu.Run(); err != nil {
				return fmt.Errorf("h8emu: %w", err)
			}

			if dump {
				spew.Dump(cpu)
			}
			return nil
		},
	}

	root.Flags().BoolVar(&flat, "flat", false, "treat the image as a raw memory dump instead of an ELF binary")
	root.Flags().Uint32Var(&loadAddr, "load-addr", h8.MemoryStartAddr, "load address for --flat images")
	root.Flags().Uint32Var(&exitAddr, "exit-addr", 0, "exit-trap address for --flat images (required with --flat)")
	root.Flags().BoolVar(&trace, "trace", false, "print each decoded instruction as it executes")
	root.Flags().BoolVar(&dump, "dump", false, "pretty-print the final CPU state with go-spew on exit")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
