// Command picvm loads Intel-HEX firmware images and runs them against the
// PIC16F88 engine, either headlessly, interactively, or just disassembled.
// Grounded on oisee-z80-optimizer's cmd/z80opt/main.go: one root cobra.Command,
// one subcommand per mode, flags registered with cmd.Flags().XxxVar.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"picvm/asmhex"
	"picvm/flash"
	"picvm/inst"
	"picvm/vm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "picvm",
		Short: "PIC16F88 instruction-set simulator",
	}

	var steps int
	runCmd := &cobra.Command{
		Use:   "run [firmware.hex]",
		Short: "Run a firmware image headlessly until it faults or the step limit is reached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadVM(args[0])
			if err != nil {
				return err
			}

			for i := 0; i < steps; i++ {
				if err := m.Step(vm.NopTicker{}); err != nil {
					fmt.Printf("halted after %d steps: %v\n", i, err)
					return err
				}
			}
			fmt.Printf("ran %d steps, pc=0x%04x, w=0x%02x\n", steps, m.PC(), m.W())
			return nil
		},
	}
	runCmd.Flags().IntVar(&steps, "steps", 10_000, "maximum instructions to execute before stopping")

	debugCmd := &cobra.Command{
		Use:   "debug [firmware.hex]",
		Short: "Launch the interactive step debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadVM(args[0])
			if err != nil {
				return err
			}
			return m.Debug()
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [firmware.hex]",
		Short: "Disassemble a firmware image, one line per instruction word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			data, err := asmhex.Decode(f)
			if err != nil {
				return err
			}

			for i := 0; i+1 < len(data); i += 2 {
				word := uint16(data[i]) | uint16(data[i+1])<<8
				in, ok := inst.Decode(word)
				if !ok {
					fmt.Printf("%04x: .word 0x%04x (undecodable)\n", i, word)
					continue
				}
				fmt.Printf("%04x: %s\n", i, in.String())
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, debugCmd, decodeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadVM reads an Intel-HEX file and constructs a VM from it, failing if the
// decoded image doesn't fit in program memory.
func loadVM(path string) (*vm.VM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := asmhex.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if len(data) > flash.Size {
		return nil, fmt.Errorf("%s decodes to %d bytes, exceeds %d-byte program memory", path, len(data), flash.Size)
	}

	var image flash.Image
	copy(image[:], data)
	return vm.New(image), nil
}
