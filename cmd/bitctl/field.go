package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/pkg/bits"
)

var fieldBits int

func init() {
	cmd := newFieldCmd()
	cmd.Flags().IntVarP(&fieldBits, "bits", "n", 3, "Field length in bits (1-32)")
	rootCmd.AddCommand(cmd)
}

func newFieldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field <value> <start>",
		Short: "Extract a bit field",
		Long: `The field command extracts --bits consecutive bits of a 32-bit value,
starting at bit <start>, and prints them in decimal and binary. Bit <start>
becomes bit 0 of the result.

Example:
  bitctl field 29495 6
  bitctl field 0xDEADBEEF 16 --bits 16`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runField(args)
		},
	}
	return cmd
}

func runField(args []string) error {
	v, err := parseUint32(args[0])
	if err != nil {
		return err
	}
	start, err := parseIndex(args[1], "start bit")
	if err != nil {
		return err
	}

	var got uint32
	if fieldBits == 3 {
		got, err = bits.ExtractThreeBits(v, start)
	} else {
		got, err = bits.ExtractField(v, start, fieldBits)
	}
	if err != nil {
		return fmt.Errorf("failed to extract %d bits at %d: %w", fieldBits, start, err)
	}

	// fieldBits is 1..32 once extraction succeeded.
	w := bits.Width(fieldBits)
	out := bits.NewBuffer(bits.BinarySize(w) + 1)
	if _, err := bits.FormatUnsignedBinary(got, w, out); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":  args[0],
			"start":  start,
			"bits":   fieldBits,
			"result": got,
			"binary": out.String(),
		})
	}
	printInfo("%d %s\n", got, out.String())
	return nil
}
