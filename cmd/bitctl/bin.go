package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/pkg/bits"
)

var (
	binWidth  int
	binSigned bool
)

func init() {
	cmd := newBinCmd()
	cmd.Flags().IntVarP(&binWidth, "width", "w", 32, "Number of low bits to render (1-32)")
	cmd.Flags().BoolVarP(&binSigned, "signed", "s", false, "Treat the value as a signed 32-bit integer")
	rootCmd.AddCommand(cmd)
}

func newBinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bin <value>",
		Short: "Render a value as fixed-width binary",
		Long: `The bin command renders the low bits of a 32-bit value as "0b" followed by
exactly --width binary digits.

Unsigned values that need more than --width bits are rejected. With --signed
the two's-complement pattern is truncated to --width bits instead.

Example:
  bitctl bin 18 --width 8
  bitctl bin 0xFF78 -w 16
  bitctl bin --signed -w 8 -- -128`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBin(args)
		},
	}
	return cmd
}

func runBin(args []string) error {
	w, err := toWidth(binWidth)
	if err != nil {
		return err
	}

	out := bits.NewBuffer(bits.BinarySize(w) + 1)
	var n int
	if binSigned {
		v, perr := parseInt32(args[0])
		if perr != nil {
			return perr
		}
		n, err = bits.FormatSignedBinary(v, w, out)
	} else {
		v, perr := parseUint32(args[0])
		if perr != nil {
			return perr
		}
		n, err = bits.FormatUnsignedBinary(v, w, out)
	}
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", args[0], err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":  args[0],
			"width":  binWidth,
			"signed": binSigned,
			"text":   out.String(),
			"length": n,
		})
	}
	printInfo("%s\n", out.String())
	return nil
}
