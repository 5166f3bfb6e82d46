package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/pkg/bits"
)

var hexWidth int

func init() {
	cmd := newHexCmd()
	cmd.Flags().IntVarP(&hexWidth, "width", "w", 32, "Number of low bits to render (4, 8, 16 or 32)")
	rootCmd.AddCommand(cmd)
}

func newHexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex <value>",
		Short: "Render a value as fixed-width uppercase hex",
		Long: `The hex command renders the low --width bits of a 32-bit value as "0x"
followed by one uppercase digit per nibble. Bits above --width are dropped.

Example:
  bitctl hex 18 --width 8
  bitctl hex 65400 -w 16
  bitctl hex 0x1FF -w 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHex(args)
		},
	}
	return cmd
}

func runHex(args []string) error {
	w, err := toWidth(hexWidth)
	if err != nil {
		return err
	}
	v, err := parseUint32(args[0])
	if err != nil {
		return err
	}

	out := bits.NewBuffer(bits.HexSize(w) + 1)
	n, err := bits.FormatUnsignedHex(v, w, out)
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", args[0], err)
	}
	if v&w.Mask() != v {
		printVerbose("Note: bits above %d were masked off\n", hexWidth)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":  args[0],
			"width":  hexWidth,
			"text":   out.String(),
			"length": n,
		})
	}
	printInfo("%s\n", out.String())
	return nil
}
