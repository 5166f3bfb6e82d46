package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/pkg/bits"
)

func init() {
	rootCmd.AddCommand(newBitCmd())
}

func newBitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bit <value> <index> <clear|set|toggle>",
		Short: "Clear, set or toggle a single bit",
		Long: `The bit command applies one operation to bit <index> (0-31) of a 32-bit
value and prints the result in decimal and hex.

Example:
  bitctl bit 0 3 set
  bitctl bit 29495 5 toggle
  bitctl bit 0xFFFFFFFF 31 clear`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBit(args)
		},
	}
	return cmd
}

func runBit(args []string) error {
	v, err := parseUint32(args[0])
	if err != nil {
		return err
	}
	index, err := parseIndex(args[1], "bit index")
	if err != nil {
		return err
	}
	op, err := bits.ParseOperation(args[2])
	if err != nil {
		return err
	}

	got, err := bits.TwiddleBit(v, index, op)
	if err != nil {
		return fmt.Errorf("failed to %s bit %d: %w", op, index, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":  args[0],
			"bit":    index,
			"op":     op.String(),
			"result": got,
			"hex":    hexWord(got),
		})
	}
	printInfo("%d %s\n", got, hexWord(got))
	return nil
}
