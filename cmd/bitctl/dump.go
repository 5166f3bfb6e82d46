package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/internal/buf"
	"github.com/joshuapare/bitkit/pkg/bits"
)

var (
	dumpValue  string
	dumpOffset int
	dumpLength int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpValue, "value", "", "Dump the in-memory bytes of a 32-bit value instead of a file")
	cmd.Flags().IntVar(&dumpOffset, "offset", 0, "Start dumping at this byte offset")
	cmd.Flags().IntVar(&dumpLength, "length", -1, "Dump at most this many bytes (-1 = to the end)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Hex dump a file, stdin, or a value",
		Long: `The dump command prints 16 bytes per row, each row prefixed by its offset
in hex. Without a file argument it reads standard input. With --value it
dumps the four bytes a 32-bit value occupies in memory on this machine.

Row offsets count from the start of the dumped window, so the first row is
always 00000000. With --offset, add the window start (reported by --verbose)
to get a position in the input.

Example:
  bitctl dump firmware.bin --offset 0x100 --length 64
  bitctl dump --value 0x12345678
  echo hello | bitctl dump`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.InOrStdin(), args)
		},
	}
	return cmd
}

func runDump(stdin io.Reader, args []string) error {
	source, data, err := dumpInput(stdin, args)
	if err != nil {
		return err
	}

	window, err := dumpWindow(data)
	if err != nil {
		return err
	}
	printVerbose("Dumping %d of %d bytes from %s, window starts at 0x%X\n",
		len(window), len(data), source, dumpOffset)

	size, err := bits.HexDumpSize(len(window))
	if err != nil {
		return fmt.Errorf("failed to size dump: %w", err)
	}
	out, err := bits.HexDump(window, bits.NewBuffer(size+1))
	if err != nil {
		return fmt.Errorf("failed to dump %s: %w", source, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"source": source,
			"offset": dumpOffset,
			"bytes":  len(window),
			"dump":   out.String(),
		})
	}
	printInfo("%s", out.String())
	return nil
}

func dumpInput(stdin io.Reader, args []string) (string, []byte, error) {
	switch {
	case dumpValue != "" && len(args) > 0:
		return "", nil, fmt.Errorf("--value cannot be combined with a file argument")
	case dumpValue != "":
		data, err := valueBytes(dumpValue)
		if err != nil {
			return "", nil, err
		}
		return "value " + dumpValue, data, nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return args[0], data, nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", data, nil
	}
}

func dumpWindow(data []byte) ([]byte, error) {
	length := dumpLength
	if length < 0 {
		length = len(data) - dumpOffset
	}
	window, ok := buf.Slice(data, dumpOffset, length)
	if !ok {
		return nil, fmt.Errorf("range offset=%d length=%d outside %d bytes", dumpOffset, dumpLength, len(data))
	}
	return window, nil
}

// valueBytes returns the host-order bytes of a 32-bit value. Negative values
// are stored as their two's-complement word.
func valueBytes(s string) ([]byte, error) {
	if v, err := parseUint32(s); err == nil {
		return buf.NativeU32(v), nil
	}
	v, err := parseInt32(s)
	if err != nil {
		return nil, err
	}
	return buf.NativeI32(v), nil
}
