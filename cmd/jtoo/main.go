// jtoo - JTOO codec CLI tool
//
// Usage:
//
//	jtoo check [file]                        Validate a JTOO document
//	jtoo fmt [file]                          Re-emit a document in canonical form
//	jtoo to-json [--extended] [--pretty]     Convert JTOO to JSON
//	jtoo from-json [--extended] [file]       Convert JSON to JTOO
//	jtoo convert --from F --to T [file]      Convert between jtoo, json, yaml, cbor, msgpack
//	jtoo frame [--crc] [--zip Z] [file]      Wrap one document per line into stream frames
//	jtoo unframe [--no-verify] [file]        Print the documents of a frame stream
//	jtoo version                             Print version info
//
// If no file is given, or the file is "-", input is read from stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	libVersion  = "0.1.0"
	wireVersion = "1"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "jtoo",
		Short:         "JTOO codec command line utility",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decoding details to stderr")

	root.AddCommand(
		newCheckCmd(),
		newFmtCmd(),
		newToJSONCmd(),
		newFromJSONCmd(),
		newConvertCmd(),
		newFrameCmd(),
		newUnframeCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jtoo %s (wire v%s)\n", libVersion, wireVersion)
		},
	}
}

// readInput reads the named file, or the command's stdin for no argument
// or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(args[0])
	return data, errors.Wrapf(err, "read %s", args[0])
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jtoo:", err)
		os.Exit(1)
	}
}
