package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Neumenon/jtoo/bridge"
	"github.com/Neumenon/jtoo/jtoo"
)

// parseDoc parses a JTOO document, ignoring surrounding whitespace such as
// a trailing newline.
func parseDoc(data []byte, maxDepth int) (*jtoo.Value, error) {
	v, err := jtoo.ParseWithOptions(bytes.TrimSpace(data), jtoo.ParseOptions{MaxDepth: maxDepth})
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed document", "kind", v.Kind(), "len", v.Len(), "bytes", len(data))
	return v, nil
}

func newCheckCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a JTOO document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := parseDoc(data, maxDepth)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", v.Kind())
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum list nesting (0 for the default)")
	return cmd
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-emit a JTOO document in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := parseDoc(data, 0)
			if err != nil {
				return err
			}
			text, err := jtoo.Emit(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newToJSONCmd() *cobra.Command {
	var extended, pretty, noColor bool
	cmd := &cobra.Command{
		Use:   "to-json [file]",
		Short: "Convert a JTOO document to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := parseDoc(data, 0)
			if err != nil {
				return err
			}
			out, err := jtoo.ToJSONWithOpts(v, jtoo.BridgeOpts{Extended: extended})
			if err != nil {
				return errors.Wrap(err, "to-json")
			}
			if pretty {
				f := prettyjson.NewFormatter()
				f.DisabledColor = noColor
				if out, err = f.Format(out); err != nil {
					return errors.Wrap(err, "pretty print")
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "wrap bytes, decimals, dates and timestamps in $jtoo markers")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent and colorize the output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors with --pretty")
	return cmd
}

func newFromJSONCmd() *cobra.Command {
	var extended bool
	cmd := &cobra.Command{
		Use:   "from-json [file]",
		Short: "Convert JSON to a canonical JTOO document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := jtoo.FromJSONWithOpts(data, jtoo.BridgeOpts{Extended: extended})
			if err != nil {
				return errors.Wrap(err, "from-json")
			}
			text, err := jtoo.Emit(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "decode $jtoo marker objects")
	return cmd
}

type format struct {
	decode func([]byte) (*jtoo.Value, error)
	encode func(*jtoo.Value) ([]byte, error)
}

func withNewline(encode func(*jtoo.Value) ([]byte, error)) func(*jtoo.Value) ([]byte, error) {
	return func(v *jtoo.Value) ([]byte, error) {
		b, err := encode(v)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}

var extendedJSON = jtoo.BridgeOpts{Extended: true}

// formats are the document formats convert accepts. JSON uses extended
// markers so every kind survives the conversion.
var formats = map[string]format{
	"jtoo": {
		decode: func(b []byte) (*jtoo.Value, error) { return parseDoc(b, 0) },
		encode: withNewline(func(v *jtoo.Value) ([]byte, error) {
			text, err := jtoo.Emit(v)
			return []byte(text), err
		}),
	},
	"json": {
		decode: func(b []byte) (*jtoo.Value, error) { return jtoo.FromJSONWithOpts(b, extendedJSON) },
		encode: withNewline(func(v *jtoo.Value) ([]byte, error) { return jtoo.ToJSONWithOpts(v, extendedJSON) }),
	},
	"yaml":    {decode: bridge.FromYAML, encode: bridge.ToYAML},
	"cbor":    {decode: bridge.FromCBOR, encode: bridge.ToCBOR},
	"msgpack": {decode: bridge.FromMsgpack, encode: bridge.ToMsgpack},
}

func formatNames() string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupFormat(name string) (format, error) {
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return format{}, errors.Errorf("unknown format %q (want one of %s)", name, formatNames())
	}
	return f, nil
}

func newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert --from F --to T [file]",
		Short: "Convert a document between formats",
		Long:  "Convert a document between formats: " + formatNames() + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := lookupFormat(from)
			if err != nil {
				return err
			}
			dst, err := lookupFormat(to)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := src.decode(data)
			if err != nil {
				return errors.Wrapf(err, "decode %s", from)
			}
			out, err := dst.encode(v)
			if err != nil {
				return errors.Wrapf(err, "encode %s", to)
			}
			logger.Debug("converted", "from", from, "to", to, "in", len(data), "out", len(out))
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "jtoo", "input format")
	cmd.Flags().StringVar(&to, "to", "json", "output format")
	return cmd
}
