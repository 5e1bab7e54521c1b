package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Neumenon/jtoo/jtoo"
	"github.com/Neumenon/jtoo/stream"
)

func newFrameCmd() *cobra.Command {
	var withCRC bool
	var zip string
	cmd := &cobra.Command{
		Use:   "frame [file]",
		Short: "Wrap one JTOO document per input line into stream frames",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compression, err := stream.ParseCompression(zip)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			w := stream.NewWriter(out)
			if withCRC {
				w = stream.NewWriterWithCRC(out)
			}
			w.SetCompression(compression)

			docs := 0
			scanner := bufio.NewScanner(bytes.NewReader(data))
			scanner.Buffer(make([]byte, 64*1024), stream.MaxPayloadSize)
			for line := 1; scanner.Scan(); line++ {
				doc := bytes.TrimSpace(scanner.Bytes())
				if len(doc) == 0 {
					continue
				}
				if _, err := jtoo.Parse(doc); err != nil {
					return errors.Wrapf(err, "line %d", line)
				}
				if err := w.WriteDoc(doc); err != nil {
					return err
				}
				docs++
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "scan input")
			}
			if err := w.WriteFinal(); err != nil {
				return err
			}
			logger.Debug("framed", "docs", docs, "crc", withCRC, "zip", compression)
			return out.Flush()
		},
	}
	cmd.Flags().BoolVar(&withCRC, "crc", false, "add a CRC-32 to every frame")
	cmd.Flags().StringVar(&zip, "zip", "none", "payload compression: none, zstd or lz4")
	return cmd
}

func newUnframeCmd() *cobra.Command {
	var noVerify bool
	cmd := &cobra.Command{
		Use:   "unframe [file]",
		Short: "Print the documents of a frame stream, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts := []stream.ReaderOption{stream.WithDocValidation()}
			if noVerify {
				opts = append(opts, stream.WithoutCRCVerification())
			}
			r := stream.NewReader(bytes.NewReader(data), opts...)
			cursor := stream.NewCursor()
			out := cmd.OutOrStdout()

			for !cursor.Final() {
				frame, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				if err := cursor.Observe(frame); err != nil {
					return err
				}
				logger.Debug("frame", "seq", frame.Seq, "kind", frame.Kind, "len", len(frame.Payload), "zip", frame.Compression, "final", frame.Final)
				switch frame.Kind {
				case stream.KindDoc:
					fmt.Fprintf(out, "%s\n", frame.Payload)
					cursor.Ack(frame.Seq)
				case stream.KindErr:
					return errors.Errorf("frame %d: peer error: %s", frame.Seq, frame.Payload)
				}
			}

			if !cursor.Final() {
				logger.Warn("stream ended without a final frame")
			}
			if hash, ok := cursor.StateHash(); ok {
				last, _ := cursor.LastSeq()
				logger.Info("stream state", "last_seq", last, "sha256", hash)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "accept frames whose CRC does not match")
	return cmd
}
