package stream

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Neumenon/jtoo/jtoo"
)

// Writer writes frames to an io.Writer. It is not safe for concurrent use.
type Writer struct {
	w           io.Writer
	withCRC     bool
	compression Compression
	seq         uint64
}

// NewWriter creates a frame writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewWriterWithCRC creates a writer that adds a CRC to each non-empty frame.
func NewWriterWithCRC(w io.Writer) *Writer {
	return &Writer{w: w, withCRC: true}
}

// SetCompression compresses later payloads of at least 64 bytes with c.
// Payloads that do not shrink are written uncompressed.
func (w *Writer) SetCompression(c Compression) {
	w.compression = c
}

// WriteFrame writes f as given. The writer's sequence continues from f.Seq.
func (w *Writer) WriteFrame(f *Frame) error {
	var header strings.Builder
	header.WriteString("@frame{v=")
	if f.Version == 0 {
		header.WriteByte('1')
	} else {
		header.WriteString(strconv.Itoa(int(f.Version)))
	}
	header.WriteString(" seq=")
	header.WriteString(strconv.FormatUint(f.Seq, 10))
	header.WriteString(" kind=")
	header.WriteString(f.Kind.String())
	wire, zip, err := w.wirePayload(f)
	if err != nil {
		return errors.Wrapf(err, "frame %d", f.Seq)
	}
	header.WriteString(" len=")
	header.WriteString(strconv.Itoa(len(wire)))

	crc := f.CRC
	if crc == nil && w.withCRC && len(f.Payload) > 0 {
		computed := ComputeCRC(f.Payload)
		crc = &computed
	}
	if crc != nil {
		fmt.Fprintf(&header, " crc=%08x", *crc)
	}
	if zip != CompressionNone {
		header.WriteString(" zip=")
		header.WriteString(zip.String())
		header.WriteString(" raw=")
		header.WriteString(strconv.Itoa(len(f.Payload)))
	}
	if f.Final {
		header.WriteString(" final=true")
	}
	header.WriteString("}\n")

	if _, err := io.WriteString(w.w, header.String()); err != nil {
		return errors.Wrap(err, "write header")
	}
	if len(wire) > 0 {
		if _, err := w.w.Write(wire); err != nil {
			return errors.Wrap(err, "write payload")
		}
	}
	if _, err := io.WriteString(w.w, "\n"); err != nil {
		return errors.Wrap(err, "write trailing newline")
	}
	w.seq = f.Seq + 1
	return nil
}

// wirePayload returns the bytes to write for f and the compression used.
func (w *Writer) wirePayload(f *Frame) ([]byte, Compression, error) {
	c := f.Compression
	if c == CompressionNone {
		c = w.compression
	}
	if c == CompressionNone || len(f.Payload) < minCompressSize {
		return f.Payload, CompressionNone, nil
	}
	wire, err := compress(f.Payload, c)
	if err == errIncompressible {
		return f.Payload, CompressionNone, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return wire, c, nil
}

func (w *Writer) next(kind FrameKind, payload []byte, final bool) error {
	return w.WriteFrame(&Frame{
		Version: Version,
		Seq:     w.seq,
		Kind:    kind,
		Payload: payload,
		Final:   final,
	})
}

// WriteDoc writes a doc frame holding already encoded JTOO text.
func (w *Writer) WriteDoc(payload []byte) error {
	return w.next(KindDoc, payload, false)
}

// WriteValue emits v and writes it as a doc frame.
func (w *Writer) WriteValue(v *jtoo.Value) error {
	text, err := jtoo.Emit(v)
	if err != nil {
		return errors.Wrapf(err, "frame %d", w.seq)
	}
	return w.WriteDoc([]byte(text))
}

// WriteErr writes an error frame.
func (w *Writer) WriteErr(msg string) error {
	return w.next(KindErr, []byte(msg), false)
}

// WriteAck writes an acknowledgement frame.
func (w *Writer) WriteAck() error {
	return w.next(KindAck, nil, false)
}

// WritePing writes a keepalive frame.
func (w *Writer) WritePing() error {
	return w.next(KindPing, nil, false)
}

// WriteFinal writes an empty ack frame marking the end of the stream.
func (w *Writer) WriteFinal() error {
	return w.next(KindAck, nil, true)
}
