package stream

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Neumenon/jtoo/jtoo"
)

// Reader reads frames from an io.Reader.
type Reader struct {
	r          *bufio.Reader
	maxPayload int
	verifyCRC  bool
	parseDocs  bool
	lastSeq    uint64
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxPayload sets the maximum payload size (default MaxPayloadSize).
func WithMaxPayload(limit int) ReaderOption {
	return func(r *Reader) {
		r.maxPayload = limit
	}
}

// WithoutCRCVerification accepts frames whose CRC does not match.
func WithoutCRCVerification() ReaderOption {
	return func(r *Reader) {
		r.verifyCRC = false
	}
}

// WithDocValidation makes Next reject doc frames whose payload is not a
// valid JTOO document.
func WithDocValidation() ReaderOption {
	return func(r *Reader) {
		r.parseDocs = true
	}
}

// NewReader creates a frame reader. CRCs are verified by default.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		r:          bufio.NewReader(r),
		maxPayload: MaxPayloadSize,
		verifyCRC:  true,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Next reads the next frame. It returns io.EOF when the input is exhausted
// at a frame boundary.
func (r *Reader) Next() (*Frame, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "read header")
	}

	frame, payloadLen, rawLen, err := r.parseHeader(line)
	if err != nil {
		return nil, err
	}
	if payloadLen > r.maxPayload || rawLen > r.maxPayload {
		return nil, r.headerErr("payload too large: " + strconv.Itoa(max(payloadLen, rawLen)))
	}
	if payloadLen > 0 {
		frame.Payload = make([]byte, payloadLen)
		if _, err := io.ReadFull(r.r, frame.Payload); err != nil {
			return nil, errors.Wrapf(err, "read payload of frame %d", frame.Seq)
		}
	}

	// The trailing newline is optional at EOF.
	if b, err := r.r.ReadByte(); err == nil && b != '\n' {
		_ = r.r.UnreadByte()
	}

	if frame.Compression != CompressionNone {
		if frame.Payload, err = decompress(frame.Payload, frame.Compression, rawLen); err != nil {
			return nil, errors.Wrapf(err, "frame %d", frame.Seq)
		}
	}
	if r.verifyCRC && frame.CRC != nil {
		if got := ComputeCRC(frame.Payload); got != *frame.CRC {
			return nil, &CRCMismatchError{Seq: frame.Seq, Expected: *frame.CRC, Got: got}
		}
	}
	if r.parseDocs && frame.Kind == KindDoc {
		if _, err := jtoo.Parse(frame.Payload); err != nil {
			return nil, errors.Wrapf(err, "frame %d", frame.Seq)
		}
	}
	r.lastSeq = frame.Seq
	return frame, nil
}

// NextValue reads frames until the next doc frame and parses its payload.
// Ack, ping and err frames are skipped; an err frame's text is returned as
// an error.
func (r *Reader) NextValue() (*jtoo.Value, error) {
	for {
		frame, err := r.Next()
		if err != nil {
			return nil, err
		}
		switch frame.Kind {
		case KindDoc:
			v, err := jtoo.Parse(frame.Payload)
			if err != nil {
				return nil, errors.Wrapf(err, "frame %d", frame.Seq)
			}
			return v, nil
		case KindErr:
			return nil, errors.Errorf("peer error in frame %d: %s", frame.Seq, frame.Payload)
		}
		if frame.Final {
			return nil, io.EOF
		}
	}
}

func (r *Reader) headerErr(reason string) error {
	return &HeaderError{Reason: reason, Seq: r.lastSeq}
}

func (r *Reader) parseHeader(line string) (*Frame, int, int, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "@frame{") || !strings.HasSuffix(line, "}") {
		return nil, 0, 0, r.headerErr("expected @frame{...}")
	}

	frame := &Frame{Version: Version}
	payloadLen, rawLen := -1, -1
	for _, pair := range strings.Fields(line[len("@frame{") : len(line)-1]) {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, 0, 0, r.headerErr("malformed field " + strconv.Quote(pair))
		}
		switch key {
		case "v":
			v, err := strconv.ParseUint(val, 10, 8)
			if err != nil || uint8(v) != Version {
				return nil, 0, 0, r.headerErr("unsupported version " + val)
			}
			frame.Version = uint8(v)
		case "seq":
			seq, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return nil, 0, 0, r.headerErr("invalid seq")
			}
			frame.Seq = seq
		case "kind":
			kind, ok := ParseKind(val)
			if !ok {
				return nil, 0, 0, r.headerErr("invalid kind " + val)
			}
			frame.Kind = kind
		case "len":
			l, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return nil, 0, 0, r.headerErr("invalid len")
			}
			payloadLen = int(l)
		case "crc":
			if len(val) != 8 {
				return nil, 0, 0, r.headerErr("invalid crc " + val)
			}
			crc, err := strconv.ParseUint(val, 16, 32)
			if err != nil {
				return nil, 0, 0, r.headerErr("invalid crc " + val)
			}
			c := uint32(crc)
			frame.CRC = &c
		case "zip":
			c, err := ParseCompression(val)
			if err != nil {
				return nil, 0, 0, r.headerErr("invalid zip " + val)
			}
			frame.Compression = c
		case "raw":
			l, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return nil, 0, 0, r.headerErr("invalid raw")
			}
			rawLen = int(l)
		case "final":
			frame.Final = val == "true"
		}
	}
	if payloadLen < 0 {
		return nil, 0, 0, r.headerErr("missing len")
	}
	if frame.Compression != CompressionNone && rawLen < 0 {
		return nil, 0, 0, r.headerErr("missing raw")
	}
	return frame, payloadLen, rawLen, nil
}

// ReadAll reads frames until EOF.
func (r *Reader) ReadAll() ([]*Frame, error) {
	var frames []*Frame
	for {
		frame, err := r.Next()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, frame)
	}
}
