package stream

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Compression identifies how a frame payload is compressed on the wire.
// It appears in the header as zip=<name>, together with raw=<N>, the
// uncompressed length.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

var compressionNames = [...]string{
	CompressionNone: "none",
	CompressionZstd: "zstd",
	CompressionLZ4:  "lz4",
}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return "unknown"
}

// ParseCompression parses a compression name.
func ParseCompression(s string) (Compression, error) {
	for c, name := range compressionNames {
		if name == s {
			return Compression(c), nil
		}
	}
	return 0, errors.Errorf("unknown compression %q", s)
}

// minCompressSize is the smallest payload the Writer tries to compress.
const minCompressSize = 64

var errIncompressible = errors.New("payload is incompressible")

var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("stream: zstd encoder initialization failed: " + err.Error())
	}
}

// compress returns the wire form of payload, or errIncompressible when
// compressing would not make it smaller.
func compress(payload []byte, c Compression) ([]byte, error) {
	var out []byte
	switch c {
	case CompressionZstd:
		out = zstdEncoder.EncodeAll(payload, nil)
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, dst, nil)
		if err != nil {
			return nil, errors.Wrap(err, "lz4 compress")
		}
		out = dst[:n]
	default:
		return nil, errors.Errorf("unsupported compression %s", c)
	}
	if len(out) == 0 || len(out) >= len(payload) {
		return nil, errIncompressible
	}
	return out, nil
}

// decompress restores a payload of exactly rawLen bytes.
func decompress(wire []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionZstd:
		return decompressZstd(wire, rawLen)
	case CompressionLZ4:
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(wire, out)
		if err != nil {
			return nil, errors.Wrap(err, "lz4 decompress")
		}
		if n != rawLen {
			return nil, errors.Errorf("lz4 decompress: got %d bytes, expected %d", n, rawLen)
		}
		return out, nil
	}
	return nil, errors.Errorf("unsupported compression %s", c)
}

// decompressZstd streams at most rawLen bytes out of wire. A payload that
// inflates past rawLen fails after one extra byte instead of being
// decoded in full.
func decompressZstd(wire []byte, rawLen int) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(wire),
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
		zstd.WithDecoderMaxMemory(MaxPayloadSize))
	if err != nil {
		return nil, errors.Wrap(err, "zstd decompress")
	}
	defer dec.Close()

	out := make([]byte, rawLen)
	if _, err := io.ReadFull(dec, out); err != nil {
		return nil, errors.Wrapf(err, "zstd decompress: expected %d bytes", rawLen)
	}
	var extra [1]byte
	if n, _ := dec.Read(extra[:]); n > 0 {
		return nil, errors.Errorf("zstd decompress: payload exceeds %d bytes", rawLen)
	}
	return out, nil
}
