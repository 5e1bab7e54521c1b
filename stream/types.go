// Package stream frames JTOO documents for transport over a byte stream.
//
// Each frame is a one-line text header followed by the payload:
//
//	@frame{v=1 seq=N kind=K len=N [crc=X] [zip=C raw=N] [final=true]}\n
//	<payload bytes>\n
//
// The header gives message boundaries, ordering, optional CRC-32
// integrity and optional zstd or LZ4 payload compression. len counts the
// bytes on the wire; raw is the uncompressed length and crc covers the
// uncompressed payload. It is not part of the JTOO text; the payload is a complete
// document passed to jtoo.Parse unchanged.
package stream

import (
	"fmt"
	"hash/crc32"
)

// Version is the framing protocol version.
const Version uint8 = 1

// FrameKind indicates what a frame's payload carries.
type FrameKind uint8

const (
	KindDoc  FrameKind = 0 // JTOO document
	KindAck  FrameKind = 1 // Acknowledgement, no payload
	KindErr  FrameKind = 2 // Error text from the peer
	KindPing FrameKind = 3 // Keepalive
)

var kindNames = [...]string{
	KindDoc:  "doc",
	KindAck:  "ack",
	KindErr:  "err",
	KindPing: "ping",
}

// String returns the kind name.
func (k FrameKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("unknown(%d)", k)
}

// ParseKind parses a kind name.
func ParseKind(s string) (FrameKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return FrameKind(k), true
		}
	}
	return 0, false
}

// Frame is a single framed payload.
type Frame struct {
	Version uint8
	Seq     uint64 // monotonic per writer
	Kind    FrameKind
	Payload []byte

	CRC         *uint32     // nil if not present
	Compression Compression // as read; on write, requested if the Writer sets none
	Final       bool        // last frame of the stream
}

// MaxPayloadSize is the default maximum payload size (64 MiB).
const MaxPayloadSize = 64 * 1024 * 1024

var crcTable = crc32.MakeTable(crc32.IEEE)

// ComputeCRC computes the CRC-32 IEEE of a payload.
func ComputeCRC(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}

// HeaderError reports a malformed frame header.
type HeaderError struct {
	Reason string
	Seq    uint64 // sequence number of the last good frame
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("stream: %s (after seq %d)", e.Reason, e.Seq)
}

// CRCMismatchError is returned when CRC verification fails.
type CRCMismatchError struct {
	Seq      uint64
	Expected uint32
	Got      uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("stream: frame %d: CRC mismatch: expected %08x, got %08x", e.Seq, e.Expected, e.Got)
}
