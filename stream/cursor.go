package stream

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// SeqError is returned by Cursor.Observe for a frame out of sequence.
type SeqError struct {
	Expected uint64
	Got      uint64
}

func (e *SeqError) Error() string {
	if e.Got < e.Expected {
		return fmt.Sprintf("stream: duplicate or reordered frame: expected seq %d, got %d", e.Expected, e.Got)
	}
	return fmt.Sprintf("stream: sequence gap: expected seq %d, got %d", e.Expected, e.Got)
}

// Cursor tracks the receive side of one stream: the sequence position,
// which frames were acknowledged, and a SHA-256 of the last document.
// It is safe for concurrent use.
type Cursor struct {
	mu sync.Mutex

	started   bool
	firstSeq  uint64
	lastSeq   uint64
	lastAcked uint64
	acked     bool
	state     [32]byte
	hasState  bool
	final     bool
}

// NewCursor creates a cursor expecting any starting sequence number.
func NewCursor() *Cursor {
	return &Cursor{}
}

// Observe records frame, which must directly follow the previous one.
func (c *Cursor) Observe(frame *Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.final {
		return fmt.Errorf("stream: frame %d after final frame", frame.Seq)
	}
	if c.started && frame.Seq != c.lastSeq+1 {
		return &SeqError{Expected: c.lastSeq + 1, Got: frame.Seq}
	}
	if !c.started {
		c.started, c.firstSeq = true, frame.Seq
	}
	c.lastSeq = frame.Seq
	if frame.Kind == KindDoc {
		c.state = sha256.Sum256(frame.Payload)
		c.hasState = true
	}
	if frame.Final {
		c.final = true
	}
	return nil
}

// Ack marks every frame up to seq as acknowledged.
func (c *Cursor) Ack(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.acked || seq > c.lastAcked {
		c.lastAcked, c.acked = seq, true
	}
}

// Pending returns the observed sequence numbers not yet acknowledged.
func (c *Cursor) Pending() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return nil
	}
	from := c.firstSeq
	if c.acked && c.lastAcked >= from {
		if c.lastAcked >= c.lastSeq {
			return nil
		}
		from = c.lastAcked + 1
	}
	pending := make([]uint64, 0, c.lastSeq-from+1)
	for seq := from; seq <= c.lastSeq; seq++ {
		pending = append(pending, seq)
	}
	return pending
}

// StateHash returns the hex SHA-256 of the last document payload.
func (c *Cursor) StateHash() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasState {
		return "", false
	}
	return hex.EncodeToString(c.state[:]), true
}

// LastSeq returns the last observed sequence number.
func (c *Cursor) LastSeq() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeq, c.started
}

// Final reports whether the final frame was observed.
func (c *Cursor) Final() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.final
}
