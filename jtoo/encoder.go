package jtoo

import (
	"strings"
	"unicode/utf8"
)

type element uint8

const (
	elemString element = iota
	elemByteString
	elemEmptyList
	elemList
)

// Encoder builds canonical JTOO text.
//
// Scalars are written with the Append methods. Strings, byte strings and
// lists are compounds: open them, append their content, then close them.
// Separators between list items are inserted automatically.
//
// The first error is sticky: every later call returns it and the output is
// unusable.
type Encoder struct {
	buf   strings.Builder
	stack []element
	err   error
}

// NewEncoder creates an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) setErr(err EncodeError) error {
	if e.err == nil {
		e.err = err
	}
	return e.err
}

func (e *Encoder) top() (element, bool) {
	if len(e.stack) == 0 {
		return 0, false
	}
	return e.stack[len(e.stack)-1], true
}

// prepareForNewValue writes the separator a new value needs, if any.
func (e *Encoder) prepareForNewValue() error {
	if e.err != nil {
		return e.err
	}
	top, ok := e.top()
	if !ok {
		return nil
	}
	switch top {
	case elemString:
		return e.setErr(ErrUnclosedString)
	case elemByteString:
		return e.setErr(ErrUnclosedByteString)
	case elemEmptyList:
		e.stack[len(e.stack)-1] = elemList
	case elemList:
		e.buf.WriteByte(',')
	}
	return nil
}

// unclosed returns the error for the innermost open compound.
func (e *Encoder) unclosed() error {
	top, ok := e.top()
	if !ok {
		return nil
	}
	switch top {
	case elemString:
		return ErrUnclosedString
	case elemByteString:
		return ErrUnclosedByteString
	}
	return ErrUnclosedList
}

// Text returns the encoded text. It fails if a compound is still open.
func (e *Encoder) Text() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.unclosed(); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

// Bytes is like Text but returns a byte slice.
func (e *Encoder) Bytes() ([]byte, error) {
	s, err := e.Text()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// ============================================================
// Scalars
// ============================================================

// AppendBool writes T or F.
func (e *Encoder) AppendBool(b bool) error {
	if err := e.prepareForNewValue(); err != nil {
		return err
	}
	if b {
		e.buf.WriteByte('T')
	} else {
		e.buf.WriteByte('F')
	}
	return nil
}

// AppendInteger writes v with digits grouped in threes: 1_234_567.
func (e *Encoder) AppendInteger(v int64) error {
	if err := e.prepareForNewValue(); err != nil {
		return err
	}
	writeInteger(&e.buf, v)
	return nil
}

// AppendDecimal writes mantissa * 10^exponent: 1.0, 1_234.567_8, 0.01.
//
// Text always carries the digits implied by a negative exponent, so
// decoding it yields the same pair. A non-negative exponent is written as
// an integer part with fraction 0, which decodes with exponent -1; it
// fails with ErrInvalidDecimal when that decoded mantissa would not fit
// an int64.
func (e *Encoder) AppendDecimal(mantissa int64, exponent int8) error {
	if e.err != nil {
		return e.err
	}
	d := Decimal{Mantissa: mantissa, Exponent: exponent}
	if !d.decodable() {
		return e.setErr(ErrInvalidDecimal)
	}
	if err := e.prepareForNewValue(); err != nil {
		return err
	}
	writeDecimal(&e.buf, d)
	return nil
}

// ============================================================
// Compounds
// ============================================================

// OpenString starts a string value.
func (e *Encoder) OpenString() error {
	if err := e.prepareForNewValue(); err != nil {
		return err
	}
	e.stack = append(e.stack, elemString)
	e.buf.WriteByte('"')
	return nil
}

// AppendString adds s to the open string, escaping as required.
func (e *Encoder) AppendString(s string) error {
	if e.err != nil {
		return e.err
	}
	if top, ok := e.top(); !ok || top != elemString {
		return e.setErr(ErrNotInString)
	}
	if !utf8.ValidString(s) {
		return e.setErr(ErrInvalidUTF8)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isEscapable(c) {
			e.buf.WriteByte('\\')
			e.buf.WriteByte(hexDigits[c>>4])
			e.buf.WriteByte(hexDigits[c&0x0f])
			continue
		}
		e.buf.WriteByte(c)
	}
	return nil
}

// CloseString ends the open string.
func (e *Encoder) CloseString() error {
	if e.err != nil {
		return e.err
	}
	if top, ok := e.top(); !ok || top != elemString {
		return e.setErr(ErrNotInString)
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.buf.WriteByte('"')
	return nil
}

// OpenByteString starts a byte string value.
func (e *Encoder) OpenByteString() error {
	if err := e.prepareForNewValue(); err != nil {
		return err
	}
	e.stack = append(e.stack, elemByteString)
	e.buf.WriteByte('B')
	return nil
}

// AppendByteString adds b to the open byte string.
func (e *Encoder) AppendByteString(b []byte) error {
	if e.err != nil {
		return e.err
	}
	if top, ok := e.top(); !ok || top != elemByteString {
		return e.setErr(ErrNotInByteString)
	}
	for _, c := range b {
		e.buf.WriteByte(hexDigits[c>>4])
		e.buf.WriteByte(hexDigits[c&0x0f])
	}
	return nil
}

// CloseByteString ends the open byte string.
func (e *Encoder) CloseByteString() error {
	if e.err != nil {
		return e.err
	}
	if top, ok := e.top(); !ok || top != elemByteString {
		return e.setErr(ErrNotInByteString)
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

// OpenList starts a list.
func (e *Encoder) OpenList() error {
	if err := e.prepareForNewValue(); err != nil {
		return err
	}
	e.stack = append(e.stack, elemEmptyList)
	e.buf.WriteByte('[')
	return nil
}

// CloseList ends the innermost open list.
func (e *Encoder) CloseList() error {
	if e.err != nil {
		return e.err
	}
	if top, ok := e.top(); !ok || (top != elemEmptyList && top != elemList) {
		return e.setErr(ErrNotInList)
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.buf.WriteByte(']')
	return nil
}

// ============================================================
// Timestamps
// ============================================================

// AppendTimestampSeconds writes S1_700_000_000.
func (e *Encoder) AppendTimestampSeconds(s uint64) error {
	return e.AppendTimestamp(Timestamp{Value: s, Unit: Seconds})
}

// AppendTimestampMilliseconds writes milliseconds since the epoch as
// S1_700_000_000.123.
func (e *Encoder) AppendTimestampMilliseconds(ms uint64) error {
	return e.AppendTimestamp(Timestamp{Value: ms, Unit: Milliseconds})
}

// AppendTimestampMicroseconds writes microseconds since the epoch.
func (e *Encoder) AppendTimestampMicroseconds(us uint64) error {
	return e.AppendTimestamp(Timestamp{Value: us, Unit: Microseconds})
}

// AppendTimestampNanoseconds writes nanoseconds since the epoch.
func (e *Encoder) AppendTimestampNanoseconds(ns uint64) error {
	return e.AppendTimestamp(Timestamp{Value: ns, Unit: Nanoseconds})
}

// AppendTimestamp writes ts at its own precision.
func (e *Encoder) AppendTimestamp(ts Timestamp) error {
	if e.err != nil {
		return e.err
	}
	if ts.Value > maxTimestamp || ts.Unit > Nanoseconds {
		return e.setErr(ErrInvalidTimestamp)
	}
	if err := e.prepareForNewValue(); err != nil {
		return err
	}
	writeTimestamp(&e.buf, ts)
	return nil
}

const maxTimestamp = 1<<63 - 1
