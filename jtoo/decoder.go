package jtoo

import (
	"bytes"
	"math"
	"unicode/utf8"
)

// maxSnippet bounds the input captured in a DecodeError.
const maxSnippet = 30

// Decoder reads JTOO values from a byte slice in document order.
//
// The caller drives the Decoder with the Consume methods, matching the
// structure it expects. Lists are opened with ConsumeOpenList, iterated
// with HasAnotherListItem and closed with ConsumeCloseList; separators are
// handled internally. Close verifies that the whole input was read.
//
// Errors are terminal: once a method fails, every later call returns the
// same error.
type Decoder struct {
	data      []byte // unconsumed input
	window    []byte // input at the start of the current value
	depth     int
	separated bool // a ',' was consumed and no item has followed it yet
	err       error
}

// NewDecoder creates a Decoder over data. The Decoder does not copy data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data, window: snippetOf(data)}
}

func snippetOf(b []byte) []byte {
	if len(b) > maxSnippet {
		return b[:maxSnippet]
	}
	return b
}

// begin starts a new value, recording the diagnostic window.
func (d *Decoder) begin() error {
	if d.err != nil {
		return d.err
	}
	d.window = snippetOf(d.data)
	return nil
}

func (d *Decoder) fail(reason ErrorReason) error {
	d.err = &DecodeError{Reason: reason, Snippet: d.window}
	return d.err
}

// peek returns the next byte, or 0 at end of input.
func (d *Decoder) peek() byte {
	if len(d.data) == 0 {
		return 0
	}
	return d.data[0]
}

func (d *Decoder) advance(n int) {
	d.data = d.data[n:]
}

// atValueEnd reports whether the input is at a value boundary.
func (d *Decoder) atValueEnd() bool {
	return len(d.data) == 0 || d.data[0] == ',' || d.data[0] == ']'
}

// closeItem finishes a value. Inside a list the value must be followed by
// a separator, which is consumed, or by the list end, which is left for
// ConsumeCloseList.
func (d *Decoder) closeItem() error {
	d.separated = false
	if d.depth == 0 || len(d.data) == 0 {
		return nil
	}
	switch d.data[0] {
	case ',':
		d.advance(1)
		d.separated = true
	case ']':
	default:
		return d.fail(ExpectedListSeparator)
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ============================================================
// Scalars
// ============================================================

// ConsumeBool consumes T or F.
func (d *Decoder) ConsumeBool() (bool, error) {
	if err := d.begin(); err != nil {
		return false, err
	}
	var v bool
	switch d.peek() {
	case 'T':
		v = true
	case 'F':
	default:
		return false, d.fail(ExpectedBool)
	}
	d.advance(1)
	return v, d.closeItem()
}

// ConsumeInteger consumes a signed 64-bit integer such as -1_234_567.
func (d *Decoder) ConsumeInteger() (int64, error) {
	if err := d.begin(); err != nil {
		return 0, err
	}
	negative, err := d.sign(ExpectedInteger)
	if err != nil {
		return 0, err
	}
	mag, err := d.integerDigits(limitFor(negative), IntegerTooLarge)
	if err != nil {
		return 0, err
	}
	if d.peek() == '.' {
		return 0, d.fail(ExpectedInteger)
	}
	if negative && mag == 0 {
		return 0, d.fail(NegativeZero)
	}
	return signed(mag, negative), d.closeItem()
}

// ConsumeDecimal consumes a decimal such as -1_000.000_5. The result's
// exponent is minus the number of fraction digits.
func (d *Decoder) ConsumeDecimal() (Decimal, error) {
	if err := d.begin(); err != nil {
		return Decimal{}, err
	}
	negative, err := d.sign(ExpectedDecimal)
	if err != nil {
		return Decimal{}, err
	}
	limit := limitFor(negative)
	mag, err := d.integerDigits(limit, DecimalTooLarge)
	if err != nil {
		return Decimal{}, err
	}
	if d.peek() != '.' {
		return Decimal{}, d.fail(MalformedDecimal)
	}
	d.advance(1)
	mag, count, err := d.fractionDigits(mag, limit, DecimalTooLarge, MalformedDecimal)
	if err != nil {
		return Decimal{}, err
	}
	if count > maxFractionDigits {
		return Decimal{}, d.fail(DecimalTooLarge)
	}
	if negative && mag == 0 {
		return Decimal{}, d.fail(NegativeZero)
	}
	return Decimal{Mantissa: signed(mag, negative), Exponent: int8(-count)}, d.closeItem()
}

// sign consumes an optional '-' and checks that a digit follows.
func (d *Decoder) sign(expected ErrorReason) (bool, error) {
	negative := d.peek() == '-'
	next := 0
	if negative {
		next = 1
	}
	if next >= len(d.data) {
		return false, d.fail(expected)
	}
	switch c := d.data[next]; {
	case c == '_':
		return false, d.fail(IncorrectDigitGrouping)
	case !isDigit(c):
		return false, d.fail(expected)
	}
	d.advance(next)
	return negative, nil
}

func limitFor(negative bool) uint64 {
	if negative {
		return 1 << 63
	}
	return math.MaxInt64
}

func signed(mag uint64, negative bool) int64 {
	if !negative {
		return int64(mag)
	}
	if mag == 1<<63 {
		return math.MinInt64
	}
	return -int64(mag)
}

// integerDigits consumes digits grouped in threes from the right, starting
// at a digit. A leading zero must stand alone.
func (d *Decoder) integerDigits(limit uint64, tooLarge ErrorReason) (uint64, error) {
	var mag uint64
	group, grouped := 0, false
	i := 0
	for ; i < len(d.data); i++ {
		c := d.data[i]
		if i == 1 && d.data[0] == '0' && (c == '_' || isDigit(c)) {
			return 0, d.fail(ExpectedSingleZero)
		}
		if c == '_' {
			if group == 0 || (grouped && group != 3) {
				return 0, d.fail(IncorrectDigitGrouping)
			}
			group, grouped = 0, true
			continue
		}
		if !isDigit(c) {
			break
		}
		group++
		if group > 3 {
			return 0, d.fail(IncorrectDigitGrouping)
		}
		digit := uint64(c - '0')
		if mag > (limit-digit)/10 {
			return 0, d.fail(tooLarge)
		}
		mag = mag*10 + digit
	}
	if group == 0 || (grouped && group != 3) {
		return 0, d.fail(IncorrectDigitGrouping)
	}
	d.advance(i)
	return mag, nil
}

// fractionDigits consumes digits grouped in threes from the left,
// continuing the mantissa mag. It returns the new mantissa and the number
// of digits read.
func (d *Decoder) fractionDigits(mag, limit uint64, tooLarge, missing ErrorReason) (uint64, int, error) {
	group, count := 0, 0
	i := 0
	for ; i < len(d.data); i++ {
		c := d.data[i]
		if c == '_' {
			if group != 3 {
				return 0, 0, d.fail(IncorrectDigitGrouping)
			}
			group = 0
			continue
		}
		if !isDigit(c) {
			break
		}
		group++
		count++
		if group > 3 {
			return 0, 0, d.fail(IncorrectDigitGrouping)
		}
		digit := uint64(c - '0')
		if mag > (limit-digit)/10 {
			return 0, 0, d.fail(tooLarge)
		}
		mag = mag*10 + digit
	}
	if count == 0 {
		return 0, 0, d.fail(missing)
	}
	if group == 0 {
		return 0, 0, d.fail(IncorrectDigitGrouping)
	}
	d.advance(i)
	return mag, count, nil
}

// ConsumeString consumes a double-quoted UTF-8 string.
func (d *Decoder) ConsumeString() (string, error) {
	if err := d.begin(); err != nil {
		return "", err
	}
	if d.peek() != '"' {
		return "", d.fail(ExpectedString)
	}
	end := bytes.IndexByte(d.data[1:], '"')
	if end < 0 {
		return "", d.fail(UnclosedString)
	}
	raw := d.data[1 : 1+end]
	if !utf8.Valid(raw) {
		return "", d.fail(NotUTF8)
	}
	s, reason := unescape(raw)
	if reason != 0 {
		return "", d.fail(reason)
	}
	d.advance(end + 2)
	return s, d.closeItem()
}

func unescape(raw []byte) (string, ErrorReason) {
	if bytes.IndexByte(raw, '\\') < 0 {
		for _, c := range raw {
			if isEscapable(c) {
				return "", UnescapedControlByte
			}
		}
		return string(raw), 0
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			if isEscapable(c) {
				return "", UnescapedControlByte
			}
			out = append(out, c)
			continue
		}
		if i+2 >= len(raw) {
			return "", IncompleteEscapeSequence
		}
		hi, ok1 := hexValue(raw[i+1])
		lo, ok2 := hexValue(raw[i+2])
		if !ok1 || !ok2 {
			return "", InvalidEscapeSequence
		}
		b := hi<<4 | lo
		if !isEscapable(b) {
			return "", InvalidEscapeSequence
		}
		out = append(out, b)
		i += 2
	}
	return string(out), 0
}

// ConsumeByteString consumes B followed by lowercase hex pairs.
func (d *Decoder) ConsumeByteString() ([]byte, error) {
	if err := d.begin(); err != nil {
		return nil, err
	}
	if d.peek() != 'B' {
		return nil, d.fail(ExpectedByteString)
	}
	hex := d.data[1:]
	n := 0
	for n < len(hex) {
		if _, ok := hexValue(hex[n]); !ok {
			break
		}
		n++
	}
	if n%2 != 0 {
		return nil, d.fail(MalformedByteString)
	}
	out := make([]byte, n/2)
	for i := range out {
		hi, _ := hexValue(hex[2*i])
		lo, _ := hexValue(hex[2*i+1])
		out[i] = hi<<4 | lo
	}
	d.advance(1 + n)
	return out, d.closeItem()
}

// ============================================================
// Lists
// ============================================================

// ConsumeOpenList consumes the '[' that starts a list.
func (d *Decoder) ConsumeOpenList() error {
	if err := d.begin(); err != nil {
		return err
	}
	if d.peek() != '[' {
		return d.fail(ExpectedList)
	}
	d.advance(1)
	d.depth++
	d.separated = false
	return nil
}

// HasAnotherListItem reports whether the current list has another item.
// It returns false at the list end, at end of input and after an error.
func (d *Decoder) HasAnotherListItem() bool {
	if d.err != nil || len(d.data) == 0 {
		return false
	}
	return d.data[0] != ']'
}

// ConsumeCloseList consumes the ']' that ends the innermost open list.
func (d *Decoder) ConsumeCloseList() error {
	if err := d.begin(); err != nil {
		return err
	}
	if d.depth == 0 {
		return d.fail(NotInList)
	}
	if d.peek() != ']' {
		return d.fail(ExpectedListEnd)
	}
	if d.separated {
		return d.fail(ExpectedListItem)
	}
	d.advance(1)
	d.depth--
	return d.closeItem()
}

// Close checks that every list was closed and all input consumed.
func (d *Decoder) Close() error {
	if err := d.begin(); err != nil {
		return err
	}
	if d.depth != 0 {
		return d.fail(ListEndNotConsumed)
	}
	if len(d.data) != 0 {
		return d.fail(DataNotConsumed)
	}
	return nil
}

// ============================================================
// Timestamps
// ============================================================

// ConsumeTimestampSeconds consumes a timestamp with no fraction, S1_700_000_000.
func (d *Decoder) ConsumeTimestampSeconds() (uint64, error) {
	return d.consumeTimestamp(0, ExpectedTimestampSeconds)
}

// ConsumeTimestampMilliseconds consumes a timestamp with three fraction
// digits and returns milliseconds since the epoch.
func (d *Decoder) ConsumeTimestampMilliseconds() (uint64, error) {
	return d.consumeTimestamp(3, ExpectedTimestampMilliseconds)
}

// ConsumeTimestampMicroseconds consumes a timestamp with six fraction
// digits and returns microseconds since the epoch.
func (d *Decoder) ConsumeTimestampMicroseconds() (uint64, error) {
	return d.consumeTimestamp(6, ExpectedTimestampMicroseconds)
}

// ConsumeTimestampNanoseconds consumes a timestamp with nine fraction
// digits and returns nanoseconds since the epoch.
func (d *Decoder) ConsumeTimestampNanoseconds() (uint64, error) {
	return d.consumeTimestamp(9, ExpectedTimestampNanoseconds)
}

// ConsumeTimestamp consumes a timestamp of any precision.
func (d *Decoder) ConsumeTimestamp() (Timestamp, error) {
	if err := d.begin(); err != nil {
		return Timestamp{}, err
	}
	v, count, err := d.timestamp()
	if err != nil {
		return Timestamp{}, err
	}
	unit, ok := timestampUnits[count]
	if !ok {
		return Timestamp{}, d.fail(MalformedTimestamp)
	}
	return Timestamp{Value: v, Unit: unit}, d.closeItem()
}

func (d *Decoder) consumeTimestamp(fraction int, mismatch ErrorReason) (uint64, error) {
	if err := d.begin(); err != nil {
		return 0, err
	}
	v, count, err := d.timestamp()
	if err != nil {
		return 0, err
	}
	if count != fraction {
		return 0, d.fail(mismatch)
	}
	return v, d.closeItem()
}

// timestamp reads S and a grouped number, returning the value scaled to
// its own precision and the number of fraction digits.
func (d *Decoder) timestamp() (uint64, int, error) {
	if d.peek() != 'S' {
		return 0, 0, d.fail(ExpectedTimestamp)
	}
	d.advance(1)
	switch c := d.peek(); {
	case c == '_':
		return 0, 0, d.fail(IncorrectDigitGrouping)
	case !isDigit(c):
		return 0, 0, d.fail(MalformedTimestamp)
	}
	mag, err := d.integerDigits(math.MaxInt64, IntegerTooLarge)
	if err != nil {
		return 0, 0, err
	}
	if d.peek() != '.' {
		return mag, 0, nil
	}
	d.advance(1)
	return d.fractionDigits(mag, math.MaxInt64, IntegerTooLarge, MalformedTimestamp)
}
