package jtoo

import (
	"fmt"
	"strconv"
	"strings"
)

// Decimal is an exact base-10 number: value = Mantissa * 10^Exponent.
//
// Decoded decimals always carry Exponent = -(number of fraction digits), so
// 1.500 decodes as {1500, -3}. Encoding accepts any exponent.
type Decimal struct {
	Mantissa int64
	Exponent int8
}

// NewDecimal creates a Decimal from a mantissa and exponent.
func NewDecimal(mantissa int64, exponent int8) Decimal {
	return Decimal{Mantissa: mantissa, Exponent: exponent}
}

// String returns the canonical text of d without the surrounding value
// separators.
func (d Decimal) String() string {
	var sb strings.Builder
	writeDecimal(&sb, d)
	return sb.String()
}

// ParseDecimal parses plain decimal notation as written by strconv or JSON,
// such as 12.50 or -1.5e3, into an exact Decimal. Digit grouping is not
// accepted; use Decoder.ConsumeDecimal for JTOO text.
func ParseDecimal(s string) (Decimal, error) {
	mant, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return Decimal{}, fmt.Errorf("decimal %s: %w", s, err)
		}
		mant, exp = s[:i], e
	}
	whole, frac := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		whole, frac = mant[:i], mant[i+1:]
	}
	m, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("decimal %s: %w", s, err)
	}
	exp -= len(frac)
	if exp < -128 || exp > 127 {
		return Decimal{}, fmt.Errorf("decimal %s: exponent out of range", s)
	}
	return Decimal{Mantissa: m, Exponent: int8(exp)}, nil
}

// maxFractionDigits bounds a decoded fraction so the exponent fits int8.
const maxFractionDigits = 128

// decodable reports whether the text of d decodes back within int64. A
// non-negative exponent is read back as digits*10^(exponent+1) with
// exponent -1.
func (d Decimal) decodable() bool {
	if d.Exponent < 0 || d.Mantissa == 0 {
		return true
	}
	mag, limit := magnitude(d.Mantissa), limitFor(d.Mantissa < 0)
	for i := 0; i <= int(d.Exponent); i++ {
		if mag > limit/10 {
			return false
		}
		mag *= 10
	}
	return true
}

// magnitude returns |v| as a uint64, safe for math.MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}
	return uint64(v)
}

// writeIntegerDigits writes digits grouped in threes from the right.
func writeIntegerDigits(sb *strings.Builder, digits string) {
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		sb.WriteByte('_')
		sb.WriteString(digits[i : i+3])
	}
}

// writeFractionDigits writes digits grouped in threes from the left.
func writeFractionDigits(sb *strings.Builder, digits string) {
	for i := 0; i < len(digits); i += 3 {
		if i > 0 {
			sb.WriteByte('_')
		}
		end := i + 3
		if end > len(digits) {
			end = len(digits)
		}
		sb.WriteString(digits[i:end])
	}
}

func writeInteger(sb *strings.Builder, v int64) {
	if v < 0 {
		sb.WriteByte('-')
	}
	writeIntegerDigits(sb, strconv.FormatUint(magnitude(v), 10))
}

func writeDecimal(sb *strings.Builder, d Decimal) {
	if d.Mantissa == 0 {
		sb.WriteString("0.")
		if d.Exponent >= 0 {
			sb.WriteByte('0')
			return
		}
		writeFractionDigits(sb, strings.Repeat("0", -int(d.Exponent)))
		return
	}

	if d.Mantissa < 0 {
		sb.WriteByte('-')
	}
	digits := strconv.FormatUint(magnitude(d.Mantissa), 10)

	if d.Exponent >= 0 {
		writeIntegerDigits(sb, digits+strings.Repeat("0", int(d.Exponent)))
		sb.WriteString(".0")
		return
	}

	k := -int(d.Exponent)
	if len(digits) <= k {
		digits = strings.Repeat("0", k-len(digits)+1) + digits
	}
	split := len(digits) - k
	writeIntegerDigits(sb, digits[:split])
	sb.WriteByte('.')
	writeFractionDigits(sb, digits[split:])
}

// TimestampUnit is the precision of a Timestamp.
type TimestampUnit uint8

const (
	Seconds TimestampUnit = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

var timestampUnits = map[int]TimestampUnit{
	0: Seconds,
	3: Milliseconds,
	6: Microseconds,
	9: Nanoseconds,
}

// fractionDigits returns the number of fraction digits the unit is written with.
func (u TimestampUnit) fractionDigits() int {
	return 3 * int(u)
}

func (u TimestampUnit) String() string {
	switch u {
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "us"
	case Nanoseconds:
		return "ns"
	}
	return "unknown"
}

// Timestamp is a count of Unit since the Unix epoch.
type Timestamp struct {
	Value uint64
	Unit  TimestampUnit
}

func writeTimestamp(sb *strings.Builder, ts Timestamp) {
	sb.WriteByte('S')
	digits := strconv.FormatUint(ts.Value, 10)
	k := ts.Unit.fractionDigits()
	if k == 0 {
		writeIntegerDigits(sb, digits)
		return
	}
	if len(digits) <= k {
		digits = strings.Repeat("0", k-len(digits)+1) + digits
	}
	split := len(digits) - k
	writeIntegerDigits(sb, digits[:split])
	sb.WriteByte('.')
	writeFractionDigits(sb, digits[split:])
}
