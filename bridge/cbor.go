package bridge

import (
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/Neumenon/jtoo/jtoo"
)

// CBOR tags used for kinds without a native major type.
const (
	// TagDecimalFraction is RFC 8949 §3.4.4: [exponent, mantissa].
	TagDecimalFraction = 4
	// TagExtendedTime is RFC 9581 extended time: a map of key 1 to whole
	// seconds and key -3, -6 or -9 to the fraction in that unit.
	TagExtendedTime = 1001
	// TagDateTime wraps the JTOO text of a date, time or offset.
	TagDateTime = 0x6a74
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("bridge: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("bridge: CBOR decoder initialization failed: " + err.Error())
	}
}

// ToCBOR encodes v using Core Deterministic Encoding, so equal values
// produce identical bytes.
func ToCBOR(v *jtoo.Value) ([]byte, error) {
	x, err := toCBORValue(v)
	if err != nil {
		return nil, errors.Wrap(err, "cbor")
	}
	return cborEnc.Marshal(x)
}

func toCBORValue(v *jtoo.Value) (interface{}, error) {
	if v == nil {
		return nil, errors.New("nil value")
	}
	switch v.Kind() {
	case jtoo.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case jtoo.KindInteger:
		n, _ := v.AsInt()
		return n, nil
	case jtoo.KindString:
		s, _ := v.AsStr()
		return s, nil
	case jtoo.KindByteString:
		b, _ := v.AsBytes()
		if b == nil {
			b = []byte{}
		}
		return b, nil
	case jtoo.KindDecimal:
		d, _ := v.AsDecimal()
		return cbor.Tag{Number: TagDecimalFraction, Content: []interface{}{int64(d.Exponent), d.Mantissa}}, nil
	case jtoo.KindTimestamp:
		ts, _ := v.AsTimestamp()
		return cbor.Tag{Number: TagExtendedTime, Content: extendedTime(ts)}, nil
	case jtoo.KindDateTime:
		text, err := jtoo.Emit(v)
		if err != nil {
			return nil, err
		}
		return cbor.Tag{Number: TagDateTime, Content: text}, nil
	case jtoo.KindList:
		items, _ := v.AsList()
		out := make([]interface{}, 0, len(items))
		for i, item := range items {
			x, err := toCBORValue(item)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			out = append(out, x)
		}
		return out, nil
	}
	return nil, errors.Errorf("unsupported kind %s", v.Kind())
}

var unitScale = map[jtoo.TimestampUnit]uint64{
	jtoo.Seconds:      1,
	jtoo.Milliseconds: 1_000,
	jtoo.Microseconds: 1_000_000,
	jtoo.Nanoseconds:  1_000_000_000,
}

var unitKey = map[jtoo.TimestampUnit]int64{
	jtoo.Milliseconds: -3,
	jtoo.Microseconds: -6,
	jtoo.Nanoseconds:  -9,
}

func extendedTime(ts jtoo.Timestamp) map[int64]uint64 {
	scale := unitScale[ts.Unit]
	m := map[int64]uint64{1: ts.Value / scale}
	if key, ok := unitKey[ts.Unit]; ok {
		m[key] = ts.Value % scale
	}
	return m
}

// FromCBOR decodes a single CBOR data item. Besides the tags ToCBOR
// writes, tag 0 and tag 1 times are accepted as nanosecond timestamps.
func FromCBOR(data []byte) (*jtoo.Value, error) {
	var x interface{}
	if err := cborDec.Unmarshal(data, &x); err != nil {
		return nil, errors.Wrap(err, "cbor decode")
	}
	v, err := fromCBORValue(x)
	if err != nil {
		return nil, errors.Wrap(err, "cbor")
	}
	return v, nil
}

func fromCBORValue(x interface{}) (*jtoo.Value, error) {
	switch t := x.(type) {
	case cbor.Tag:
		return fromCBORTag(t)
	case big.Int:
		return nil, errors.Errorf("integer %s overflows int64", t.String())
	case *big.Int:
		return nil, errors.Errorf("integer %s overflows int64", t.String())
	case []interface{}:
		items := make([]*jtoo.Value, 0, len(t))
		for i, elem := range t {
			item, err := fromCBORValue(elem)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			items = append(items, item)
		}
		return jtoo.List(items...), nil
	case map[interface{}]interface{}:
		m, err := stringKeys(t)
		if err != nil {
			return nil, err
		}
		if v, ok, err := fromMarker(m); ok {
			return v, err
		}
		return pairs(m, fromCBORValue)
	}
	return fromGeneric(x)
}

func fromCBORTag(tag cbor.Tag) (*jtoo.Value, error) {
	switch tag.Number {
	case TagDecimalFraction:
		parts, ok := tag.Content.([]interface{})
		if !ok || len(parts) != 2 {
			return nil, errors.New("decimal fraction must be [exponent, mantissa]")
		}
		exp, err := cborInt(parts[0])
		if err != nil {
			return nil, errors.Wrap(err, "decimal exponent")
		}
		if exp < -128 || exp > 127 {
			return nil, errors.Errorf("decimal exponent %d out of range", exp)
		}
		mant, err := cborInt(parts[1])
		if err != nil {
			return nil, errors.Wrap(err, "decimal mantissa")
		}
		return jtoo.Dec(mant, int8(exp)), nil

	case TagExtendedTime:
		return fromExtendedTime(tag.Content)

	case TagDateTime:
		text, ok := tag.Content.(string)
		if !ok {
			return nil, errors.New("date/time tag must hold text")
		}
		v, _, err := parseKind(jtoo.KindDateTime.String(), text)
		return v, err
	}
	return nil, errors.Errorf("unsupported CBOR tag %d", tag.Number)
}

func fromExtendedTime(content interface{}) (*jtoo.Value, error) {
	m, ok := content.(map[interface{}]interface{})
	if !ok {
		return nil, errors.New("extended time must be a map")
	}
	ts := jtoo.Timestamp{Unit: jtoo.Seconds}
	var secs, frac int64
	for k, v := range m {
		key, err := cborInt(k)
		if err != nil {
			return nil, errors.Wrap(err, "extended time key")
		}
		n, err := cborInt(v)
		if err != nil || n < 0 {
			return nil, errors.Errorf("extended time key %d: non-negative integer required", key)
		}
		if key != 1 && ts.Unit != jtoo.Seconds {
			return nil, errors.New("extended time carries more than one fraction key")
		}
		switch key {
		case 1:
			secs = n
		case -3:
			ts.Unit, frac = jtoo.Milliseconds, n
		case -6:
			ts.Unit, frac = jtoo.Microseconds, n
		case -9:
			ts.Unit, frac = jtoo.Nanoseconds, n
		default:
			return nil, errors.Errorf("unsupported extended time key %d", key)
		}
	}
	scale := unitScale[ts.Unit]
	if uint64(frac) >= scale && ts.Unit != jtoo.Seconds {
		return nil, errors.Errorf("extended time fraction %d out of range", frac)
	}
	ts.Value = uint64(secs)*scale + uint64(frac)
	if ts.Value/scale != uint64(secs) {
		return nil, errors.New("extended time overflows")
	}
	return jtoo.Stamp(ts), nil
}

func cborInt(x interface{}) (int64, error) {
	switch n := x.(type) {
	case int64:
		return n, nil
	case uint64:
		if n > 1<<63-1 {
			return 0, errors.Errorf("integer %d overflows int64", n)
		}
		return int64(n), nil
	}
	return 0, errors.Errorf("expected integer, got %T", x)
}
