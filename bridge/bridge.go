// Package bridge converts jtoo values to and from YAML, CBOR and
// MessagePack.
//
// JTOO has no maps and no null. Maps read from the other formats become a
// list of [key, value] pairs sorted by key (YAML keeps document order, as
// its decoder reports it); null is rejected. Kinds the target format cannot
// carry natively are written as a two-entry marker map, the same shape the
// extended JSON bridge uses:
//
//	{"$jtoo": "decimal", "v": "1_234.5"}
//
// CBOR and YAML use their own tags where one exists; see the per-format
// documentation.
package bridge

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/Neumenon/jtoo/jtoo"
)

const (
	markerKey   = "$jtoo"
	markerValue = "v"
)

// marker returns the marker map for a kind with no native encoding.
func marker(v *jtoo.Value) (map[string]interface{}, error) {
	text, err := jtoo.Emit(v)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{markerKey: v.Kind().String(), markerValue: text}, nil
}

// fromMarker parses a marker map. ok is false when m is not a marker.
func fromMarker(m map[string]interface{}) (v *jtoo.Value, ok bool, err error) {
	kind, isMarker := m[markerKey].(string)
	if !isMarker || len(m) != 2 {
		return nil, false, nil
	}
	text, isText := m[markerValue].(string)
	if !isText {
		return nil, true, errors.Errorf("%s marker %q: missing text", markerKey, kind)
	}
	return parseKind(kind, text)
}

func parseKind(kind, text string) (*jtoo.Value, bool, error) {
	v, err := jtoo.Parse([]byte(text))
	if err != nil {
		return nil, true, errors.Wrapf(err, "%s marker %q", markerKey, kind)
	}
	if v.Kind().String() != kind {
		return nil, true, errors.Errorf("%s marker %q holds %s", markerKey, kind, v.Kind())
	}
	return v, true, nil
}

// pairs converts a string-keyed map to a list of [key, value] pairs
// sorted by key.
func pairs(m map[string]interface{}, convert func(interface{}) (*jtoo.Value, error)) (*jtoo.Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]*jtoo.Value, 0, len(keys))
	for _, k := range keys {
		item, err := convert(m[k])
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", k)
		}
		items = append(items, jtoo.List(jtoo.Str(k), item))
	}
	return jtoo.List(items...), nil
}

// stringKeys converts a map with arbitrary keys, as CBOR decodes by
// default, to one with string keys.
func stringKeys(m map[interface{}]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		s, ok := k.(string)
		if !ok {
			return nil, errors.Errorf("map key %v (%T) is not a string", k, k)
		}
		out[s] = v
	}
	return out, nil
}

func fromFloat(f float64) (*jtoo.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Errorf("float %v has no decimal form", f)
	}
	d, err := jtoo.ParseDecimal(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		return nil, err
	}
	return jtoo.Dec(d.Mantissa, d.Exponent), nil
}

func fromUint(u uint64) (*jtoo.Value, error) {
	if u > math.MaxInt64 {
		return nil, errors.Errorf("integer %d overflows int64", u)
	}
	return jtoo.Int(int64(u)), nil
}

// fromTime converts a decoded timestamp to nanoseconds since the epoch.
func fromTime(t time.Time) (*jtoo.Value, error) {
	if t.Before(time.Unix(0, 0)) {
		return nil, errors.Errorf("time %s is before the epoch", t.Format(time.RFC3339Nano))
	}
	return jtoo.Stamp(jtoo.Timestamp{Value: uint64(t.UnixNano()), Unit: jtoo.Nanoseconds}), nil
}

// fromGeneric converts the values produced by the msgpack and CBOR
// decoders when decoding into interface{}.
func fromGeneric(x interface{}) (*jtoo.Value, error) {
	switch t := x.(type) {
	case nil:
		return nil, errors.New("null is not representable in JTOO")
	case bool:
		return jtoo.Bool(t), nil
	case int64:
		return jtoo.Int(t), nil
	case int:
		return jtoo.Int(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float64:
		return fromFloat(t)
	case float32:
		return fromFloat(float64(t))
	case string:
		return jtoo.Str(t), nil
	case []byte:
		return jtoo.Bytes(t), nil
	case time.Time:
		return fromTime(t)
	case []interface{}:
		items := make([]*jtoo.Value, 0, len(t))
		for i, elem := range t {
			item, err := fromGeneric(elem)
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
		return fromGeneric(m)
	case map[string]interface{}:
		if v, ok, err := fromMarker(t); ok {
			return v, err
		}
		return pairs(t, fromGeneric)
	}
	return nil, errors.Errorf("unsupported decoded type %T", x)
}
