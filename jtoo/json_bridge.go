package jtoo

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON and Value. Supports two modes:
//   - Strict (default): bytes become base64 strings, dates become their
//     JTOO text, decimals and timestamps become plain JSON numbers
//   - Extended: uses $jtoo markers for lossless round-trip
//
// JSON objects have no JTOO counterpart; they are converted to a list of
// [key, value] pairs sorted by key. JSON null is rejected.

// markerKey names the kind in an extended marker object.
const markerKey = "$jtoo"

// BridgeOpts configures JSON bridge behavior.
type BridgeOpts struct {
	// Extended enables $jtoo markers for bytes, decimals, dates and
	// timestamps. When false (default), they become plain JSON values.
	Extended bool
}

// DefaultBridgeOpts returns the default (strict) options.
func DefaultBridgeOpts() BridgeOpts {
	return BridgeOpts{Extended: false}
}

// ============================================================
// FromJSON - JSON to Value
// ============================================================

// FromJSON converts JSON bytes to a Value using strict mode.
func FromJSON(data []byte) (*Value, error) {
	return FromJSONWithOpts(data, DefaultBridgeOpts())
}

// FromJSONWithOpts converts JSON bytes to a Value with options.
func FromJSONWithOpts(data []byte, opts BridgeOpts) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return fromJSONValue(v, opts)
}

// FromJSONValue converts a decoded Go value (as produced by json.Unmarshal,
// with or without UseNumber) to a Value.
func FromJSONValue(v interface{}, opts BridgeOpts) (*Value, error) {
	return fromJSONValue(v, opts)
}

func fromJSONValue(v interface{}, opts BridgeOpts) (*Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is not representable in JTOO")

	case bool:
		return Bool(val), nil

	case json.Number:
		return fromJSONNumber(string(val))

	case float64:
		return fromJSONNumber(strconv.FormatFloat(val, 'f', -1, 64))

	case string:
		return Str(val), nil

	case []interface{}:
		items := make([]*Value, 0, len(val))
		for i, elem := range val {
			item, err := fromJSONValue(elem, opts)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			items = append(items, item)
		}
		return List(items...), nil

	case map[string]interface{}:
		if opts.Extended {
			if kind, ok := val[markerKey].(string); ok {
				return fromMarker(kind, val)
			}
		}

		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]*Value, 0, len(keys))
		for _, k := range keys {
			item, err := fromJSONValue(val[k], opts)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			pairs = append(pairs, List(Str(k), item))
		}
		return List(pairs...), nil

	default:
		return nil, fmt.Errorf("unsupported JSON type: %T", v)
	}
}

// fromJSONNumber keeps integers as integers and converts anything with a
// fraction or exponent to an exact Decimal.
func fromJSONNumber(s string) (*Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("integer %s: %w", s, err)
		}
		return Int(n), nil
	}
	d, err := ParseDecimal(s)
	if err != nil {
		return nil, err
	}
	return Dec(d.Mantissa, d.Exponent), nil
}

func fromMarker(kind string, obj map[string]interface{}) (*Value, error) {
	text, ok := obj["v"].(string)
	if !ok {
		return nil, fmt.Errorf("$jtoo %s marker missing v", kind)
	}
	want, ok := markerKinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown $jtoo marker type: %s", kind)
	}
	v, err := Parse([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("$jtoo %s marker: %w", kind, err)
	}
	if v.kind != want {
		return nil, fmt.Errorf("$jtoo %s marker holds %s", kind, v.kind)
	}
	return v, nil
}

var markerKinds = map[string]Kind{
	"bytes":     KindByteString,
	"decimal":   KindDecimal,
	"datetime":  KindDateTime,
	"timestamp": KindTimestamp,
}

// ============================================================
// ToJSON - Value to JSON
// ============================================================

// ToJSON converts a Value to JSON bytes using strict mode.
func ToJSON(v *Value) ([]byte, error) {
	return ToJSONWithOpts(v, DefaultBridgeOpts())
}

// ToJSONWithOpts converts a Value to JSON bytes with options.
func ToJSONWithOpts(v *Value, opts BridgeOpts) ([]byte, error) {
	jsonVal, err := ToJSONValue(v, opts)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonVal)
}

// ToJSONValue converts a Value to a Go value suitable for json.Marshal.
func ToJSONValue(v *Value, opts BridgeOpts) (interface{}, error) {
	if v == nil {
		return nil, fmt.Errorf("jtoo: nil value")
	}

	switch v.kind {
	case KindBool:
		return v.boolVal, nil

	case KindInteger:
		return json.Number(strconv.FormatInt(v.intVal, 10)), nil

	case KindString:
		return v.strVal, nil

	case KindList:
		items := make([]interface{}, 0, len(v.listVal))
		for _, elem := range v.listVal {
			item, err := ToJSONValue(elem, opts)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	text, err := Emit(v)
	if err != nil {
		return nil, err
	}
	if opts.Extended {
		for kind, k := range markerKinds {
			if k == v.kind {
				return map[string]interface{}{markerKey: kind, "v": text}, nil
			}
		}
	}

	switch v.kind {
	case KindByteString:
		return base64.StdEncoding.EncodeToString(v.bytesVal), nil
	case KindDecimal:
		return json.Number(strings.ReplaceAll(v.decVal.String(), "_", "")), nil
	case KindTimestamp:
		return json.Number(strconv.FormatUint(v.tsVal.Value, 10)), nil
	case KindDateTime:
		return text, nil
	}
	return nil, fmt.Errorf("unsupported value kind: %s", v.kind)
}
