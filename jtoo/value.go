package jtoo

import (
	"bytes"
	"fmt"
)

// Kind identifies the type of a Value.
type Kind uint8

const (
	KindBool Kind = iota
	KindInteger
	KindDecimal
	KindString
	KindByteString
	KindList
	KindDateTime // Date, Time and/or offset
	KindTimestamp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindByteString:
		return "bytes"
	case KindList:
		return "list"
	case KindDateTime:
		return "datetime"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Value is a generic JTOO value, used when the structure of a document is
// not known in advance.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	decVal   Decimal
	strVal   string
	bytesVal []byte
	dtVal    DateTimeTzOffset
	tsVal    Timestamp

	listVal []*Value
}

// ============================================================
// Constructors
// ============================================================

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInteger, intVal: v}
}

// Dec creates a decimal value.
func Dec(mantissa int64, exponent int8) *Value {
	return &Value{kind: KindDecimal, decVal: Decimal{Mantissa: mantissa, Exponent: exponent}}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Bytes creates a byte string value.
func Bytes(v []byte) *Value {
	return &Value{kind: KindByteString, bytesVal: v}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// DateTime creates a date/time value.
func DateTime(v DateTimeTzOffset) *Value {
	return &Value{kind: KindDateTime, dtVal: v}
}

// Stamp creates a timestamp value.
func Stamp(v Timestamp) *Value {
	return &Value{kind: KindTimestamp, tsVal: v}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) expect(k Kind) error {
	if v == nil {
		return fmt.Errorf("jtoo: nil value")
	}
	if v.kind != k {
		return fmt.Errorf("jtoo: expected %s, got %s", k, v.kind)
	}
	return nil
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if err := v.expect(KindBool); err != nil {
		return false, err
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if err := v.expect(KindInteger); err != nil {
		return 0, err
	}
	return v.intVal, nil
}

// AsDecimal returns the decimal value.
func (v *Value) AsDecimal() (Decimal, error) {
	if err := v.expect(KindDecimal); err != nil {
		return Decimal{}, err
	}
	return v.decVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if err := v.expect(KindString); err != nil {
		return "", err
	}
	return v.strVal, nil
}

// AsBytes returns the byte string value.
func (v *Value) AsBytes() ([]byte, error) {
	if err := v.expect(KindByteString); err != nil {
		return nil, err
	}
	return v.bytesVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if err := v.expect(KindList); err != nil {
		return nil, err
	}
	return v.listVal, nil
}

// AsDateTime returns the date/time value.
func (v *Value) AsDateTime() (DateTimeTzOffset, error) {
	if err := v.expect(KindDateTime); err != nil {
		return DateTimeTzOffset{}, err
	}
	return v.dtVal, nil
}

// AsTimestamp returns the timestamp value.
func (v *Value) AsTimestamp() (Timestamp, error) {
	if err := v.expect(KindTimestamp); err != nil {
		return Timestamp{}, err
	}
	return v.tsVal, nil
}

// Len returns the length of a list, string or byte string.
func (v *Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindString:
		return len(v.strVal)
	case KindByteString:
		return len(v.bytesVal)
	default:
		return 0
	}
}

// Index returns the i-th element of a list.
func (v *Value) Index(i int) (*Value, error) {
	if err := v.expect(KindList); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("jtoo: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// Append adds a value to a list.
func (v *Value) Append(val *Value) {
	if v.kind != KindList {
		panic("jtoo: cannot append to non-list")
	}
	v.listVal = append(v.listVal, val)
}

// String returns the canonical text of v, or a description of why it
// cannot be encoded.
func (v *Value) String() string {
	s, err := Emit(v)
	if err != nil {
		return fmt.Sprintf("<invalid: %v>", err)
	}
	return s
}

// Equal reports whether a and b are structurally identical. Decimals
// compare by mantissa and exponent, so 1.0 and 1.00 differ.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInteger:
		return a.intVal == b.intVal
	case KindDecimal:
		return a.decVal == b.decVal
	case KindString:
		return a.strVal == b.strVal
	case KindByteString:
		return bytes.Equal(a.bytesVal, b.bytesVal)
	case KindDateTime:
		return a.dtVal == b.dtVal
	case KindTimestamp:
		return a.tsVal == b.tsVal
	case KindList:
		if len(a.listVal) != len(b.listVal) {
			return false
		}
		for i := range a.listVal {
			if !Equal(a.listVal[i], b.listVal[i]) {
				return false
			}
		}
		return true
	}
	return false
}
