package jtoo

import "fmt"

// Emit converts a Value to canonical JTOO text.
func Emit(v *Value) (string, error) {
	enc := NewEncoder()
	if err := EmitTo(enc, v); err != nil {
		return "", err
	}
	return enc.Text()
}

// EmitTo writes v to enc.
func EmitTo(enc *Encoder, v *Value) error {
	if v == nil {
		return fmt.Errorf("jtoo: cannot emit nil value")
	}

	switch v.kind {
	case KindBool:
		return enc.AppendBool(v.boolVal)
	case KindInteger:
		return enc.AppendInteger(v.intVal)
	case KindDecimal:
		return enc.AppendDecimal(v.decVal.Mantissa, v.decVal.Exponent)
	case KindString:
		return emitString(enc, v.strVal)
	case KindByteString:
		return emitBytes(enc, v.bytesVal)
	case KindDateTime:
		return enc.AppendDateTimeTzOffset(v.dtVal)
	case KindTimestamp:
		return enc.AppendTimestamp(v.tsVal)
	case KindList:
		return emitList(enc, v.listVal)
	}
	return fmt.Errorf("jtoo: unsupported value kind: %s", v.kind)
}

func emitString(enc *Encoder, s string) error {
	if err := enc.OpenString(); err != nil {
		return err
	}
	if err := enc.AppendString(s); err != nil {
		return err
	}
	return enc.CloseString()
}

func emitBytes(enc *Encoder, b []byte) error {
	if err := enc.OpenByteString(); err != nil {
		return err
	}
	if err := enc.AppendByteString(b); err != nil {
		return err
	}
	return enc.CloseByteString()
}

func emitList(enc *Encoder, items []*Value) error {
	if err := enc.OpenList(); err != nil {
		return err
	}
	for i, item := range items {
		if err := EmitTo(enc, item); err != nil {
			return fmt.Errorf("list[%d]: %w", i, err)
		}
	}
	return enc.CloseList()
}

// MarshalJTOO implements Marshaler.
func (v *Value) MarshalJTOO(enc *Encoder) error {
	return EmitTo(enc, v)
}
