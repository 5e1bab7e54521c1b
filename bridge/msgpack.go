package bridge

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Neumenon/jtoo/jtoo"
)

// ToMsgpack encodes v as MessagePack. Booleans, integers, strings, byte
// strings and lists are native; decimals, dates and timestamps are marker
// maps.
func ToMsgpack(v *jtoo.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeMsgpack(enc, v); err != nil {
		return nil, errors.Wrap(err, "msgpack")
	}
	return buf.Bytes(), nil
}

func encodeMsgpack(enc *msgpack.Encoder, v *jtoo.Value) error {
	if v == nil {
		return errors.New("nil value")
	}
	switch v.Kind() {
	case jtoo.KindBool:
		b, _ := v.AsBool()
		return enc.EncodeBool(b)
	case jtoo.KindInteger:
		n, _ := v.AsInt()
		return enc.EncodeInt(n)
	case jtoo.KindString:
		s, _ := v.AsStr()
		return enc.EncodeString(s)
	case jtoo.KindByteString:
		b, _ := v.AsBytes()
		return enc.EncodeBytes(b)
	case jtoo.KindList:
		items, _ := v.AsList()
		if err := enc.EncodeArrayLen(len(items)); err != nil {
			return err
		}
		for i, item := range items {
			if err := encodeMsgpack(enc, item); err != nil {
				return errors.Wrapf(err, "index %d", i)
			}
		}
		return nil
	}

	m, err := marker(v)
	if err != nil {
		return err
	}
	if err := enc.EncodeMapLen(2); err != nil {
		return err
	}
	for _, key := range []string{markerKey, markerValue} {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := enc.EncodeString(m[key].(string)); err != nil {
			return err
		}
	}
	return nil
}

// FromMsgpack decodes a single MessagePack value. Nil is rejected, maps
// become sorted [key, value] pair lists unless they are markers, floats
// become decimals and the timestamp extension becomes a nanosecond
// Timestamp.
func FromMsgpack(data []byte) (*jtoo.Value, error) {
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)
	x, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, errors.Wrap(err, "msgpack decode")
	}
	if r.Len() != 0 {
		return nil, errors.Errorf("msgpack: %d trailing bytes", r.Len())
	}
	v, err := fromGeneric(x)
	if err != nil {
		return nil, errors.Wrap(err, "msgpack")
	}
	return v, nil
}
