package jtoo

// Marshaler is implemented by types that can write themselves to an Encoder.
type Marshaler interface {
	MarshalJTOO(enc *Encoder) error
}

// Unmarshaler is implemented by types that can read themselves from a
// Decoder. Implementations must not call Close.
type Unmarshaler interface {
	UnmarshalJTOO(dec *Decoder) error
}

// Marshal encodes v with a fresh Encoder.
func Marshal(v Marshaler) (string, error) {
	enc := NewEncoder()
	if err := v.MarshalJTOO(enc); err != nil {
		return "", err
	}
	return enc.Text()
}

// Unmarshal decodes data into v and checks that all of data was consumed.
func Unmarshal(data []byte, v Unmarshaler) error {
	dec := NewDecoder(data)
	if err := v.UnmarshalJTOO(dec); err != nil {
		return err
	}
	return dec.Close()
}
