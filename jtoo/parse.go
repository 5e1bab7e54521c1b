package jtoo

// DefaultMaxDepth is the list nesting limit Parse applies.
const DefaultMaxDepth = 128

// ParseOptions configures Parse.
type ParseOptions struct {
	// MaxDepth bounds list nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultParseOptions returns the options Parse uses.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{MaxDepth: DefaultMaxDepth}
}

// Parse decodes a complete JTOO document into a Value, choosing each
// value's kind from its leading byte.
func Parse(data []byte) (*Value, error) {
	return ParseWithOptions(data, DefaultParseOptions())
}

// ParseWithOptions is Parse with custom options.
func ParseWithOptions(data []byte, opts ParseOptions) (*Value, error) {
	dec := NewDecoder(data)
	v, err := parseValue(dec, opts, 0)
	if err != nil {
		return nil, err
	}
	if err := dec.Close(); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalJTOO implements Unmarshaler, replacing v with the next value.
func (v *Value) UnmarshalJTOO(dec *Decoder) error {
	parsed, err := parseValue(dec, DefaultParseOptions(), 0)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func parseValue(dec *Decoder, opts ParseOptions, depth int) (*Value, error) {
	if err := dec.begin(); err != nil {
		return nil, err
	}
	if len(dec.data) == 0 {
		return nil, dec.fail(ExpectedValue)
	}

	switch c := dec.data[0]; {
	case c == 'T' && len(dec.data) > 1 && isDigit(dec.data[1]), c == 'D':
		dt, err := dec.ConsumeDateTimeTzOffset()
		if err != nil {
			return nil, err
		}
		return DateTime(dt), nil

	case c == 'T' || c == 'F':
		b, err := dec.ConsumeBool()
		if err != nil {
			return nil, err
		}
		return Bool(b), nil

	case c == '"':
		s, err := dec.ConsumeString()
		if err != nil {
			return nil, err
		}
		return Str(s), nil

	case c == 'B':
		b, err := dec.ConsumeByteString()
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil

	case c == 'S':
		ts, err := dec.ConsumeTimestamp()
		if err != nil {
			return nil, err
		}
		return Stamp(ts), nil

	case c == '-' || isDigit(c):
		if isDecimal(dec.data) {
			d, err := dec.ConsumeDecimal()
			if err != nil {
				return nil, err
			}
			return Dec(d.Mantissa, d.Exponent), nil
		}
		n, err := dec.ConsumeInteger()
		if err != nil {
			return nil, err
		}
		return Int(n), nil

	case c == '[':
		return parseList(dec, opts, depth)
	}
	return nil, dec.fail(ExpectedValue)
}

func parseList(dec *Decoder, opts ParseOptions, depth int) (*Value, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth >= maxDepth {
		return nil, dec.fail(ListTooDeep)
	}
	if err := dec.ConsumeOpenList(); err != nil {
		return nil, err
	}
	items := []*Value{}
	for dec.HasAnotherListItem() {
		item, err := parseValue(dec, opts, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := dec.ConsumeCloseList(); err != nil {
		return nil, err
	}
	return List(items...), nil
}

// isDecimal reports whether the number at the start of data has a fraction.
func isDecimal(data []byte) bool {
	i := 0
	if i < len(data) && data[i] == '-' {
		i++
	}
	for i < len(data) && (isDigit(data[i]) || data[i] == '_') {
		i++
	}
	return i < len(data) && data[i] == '.'
}
