package jtoo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *Value
	}{
		{"T", Bool(true)},
		{"F", Bool(false)},
		{"-1_234", Int(-1234)},
		{"0", Int(0)},
		{"1_234.5", Dec(12345, -1)},
		{"-0.001", Dec(-1, -3)},
		{`"hi\0a"`, Str("hi\n")},
		{"B00ff", Bytes([]byte{0x00, 0xff})},
		{"S1_700_000_000.123", Stamp(Timestamp{1_700_000_000_123, Milliseconds})},
		{"D2029-08-07", DateTime(DateTimeTzOffset{Date: Date{Kind: DateYearMonthDay, Year: 2029, Month: 8, Day: 7}})},
		{"T06:05Z", DateTime(DateTimeTzOffset{Time: Time{Precision: PrecisionMinute, Hour: 6, Minute: 5}, HasTzOffset: true})},
	}
	for _, tt := range tests {
		t.Run(EscapeASCII([]byte(tt.in)), func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, got), "got %s", got)
			assert.Equal(t, tt.want.Kind(), got.Kind())
		})
	}
}

func TestParseList(t *testing.T) {
	got, err := Parse([]byte(`[[],T,[1,"a"],D2029]`))
	require.NoError(t, err)
	want := List(
		List(),
		Bool(true),
		List(Int(1), Str("a")),
		DateTime(DateTimeTzOffset{Date: Date{Kind: DateYear, Year: 2029}}),
	)
	assert.True(t, Equal(want, got), "got %s", got)
	assert.Equal(t, 4, got.Len())

	first, err := got.Index(0)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Len())
	_, err = got.Index(4)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		reason ErrorReason
	}{
		{"", ExpectedValue},
		{"x", ExpectedValue},
		{"[T T]", ExpectedListSeparator},
		{"[T,]", ExpectedListItem},
		{"[1", ExpectedListEnd},
		{"T,", DataNotConsumed},
		{"]", ExpectedValue},
		{"-x", ExpectedInteger},
		{"1.", MalformedDecimal},
		{`"abc`, UnclosedString},
	}
	for _, tt := range tests {
		t.Run(EscapeASCII([]byte(tt.in)), func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.ErrorIs(t, err, tt.reason)
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 3) + strings.Repeat("]", 3)
	_, err := ParseWithOptions([]byte(deep), ParseOptions{MaxDepth: 3})
	require.NoError(t, err)
	_, err = ParseWithOptions([]byte(deep), ParseOptions{MaxDepth: 2})
	assert.ErrorIs(t, err, ListTooDeep)

	tooDeep := strings.Repeat("[", DefaultMaxDepth+1) + strings.Repeat("]", DefaultMaxDepth+1)
	_, err = Parse([]byte(tooDeep))
	assert.ErrorIs(t, err, ListTooDeep)
	_, err = ParseWithOptions([]byte(tooDeep), ParseOptions{})
	assert.ErrorIs(t, err, ListTooDeep)
}

func TestEmitRoundTrip(t *testing.T) {
	docs := []string{
		"T",
		"-9_223_372_036_854_775_808",
		"0.000_000_1",
		`"tab\09quote\22"`,
		"B",
		"Bdeadbeef",
		"S0.000_000_001",
		"D2029-W08-03T06:05:04.333_222_111~05:30",
		"T23:59:60",
		"[]",
		`[[],T,[1,"a",[B00]],D2029-08Z]`,
	}
	for _, doc := range docs {
		t.Run(EscapeASCII([]byte(doc)), func(t *testing.T) {
			v, err := Parse([]byte(doc))
			require.NoError(t, err)
			out, err := Emit(v)
			require.NoError(t, err)
			assert.Equal(t, doc, out)
			assert.Equal(t, doc, v.String())
		})
	}
}

func TestEmitErrors(t *testing.T) {
	_, err := Emit(nil)
	assert.Error(t, err)

	_, err = Emit(List(Int(1), Str("\xff")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "list[1]")

	assert.Contains(t, DateTime(DateTimeTzOffset{}).String(), "<invalid:")
}

func TestValueAccessors(t *testing.T) {
	b, err := Bool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	n, err := Int(42).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	d, err := Dec(15, -1).AsDecimal()
	require.NoError(t, err)
	assert.Equal(t, Decimal{15, -1}, d)

	s, err := Str("x").AsStr()
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	raw, err := Bytes([]byte{1}).AsBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, raw)

	ts, err := Stamp(Timestamp{5, Seconds}).AsTimestamp()
	require.NoError(t, err)
	assert.Equal(t, Timestamp{5, Seconds}, ts)

	_, err = Int(1).AsStr()
	assert.EqualError(t, err, "jtoo: expected string, got integer")
	_, err = Str("1").AsList()
	assert.EqualError(t, err, "jtoo: expected list, got string")
	var nilValue *Value
	_, err = nilValue.AsBool()
	assert.Error(t, err)
}

func TestValueAppend(t *testing.T) {
	l := List()
	l.Append(Int(1))
	l.Append(Bool(false))
	assert.Equal(t, "[1,F]", l.String())
	assert.Panics(t, func() { Int(1).Append(Int(2)) })
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Int(1), nil))
	assert.False(t, Equal(Int(1), Dec(1, 0)))
	assert.False(t, Equal(Dec(10, -1), Dec(100, -2)))
	assert.True(t, Equal(Bytes(nil), Bytes([]byte{})))
	assert.False(t, Equal(List(Int(1)), List(Int(1), Int(2))))
}

type point struct {
	X, Y int64
}

func (p point) MarshalJTOO(enc *Encoder) error {
	if err := enc.OpenList(); err != nil {
		return err
	}
	if err := enc.AppendInteger(p.X); err != nil {
		return err
	}
	if err := enc.AppendInteger(p.Y); err != nil {
		return err
	}
	return enc.CloseList()
}

func (p *point) UnmarshalJTOO(dec *Decoder) error {
	if err := dec.ConsumeOpenList(); err != nil {
		return err
	}
	var err error
	if p.X, err = dec.ConsumeInteger(); err != nil {
		return err
	}
	if p.Y, err = dec.ConsumeInteger(); err != nil {
		return err
	}
	return dec.ConsumeCloseList()
}

func TestMarshalUnmarshal(t *testing.T) {
	text, err := Marshal(point{1_000, -2})
	require.NoError(t, err)
	assert.Equal(t, "[1_000,-2]", text)

	var p point
	require.NoError(t, Unmarshal([]byte(text), &p))
	assert.Equal(t, point{1_000, -2}, p)

	assert.ErrorIs(t, Unmarshal([]byte("[1,2]T"), &p), DataNotConsumed)
	assert.ErrorIs(t, Unmarshal([]byte("[1,2,3]"), &p), ExpectedListEnd)
}

func TestValueMarshaler(t *testing.T) {
	v := List(Str("k"), Dec(5, -1))
	text, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `["k",0.5]`, text)

	var got Value
	require.NoError(t, Unmarshal([]byte(text), &got))
	assert.True(t, Equal(v, &got))
}
