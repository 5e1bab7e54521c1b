package jtoo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeCase is one input for a single Consume call. A zero reason means
// the call must succeed with want and leave nothing behind.
type decodeCase[T any] struct {
	in     string
	want   T
	reason ErrorReason
}

func runDecodeCases[T any](t *testing.T, cases []decodeCase[T], consume func(*Decoder) (T, error)) {
	t.Helper()
	for _, tc := range cases {
		t.Run(EscapeASCII([]byte(tc.in)), func(t *testing.T) {
			dec := NewDecoder([]byte(tc.in))
			got, err := consume(dec)
			if tc.reason != 0 {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.reason, "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			require.NoError(t, dec.Close())
		})
	}
}

func TestDecoderEmpty(t *testing.T) {
	require.NoError(t, NewDecoder(nil).Close())
}

func TestConsumeBool(t *testing.T) {
	runDecodeCases(t, []decodeCase[bool]{
		{in: "", reason: ExpectedBool},
		{in: `"a"`, reason: ExpectedBool},
		{in: "!", reason: ExpectedBool},
		{in: "T", want: true},
		{in: "F", want: false},
		{in: "TT", reason: DataNotConsumed},
	}, func(d *Decoder) (bool, error) {
		v, err := d.ConsumeBool()
		if err == nil && len(d.data) > 0 {
			return v, d.Close()
		}
		return v, err
	})
}

func TestConsumeInteger(t *testing.T) {
	runDecodeCases(t, []decodeCase[int64]{
		{in: "", reason: ExpectedInteger},
		{in: `"a"`, reason: ExpectedInteger},
		{in: "T", reason: ExpectedInteger},
		{in: "-", reason: ExpectedInteger},
		{in: "1.5", reason: ExpectedInteger},
		{in: "0", want: 0},
		{in: "1", want: 1},
		{in: "12", want: 12},
		{in: "123", want: 123},
		{in: "1_234", want: 1234},
		{in: "12_345", want: 12345},
		{in: "123_456", want: 123456},
		{in: "1_234_567", want: 1234567},
		{in: "-1_234_567", want: -1234567},
		{in: "-12_345", want: -12345},
		{in: "-1", want: -1},
		{in: "9_223_372_036_854_775_807", want: math.MaxInt64},
		{in: "9_223_372_036_854_775_808", reason: IntegerTooLarge},
		{in: "-9_223_372_036_854_775_808", want: math.MinInt64},
		{in: "-9_223_372_036_854_775_809", reason: IntegerTooLarge},
		{in: "-0", reason: NegativeZero},
		{in: "-00", reason: ExpectedSingleZero},
		{in: "00", reason: ExpectedSingleZero},
		{in: "0_000", reason: ExpectedSingleZero},
		{in: "1000", reason: IncorrectDigitGrouping},
		{in: "_", reason: IncorrectDigitGrouping},
		{in: "1_", reason: IncorrectDigitGrouping},
		{in: "_1", reason: IncorrectDigitGrouping},
		{in: "-_1", reason: IncorrectDigitGrouping},
		{in: "1_0", reason: IncorrectDigitGrouping},
		{in: "1_00", reason: IncorrectDigitGrouping},
		{in: "-1_00", reason: IncorrectDigitGrouping},
		{in: "1_0000", reason: IncorrectDigitGrouping},
		{in: "1_000_", reason: IncorrectDigitGrouping},
		{in: "1_000_0", reason: IncorrectDigitGrouping},
		{in: "1_000_0000", reason: IncorrectDigitGrouping},
	}, (*Decoder).ConsumeInteger)
}

func TestConsumeDecimal(t *testing.T) {
	runDecodeCases(t, []decodeCase[Decimal]{
		{in: "", reason: ExpectedDecimal},
		{in: "T", reason: ExpectedDecimal},
		{in: "1", reason: MalformedDecimal},
		{in: "1.", reason: MalformedDecimal},
		{in: "1.x", reason: MalformedDecimal},
		{in: "0.0", want: Decimal{0, -1}},
		{in: "0.00", want: Decimal{0, -2}},
		{in: "1.5", want: Decimal{15, -1}},
		{in: "-0.5", want: Decimal{-5, -1}},
		{in: "1.500", want: Decimal{1500, -3}},
		{in: "1_234.567_8", want: Decimal{12345678, -4}},
		{in: "0.000_000_1", want: Decimal{1, -7}},
		{in: "9.223_372_036_854_775_807", want: Decimal{math.MaxInt64, -18}},
		{in: "-9.223_372_036_854_775_808", want: Decimal{math.MinInt64, -18}},
		{in: "9.223_372_036_854_775_808", reason: DecimalTooLarge},
		{in: "-0.0", reason: NegativeZero},
		{in: "00.1", reason: ExpectedSingleZero},
		{in: "1000.0", reason: IncorrectDigitGrouping},
		{in: "1.0000", reason: IncorrectDigitGrouping},
		{in: "1.000_", reason: IncorrectDigitGrouping},
		{in: "1._000", reason: IncorrectDigitGrouping},
		{in: "1.00_0", reason: IncorrectDigitGrouping},
	}, (*Decoder).ConsumeDecimal)
}

func TestConsumeString(t *testing.T) {
	runDecodeCases(t, []decodeCase[string]{
		{in: "", reason: ExpectedString},
		{in: `"`, reason: UnclosedString},
		{in: `"abc`, reason: UnclosedString},
		{in: `"abc"`, want: "abc"},
		{in: `""`, want: ""},
		{in: "\"\xe4\xbd\xa0\"", want: "你"},
		{in: "\"\xe4\xbd\"", reason: NotUTF8},
		{in: `"\"`, reason: IncompleteEscapeSequence},
		{in: `"\0"`, reason: IncompleteEscapeSequence},
		{in: `"\g0"`, reason: InvalidEscapeSequence},
		{in: `"\0g"`, reason: InvalidEscapeSequence},
		{in: `"\0A"`, reason: InvalidEscapeSequence},
		{in: `"\20"`, reason: InvalidEscapeSequence},
		{in: `"\21"`, reason: InvalidEscapeSequence},
		{in: `"\5b"`, reason: InvalidEscapeSequence},
		{in: `"\7e"`, reason: InvalidEscapeSequence},
		{in: `"\80"`, reason: InvalidEscapeSequence},
		{in: `"\ff"`, reason: InvalidEscapeSequence},
		{in: "\"a\nb\"", reason: UnescapedControlByte},
		{in: `"a\0ab"`, want: "a\nb"},
		{
			in:   `"\00 \01 \09 \0a \0d \1f \22 \5c \7f"`,
			want: "\x00 \x01 \t \n \r \x1f \" \\ \x7f",
		},
	}, (*Decoder).ConsumeString)
}

func TestConsumeByteString(t *testing.T) {
	runDecodeCases(t, []decodeCase[[]byte]{
		{in: "", reason: ExpectedByteString},
		{in: "T", reason: ExpectedByteString},
		{in: "B", want: []byte{}},
		{in: "B00", want: []byte{0}},
		{in: "Bdeadbeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{in: "B0", reason: MalformedByteString},
		{in: "B012", reason: MalformedByteString},
		{in: "B0A", reason: MalformedByteString},
		{in: "B0g", reason: MalformedByteString},
	}, (*Decoder).ConsumeByteString)
}

func TestConsumeTimestamp(t *testing.T) {
	ms := func(d *Decoder) (uint64, error) { return d.ConsumeTimestampMilliseconds() }
	runDecodeCases(t, []decodeCase[uint64]{
		{in: "", reason: ExpectedTimestamp},
		{in: "1", reason: ExpectedTimestamp},
		{in: "S", reason: MalformedTimestamp},
		{in: "S-1.000", reason: MalformedTimestamp},
		{in: "S_1.000", reason: IncorrectDigitGrouping},
		{in: "S1", reason: ExpectedTimestampMilliseconds},
		{in: "S1.5", reason: ExpectedTimestampMilliseconds},
		{in: "S1.", reason: MalformedTimestamp},
		{in: "S0.000", want: 0},
		{in: "S1_700_000_000.123", want: 1_700_000_000_123},
	}, ms)

	runDecodeCases(t, []decodeCase[uint64]{
		{in: "S0", want: 0},
		{in: "S1_700_000_000", want: 1_700_000_000},
		{in: "S9_223_372_036_854_775_807", want: math.MaxInt64},
		{in: "S9_223_372_036_854_775_808", reason: IntegerTooLarge},
		{in: "S1.000", reason: ExpectedTimestampSeconds},
	}, (*Decoder).ConsumeTimestampSeconds)

	runDecodeCases(t, []decodeCase[uint64]{
		{in: "S1.000_002", want: 1_000_002},
		{in: "S1.000", reason: ExpectedTimestampMicroseconds},
	}, (*Decoder).ConsumeTimestampMicroseconds)

	runDecodeCases(t, []decodeCase[uint64]{
		{in: "S1.000_000_003", want: 1_000_000_003},
		{in: "S1.000_000", reason: ExpectedTimestampNanoseconds},
	}, (*Decoder).ConsumeTimestampNanoseconds)

	runDecodeCases(t, []decodeCase[Timestamp]{
		{in: "S12", want: Timestamp{Value: 12, Unit: Seconds}},
		{in: "S12.000_001", want: Timestamp{Value: 12_000_001, Unit: Microseconds}},
		{in: "S12.0", reason: MalformedTimestamp},
	}, (*Decoder).ConsumeTimestamp)
}

func TestListMissingSeparator(t *testing.T) {
	dec := NewDecoder([]byte("[TT]"))
	require.NoError(t, dec.ConsumeOpenList())
	_, err := dec.ConsumeBool()
	assert.ErrorIs(t, err, ExpectedListSeparator)
}

func TestListListMissingSeparator(t *testing.T) {
	dec := NewDecoder([]byte("[[][]]"))
	require.NoError(t, dec.ConsumeOpenList())
	require.NoError(t, dec.ConsumeOpenList())
	assert.ErrorIs(t, dec.ConsumeCloseList(), ExpectedListSeparator)
}

func TestListNested(t *testing.T) {
	dec := NewDecoder([]byte("[[],[],[[T]]]"))
	require.NoError(t, dec.ConsumeOpenList())
	require.NoError(t, dec.ConsumeOpenList())
	require.NoError(t, dec.ConsumeCloseList())
	require.NoError(t, dec.ConsumeOpenList())
	require.NoError(t, dec.ConsumeCloseList())
	require.NoError(t, dec.ConsumeOpenList())
	require.NoError(t, dec.ConsumeOpenList())
	b, err := dec.ConsumeBool()
	require.NoError(t, err)
	assert.True(t, b)
	require.NoError(t, dec.ConsumeCloseList())
	require.NoError(t, dec.ConsumeCloseList())
	require.NoError(t, dec.ConsumeCloseList())
	require.NoError(t, dec.Close())
}

func TestListIteration(t *testing.T) {
	dec := NewDecoder([]byte(`["a","b",[]]`))
	require.NoError(t, dec.ConsumeOpenList())

	var got []string
	for i := 0; dec.HasAnotherListItem(); i++ {
		if i == 2 {
			require.NoError(t, dec.ConsumeOpenList())
			assert.False(t, dec.HasAnotherListItem())
			require.NoError(t, dec.ConsumeCloseList())
			continue
		}
		s, err := dec.ConsumeString()
		require.NoError(t, err)
		got = append(got, s)
	}
	require.NoError(t, dec.ConsumeCloseList())
	require.NoError(t, dec.Close())
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestListErrors(t *testing.T) {
	t.Run("not a list", func(t *testing.T) {
		assert.ErrorIs(t, NewDecoder([]byte("T")).ConsumeOpenList(), ExpectedList)
	})

	t.Run("close outside list", func(t *testing.T) {
		assert.ErrorIs(t, NewDecoder([]byte("]")).ConsumeCloseList(), NotInList)
	})

	t.Run("trailing comma", func(t *testing.T) {
		dec := NewDecoder([]byte("[T,]"))
		require.NoError(t, dec.ConsumeOpenList())
		_, err := dec.ConsumeBool()
		require.NoError(t, err)
		assert.False(t, dec.HasAnotherListItem())
		assert.ErrorIs(t, dec.ConsumeCloseList(), ExpectedListItem)
	})

	t.Run("unterminated", func(t *testing.T) {
		dec := NewDecoder([]byte("[T,"))
		require.NoError(t, dec.ConsumeOpenList())
		_, err := dec.ConsumeBool()
		require.NoError(t, err)
		assert.ErrorIs(t, dec.ConsumeCloseList(), ExpectedListEnd)
	})

	t.Run("list not closed", func(t *testing.T) {
		dec := NewDecoder([]byte("[T"))
		require.NoError(t, dec.ConsumeOpenList())
		_, err := dec.ConsumeBool()
		require.NoError(t, err)
		assert.ErrorIs(t, dec.Close(), ListEndNotConsumed)
	})

	t.Run("trailing data", func(t *testing.T) {
		dec := NewDecoder([]byte("[]x"))
		require.NoError(t, dec.ConsumeOpenList())
		require.NoError(t, dec.ConsumeCloseList())
		assert.ErrorIs(t, dec.Close(), DataNotConsumed)
	})
}

func TestDecoderErrorsAreSticky(t *testing.T) {
	dec := NewDecoder([]byte("xT"))
	_, first := dec.ConsumeBool()
	require.Error(t, first)

	_, err := dec.ConsumeBool()
	assert.Same(t, first, err)
	assert.Same(t, first, dec.Close())
	assert.False(t, dec.HasAnotherListItem())
}

func TestDecodeErrorSnippet(t *testing.T) {
	dec := NewDecoder([]byte("[T,\"abc\n"))
	require.NoError(t, dec.ConsumeOpenList())
	_, err := dec.ConsumeBool()
	require.NoError(t, err)
	_, err = dec.ConsumeInteger()

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ExpectedInteger, de.Reason)
	assert.Equal(t, []byte("\"abc\n"), de.Snippet)
	assert.Equal(t, `jtoo: ExpectedInteger: '\"abc\n'`, err.Error())
}

func TestErrorReasonNames(t *testing.T) {
	assert.Equal(t, "NotUtf8", NotUTF8.String())
	assert.Equal(t, "ZeroTimeZoneOffsetShouldBeZ", ZeroTimeZoneOffsetShouldBeZ.String())
	assert.Equal(t, "ErrorReason(250)", ErrorReason(250).String())

	_, err := NewDecoder([]byte("\"\xff\"")).ConsumeString()
	assert.ErrorIs(t, err, NotUTF8)
	assert.Contains(t, err.Error(), "jtoo: NotUtf8: ")
}

func TestDecodeErrorSnippetIsBounded(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	_, err := NewDecoder(long).ConsumeBool()

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Len(t, de.Snippet, maxSnippet)
}

func TestEscapeASCII(t *testing.T) {
	assert.Equal(t, `abc`, EscapeASCII([]byte("abc")))
	assert.Equal(t, `\t\r\n\\\'\"`, EscapeASCII([]byte("\t\r\n\\'\"")))
	assert.Equal(t, `\x00\x7f\xff`, EscapeASCII([]byte{0x00, 0x7f, 0xff}))
}
