package jtoo

import (
	"fmt"
	"strconv"
)

// ============================================================
// Decode Errors
// ============================================================

// ErrorReason is the closed set of reasons a Decoder can reject input.
// It implements error so callers can match with errors.Is.
type ErrorReason uint8

const (
	// Grammar-shape mismatches.
	ExpectedBool ErrorReason = iota + 1
	ExpectedInteger
	ExpectedDecimal
	ExpectedString
	ExpectedByteString
	ExpectedList
	ExpectedListEnd
	ExpectedListSeparator
	ExpectedListItem
	ExpectedValue
	ExpectedTimestamp
	ExpectedTimestampSeconds
	ExpectedTimestampMilliseconds
	ExpectedTimestampMicroseconds
	ExpectedTimestampNanoseconds
	ExpectedDateTimeTzOffset

	// Missing date/time components.
	ExpectedYear
	ExpectedMonth
	ExpectedWeek
	ExpectedDay
	ExpectedHour
	ExpectedMinute
	ExpectedSecond
	ExpectedMillisecond
	ExpectedMicrosecond
	ExpectedNanosecond
	ExpectedTzOffset

	// Granularity mismatches, date forms.
	ExpectedYearTzOffset
	ExpectedYearMonth
	ExpectedYearMonthTzOffset
	ExpectedYearWeek
	ExpectedYearWeekTzOffset
	ExpectedYearMonthDay
	ExpectedYearMonthDayTzOffset
	ExpectedYearWeekDay
	ExpectedYearWeekDayTzOffset

	// Granularity mismatches, month-based date with time.
	ExpectedYearMonthDayHour
	ExpectedYearMonthDayHourTzOffset
	ExpectedYearMonthDayHourMinute
	ExpectedYearMonthDayHourMinuteTzOffset
	ExpectedYearMonthDayHourMinuteSecond
	ExpectedYearMonthDayHourMinuteSecondTzOffset
	ExpectedYearMonthDayHourMinuteMillisecond
	ExpectedYearMonthDayHourMinuteMillisecondTzOffset
	ExpectedYearMonthDayHourMinuteMicrosecond
	ExpectedYearMonthDayHourMinuteMicrosecondTzOffset
	ExpectedYearMonthDayHourMinuteNanosecond
	ExpectedYearMonthDayHourMinuteNanosecondTzOffset

	// Granularity mismatches, week-based date with time.
	ExpectedYearWeekDayHour
	ExpectedYearWeekDayHourTzOffset
	ExpectedYearWeekDayHourMinute
	ExpectedYearWeekDayHourMinuteTzOffset
	ExpectedYearWeekDayHourMinuteSecond
	ExpectedYearWeekDayHourMinuteSecondTzOffset
	ExpectedYearWeekDayHourMinuteMillisecond
	ExpectedYearWeekDayHourMinuteMillisecondTzOffset
	ExpectedYearWeekDayHourMinuteMicrosecond
	ExpectedYearWeekDayHourMinuteMicrosecondTzOffset
	ExpectedYearWeekDayHourMinuteNanosecond
	ExpectedYearWeekDayHourMinuteNanosecondTzOffset

	// Granularity mismatches, time without date. A bare hour reports
	// ExpectedHour.
	ExpectedHourTzOffset
	ExpectedHourMinute
	ExpectedHourMinuteTzOffset
	ExpectedHourMinuteSecond
	ExpectedHourMinuteSecondTzOffset
	ExpectedHourMinuteMillisecond
	ExpectedHourMinuteMillisecondTzOffset
	ExpectedHourMinuteMicrosecond
	ExpectedHourMinuteMicrosecondTzOffset
	ExpectedHourMinuteNanosecond
	ExpectedHourMinuteNanosecondTzOffset

	// Malformed but shape-matching input.
	MalformedByteString
	MalformedDecimal
	MalformedTimestamp
	MalformedDate
	MalformedTime
	MalformedTimeZoneOffset
	MalformedDateTimeTzOffset

	// Numeric range violations.
	IntegerTooLarge
	DecimalTooLarge
	YearOutOfRange
	MonthOutOfRange
	WeekOutOfRange
	DayOutOfRange
	HourOutOfRange
	MinuteOutOfRange
	SecondOutOfRange
	TimezoneOffsetHourOutOfRange
	TimezoneOffsetMinuteOutOfRange

	// Canonical form violations.
	IncorrectDigitGrouping
	ExpectedSingleZero
	NegativeZero
	ZeroTimeZoneOffsetShouldBeZ
	ZeroTimeZoneMinutesShouldBeOmitted

	// Text encoding.
	NotUTF8
	IncompleteEscapeSequence
	InvalidEscapeSequence
	UnescapedControlByte
	UnclosedString

	// Structural errors. These indicate a caller driving the Decoder in
	// an order that does not match the data model.
	NotInList
	ListEndNotConsumed
	DataNotConsumed
	ListTooDeep
)

var reasonNames = map[ErrorReason]string{
	ExpectedBool:                  "ExpectedBool",
	ExpectedInteger:               "ExpectedInteger",
	ExpectedDecimal:               "ExpectedDecimal",
	ExpectedString:                "ExpectedString",
	ExpectedByteString:            "ExpectedByteString",
	ExpectedList:                  "ExpectedList",
	ExpectedListEnd:               "ExpectedListEnd",
	ExpectedListSeparator:         "ExpectedListSeparator",
	ExpectedListItem:              "ExpectedListItem",
	ExpectedValue:                 "ExpectedValue",
	ExpectedTimestamp:             "ExpectedTimestamp",
	ExpectedTimestampSeconds:      "ExpectedTimestampSeconds",
	ExpectedTimestampMilliseconds: "ExpectedTimestampMilliseconds",
	ExpectedTimestampMicroseconds: "ExpectedTimestampMicroseconds",
	ExpectedTimestampNanoseconds:  "ExpectedTimestampNanoseconds",
	ExpectedDateTimeTzOffset:      "ExpectedDateTimeTzOffset",

	ExpectedYear:        "ExpectedYear",
	ExpectedMonth:       "ExpectedMonth",
	ExpectedWeek:        "ExpectedWeek",
	ExpectedDay:         "ExpectedDay",
	ExpectedHour:        "ExpectedHour",
	ExpectedMinute:      "ExpectedMinute",
	ExpectedSecond:      "ExpectedSecond",
	ExpectedMillisecond: "ExpectedMillisecond",
	ExpectedMicrosecond: "ExpectedMicrosecond",
	ExpectedNanosecond:  "ExpectedNanosecond",
	ExpectedTzOffset:    "ExpectedTzOffset",

	ExpectedYearTzOffset:         "ExpectedYearTzOffset",
	ExpectedYearMonth:            "ExpectedYearMonth",
	ExpectedYearMonthTzOffset:    "ExpectedYearMonthTzOffset",
	ExpectedYearWeek:             "ExpectedYearWeek",
	ExpectedYearWeekTzOffset:     "ExpectedYearWeekTzOffset",
	ExpectedYearMonthDay:         "ExpectedYearMonthDay",
	ExpectedYearMonthDayTzOffset: "ExpectedYearMonthDayTzOffset",
	ExpectedYearWeekDay:          "ExpectedYearWeekDay",
	ExpectedYearWeekDayTzOffset:  "ExpectedYearWeekDayTzOffset",

	ExpectedYearMonthDayHour:                          "ExpectedYearMonthDayHour",
	ExpectedYearMonthDayHourTzOffset:                  "ExpectedYearMonthDayHourTzOffset",
	ExpectedYearMonthDayHourMinute:                    "ExpectedYearMonthDayHourMinute",
	ExpectedYearMonthDayHourMinuteTzOffset:            "ExpectedYearMonthDayHourMinuteTzOffset",
	ExpectedYearMonthDayHourMinuteSecond:              "ExpectedYearMonthDayHourMinuteSecond",
	ExpectedYearMonthDayHourMinuteSecondTzOffset:      "ExpectedYearMonthDayHourMinuteSecondTzOffset",
	ExpectedYearMonthDayHourMinuteMillisecond:         "ExpectedYearMonthDayHourMinuteMillisecond",
	ExpectedYearMonthDayHourMinuteMillisecondTzOffset: "ExpectedYearMonthDayHourMinuteMillisecondTzOffset",
	ExpectedYearMonthDayHourMinuteMicrosecond:         "ExpectedYearMonthDayHourMinuteMicrosecond",
	ExpectedYearMonthDayHourMinuteMicrosecondTzOffset: "ExpectedYearMonthDayHourMinuteMicrosecondTzOffset",
	ExpectedYearMonthDayHourMinuteNanosecond:          "ExpectedYearMonthDayHourMinuteNanosecond",
	ExpectedYearMonthDayHourMinuteNanosecondTzOffset:  "ExpectedYearMonthDayHourMinuteNanosecondTzOffset",

	ExpectedYearWeekDayHour:                          "ExpectedYearWeekDayHour",
	ExpectedYearWeekDayHourTzOffset:                  "ExpectedYearWeekDayHourTzOffset",
	ExpectedYearWeekDayHourMinute:                    "ExpectedYearWeekDayHourMinute",
	ExpectedYearWeekDayHourMinuteTzOffset:            "ExpectedYearWeekDayHourMinuteTzOffset",
	ExpectedYearWeekDayHourMinuteSecond:              "ExpectedYearWeekDayHourMinuteSecond",
	ExpectedYearWeekDayHourMinuteSecondTzOffset:      "ExpectedYearWeekDayHourMinuteSecondTzOffset",
	ExpectedYearWeekDayHourMinuteMillisecond:         "ExpectedYearWeekDayHourMinuteMillisecond",
	ExpectedYearWeekDayHourMinuteMillisecondTzOffset: "ExpectedYearWeekDayHourMinuteMillisecondTzOffset",
	ExpectedYearWeekDayHourMinuteMicrosecond:         "ExpectedYearWeekDayHourMinuteMicrosecond",
	ExpectedYearWeekDayHourMinuteMicrosecondTzOffset: "ExpectedYearWeekDayHourMinuteMicrosecondTzOffset",
	ExpectedYearWeekDayHourMinuteNanosecond:          "ExpectedYearWeekDayHourMinuteNanosecond",
	ExpectedYearWeekDayHourMinuteNanosecondTzOffset:  "ExpectedYearWeekDayHourMinuteNanosecondTzOffset",

	ExpectedHourTzOffset:                  "ExpectedHourTzOffset",
	ExpectedHourMinute:                    "ExpectedHourMinute",
	ExpectedHourMinuteTzOffset:            "ExpectedHourMinuteTzOffset",
	ExpectedHourMinuteSecond:              "ExpectedHourMinuteSecond",
	ExpectedHourMinuteSecondTzOffset:      "ExpectedHourMinuteSecondTzOffset",
	ExpectedHourMinuteMillisecond:         "ExpectedHourMinuteMillisecond",
	ExpectedHourMinuteMillisecondTzOffset: "ExpectedHourMinuteMillisecondTzOffset",
	ExpectedHourMinuteMicrosecond:         "ExpectedHourMinuteMicrosecond",
	ExpectedHourMinuteMicrosecondTzOffset: "ExpectedHourMinuteMicrosecondTzOffset",
	ExpectedHourMinuteNanosecond:          "ExpectedHourMinuteNanosecond",
	ExpectedHourMinuteNanosecondTzOffset:  "ExpectedHourMinuteNanosecondTzOffset",

	MalformedByteString:       "MalformedByteString",
	MalformedDecimal:          "MalformedDecimal",
	MalformedTimestamp:        "MalformedTimestamp",
	MalformedDate:             "MalformedDate",
	MalformedTime:             "MalformedTime",
	MalformedTimeZoneOffset:   "MalformedTimeZoneOffset",
	MalformedDateTimeTzOffset: "MalformedDateTimeTzOffset",

	IntegerTooLarge:                "IntegerTooLarge",
	DecimalTooLarge:                "DecimalTooLarge",
	YearOutOfRange:                 "YearOutOfRange",
	MonthOutOfRange:                "MonthOutOfRange",
	WeekOutOfRange:                 "WeekOutOfRange",
	DayOutOfRange:                  "DayOutOfRange",
	HourOutOfRange:                 "HourOutOfRange",
	MinuteOutOfRange:               "MinuteOutOfRange",
	SecondOutOfRange:               "SecondOutOfRange",
	TimezoneOffsetHourOutOfRange:   "TimezoneOffsetHourOutOfRange",
	TimezoneOffsetMinuteOutOfRange: "TimezoneOffsetMinuteOutOfRange",

	IncorrectDigitGrouping:             "IncorrectDigitGrouping",
	ExpectedSingleZero:                 "ExpectedSingleZero",
	NegativeZero:                       "NegativeZero",
	ZeroTimeZoneOffsetShouldBeZ:        "ZeroTimeZoneOffsetShouldBeZ",
	ZeroTimeZoneMinutesShouldBeOmitted: "ZeroTimeZoneMinutesShouldBeOmitted",

	NotUTF8:                  "NotUtf8",
	IncompleteEscapeSequence: "IncompleteEscapeSequence",
	InvalidEscapeSequence:    "InvalidEscapeSequence",
	UnescapedControlByte:     "UnescapedControlByte",
	UnclosedString:           "UnclosedString",

	NotInList:          "NotInList",
	ListEndNotConsumed: "ListEndNotConsumed",
	DataNotConsumed:    "DataNotConsumed",
	ListTooDeep:        "ListTooDeep",
}

// String returns the reason name.
func (r ErrorReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "ErrorReason(" + strconv.Itoa(int(r)) + ")"
}

// Error implements error.
func (r ErrorReason) Error() string {
	return "jtoo: " + r.String()
}

// DecodeError reports why a Decoder rejected its input.
type DecodeError struct {
	Reason ErrorReason

	// Snippet views the caller's input at the start of the value that
	// failed to decode, capped at maxSnippet bytes. It aliases the input
	// buffer and is only valid while that buffer is.
	Snippet []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jtoo: %s: '%s'", e.Reason, EscapeASCII(e.Snippet))
}

// Unwrap returns the reason so errors.Is(err, jtoo.NotUTF8) matches.
func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// ============================================================
// Encode Errors
// ============================================================

// EncodeError is the closed set of reasons an Encoder can refuse a call.
type EncodeError uint8

const (
	// Structural misuse.
	ErrNotInByteString EncodeError = iota + 1
	ErrNotInList
	ErrNotInString
	ErrUnclosedByteString
	ErrUnclosedList
	ErrUnclosedString
	ErrAppenderConsumed

	// Value violations.
	ErrInvalidUTF8
	ErrInvalidTimestamp
	ErrInvalidYear
	ErrInvalidMonth
	ErrInvalidWeek
	ErrInvalidDay
	ErrInvalidWeekday
	ErrInvalidHour
	ErrInvalidMinute
	ErrInvalidSecond
	ErrInvalidMillisecond
	ErrInvalidMicrosecond
	ErrInvalidNanosecond
	ErrInvalidTimezoneOffset
	ErrInvalidDateTimeTzOffset
	ErrInvalidDecimal
)

var encodeErrorNames = map[EncodeError]string{
	ErrNotInByteString:         "NotInByteString",
	ErrNotInList:               "NotInList",
	ErrNotInString:             "NotInString",
	ErrUnclosedByteString:      "UnclosedByteString",
	ErrUnclosedList:            "UnclosedList",
	ErrUnclosedString:          "UnclosedString",
	ErrAppenderConsumed:        "AppenderConsumed",
	ErrInvalidUTF8:             "InvalidUTF8",
	ErrInvalidTimestamp:        "InvalidTimestamp",
	ErrInvalidYear:             "InvalidYear",
	ErrInvalidMonth:            "InvalidMonth",
	ErrInvalidWeek:             "InvalidWeek",
	ErrInvalidDay:              "InvalidDay",
	ErrInvalidWeekday:          "InvalidWeekday",
	ErrInvalidHour:             "InvalidHour",
	ErrInvalidMinute:           "InvalidMinute",
	ErrInvalidSecond:           "InvalidSecond",
	ErrInvalidMillisecond:      "InvalidMillisecond",
	ErrInvalidMicrosecond:      "InvalidMicrosecond",
	ErrInvalidNanosecond:       "InvalidNanosecond",
	ErrInvalidTimezoneOffset:   "InvalidTimezoneOffset",
	ErrInvalidDateTimeTzOffset: "InvalidDateTimeTzOffset",
	ErrInvalidDecimal:          "InvalidDecimal",
}

// String returns the error name without the package prefix.
func (e EncodeError) String() string {
	if name, ok := encodeErrorNames[e]; ok {
		return name
	}
	return "EncodeError(" + strconv.Itoa(int(e)) + ")"
}

func (e EncodeError) Error() string {
	return "jtoo: encode: " + e.String()
}
