package jtoo

// ============================================================
// Date / Time / Timezone composite
// ============================================================

// DateKind identifies which calendar fields a Date carries.
type DateKind uint8

const (
	NoDate DateKind = iota
	DateYear
	DateYearMonth
	DateYearWeek
	DateYearMonthDay
	DateYearWeekDay
)

func (k DateKind) hasMonth() bool { return k == DateYearMonth || k == DateYearMonthDay }
func (k DateKind) hasWeek() bool  { return k == DateYearWeek || k == DateYearWeekDay }
func (k DateKind) hasDay() bool   { return k == DateYearMonthDay || k == DateYearWeekDay }

// Date is a calendar date: D2029, D2029-08, D2029-W08, D2029-08-07 or
// D2029-W08-03. Fields not carried by Kind are zero.
type Date struct {
	Kind  DateKind
	Year  uint16 // 1-9999
	Month uint8  // 1-12
	Week  uint8  // 1-53
	Day   uint8  // 1-31 for month dates, weekday 1-7 for week dates
}

// HasDay reports whether the date is precise enough to carry a time.
func (d Date) HasDay() bool {
	return d.Kind.hasDay()
}

// TimePrecision identifies the finest field a Time carries.
type TimePrecision uint8

const (
	NoTime TimePrecision = iota
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
	PrecisionMillisecond
	PrecisionMicrosecond
	PrecisionNanosecond
)

// Time is a time of day with up to nanosecond precision.
//
// Nanos counts from the start of the minute, so whole seconds are part of
// it: 04.333_222_198 is stored as 4_333_222_198. Values up to
// 60_999_999_999 are legal to allow for leap seconds.
type Time struct {
	Precision TimePrecision
	Hour      uint8
	Minute    uint8
	Nanos     uint64
}

// Second returns the whole seconds of the minute.
func (t Time) Second() uint8 { return uint8(t.Nanos / 1_000_000_000) }

// Millisecond returns milliseconds since the start of the minute.
func (t Time) Millisecond() uint32 { return uint32(t.Nanos / 1_000_000) }

// Microsecond returns microseconds since the start of the minute.
func (t Time) Microsecond() uint32 { return uint32(t.Nanos / 1_000) }

// Nanosecond returns nanoseconds since the start of the minute.
func (t Time) Nanosecond() uint64 { return t.Nanos }

// TzOffset is a UTC offset. Hour carries the sign.
type TzOffset struct {
	Hour   int8  // -23..23
	Minute uint8 // 0..59
}

// IsZero reports whether the offset is UTC, written Z.
func (tz TzOffset) IsZero() bool {
	return tz.Hour == 0 && tz.Minute == 0
}

// DateTimeTzOffset is the composite of an optional Date, an optional Time
// and an optional offset. At least one of Date and Time is present, and a
// Time only follows a Date that has a day.
type DateTimeTzOffset struct {
	Date        Date
	Time        Time
	TzOffset    TzOffset
	HasTzOffset bool
}

// ============================================================
// Granularity-specific shapes
// ============================================================

// Year is a D2029 date.
type Year struct {
	Year uint16
}

// YearMonth is a D2029-08 date.
type YearMonth struct {
	Year  uint16
	Month uint8
}

// YearWeek is a D2029-W08 date.
type YearWeek struct {
	Year uint16
	Week uint8
}

// YearMonthDay is a D2029-08-07 date.
type YearMonthDay struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// YearWeekDay is a D2029-W08-03 date.
type YearWeekDay struct {
	Year    uint16
	Week    uint8
	Weekday uint8
}

// Hour is a T06 time.
type Hour struct {
	Hour uint8
}

// HourMinute is a T06:05 time.
type HourMinute struct {
	Hour   uint8
	Minute uint8
}

// HourMinuteSecond is a T06:05:04 time.
type HourMinuteSecond struct {
	Hour   uint8
	Minute uint8
	Second uint8
}

// HourMinuteMillisecond is a T06:05:04.333 time. Millisecond counts from
// the start of the minute.
type HourMinuteMillisecond struct {
	Hour        uint8
	Minute      uint8
	Millisecond uint32
}

// Second returns the whole seconds.
func (t HourMinuteMillisecond) Second() uint8 { return uint8(t.Millisecond / 1_000) }

// HourMinuteMicrosecond is a T06:05:04.333_222 time. Microsecond counts
// from the start of the minute.
type HourMinuteMicrosecond struct {
	Hour        uint8
	Minute      uint8
	Microsecond uint32
}

// Second returns the whole seconds.
func (t HourMinuteMicrosecond) Second() uint8 { return uint8(t.Microsecond / 1_000_000) }

// Millisecond returns milliseconds since the start of the minute.
func (t HourMinuteMicrosecond) Millisecond() uint32 { return t.Microsecond / 1_000 }

// HourMinuteNanosecond is a T06:05:04.333_222_111 time. Nanosecond counts
// from the start of the minute.
type HourMinuteNanosecond struct {
	Hour       uint8
	Minute     uint8
	Nanosecond uint64
}

// Second returns the whole seconds.
func (t HourMinuteNanosecond) Second() uint8 { return uint8(t.Nanosecond / 1_000_000_000) }

// Millisecond returns milliseconds since the start of the minute.
func (t HourMinuteNanosecond) Millisecond() uint32 { return uint32(t.Nanosecond / 1_000_000) }

// Microsecond returns microseconds since the start of the minute.
func (t HourMinuteNanosecond) Microsecond() uint32 { return uint32(t.Nanosecond / 1_000) }

func (d Date) year() Year                 { return Year{Year: d.Year} }
func (d Date) yearMonth() YearMonth       { return YearMonth{Year: d.Year, Month: d.Month} }
func (d Date) yearWeek() YearWeek         { return YearWeek{Year: d.Year, Week: d.Week} }
func (d Date) yearMonthDay() YearMonthDay { return YearMonthDay{Year: d.Year, Month: d.Month, Day: d.Day} }
func (d Date) yearWeekDay() YearWeekDay   { return YearWeekDay{Year: d.Year, Week: d.Week, Weekday: d.Day} }

func (t Time) hour() Hour             { return Hour{Hour: t.Hour} }
func (t Time) hourMinute() HourMinute { return HourMinute{Hour: t.Hour, Minute: t.Minute} }
func (t Time) hourMinuteSecond() HourMinuteSecond {
	return HourMinuteSecond{Hour: t.Hour, Minute: t.Minute, Second: t.Second()}
}
func (t Time) hourMinuteMillisecond() HourMinuteMillisecond {
	return HourMinuteMillisecond{Hour: t.Hour, Minute: t.Minute, Millisecond: t.Millisecond()}
}
func (t Time) hourMinuteMicrosecond() HourMinuteMicrosecond {
	return HourMinuteMicrosecond{Hour: t.Hour, Minute: t.Minute, Microsecond: t.Microsecond()}
}
func (t Time) hourMinuteNanosecond() HourMinuteNanosecond {
	return HourMinuteNanosecond{Hour: t.Hour, Minute: t.Minute, Nanosecond: t.Nanos}
}
