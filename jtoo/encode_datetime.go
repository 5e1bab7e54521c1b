package jtoo

import "strings"

// ============================================================
// Date / Time / Timezone construction
// ============================================================
//
// A date or time is written one component at a time through a chain of
// appenders, each allowing only the components that may legally follow:
//
//	y, _ := enc.AppendYear(2029)
//	m, _ := y.AppendMonth(8)
//	d, _ := m.AppendDay(7)
//	h, _ := d.AppendHour(6)
//	_, err := h.AppendTzOffset(2, 30)
//
// An appender may be used once. Calling it after its successor or any other
// value was written fails with ErrAppenderConsumed.

// link ties an appender to the encoder position it was created at.
type link struct {
	e    *Encoder
	mark int
}

func (e *Encoder) link() link {
	return link{e: e, mark: e.buf.Len()}
}

func (l link) check() error {
	if l.e.err != nil {
		return l.e.err
	}
	if l.e.buf.Len() != l.mark {
		return l.e.setErr(ErrAppenderConsumed)
	}
	return nil
}

// AppendTzOffset writes the UTC offset and ends the value. A zero offset is
// written Z; zero minutes are omitted.
func (l link) AppendTzOffset(hour int8, minute uint8) (*Encoder, error) {
	if err := l.check(); err != nil {
		return nil, err
	}
	if err := l.e.writeTzOffset(hour, minute); err != nil {
		return nil, err
	}
	return l.e, nil
}

// YearAppender follows D2029.
type YearAppender struct{ link }

// MonthAppender follows D2029-08.
type MonthAppender struct{ link }

// WeekAppender follows D2029-W08.
type WeekAppender struct{ link }

// DayAppender follows D2029-08-07 or D2029-W08-03.
type DayAppender struct{ link }

// HourAppender follows a T06 hour.
type HourAppender struct{ link }

// MinuteAppender follows a T06:05 minute.
type MinuteAppender struct{ link }

// SecondAppender follows seconds at any precision.
type SecondAppender struct{ link }

// AppendYear starts a date value, D2029.
func (e *Encoder) AppendYear(year uint16) (*YearAppender, error) {
	if e.err != nil {
		return nil, e.err
	}
	if year < 1 || year > 9999 {
		return nil, e.setErr(ErrInvalidYear)
	}
	if err := e.prepareForNewValue(); err != nil {
		return nil, err
	}
	e.buf.WriteByte('D')
	writePadded(&e.buf, uint64(year), 4)
	return &YearAppender{e.link()}, nil
}

// AppendHour starts a time value with no date, T06.
func (e *Encoder) AppendHour(hour uint8) (*HourAppender, error) {
	if e.err != nil {
		return nil, e.err
	}
	if hour > 23 {
		return nil, e.setErr(ErrInvalidHour)
	}
	if err := e.prepareForNewValue(); err != nil {
		return nil, err
	}
	e.writeHour(hour)
	return &HourAppender{e.link()}, nil
}

// AppendMonth writes -08.
func (a *YearAppender) AppendMonth(month uint8) (*MonthAppender, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, a.e.setErr(ErrInvalidMonth)
	}
	a.e.buf.WriteByte('-')
	writePadded(&a.e.buf, uint64(month), 2)
	return &MonthAppender{a.e.link()}, nil
}

// AppendWeek writes -W08.
func (a *YearAppender) AppendWeek(week uint8) (*WeekAppender, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if week < 1 || week > 53 {
		return nil, a.e.setErr(ErrInvalidWeek)
	}
	a.e.buf.WriteString("-W")
	writePadded(&a.e.buf, uint64(week), 2)
	return &WeekAppender{a.e.link()}, nil
}

// AppendDay writes -07.
func (a *MonthAppender) AppendDay(day uint8) (*DayAppender, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if day < 1 || day > 31 {
		return nil, a.e.setErr(ErrInvalidDay)
	}
	a.e.buf.WriteByte('-')
	writePadded(&a.e.buf, uint64(day), 2)
	return &DayAppender{a.e.link()}, nil
}

// AppendWeekday writes -03, with Monday as 1.
func (a *WeekAppender) AppendWeekday(weekday uint8) (*DayAppender, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if weekday < 1 || weekday > 7 {
		return nil, a.e.setErr(ErrInvalidWeekday)
	}
	a.e.buf.WriteByte('-')
	writePadded(&a.e.buf, uint64(weekday), 2)
	return &DayAppender{a.e.link()}, nil
}

// AppendHour writes T06.
func (a *DayAppender) AppendHour(hour uint8) (*HourAppender, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if hour > 23 {
		return nil, a.e.setErr(ErrInvalidHour)
	}
	a.e.writeHour(hour)
	return &HourAppender{a.e.link()}, nil
}

// AppendMinute writes :05.
func (a *HourAppender) AppendMinute(minute uint8) (*MinuteAppender, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if minute > 59 {
		return nil, a.e.setErr(ErrInvalidMinute)
	}
	a.e.buf.WriteByte(':')
	writePadded(&a.e.buf, uint64(minute), 2)
	return &MinuteAppender{a.e.link()}, nil
}

// AppendSecond writes :04. 60 is allowed for leap seconds.
func (a *MinuteAppender) AppendSecond(second uint8) (*SecondAppender, error) {
	return a.seconds(uint64(second), 60, 0, ErrInvalidSecond)
}

// AppendMillisecond writes :04.333 from milliseconds since the start of
// the minute.
func (a *MinuteAppender) AppendMillisecond(millisecond uint32) (*SecondAppender, error) {
	return a.seconds(uint64(millisecond), 60_999, 1, ErrInvalidMillisecond)
}

// AppendMicrosecond writes :04.333_222 from microseconds since the start
// of the minute.
func (a *MinuteAppender) AppendMicrosecond(microsecond uint32) (*SecondAppender, error) {
	return a.seconds(uint64(microsecond), 60_999_999, 2, ErrInvalidMicrosecond)
}

// AppendNanosecond writes :04.333_222_111 from nanoseconds since the start
// of the minute.
func (a *MinuteAppender) AppendNanosecond(nanosecond uint64) (*SecondAppender, error) {
	return a.seconds(nanosecond, 60_999_999_999, 3, ErrInvalidNanosecond)
}

func (a *MinuteAppender) seconds(v, limit uint64, groups int, invalid EncodeError) (*SecondAppender, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	if v > limit {
		return nil, a.e.setErr(invalid)
	}
	a.e.writeSeconds(v, groups)
	return &SecondAppender{a.e.link()}, nil
}

// ============================================================
// Composite
// ============================================================

// AppendDateTimeTzOffset writes a composite value, choosing the components
// from the Date kind, the Time precision and HasTzOffset. Sub-second
// precision below the Time's own is truncated.
func (e *Encoder) AppendDateTimeTzOffset(v DateTimeTzOffset) error {
	if e.err != nil {
		return e.err
	}
	if v.Date.Kind == NoDate && v.Time.Precision == NoTime {
		return e.setErr(ErrInvalidDateTimeTzOffset)
	}
	if v.Date.Kind != NoDate && !v.Date.HasDay() && v.Time.Precision != NoTime {
		return e.setErr(ErrInvalidDateTimeTzOffset)
	}

	var next link
	if v.Date.Kind != NoDate {
		l, err := e.appendDate(v.Date)
		if err != nil {
			return err
		}
		next = l
	}
	if v.Time.Precision != NoTime {
		l, err := e.appendTime(v.Time, next, v.Date.Kind != NoDate)
		if err != nil {
			return err
		}
		next = l
	}
	if v.HasTzOffset {
		_, err := next.AppendTzOffset(v.TzOffset.Hour, v.TzOffset.Minute)
		return err
	}
	return nil
}

func (e *Encoder) appendDate(date Date) (link, error) {
	y, err := e.AppendYear(date.Year)
	if err != nil {
		return link{}, err
	}
	switch date.Kind {
	case DateYear:
		return y.link, nil
	case DateYearMonth, DateYearMonthDay:
		m, err := y.AppendMonth(date.Month)
		if err != nil {
			return link{}, err
		}
		if date.Kind == DateYearMonth {
			return m.link, nil
		}
		d, err := m.AppendDay(date.Day)
		if err != nil {
			return link{}, err
		}
		return d.link, nil
	case DateYearWeek, DateYearWeekDay:
		w, err := y.AppendWeek(date.Week)
		if err != nil {
			return link{}, err
		}
		if date.Kind == DateYearWeek {
			return w.link, nil
		}
		d, err := w.AppendWeekday(date.Day)
		if err != nil {
			return link{}, err
		}
		return d.link, nil
	}
	return link{}, e.setErr(ErrInvalidDateTimeTzOffset)
}

func (e *Encoder) appendTime(t Time, day link, dated bool) (link, error) {
	var h *HourAppender
	var err error
	if dated {
		h, err = (&DayAppender{day}).AppendHour(t.Hour)
	} else {
		h, err = e.AppendHour(t.Hour)
	}
	if err != nil {
		return link{}, err
	}
	if t.Precision == PrecisionHour {
		return h.link, nil
	}
	m, err := h.AppendMinute(t.Minute)
	if err != nil {
		return link{}, err
	}

	if t.Precision > PrecisionMinute && t.Nanos > 60_999_999_999 {
		return link{}, e.setErr(ErrInvalidSecond)
	}
	var s *SecondAppender
	switch t.Precision {
	case PrecisionMinute:
		return m.link, nil
	case PrecisionSecond:
		s, err = m.AppendSecond(t.Second())
	case PrecisionMillisecond:
		s, err = m.AppendMillisecond(t.Millisecond())
	case PrecisionMicrosecond:
		s, err = m.AppendMicrosecond(t.Microsecond())
	case PrecisionNanosecond:
		s, err = m.AppendNanosecond(t.Nanos)
	default:
		return link{}, e.setErr(ErrInvalidDateTimeTzOffset)
	}
	if err != nil {
		return link{}, err
	}
	return s.link, nil
}

// ============================================================
// Component formatting
// ============================================================

func writePadded(sb *strings.Builder, v uint64, width int) {
	var digits [20]byte
	i := len(digits)
	for v > 0 || i == len(digits) {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	for n := len(digits) - i; n < width; n++ {
		sb.WriteByte('0')
	}
	sb.Write(digits[i:])
}

func (e *Encoder) writeHour(hour uint8) {
	e.buf.WriteByte('T')
	writePadded(&e.buf, uint64(hour), 2)
}

// writeSeconds writes :SS followed by groups of three fraction digits. v
// counts units of 10^-3*groups seconds since the start of the minute.
func (e *Encoder) writeSeconds(v uint64, groups int) {
	scale := uint64(1)
	for i := 0; i < groups; i++ {
		scale *= 1_000
	}
	e.buf.WriteByte(':')
	writePadded(&e.buf, v/scale, 2)
	frac := v % scale
	sep := byte('.')
	for i := 0; i < groups; i++ {
		scale /= 1_000
		e.buf.WriteByte(sep)
		writePadded(&e.buf, frac/scale%1_000, 3)
		sep = '_'
	}
}

func (e *Encoder) writeTzOffset(hour int8, minute uint8) error {
	if hour < -23 || hour > 23 || minute > 59 {
		return e.setErr(ErrInvalidTimezoneOffset)
	}
	if hour == 0 && minute == 0 {
		e.buf.WriteByte('Z')
		return nil
	}
	abs := hour
	if hour < 0 {
		e.buf.WriteByte('~')
		abs = -hour
	} else {
		e.buf.WriteByte('+')
	}
	writePadded(&e.buf, uint64(abs), 2)
	if minute > 0 {
		e.buf.WriteByte(':')
		writePadded(&e.buf, uint64(minute), 2)
	}
	return nil
}
