package jtoo

// ============================================================
// Date / Time / Timezone grammar
// ============================================================

// ConsumeDateTimeTzOffset consumes a date, a time, or both, each with an
// optional UTC offset. The returned value records which fields were
// present.
func (d *Decoder) ConsumeDateTimeTzOffset() (DateTimeTzOffset, error) {
	if err := d.begin(); err != nil {
		return DateTimeTzOffset{}, err
	}
	v, err := d.dateTimeTzOffset()
	if err != nil {
		return DateTimeTzOffset{}, err
	}
	return v, d.closeItem()
}

func (d *Decoder) dateTimeTzOffset() (DateTimeTzOffset, error) {
	var v DateTimeTzOffset
	if d.peek() == 'D' {
		d.advance(1)
		if err := d.date(&v.Date); err != nil {
			return v, err
		}
	}
	if d.peek() == 'T' {
		if v.Date.Kind != NoDate && !v.Date.HasDay() {
			return v, d.fail(MalformedDateTimeTzOffset)
		}
		d.advance(1)
		if err := d.time(&v.Time); err != nil {
			return v, err
		}
	}
	if v.Date.Kind == NoDate && v.Time.Precision == NoTime {
		return v, d.fail(ExpectedDateTimeTzOffset)
	}
	if d.atValueEnd() {
		return v, nil
	}
	if err := d.tzOffset(&v.TzOffset); err != nil {
		return v, err
	}
	v.HasTzOffset = true
	switch {
	case d.atValueEnd():
		return v, nil
	case d.peek() == 'T':
		return v, d.fail(MalformedDateTimeTzOffset)
	}
	return v, d.fail(MalformedTimeZoneOffset)
}

// digits reads exactly n decimal digits.
func (d *Decoder) digits(n int) (uint64, bool) {
	if len(d.data) < n {
		return 0, false
	}
	var v uint64
	for _, c := range d.data[:n] {
		if !isDigit(c) {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
	}
	d.advance(n)
	return v, true
}

func (d *Decoder) date(date *Date) error {
	year, ok := d.digits(4)
	if !ok {
		return d.fail(MalformedDate)
	}
	if year == 0 {
		return d.fail(YearOutOfRange)
	}
	date.Kind, date.Year = DateYear, uint16(year)
	if d.peek() != '-' {
		return d.endDate()
	}
	d.advance(1)

	if d.peek() == 'W' {
		d.advance(1)
		week, ok := d.digits(2)
		if !ok {
			return d.fail(MalformedDate)
		}
		if week < 1 || week > 53 {
			return d.fail(WeekOutOfRange)
		}
		date.Kind, date.Week = DateYearWeek, uint8(week)
	} else {
		month, ok := d.digits(2)
		if !ok {
			return d.fail(MalformedDate)
		}
		if month < 1 || month > 12 {
			return d.fail(MonthOutOfRange)
		}
		date.Kind, date.Month = DateYearMonth, uint8(month)
	}
	if d.peek() != '-' {
		return d.endDate()
	}
	d.advance(1)

	day, ok := d.digits(2)
	if !ok {
		return d.fail(MalformedDate)
	}
	if date.Kind == DateYearWeek {
		if day < 1 || day > 7 {
			return d.fail(DayOutOfRange)
		}
		date.Kind = DateYearWeekDay
	} else {
		if day < 1 || day > 31 {
			return d.fail(DayOutOfRange)
		}
		date.Kind = DateYearMonthDay
	}
	date.Day = uint8(day)
	return d.endDate()
}

func (d *Decoder) endDate() error {
	switch d.peek() {
	case 'T', 'Z', '+', '~':
		return nil
	}
	if d.atValueEnd() {
		return nil
	}
	return d.fail(MalformedDate)
}

func (d *Decoder) time(t *Time) error {
	hour, ok := d.digits(2)
	if !ok {
		return d.fail(MalformedTime)
	}
	if hour > 23 {
		return d.fail(HourOutOfRange)
	}
	t.Precision, t.Hour = PrecisionHour, uint8(hour)
	if d.peek() != ':' {
		return d.endTime()
	}
	d.advance(1)

	minute, ok := d.digits(2)
	if !ok {
		return d.fail(MalformedTime)
	}
	if minute > 59 {
		return d.fail(MinuteOutOfRange)
	}
	t.Precision, t.Minute = PrecisionMinute, uint8(minute)
	if d.peek() != ':' {
		return d.endTime()
	}
	d.advance(1)

	second, ok := d.digits(2)
	if !ok {
		return d.fail(MalformedTime)
	}
	if second > 60 {
		return d.fail(SecondOutOfRange)
	}
	t.Precision, t.Nanos = PrecisionSecond, second*1_000_000_000

	// Each fractional group adds three digits of precision.
	scale := uint64(1_000_000)
	for _, sep := range []byte{'.', '_', '_'} {
		if d.peek() != sep {
			break
		}
		d.advance(1)
		part, ok := d.digits(3)
		if !ok {
			return d.fail(MalformedTime)
		}
		t.Precision++
		t.Nanos += part * scale
		scale /= 1_000
	}
	return d.endTime()
}

func (d *Decoder) endTime() error {
	switch d.peek() {
	case 'Z', '+', '~':
		return nil
	}
	if d.atValueEnd() {
		return nil
	}
	return d.fail(MalformedTime)
}

func (d *Decoder) tzOffset(tz *TzOffset) error {
	switch d.peek() {
	case 'Z':
		d.advance(1)
		*tz = TzOffset{}
		return nil
	case '+', '~':
	default:
		return d.fail(MalformedTimeZoneOffset)
	}
	negative := d.peek() == '~'
	d.advance(1)

	hour, ok := d.digits(2)
	if !ok {
		return d.fail(MalformedTimeZoneOffset)
	}
	if hour > 23 {
		return d.fail(TimezoneOffsetHourOutOfRange)
	}
	var minute uint64
	if d.peek() == ':' {
		d.advance(1)
		if minute, ok = d.digits(2); !ok {
			return d.fail(MalformedTimeZoneOffset)
		}
		if minute > 59 {
			return d.fail(TimezoneOffsetMinuteOutOfRange)
		}
		if minute == 0 {
			if hour == 0 {
				return d.fail(ZeroTimeZoneOffsetShouldBeZ)
			}
			return d.fail(ZeroTimeZoneMinutesShouldBeOmitted)
		}
	} else if hour == 0 {
		return d.fail(ZeroTimeZoneOffsetShouldBeZ)
	}
	if negative && hour == 0 {
		return d.fail(NegativeZero)
	}

	tz.Hour, tz.Minute = int8(hour), uint8(minute)
	if negative {
		tz.Hour = -tz.Hour
	}
	return nil
}

// ============================================================
// Granularity-specific accessors
// ============================================================

// shape is the exact field set a granularity accessor accepts.
type shape struct {
	date   DateKind
	time   TimePrecision
	tz     bool
	reason ErrorReason
}

var finerPrecision = map[TimePrecision]ErrorReason{
	PrecisionSecond:      ExpectedSecond,
	PrecisionMillisecond: ExpectedMillisecond,
	PrecisionMicrosecond: ExpectedMicrosecond,
	PrecisionNanosecond:  ExpectedNanosecond,
}

// mismatch returns the reason v does not have shape s, or 0 when it does.
// Missing components report the component; extra components report the
// shape as a whole.
func (s shape) mismatch(v DateTimeTzOffset) ErrorReason {
	got := v.Date.Kind
	switch {
	case s.date != NoDate && got == NoDate:
		return ExpectedYear
	case s.date.hasMonth() && !got.hasMonth():
		return ExpectedMonth
	case s.date.hasWeek() && !got.hasWeek():
		return ExpectedWeek
	case got.hasMonth() && !s.date.hasMonth(), got.hasWeek() && !s.date.hasWeek():
		return s.reason
	case s.date.hasDay() && !got.hasDay():
		return ExpectedDay
	case got.hasDay() && !s.date.hasDay():
		return s.reason
	case s.date == NoDate && got != NoDate:
		return s.reason
	}

	p := v.Time.Precision
	switch {
	case s.time != NoTime && p == NoTime:
		return ExpectedHour
	case s.time >= PrecisionMinute && p < PrecisionMinute:
		return ExpectedMinute
	case p < s.time:
		return finerPrecision[p+1]
	case p > s.time:
		return s.reason
	}

	if s.tz && !v.HasTzOffset {
		return ExpectedTzOffset
	}
	if !s.tz && v.HasTzOffset {
		return s.reason
	}
	return 0
}

func (d *Decoder) consumeShape(s shape) (DateTimeTzOffset, error) {
	if err := d.begin(); err != nil {
		return DateTimeTzOffset{}, err
	}
	lead, missing := byte('D'), ExpectedYear
	if s.date == NoDate {
		lead, missing = 'T', ExpectedHour
	}
	if d.peek() != lead {
		return DateTimeTzOffset{}, d.fail(missing)
	}
	v, err := d.dateTimeTzOffset()
	if err != nil {
		return DateTimeTzOffset{}, err
	}
	if reason := s.mismatch(v); reason != 0 {
		return DateTimeTzOffset{}, d.fail(reason)
	}
	return v, d.closeItem()
}

var (
	shapeYear                                      = shape{DateYear, NoTime, false, ExpectedYear}
	shapeYearTzOffset                              = shape{DateYear, NoTime, true, ExpectedYearTzOffset}
	shapeYearMonth                                 = shape{DateYearMonth, NoTime, false, ExpectedYearMonth}
	shapeYearMonthTzOffset                         = shape{DateYearMonth, NoTime, true, ExpectedYearMonthTzOffset}
	shapeYearWeek                                  = shape{DateYearWeek, NoTime, false, ExpectedYearWeek}
	shapeYearWeekTzOffset                          = shape{DateYearWeek, NoTime, true, ExpectedYearWeekTzOffset}
	shapeYearMonthDay                              = shape{DateYearMonthDay, NoTime, false, ExpectedYearMonthDay}
	shapeYearMonthDayTzOffset                      = shape{DateYearMonthDay, NoTime, true, ExpectedYearMonthDayTzOffset}
	shapeYearWeekDay                               = shape{DateYearWeekDay, NoTime, false, ExpectedYearWeekDay}
	shapeYearWeekDayTzOffset                       = shape{DateYearWeekDay, NoTime, true, ExpectedYearWeekDayTzOffset}
	shapeYearMonthDayHour                          = shape{DateYearMonthDay, PrecisionHour, false, ExpectedYearMonthDayHour}
	shapeYearMonthDayHourTzOffset                  = shape{DateYearMonthDay, PrecisionHour, true, ExpectedYearMonthDayHourTzOffset}
	shapeYearMonthDayHourMinute                    = shape{DateYearMonthDay, PrecisionMinute, false, ExpectedYearMonthDayHourMinute}
	shapeYearMonthDayHourMinuteTzOffset            = shape{DateYearMonthDay, PrecisionMinute, true, ExpectedYearMonthDayHourMinuteTzOffset}
	shapeYearMonthDayHourMinuteSecond              = shape{DateYearMonthDay, PrecisionSecond, false, ExpectedYearMonthDayHourMinuteSecond}
	shapeYearMonthDayHourMinuteSecondTzOffset      = shape{DateYearMonthDay, PrecisionSecond, true, ExpectedYearMonthDayHourMinuteSecondTzOffset}
	shapeYearMonthDayHourMinuteMillisecond         = shape{DateYearMonthDay, PrecisionMillisecond, false, ExpectedYearMonthDayHourMinuteMillisecond}
	shapeYearMonthDayHourMinuteMillisecondTzOffset = shape{DateYearMonthDay, PrecisionMillisecond, true, ExpectedYearMonthDayHourMinuteMillisecondTzOffset}
	shapeYearMonthDayHourMinuteMicrosecond         = shape{DateYearMonthDay, PrecisionMicrosecond, false, ExpectedYearMonthDayHourMinuteMicrosecond}
	shapeYearMonthDayHourMinuteMicrosecondTzOffset = shape{DateYearMonthDay, PrecisionMicrosecond, true, ExpectedYearMonthDayHourMinuteMicrosecondTzOffset}
	shapeYearMonthDayHourMinuteNanosecond          = shape{DateYearMonthDay, PrecisionNanosecond, false, ExpectedYearMonthDayHourMinuteNanosecond}
	shapeYearMonthDayHourMinuteNanosecondTzOffset  = shape{DateYearMonthDay, PrecisionNanosecond, true, ExpectedYearMonthDayHourMinuteNanosecondTzOffset}
	shapeYearWeekDayHour                           = shape{DateYearWeekDay, PrecisionHour, false, ExpectedYearWeekDayHour}
	shapeYearWeekDayHourTzOffset                   = shape{DateYearWeekDay, PrecisionHour, true, ExpectedYearWeekDayHourTzOffset}
	shapeYearWeekDayHourMinute                     = shape{DateYearWeekDay, PrecisionMinute, false, ExpectedYearWeekDayHourMinute}
	shapeYearWeekDayHourMinuteTzOffset             = shape{DateYearWeekDay, PrecisionMinute, true, ExpectedYearWeekDayHourMinuteTzOffset}
	shapeYearWeekDayHourMinuteSecond               = shape{DateYearWeekDay, PrecisionSecond, false, ExpectedYearWeekDayHourMinuteSecond}
	shapeYearWeekDayHourMinuteSecondTzOffset       = shape{DateYearWeekDay, PrecisionSecond, true, ExpectedYearWeekDayHourMinuteSecondTzOffset}
	shapeYearWeekDayHourMinuteMillisecond          = shape{DateYearWeekDay, PrecisionMillisecond, false, ExpectedYearWeekDayHourMinuteMillisecond}
	shapeYearWeekDayHourMinuteMillisecondTzOffset  = shape{DateYearWeekDay, PrecisionMillisecond, true, ExpectedYearWeekDayHourMinuteMillisecondTzOffset}
	shapeYearWeekDayHourMinuteMicrosecond          = shape{DateYearWeekDay, PrecisionMicrosecond, false, ExpectedYearWeekDayHourMinuteMicrosecond}
	shapeYearWeekDayHourMinuteMicrosecondTzOffset  = shape{DateYearWeekDay, PrecisionMicrosecond, true, ExpectedYearWeekDayHourMinuteMicrosecondTzOffset}
	shapeYearWeekDayHourMinuteNanosecond           = shape{DateYearWeekDay, PrecisionNanosecond, false, ExpectedYearWeekDayHourMinuteNanosecond}
	shapeYearWeekDayHourMinuteNanosecondTzOffset   = shape{DateYearWeekDay, PrecisionNanosecond, true, ExpectedYearWeekDayHourMinuteNanosecondTzOffset}
	shapeHour                                      = shape{NoDate, PrecisionHour, false, ExpectedHour}
	shapeHourTzOffset                              = shape{NoDate, PrecisionHour, true, ExpectedHourTzOffset}
	shapeHourMinute                                = shape{NoDate, PrecisionMinute, false, ExpectedHourMinute}
	shapeHourMinuteTzOffset                        = shape{NoDate, PrecisionMinute, true, ExpectedHourMinuteTzOffset}
	shapeHourMinuteSecond                          = shape{NoDate, PrecisionSecond, false, ExpectedHourMinuteSecond}
	shapeHourMinuteSecondTzOffset                  = shape{NoDate, PrecisionSecond, true, ExpectedHourMinuteSecondTzOffset}
	shapeHourMinuteMillisecond                     = shape{NoDate, PrecisionMillisecond, false, ExpectedHourMinuteMillisecond}
	shapeHourMinuteMillisecondTzOffset             = shape{NoDate, PrecisionMillisecond, true, ExpectedHourMinuteMillisecondTzOffset}
	shapeHourMinuteMicrosecond                     = shape{NoDate, PrecisionMicrosecond, false, ExpectedHourMinuteMicrosecond}
	shapeHourMinuteMicrosecondTzOffset             = shape{NoDate, PrecisionMicrosecond, true, ExpectedHourMinuteMicrosecondTzOffset}
	shapeHourMinuteNanosecond                      = shape{NoDate, PrecisionNanosecond, false, ExpectedHourMinuteNanosecond}
	shapeHourMinuteNanosecondTzOffset              = shape{NoDate, PrecisionNanosecond, true, ExpectedHourMinuteNanosecondTzOffset}
)

// ConsumeYear consumes D2029.
func (d *Decoder) ConsumeYear() (Year, error) {
	v, err := d.consumeShape(shapeYear)
	if err != nil {
		return Year{}, err
	}
	return v.Date.year(), nil
}

// ConsumeYearTzOffset consumes D2029+02:30.
func (d *Decoder) ConsumeYearTzOffset() (Year, TzOffset, error) {
	v, err := d.consumeShape(shapeYearTzOffset)
	if err != nil {
		return Year{}, TzOffset{}, err
	}
	return v.Date.year(), v.TzOffset, nil
}

// ConsumeYearMonth consumes D2029-08.
func (d *Decoder) ConsumeYearMonth() (YearMonth, error) {
	v, err := d.consumeShape(shapeYearMonth)
	if err != nil {
		return YearMonth{}, err
	}
	return v.Date.yearMonth(), nil
}

// ConsumeYearMonthTzOffset consumes D2029-08+02:30.
func (d *Decoder) ConsumeYearMonthTzOffset() (YearMonth, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthTzOffset)
	if err != nil {
		return YearMonth{}, TzOffset{}, err
	}
	return v.Date.yearMonth(), v.TzOffset, nil
}

// ConsumeYearWeek consumes D2029-W08.
func (d *Decoder) ConsumeYearWeek() (YearWeek, error) {
	v, err := d.consumeShape(shapeYearWeek)
	if err != nil {
		return YearWeek{}, err
	}
	return v.Date.yearWeek(), nil
}

// ConsumeYearWeekTzOffset consumes D2029-W08+02:30.
func (d *Decoder) ConsumeYearWeekTzOffset() (YearWeek, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekTzOffset)
	if err != nil {
		return YearWeek{}, TzOffset{}, err
	}
	return v.Date.yearWeek(), v.TzOffset, nil
}

// ConsumeYearMonthDay consumes D2029-08-07.
func (d *Decoder) ConsumeYearMonthDay() (YearMonthDay, error) {
	v, err := d.consumeShape(shapeYearMonthDay)
	if err != nil {
		return YearMonthDay{}, err
	}
	return v.Date.yearMonthDay(), nil
}

// ConsumeYearMonthDayTzOffset consumes D2029-08-07+02:30.
func (d *Decoder) ConsumeYearMonthDayTzOffset() (YearMonthDay, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthDayTzOffset)
	if err != nil {
		return YearMonthDay{}, TzOffset{}, err
	}
	return v.Date.yearMonthDay(), v.TzOffset, nil
}

// ConsumeYearWeekDay consumes D2029-W08-03.
func (d *Decoder) ConsumeYearWeekDay() (YearWeekDay, error) {
	v, err := d.consumeShape(shapeYearWeekDay)
	if err != nil {
		return YearWeekDay{}, err
	}
	return v.Date.yearWeekDay(), nil
}

// ConsumeYearWeekDayTzOffset consumes D2029-W08-03+02:30.
func (d *Decoder) ConsumeYearWeekDayTzOffset() (YearWeekDay, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekDayTzOffset)
	if err != nil {
		return YearWeekDay{}, TzOffset{}, err
	}
	return v.Date.yearWeekDay(), v.TzOffset, nil
}

// ConsumeYearMonthDayHour consumes D2029-08-07T06.
func (d *Decoder) ConsumeYearMonthDayHour() (YearMonthDay, Hour, error) {
	v, err := d.consumeShape(shapeYearMonthDayHour)
	if err != nil {
		return YearMonthDay{}, Hour{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hour(), nil
}

// ConsumeYearMonthDayHourTzOffset consumes D2029-08-07T06+02:30.
func (d *Decoder) ConsumeYearMonthDayHourTzOffset() (YearMonthDay, Hour, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourTzOffset)
	if err != nil {
		return YearMonthDay{}, Hour{}, TzOffset{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hour(), v.TzOffset, nil
}

// ConsumeYearMonthDayHourMinute consumes D2029-08-07T06:05.
func (d *Decoder) ConsumeYearMonthDayHourMinute() (YearMonthDay, HourMinute, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinute)
	if err != nil {
		return YearMonthDay{}, HourMinute{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinute(), nil
}

// ConsumeYearMonthDayHourMinuteTzOffset consumes D2029-08-07T06:05+02:30.
func (d *Decoder) ConsumeYearMonthDayHourMinuteTzOffset() (YearMonthDay, HourMinute, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteTzOffset)
	if err != nil {
		return YearMonthDay{}, HourMinute{}, TzOffset{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinute(), v.TzOffset, nil
}

// ConsumeYearMonthDayHourMinuteSecond consumes D2029-08-07T06:05:04.
func (d *Decoder) ConsumeYearMonthDayHourMinuteSecond() (YearMonthDay, HourMinuteSecond, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteSecond)
	if err != nil {
		return YearMonthDay{}, HourMinuteSecond{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteSecond(), nil
}

// ConsumeYearMonthDayHourMinuteSecondTzOffset consumes D2029-08-07T06:05:04+02:30.
func (d *Decoder) ConsumeYearMonthDayHourMinuteSecondTzOffset() (YearMonthDay, HourMinuteSecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteSecondTzOffset)
	if err != nil {
		return YearMonthDay{}, HourMinuteSecond{}, TzOffset{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteSecond(), v.TzOffset, nil
}

// ConsumeYearMonthDayHourMinuteMillisecond consumes D2029-08-07T06:05:04.333.
func (d *Decoder) ConsumeYearMonthDayHourMinuteMillisecond() (YearMonthDay, HourMinuteMillisecond, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteMillisecond)
	if err != nil {
		return YearMonthDay{}, HourMinuteMillisecond{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteMillisecond(), nil
}

// ConsumeYearMonthDayHourMinuteMillisecondTzOffset consumes D2029-08-07T06:05:04.333+02:30.
func (d *Decoder) ConsumeYearMonthDayHourMinuteMillisecondTzOffset() (YearMonthDay, HourMinuteMillisecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteMillisecondTzOffset)
	if err != nil {
		return YearMonthDay{}, HourMinuteMillisecond{}, TzOffset{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteMillisecond(), v.TzOffset, nil
}

// ConsumeYearMonthDayHourMinuteMicrosecond consumes D2029-08-07T06:05:04.333_222.
func (d *Decoder) ConsumeYearMonthDayHourMinuteMicrosecond() (YearMonthDay, HourMinuteMicrosecond, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteMicrosecond)
	if err != nil {
		return YearMonthDay{}, HourMinuteMicrosecond{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteMicrosecond(), nil
}

// ConsumeYearMonthDayHourMinuteMicrosecondTzOffset consumes D2029-08-07T06:05:04.333_222+02:30.
func (d *Decoder) ConsumeYearMonthDayHourMinuteMicrosecondTzOffset() (YearMonthDay, HourMinuteMicrosecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteMicrosecondTzOffset)
	if err != nil {
		return YearMonthDay{}, HourMinuteMicrosecond{}, TzOffset{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteMicrosecond(), v.TzOffset, nil
}

// ConsumeYearMonthDayHourMinuteNanosecond consumes D2029-08-07T06:05:04.333_222_111.
func (d *Decoder) ConsumeYearMonthDayHourMinuteNanosecond() (YearMonthDay, HourMinuteNanosecond, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteNanosecond)
	if err != nil {
		return YearMonthDay{}, HourMinuteNanosecond{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteNanosecond(), nil
}

// ConsumeYearMonthDayHourMinuteNanosecondTzOffset consumes D2029-08-07T06:05:04.333_222_111+02:30.
func (d *Decoder) ConsumeYearMonthDayHourMinuteNanosecondTzOffset() (YearMonthDay, HourMinuteNanosecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearMonthDayHourMinuteNanosecondTzOffset)
	if err != nil {
		return YearMonthDay{}, HourMinuteNanosecond{}, TzOffset{}, err
	}
	return v.Date.yearMonthDay(), v.Time.hourMinuteNanosecond(), v.TzOffset, nil
}

// ConsumeYearWeekDayHour consumes D2029-W08-03T06.
func (d *Decoder) ConsumeYearWeekDayHour() (YearWeekDay, Hour, error) {
	v, err := d.consumeShape(shapeYearWeekDayHour)
	if err != nil {
		return YearWeekDay{}, Hour{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hour(), nil
}

// ConsumeYearWeekDayHourTzOffset consumes D2029-W08-03T06+02:30.
func (d *Decoder) ConsumeYearWeekDayHourTzOffset() (YearWeekDay, Hour, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourTzOffset)
	if err != nil {
		return YearWeekDay{}, Hour{}, TzOffset{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hour(), v.TzOffset, nil
}

// ConsumeYearWeekDayHourMinute consumes D2029-W08-03T06:05.
func (d *Decoder) ConsumeYearWeekDayHourMinute() (YearWeekDay, HourMinute, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinute)
	if err != nil {
		return YearWeekDay{}, HourMinute{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinute(), nil
}

// ConsumeYearWeekDayHourMinuteTzOffset consumes D2029-W08-03T06:05+02:30.
func (d *Decoder) ConsumeYearWeekDayHourMinuteTzOffset() (YearWeekDay, HourMinute, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteTzOffset)
	if err != nil {
		return YearWeekDay{}, HourMinute{}, TzOffset{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinute(), v.TzOffset, nil
}

// ConsumeYearWeekDayHourMinuteSecond consumes D2029-W08-03T06:05:04.
func (d *Decoder) ConsumeYearWeekDayHourMinuteSecond() (YearWeekDay, HourMinuteSecond, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteSecond)
	if err != nil {
		return YearWeekDay{}, HourMinuteSecond{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteSecond(), nil
}

// ConsumeYearWeekDayHourMinuteSecondTzOffset consumes D2029-W08-03T06:05:04+02:30.
func (d *Decoder) ConsumeYearWeekDayHourMinuteSecondTzOffset() (YearWeekDay, HourMinuteSecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteSecondTzOffset)
	if err != nil {
		return YearWeekDay{}, HourMinuteSecond{}, TzOffset{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteSecond(), v.TzOffset, nil
}

// ConsumeYearWeekDayHourMinuteMillisecond consumes D2029-W08-03T06:05:04.333.
func (d *Decoder) ConsumeYearWeekDayHourMinuteMillisecond() (YearWeekDay, HourMinuteMillisecond, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteMillisecond)
	if err != nil {
		return YearWeekDay{}, HourMinuteMillisecond{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteMillisecond(), nil
}

// ConsumeYearWeekDayHourMinuteMillisecondTzOffset consumes D2029-W08-03T06:05:04.333+02:30.
func (d *Decoder) ConsumeYearWeekDayHourMinuteMillisecondTzOffset() (YearWeekDay, HourMinuteMillisecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteMillisecondTzOffset)
	if err != nil {
		return YearWeekDay{}, HourMinuteMillisecond{}, TzOffset{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteMillisecond(), v.TzOffset, nil
}

// ConsumeYearWeekDayHourMinuteMicrosecond consumes D2029-W08-03T06:05:04.333_222.
func (d *Decoder) ConsumeYearWeekDayHourMinuteMicrosecond() (YearWeekDay, HourMinuteMicrosecond, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteMicrosecond)
	if err != nil {
		return YearWeekDay{}, HourMinuteMicrosecond{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteMicrosecond(), nil
}

// ConsumeYearWeekDayHourMinuteMicrosecondTzOffset consumes D2029-W08-03T06:05:04.333_222+02:30.
func (d *Decoder) ConsumeYearWeekDayHourMinuteMicrosecondTzOffset() (YearWeekDay, HourMinuteMicrosecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteMicrosecondTzOffset)
	if err != nil {
		return YearWeekDay{}, HourMinuteMicrosecond{}, TzOffset{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteMicrosecond(), v.TzOffset, nil
}

// ConsumeYearWeekDayHourMinuteNanosecond consumes D2029-W08-03T06:05:04.333_222_111.
func (d *Decoder) ConsumeYearWeekDayHourMinuteNanosecond() (YearWeekDay, HourMinuteNanosecond, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteNanosecond)
	if err != nil {
		return YearWeekDay{}, HourMinuteNanosecond{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteNanosecond(), nil
}

// ConsumeYearWeekDayHourMinuteNanosecondTzOffset consumes D2029-W08-03T06:05:04.333_222_111+02:30.
func (d *Decoder) ConsumeYearWeekDayHourMinuteNanosecondTzOffset() (YearWeekDay, HourMinuteNanosecond, TzOffset, error) {
	v, err := d.consumeShape(shapeYearWeekDayHourMinuteNanosecondTzOffset)
	if err != nil {
		return YearWeekDay{}, HourMinuteNanosecond{}, TzOffset{}, err
	}
	return v.Date.yearWeekDay(), v.Time.hourMinuteNanosecond(), v.TzOffset, nil
}

// ConsumeHour consumes T06.
func (d *Decoder) ConsumeHour() (Hour, error) {
	v, err := d.consumeShape(shapeHour)
	if err != nil {
		return Hour{}, err
	}
	return v.Time.hour(), nil
}

// ConsumeHourTzOffset consumes T06+02:30.
func (d *Decoder) ConsumeHourTzOffset() (Hour, TzOffset, error) {
	v, err := d.consumeShape(shapeHourTzOffset)
	if err != nil {
		return Hour{}, TzOffset{}, err
	}
	return v.Time.hour(), v.TzOffset, nil
}

// ConsumeHourMinute consumes T06:05.
func (d *Decoder) ConsumeHourMinute() (HourMinute, error) {
	v, err := d.consumeShape(shapeHourMinute)
	if err != nil {
		return HourMinute{}, err
	}
	return v.Time.hourMinute(), nil
}

// ConsumeHourMinuteTzOffset consumes T06:05+02:30.
func (d *Decoder) ConsumeHourMinuteTzOffset() (HourMinute, TzOffset, error) {
	v, err := d.consumeShape(shapeHourMinuteTzOffset)
	if err != nil {
		return HourMinute{}, TzOffset{}, err
	}
	return v.Time.hourMinute(), v.TzOffset, nil
}

// ConsumeHourMinuteSecond consumes T06:05:04.
func (d *Decoder) ConsumeHourMinuteSecond() (HourMinuteSecond, error) {
	v, err := d.consumeShape(shapeHourMinuteSecond)
	if err != nil {
		return HourMinuteSecond{}, err
	}
	return v.Time.hourMinuteSecond(), nil
}

// ConsumeHourMinuteSecondTzOffset consumes T06:05:04+02:30.
func (d *Decoder) ConsumeHourMinuteSecondTzOffset() (HourMinuteSecond, TzOffset, error) {
	v, err := d.consumeShape(shapeHourMinuteSecondTzOffset)
	if err != nil {
		return HourMinuteSecond{}, TzOffset{}, err
	}
	return v.Time.hourMinuteSecond(), v.TzOffset, nil
}

// ConsumeHourMinuteMillisecond consumes T06:05:04.333.
func (d *Decoder) ConsumeHourMinuteMillisecond() (HourMinuteMillisecond, error) {
	v, err := d.consumeShape(shapeHourMinuteMillisecond)
	if err != nil {
		return HourMinuteMillisecond{}, err
	}
	return v.Time.hourMinuteMillisecond(), nil
}

// ConsumeHourMinuteMillisecondTzOffset consumes T06:05:04.333+02:30.
func (d *Decoder) ConsumeHourMinuteMillisecondTzOffset() (HourMinuteMillisecond, TzOffset, error) {
	v, err := d.consumeShape(shapeHourMinuteMillisecondTzOffset)
	if err != nil {
		return HourMinuteMillisecond{}, TzOffset{}, err
	}
	return v.Time.hourMinuteMillisecond(), v.TzOffset, nil
}

// ConsumeHourMinuteMicrosecond consumes T06:05:04.333_222.
func (d *Decoder) ConsumeHourMinuteMicrosecond() (HourMinuteMicrosecond, error) {
	v, err := d.consumeShape(shapeHourMinuteMicrosecond)
	if err != nil {
		return HourMinuteMicrosecond{}, err
	}
	return v.Time.hourMinuteMicrosecond(), nil
}

// ConsumeHourMinuteMicrosecondTzOffset consumes T06:05:04.333_222+02:30.
func (d *Decoder) ConsumeHourMinuteMicrosecondTzOffset() (HourMinuteMicrosecond, TzOffset, error) {
	v, err := d.consumeShape(shapeHourMinuteMicrosecondTzOffset)
	if err != nil {
		return HourMinuteMicrosecond{}, TzOffset{}, err
	}
	return v.Time.hourMinuteMicrosecond(), v.TzOffset, nil
}

// ConsumeHourMinuteNanosecond consumes T06:05:04.333_222_111.
func (d *Decoder) ConsumeHourMinuteNanosecond() (HourMinuteNanosecond, error) {
	v, err := d.consumeShape(shapeHourMinuteNanosecond)
	if err != nil {
		return HourMinuteNanosecond{}, err
	}
	return v.Time.hourMinuteNanosecond(), nil
}

// ConsumeHourMinuteNanosecondTzOffset consumes T06:05:04.333_222_111+02:30.
func (d *Decoder) ConsumeHourMinuteNanosecondTzOffset() (HourMinuteNanosecond, TzOffset, error) {
	v, err := d.consumeShape(shapeHourMinuteNanosecondTzOffset)
	if err != nil {
		return HourMinuteNanosecond{}, TzOffset{}, err
	}
	return v.Time.hourMinuteNanosecond(), v.TzOffset, nil
}
