package jtoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type yearTz struct {
	Y  Year
	Tz TzOffset
}

type ymdTime[T any] struct {
	D YearMonthDay
	T T
}

func TestConsumeYear(t *testing.T) {
	runDecodeCases(t, []decodeCase[Year]{
		{in: "", reason: ExpectedYear},
		{in: "T", reason: ExpectedYear},
		{in: "!", reason: ExpectedYear},
		{in: "D0", reason: MalformedDate},
		{in: "D000", reason: MalformedDate},
		{in: "D2029Z", reason: ExpectedYear},
		{in: "D2029-08", reason: ExpectedYear},
		{in: "D0000", reason: YearOutOfRange},
		{in: "D0001", want: Year{1}},
		{in: "D2029", want: Year{2029}},
		{in: "D9999", want: Year{9999}},
		{in: "D999a", reason: MalformedDate},
		{in: "D10000", reason: MalformedDate},
		{in: "D1000T", reason: MalformedDateTimeTzOffset},
		{in: "D2029!", reason: MalformedDate},
	}, (*Decoder).ConsumeYear)
}

func TestConsumeYearTzOffset(t *testing.T) {
	runDecodeCases(t, []decodeCase[yearTz]{
		{in: "D2029", reason: ExpectedTzOffset},
		{in: "D2029-01", reason: ExpectedYearTzOffset},
		{in: "D2029!", reason: MalformedDate},
		{in: "D2029+", reason: MalformedTimeZoneOffset},
		{in: "D2029~", reason: MalformedTimeZoneOffset},
		{in: "D2029+0", reason: MalformedTimeZoneOffset},
		{in: "D2029~0x", reason: MalformedTimeZoneOffset},
		{in: "D2029+00", reason: ZeroTimeZoneOffsetShouldBeZ},
		{in: "D2029~00", reason: ZeroTimeZoneOffsetShouldBeZ},
		{in: "D2029+00:00", reason: ZeroTimeZoneOffsetShouldBeZ},
		{in: "D2029~08:00", reason: ZeroTimeZoneMinutesShouldBeOmitted},
		{in: "D2029~00:30", reason: NegativeZero},
		{in: "D2029Z", want: yearTz{Year{2029}, TzOffset{}}},
		{in: "D2029+01", want: yearTz{Year{2029}, TzOffset{1, 0}}},
		{in: "D2029~01", want: yearTz{Year{2029}, TzOffset{-1, 0}}},
		{in: "D2029+23", want: yearTz{Year{2029}, TzOffset{23, 0}}},
		{in: "D2029~23", want: yearTz{Year{2029}, TzOffset{-23, 0}}},
		{in: "D2029+00:30", want: yearTz{Year{2029}, TzOffset{0, 30}}},
		{in: "D2029+24", reason: TimezoneOffsetHourOutOfRange},
		{in: "D2029+08!", reason: MalformedTimeZoneOffset},
		{in: "D2029+08:", reason: MalformedTimeZoneOffset},
		{in: "D2029~08:0", reason: MalformedTimeZoneOffset},
		{in: "D2029+08:0x", reason: MalformedTimeZoneOffset},
		{in: "D2029+08:01", want: yearTz{Year{2029}, TzOffset{8, 1}}},
		{in: "D2029~08:59", want: yearTz{Year{2029}, TzOffset{-8, 59}}},
		{in: "D2029+08:60", reason: TimezoneOffsetMinuteOutOfRange},
		{in: "D2029ZT06", reason: MalformedDateTimeTzOffset},
	}, func(d *Decoder) (yearTz, error) {
		y, tz, err := d.ConsumeYearTzOffset()
		return yearTz{y, tz}, err
	})
}

func TestConsumeYearMonth(t *testing.T) {
	runDecodeCases(t, []decodeCase[YearMonth]{
		{in: "D2029", reason: ExpectedMonth},
		{in: "D2029Z", reason: ExpectedMonth},
		{in: "D2029-W08", reason: ExpectedMonth},
		{in: "D2029-", reason: MalformedDate},
		{in: "D2029-0", reason: MalformedDate},
		{in: "D2029-0x", reason: MalformedDate},
		{in: "D2029-08x", reason: MalformedDate},
		{in: "D2029-08Z", reason: ExpectedYearMonth},
		{in: "D2029-08-01", reason: ExpectedYearMonth},
		{in: "D2029-00", reason: MonthOutOfRange},
		{in: "D2029-01", want: YearMonth{2029, 1}},
		{in: "D2029-12", want: YearMonth{2029, 12}},
		{in: "D2029-13", reason: MonthOutOfRange},
	}, (*Decoder).ConsumeYearMonth)
}

func TestConsumeYearWeek(t *testing.T) {
	runDecodeCases(t, []decodeCase[YearWeek]{
		{in: "D2029", reason: ExpectedWeek},
		{in: "D2029-01", reason: ExpectedWeek},
		{in: "D2029-W", reason: MalformedDate},
		{in: "D2029-W0x", reason: MalformedDate},
		{in: "D2029-W01x", reason: MalformedDate},
		{in: "D2029-W08-01", reason: ExpectedYearWeek},
		{in: "D2029-W08Z", reason: ExpectedYearWeek},
		{in: "D2029-W00", reason: WeekOutOfRange},
		{in: "D2029-W01", want: YearWeek{2029, 1}},
		{in: "D2029-W53", want: YearWeek{2029, 53}},
		{in: "D2029-W54", reason: WeekOutOfRange},
	}, (*Decoder).ConsumeYearWeek)
}

func TestConsumeYearMonthDay(t *testing.T) {
	runDecodeCases(t, []decodeCase[YearMonthDay]{
		{in: "D2029-08", reason: ExpectedDay},
		{in: "D2029-W08-01", reason: ExpectedMonth},
		{in: "D2029-08-", reason: MalformedDate},
		{in: "D2029-08-0x", reason: MalformedDate},
		{in: "D2029-08-00", reason: DayOutOfRange},
		{in: "D2029-08-32", reason: DayOutOfRange},
		{in: "D2029-08-07T00", reason: ExpectedYearMonthDay},
		{in: "D2029-08-07Z", reason: ExpectedYearMonthDay},
		{in: "D2029-08-01", want: YearMonthDay{2029, 8, 1}},
		{in: "D2029-08-31", want: YearMonthDay{2029, 8, 31}},
	}, (*Decoder).ConsumeYearMonthDay)
}

func TestConsumeYearWeekDay(t *testing.T) {
	runDecodeCases(t, []decodeCase[YearWeekDay]{
		{in: "D2029-W08", reason: ExpectedDay},
		{in: "D2029-08-01", reason: ExpectedWeek},
		{in: "D2029-W08-00", reason: DayOutOfRange},
		{in: "D2029-W08-08", reason: DayOutOfRange},
		{in: "D2029-W08-01", want: YearWeekDay{2029, 8, 1}},
		{in: "D2029-W08-07", want: YearWeekDay{2029, 8, 7}},
	}, (*Decoder).ConsumeYearWeekDay)
}

func TestConsumeYearMonthDayHour(t *testing.T) {
	runDecodeCases(t, []decodeCase[ymdTime[Hour]]{
		{in: "D2029-08-07", reason: ExpectedHour},
		{in: "D2029-W08-07T06", reason: ExpectedMonth},
		{in: "D2029-08-07T06Z", reason: ExpectedYearMonthDayHour},
		{in: "D2029-08-07T06:05", reason: ExpectedYearMonthDayHour},
		{in: "D2029-08-07T", reason: MalformedTime},
		{in: "D2029-08-07Tx", reason: MalformedTime},
		{in: "D2029-08-07T0", reason: MalformedTime},
		{in: "D2029-08-07T12x", reason: MalformedTime},
		{in: "D2029-08-07T01", want: ymdTime[Hour]{YearMonthDay{2029, 8, 7}, Hour{1}}},
		{in: "D2029-08-07T23", want: ymdTime[Hour]{YearMonthDay{2029, 8, 7}, Hour{23}}},
		{in: "D2029-08-07T24", reason: HourOutOfRange},
	}, func(d *Decoder) (ymdTime[Hour], error) {
		ymd, h, err := d.ConsumeYearMonthDayHour()
		return ymdTime[Hour]{ymd, h}, err
	})
}

func TestConsumeYearMonthDayHourMinuteSecond(t *testing.T) {
	at := func(s uint8) ymdTime[HourMinuteSecond] {
		return ymdTime[HourMinuteSecond]{YearMonthDay{2029, 8, 7}, HourMinuteSecond{6, 5, s}}
	}
	runDecodeCases(t, []decodeCase[ymdTime[HourMinuteSecond]]{
		{in: "D2029-08-07T06", reason: ExpectedMinute},
		{in: "D2029-08-07T06:05", reason: ExpectedSecond},
		{in: "D2029-08-07T06:5", reason: MalformedTime},
		{in: "D2029-08-07T06:60", reason: MinuteOutOfRange},
		{in: "D2029-08-07T06:05:0", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.003", reason: ExpectedYearMonthDayHourMinuteSecond},
		{in: "D2029-08-07T06:05:00", want: at(0)},
		{in: "D2029-08-07T06:05:60", want: at(60)},
		{in: "D2029-08-07T06:05:61", reason: SecondOutOfRange},
	}, func(d *Decoder) (ymdTime[HourMinuteSecond], error) {
		ymd, hms, err := d.ConsumeYearMonthDayHourMinuteSecond()
		return ymdTime[HourMinuteSecond]{ymd, hms}, err
	})
}

func TestConsumeYearMonthDayHourMinuteMillisecond(t *testing.T) {
	at := func(ms uint32) ymdTime[HourMinuteMillisecond] {
		return ymdTime[HourMinuteMillisecond]{YearMonthDay{2029, 8, 7}, HourMinuteMillisecond{6, 5, ms}}
	}
	runDecodeCases(t, []decodeCase[ymdTime[HourMinuteMillisecond]]{
		{in: "D2029-08-07T06:05:04", reason: ExpectedMillisecond},
		{in: "D2029-08-07T06:05:04.003Z", reason: ExpectedYearMonthDayHourMinuteMillisecond},
		{in: "D2029-W08-07T06:05:04.003", reason: ExpectedMonth},
		{in: "D2029-08-07T06:05:04.003_002", reason: ExpectedYearMonthDayHourMinuteMillisecond},
		{in: "D2029-08-07T06:05:04.", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.0x", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.00", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.000x", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.0000", reason: MalformedTime},
		{in: "D2029-08-07T06:05:00.000", want: at(0)},
		{in: "D2029-08-07T06:05:00.999", want: at(999)},
		{in: "D2029-08-07T06:05:04.321", want: at(4321)},
		{in: "D2029-08-07T06:05:60.999", want: at(60999)},
		{in: "D2029-08-07T06:05:61.000", reason: SecondOutOfRange},
	}, func(d *Decoder) (ymdTime[HourMinuteMillisecond], error) {
		ymd, hm, err := d.ConsumeYearMonthDayHourMinuteMillisecond()
		return ymdTime[HourMinuteMillisecond]{ymd, hm}, err
	})
}

func TestConsumeYearMonthDayHourMinuteMicrosecond(t *testing.T) {
	at := func(us uint32) ymdTime[HourMinuteMicrosecond] {
		return ymdTime[HourMinuteMicrosecond]{YearMonthDay{2029, 8, 7}, HourMinuteMicrosecond{6, 5, us}}
	}
	runDecodeCases(t, []decodeCase[ymdTime[HourMinuteMicrosecond]]{
		{in: "D2029-08-07T06:05:04.003", reason: ExpectedMicrosecond},
		{in: "D2029-08-07T06:05:04.003_", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.003_00", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.003_002_001", reason: ExpectedYearMonthDayHourMinuteMicrosecond},
		{in: "D2029-08-07T06:05:04.003_002", want: at(4_003_002)},
		{in: "D2029-08-07T06:05:60.999_999", want: at(60_999_999)},
	}, func(d *Decoder) (ymdTime[HourMinuteMicrosecond], error) {
		ymd, hm, err := d.ConsumeYearMonthDayHourMinuteMicrosecond()
		return ymdTime[HourMinuteMicrosecond]{ymd, hm}, err
	})
}

func TestConsumeYearMonthDayHourMinuteNanosecond(t *testing.T) {
	at := func(ns uint64) ymdTime[HourMinuteNanosecond] {
		return ymdTime[HourMinuteNanosecond]{YearMonthDay{2029, 8, 7}, HourMinuteNanosecond{6, 5, ns}}
	}
	runDecodeCases(t, []decodeCase[ymdTime[HourMinuteNanosecond]]{
		{in: "D2029-08-07T06:05:04.003_002", reason: ExpectedNanosecond},
		{in: "D2029-08-07T06:05:04", reason: ExpectedMillisecond},
		{in: "D2029-08-07T06:05:04.003_002_00", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.003_002_001_000", reason: MalformedTime},
		{in: "D2029-08-07T06:05:04.333_222_111", want: at(4_333_222_111)},
		{in: "D2029-08-07T06:05:60.999_999_999", want: at(60_999_999_999)},
	}, func(d *Decoder) (ymdTime[HourMinuteNanosecond], error) {
		ymd, hm, err := d.ConsumeYearMonthDayHourMinuteNanosecond()
		return ymdTime[HourMinuteNanosecond]{ymd, hm}, err
	})
}

func TestConsumeYearWeekDayHourMinuteTzOffset(t *testing.T) {
	dec := NewDecoder([]byte("D2029-W08-03T06:05~05:30"))
	ywd, hm, tz, err := dec.ConsumeYearWeekDayHourMinuteTzOffset()
	require.NoError(t, err)
	assert.Equal(t, YearWeekDay{2029, 8, 3}, ywd)
	assert.Equal(t, HourMinute{6, 5}, hm)
	assert.Equal(t, TzOffset{-5, 30}, tz)
	require.NoError(t, dec.Close())

	_, _, _, err = NewDecoder([]byte("D2029-W08-03T06:05")).ConsumeYearWeekDayHourMinuteTzOffset()
	assert.ErrorIs(t, err, ExpectedTzOffset)
}

func TestConsumeTimeOnly(t *testing.T) {
	runDecodeCases(t, []decodeCase[Hour]{
		{in: "", reason: ExpectedHour},
		{in: "D2029-08-07T06", reason: ExpectedHour},
		{in: "T", reason: MalformedTime},
		{in: "T06Z", reason: ExpectedHour},
		{in: "T06:05", reason: ExpectedHour},
		{in: "T06", want: Hour{6}},
	}, (*Decoder).ConsumeHour)

	dec := NewDecoder([]byte("T06:05:04.333_222_111+02"))
	hm, tz, err := dec.ConsumeHourMinuteNanosecondTzOffset()
	require.NoError(t, err)
	assert.Equal(t, HourMinuteNanosecond{6, 5, 4_333_222_111}, hm)
	assert.Equal(t, uint8(4), hm.Second())
	assert.Equal(t, uint32(4_333), hm.Millisecond())
	assert.Equal(t, uint32(4_333_222), hm.Microsecond())
	assert.Equal(t, TzOffset{2, 0}, tz)
	require.NoError(t, dec.Close())

	_, err = NewDecoder([]byte("T06:05:04.333")).ConsumeHourMinuteSecond()
	assert.ErrorIs(t, err, ExpectedHourMinuteSecond)
}

func TestConsumeDateTimeTzOffset(t *testing.T) {
	runDecodeCases(t, []decodeCase[DateTimeTzOffset]{
		{in: "", reason: ExpectedDateTimeTzOffset},
		{in: "Z", reason: ExpectedDateTimeTzOffset},
		{in: "D2029-08T06", reason: MalformedDateTimeTzOffset},
		{in: "D2029-W08T06", reason: MalformedDateTimeTzOffset},
		{in: "D2029ZT06", reason: MalformedDateTimeTzOffset},
		{in: "D2029Zx", reason: MalformedTimeZoneOffset},
		{
			in: "D2029-08-07T00",
			want: DateTimeTzOffset{
				Date: Date{Kind: DateYearMonthDay, Year: 2029, Month: 8, Day: 7},
				Time: Time{Precision: PrecisionHour},
			},
		},
		{
			in: "D2029-W08Z",
			want: DateTimeTzOffset{
				Date:        Date{Kind: DateYearWeek, Year: 2029, Week: 8},
				HasTzOffset: true,
			},
		},
		{
			in: "T23:59:60.5_",
			reason: MalformedTime,
		},
		{
			in: "T23:59:59.500~11",
			want: DateTimeTzOffset{
				Time:        Time{Precision: PrecisionMillisecond, Hour: 23, Minute: 59, Nanos: 59_500_000_000},
				TzOffset:    TzOffset{Hour: -11},
				HasTzOffset: true,
			},
		},
	}, (*Decoder).ConsumeDateTimeTzOffset)
}

func TestDateTimeInList(t *testing.T) {
	dec := NewDecoder([]byte("[D2029-08-07Z,T06]"))
	require.NoError(t, dec.ConsumeOpenList())
	ymd, tz, err := dec.ConsumeYearMonthDayTzOffset()
	require.NoError(t, err)
	assert.Equal(t, YearMonthDay{2029, 8, 7}, ymd)
	assert.True(t, tz.IsZero())
	h, err := dec.ConsumeHour()
	require.NoError(t, err)
	assert.Equal(t, Hour{6}, h)
	require.NoError(t, dec.ConsumeCloseList())
	require.NoError(t, dec.Close())
}
