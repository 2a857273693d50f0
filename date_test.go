package exceldate

import (
	"math"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

func TestDateToSerial(t *testing.T) {
	tests := []struct {
		date civil.Date
		want float64
	}{
		{date(1899, time.December, 31), 0},
		{date(1900, time.January, 1), 1},
		{date(1900, time.February, 28), 59},
		{date(1900, time.March, 1), 61},
		{date(1900, time.December, 31), 366},
		{date(2023, time.January, 1), 44927},
		{date(2026, time.January, 1), 46023},
		{date(9999, time.December, 31), 2958465},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			got, err := DateToSerial(tt.date)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDateToSerialErrors(t *testing.T) {
	_, err := DateToSerial(date(1899, time.December, 30))
	require.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = DateToSerial(date(10000, time.January, 1))
	require.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = DateToSerial(date(2023, time.February, 30))
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateToSerialMonotonic(t *testing.T) {
	d := date(1899, time.December, 31)
	prev, err := DateToSerial(d)
	require.NoError(t, err)

	for d.Before(date(1905, time.January, 1)) {
		d = d.AddDays(1)
		cur, err := DateToSerial(d)
		require.NoError(t, err)
		require.Less(t, prev, cur, d.String())
		prev = cur
	}
}

func TestSerialToDate(t *testing.T) {
	got, err := SerialToDate(0)
	require.NoError(t, err)
	require.Equal(t, date(1899, time.December, 31), got)

	got, err = SerialToDate(59)
	require.NoError(t, err)
	require.Equal(t, date(1900, time.February, 28), got)

	got, err = SerialToDate(61.9)
	require.NoError(t, err)
	require.Equal(t, date(1900, time.March, 1), got)

	got, err = SerialToDate(46023.5)
	require.NoError(t, err)
	require.Equal(t, date(2026, time.January, 1), got)

	got, err = SerialToDate(2958465.999)
	require.NoError(t, err)
	require.Equal(t, lastDate, got)
}

func TestSerialToDateFictitiousLeapDay(t *testing.T) {
	_, err := SerialToDate(60)
	require.ErrorIs(t, err, ErrFictitiousLeapDay)
	require.ErrorIs(t, err, ErrInvalidSerial)

	_, err = SerialToDate(60.25)
	require.ErrorIs(t, err, ErrFictitiousLeapDay)
}

func TestSerialToDateErrors(t *testing.T) {
	for _, serial := range []float64{-1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := SerialToDate(serial)
		require.ErrorIs(t, err, ErrInvalidSerial, "%v", serial)
	}

	for _, serial := range []float64{2958466, 1e300} {
		_, err := SerialToDate(serial)
		require.ErrorIs(t, err, ErrDateOutOfRange, "%v", serial)
	}
}

func TestDateRoundTrip(t *testing.T) {
	for d := date(1899, time.December, 31); !d.After(lastDate); d = d.AddDays(7) {
		serial, err := DateToSerial(d)
		require.NoError(t, err)

		got, err := SerialToDate(serial)
		require.NoError(t, err)
		require.Equal(t, d, got)
	}
}

func TestSerialDateRoundTrip(t *testing.T) {
	for serial := 0; serial < 400; serial++ {
		if serial == fictitiousLeapDaySerial {
			continue
		}
		d, err := SerialToDate(float64(serial))
		require.NoError(t, err)

		got, err := DateToSerial(d)
		require.NoError(t, err)
		require.Equal(t, float64(serial), got)
	}
}
