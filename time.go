package exceldate

import (
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/civil"
)

const (
	nanosInADay  = int64(24 * time.Hour)
	millisInADay = nanosInADay / int64(time.Millisecond)
)

// TimeToSerial returns t as a fraction of a day in [0, 1). Midnight is 0.
//
// The fraction is a single division of the nanoseconds since midnight so
// whole seconds come back unchanged from SerialToTime.
func TimeToSerial(t civil.Time) (float64, error) {
	if !t.IsValid() {
		return 0, fmt.Errorf("%s: %w", t, ErrInvalidTime)
	}
	return float64(nanosSinceMidnight(t)) / float64(nanosInADay), nil
}

// SerialToTime returns the time of day encoded in the fractional part of a
// 1900 system serial. See Epoch.SerialToTime.
func SerialToTime(serial float64) (civil.Time, error) {
	return Epoch1900.SerialToTime(serial)
}

// SerialToTime returns the time of day encoded in the fractional part of
// serial. The integer part is ignored, so a date-time cell yields its time.
//
// The result is rounded to the nearest millisecond, the finest unit Excel
// keeps. A time has no next day to carry into, so a fraction that rounds up
// to a whole day is clamped to 23:59:59.999.
func (e Epoch) SerialToTime(serial float64) (civil.Time, error) {
	if err := e.checkSerial(serial); err != nil {
		return civil.Time{}, err
	}
	whole := math.Floor(serial)
	millis := roundMillis(serial - whole)
	if millis >= millisInADay {
		millis = millisInADay - 1
	}
	return timeFromMillis(millis), nil
}

func nanosSinceMidnight(t civil.Time) int64 {
	return int64(t.Hour)*int64(time.Hour) +
		int64(t.Minute)*int64(time.Minute) +
		int64(t.Second)*int64(time.Second) +
		int64(t.Nanosecond)
}

// splitSerial separates serial into whole days and milliseconds of the day.
// Milliseconds that round up to a full day are carried into days.
func splitSerial(serial float64) (int, int64) {
	whole := math.Floor(serial)
	days := int(whole)
	millis := roundMillis(serial - whole)
	if millis >= millisInADay {
		days++
		millis -= millisInADay
	}
	return days, millis
}

func roundMillis(fraction float64) int64 {
	return int64(math.Round(fraction * float64(millisInADay)))
}

func timeFromMillis(millis int64) civil.Time {
	d := time.Duration(millis) * time.Millisecond
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second

	return civil.Time{
		Hour:       int(hours),
		Minute:     int(minutes),
		Second:     int(seconds),
		Nanosecond: int(d),
	}
}
