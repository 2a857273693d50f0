package exceldate

import (
	"time"

	"cloud.google.com/go/civil"
)

// DateTimeToSerial converts dt to a 1900 system serial date-time.
//
//	2026-01-01T12:00:00 -> 46023.5
func DateTimeToSerial(dt civil.DateTime) (float64, error) {
	return Epoch1900.DateTimeToSerial(dt)
}

// SerialToDateTime converts a 1900 system serial date-time back to a civil
// date-time. See Epoch.SerialToDateTime for the rounding rules.
func SerialToDateTime(serial float64) (civil.DateTime, error) {
	return Epoch1900.SerialToDateTime(serial)
}

// FromTime converts the wall clock reading of t to a 1900 system serial.
func FromTime(t time.Time) (float64, error) {
	return Epoch1900.FromTime(t)
}

// ToTime converts a 1900 system serial to a time.Time in loc.
func ToTime(serial float64, loc *time.Location) (time.Time, error) {
	return Epoch1900.ToTime(serial, loc)
}

// DateTimeToSerial returns the date serial of dt plus its time fraction.
func (e Epoch) DateTimeToSerial(dt civil.DateTime) (float64, error) {
	date, err := e.DateToSerial(dt.Date)
	if err != nil {
		return 0, err
	}
	t, err := TimeToSerial(dt.Time)
	if err != nil {
		return 0, err
	}
	return date + t, nil
}

// SerialToDateTime splits serial into a day and a time of day.
//
// The time is rounded to the nearest millisecond. When that rounding reaches
// 24:00:00 the value becomes midnight of the following day, so a serial just
// below the end of 9999-12-31 fails with ErrDateOutOfRange.
func (e Epoch) SerialToDateTime(serial float64) (civil.DateTime, error) {
	if err := e.checkSerial(serial); err != nil {
		return civil.DateTime{}, err
	}

	days, millis := splitSerial(serial)
	date, err := e.dateFromDays(days)
	if err != nil {
		return civil.DateTime{}, err
	}
	return civil.DateTime{Date: date, Time: timeFromMillis(millis)}, nil
}

// FromTime converts the wall clock reading of t. The location of t only
// decides which calendar day and hour are read; no offset is applied.
func (e Epoch) FromTime(t time.Time) (float64, error) {
	return e.DateTimeToSerial(civil.DateTimeOf(t))
}

// ToTime places the date-time named by serial in loc. A nil loc means UTC.
func (e Epoch) ToTime(serial float64, loc *time.Location) (time.Time, error) {
	dt, err := e.SerialToDateTime(serial)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return dt.In(loc), nil
}
