package exceldate

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Lotus 1-2-3 counted 1900 as a leap year and Excel kept the mistake so old
// workbooks would still open with the same numbers. Serial 60 is the
// non-existent 1900-02-29 and every day from 1900-03-01 (serial 61) on is one
// higher than the real day count from the epoch.
const (
	fictitiousLeapDaySerial = 60
	leapBugSerial           = 61
)

var leapBugDate = civil.Date{Year: 1900, Month: time.March, Day: 1}

// DateToSerial converts d to a 1900 system serial date.
//
//	DateToSerial(civil.Date{Year: 2026, Month: time.January, Day: 1}) // 46023
func DateToSerial(d civil.Date) (float64, error) {
	return Epoch1900.DateToSerial(d)
}

// SerialToDate converts the integer part of a 1900 system serial date back to
// a calendar date. Serial 60 fails with ErrFictitiousLeapDay.
func SerialToDate(serial float64) (civil.Date, error) {
	return Epoch1900.SerialToDate(serial)
}

// DateToSerial returns the number of days between the epoch of e and d. The
// result has no fractional part.
func (e Epoch) DateToSerial(d civil.Date) (float64, error) {
	if !d.IsValid() {
		return 0, fmt.Errorf("%s: %w", d, ErrInvalidDate)
	}
	origin := e.origin()
	if d.Before(origin) || d.After(lastDate) {
		return 0, fmt.Errorf("date %s is outside %s..%s: %w", d, origin, lastDate, ErrDateOutOfRange)
	}

	days := d.DaysSince(origin)
	if e.hasLeapBug() && !d.Before(leapBugDate) {
		days++
	}
	return float64(days), nil
}

// SerialToDate returns the day named by the integer part of serial.
func (e Epoch) SerialToDate(serial float64) (civil.Date, error) {
	if err := e.checkSerial(serial); err != nil {
		return civil.Date{}, err
	}
	return e.dateFromDays(int(serial))
}

func (e Epoch) dateFromDays(serial int) (civil.Date, error) {
	days := serial
	if e.hasLeapBug() {
		switch {
		case serial == fictitiousLeapDaySerial:
			return civil.Date{}, ErrFictitiousLeapDay
		case days >= leapBugSerial:
			days--
		}
	}

	d := e.origin().AddDays(days)
	if d.After(lastDate) {
		return civil.Date{}, fmt.Errorf("serial %d is after %s: %w", serial, lastDate, ErrDateOutOfRange)
	}
	return d, nil
}
