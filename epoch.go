// Package exceldate converts civil dates and times to the serial numbers
// spreadsheets store in date cells, and back.
package exceldate

import (
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/civil"
)

// Epoch selects the workbook date system a serial number is counted in.
type Epoch int

const (
	// Epoch1900 is the default Windows date system. Serial 0 is 1899-12-31
	// and 1900 is treated as a leap year.
	Epoch1900 Epoch = iota
	// Epoch1904 is the Mac date system used by workbooks with
	// workbookPr/@date1904 set. Serial 0 is 1904-01-01.
	Epoch1904
)

var (
	excel1900Epoch = civil.Date{Year: 1899, Month: time.December, Day: 31}
	excel1904Epoch = civil.Date{Year: 1904, Month: time.January, Day: 1}

	// lastDate is the last day a four-digit year can hold.
	lastDate = civil.Date{Year: 9999, Month: time.December, Day: 31}
)

// EpochFor returns the date system named by a workbook's date1904 flag.
func EpochFor(date1904 bool) Epoch {
	if date1904 {
		return Epoch1904
	}
	return Epoch1900
}

func (e Epoch) String() string {
	switch e {
	case Epoch1900:
		return "1900"
	case Epoch1904:
		return "1904"
	}
	return fmt.Sprintf("Epoch(%d)", int(e))
}

func (e Epoch) origin() civil.Date {
	if e == Epoch1904 {
		return excel1904Epoch
	}
	return excel1900Epoch
}

func (e Epoch) hasLeapBug() bool {
	return e != Epoch1904
}

// lastSerial is the day number of lastDate.
func (e Epoch) lastSerial() int {
	days := lastDate.DaysSince(e.origin())
	if e.hasLeapBug() {
		days++
	}
	return days
}

// checkSerial rejects values that cannot name a day in e.
func (e Epoch) checkSerial(serial float64) error {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 {
		return fmt.Errorf("serial %v: %w", serial, ErrInvalidSerial)
	}
	if serial >= float64(e.lastSerial()+1) {
		return fmt.Errorf("serial %v: %w", serial, ErrDateOutOfRange)
	}
	return nil
}
