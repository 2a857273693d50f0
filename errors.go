package exceldate

import (
	"errors"
	"fmt"
)

var (
	ErrDateOutOfRange    = errors.New("date out of range")
	ErrInvalidSerial     = errors.New("invalid serial date")
	ErrFictitiousLeapDay = fmt.Errorf("serial 60 is the fictitious 1900-02-29: %w", ErrInvalidSerial)
	ErrInvalidDate       = errors.New("invalid civil date")
	ErrInvalidTime       = errors.New("invalid civil time")
	ErrDoubleQuote       = errors.New("invalid format string, unmatched double quote")
	ErrNoClosingQuote    = errors.New("no closing quote found")
)
