// Command exceldate converts between calendar values and spreadsheet serial
// dates.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/anfilat/exceldate"
)

var (
	date1904 bool
	verbose  bool
	kind     string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "exceldate",
	Short: "Convert dates and times to and from spreadsheet serial numbers",
	Long: `exceldate converts civil dates, times and date-times to the serial
numbers spreadsheets store in date cells, and back.

Serials count days from 1899-12-31 (or 1904-01-01 with --date1904) and keep
the time of day as a fraction of 24 hours.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var toSerialCmd = &cobra.Command{
	Use:   "to-serial <value>...",
	Short: "Print the serial of each date, time or date-time",
	Long: `Accepted values:
  2026-01-01
  12:00 or 12:00:00.250
  2026-01-01T12:00:00 or "2026-01-01 12:00"`,
	Args: cobra.MinimumNArgs(1),
	RunE: toSerial,
}

var fromSerialCmd = &cobra.Command{
	Use:   "from-serial <number>...",
	Short: "Print the date, time or date-time of each serial",
	Long: `Prints each serial as a date, time or date-time (--kind).

Negative numbers read as flags; pass them after "--":
  exceldate from-serial -- -1`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  fromSerial,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&date1904, "date1904", false, "use the 1904 date system")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	fromSerialCmd.Flags().StringVarP(&kind, "kind", "k", "datetime", "result kind: date, time or datetime")

	rootCmd.AddCommand(toSerialCmd, fromSerialCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func toSerial(cmd *cobra.Command, args []string) error {
	epoch := exceldate.EpochFor(date1904)
	for _, arg := range args {
		serial, err := valueToSerial(epoch, arg)
		if err != nil {
			return fmt.Errorf("convert %q: %w", arg, err)
		}
		logger.Debug("Converted to serial",
			zap.String("input", arg),
			zap.Stringer("epoch", epoch),
			zap.Float64("serial", serial))
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(serial, 'f', -1, 64))
	}
	return nil
}

func fromSerial(cmd *cobra.Command, args []string) error {
	epoch := exceldate.EpochFor(date1904)
	for _, arg := range args {
		serial, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}

		value, err := serialToValue(epoch, serial)
		if err != nil {
			return fmt.Errorf("convert %v: %w", serial, err)
		}
		logger.Debug("Converted from serial",
			zap.Float64("serial", serial),
			zap.Stringer("epoch", epoch),
			zap.String("kind", kind),
			zap.String("value", value))
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func valueToSerial(epoch exceldate.Epoch, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if dt, err := civil.ParseDateTime(strings.Replace(s, " ", "T", 1)); err == nil {
		return epoch.DateTimeToSerial(dt)
	}
	if t, err := time.Parse("2006-01-02T15:04", strings.Replace(s, " ", "T", 1)); err == nil {
		return epoch.DateTimeToSerial(civil.DateTimeOf(t))
	}
	if d, err := civil.ParseDate(s); err == nil {
		return epoch.DateToSerial(d)
	}
	if t, err := civil.ParseTime(s); err == nil {
		return exceldate.TimeToSerial(t)
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return exceldate.TimeToSerial(civil.TimeOf(t))
	}
	return 0, fmt.Errorf("unrecognized date or time %q", s)
}

func serialToValue(epoch exceldate.Epoch, serial float64) (string, error) {
	switch kind {
	case "date":
		d, err := epoch.SerialToDate(serial)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case "time":
		t, err := epoch.SerialToTime(serial)
		if err != nil {
			return "", err
		}
		return t.String(), nil
	case "datetime":
		dt, err := epoch.SerialToDateTime(serial)
		if err != nil {
			return "", err
		}
		return dt.String(), nil
	}
	return "", fmt.Errorf("unknown kind %q", kind)
}
