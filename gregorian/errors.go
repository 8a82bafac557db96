// SPDX-License-Identifier: MIT

package gregorian

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the date and time builders.
var (
	// ErrInvalidDatePattern indicates a combination of date parts that forms
	// no readable date, such as a year and a day without a month.
	ErrInvalidDatePattern = errors.New("gregorian: invalid date pattern")

	// ErrYearOutOfRange indicates a year outside 0-65535.
	ErrYearOutOfRange = errors.New("gregorian: year out of range")

	// ErrMonthOutOfRange indicates a month outside 1-12.
	ErrMonthOutOfRange = errors.New("gregorian: month out of range")

	// ErrDayOutOfRange indicates a day outside 1-31.
	ErrDayOutOfRange = errors.New("gregorian: day out of range")

	// ErrWeekDayOutOfRange indicates a week day outside Sunday-Saturday.
	ErrWeekDayOutOfRange = errors.New("gregorian: week day out of range")

	// ErrInvalidDate indicates a day that does not exist in its month.
	ErrInvalidDate = errors.New("gregorian: invalid date")

	// ErrHourOutOfRange indicates an hour outside the clock range.
	ErrHourOutOfRange = errors.New("gregorian: hour out of range")

	// ErrMinuteOutOfRange indicates a minute outside 0-59.
	ErrMinuteOutOfRange = errors.New("gregorian: minute out of range")

	// ErrSecondOutOfRange indicates a second outside 0-59.
	ErrSecondOutOfRange = errors.New("gregorian: second out of range")
)

// PatternError reports the pattern formed by the parts set on a
// DateBuilder, e.g. "yd".
type PatternError struct {
	Pattern string
}

// Error implements error.
func (e *PatternError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidDatePattern, e.Pattern)
}

// Unwrap returns ErrInvalidDatePattern.
func (e *PatternError) Unwrap() error { return ErrInvalidDatePattern }

// InvalidDateError reports a month and day that cannot go together.
// HasYear tells whether Year took part in the check.
type InvalidDateError struct {
	Year    uint16
	HasYear bool
	Month   uint8
	Day     uint8
}

// Error implements error; the date is written year-month-day, or
// month-day when no year was given.
func (e *InvalidDateError) Error() string {
	if e.HasYear {
		return fmt.Sprintf("%v: %d-%d-%d", ErrInvalidDate, e.Year, e.Month, e.Day)
	}

	return fmt.Sprintf("%v: %d-%d", ErrInvalidDate, e.Month, e.Day)
}

// Unwrap returns ErrInvalidDate.
func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }
