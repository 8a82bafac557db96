// SPDX-License-Identifier: MIT

package gregorian

import (
	"math"
	"time"

	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/internal/log"
)

// DateBuilder collects the parts of a date. Setters never fail; all
// validation happens in Build.
type DateBuilder struct {
	year       int
	month      uint8
	day        uint8
	weekDay    WeekDay
	hasYear    bool
	hasMonth   bool
	hasDay     bool
	hasWeekDay bool
	formal     bool
	weekFormat WeekFormat
}

// NewDateBuilder returns an empty builder in the formal register, with
// week days written after 星期.
func NewDateBuilder() *DateBuilder {
	return &DateBuilder{formal: true, weekFormat: XingQi}
}

// WithYear sets the year.
func (b *DateBuilder) WithYear(year uint16) *DateBuilder {
	b.year, b.hasYear = int(year), true
	return b
}

// WithMonth sets the month, 1-12.
func (b *DateBuilder) WithMonth(month uint8) *DateBuilder {
	b.month, b.hasMonth = month, true
	return b
}

// WithDay sets the day of the month, 1-31.
func (b *DateBuilder) WithDay(day uint8) *DateBuilder {
	b.day, b.hasDay = day, true
	return b
}

// WithWeekDay sets the day of the week.
func (b *DateBuilder) WithWeekDay(weekDay WeekDay) *DateBuilder {
	b.weekDay, b.hasWeekDay = weekDay, true
	return b
}

// WithFormal selects 号/號 (true, the default) or 日 (false) for the day.
func (b *DateBuilder) WithFormal(formal bool) *DateBuilder {
	b.formal = formal
	return b
}

// WithWeekFormat selects how the week day is introduced.
func (b *DateBuilder) WithWeekFormat(format WeekFormat) *DateBuilder {
	b.weekFormat = format
	return b
}

// WithTime sets year, month, day and week day from t, in t's location.
func (b *DateBuilder) WithTime(t time.Time) *DateBuilder {
	year, month, day := t.Date()
	b.year, b.hasYear = year, true

	return b.WithMonth(uint8(month)).WithDay(uint8(day)).WithWeekDay(WeekDayOf(t.Weekday()))
}

// Build validates the collected parts and returns the date.
//
// Checks run in this order and the first failure is returned:
//  1. pattern     – *PatternError (ErrInvalidDatePattern).
//  2. year        – ErrYearOutOfRange, only reachable through WithTime.
//  3. month range – ErrMonthOutOfRange.
//  4. day range   – ErrDayOutOfRange.
//  5. consistency – *InvalidDateError (ErrInvalidDate); February 29 needs
//     a leap year, or no year at all.
//  6. week day    – ErrWeekDayOutOfRange.
func (b *DateBuilder) Build() (Date, error) {
	date, err := b.build()
	if err != nil {
		log.Rejected("date", err, "pattern", patternOf(b.hasYear, b.hasMonth, b.hasDay, b.hasWeekDay))
		return Date{}, err
	}

	return date, nil
}

func (b *DateBuilder) build() (Date, error) {
	pattern := patternOf(b.hasYear, b.hasMonth, b.hasDay, b.hasWeekDay)
	if !ValidPattern(pattern) {
		return Date{}, &PatternError{Pattern: pattern}
	}

	var date Date
	leap := true
	if b.hasYear {
		if b.year < 0 || b.year > math.MaxUint16 {
			return Date{}, &chinese.ValueError{Err: ErrYearOutOfRange, Value: b.year}
		}
		year := NewYear(uint16(b.year))
		leap = year.IsLeap()
		date.year = chinese.Some(year)
	}

	if b.hasMonth {
		month, err := NewMonth(b.month)
		if err != nil {
			return Date{}, err
		}
		date.month = chinese.Some(month)
	}

	if b.hasDay {
		day, err := NewDay(b.day, b.formal)
		if err != nil {
			return Date{}, err
		}
		date.day = chinese.Some(day)
	}

	if b.hasMonth && b.hasDay && b.day > daysIn(b.month, leap) {
		return Date{}, &InvalidDateError{
			Year:    uint16(b.year),
			HasYear: b.hasYear,
			Month:   b.month,
			Day:     b.day,
		}
	}

	if b.hasWeekDay {
		if !b.weekDay.valid() {
			return Date{}, &chinese.ValueError{Err: ErrWeekDayOutOfRange, Value: int(b.weekDay)}
		}
		date.weekDay = chinese.Some(StyledWeekDay{Format: b.weekFormat, Day: b.weekDay})
	}

	return date, nil
}
