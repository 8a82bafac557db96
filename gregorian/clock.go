// SPDX-License-Identifier: MIT

package gregorian

import (
	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/measure"
)

type (
	hourUnit   struct{}
	minuteUnit struct{}
	secondUnit struct{}
)

func (hourUnit) ToChinese(v chinese.Variant) chinese.Chinese {
	return chinese.Chinese{Logograms: v.Pick("点", "點")}
}

func (minuteUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "分"} }
func (secondUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "秒"} }

// Hour24 is an hour on the 24-hour clock, 0-23. Hours are counted, so 2
// reads 两点.
type Hour24 struct {
	value uint8
}

// NewHour24 validates h.
//
// Errors:
//   - *chinese.ValueError wrapping ErrHourOutOfRange if h > 23.
func NewHour24(h uint8) (Hour24, error) {
	if h > 23 {
		return Hour24{}, &chinese.ValueError{Err: ErrHourOutOfRange, Value: h}
	}

	return Hour24{value: h}, nil
}

// Value returns the hour.
func (h Hour24) Value() uint8 { return h.value }

// Hour12 converts to the 12-hour clock: 0 is 12, 13-23 are 1-11.
func (h Hour24) Hour12() Hour12 {
	switch {
	case h.value == 0:
		return Hour12{value: 12}
	case h.value > 12:
		return Hour12{value: h.value - 12}
	default:
		return Hour12{value: h.value}
	}
}

// DayPart returns the part of the day the hour belongs to.
func (h Hour24) DayPart() DayPart {
	return dayPartByHour[h.value]
}

// ToChinese implements chinese.Formatter.
func (h Hour24) ToChinese(v chinese.Variant) chinese.Chinese {
	return measure.CountOf[hourUnit](uint64(h.value)).ToChinese(v)
}

// Hour12 is an hour on the 12-hour clock, 1-12.
type Hour12 struct {
	value uint8
}

// NewHour12 validates h.
//
// Errors:
//   - *chinese.ValueError wrapping ErrHourOutOfRange unless 1 <= h <= 12.
func NewHour12(h uint8) (Hour12, error) {
	if h < 1 || h > 12 {
		return Hour12{}, &chinese.ValueError{Err: ErrHourOutOfRange, Value: h}
	}

	return Hour12{value: h}, nil
}

// Value returns the hour.
func (h Hour12) Value() uint8 { return h.value }

// Next returns the following hour; 12 is followed by 1.
func (h Hour12) Next() Hour12 {
	if h.value >= 12 {
		return Hour12{value: 1}
	}

	return Hour12{value: h.value + 1}
}

// ToChinese implements chinese.Formatter.
func (h Hour12) ToChinese(v chinese.Variant) chinese.Chinese {
	return measure.CountOf[hourUnit](uint64(h.value)).ToChinese(v)
}

// Minute is a minute, 0-59. Zero is omissible.
type Minute struct {
	value uint8
}

// NewMinute validates m.
//
// Errors:
//   - *chinese.ValueError wrapping ErrMinuteOutOfRange if m > 59.
func NewMinute(m uint8) (Minute, error) {
	if m > 59 {
		return Minute{}, &chinese.ValueError{Err: ErrMinuteOutOfRange, Value: m}
	}

	return Minute{value: m}, nil
}

// Value returns the minute.
func (m Minute) Value() uint8 { return m.value }

// Complement returns the minutes left until the next hour, 60-m.
//
// Errors:
//   - *chinese.ValueError wrapping ErrMinuteOutOfRange for minute 0, whose
//     complement would be 60.
func (m Minute) Complement() (Minute, error) {
	return NewMinute(60 - m.value)
}

// ToChinese implements chinese.Formatter.
func (m Minute) ToChinese(v chinese.Variant) chinese.Chinese {
	return measure.New[minuteUnit](chinese.Uint(m.value)).ToChinese(v)
}

// Second is a second, 0-59. Zero is omissible.
type Second struct {
	value uint8
}

// NewSecond validates s.
//
// Errors:
//   - *chinese.ValueError wrapping ErrSecondOutOfRange if s > 59.
func NewSecond(s uint8) (Second, error) {
	if s > 59 {
		return Second{}, &chinese.ValueError{Err: ErrSecondOutOfRange, Value: s}
	}

	return Second{value: s}, nil
}

// Value returns the second.
func (s Second) Value() uint8 { return s.value }

// ToChinese implements chinese.Formatter.
func (s Second) ToChinese(v chinese.Variant) chinese.Chinese {
	return measure.New[secondUnit](chinese.Uint(s.value)).ToChinese(v)
}
