// SPDX-License-Identifier: MIT

package gregorian

import (
	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/measure"
)

type (
	yearUnit        struct{}
	monthUnit       struct{}
	formalDayUnit   struct{}
	informalDayUnit struct{}
)

func (yearUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "年"} }
func (monthUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "月"} }
func (informalDayUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "日"} }

func (formalDayUnit) ToChinese(v chinese.Variant) chinese.Chinese {
	return chinese.Chinese{Logograms: v.Pick("号", "號")}
}

// Year is a calendar year, read digit by digit: 二零一四年.
type Year struct {
	value  uint16
	digits measure.Owned[chinese.DigitSequence, yearUnit]
}

// NewYear wraps y. Every uint16 is a valid year.
func NewYear(y uint16) Year {
	return Year{value: y, digits: measure.NewOwned[yearUnit](chinese.DigitsOf(uint64(y)))}
}

// Value returns the year number.
func (y Year) Value() uint16 { return y.value }

// IsLeap reports whether the year has a February 29.
func (y Year) IsLeap() bool {
	return y.value%4 == 0 && (y.value%100 != 0 || y.value%400 == 0)
}

// ToChinese implements chinese.Formatter.
func (y Year) ToChinese(v chinese.Variant) chinese.Chinese {
	return y.digits.ToChinese(v)
}

// Month is a month of the year, 1-12: 二月.
type Month struct {
	value uint8
}

// NewMonth validates m.
//
// Errors:
//   - *chinese.ValueError wrapping ErrMonthOutOfRange unless 1 <= m <= 12.
func NewMonth(m uint8) (Month, error) {
	if m < 1 || m > 12 {
		return Month{}, &chinese.ValueError{Err: ErrMonthOutOfRange, Value: m}
	}

	return Month{value: m}, nil
}

// Value returns the month number.
func (m Month) Value() uint8 { return m.value }

// ToChinese implements chinese.Formatter.
func (m Month) ToChinese(v chinese.Variant) chinese.Chinese {
	return measure.New[monthUnit](chinese.Uint(m.value)).ToChinese(v)
}

// Day is a day of the month, 1-31, with its register: 二十二号 (formal)
// or 二十二日 (informal).
type Day struct {
	value  uint8
	formal bool
}

// NewDay validates d.
//
// Errors:
//   - *chinese.ValueError wrapping ErrDayOutOfRange unless 1 <= d <= 31.
func NewDay(d uint8, formal bool) (Day, error) {
	if d < 1 || d > 31 {
		return Day{}, &chinese.ValueError{Err: ErrDayOutOfRange, Value: d}
	}

	return Day{value: d, formal: formal}, nil
}

// Value returns the day number.
func (d Day) Value() uint8 { return d.value }

// Formal reports the register.
func (d Day) Formal() bool { return d.formal }

// ToChinese implements chinese.Formatter.
func (d Day) ToChinese(v chinese.Variant) chinese.Chinese {
	return measure.NewRegistered[formalDayUnit, informalDayUnit](chinese.Uint(d.value), d.formal).ToChinese(v)
}

// daysIn returns the last day of month, assuming a leap year when leap is
// set. Months are 1-12.
func daysIn(month uint8, leap bool) uint8 {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if leap {
			return 29
		}
		return 28
	default:
		return 31
	}
}
