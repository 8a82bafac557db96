// SPDX-License-Identifier: MIT

package gregorian

import (
	"strings"

	"github.com/katalvlaran/hanzi/chinese"
)

// validPatterns lists the readable combinations of year (y), month (m),
// day (d) and week day (w).
var validPatterns = map[string]struct{}{
	"y": {}, "m": {}, "d": {}, "w": {},
	"ym": {}, "ymd": {}, "md": {}, "mdw": {}, "dw": {}, "ymdw": {},
}

// patternOf spells the parts that are present, in y, m, d, w order.
func patternOf(year, month, day, weekDay bool) string {
	var b strings.Builder
	for _, p := range []struct {
		set    bool
		letter byte
	}{{year, 'y'}, {month, 'm'}, {day, 'd'}, {weekDay, 'w'}} {
		if p.set {
			b.WriteByte(p.letter)
		}
	}

	return b.String()
}

// ValidPattern reports whether pattern (such as "ymd") names a readable
// combination of date parts.
func ValidPattern(pattern string) bool {
	_, ok := validPatterns[pattern]

	return ok
}

// Date is a validated calendar date, possibly partial. Build it with
// NewDateBuilder.
type Date struct {
	year    chinese.Option[Year]
	month   chinese.Option[Month]
	day     chinese.Option[Day]
	weekDay chinese.Option[StyledWeekDay]
}

// Year returns the year, if set.
func (d Date) Year() (Year, bool) { return d.year.Get() }

// Month returns the month, if set.
func (d Date) Month() (Month, bool) { return d.month.Get() }

// Day returns the day, if set.
func (d Date) Day() (Day, bool) { return d.day.Get() }

// WeekDay returns the styled week day, if set.
func (d Date) WeekDay() (StyledWeekDay, bool) { return d.weekDay.Get() }

// Pattern returns the parts present in the date, e.g. "ymd".
func (d Date) Pattern() string {
	return patternOf(d.year.IsSome(), d.month.IsSome(), d.day.IsSome(), d.weekDay.IsSome())
}

// ToChinese implements chinese.Formatter. Parts are written from the year
// down to the week day; absent parts are skipped.
func (d Date) ToChinese(v chinese.Variant) chinese.Chinese {
	return chinese.NewVec(v,
		chinese.EmptyPlaceholder(d.year),
		chinese.EmptyPlaceholder(d.month),
		chinese.EmptyPlaceholder(d.day),
		chinese.EmptyPlaceholder(d.weekDay),
	).TrimEnd().Collect()
}
