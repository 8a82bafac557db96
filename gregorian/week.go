// SPDX-License-Identifier: MIT

package gregorian

import (
	"strconv"
	"time"

	"github.com/katalvlaran/hanzi/chinese"
)

// WeekDay is a day of the week, numbered like time.Weekday.
type WeekDay int

// Week days, Sunday first.
const (
	Sunday WeekDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekDayOf converts a time.Weekday.
func WeekDayOf(d time.Weekday) WeekDay {
	return WeekDay(d)
}

func (d WeekDay) valid() bool {
	return d >= Sunday && d <= Saturday
}

// String returns the English name, as time.Weekday does.
func (d WeekDay) String() string {
	if !d.valid() {
		return "%!WeekDay(" + strconv.Itoa(int(d)) + ")"
	}

	return time.Weekday(d).String()
}

// WeekFormat selects the word that introduces the week day.
type WeekFormat int

const (
	// XingQi is 星期, the default.
	XingQi WeekFormat = iota
	// Zhou is 周.
	Zhou
	// LiBai is the colloquial 礼拜 / 禮拜.
	LiBai
)

// ToChinese implements chinese.Formatter.
func (f WeekFormat) ToChinese(v chinese.Variant) chinese.Chinese {
	switch f {
	case Zhou:
		return chinese.Chinese{Logograms: "周"}
	case LiBai:
		return chinese.Chinese{Logograms: v.Pick("礼拜", "禮拜")}
	default:
		return chinese.Chinese{Logograms: "星期"}
	}
}

// StyledWeekDay is a week day written in a given format: 星期三, 周日,
// 礼拜天.
type StyledWeekDay struct {
	Format WeekFormat
	Day    WeekDay
}

// ToChinese implements chinese.Formatter. Sunday is 天 after 星期 and 礼拜
// but 日 after 周; the other days are numbered from Monday (一).
func (s StyledWeekDay) ToChinese(v chinese.Variant) chinese.Chinese {
	var ordinal chinese.Formatter = chinese.Uint(s.Day)
	if s.Day == Sunday {
		ordinal = chinese.Text("天")
		if s.Format == Zhou {
			ordinal = chinese.Text("日")
		}
	}

	return chinese.NewVec(v, s.Format, ordinal).Collect()
}
