// SPDX-License-Identifier: MIT

package gregorian

import "github.com/katalvlaran/hanzi/chinese"

// LinearTime reads a time in sequence: hour, minute, then second.
// With DayPart set the hour is given on the 12-hour clock after the part of
// the day (下午三点). Zero minutes and seconds are left out.
type LinearTime struct {
	DayPart bool
	Hour    Hour24
	Minute  Minute
	Second  chinese.Option[Second]
}

// ToChinese implements chinese.Formatter.
func (t LinearTime) ToChinese(v chinese.Variant) chinese.Chinese {
	dayPart := chinese.None[DayPart]()
	var hour chinese.Formatter = t.Hour
	if t.DayPart {
		dayPart = chinese.Some(t.Hour.DayPart())
		hour = t.Hour.Hour12()
	}

	return chinese.NewVec(v,
		chinese.EmptyPlaceholder(dayPart),
		hour,
		chinese.EmptyPlaceholder(t.Minute),
		chinese.EmptyPlaceholder(t.Second),
	).Collect()
}

// DeltaTime reads a time relative to the nearest hour on the 12-hour clock:
//
//	:00     六点钟
//	:01-:29 六点过五分
//	:15     六点刻
//	:30     六点半
//	:45     六点三刻
//	others  七点差十分
type DeltaTime struct {
	Hour   Hour12
	Minute Minute
}

// ToChinese implements chinese.Formatter.
func (t DeltaTime) ToChinese(v chinese.Variant) chinese.Chinese {
	const quarter = chinese.Text("刻")

	var parts []chinese.Formatter
	switch m := t.Minute.Value(); {
	case m == 0:
		parts = []chinese.Formatter{t.Hour, chinese.Dual("钟", "鐘")}
	case m == 15:
		parts = []chinese.Formatter{t.Hour, quarter}
	case m == 30:
		parts = []chinese.Formatter{t.Hour, chinese.Text("半")}
	case m == 45:
		parts = []chinese.Formatter{t.Hour, chinese.Uint(3), quarter}
	case m < 30:
		parts = []chinese.Formatter{t.Hour, chinese.Dual("过", "過"), t.Minute}
	default:
		// m is in 31-59 here, so the complement is in range.
		rest, _ := t.Minute.Complement()
		parts = []chinese.Formatter{t.Hour.Next(), chinese.Text("差"), rest}
	}

	return chinese.NewVec(v, parts...).Collect()
}
