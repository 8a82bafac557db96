// SPDX-License-Identifier: MIT

package gregorian

import "github.com/katalvlaran/hanzi/chinese"

// DayPart is a part of the day, used before an hour on the 12-hour clock.
type DayPart int

const (
	// EarlyMorning is 早上, 5-7.
	EarlyMorning DayPart = iota
	// Morning is 上午, 8-10.
	Morning
	// Midday is 中午, 11-13.
	Midday
	// Afternoon is 下午, 14-16.
	Afternoon
	// EarlyEvening is 傍晚, 17-19.
	EarlyEvening
	// Evening is 晚上, 20-22.
	Evening
	// Midnight is 午夜, 23-1.
	Midnight
	// LateNight is 深夜, 2-4.
	LateNight
)

var dayPartByHour = [24]DayPart{
	Midnight, Midnight, LateNight, LateNight, LateNight,
	EarlyMorning, EarlyMorning, EarlyMorning,
	Morning, Morning, Morning,
	Midday, Midday, Midday,
	Afternoon, Afternoon, Afternoon,
	EarlyEvening, EarlyEvening, EarlyEvening,
	Evening, Evening, Evening,
	Midnight,
}

var dayPartLogograms = [...]string{
	EarlyMorning: "早上",
	Morning:      "上午",
	Midday:       "中午",
	Afternoon:    "下午",
	EarlyEvening: "傍晚",
	Evening:      "晚上",
	Midnight:     "午夜",
	LateNight:    "深夜",
}

// ToChinese implements chinese.Formatter. The names are the same in both
// scripts and never omissible.
func (p DayPart) ToChinese(chinese.Variant) chinese.Chinese {
	if p < EarlyMorning || p > LateNight {
		return chinese.Chinese{Omissible: true}
	}

	return chinese.Chinese{Logograms: dayPartLogograms[p]}
}
