// SPDX-License-Identifier: MIT

package gregorian_test

import (
	"fmt"

	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/gregorian"
)

func ExampleDateBuilder_Build() {
	date, err := gregorian.NewDateBuilder().
		WithYear(2014).
		WithMonth(10).
		WithDay(22).
		WithWeekDay(gregorian.Wednesday).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(chinese.Format(date))
	fmt.Println(chinese.Format(date, chinese.WithVariant(chinese.Traditional)))

	_, err = gregorian.NewDateBuilder().WithYear(1986).WithMonth(2).WithDay(31).Build()
	fmt.Println(err)
	// Output:
	// 二零一四年十月二十二号星期三
	// 二零一四年十月二十二號星期三
	// gregorian: invalid date: 1986-2-31
}

func ExampleTimeBuilder_BuildDelta() {
	b := gregorian.NewTimeBuilder().WithHour(18)
	for _, minute := range []uint8{0, 15, 30, 45, 50} {
		t, err := b.WithMinute(minute).BuildDelta()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(chinese.Format(t))
	}
	// Output:
	// 六点钟
	// 六点刻
	// 六点半
	// 六点三刻
	// 七点差十分
}

func ExampleTimeBuilder_BuildLinear() {
	t, err := gregorian.NewTimeBuilder().WithHour(19).WithMinute(24).WithDayPart(true).BuildLinear()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(chinese.Format(t))
	// Output: 傍晚七点二十四分
}
