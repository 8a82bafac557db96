// SPDX-License-Identifier: MIT

package chinese_test

import (
	"fmt"

	"github.com/katalvlaran/hanzi/chinese"
)

// ExampleVec_TrimEnd composes a phrase from several formatters and drops
// the omissible tail.
func ExampleVec_TrimEnd() {
	v := chinese.NewVec(chinese.Simplified,
		chinese.Int(8),
		chinese.Text(""),
		chinese.Text("好"),
		chinese.Int(0),
		chinese.Count(0),
	)
	fmt.Printf("%q\n", v.Collect().Logograms)
	trimmed := v.TrimEnd().Collect()
	fmt.Println(trimmed.Logograms, trimmed.Omissible)
	// Output:
	// "八好零零"
	// 八好 false
}

// ExampleLingPlaceholder shows how a zero in the middle of an amount is
// kept as 零 while an ordinary value passes through.
func ExampleLingPlaceholder() {
	fmt.Println(chinese.Format(chinese.LingPlaceholder(chinese.Count(0))))
	fmt.Println(chinese.Format(chinese.LingPlaceholder(chinese.Count(2))))
	// Output:
	// 零
	// 两
}

// ExampleNewFraction renders negative five sevenths in both scripts.
func ExampleNewFraction() {
	f, err := chinese.NewFraction(7, -5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(chinese.Format(f))
	fmt.Println(chinese.Format(f, chinese.WithVariant(chinese.Traditional)))

	_, err = chinese.NewFraction(0, 1)
	fmt.Println(err)
	// Output:
	// 负七分之五
	// 負七分之五
	// chinese: zero passed as denominator: 0
}

// ExampleDecimal reads the fractional digits one by one.
func ExampleDecimal() {
	digits, _ := chinese.ParseDigits("753")
	d := chinese.Decimal{Integer: 96, Fractional: digits}
	fmt.Println(chinese.Format(d, chinese.WithVariant(chinese.Traditional)))
	// Output: 九十六點七五三
}
