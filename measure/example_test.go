// SPDX-License-Identifier: MIT

package measure_test

import (
	"fmt"

	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/measure"
)

func ExampleKilometers() {
	two := measure.Kilometers(2)
	fmt.Println(chinese.Format(two))
	fmt.Println(chinese.Format(two, chinese.WithVariant(chinese.Traditional)))
	// Output:
	// 两公里
	// 兩公里
}

// ExampleRender shows that a zero quantity stays omissible.
func ExampleRender() {
	c := measure.Render(measure.HalfKilograms(0), chinese.Simplified)
	fmt.Println(c.Logograms, c.Omissible)
	// Output: 零斤 true
}
