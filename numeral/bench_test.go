// SPDX-License-Identifier: MIT

package numeral_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hanzi/numeral"
)

// BenchmarkFormatUint_Max measures the worst 64-bit case (five groups).
func BenchmarkFormatUint_Max(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = numeral.FormatUint(math.MaxUint64, numeral.Simplified, numeral.Lower)
	}
}

// BenchmarkFormatInt_Small measures a typical calendar-sized value.
func BenchmarkFormatInt_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = numeral.FormatInt(2014, numeral.Traditional, numeral.Upper)
	}
}
