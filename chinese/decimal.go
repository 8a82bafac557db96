// SPDX-License-Identifier: MIT

package chinese

import "cmp"

// Decimal is an exact real number: a signed integer part and an unbounded
// sequence of fractional digits.
type Decimal struct {
	Integer    int64
	Fractional DigitSequence
}

// ToChinese implements Formatter. Without fractional digits the integer is
// rendered alone (零 is then omissible); otherwise 整数点小数, e.g.
// 三十五点二八零三九.
func (d Decimal) ToChinese(v Variant) Chinese {
	if d.Fractional.Len() == 0 {
		return Int(d.Integer).ToChinese(v)
	}

	return NewVec(v, Int(d.Integer), Dual("点", "點"), d.Fractional).Collect()
}

// Compare orders by integer part, then by fractional digits.
func (d Decimal) Compare(other Decimal) int {
	if r := cmp.Compare(d.Integer, other.Integer); r != 0 {
		return r
	}

	return d.Fractional.Compare(other.Fractional)
}
