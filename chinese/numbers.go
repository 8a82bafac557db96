// SPDX-License-Identifier: MIT

package chinese

import "github.com/katalvlaran/hanzi/numeral"

// Count is a quantity in front of a measure word or unit. It renders like
// Uint except that 2 becomes 两/兩 (两个, 两点), the form used for counting.
type Count uint64

// ToChinese implements Formatter. Zero renders 零 and is omissible.
func (n Count) ToChinese(v Variant) Chinese {
	if n == 2 {
		return Chinese{Logograms: v.Pick("两", "兩")}
	}

	return Uint(n).ToChinese(v)
}

// Financial renders with the anti-fraud digits written on cheques and
// invoices (壹贰叁 / 壹貳參, 拾佰仟).
type Financial uint64

// ToChinese implements Formatter. Zero renders 零 and is omissible.
func (n Financial) ToChinese(v Variant) Chinese {
	return Chinese{
		Logograms: numeral.FormatUint(uint64(n), v.Script(), numeral.Upper),
		Omissible: n == 0,
	}
}

// Sign is the sign class of a number: negative, zero or positive.
// Two signs are == exactly when their classes match, so a Sign can be used
// as a map key.
type Sign struct {
	class int8
}

// SignOf returns the sign class of n.
func SignOf(n int64) Sign {
	switch {
	case n < 0:
		return Sign{class: -1}
	case n > 0:
		return Sign{class: 1}
	default:
		return Sign{}
	}
}

// IsNegative reports whether the class is negative.
func (s Sign) IsNegative() bool { return s.class < 0 }

// IsZero reports whether the class is zero.
func (s Sign) IsZero() bool { return s.class == 0 }

// IsPositive reports whether the class is positive.
func (s Sign) IsPositive() bool { return s.class > 0 }

// Compare orders negative < zero < positive and returns -1, 0 or +1.
func (s Sign) Compare(other Sign) int {
	switch {
	case s.class < other.class:
		return -1
	case s.class > other.class:
		return 1
	default:
		return 0
	}
}

// ToChinese implements Formatter: 负/負 for negative values, omissible
// empty text otherwise.
func (s Sign) ToChinese(v Variant) Chinese {
	if !s.IsNegative() {
		return Chinese{Omissible: true}
	}

	return Chinese{Logograms: v.Pick("负", "負")}
}
