// SPDX-License-Identifier: MIT

package chinese

import (
	"strconv"
	"strings"
)

var digitLogograms = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// DigitSequence is a sequence of decimal digits read one by one, as in
// years (二零一四) or the fractional part of a decimal. Leading zeros are
// significant. The zero value is empty.
type DigitSequence struct {
	digits []uint8
}

// ParseDigits builds a sequence from a string of ASCII digits.
//
// Errors:
//   - *ValueError wrapping ErrInvalidDigit for any other character.
func ParseDigits(s string) (DigitSequence, error) {
	digits := make([]uint8, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return DigitSequence{}, &ValueError{Err: ErrInvalidDigit, Value: string(r)}
		}
		digits = append(digits, uint8(r-'0'))
	}

	return DigitSequence{digits: digits}, nil
}

// DigitsOf returns the decimal digits of n, without leading zeros.
func DigitsOf(n uint64) DigitSequence {
	seq, _ := ParseDigits(strconv.FormatUint(n, 10))

	return seq
}

// Clone returns an independent copy.
func (d DigitSequence) Clone() DigitSequence {
	return DigitSequence{digits: append([]uint8(nil), d.digits...)}
}

// Digits returns a copy of the digits, most significant first.
func (d DigitSequence) Digits() []uint8 {
	return append([]uint8(nil), d.digits...)
}

// Len returns the number of digits.
func (d DigitSequence) Len() int {
	return len(d.digits)
}

// String returns the ASCII digits.
func (d DigitSequence) String() string {
	var b strings.Builder
	for _, digit := range d.digits {
		b.WriteByte('0' + digit)
	}

	return b.String()
}

// Compare orders sequences lexicographically, digit by digit, a proper
// prefix first. Used to order fractional parts.
func (d DigitSequence) Compare(other DigitSequence) int {
	for i := 0; i < len(d.digits) && i < len(other.digits); i++ {
		switch {
		case d.digits[i] < other.digits[i]:
			return -1
		case d.digits[i] > other.digits[i]:
			return 1
		}
	}
	switch {
	case len(d.digits) < len(other.digits):
		return -1
	case len(d.digits) > len(other.digits):
		return 1
	default:
		return 0
	}
}

// ToChinese implements Formatter. The digits are the same in both scripts;
// the empty sequence is omissible.
func (d DigitSequence) ToChinese(Variant) Chinese {
	var b strings.Builder
	for _, digit := range d.digits {
		b.WriteString(digitLogograms[digit])
	}

	return Chinese{Logograms: b.String(), Omissible: len(d.digits) == 0}
}
