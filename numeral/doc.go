// SPDX-License-Identifier: MIT

// Package numeral expands integers into Chinese numerals.
//
// It is the low-level collaborator behind every numeric rendering in hanzi:
// given an integer, a script (Simplified or Traditional) and a case (the
// everyday lower-case digits or the anti-fraud upper-case set) it returns
// the numeral text.
//
// Grouping follows the ten-thousand method (万进): every four decimal
// digits form a group, and groups are joined by the large units
// 万, 亿, 兆, 京, 垓, 秭, 穰, 沟, 涧, 正, 载, 极.
//
// Zero rules:
//   - zeros inside a group, or a gap between groups, render a single 零;
//   - trailing zeros are silent;
//   - a leading 1 in the tens position of the most significant group is
//     dropped, so 17 is 十七 and 10 in upper case is 拾.
//
// Usage:
//
//	numeral.FormatInt(-58, numeral.Simplified, numeral.Lower)   // 负五十八
//	numeral.FormatUint(1000, numeral.Traditional, numeral.Upper) // 壹仟
//
// For values beyond 64 bits use Format with a *big.Int; it accepts up to
// MaxDigits decimal digits.
package numeral
