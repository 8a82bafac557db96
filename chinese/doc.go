// SPDX-License-Identifier: MIT

// Package chinese provides the text-rendering model shared by every hanzi
// package: a rendered Chinese value, the Formatter contract, and the
// building blocks used to compose larger phrases out of smaller ones.
//
// The model:
//
//	– Chinese:   rendered logograms plus an Omissible flag. Omissible marks
//	             text that a surrounding phrase may drop (a zero count, an
//	             empty string, an absent optional part).
//	– Variant:   Simplified or Traditional script, passed by value.
//	– Formatter: anything that renders itself, ToChinese(Variant) Chinese.
//	             Rendering is pure and never fails.
//	– Vec:       an ordered sequence of rendered values that can be trimmed
//	             of omissible ends and collected into one Chinese.
//
// Primitive formatters:
//
//	– Text:          literal text, omissible iff empty.
//	– Int, Uint:     lower-case numerals (负五十八), omissible iff zero.
//	– BigInt:        the same beyond 64 bits, validated by NewBigInt.
//	– Count:         like Uint, but 2 renders 两/兩 (两个, 两点).
//	– Financial:     anti-fraud numerals (壹贰叁 / 壹貳參), omissible iff zero.
//	– Sign:          负/負 for negative values, omissible empty text otherwise.
//	– DigitSequence: digits read one by one (二零一四).
//
// Combinators:
//
//	– ByVariant / Dual:                   choose a formatter by script.
//	– Option[T]:                          Some delegates, None is omissible empty text.
//	– LingPlaceholder / EmptyPlaceholder: replace an omissible rendering by 零 or "".
//	– LeftPadder:                         left-pad the rendering to a minimum width.
//	– Decimal, Fraction:                  numbers with a fractional part.
//
// Errors (sentinel):
//
//	– ErrZeroDenominator if NewFraction receives a zero denominator.
//	– ErrInvalidDigit    if ParseDigits meets a non-digit character.
//	– ErrUnknownVariant  if ParseVariant cannot map its input to a script.
//
// Range failures are reported as *ValueError, which unwraps to the sentinel
// and carries the offending value.
//
// Example usage:
//
//	v := chinese.NewVec(chinese.Simplified,
//	    chinese.Int(8), chinese.Text(""), chinese.Text("好"), chinese.Count(0))
//	fmt.Println(v.TrimEnd().Collect()) // 八好
//
//	fmt.Println(chinese.Format(chinese.Count(2), chinese.WithVariant(chinese.Traditional))) // 兩
package chinese
