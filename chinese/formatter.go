// SPDX-License-Identifier: MIT

package chinese

//go:generate mockgen -source=formatter.go -destination=../mocks/formatter.go -package=mocks Formatter

import (
	"math/big"

	"github.com/katalvlaran/hanzi/numeral"
)

// Formatter is implemented by every value that can be rendered as Chinese.
// Implementations must be pure: the same value and variant always yield the
// same Chinese.
type Formatter interface {
	ToChinese(v Variant) Chinese
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(Variant) Chinese

// ToChinese calls f(v).
func (f FormatterFunc) ToChinese(v Variant) Chinese {
	return f(v)
}

// Text is literal text, identical in both scripts and omissible iff empty.
type Text string

// ToChinese implements Formatter.
func (t Text) ToChinese(Variant) Chinese {
	return Chinese{Logograms: string(t), Omissible: t == ""}
}

// Int renders a signed integer with lower-case numerals.
type Int int64

// ToChinese implements Formatter. Zero renders 零 and is omissible.
func (n Int) ToChinese(v Variant) Chinese {
	return Chinese{
		Logograms: numeral.FormatInt(int64(n), v.Script(), numeral.Lower),
		Omissible: n == 0,
	}
}

// Uint renders an unsigned integer with lower-case numerals.
type Uint uint64

// ToChinese implements Formatter. Zero renders 零 and is omissible.
func (n Uint) ToChinese(v Variant) Chinese {
	return Chinese{
		Logograms: numeral.FormatUint(uint64(n), v.Script(), numeral.Lower),
		Omissible: n == 0,
	}
}

// BigInt renders an arbitrary-precision integer of at most
// numeral.MaxDigits decimal digits. The zero value renders as 零.
type BigInt struct {
	n *big.Int
}

// NewBigInt validates n and copies it.
//
// Errors:
//   - *ValueError wrapping numeral.ErrTooLarge when n has too many digits.
func NewBigInt(n *big.Int) (BigInt, error) {
	if n == nil {
		return BigInt{}, nil
	}
	if _, err := numeral.Format(n, numeral.Simplified, numeral.Lower); err != nil {
		return BigInt{}, &ValueError{Err: numeral.ErrTooLarge, Value: n.String()}
	}

	return BigInt{n: new(big.Int).Set(n)}, nil
}

// Int returns a copy of the wrapped value.
func (b BigInt) Int() *big.Int {
	if b.n == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(b.n)
}

// ToChinese implements Formatter. Zero renders 零 and is omissible.
func (b BigInt) ToChinese(v Variant) Chinese {
	text, err := numeral.Format(b.n, v.Script(), numeral.Lower)
	if err != nil {
		// Unreachable through NewBigInt.
		return Chinese{Omissible: true}
	}

	return Chinese{Logograms: text, Omissible: b.n == nil || b.n.Sign() == 0}
}
