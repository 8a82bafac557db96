// SPDX-License-Identifier: MIT

package chinese

// Fraction is a signed ratio read denominator first: 七分之五 is 5/7.
type Fraction struct {
	denominator uint64
	numerator   int64
}

// NewFraction builds numerator/denominator.
//
// Errors:
//   - *ValueError wrapping ErrZeroDenominator if denominator is zero.
func NewFraction(denominator uint64, numerator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, &ValueError{Err: ErrZeroDenominator, Value: denominator}
	}

	return Fraction{denominator: denominator, numerator: numerator}, nil
}

// Denominator returns the denominator.
func (f Fraction) Denominator() uint64 { return f.denominator }

// Numerator returns the numerator.
func (f Fraction) Numerator() int64 { return f.numerator }

// ToChinese implements Formatter. A zero numerator renders an omissible 零;
// otherwise the sign comes first: 负七分之五.
func (f Fraction) ToChinese(v Variant) Chinese {
	if f.numerator == 0 {
		return Chinese{Logograms: zero, Omissible: true}
	}

	magnitude := uint64(f.numerator)
	if f.numerator < 0 {
		magnitude = -magnitude
	}

	return NewVec(v,
		SignOf(f.numerator),
		Uint(f.denominator),
		Text("分之"),
		Uint(magnitude),
	).Collect()
}
