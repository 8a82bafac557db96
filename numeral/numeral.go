// SPDX-License-Identifier: MIT

package numeral

import (
	"fmt"
	"math/big"
	"strings"
)

const groupBase = 10000

// Format expands n into a numeral.
//
// Errors:
//   - ErrTooLarge if |n| has more than MaxDigits decimal digits.
//
// A nil n is treated as zero.
func Format(n *big.Int, s Script, c Case) (string, error) {
	if n == nil || n.Sign() == 0 {
		return tableFor(s, c).digits[0], nil
	}

	magnitude := new(big.Int).Abs(n)
	if digits := len(magnitude.String()); digits > MaxDigits {
		return "", fmt.Errorf("%w: %d digits, at most %d", ErrTooLarge, digits, MaxDigits)
	}

	// Split into base-10000 groups, least significant first.
	var groups []int
	base := big.NewInt(groupBase)
	rem := new(big.Int)
	for magnitude.Sign() > 0 {
		magnitude.QuoRem(magnitude, base, rem)
		groups = append(groups, int(rem.Int64()))
	}

	return expand(groups, n.Sign() < 0, tableFor(s, c)), nil
}

// FormatInt expands a signed 64-bit integer. It never fails.
func FormatInt(n int64, s Script, c Case) string {
	text, _ := Format(big.NewInt(n), s, c)

	return text
}

// FormatUint expands an unsigned 64-bit integer. It never fails.
func FormatUint(n uint64, s Script, c Case) string {
	text, _ := Format(new(big.Int).SetUint64(n), s, c)

	return text
}

// expand joins the groups (least significant first, at least one non-zero)
// with their large units.
func expand(groups []int, negative bool, t *table) string {
	var b strings.Builder
	if negative {
		b.WriteString(t.minus)
	}

	top := len(groups) - 1
	gap := false
	for i := top; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			gap = true
			continue
		}
		// A lower group that misses its thousands digit, or follows an
		// all-zero group, is introduced by a single 零.
		if i != top && (gap || g < 1000) {
			b.WriteString(t.digits[0])
		}
		gap = false

		writeGroup(&b, g, i == top, t)
		if i > 0 {
			b.WriteString(t.largeUnits[i-1])
		}
	}

	return b.String()
}

// writeGroup writes a single group in 0..9999.
func writeGroup(b *strings.Builder, g int, leading bool, t *table) {
	started, pendingZero := false, false
	for pos, scale := 3, 1000; pos >= 0; pos, scale = pos-1, scale/10 {
		d := (g / scale) % 10
		if d == 0 {
			if started {
				pendingZero = true
			}
			continue
		}
		if pendingZero {
			b.WriteString(t.digits[0])
			pendingZero = false
		}
		// 十七, not 一十七, at the very start of the numeral.
		if !(pos == 1 && d == 1 && leading && !started) {
			b.WriteString(t.digits[d])
		}
		b.WriteString(t.smallUnits[pos])
		started = true
	}
}
