// SPDX-License-Identifier: MIT

package chinese

// zero is the digit 零; it is written the same way in both scripts.
const zero = "零"

// Placeholder substitutes a fixed replacement for an omissible rendering.
//
// If the wrapped formatter renders omissible text, the result carries the
// replacement and stays omissible; otherwise the wrapped rendering is
// returned unchanged.
type Placeholder struct {
	replacement string
	wrapped     Formatter
}

// LingPlaceholder replaces omissible renderings of f by 零 (e.g. the
// dimes in 三块零五分).
func LingPlaceholder(f Formatter) Placeholder {
	return Placeholder{replacement: zero, wrapped: f}
}

// EmptyPlaceholder replaces omissible renderings of f by "".
func EmptyPlaceholder(f Formatter) Placeholder {
	return Placeholder{replacement: "", wrapped: f}
}

// ToChinese implements Formatter.
func (p Placeholder) ToChinese(v Variant) Chinese {
	c := p.wrapped.ToChinese(v)
	if !c.Omissible {
		return c
	}

	return Chinese{Logograms: p.replacement, Omissible: true}
}
