// SPDX-License-Identifier: MIT

package chinese

// ByVariant holds one formatter per script and renders the one matching
// the requested variant. The chosen rendering is returned unchanged,
// omissibility included.
type ByVariant struct {
	Simplified  Formatter
	Traditional Formatter
}

// Dual builds a ByVariant from two literals, e.g. Dual("点", "點").
func Dual(simplified, traditional string) ByVariant {
	return ByVariant{Simplified: Text(simplified), Traditional: Text(traditional)}
}

// ToChinese implements Formatter.
func (p ByVariant) ToChinese(v Variant) Chinese {
	if v == Traditional {
		return p.Traditional.ToChinese(v)
	}

	return p.Simplified.ToChinese(v)
}
