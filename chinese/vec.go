// SPDX-License-Identifier: MIT

package chinese

import "strings"

// Vec is an ordered sequence of rendered values.
//
// A Vec is immutable: the trimming methods return new sequences and never
// alter the receiver. The zero Vec is empty and ready to use.
type Vec struct {
	items []Chinese
}

// VecOf builds a Vec from values that are already rendered. The slice is
// copied.
func VecOf(items ...Chinese) Vec {
	return Vec{items: append([]Chinese(nil), items...)}
}

// NewVec renders each formatter with v, in order, and collects the results.
func NewVec(v Variant, items ...Formatter) Vec {
	out := make([]Chinese, len(items))
	for i, f := range items {
		out[i] = f.ToChinese(v)
	}

	return Vec{items: out}
}

// Items returns a copy of the rendered elements.
func (v Vec) Items() []Chinese {
	return append([]Chinese(nil), v.items...)
}

// Len returns the number of elements.
func (v Vec) Len() int {
	return len(v.items)
}

// TrimStart drops the longest prefix of omissible elements.
func (v Vec) TrimStart() Vec {
	i := 0
	for i < len(v.items) && v.items[i].Omissible {
		i++
	}

	return Vec{items: v.items[i:len(v.items):len(v.items)]}
}

// TrimEnd drops the longest suffix of omissible elements.
func (v Vec) TrimEnd() Vec {
	j := len(v.items)
	for j > 0 && v.items[j-1].Omissible {
		j--
	}

	return Vec{items: v.items[:j:j]}
}

// Collect concatenates the logograms. The result is omissible iff every
// element is omissible, which includes the empty Vec.
func (v Vec) Collect() Chinese {
	var b strings.Builder
	omissible := true
	for _, c := range v.items {
		b.WriteString(c.Logograms)
		omissible = omissible && c.Omissible
	}

	return Chinese{Logograms: b.String(), Omissible: omissible}
}

// ToChinese implements Formatter by collecting; the variant is ignored
// because the elements are already rendered.
func (v Vec) ToChinese(Variant) Chinese {
	return v.Collect()
}
