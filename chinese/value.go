// SPDX-License-Identifier: MIT

package chinese

import "strings"

// Chinese is a rendered piece of text.
//
// Omissible is independent of emptiness: 零 can be omissible, and a
// non-empty rendering is never implicitly dropped unless it says so.
// Values are compared structurally with ==.
type Chinese struct {
	Logograms string
	Omissible bool
}

// String returns the logograms verbatim.
func (c Chinese) String() string {
	return c.Logograms
}

// Is reports whether the logograms equal s. Omissible is ignored.
func (c Chinese) Is(s string) bool {
	return c.Logograms == s
}

// Compare orders by logograms first, then non-omissible before omissible.
// It returns -1, 0 or +1.
func (c Chinese) Compare(other Chinese) int {
	if r := strings.Compare(c.Logograms, other.Logograms); r != 0 {
		return r
	}
	switch {
	case c.Omissible == other.Omissible:
		return 0
	case !c.Omissible:
		return -1
	default:
		return 1
	}
}

// ToChinese returns c unchanged, so already rendered text can take part in
// any composition that expects a Formatter.
func (c Chinese) ToChinese(Variant) Chinese {
	return c
}
