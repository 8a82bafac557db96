// SPDX-License-Identifier: MIT

package chinese

import (
	"strings"
	"unicode/utf8"
)

// LeftPadder renders Source and prepends Logogram until the text is at
// least MinWidth characters long. Omissibility follows Source.
type LeftPadder struct {
	Logogram rune
	MinWidth int
	Source   Formatter
}

// ToChinese implements Formatter.
func (p LeftPadder) ToChinese(v Variant) Chinese {
	c := p.Source.ToChinese(v)
	if missing := p.MinWidth - utf8.RuneCountInString(c.Logograms); missing > 0 {
		c.Logograms = strings.Repeat(string(p.Logogram), missing) + c.Logograms
	}

	return c
}
