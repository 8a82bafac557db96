// SPDX-License-Identifier: MIT

package chinese

import "github.com/katalvlaran/hanzi/numeral"

// Variant selects the script used to render text.
type Variant int

const (
	// Simplified is the script used in mainland China and Singapore.
	Simplified Variant = iota
	// Traditional is the script used in Taiwan, Hong Kong and Macau.
	Traditional
)

// String returns "simplified" or "traditional".
func (v Variant) String() string {
	if v == Traditional {
		return "traditional"
	}

	return "simplified"
}

// Script maps the variant onto the numeral character tables.
func (v Variant) Script() numeral.Script {
	if v == Traditional {
		return numeral.Traditional
	}

	return numeral.Simplified
}

// Pick returns simplified or traditional according to v.
func (v Variant) Pick(simplified, traditional string) string {
	if v == Traditional {
		return traditional
	}

	return simplified
}
