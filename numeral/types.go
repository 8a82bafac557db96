// SPDX-License-Identifier: MIT

package numeral

// Script selects the character table.
type Script int

const (
	// Simplified selects simplified characters (万, 亿, 负).
	Simplified Script = iota
	// Traditional selects traditional characters (萬, 億, 負).
	Traditional
)

// Case selects between everyday and anti-fraud digits.
type Case int

const (
	// Lower is the everyday set: 一, 二, 三, ... 十, 百, 千.
	Lower Case = iota
	// Upper is the anti-fraud set used on cheques and invoices:
	// 壹, 贰, 叁, ... 拾, 佰, 仟.
	Upper
)

// MaxDigits is the longest magnitude (in decimal digits) Format accepts:
// the largest unit, 极, stands for 10^48 and may carry a four-digit group.
const MaxDigits = 4 * (largeUnitCount + 1)

// largeUnitCount is the number of large units, from 万 up to 极.
const largeUnitCount = 12

// table is one complete character set for a (Script, Case) pair.
type table struct {
	digits     [10]string
	smallUnits [4]string              // "", 十, 百, 千
	largeUnits [largeUnitCount]string // 万, 亿, ...
	minus      string
}
