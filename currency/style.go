// SPDX-License-Identifier: MIT

package currency

// Style selects how an amount is written.
type Style int

const (
	// EverydayFormal uses 元, 角 and 分. It is the default.
	EverydayFormal Style = iota
	// EverydayInformal uses the spoken 块, 毛 and 分.
	EverydayInformal
	// Financial uses anti-fraud numerals and ends with 整.
	Financial
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case EverydayFormal:
		return "everyday-formal"
	case EverydayInformal:
		return "everyday-informal"
	case Financial:
		return "financial"
	default:
		return "unknown"
	}
}

func (s Style) valid() bool {
	return s >= EverydayFormal && s <= Financial
}
