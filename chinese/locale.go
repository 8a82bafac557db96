// SPDX-License-Identifier: MIT

package chinese

import (
	"strings"

	"golang.org/x/text/language"
)

var hant = language.MustParseScript("Hant")

// VariantForTag maps a language tag to a script. Tags written in, or most
// likely written in, Han Traditional (zh-Hant, zh-TW, zh-HK, zh-MO, yue)
// select Traditional; every other tag selects Simplified.
func VariantForTag(tag language.Tag) Variant {
	if script, _ := tag.Script(); script == hant {
		return Traditional
	}

	return Simplified
}

// ParseVariant accepts a script name ("simplified", "traditional", "hans",
// "hant", case-insensitive) or a BCP 47 tag such as "zh-TW".
//
// Errors:
//   - *ValueError wrapping ErrUnknownVariant if s is neither.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simplified", "hans":
		return Simplified, nil
	case "traditional", "hant":
		return Traditional, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Simplified, &ValueError{Err: ErrUnknownVariant, Value: s}
	}

	return VariantForTag(tag), nil
}
