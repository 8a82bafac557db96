// SPDX-License-Identifier: MIT

package chinese_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/hanzi/chinese"
)

func TestFormat_DefaultsToSimplified(t *testing.T) {
	assert.Equal(t, "两", chinese.Format(chinese.Count(2)))
}

func TestFormat_Options(t *testing.T) {
	assert.Equal(t, "兩", chinese.Format(chinese.Count(2), chinese.WithVariant(chinese.Traditional)))
	assert.Equal(t, "兩", chinese.Format(chinese.Count(2), chinese.WithTag(language.MustParse("zh-TW"))))
	// Last option wins.
	assert.Equal(t, "两", chinese.Format(chinese.Count(2),
		chinese.WithVariant(chinese.Traditional),
		chinese.WithTag(language.SimplifiedChinese)))
}

func TestVariantForTag(t *testing.T) {
	tests := map[string]chinese.Variant{
		"zh":      chinese.Simplified,
		"zh-CN":   chinese.Simplified,
		"zh-Hans": chinese.Simplified,
		"zh-SG":   chinese.Simplified,
		"zh-Hant": chinese.Traditional,
		"zh-TW":   chinese.Traditional,
		"zh-HK":   chinese.Traditional,
		"en-US":   chinese.Simplified,
	}
	for tag, want := range tests {
		assert.Equal(t, want, chinese.VariantForTag(language.MustParse(tag)), tag)
	}
	assert.Equal(t, chinese.Traditional, chinese.VariantForTag(language.TraditionalChinese))
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]chinese.Variant{
		"simplified":  chinese.Simplified,
		"Traditional": chinese.Traditional,
		"HANT":        chinese.Traditional,
		" hans ":      chinese.Simplified,
		"zh-TW":       chinese.Traditional,
		"zh_CN":       chinese.Simplified,
	} {
		got, err := chinese.ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := chinese.ParseVariant("!!")
	assert.ErrorIs(t, err, chinese.ErrUnknownVariant)
}
