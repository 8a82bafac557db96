// SPDX-License-Identifier: MIT

package chinese

import "golang.org/x/text/language"

// formatConfig is the resolved configuration of Format.
type formatConfig struct {
	variant Variant
}

// FormatOption configures Format.
type FormatOption func(*formatConfig)

// WithVariant selects the script explicitly.
func WithVariant(v Variant) FormatOption {
	return func(c *formatConfig) {
		c.variant = v
	}
}

// WithTag selects the script from a BCP 47 language tag; see VariantForTag.
func WithTag(tag language.Tag) FormatOption {
	return func(c *formatConfig) {
		c.variant = VariantForTag(tag)
	}
}

// defaultFormatConfig renders Simplified unless told otherwise.
func defaultFormatConfig() formatConfig {
	return formatConfig{variant: Simplified}
}

// Format renders f and returns its logograms. Options are applied in order;
// the last script-selecting option wins.
func Format(f Formatter, opts ...FormatOption) string {
	cfg := defaultFormatConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return f.ToChinese(cfg.variant).Logograms
}
