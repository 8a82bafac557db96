// SPDX-License-Identifier: MIT

package currency

import (
	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/internal/log"
)

// RenminbiBuilder collects the parts of an amount. Setters never fail;
// validation happens in Build. The zero style is EverydayFormal.
type RenminbiBuilder struct {
	yuan  uint64
	dimes uint8
	cents uint8
	style Style
}

// NewRenminbiBuilder returns a builder for 零元 in the everyday formal style.
func NewRenminbiBuilder() *RenminbiBuilder {
	return &RenminbiBuilder{style: EverydayFormal}
}

// WithYuan sets the whole-yuan part.
func (b *RenminbiBuilder) WithYuan(yuan uint64) *RenminbiBuilder {
	b.yuan = yuan
	return b
}

// WithDimes sets the dimes; Build rejects values above 9.
func (b *RenminbiBuilder) WithDimes(dimes uint8) *RenminbiBuilder {
	b.dimes = dimes
	return b
}

// WithCents sets the cents; Build rejects values above 9.
func (b *RenminbiBuilder) WithCents(cents uint8) *RenminbiBuilder {
	b.cents = cents
	return b
}

// WithStyle sets the rendering style.
func (b *RenminbiBuilder) WithStyle(style Style) *RenminbiBuilder {
	b.style = style
	return b
}

// WithTotalCents replaces yuan, dimes and cents with the split of a total
// expressed in cents: 12345 is 123元4角5分.
func (b *RenminbiBuilder) WithTotalCents(total uint64) *RenminbiBuilder {
	b.yuan = total / 100
	b.dimes = uint8(total / 10 % 10)
	b.cents = uint8(total % 10)
	return b
}

// Build validates the collected parts.
//
// Errors (as *chinese.ValueError):
//   - ErrDimesOutOfRange if dimes >= 10.
//   - ErrCentsOutOfRange if cents >= 10.
//   - ErrInvalidStyle    if the style is unknown.
func (b *RenminbiBuilder) Build() (Renminbi, error) {
	var err error
	switch {
	case b.dimes >= 10:
		err = &chinese.ValueError{Err: ErrDimesOutOfRange, Value: b.dimes}
	case b.cents >= 10:
		err = &chinese.ValueError{Err: ErrCentsOutOfRange, Value: b.cents}
	case !b.style.valid():
		err = &chinese.ValueError{Err: ErrInvalidStyle, Value: int(b.style)}
	}
	if err != nil {
		log.Rejected("renminbi", err)
		return Renminbi{}, err
	}

	return Renminbi{yuan: b.yuan, dimes: b.dimes, cents: b.cents, style: b.style}, nil
}
