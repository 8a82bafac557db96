// SPDX-License-Identifier: MIT

package currency

import "github.com/katalvlaran/hanzi/chinese"

// financialTerminator closes every financial amount.
const financialTerminator = "整"

// Renminbi is a validated amount of Chinese currency. Build it with
// NewRenminbiBuilder.
type Renminbi struct {
	yuan  uint64
	dimes uint8
	cents uint8
	style Style
}

// Yuan returns the whole-yuan part.
func (r Renminbi) Yuan() uint64 { return r.yuan }

// Dimes returns the dimes, 0-9.
func (r Renminbi) Dimes() uint8 { return r.dimes }

// Cents returns the cents, 0-9.
func (r Renminbi) Cents() uint8 { return r.cents }

// Style returns the rendering style.
func (r Renminbi) Style() Style { return r.style }

// TotalCents returns the amount expressed in cents. It wraps on overflow
// for yuan above math.MaxUint64/100.
func (r Renminbi) TotalCents() uint64 {
	return r.yuan*100 + uint64(r.dimes)*10 + uint64(r.cents)
}

// ToChinese implements chinese.Formatter.
//
// Zero parts are dropped from the front. In the informal style a zero dime
// between yuan and cents reads 零, and a trailing 零 is dropped. When
// nothing remains the yuan is rendered alone, so zero reads 零元.
func (r Renminbi) ToChinese(v chinese.Variant) chinese.Chinese {
	yuan := part[yuanUnit, yuanInformalUnit](r.yuan, r.style)
	dimes := part[dimeUnit, dimeInformalUnit](uint64(r.dimes), r.style)
	cents := part[centUnit, centUnit](uint64(r.cents), r.style)

	dimesSlot := chinese.EmptyPlaceholder(dimes)
	if r.style == EverydayInformal {
		dimesSlot = chinese.LingPlaceholder(dimes)
	}

	parts := chinese.NewVec(v,
		chinese.EmptyPlaceholder(yuan),
		dimesSlot,
		chinese.EmptyPlaceholder(cents),
	).TrimStart()
	if r.style == EverydayInformal {
		parts = parts.TrimEnd()
	}

	result := parts.Collect()
	if result.Omissible {
		result = yuan.ToChinese(v)
	}
	if r.style == Financial {
		return chinese.Chinese{Logograms: result.Logograms + financialTerminator}
	}

	return result
}
