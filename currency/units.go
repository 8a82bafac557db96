// SPDX-License-Identifier: MIT

package currency

import (
	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/measure"
)

type (
	yuanUnit         struct{}
	yuanInformalUnit struct{}
	dimeUnit         struct{}
	dimeInformalUnit struct{}
	centUnit         struct{}
)

func (yuanUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "元"} }
func (yuanInformalUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "块"} }
func (dimeUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "角"} }
func (dimeInformalUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "毛"} }
func (centUnit) ToChinese(chinese.Variant) chinese.Chinese { return chinese.Chinese{Logograms: "分"} }

// part renders one component of an amount: financial numerals with the
// formal unit F, or counting numerals with F or I depending on register.
func part[F, I chinese.Formatter](value uint64, style Style) chinese.Formatter {
	if style == Financial {
		return measure.New[F](chinese.Financial(value))
	}

	return measure.NewRegistered[F, I](chinese.Count(value), style == EverydayFormal)
}
