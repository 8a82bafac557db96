// SPDX-License-Identifier: MIT

package measure

import "github.com/katalvlaran/hanzi/chinese"

// Length units.
type (
	// Kilometer is 公里.
	Kilometer struct{}
	// HalfKilometer is the traditional 里 (500 m).
	HalfKilometer struct{}
	// Meter is 米.
	Meter struct{}
	// Decimeter is 分米.
	Decimeter struct{}
	// Centimeter is 厘米 / 釐米.
	Centimeter struct{}
	// Millimeter is 毫米.
	Millimeter struct{}
)

func (Kilometer) ToChinese(chinese.Variant) chinese.Chinese { return unit("公里") }
func (HalfKilometer) ToChinese(chinese.Variant) chinese.Chinese { return unit("里") }
func (Meter) ToChinese(chinese.Variant) chinese.Chinese { return unit("米") }
func (Decimeter) ToChinese(chinese.Variant) chinese.Chinese { return unit("分米") }
func (Millimeter) ToChinese(chinese.Variant) chinese.Chinese { return unit("毫米") }

func (Centimeter) ToChinese(v chinese.Variant) chinese.Chinese {
	return unit(v.Pick("厘米", "釐米"))
}

// Weight units.
type (
	// HalfKilogram is the everyday 斤 (500 g).
	HalfKilogram struct{}
	// Kilogram is 公斤.
	Kilogram struct{}
)

func (HalfKilogram) ToChinese(chinese.Variant) chinese.Chinese { return unit("斤") }
func (Kilogram) ToChinese(chinese.Variant) chinese.Chinese { return unit("公斤") }

func unit(logograms string) chinese.Chinese {
	return chinese.Chinese{Logograms: logograms}
}

// Kilometers counts kilometers: 两公里.
func Kilometers(n uint64) Single[chinese.Count, Kilometer] { return CountOf[Kilometer](n) }

// HalfKilometers counts 里.
func HalfKilometers(n uint64) Single[chinese.Count, HalfKilometer] {
	return CountOf[HalfKilometer](n)
}

// Meters counts meters.
func Meters(n uint64) Single[chinese.Count, Meter] { return CountOf[Meter](n) }

// Decimeters counts decimeters.
func Decimeters(n uint64) Single[chinese.Count, Decimeter] { return CountOf[Decimeter](n) }

// Centimeters counts centimeters.
func Centimeters(n uint64) Single[chinese.Count, Centimeter] { return CountOf[Centimeter](n) }

// Millimeters counts millimeters.
func Millimeters(n uint64) Single[chinese.Count, Millimeter] { return CountOf[Millimeter](n) }

// HalfKilograms counts 斤.
func HalfKilograms(n uint64) Single[chinese.Count, HalfKilogram] {
	return CountOf[HalfKilogram](n)
}

// Kilograms counts kilograms.
func Kilograms(n uint64) Single[chinese.Count, Kilogram] { return CountOf[Kilogram](n) }
