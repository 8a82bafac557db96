// SPDX-License-Identifier: MIT

package measure

import "github.com/katalvlaran/hanzi/chinese"

// Measure is a value paired with a unit.
type Measure interface {
	Value() chinese.Formatter
	Unit() chinese.Formatter
}

// Render writes the value followed by the unit. The result is omissible
// exactly when the value is; the unit never affects it.
func Render(m Measure, v chinese.Variant) chinese.Chinese {
	value := m.Value().ToChinese(v)
	unit := m.Unit().ToChinese(v)

	return chinese.Chinese{
		Logograms: value.Logograms + unit.Logograms,
		Omissible: value.Omissible,
	}
}

// Single is a measure with one unit, U.
type Single[V, U chinese.Formatter] struct {
	value V
}

// New wraps value in a measure of unit U, e.g. New[Meter](chinese.Int(-3)).
func New[U, V chinese.Formatter](value V) Single[V, U] {
	return Single[V, U]{value: value}
}

// CountOf builds the common count-based form, in which 2 reads 两.
func CountOf[U chinese.Formatter](n uint64) Single[chinese.Count, U] {
	return Single[chinese.Count, U]{value: chinese.Count(n)}
}

// Amount returns the wrapped value.
func (s Single[V, U]) Amount() V { return s.value }

// Value implements Measure.
func (s Single[V, U]) Value() chinese.Formatter { return s.value }

// Unit implements Measure.
func (s Single[V, U]) Unit() chinese.Formatter {
	var unit U

	return unit
}

// ToChinese implements chinese.Formatter.
func (s Single[V, U]) ToChinese(v chinese.Variant) chinese.Chinese {
	return Render(s, v)
}

// Registered is a measure whose unit depends on register: F when Formal
// is set, I otherwise.
type Registered[V, F, I chinese.Formatter] struct {
	value V
	// Formal selects unit F.
	Formal bool
}

// NewRegistered wraps value, e.g. NewRegistered[FormalDay, InformalDay](n, true).
func NewRegistered[F, I, V chinese.Formatter](value V, formal bool) Registered[V, F, I] {
	return Registered[V, F, I]{value: value, Formal: formal}
}

// Amount returns the wrapped value.
func (r Registered[V, F, I]) Amount() V { return r.value }

// Value implements Measure.
func (r Registered[V, F, I]) Value() chinese.Formatter { return r.value }

// Unit implements Measure.
func (r Registered[V, F, I]) Unit() chinese.Formatter {
	if r.Formal {
		var formal F
		return formal
	}
	var informal I

	return informal
}

// ToChinese implements chinese.Formatter.
func (r Registered[V, F, I]) ToChinese(v chinese.Variant) chinese.Chinese {
	return Render(r, v)
}

// Cloner is a formatter that hands out independent copies of itself.
type Cloner[T any] interface {
	chinese.Formatter
	Clone() T
}

// Owned is a measure over a value that must not be shared; the value is
// cloned on the way in and on the way out.
type Owned[V Cloner[V], U chinese.Formatter] struct {
	value V
}

// NewOwned stores a clone of value.
func NewOwned[U chinese.Formatter, V Cloner[V]](value V) Owned[V, U] {
	return Owned[V, U]{value: value.Clone()}
}

// Amount returns a clone of the wrapped value.
func (o Owned[V, U]) Amount() V { return o.value.Clone() }

// Value implements Measure.
func (o Owned[V, U]) Value() chinese.Formatter { return o.value.Clone() }

// Unit implements Measure.
func (o Owned[V, U]) Unit() chinese.Formatter {
	var unit U

	return unit
}

// ToChinese implements chinese.Formatter.
func (o Owned[V, U]) ToChinese(v chinese.Variant) chinese.Chinese {
	return Render(o, v)
}
