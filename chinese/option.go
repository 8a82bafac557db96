// SPDX-License-Identifier: MIT

package chinese

// Option is an optional formatter. Some delegates to the wrapped value;
// None renders as empty omissible text.
type Option[T Formatter] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T Formatter](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an absent value.
func None[T Formatter]() Option[T] {
	return Option[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// ToChinese implements Formatter.
func (o Option[T]) ToChinese(v Variant) Chinese {
	if !o.ok {
		return Chinese{Omissible: true}
	}

	return o.value.ToChinese(v)
}
