// SPDX-License-Identifier: MIT

// Package measure renders quantities made of a value and a unit, such as
// 两公里, 三斤 or 二零一四年.
//
// A Measure exposes its value and its unit as formatters; Render places the
// value before the unit and keeps the value's omissibility, so a zero
// quantity can still be dropped by the phrase that contains it (零米 is
// omissible, 七米 is not).
//
// Four generic shapes cover the usual cases. The unit is a zero-sized type
// parameter implementing chinese.Formatter, so each measure is a distinct
// type while carrying nothing but its value:
//
//	– Single[V, U]:        one unit, any value (New[U](v)).
//	– CountOf[U](n):       a Single over chinese.Count, so 2 reads 两.
//	– Registered[V, F, I]: the unit depends on register; F when Formal,
//	                       I otherwise (号 versus 日).
//	– Owned[V, U]:         a value that must not be shared, such as a
//	                       chinese.DigitSequence; accessors return clones.
//
// Length and weight units are provided:
//
//	measure.Kilometers(2)   // 两公里
//	measure.Centimeters(2)  // 两厘米 / 兩釐米
//	measure.HalfKilograms(0) // 零斤, omissible
package measure
