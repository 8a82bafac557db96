// SPDX-License-Identifier: MIT

// Package hanzi renders numbers, money, dates and times as Chinese text,
// in Simplified or Traditional script, with the register a native reader
// expects: counting numerals (两个), anti-fraud financial numerals (贰佰),
// spoken currency (三块零五分), calendar dates (二零一四年十月二十二号星期三)
// and clock times (晚上七点二十四分, 六点三刻).
//
// What is in the box?
//
//	A pure, dependency-light library built around one small contract:
//		• chinese.Formatter renders a value for a Variant into a Chinese,
//		  a piece of text that knows whether it may be omitted
//		• chinese.Vec composes renderings and trims omissible ends
//		• measure pairs a value with a unit (两公里, 零斤)
//
// Packages:
//
//	numeral/    integer to numeral text, ten-thousand grouping up to 极
//	chinese/    Chinese, Variant, Formatter, Vec, placeholders, counts,
//	            financial numerals, signs, digit sequences, decimals,
//	            fractions, Format with functional options
//	measure/    Measure, Render and the generic measure shapes; length
//	            and weight units
//	currency/   Renminbi amounts in everyday formal, informal and
//	            financial styles
//	gregorian/  dates (DateBuilder) and times (TimeBuilder, LinearTime,
//	            DeltaTime)
//	mocks/      gomock MockFormatter for tests of custom formatters
//
// Quick example:
//
//	amount, _ := currency.NewRenminbiBuilder().
//	    WithYuan(7).WithDimes(4).WithCents(8).
//	    WithStyle(currency.EverydayInformal).
//	    Build()
//	fmt.Println(chinese.Format(amount)) // 七块四毛八分
//
// Rendering is pure and safe for concurrent use. Builders report rejected
// input through a logr.Logger installed with chinese.SetLogger; by default
// nothing is logged.
//
//	go get github.com/katalvlaran/hanzi
package hanzi
