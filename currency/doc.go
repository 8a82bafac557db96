// SPDX-License-Identifier: MIT

// Package currency renders amounts of Chinese currency (人民币).
//
// An amount is made of yuan, dimes (0-9) and cents (0-9) and is rendered in
// one of three styles:
//
//	– EverydayFormal:   元, 角, 分 with counting numerals (两元五角).
//	– EverydayInformal: 块, 毛, 分, the spoken form (两块五毛); a missing
//	                    dime between yuan and cents reads 零 (三块零五分).
//	– Financial:        anti-fraud numerals with 元, 角, 分, closed by 整
//	                    (壹仟叁佰零贰元肆角整).
//
// Zero parts are omitted; an all-zero amount renders its yuan (零元, 零块,
// 零元整).
//
// Errors (sentinel):
//
//	– ErrDimesOutOfRange if dimes >= 10.
//	– ErrCentsOutOfRange if cents >= 10.
//	– ErrInvalidStyle    if the style is not one of the three above.
//
// Build failures are *chinese.ValueError values carrying the rejected
// number; the first failure wins, dimes being checked before cents.
//
// Example usage:
//
//	amount, err := currency.NewRenminbiBuilder().
//	    WithYuan(7).WithDimes(4).WithCents(8).
//	    WithStyle(currency.EverydayInformal).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(chinese.Format(amount)) // 七块四毛八分
package currency
