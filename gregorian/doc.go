// SPDX-License-Identifier: MIT

// Package gregorian renders calendar dates and clock times.
//
// Dates are assembled by DateBuilder from any valid combination of year,
// month, day and week day. The year is read digit by digit (二零一四年),
// the day takes 号/號 in the formal register and 日 otherwise, and the week
// day follows one of three formats (星期三, 周三, 礼拜三). Omitted trailing
// parts are simply absent; omitted leading parts are allowed by the date
// patterns y, m, d, w, ym, ymd, md, mdw, dw and ymdw.
//
// Times come in two readings:
//
//	– LinearTime: hour, minute and optional second, read in sequence
//	              (十九点二十四分), optionally on a 12-hour clock preceded
//	              by the part of the day (晚上七点二十四分).
//	– DeltaTime:  the spoken relative form on a 12-hour clock: 六点钟,
//	              六点过五分, 六点刻, 六点半, 六点三刻, 七点差十分.
//
// Build validation order for dates is: pattern, year, month range, day
// range, consistency (30-day months, February), week day range. February 29
// is accepted when no year is given.
//
// Errors (sentinel):
//
//	– ErrInvalidDatePattern if the set parts form no valid pattern.
//	– ErrYearOutOfRange     if a time.Time year does not fit 0-65535.
//	– ErrMonthOutOfRange    if the month is outside 1-12.
//	– ErrDayOutOfRange      if the day is outside 1-31.
//	– ErrInvalidDate        if the day does not exist in the month.
//	– ErrWeekDayOutOfRange  if the week day is outside Sunday-Saturday.
//	– ErrHourOutOfRange     if the hour is outside 0-23 (1-12 for Hour12).
//	– ErrMinuteOutOfRange   if the minute is outside 0-59.
//	– ErrSecondOutOfRange   if the second is outside 0-59.
//
// Range failures are *chinese.ValueError values; pattern and consistency
// failures are *PatternError and *InvalidDateError. All unwrap to the
// sentinels above.
//
// Example usage:
//
//	date, err := gregorian.NewDateBuilder().
//	    WithYear(2014).WithMonth(10).WithDay(22).
//	    WithWeekDay(gregorian.Wednesday).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(chinese.Format(date)) // 二零一四年十月二十二号星期三
package gregorian
