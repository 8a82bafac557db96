// SPDX-License-Identifier: MIT

package numeral_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzi/numeral"
)

// mustBig parses a decimal literal or fails the test.
func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %q", s)

	return n
}

// TestFormatInt_LowerSimplified checks the golden numeral table.
func TestFormatInt_LowerSimplified(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "零"},
		{1, "一"},
		{10, "十"},
		{17, "十七"},
		{86, "八十六"},
		{100, "一百"},
		{305, "三百零五"},
		{330, "三百三十"},
		{800, "八百"},
		{3_000, "三千"},
		{3_005, "三千零五"},
		{3_017, "三千零一十七"},
		{7_341, "七千三百四十一"},
		{10_000, "一万"},
		{10_008, "一万零八"},
		{100_000, "十万"},
		{100_010, "十万零一十"},
		{1_000_010_000, "十亿零一万"},
		{321_987_653_112, "三千二百一十九亿八千七百六十五万三千一百一十二"},
		{-58, "负五十八"},
		{math.MaxInt64, "九百二十二京三千三百七十二兆零三百六十八亿五千四百七十七万五千八百零七"},
		{math.MinInt64, "负九百二十二京三千三百七十二兆零三百六十八亿五千四百七十七万五千八百零八"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeral.FormatInt(tc.n, numeral.Simplified, numeral.Lower), "n=%d", tc.n)
	}
}

// TestFormatInt_Traditional verifies the traditional table (負, 萬, 億).
func TestFormatInt_Traditional(t *testing.T) {
	assert.Equal(t, "三百零五", numeral.FormatInt(305, numeral.Traditional, numeral.Lower))
	assert.Equal(t, "負五十八", numeral.FormatInt(-58, numeral.Traditional, numeral.Lower))
	assert.Equal(t,
		"一千八百四十四京六千七百四十四兆零七百三十七億零九百五十五萬一千六百一十五",
		numeral.FormatUint(math.MaxUint64, numeral.Traditional, numeral.Lower))
}

// TestFormatUint_Upper covers the anti-fraud digits in both scripts.
func TestFormatUint_Upper(t *testing.T) {
	assert.Equal(t, "贰", numeral.FormatUint(2, numeral.Simplified, numeral.Upper))
	assert.Equal(t, "貳", numeral.FormatUint(2, numeral.Traditional, numeral.Upper))
	assert.Equal(t, "拾", numeral.FormatUint(10, numeral.Simplified, numeral.Upper))
	assert.Equal(t, "壹仟", numeral.FormatUint(1000, numeral.Traditional, numeral.Upper))
	assert.Equal(t, "零", numeral.FormatUint(0, numeral.Traditional, numeral.Upper))
	assert.Equal(t,
		"壹仟捌佰肆拾肆京陆仟柒佰肆拾肆兆零柒佰叁拾柒亿零玖佰伍拾伍万壹仟陆佰壹拾伍",
		numeral.FormatUint(math.MaxUint64, numeral.Simplified, numeral.Upper))
	assert.Equal(t,
		"壹仟捌佰肆拾肆京陸仟柒佰肆拾肆兆零柒佰參拾柒億零玖佰伍拾伍萬壹仟陸佰壹拾伍",
		numeral.FormatUint(math.MaxUint64, numeral.Traditional, numeral.Upper))
}

// TestFormat_128Bit checks values beyond 64 bits against the 128-bit limits.
func TestFormat_128Bit(t *testing.T) {
	minI128 := mustBig(t, "-170141183460469231731687303715884105728")
	got, err := numeral.Format(minI128, numeral.Simplified, numeral.Lower)
	require.NoError(t, err)
	assert.Equal(t,
		"负一百七十涧一千四百一十一沟八千三百四十六穰零四百六十九秭二千三百一十七垓三千一百六十八京七千三百零三兆七千一百五十八亿八千四百一十万五千七百二十八",
		got)

	maxU128 := mustBig(t, "340282366920938463463374607431768211455")
	got, err = numeral.Format(maxU128, numeral.Simplified, numeral.Lower)
	require.NoError(t, err)
	assert.Equal(t,
		"三百四十涧二千八百二十三沟六千六百九十二穰零九百三十八秭四千六百三十四垓六千三百三十七京四千六百零七兆四千三百一十七亿六千八百二十一万一千四百五十五",
		got)
}

// TestFormat_Limits verifies the MaxDigits boundary and nil handling.
func TestFormat_Limits(t *testing.T) {
	got, err := numeral.Format(nil, numeral.Simplified, numeral.Lower)
	require.NoError(t, err)
	assert.Equal(t, "零", got)

	largest := mustBig(t, "1"+strings.Repeat("0", numeral.MaxDigits-1))
	got, err = numeral.Format(largest, numeral.Simplified, numeral.Lower)
	require.NoError(t, err)
	assert.Equal(t, "一千极", got)

	tooLarge := mustBig(t, "1"+strings.Repeat("0", numeral.MaxDigits))
	_, err = numeral.Format(tooLarge, numeral.Simplified, numeral.Lower)
	assert.ErrorIs(t, err, numeral.ErrTooLarge)

	_, err = numeral.Format(new(big.Int).Neg(tooLarge), numeral.Simplified, numeral.Lower)
	assert.ErrorIs(t, err, numeral.ErrTooLarge)
}

// TestFormat_DoesNotMutateInput guards against in-place arithmetic on n.
func TestFormat_DoesNotMutateInput(t *testing.T) {
	n := big.NewInt(-12345)
	_, err := numeral.Format(n, numeral.Simplified, numeral.Lower)
	require.NoError(t, err)
	assert.Equal(t, int64(-12345), n.Int64())
}
