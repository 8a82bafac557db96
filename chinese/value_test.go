// SPDX-License-Identifier: MIT

package chinese_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/mocks"
)

func TestChinese_StringAndIs(t *testing.T) {
	c := chinese.Chinese{Logograms: "九十二", Omissible: true}
	assert.Equal(t, "九十二", c.String())
	assert.True(t, c.Is("九十二"))
	assert.False(t, c.Is("九十"))
}

func TestChinese_Equality(t *testing.T) {
	assert.Equal(t, chinese.Chinese{Logograms: "零", Omissible: true}, chinese.Chinese{Logograms: "零", Omissible: true})
	assert.NotEqual(t, chinese.Chinese{Logograms: "零", Omissible: true}, chinese.Chinese{Logograms: "零"})
}

func TestChinese_Compare(t *testing.T) {
	a := chinese.Chinese{Logograms: "一"}
	aOmissible := chinese.Chinese{Logograms: "一", Omissible: true}
	b := chinese.Chinese{Logograms: "二"}

	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(aOmissible))
	assert.Equal(t, 1, aOmissible.Compare(a))
	assert.Equal(t, a.Compare(b), -b.Compare(a))
	assert.NotZero(t, a.Compare(b))
}

func TestChinese_IsItsOwnFormatter(t *testing.T) {
	c := chinese.Chinese{Logograms: "好"}
	assert.Equal(t, c, c.ToChinese(chinese.Traditional))
}

func TestVariant_Pick(t *testing.T) {
	assert.Equal(t, "点", chinese.Simplified.Pick("点", "點"))
	assert.Equal(t, "點", chinese.Traditional.Pick("点", "點"))
	assert.Equal(t, "simplified", chinese.Simplified.String())
	assert.Equal(t, "traditional", chinese.Traditional.String())
}

func TestText(t *testing.T) {
	assert.Equal(t, chinese.Chinese{Logograms: "好"}, chinese.Text("好").ToChinese(chinese.Traditional))
	assert.Equal(t, chinese.Chinese{Omissible: true}, chinese.Text("").ToChinese(chinese.Simplified))
}

func TestByVariant_DispatchesOnVariantOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	simplified := mocks.NewMockFormatter(ctrl)
	traditional := mocks.NewMockFormatter(ctrl)
	simplified.EXPECT().ToChinese(chinese.Simplified).Return(chinese.Chinese{Logograms: "", Omissible: true})
	traditional.EXPECT().ToChinese(chinese.Traditional).Return(chinese.Chinese{Logograms: "點"})

	pair := chinese.ByVariant{Simplified: simplified, Traditional: traditional}
	assert.Equal(t, chinese.Chinese{Omissible: true}, pair.ToChinese(chinese.Simplified))
	assert.Equal(t, chinese.Chinese{Logograms: "點"}, pair.ToChinese(chinese.Traditional))
}

func TestDual(t *testing.T) {
	p := chinese.Dual("负", "負")
	assert.Equal(t, "负", chinese.Format(p))
	assert.Equal(t, "負", chinese.Format(p, chinese.WithVariant(chinese.Traditional)))
}

func TestOption(t *testing.T) {
	some := chinese.Some(chinese.Count(2))
	assert.True(t, some.IsSome())
	assert.Equal(t, chinese.Chinese{Logograms: "两"}, some.ToChinese(chinese.Simplified))
	got, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, chinese.Count(2), got)

	none := chinese.None[chinese.Count]()
	assert.False(t, none.IsSome())
	assert.Equal(t, chinese.Chinese{Omissible: true}, none.ToChinese(chinese.Traditional))
}

func TestFormatterFunc(t *testing.T) {
	f := chinese.FormatterFunc(func(v chinese.Variant) chinese.Chinese {
		return chinese.Chinese{Logograms: v.String()}
	})
	assert.Equal(t, "traditional", chinese.Format(f, chinese.WithVariant(chinese.Traditional)))
}
