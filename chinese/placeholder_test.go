// SPDX-License-Identifier: MIT

package chinese_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/hanzi/chinese"
	"github.com/katalvlaran/hanzi/mocks"
)

func TestPlaceholder_Law(t *testing.T) {
	wrappers := map[string]struct {
		wrap        func(chinese.Formatter) chinese.Placeholder
		replacement string
	}{
		"ling":  {chinese.LingPlaceholder, "零"},
		"empty": {chinese.EmptyPlaceholder, ""},
	}
	renderings := []chinese.Chinese{
		{Logograms: "", Omissible: true},
		{Logograms: "零", Omissible: true},
		{Logograms: "七", Omissible: false},
		{Logograms: "", Omissible: false},
	}

	for name, w := range wrappers {
		for _, r := range renderings {
			ctrl := gomock.NewController(t)
			inner := mocks.NewMockFormatter(ctrl)
			inner.EXPECT().ToChinese(chinese.Traditional).Return(r)

			got := w.wrap(inner).ToChinese(chinese.Traditional)
			if r.Omissible {
				assert.Equal(t, chinese.Chinese{Logograms: w.replacement, Omissible: true}, got, "%s %+v", name, r)
			} else {
				assert.Equal(t, r, got, "%s %+v", name, r)
			}
		}
	}
}

func TestPlaceholder_ZeroCount(t *testing.T) {
	assert.Equal(t, chinese.Chinese{Logograms: "零", Omissible: true},
		chinese.LingPlaceholder(chinese.Count(0)).ToChinese(chinese.Simplified))
	assert.Equal(t, chinese.Chinese{Omissible: true},
		chinese.EmptyPlaceholder(chinese.Count(0)).ToChinese(chinese.Simplified))
	assert.Equal(t, chinese.Chinese{Logograms: "四"},
		chinese.EmptyPlaceholder(chinese.Count(4)).ToChinese(chinese.Simplified))
}
