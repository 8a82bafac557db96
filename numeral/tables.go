// SPDX-License-Identifier: MIT

package numeral

var (
	largeUnitsSimplified  = [largeUnitCount]string{"万", "亿", "兆", "京", "垓", "秭", "穰", "沟", "涧", "正", "载", "极"}
	largeUnitsTraditional = [largeUnitCount]string{"萬", "億", "兆", "京", "垓", "秭", "穰", "溝", "澗", "正", "載", "極"}
)

var (
	lowerSimplified = table{
		digits:     [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
		smallUnits: [4]string{"", "十", "百", "千"},
		largeUnits: largeUnitsSimplified,
		minus:      "负",
	}

	lowerTraditional = table{
		digits:     [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
		smallUnits: [4]string{"", "十", "百", "千"},
		largeUnits: largeUnitsTraditional,
		minus:      "負",
	}

	upperSimplified = table{
		digits:     [10]string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"},
		smallUnits: [4]string{"", "拾", "佰", "仟"},
		largeUnits: largeUnitsSimplified,
		minus:      "负",
	}

	upperTraditional = table{
		digits:     [10]string{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"},
		smallUnits: [4]string{"", "拾", "佰", "仟"},
		largeUnits: largeUnitsTraditional,
		minus:      "負",
	}
)

// tableFor resolves the character set; unknown values fall back to
// Simplified and Lower respectively.
func tableFor(s Script, c Case) *table {
	switch {
	case s == Traditional && c == Upper:
		return &upperTraditional
	case s == Traditional:
		return &lowerTraditional
	case c == Upper:
		return &upperSimplified
	default:
		return &lowerSimplified
	}
}
