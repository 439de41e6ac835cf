package segmenter

import "testing"

func TestPropertySentence(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', prLower},
		{'Z', prUpper},
		{'5', prNumeric},
		{'.', prATerm},
		{'!', prSTerm},
		{'?', prSTerm},
		{',', prSContinue},
		{'"', prClose},
		{')', prClose},
		{' ', prSp},
		{'\t', prSp},
		{'\r', prCR},
		{'\n', prLF},
		{0x0085, prSep},   // NEL
		{0x2028, prSep},   // LINE SEPARATOR
		{0x00C9, prUpper}, // É
		{0x00E9, prLower}, // é
		{0x3002, prSTerm}, // 。
		{0xFF0E, prATerm}, // ．
		{0x4E00, prOLetter},
		{0x05D0, prOLetter}, // א
		{0x0301, prExtend},  // combining acute
		{0x200D, prExtend},  // ZWJ
		{0x00AD, prFormat},  // soft hyphen
		{0x201C, prClose},   // “
		{'@', prAny},
		{0x1F600, prAny}, // emoji carries no sentence class
	}
	for _, tt := range tests {
		if got := propertySentence(tt.r); got != tt.want {
			t.Errorf("propertySentence(%#U) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPropertyLineBreak(t *testing.T) {
	tests := []struct {
		r        rune
		wantProp int
		wantCat  int
	}{
		{'a', prAL, gcLl},
		{'A', prAL, gcLu},
		{'7', prNU, gcNd},
		{'-', prHY, gcPd},
		{'.', prIS, gcPo},
		{',', prIS, gcPo},
		{'(', prOP, gcPs},
		{')', prCP, gcPe},
		{'!', prEX, gcPo},
		{'"', prQU, gcPo},
		{'$', prPR, gcSc},
		{'%', prPO, gcPo},
		{'/', prSY, gcPo},
		{' ', prSP, gcZs},
		{'\t', prBA, gcCc},
		{'\r', prCR, gcCc},
		{'\n', prLF, gcCc},
		{0x0085, prNL, gcCc},
		{0x00A0, prGL, gcZs},  // no-break space
		{0x00AD, prBA, gcCf},  // soft hyphen
		{0x00AB, prQU, gcPi},  // «
		{0x00BB, prQU, gcPf},  // »
		{0x2014, prB2, gcPd},  // em dash
		{0x2028, prBK, gcZl},  // LINE SEPARATOR
		{0x200B, prZW, gcCf},  // zero width space
		{0x200D, prZWJ, gcCf}, // zero width joiner
		{0x2060, prWJ, gcCf},  // word joiner
		{0x0301, prCM, gcMn},
		{0x05D0, prHL, gcLo},
		{0x4E00, prID, gcLo},
		{0x30A1, prCJ, gcLo}, // small katakana A
		{0x30A2, prID, gcLo}, // katakana A
		{0x3002, prCL, gcPo}, // 。
		{0x1F1E6, prRI, gcSo},
		{0x1F3FB, prEM, gcSk},
	}
	for _, tt := range tests {
		gotProp, gotCat := propertyLineBreak(tt.r)
		if gotProp != tt.wantProp || gotCat != tt.wantCat {
			t.Errorf("propertyLineBreak(%#U) = (%d, %d), want (%d, %d)",
				tt.r, gotProp, gotCat, tt.wantProp, tt.wantCat)
		}
	}
}

func TestPropertyLineBreakHangul(t *testing.T) {
	// Precomposed syllables resolve arithmetically: LV syllables are
	// every 28th code point from U+AC00, the rest are LVT.
	lv := []rune{0xAC00, 0xAC1C, 0xD7A0 - (0xD7A0-0xAC00)%28}
	for _, r := range lv {
		if got, _ := propertyLineBreak(r); got != prH2 {
			t.Errorf("propertyLineBreak(%#U) = %d, want prH2", r, got)
		}
	}
	lvt := []rune{0xAC01, 0xAC1B, 0xD7A3}
	for _, r := range lvt {
		if got, _ := propertyLineBreak(r); got != prH3 {
			t.Errorf("propertyLineBreak(%#U) = %d, want prH3", r, got)
		}
	}
	// Conjoining jamo come from the table.
	if got, _ := propertyLineBreak(0x1100); got != prJL {
		t.Errorf("propertyLineBreak(U+1100) = %d, want prJL", got)
	}
	if got, _ := propertyLineBreak(0x1160); got != prJV {
		t.Errorf("propertyLineBreak(U+1160) = %d, want prJV", got)
	}
	if got, _ := propertyLineBreak(0x11A8); got != prJT {
		t.Errorf("propertyLineBreak(U+11A8) = %d, want prJT", got)
	}
}

func TestPropertyEastAsianWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', prEAN},
		{0x00E9, prEAN},
		{0x4E00, prEAW},
		{0x3042, prEAW}, // あ
		{0xFF08, prEAF}, // （
		{0xFF61, prEAH}, // ｡
		{0x05D0, prEAN},
	}
	for _, tt := range tests {
		if got := propertyEastAsianWidth(tt.r); got != tt.want {
			t.Errorf("propertyEastAsianWidth(%#U) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPropertySearchEdges(t *testing.T) {
	table := [][3]int{
		{0x10, 0x1F, 1},
		{0x30, 0x30, 2},
		{0x40, 0x4F, 3},
	}
	tests := []struct {
		r    rune
		want int
	}{
		{0x0F, 0},
		{0x10, 1},
		{0x1F, 1},
		{0x20, 0},
		{0x30, 2},
		{0x3F, 0},
		{0x40, 3},
		{0x4F, 3},
		{0x50, 0},
	}
	for _, tt := range tests {
		if got := property(table, tt.r); got != tt.want {
			t.Errorf("property(table, %#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}
