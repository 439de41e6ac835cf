package segmenter

// lineBreakCodePoints is a curated extract of
// https://www.unicode.org/Public/15.0.0/ucd/LineBreak.txt
// and the UnicodeData.txt general categories, covering the repertoire
// this package ships with; run go generate (gen_properties.go) to
// rebuild the table from the full UCD. Entries are
// [start, end, property, generalCategory], sorted for binary search.
// Code points absent from the table carry the default property prAny,
// which LB1 resolves to AL. ASCII letters, digits, and the precomposed
// Hangul syllables are resolved by the fast paths in propertyLineBreak
// and do not appear here.
var lineBreakCodePoints = [][4]int{
	{0x0000, 0x0008, prCM, gcCc},  // <control>
	{0x0009, 0x0009, prBA, gcCc},  // <control-0009> TAB
	{0x000A, 0x000A, prLF, gcCc},  // <control-000A> LINE FEED
	{0x000B, 0x000C, prBK, gcCc},  // <control-000B>..<control-000C>
	{0x000D, 0x000D, prCR, gcCc},  // <control-000D> CARRIAGE RETURN
	{0x000E, 0x001F, prCM, gcCc},  // <control>
	{0x0020, 0x0020, prSP, gcZs},  // SPACE
	{0x0021, 0x0021, prEX, gcPo},  // EXCLAMATION MARK
	{0x0022, 0x0022, prQU, gcPo},  // QUOTATION MARK
	{0x0023, 0x0023, prAL, gcPo},  // NUMBER SIGN
	{0x0024, 0x0024, prPR, gcSc},  // DOLLAR SIGN
	{0x0025, 0x0025, prPO, gcPo},  // PERCENT SIGN
	{0x0026, 0x0026, prAL, gcPo},  // AMPERSAND
	{0x0027, 0x0027, prQU, gcPo},  // APOSTROPHE
	{0x0028, 0x0028, prOP, gcPs},  // LEFT PARENTHESIS
	{0x0029, 0x0029, prCP, gcPe},  // RIGHT PARENTHESIS
	{0x002A, 0x002A, prAL, gcPo},  // ASTERISK
	{0x002B, 0x002B, prPR, gcSm},  // PLUS SIGN
	{0x002C, 0x002C, prIS, gcPo},  // COMMA
	{0x002D, 0x002D, prHY, gcPd},  // HYPHEN-MINUS
	{0x002E, 0x002E, prIS, gcPo},  // FULL STOP
	{0x002F, 0x002F, prSY, gcPo},  // SOLIDUS
	{0x003A, 0x003B, prIS, gcPo},  // COLON..SEMICOLON
	{0x003C, 0x003E, prAL, gcSm},  // LESS-THAN SIGN..GREATER-THAN SIGN
	{0x003F, 0x003F, prEX, gcPo},  // QUESTION MARK
	{0x0040, 0x0040, prAL, gcPo},  // COMMERCIAL AT
	{0x005B, 0x005B, prOP, gcPs},  // LEFT SQUARE BRACKET
	{0x005C, 0x005C, prPR, gcPo},  // REVERSE SOLIDUS
	{0x005D, 0x005D, prCP, gcPe},  // RIGHT SQUARE BRACKET
	{0x005E, 0x005E, prAL, gcSk},  // CIRCUMFLEX ACCENT
	{0x005F, 0x005F, prAL, gcPc},  // LOW LINE
	{0x0060, 0x0060, prAL, gcSk},  // GRAVE ACCENT
	{0x007B, 0x007B, prOP, gcPs},  // LEFT CURLY BRACKET
	{0x007C, 0x007C, prBA, gcSm},  // VERTICAL LINE
	{0x007D, 0x007D, prCL, gcPe},  // RIGHT CURLY BRACKET
	{0x007E, 0x007E, prAL, gcSm},  // TILDE
	{0x007F, 0x0084, prCM, gcCc},  // <control>
	{0x0085, 0x0085, prNL, gcCc},  // <control-0085> NEXT LINE
	{0x0086, 0x009F, prCM, gcCc},  // <control>
	{0x00A0, 0x00A0, prGL, gcZs},  // NO-BREAK SPACE
	{0x00A1, 0x00A1, prOP, gcPo},  // INVERTED EXCLAMATION MARK
	{0x00A2, 0x00A2, prPO, gcSc},  // CENT SIGN
	{0x00A3, 0x00A5, prPR, gcSc},  // POUND SIGN..YEN SIGN
	{0x00A6, 0x00A6, prAL, gcSo},  // BROKEN BAR
	{0x00A7, 0x00A7, prAL, gcPo},  // SECTION SIGN
	{0x00A8, 0x00A8, prAL, gcSk},  // DIAERESIS
	{0x00A9, 0x00A9, prAL, gcSo},  // COPYRIGHT SIGN
	{0x00AA, 0x00AA, prAL, gcLo},  // FEMININE ORDINAL INDICATOR
	{0x00AB, 0x00AB, prQU, gcPi},  // LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
	{0x00AC, 0x00AC, prAL, gcSm},  // NOT SIGN
	{0x00AD, 0x00AD, prBA, gcCf},  // SOFT HYPHEN
	{0x00AE, 0x00AE, prAL, gcSo},  // REGISTERED SIGN
	{0x00AF, 0x00AF, prAL, gcSk},  // MACRON
	{0x00B0, 0x00B0, prPO, gcSo},  // DEGREE SIGN
	{0x00B1, 0x00B1, prPR, gcSm},  // PLUS-MINUS SIGN
	{0x00B2, 0x00B3, prAL, gcNo},  // SUPERSCRIPT TWO..THREE
	{0x00B4, 0x00B4, prBB, gcSk},  // ACUTE ACCENT
	{0x00B5, 0x00B5, prAL, gcLl},  // MICRO SIGN
	{0x00B6, 0x00B7, prAL, gcPo},  // PILCROW SIGN..MIDDLE DOT
	{0x00B8, 0x00B8, prAL, gcSk},  // CEDILLA
	{0x00B9, 0x00B9, prAL, gcNo},  // SUPERSCRIPT ONE
	{0x00BA, 0x00BA, prAL, gcLo},  // MASCULINE ORDINAL INDICATOR
	{0x00BB, 0x00BB, prQU, gcPf},  // RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK
	{0x00BC, 0x00BE, prAL, gcNo},  // VULGAR FRACTIONS
	{0x00BF, 0x00BF, prOP, gcPo},  // INVERTED QUESTION MARK
	{0x00C0, 0x00D6, prAL, gcLu},  // LATIN CAPITAL LETTERS
	{0x00D7, 0x00D7, prAL, gcSm},  // MULTIPLICATION SIGN
	{0x00D8, 0x00DE, prAL, gcLu},  // LATIN CAPITAL LETTERS
	{0x00DF, 0x00F6, prAL, gcLl},  // LATIN SMALL LETTERS
	{0x00F7, 0x00F7, prAL, gcSm},  // DIVISION SIGN
	{0x00F8, 0x00FF, prAL, gcLl},  // LATIN SMALL LETTERS
	{0x0100, 0x017F, prAL, gcNone}, // LATIN EXTENDED-A
	{0x0300, 0x036F, prCM, gcMn},  // COMBINING DIACRITICAL MARKS
	{0x0370, 0x03FF, prAL, gcNone}, // GREEK AND COPTIC
	{0x0400, 0x0482, prAL, gcNone}, // CYRILLIC
	{0x0483, 0x0489, prCM, gcMn},  // COMBINING CYRILLIC MARKS
	{0x048A, 0x04FF, prAL, gcNone}, // CYRILLIC
	{0x05D0, 0x05EA, prHL, gcLo},  // HEBREW LETTER ALEF..TAV
	{0x05F3, 0x05F4, prAL, gcPo},  // HEBREW PUNCTUATION GERESH..GERSHAYIM
	{0x0610, 0x061A, prCM, gcMn},  // ARABIC SIGNS
	{0x061F, 0x061F, prEX, gcPo},  // ARABIC QUESTION MARK
	{0x0620, 0x064A, prAL, gcLo},  // ARABIC LETTERS
	{0x064B, 0x065F, prCM, gcMn},  // ARABIC VOWEL SIGNS
	{0x0660, 0x0669, prNU, gcNd},  // ARABIC-INDIC DIGITS
	{0x066A, 0x066A, prPO, gcPo},  // ARABIC PERCENT SIGN
	{0x06D4, 0x06D4, prEX, gcPo},  // ARABIC FULL STOP
	{0x0900, 0x0903, prCM, gcMn},  // DEVANAGARI SIGNS
	{0x0904, 0x0939, prAL, gcLo},  // DEVANAGARI LETTERS
	{0x093A, 0x094F, prCM, gcMn},  // DEVANAGARI VOWEL SIGNS
	{0x0964, 0x0965, prBA, gcPo},  // DEVANAGARI DANDA..DOUBLE DANDA
	{0x0966, 0x096F, prNU, gcNd},  // DEVANAGARI DIGITS
	{0x0E01, 0x0E3A, prSA, gcNone}, // THAI
	{0x0E40, 0x0E4E, prSA, gcNone}, // THAI
	{0x1100, 0x115F, prJL, gcLo},  // HANGUL CHOSEONG
	{0x1160, 0x11A7, prJV, gcLo},  // HANGUL JUNGSEONG
	{0x11A8, 0x11FF, prJT, gcLo},  // HANGUL JONGSEONG
	{0x1680, 0x1680, prBA, gcZs},  // OGHAM SPACE MARK
	{0x2000, 0x2006, prBA, gcZs},  // EN QUAD..SIX-PER-EM SPACE
	{0x2007, 0x2007, prGL, gcZs},  // FIGURE SPACE
	{0x2008, 0x200A, prBA, gcZs},  // PUNCTUATION SPACE..HAIR SPACE
	{0x200B, 0x200B, prZW, gcCf},  // ZERO WIDTH SPACE
	{0x200C, 0x200C, prCM, gcCf},  // ZERO WIDTH NON-JOINER
	{0x200D, 0x200D, prZWJ, gcCf}, // ZERO WIDTH JOINER
	{0x200E, 0x200F, prCM, gcCf},  // LEFT-TO-RIGHT MARK..RIGHT-TO-LEFT MARK
	{0x2010, 0x2010, prBA, gcPd},  // HYPHEN
	{0x2011, 0x2011, prGL, gcPd},  // NON-BREAKING HYPHEN
	{0x2012, 0x2013, prBA, gcPd},  // FIGURE DASH..EN DASH
	{0x2014, 0x2014, prB2, gcPd},  // EM DASH
	{0x2018, 0x2018, prQU, gcPi},  // LEFT SINGLE QUOTATION MARK
	{0x2019, 0x2019, prQU, gcPf},  // RIGHT SINGLE QUOTATION MARK
	{0x201A, 0x201A, prOP, gcPs},  // SINGLE LOW-9 QUOTATION MARK
	{0x201C, 0x201C, prQU, gcPi},  // LEFT DOUBLE QUOTATION MARK
	{0x201D, 0x201D, prQU, gcPf},  // RIGHT DOUBLE QUOTATION MARK
	{0x201E, 0x201E, prOP, gcPs},  // DOUBLE LOW-9 QUOTATION MARK
	{0x201F, 0x201F, prQU, gcPi},  // DOUBLE HIGH-REVERSED-9 QUOTATION MARK
	{0x2020, 0x2021, prAI, gcPo},  // DAGGER..DOUBLE DAGGER
	{0x2024, 0x2026, prIN, gcPo},  // ONE DOT LEADER..HORIZONTAL ELLIPSIS
	{0x2028, 0x2028, prBK, gcZl},  // LINE SEPARATOR
	{0x2029, 0x2029, prBK, gcZp},  // PARAGRAPH SEPARATOR
	{0x202F, 0x202F, prGL, gcZs},  // NARROW NO-BREAK SPACE
	{0x2030, 0x2030, prPO, gcPo},  // PER MILLE SIGN
	{0x2032, 0x2034, prPO, gcPo},  // PRIME..TRIPLE PRIME
	{0x2039, 0x2039, prQU, gcPi},  // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	{0x203A, 0x203A, prQU, gcPf},  // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	{0x203C, 0x203D, prNS, gcPo},  // DOUBLE EXCLAMATION MARK..INTERROBANG
	{0x2044, 0x2044, prIS, gcSm},  // FRACTION SLASH
	{0x2045, 0x2045, prOP, gcPs},  // LEFT SQUARE BRACKET WITH QUILL
	{0x2046, 0x2046, prCL, gcPe},  // RIGHT SQUARE BRACKET WITH QUILL
	{0x2047, 0x2049, prNS, gcPo},  // DOUBLE QUESTION MARK..EXCLAMATION QUESTION MARK
	{0x2060, 0x2060, prWJ, gcCf},  // WORD JOINER
	{0x20A0, 0x20CF, prPR, gcSc},  // CURRENCY SYMBOLS
	{0x2212, 0x2212, prPR, gcSm},  // MINUS SIGN
	{0x2E3A, 0x2E3B, prB2, gcPd},  // TWO-EM DASH..THREE-EM DASH
	{0x3000, 0x3000, prBA, gcZs},  // IDEOGRAPHIC SPACE
	{0x3001, 0x3002, prCL, gcPo},  // IDEOGRAPHIC COMMA..IDEOGRAPHIC FULL STOP
	{0x3008, 0x3008, prOP, gcPs},  // LEFT ANGLE BRACKET
	{0x3009, 0x3009, prCL, gcPe},  // RIGHT ANGLE BRACKET
	{0x300A, 0x300A, prOP, gcPs},  // LEFT DOUBLE ANGLE BRACKET
	{0x300B, 0x300B, prCL, gcPe},  // RIGHT DOUBLE ANGLE BRACKET
	{0x300C, 0x300C, prOP, gcPs},  // LEFT CORNER BRACKET
	{0x300D, 0x300D, prCL, gcPe},  // RIGHT CORNER BRACKET
	{0x300E, 0x300E, prOP, gcPs},  // LEFT WHITE CORNER BRACKET
	{0x300F, 0x300F, prCL, gcPe},  // RIGHT WHITE CORNER BRACKET
	{0x3010, 0x3010, prOP, gcPs},  // LEFT BLACK LENTICULAR BRACKET
	{0x3011, 0x3011, prCL, gcPe},  // RIGHT BLACK LENTICULAR BRACKET
	{0x3014, 0x3014, prOP, gcPs},  // LEFT TORTOISE SHELL BRACKET
	{0x3015, 0x3015, prCL, gcPe},  // RIGHT TORTOISE SHELL BRACKET
	{0x3016, 0x3016, prOP, gcPs},  // LEFT WHITE LENTICULAR BRACKET
	{0x3017, 0x3017, prCL, gcPe},  // RIGHT WHITE LENTICULAR BRACKET
	{0x3018, 0x3018, prOP, gcPs},  // LEFT WHITE TORTOISE SHELL BRACKET
	{0x3019, 0x3019, prCL, gcPe},  // RIGHT WHITE TORTOISE SHELL BRACKET
	{0x301A, 0x301A, prOP, gcPs},  // LEFT WHITE SQUARE BRACKET
	{0x301B, 0x301B, prCL, gcPe},  // RIGHT WHITE SQUARE BRACKET
	{0x301C, 0x301C, prNS, gcPd},  // WAVE DASH
	{0x3041, 0x3041, prCJ, gcLo},  // HIRAGANA LETTER SMALL A
	{0x3042, 0x3062, prID, gcLo},  // HIRAGANA LETTERS
	{0x3063, 0x3063, prCJ, gcLo},  // HIRAGANA LETTER SMALL TU
	{0x3064, 0x3082, prID, gcLo},  // HIRAGANA LETTERS
	{0x3083, 0x3083, prCJ, gcLo},  // HIRAGANA LETTER SMALL YA
	{0x3084, 0x3084, prID, gcLo},  // HIRAGANA LETTER YA
	{0x3085, 0x3085, prCJ, gcLo},  // HIRAGANA LETTER SMALL YU
	{0x3086, 0x3086, prID, gcLo},  // HIRAGANA LETTER YU
	{0x3087, 0x3087, prCJ, gcLo},  // HIRAGANA LETTER SMALL YO
	{0x3088, 0x3094, prID, gcLo},  // HIRAGANA LETTERS
	{0x3095, 0x3096, prCJ, gcLo},  // HIRAGANA LETTERS SMALL KA..SMALL KE
	{0x3099, 0x309A, prCM, gcMn},  // COMBINING KATAKANA-HIRAGANA SOUND MARKS
	{0x309B, 0x309E, prNS, gcNone}, // KATAKANA-HIRAGANA SOUND MARKS, ITERATION MARKS
	{0x309F, 0x309F, prID, gcLo},  // HIRAGANA DIGRAPH YORI
	{0x30A1, 0x30A1, prCJ, gcLo},  // KATAKANA LETTER SMALL A
	{0x30A2, 0x30C2, prID, gcLo},  // KATAKANA LETTERS
	{0x30C3, 0x30C3, prCJ, gcLo},  // KATAKANA LETTER SMALL TU
	{0x30C4, 0x30E2, prID, gcLo},  // KATAKANA LETTERS
	{0x30E3, 0x30E3, prCJ, gcLo},  // KATAKANA LETTER SMALL YA
	{0x30E4, 0x30E4, prID, gcLo},  // KATAKANA LETTER YA
	{0x30E5, 0x30E5, prCJ, gcLo},  // KATAKANA LETTER SMALL YU
	{0x30E6, 0x30E6, prID, gcLo},  // KATAKANA LETTER YU
	{0x30E7, 0x30E7, prCJ, gcLo},  // KATAKANA LETTER SMALL YO
	{0x30E8, 0x30ED, prID, gcLo},  // KATAKANA LETTERS
	{0x30EE, 0x30EE, prCJ, gcLo},  // KATAKANA LETTER SMALL WA
	{0x30EF, 0x30F4, prID, gcLo},  // KATAKANA LETTERS
	{0x30F5, 0x30F6, prCJ, gcLo},  // KATAKANA LETTERS SMALL KA..SMALL KE
	{0x30F7, 0x30FA, prID, gcLo},  // KATAKANA LETTERS
	{0x30FB, 0x30FB, prNS, gcPo},  // KATAKANA MIDDLE DOT
	{0x30FC, 0x30FC, prCJ, gcLm},  // KATAKANA-HIRAGANA PROLONGED SOUND MARK
	{0x30FD, 0x30FE, prNS, gcNone}, // KATAKANA ITERATION MARKS
	{0x3105, 0x312F, prID, gcLo},  // BOPOMOFO LETTERS
	{0x3130, 0x318F, prID, gcLo},  // HANGUL COMPATIBILITY JAMO
	{0x3400, 0x4DBF, prID, gcLo},  // CJK UNIFIED IDEOGRAPHS EXTENSION A
	{0x4E00, 0x9FFF, prID, gcLo},  // CJK UNIFIED IDEOGRAPHS
	{0xA000, 0xA48F, prID, gcLo},  // YI SYLLABLES
	{0xF900, 0xFAFF, prID, gcLo},  // CJK COMPATIBILITY IDEOGRAPHS
	{0xFE00, 0xFE0F, prCM, gcMn},  // VARIATION SELECTORS
	{0xFEFF, 0xFEFF, prWJ, gcCf},  // ZERO WIDTH NO-BREAK SPACE
	{0xFF01, 0xFF01, prEX, gcPo},  // FULLWIDTH EXCLAMATION MARK
	{0xFF08, 0xFF08, prOP, gcPs},  // FULLWIDTH LEFT PARENTHESIS
	{0xFF09, 0xFF09, prCL, gcPe},  // FULLWIDTH RIGHT PARENTHESIS
	{0xFF0C, 0xFF0C, prCL, gcPo},  // FULLWIDTH COMMA
	{0xFF0E, 0xFF0E, prCL, gcPo},  // FULLWIDTH FULL STOP
	{0xFF1A, 0xFF1B, prNS, gcPo},  // FULLWIDTH COLON..SEMICOLON
	{0xFF1F, 0xFF1F, prEX, gcPo},  // FULLWIDTH QUESTION MARK
	{0xFF61, 0xFF61, prCL, gcPo},  // HALFWIDTH IDEOGRAPHIC FULL STOP
	{0xFF62, 0xFF62, prOP, gcPs},  // HALFWIDTH LEFT CORNER BRACKET
	{0xFF63, 0xFF63, prCL, gcPe},  // HALFWIDTH RIGHT CORNER BRACKET
	{0xFF64, 0xFF64, prCL, gcPo},  // HALFWIDTH IDEOGRAPHIC COMMA
	{0xFF65, 0xFF65, prNS, gcPo},  // HALFWIDTH KATAKANA MIDDLE DOT
	{0xFFFC, 0xFFFC, prCB, gcSo},  // OBJECT REPLACEMENT CHARACTER
	{0x1F1E6, 0x1F1FF, prRI, gcSo}, // REGIONAL INDICATOR SYMBOLS
	{0x1F300, 0x1F3FA, prID, gcSo}, // MISCELLANEOUS SYMBOLS AND PICTOGRAPHS
	{0x1F3FB, 0x1F3FF, prEM, gcSk}, // EMOJI MODIFIER FITZPATRICK TYPES
	{0x1F400, 0x1F465, prID, gcSo}, // PICTOGRAPHS
	{0x1F466, 0x1F478, prEB, gcSo}, // EMOJI BASES (PEOPLE)
	{0x1F479, 0x1F5FF, prID, gcSo}, // PICTOGRAPHS
	{0x1F600, 0x1F64F, prID, gcSo}, // EMOTICONS
	{0x1F680, 0x1F6FF, prID, gcSo}, // TRANSPORT AND MAP SYMBOLS
	{0x1F900, 0x1F9FF, prID, gcSo}, // SUPPLEMENTAL SYMBOLS AND PICTOGRAPHS
	{0x20000, 0x2FFFD, prID, gcLo}, // CJK UNIFIED IDEOGRAPHS EXTENSIONS
	{0x30000, 0x3FFFD, prID, gcLo}, // CJK UNIFIED IDEOGRAPHS EXTENSIONS
}

// eastAsianWidth lists the Wide, Fullwidth, and Halfwidth ranges from
// https://www.unicode.org/Public/15.0.0/ucd/EastAsianWidth.txt that the
// LB30 exceptions consult. Everything else is treated as neutral.
var eastAsianWidth = [][3]int{
	{0x1100, 0x115F, prEAW},
	{0x2E80, 0x303E, prEAW},
	{0x3041, 0x33FF, prEAW},
	{0x3400, 0x4DBF, prEAW},
	{0x4E00, 0x9FFF, prEAW},
	{0xA000, 0xA4CF, prEAW},
	{0xAC00, 0xD7A3, prEAW},
	{0xF900, 0xFAFF, prEAW},
	{0xFE30, 0xFE4F, prEAW},
	{0xFF00, 0xFF60, prEAF},
	{0xFF61, 0xFFDC, prEAH},
	{0xFFE0, 0xFFE6, prEAF},
	{0x1F300, 0x1F64F, prEAW},
	{0x1F900, 0x1F9FF, prEAW},
	{0x20000, 0x2FFFD, prEAW},
	{0x30000, 0x3FFFD, prEAW},
}
