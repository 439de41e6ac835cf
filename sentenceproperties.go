package segmenter

// sentenceBreakCodePoints is a curated extract of
// https://www.unicode.org/Public/15.0.0/ucd/auxiliary/SentenceBreakProperty.txt
// covering the repertoire this package ships with; run go generate
// (gen_properties.go) to rebuild the table from the full UCD.
// The table is sorted by code point ranges for binary search. Code points
// absent from the table carry the default property prAny. ASCII letters and
// digits are resolved by the fast paths in propertySentence and do not
// appear here.
var sentenceBreakCodePoints = [][3]int{
	{0x0009, 0x0009, prSp},      // Cc <control-0009>
	{0x000A, 0x000A, prLF},      // Cc <control-000A>
	{0x000B, 0x000C, prSp},      // Cc   [2] <control-000B>..<control-000C>
	{0x000D, 0x000D, prCR},      // Cc <control-000D>
	{0x0020, 0x0020, prSp},      // Zs SPACE
	{0x0021, 0x0021, prSTerm},   // Po EXCLAMATION MARK
	{0x0022, 0x0022, prClose},   // Po QUOTATION MARK
	{0x0027, 0x0027, prClose},   // Po APOSTROPHE
	{0x0028, 0x0028, prClose},   // Ps LEFT PARENTHESIS
	{0x0029, 0x0029, prClose},   // Pe RIGHT PARENTHESIS
	{0x002C, 0x002C, prSContinue}, // Po COMMA
	{0x002D, 0x002D, prSContinue}, // Pd HYPHEN-MINUS
	{0x002E, 0x002E, prATerm},   // Po FULL STOP
	{0x003A, 0x003A, prSContinue}, // Po COLON
	{0x003F, 0x003F, prSTerm},   // Po QUESTION MARK
	{0x005B, 0x005B, prClose},   // Ps LEFT SQUARE BRACKET
	{0x005D, 0x005D, prClose},   // Pe RIGHT SQUARE BRACKET
	{0x007B, 0x007B, prClose},   // Ps LEFT CURLY BRACKET
	{0x007D, 0x007D, prClose},   // Pe RIGHT CURLY BRACKET
	{0x0085, 0x0085, prSep},     // Cc <control-0085>
	{0x00A0, 0x00A0, prSp},      // Zs NO-BREAK SPACE
	{0x00AA, 0x00AA, prLower},   // Lo FEMININE ORDINAL INDICATOR
	{0x00AB, 0x00AB, prClose},   // Pi LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
	{0x00AD, 0x00AD, prFormat},  // Cf SOFT HYPHEN
	{0x00B5, 0x00B5, prLower},   // Ll MICRO SIGN
	{0x00BA, 0x00BA, prLower},   // Lo MASCULINE ORDINAL INDICATOR
	{0x00BB, 0x00BB, prClose},   // Pf RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK
	{0x00C0, 0x00D6, prUpper},   // Lu  [23] LATIN CAPITAL LETTER A WITH GRAVE..
	{0x00D8, 0x00DE, prUpper},   // Lu   [7] LATIN CAPITAL LETTER O WITH STROKE..
	{0x00DF, 0x00F6, prLower},   // Ll  [24] LATIN SMALL LETTER SHARP S..
	{0x00F8, 0x00FF, prLower},   // Ll   [8] LATIN SMALL LETTER O WITH STROKE..
	{0x0300, 0x036F, prExtend},  // Mn [112] COMBINING GRAVE ACCENT..
	{0x0391, 0x03A9, prUpper},   // Lu  [25] GREEK CAPITAL LETTER ALPHA..
	{0x03B1, 0x03C9, prLower},   // Ll  [25] GREEK SMALL LETTER ALPHA..
	{0x0400, 0x042F, prUpper},   // Lu  [48] CYRILLIC CAPITAL LETTER IE WITH GRAVE..
	{0x0430, 0x045F, prLower},   // Ll  [48] CYRILLIC SMALL LETTER A..
	{0x0483, 0x0489, prExtend},  // Mn/Me [7] COMBINING CYRILLIC TITLO..
	{0x05D0, 0x05EA, prOLetter}, // Lo  [27] HEBREW LETTER ALEF..
	{0x0600, 0x0605, prFormat},  // Cf   [6] ARABIC NUMBER SIGN..
	{0x060C, 0x060D, prSContinue}, // Po  [2] ARABIC COMMA..ARABIC DATE SEPARATOR
	{0x0610, 0x061A, prExtend},  // Mn  [11] ARABIC SIGN SALLALLAHOU ALAYHE WASSALLAM..
	{0x061F, 0x061F, prSTerm},   // Po ARABIC QUESTION MARK
	{0x0620, 0x064A, prOLetter}, // Lo  [43] ARABIC LETTER KASHMIRI YEH..
	{0x064B, 0x065F, prExtend},  // Mn  [21] ARABIC FATHATAN..
	{0x0660, 0x0669, prNumeric}, // Nd  [10] ARABIC-INDIC DIGIT ZERO..
	{0x06D4, 0x06D4, prSTerm},   // Po ARABIC FULL STOP
	{0x0900, 0x0903, prExtend},  // Mn/Mc [4] DEVANAGARI SIGN INVERTED CANDRABINDU..
	{0x0904, 0x0939, prOLetter}, // Lo  [54] DEVANAGARI LETTER SHORT A..
	{0x093A, 0x094F, prExtend},  // Mn/Mc [22] DEVANAGARI VOWEL SIGN OE..
	{0x0964, 0x0965, prSTerm},   // Po   [2] DEVANAGARI DANDA..DOUBLE DANDA
	{0x0966, 0x096F, prNumeric}, // Nd  [10] DEVANAGARI DIGIT ZERO..
	{0x1100, 0x115F, prOLetter}, // Lo  [96] HANGUL CHOSEONG KIYEOK..
	{0x1680, 0x1680, prSp},      // Zs OGHAM SPACE MARK
	{0x2000, 0x200A, prSp},      // Zs  [11] EN QUAD..HAIR SPACE
	{0x200B, 0x200B, prFormat},  // Cf ZERO WIDTH SPACE
	{0x200C, 0x200D, prExtend},  // Cf   [2] ZERO WIDTH NON-JOINER..ZERO WIDTH JOINER
	{0x200E, 0x200F, prFormat},  // Cf   [2] LEFT-TO-RIGHT MARK..RIGHT-TO-LEFT MARK
	{0x2013, 0x2014, prSContinue}, // Pd  [2] EN DASH..EM DASH
	{0x2018, 0x201F, prClose},   // Pi/Pf/Ps [8] LEFT SINGLE QUOTATION MARK..
	{0x2024, 0x2024, prATerm},   // Po ONE DOT LEADER
	{0x2028, 0x2028, prSep},     // Zl LINE SEPARATOR
	{0x2029, 0x2029, prSep},     // Zp PARAGRAPH SEPARATOR
	{0x202A, 0x202E, prFormat},  // Cf   [5] LEFT-TO-RIGHT EMBEDDING..
	{0x202F, 0x202F, prSp},      // Zs NARROW NO-BREAK SPACE
	{0x2039, 0x203A, prClose},   // Pi/Pf [2] SINGLE ANGLE QUOTATION MARKS
	{0x203C, 0x203D, prSTerm},   // Po   [2] DOUBLE EXCLAMATION MARK..INTERROBANG
	{0x2045, 0x2046, prClose},   // Ps/Pe [2] SQUARE BRACKETS WITH QUILL
	{0x2047, 0x2049, prSTerm},   // Po   [3] DOUBLE QUESTION MARK..
	{0x205F, 0x205F, prSp},      // Zs MEDIUM MATHEMATICAL SPACE
	{0x2060, 0x2064, prFormat},  // Cf   [5] WORD JOINER..INVISIBLE PLUS
	{0x3000, 0x3000, prSp},      // Zs IDEOGRAPHIC SPACE
	{0x3001, 0x3001, prSContinue}, // Po IDEOGRAPHIC COMMA
	{0x3002, 0x3002, prSTerm},   // Po IDEOGRAPHIC FULL STOP
	{0x3008, 0x3011, prClose},   // Ps/Pe [10] ANGLE BRACKET..BLACK LENTICULAR BRACKET
	{0x3014, 0x301B, prClose},   // Ps/Pe  [8] TORTOISE SHELL BRACKET..WHITE SQUARE BRACKET
	{0x3041, 0x3096, prOLetter}, // Lo  [86] HIRAGANA LETTER SMALL A..
	{0x3099, 0x309A, prExtend},  // Mn   [2] COMBINING KATAKANA-HIRAGANA SOUND MARKS
	{0x309D, 0x309F, prOLetter}, // Lm/Lo [3] HIRAGANA ITERATION MARKS..DIGRAPH YORI
	{0x30A1, 0x30FA, prOLetter}, // Lo  [90] KATAKANA LETTER SMALL A..
	{0x30FC, 0x30FF, prOLetter}, // Lm/Lo [4] KATAKANA-HIRAGANA PROLONGED SOUND MARK..
	{0x3105, 0x312F, prOLetter}, // Lo  [43] BOPOMOFO LETTER B..
	{0x3400, 0x4DBF, prOLetter}, // Lo CJK UNIFIED IDEOGRAPHS EXTENSION A
	{0x4E00, 0x9FFF, prOLetter}, // Lo CJK UNIFIED IDEOGRAPHS
	{0xAC00, 0xD7A3, prOLetter}, // Lo HANGUL SYLLABLES
	{0xF900, 0xFAFF, prOLetter}, // Lo CJK COMPATIBILITY IDEOGRAPHS
	{0xFE00, 0xFE0F, prExtend},  // Mn  [16] VARIATION SELECTOR-1..VARIATION SELECTOR-16
	{0xFE52, 0xFE52, prATerm},   // Po SMALL FULL STOP
	{0xFE56, 0xFE57, prSTerm},   // Po   [2] SMALL QUESTION MARK..SMALL EXCLAMATION MARK
	{0xFEFF, 0xFEFF, prFormat},  // Cf ZERO WIDTH NO-BREAK SPACE
	{0xFF01, 0xFF01, prSTerm},   // Po FULLWIDTH EXCLAMATION MARK
	{0xFF08, 0xFF09, prClose},   // Ps/Pe [2] FULLWIDTH PARENTHESES
	{0xFF0C, 0xFF0D, prSContinue}, // Po/Pd [2] FULLWIDTH COMMA..FULLWIDTH HYPHEN-MINUS
	{0xFF0E, 0xFF0E, prATerm},   // Po FULLWIDTH FULL STOP
	{0xFF10, 0xFF19, prNumeric}, // Nd  [10] FULLWIDTH DIGIT ZERO..
	{0xFF1A, 0xFF1A, prSContinue}, // Po FULLWIDTH COLON
	{0xFF1F, 0xFF1F, prSTerm},   // Po FULLWIDTH QUESTION MARK
	{0xFF21, 0xFF3A, prUpper},   // Lu  [26] FULLWIDTH LATIN CAPITAL LETTERS
	{0xFF41, 0xFF5A, prLower},   // Ll  [26] FULLWIDTH LATIN SMALL LETTERS
	{0xFF61, 0xFF61, prSTerm},   // Po HALFWIDTH IDEOGRAPHIC FULL STOP
	{0xFF62, 0xFF63, prClose},   // Ps/Pe [2] HALFWIDTH CORNER BRACKETS
	{0xFF64, 0xFF64, prSContinue}, // Po HALFWIDTH IDEOGRAPHIC COMMA
	{0xFF66, 0xFF9D, prOLetter}, // Lo  [56] HALFWIDTH KATAKANA LETTERS
}
