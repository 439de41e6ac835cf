package segmenter

// Unicode properties used by the boundary parsers.
// Sentence properties from UAX #29, line properties from UAX #14.
const (
	prAny = iota // Default/any property (must be 0)

	// Shared newline-ish properties
	prCR
	prLF

	// Sentence Break properties (UAX #29)
	prSep       // Paragraph separator (NEL, LS, PS)
	prSp        // Space
	prATerm     // Ambiguous terminal (.)
	prSTerm     // Sentence terminal (! ?)
	prClose     // Close punctuation and quotes
	prSContinue // Sentence continue (, - :)
	prNumeric   // Numeric digits
	prUpper     // Uppercase letters
	prLower     // Lowercase letters
	prOLetter   // Other letters
	prExtend    // Extending characters (combining marks)
	prFormat    // Format characters

	// Line Break properties (UAX #14)
	prBK  // Mandatory Break
	prNL  // Next Line
	prSP  // Space
	prZW  // Zero Width Space
	prZWJ // Zero Width Joiner
	prWJ  // Word Joiner
	prGL  // Non-breaking (Glue)
	prCM  // Combining Mark
	prBA  // Break After
	prBB  // Break Before
	prHY  // Hyphen
	prCL  // Close Punctuation
	prCP  // Close Parenthesis
	prEX  // Exclamation
	prIS  // Infix Separator
	prSY  // Break Symbols
	prOP  // Open Punctuation
	prQU  // Quotation
	prNS  // Nonstarter
	prCJ  // Conditional Japanese Starter
	prAL  // Ordinary Alphabetic
	prHL  // Hebrew Letter
	prNU  // Numeric
	prPR  // Prefix Numeric
	prPO  // Postfix Numeric
	prID  // Ideographic
	prEB  // Emoji Base
	prEM  // Emoji Modifier
	prIN  // Inseparable
	prCB  // Contingent Break
	prB2  // Break Opportunity Before and After
	prRI  // Regional Indicator
	prJL  // Hangul L Jamo
	prJV  // Hangul V Jamo
	prJT  // Hangul T Jamo
	prH2  // Hangul LV Syllable
	prH3  // Hangul LVT Syllable
	prSA  // Complex Context (South Asian)
	prAI  // Ambiguous (treated as AL)
	prSG  // Surrogate (treated as AL)

	// East Asian Width properties (UAX #11), for the LB30 exceptions
	prEAN // Neutral
	prEAW // Wide
	prEAH // Halfwidth
	prEAF // Fullwidth
)

// Unicode General Categories needed for segmentation decisions, primarily
// for distinguishing quotation mark types (Pi/Pf) in line breaking and for
// resolving the SA line break class.
const (
	gcNone = iota // Unknown/default (must be 0)
	gcLu          // Uppercase Letter
	gcLl          // Lowercase Letter
	gcLo          // Other Letter
	gcLm          // Modifier Letter
	gcNd          // Decimal Number
	gcPi          // Initial Punctuation (opening quotes like «)
	gcPf          // Final Punctuation (closing quotes like »)
	gcPs          // Open Punctuation
	gcPe          // Close Punctuation
	gcPo          // Other Punctuation
	gcPd          // Dash Punctuation
	gcPc          // Connector Punctuation
	gcSc          // Currency Symbol
	gcSm          // Math Symbol
	gcSk          // Modifier Symbol
	gcSo          // Other Symbol
	gcNo          // Other Number
	gcMn          // Nonspacing Mark
	gcMc          // Spacing Mark
	gcZs          // Space Separator
	gcZl          // Line Separator
	gcZp          // Paragraph Separator
	gcCc          // Control
	gcCf          // Format
	gcCn          // Unassigned
)

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property, ...].
// Returns the matching entry, or a zero-initialized entry if not found.
func propertySearch[E interface{ [3]int | [4]int }](dictionary []E, r rune) (result E) {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// property returns the Unicode property value (see constants above) of the
// given code point.
func property(dictionary [][3]int, r rune) int {
	return propertySearch(dictionary, r)[2]
}

// propertySentence returns the Unicode sentence break property value of the
// given code point while fast tracking ASCII letters and digits. Code points
// not listed in the table classify as prAny.
func propertySentence(r rune) int {
	if r >= 'a' && r <= 'z' {
		return prLower
	}
	if r >= 'A' && r <= 'Z' {
		return prUpper
	}
	if r >= '0' && r <= '9' {
		return prNumeric
	}
	return property(sentenceBreakCodePoints, r)
}

// propertyLineBreak returns the Unicode line break property value and
// General Category of the given code point, as listed in the line break
// code points table, while fast tracking ASCII digits and letters and the
// precomposed Hangul syllables (whose LV/LVT split follows from the
// syllable arithmetic, not from table data).
func propertyLineBreak(r rune) (property, generalCategory int) {
	if r >= 'a' && r <= 'z' {
		return prAL, gcLl
	}
	if r >= 'A' && r <= 'Z' {
		return prAL, gcLu
	}
	if r >= '0' && r <= '9' {
		return prNU, gcNd
	}
	if r >= 0xAC00 && r <= 0xD7A3 {
		if (r-0xAC00)%28 == 0 {
			return prH2, gcLo
		}
		return prH3, gcLo
	}
	entry := propertySearch(lineBreakCodePoints, r)
	return entry[2], entry[3]
}

// propertyEastAsianWidth returns the East Asian Width property of the given
// code point, reduced to the classes the line break rules consult: wide,
// fullwidth, halfwidth, or neutral for everything else.
func propertyEastAsianWidth(r rune) int {
	if r < 0x1100 {
		return prEAN
	}
	p := property(eastAsianWidth, r)
	if p == 0 {
		return prEAN
	}
	return p
}
