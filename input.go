package segmenter

import (
	"unicode/utf16"
	"unicode/utf8"
)

// A decodeFunc reads the code point starting at unit offset i of a text
// view and reports its width in the view's native units. Decoders never
// fail: ill-formed sequences decode to U+FFFD (or the raw unit for
// Latin-1), which classifies as the default property. A decoder is only
// called with i < len(text) and always reports a width of at least 1, so
// the walkers terminate on any input.
type decodeFunc[U any] func(text []U, i int) (rune, int)

// decodeLatin1 reads a byte-oriented Latin-1 view. Every byte is one code
// point; positions are byte offsets.
func decodeLatin1(text []byte, i int) (rune, int) {
	return rune(text[i]), 1
}

// decodeUTF8 reads a UTF-8 view. Positions are byte offsets.
func decodeUTF8(text []byte, i int) (rune, int) {
	return utf8.DecodeRune(text[i:])
}

// decodeUTF16 reads a UTF-16 view. Positions are 16-bit code unit
// offsets. Unpaired surrogates decode as single units.
func decodeUTF16(text []uint16, i int) (rune, int) {
	c := text[i]
	if utf16.IsSurrogate(rune(c)) && i+1 < len(text) {
		if r := utf16.DecodeRune(rune(c), rune(text[i+1])); r != utf8.RuneError {
			return r, 2
		}
	}
	return rune(c), 1
}

// lookaheadFunc yields the code points following the current one, in
// order, until the end of the view. The rule walkers use it for the
// finite forward context some rules require; it never rewinds.
type lookaheadFunc func() (rune, bool)

// lookahead returns a lookaheadFunc over text starting at unit offset pos.
func lookahead[U any](text []U, pos int, decode decodeFunc[U]) lookaheadFunc {
	return func() (rune, bool) {
		if pos >= len(text) {
			return 0, false
		}
		r, w := decode(text, pos)
		pos += w
		return r, true
	}
}
