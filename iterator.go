package segmenter

// Done is returned by Next once every boundary of the text has been
// reported. Further calls keep returning Done.
const Done int32 = -1

// Tokens longer than any suppression cannot be abbreviations; the word
// buffer resets instead of growing without bound.
const maxSuppressionToken = 16

// sentenceIter walks a text view and yields sentence boundaries. The
// type parameter selects the view's code unit; positions are reported in
// those units. The zero offset is never reported; the final boundary is
// the length of the view.
type sentenceIter[U any] struct {
	text         []U
	decode       decodeFunc[U]
	suppressions []string
	pos          int
	state        int
	word         []rune
	done         bool
}

func newSentenceIter[U any](text []U, decode decodeFunc[U], suppressions []string) sentenceIter[U] {
	return sentenceIter[U]{
		text:         text,
		decode:       decode,
		suppressions: suppressions,
		state:        -1,
	}
}

// trackWord feeds the suppression token buffer and reports whether an
// ambiguous full stop at the current position belongs to a known
// abbreviation.
func (it *sentenceIter[U]) trackWord(r rune, prop int) (suppressed bool) {
	switch prop {
	case prATerm:
		if matchSuppression(it.suppressions, it.word) {
			it.word = append(it.word, '.')
			return true
		}
		if it.word = append(it.word, '.'); !prefixSuppression(it.suppressions, it.word) {
			it.word = it.word[:0]
		}
	case prUpper, prLower, prOLetter:
		if len(it.word) < maxSuppressionToken {
			it.word = append(it.word, r)
		} else {
			it.word = it.word[:0]
		}
	case prExtend, prFormat:
		// Attaches to the preceding character, the token stands.
	default:
		it.word = it.word[:0]
	}
	return false
}

func (it *sentenceIter[U]) next() int32 {
	if it.done {
		return Done
	}
	if len(it.text) == 0 {
		it.done = true
		return Done
	}
	for it.pos < len(it.text) {
		r, w := it.decode(it.text, it.pos)
		suppressed := it.trackWord(r, propertySentence(r))
		state, boundary := transitionSentenceBreakState(
			it.state, r, suppressed, lookahead(it.text, it.pos+w, it.decode))
		it.state = state
		at := it.pos
		it.pos += w
		if boundary && at > 0 {
			return int32(at)
		}
	}
	it.done = true
	return int32(len(it.text))
}

// lineIter walks a text view and yields line break opportunities,
// remembering the kind of the break last reported. The final boundary at
// the end of the view is always a mandatory break.
type lineIter[U any] struct {
	text   []U
	decode decodeFunc[U]
	cjAsNS bool
	pos    int
	ctx    lineContext
	kind   BreakKind
	done   bool
}

func newLineIter[U any](text []U, decode decodeFunc[U], cjAsNS bool) lineIter[U] {
	return lineIter[U]{
		text:   text,
		decode: decode,
		cjAsNS: cjAsNS,
		ctx:    lineContext{state: -1},
	}
}

func (it *lineIter[U]) next() int32 {
	if it.done {
		return Done
	}
	if len(it.text) == 0 {
		it.done = true
		return Done
	}
	for it.pos < len(it.text) {
		r, w := it.decode(it.text, it.pos)
		ctx, kind := transitionLineBreakState(
			it.ctx, r, it.cjAsNS, lookahead(it.text, it.pos+w, it.decode))
		it.ctx = ctx
		at := it.pos
		it.pos += w
		if kind != LineDontBreak && at > 0 {
			it.kind = kind
			return int32(at)
		}
	}
	it.done = true
	it.kind = LineMustBreak
	return int32(len(it.text))
}

// SentenceIterator yields the sentence boundaries of a UTF-8 text as
// byte offsets.
type SentenceIterator struct {
	it sentenceIter[byte]
}

// Next returns the offset of the next sentence boundary, or Done when
// the text is exhausted.
func (i *SentenceIterator) Next() int32 { return i.it.next() }

// SentenceIteratorLatin1 yields the sentence boundaries of a Latin-1
// text as byte offsets.
type SentenceIteratorLatin1 struct {
	it sentenceIter[byte]
}

// Next returns the offset of the next sentence boundary, or Done when
// the text is exhausted.
func (i *SentenceIteratorLatin1) Next() int32 { return i.it.next() }

// SentenceIteratorUTF16 yields the sentence boundaries of a UTF-16 text
// as offsets in 16-bit code units.
type SentenceIteratorUTF16 struct {
	it sentenceIter[uint16]
}

// Next returns the offset of the next sentence boundary, or Done when
// the text is exhausted.
func (i *SentenceIteratorUTF16) Next() int32 { return i.it.next() }

// LineIterator yields the line break opportunities of a UTF-8 text as
// byte offsets.
type LineIterator struct {
	it lineIter[byte]
}

// Next returns the offset of the next break opportunity, or Done when
// the text is exhausted.
func (i *LineIterator) Next() int32 { return i.it.next() }

// BreakKind reports whether the break last returned by Next was
// mandatory or optional. It is only meaningful after Next has returned
// an offset.
func (i *LineIterator) BreakKind() BreakKind { return i.it.kind }

// LineIteratorLatin1 yields the line break opportunities of a Latin-1
// text as byte offsets.
type LineIteratorLatin1 struct {
	it lineIter[byte]
}

// Next returns the offset of the next break opportunity, or Done when
// the text is exhausted.
func (i *LineIteratorLatin1) Next() int32 { return i.it.next() }

// BreakKind reports whether the break last returned by Next was
// mandatory or optional. It is only meaningful after Next has returned
// an offset.
func (i *LineIteratorLatin1) BreakKind() BreakKind { return i.it.kind }

// LineIteratorUTF16 yields the line break opportunities of a UTF-16 text
// as offsets in 16-bit code units.
type LineIteratorUTF16 struct {
	it lineIter[uint16]
}

// Next returns the offset of the next break opportunity, or Done when
// the text is exhausted.
func (i *LineIteratorUTF16) Next() int32 { return i.it.next() }

// BreakKind reports whether the break last returned by Next was
// mandatory or optional. It is only meaningful after Next has returned
// an offset.
func (i *LineIteratorUTF16) BreakKind() BreakKind { return i.it.kind }
