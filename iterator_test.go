package segmenter

import "testing"

// collectSentences splits text with the given segmenter and returns the
// sentence substrings.
func collectSentences(tb testing.TB, seg *SentenceSegmenter, text string) []string {
	tb.Helper()
	iter := seg.SegmentString(text)
	var out []string
	prev := int32(0)
	for {
		b := iter.Next()
		if b == Done {
			break
		}
		if b <= prev {
			tb.Fatalf("boundary %d not after %d in %q", b, prev, text)
		}
		out = append(out, text[prev:b])
		prev = b
	}
	if len(text) > 0 && int(prev) != len(text) {
		tb.Fatalf("final boundary %d, want %d in %q", prev, len(text), text)
	}
	return out
}

// collectLines splits text with the given segmenter and returns the line
// segments and the kind of each break.
func collectLines(tb testing.TB, seg *LineSegmenter, text string) ([]string, []BreakKind) {
	tb.Helper()
	iter := seg.SegmentString(text)
	var out []string
	var kinds []BreakKind
	prev := int32(0)
	for {
		b := iter.Next()
		if b == Done {
			break
		}
		if b <= prev {
			tb.Fatalf("boundary %d not after %d in %q", b, prev, text)
		}
		out = append(out, text[prev:b])
		kinds = append(kinds, iter.BreakKind())
		prev = b
	}
	if len(text) > 0 && int(prev) != len(text) {
		tb.Fatalf("final boundary %d, want %d in %q", prev, len(text), text)
	}
	return out, kinds
}

func TestSentenceIteratorEmpty(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}
	iter := seg.SegmentString("")
	for i := 0; i < 3; i++ {
		if b := iter.Next(); b != Done {
			t.Errorf("call %d: got %d, want Done", i, b)
		}
	}
}

func TestSentenceIteratorExhausted(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}
	iter := seg.SegmentString("One.")
	if b := iter.Next(); b != 4 {
		t.Fatalf("got %d, want 4", b)
	}
	for i := 0; i < 3; i++ {
		if b := iter.Next(); b != Done {
			t.Errorf("call %d after exhaustion: got %d, want Done", i, b)
		}
	}
}

func TestSentenceBoundaries(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"abbreviation", "Mr. Smith went home. He left.", []string{"Mr. Smith went home. ", "He left."}},
		{"multidot", "See e.g. the appendix. Done.", []string{"See e.g. the appendix. ", "Done."}},
		{"terminals", "One! Two?", []string{"One! ", "Two?"}},
		{"lower ahead", "foo. bar", []string{"foo. bar"}},
		{"upper after unknown dot", "End of it. Next one.", []string{"End of it. ", "Next one."}},
		{"crlf", "One.\r\nTwo.", []string{"One.\r\n", "Two."}},
		{"bare newline", "a\r\nb", []string{"a\r\n", "b"}},
		{"closing quote", "“Stop!” He ran.", []string{"“Stop!” ", "He ran."}},
		{"numeric dot", "Version 1.5 shipped.", []string{"Version 1.5 shipped."}},
		{"no terminal", "no terminal at all", []string{"no terminal at all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := collectSentences(t, seg, tt.input)
			if len(segments) != len(tt.expected) {
				t.Fatalf("got %d segments %q, want %q", len(segments), segments, tt.expected)
			}
			for i, s := range segments {
				if s != tt.expected[i] {
					t.Errorf("segment %d: got %q, want %q", i, s, tt.expected[i])
				}
			}
		})
	}
}

func TestSentenceBoundaryOffsets(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}
	iter := seg.SegmentString("Mr. Smith went home. He left.")
	want := []int32{21, 29, Done, Done}
	for i, w := range want {
		if b := iter.Next(); b != w {
			t.Errorf("call %d: got %d, want %d", i, b, w)
		}
	}
}

func TestSentenceUTF16(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	// 日本語。テスト。 in UTF-16 code units.
	text := []uint16{
		0x65E5, 0x672C, 0x8A9E, 0x3002,
		0x30C6, 0x30B9, 0x30C8, 0x3002,
	}
	iter := seg.SegmentUTF16(text)
	want := []int32{4, 8, Done}
	for i, w := range want {
		if b := iter.Next(); b != w {
			t.Errorf("call %d: got %d, want %d", i, b, w)
		}
	}
}

func TestSentenceUTF16Surrogates(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	// "𝒜 b. C" with U+1D49C as a surrogate pair: the boundary offsets
	// count 16-bit units, so the pair counts as two.
	text := []uint16{0xD835, 0xDC9C, ' ', 'b', '.', ' ', 'C'}
	iter := seg.SegmentUTF16(text)
	want := []int32{6, 7, Done}
	for i, w := range want {
		if b := iter.Next(); b != w {
			t.Errorf("call %d: got %d, want %d", i, b, w)
		}
	}
}

func TestSentenceLatin1(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	// "É. Ça va." in Latin-1 bytes. The accented capitals resolve
	// through the property table, not the ASCII fast path.
	text := []byte{0xC9, '.', ' ', 0xC7, 'a', ' ', 'v', 'a', '.'}
	iter := seg.SegmentLatin1(text)
	want := []int32{3, 9, Done}
	for i, w := range want {
		if b := iter.Next(); b != w {
			t.Errorf("call %d: got %d, want %d", i, b, w)
		}
	}
}

func TestSentenceEncodingAgreement(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	// Pure ASCII text decodes identically in all three encodings, so
	// the boundary offsets must agree.
	text := "First one. Second one! A third? Done."
	utf16Text := make([]uint16, len(text))
	for i := 0; i < len(text); i++ {
		utf16Text[i] = uint16(text[i])
	}

	utf8Iter := seg.SegmentString(text)
	latin1Iter := seg.SegmentLatin1([]byte(text))
	utf16Iter := seg.SegmentUTF16(utf16Text)
	for {
		a := utf8Iter.Next()
		b := latin1Iter.Next()
		c := utf16Iter.Next()
		if a != b || a != c {
			t.Fatalf("boundaries diverge: utf8 %d, latin1 %d, utf16 %d", a, b, c)
		}
		if a == Done {
			break
		}
	}
}

func TestLineIteratorEmpty(t *testing.T) {
	seg, err := NewLineSegmenter()
	if err != nil {
		t.Fatal(err)
	}
	iter := seg.Segment(nil)
	for i := 0; i < 3; i++ {
		if b := iter.Next(); b != Done {
			t.Errorf("call %d: got %d, want Done", i, b)
		}
	}
}

func TestLineSegments(t *testing.T) {
	seg, err := NewLineSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "hello world", []string{"hello ", "world"}},
		{"hyphen", "well-known", []string{"well-", "known"}},
		{"numbers", "100.50", []string{"100.50"}},
		{"crlf", "a\r\nb", []string{"a\r\n", "b"}},
		{"parens", "foo bar(baz)", []string{"foo ", "bar(baz)"}},
		{"quotes", "say \"hi\" now", []string{"say ", "\"hi\" ", "now"}},
		{"glue", "a b", []string{"a b"}},
		{"currency", "it costs $50 now", []string{"it ", "costs ", "$50 ", "now"}},
		{"percent", "50% off", []string{"50% ", "off"}},
		{"zwj", "a‍日", []string{"a‍日"}},
		{"flags", "\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7", []string{"\U0001F1E9\U0001F1EA", "\U0001F1EB\U0001F1F7"}},
		{"ideographs", "日本語", []string{"日", "本", "語"}},
		{"em dash pair", "a —— b", []string{"a ", "—— ", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, _ := collectLines(t, seg, tt.input)
			if len(segments) != len(tt.expected) {
				t.Fatalf("got %d segments %q, want %q", len(segments), segments, tt.expected)
			}
			for i, s := range segments {
				if s != tt.expected[i] {
					t.Errorf("segment %d: got %q, want %q", i, s, tt.expected[i])
				}
			}
		})
	}
}

func TestLineBreakKinds(t *testing.T) {
	seg, err := NewLineSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	segments, kinds := collectLines(t, seg, "Line1\nLine2 more")
	wantSegments := []string{"Line1\n", "Line2 ", "more"}
	wantKinds := []BreakKind{LineMustBreak, LineCanBreak, LineMustBreak}
	if len(segments) != len(wantSegments) {
		t.Fatalf("got %q, want %q", segments, wantSegments)
	}
	for i := range segments {
		if segments[i] != wantSegments[i] {
			t.Errorf("segment %d: got %q, want %q", i, segments[i], wantSegments[i])
		}
		if kinds[i] != wantKinds[i] {
			t.Errorf("kind %d: got %v, want %v", i, kinds[i], wantKinds[i])
		}
	}
}

func TestLineStrictness(t *testing.T) {
	// U+30A2 katakana A is ID, U+30A1 small A is CJ: only the strict
	// resolution keeps them together; normal and loose treat the small
	// kana as an ideograph and allow the break.
	text := "アァ"

	normal, err := NewLineSegmenter()
	if err != nil {
		t.Fatal(err)
	}
	segments, _ := collectLines(t, normal, text)
	if len(segments) != 2 {
		t.Errorf("normal: got %q, want two segments", segments)
	}

	loose, err := NewLineSegmenter(WithStrictness(StrictnessLoose))
	if err != nil {
		t.Fatal(err)
	}
	segments, _ = collectLines(t, loose, text)
	if len(segments) != 2 {
		t.Errorf("loose: got %q, want two segments", segments)
	}

	strict, err := NewLineSegmenter(WithStrictness(StrictnessStrict))
	if err != nil {
		t.Fatal(err)
	}
	segments, _ = collectLines(t, strict, text)
	if len(segments) != 1 {
		t.Errorf("strict: got %q, want one segment", segments)
	}
}

func TestLineUTF16(t *testing.T) {
	seg, err := NewLineSegmenter()
	if err != nil {
		t.Fatal(err)
	}
	iter := seg.SegmentUTF16([]uint16{'a', 'b', ' ', 'c', 'd'})
	want := []int32{3, 5, Done}
	for i, w := range want {
		if b := iter.Next(); b != w {
			t.Errorf("call %d: got %d, want %d", i, b, w)
		}
	}
	if k := iter.BreakKind(); k != LineMustBreak {
		t.Errorf("final kind: got %v, want LineMustBreak", k)
	}
}

func TestLineLatin1(t *testing.T) {
	seg, err := NewLineSegmenter()
	if err != nil {
		t.Fatal(err)
	}

	// 0xA0 is a no-break space in Latin-1, 0xAD a soft hyphen.
	text := []byte{'a', 0xA0, 'b', ' ', 'c', 0xAD, 'd'}
	iter := seg.SegmentLatin1(text)
	want := []int32{4, 6, 7, Done}
	for i, w := range want {
		if b := iter.Next(); b != w {
			t.Errorf("call %d: got %d, want %d", i, b, w)
		}
	}
}
