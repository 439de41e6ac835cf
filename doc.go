/*
Package segmenter implements Unicode sentence and line boundary analysis
over byte-oriented (Latin-1), UTF-8, and UTF-16 text.

This package conforms to:
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for
    sentence segmentation
  - Unicode Standard Annex #14 (https://unicode.org/reports/tr14/) for
    line breaking

# Overview

A segmenter is built once from configuration and then spawns any number of
independent iterators over text views:

	seg, err := segmenter.NewSentenceSegmenter()
	if err != nil {
		// configuration or rule data problem
	}
	iter := seg.SegmentString("Mr. Smith went home. He left.")
	for pos := iter.Next(); pos != segmenter.Done; pos = iter.Next() {
		// pos is the end of a sentence, in bytes
	}

Iterators report boundary positions in the text view's native unit: bytes
for Latin-1 and UTF-8 views, 16-bit code units for UTF-16 views. Positions
are strictly increasing; the final boundary of a non-empty view is always
the view's length. An exhausted iterator keeps returning [Done].

# Sentence boundaries

Sentence boundaries follow the UAX #29 rules, tailored with per-locale
abbreviation suppressions in the manner of CLDR. With the default English
tailoring, "Mr. Smith went home." is one sentence; with the untailored
root locale ("und") a boundary would be detected after "Mr. ".

Use [NewSentenceSegmenter] and [WithSentenceLocale].

# Line breaking

Line breaking distinguishes positions where a break is allowed (between
words, after hyphens) from positions where it is mandatory (after
newlines). Iterators report every opportunity; the iterator's BreakKind
method tells the two apart. Strictness configuration controls the
treatment of conditional Japanese starters (small kana).

Use [NewLineSegmenter], [WithStrictness], and the Segment methods.

# Concurrency

Segmenters are immutable after construction and safe for concurrent use.
Each iterator is a single-goroutine object; create one per traversal.

# Rule data

The property tables in this package are generated from the Unicode
Character Database (see gen_properties.go). Locale tailorings come from a
[DataProvider]: compiled-in data by default, or a directory of JSON files
via [NewFSProvider].
*/
package segmenter
