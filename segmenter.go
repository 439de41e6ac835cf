package segmenter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

var (
	// ErrDataMissing is returned by the segmenter factories when the
	// configured data provider has no data for the requested locale, or
	// when loading it fails.
	ErrDataMissing = errors.New("segmentation data missing")

	// ErrInvalidConfiguration is returned by the segmenter factories
	// when an option carries a value the engine does not support, such
	// as a malformed locale tag or an unknown strictness.
	ErrInvalidConfiguration = errors.New("invalid segmenter configuration")
)

// Strictness selects how the line segmenter resolves the conditional
// line break classes, following the CSS line-break property.
type Strictness int

const (
	// StrictnessNormal applies the default resolution: conditional
	// Japanese starters (small kana, the prolonged sound mark) are
	// treated as ideographs, so breaks before them are allowed.
	StrictnessNormal Strictness = iota
	// StrictnessLoose permits breaks before small kana, for narrow
	// columns. It coincides with StrictnessNormal for the rules this
	// engine implements.
	StrictnessLoose
	// StrictnessStrict keeps conditional Japanese starters
	// non-breaking: CJ resolves to NS.
	StrictnessStrict
	// StrictnessAnywhere would allow a break between every pair of
	// characters. The rule-based engine does not support it; the line
	// segmenter factory rejects it with ErrInvalidConfiguration.
	StrictnessAnywhere
)

func (s Strictness) String() string {
	switch s {
	case StrictnessNormal:
		return "normal"
	case StrictnessLoose:
		return "loose"
	case StrictnessStrict:
		return "strict"
	case StrictnessAnywhere:
		return "anywhere"
	default:
		return fmt.Sprintf("strictness(%d)", int(s))
	}
}

// DefaultLocale is the locale a sentence segmenter is built for when no
// WithSentenceLocale option is given.
const DefaultLocale = "en"

type sentenceConfig struct {
	locale   string
	provider DataProvider
}

// A SentenceOption configures a sentence segmenter.
type SentenceOption func(*sentenceConfig)

// WithSentenceLocale selects the locale whose tailoring the sentence
// segmenter applies. The tag is parsed as BCP 47; data is resolved by
// its base language.
func WithSentenceLocale(tag string) SentenceOption {
	return func(cfg *sentenceConfig) {
		cfg.locale = tag
	}
}

// WithSentenceProvider selects the data provider the factory loads
// locale tailoring from, replacing the compiled-in data.
func WithSentenceProvider(p DataProvider) SentenceOption {
	return func(cfg *sentenceConfig) {
		cfg.provider = p
	}
}

// baseLocale validates a BCP 47 tag and reduces it to the base language
// subtag tailoring data is keyed by. Well-formed subtags absent from the
// registry pass through as given, since a custom provider may carry data
// for them; only malformed tags are rejected. No likely-subtag inference
// is applied, so "und" stays the untailored root instead of resolving to
// English.
func baseLocale(tag string) (string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return "", fmt.Errorf("%w: locale %q: %v", ErrInvalidConfiguration, tag, err)
		}
		return primarySubtag(tag), nil
	}
	base, _, _ := parsed.Raw()
	return base.String(), nil
}

// primarySubtag returns the lowercased primary language subtag.
func primarySubtag(tag string) string {
	for i := 0; i < len(tag); i++ {
		if tag[i] == '-' || tag[i] == '_' {
			tag = tag[:i]
			break
		}
	}
	return strings.ToLower(tag)
}

// A SentenceSegmenter segments text into sentences following UAX #29,
// tailored with the suppression list of its locale. It is immutable
// after construction and safe for concurrent use; each Segment call
// returns an independent iterator.
type SentenceSegmenter struct {
	suppressions []string
}

// NewSentenceSegmenter builds a sentence segmenter. Without options it
// uses the compiled-in data for DefaultLocale.
func NewSentenceSegmenter(opts ...SentenceOption) (*SentenceSegmenter, error) {
	cfg := sentenceConfig{
		locale:   DefaultLocale,
		provider: compiledProvider{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	locale, err := baseLocale(cfg.locale)
	if err != nil {
		return nil, err
	}

	data, err := cfg.provider.SentenceData(locale)
	if err != nil {
		return nil, err
	}

	seg := &SentenceSegmenter{
		suppressions: append([]string(nil), data.Suppressions...),
	}
	sort.Strings(seg.suppressions)
	return seg, nil
}

// Segment returns an iterator over the sentence boundaries of the given
// UTF-8 text. The iterator reports byte offsets.
func (seg *SentenceSegmenter) Segment(text []byte) *SentenceIterator {
	return &SentenceIterator{newSentenceIter(text, decodeUTF8, seg.suppressions)}
}

// SegmentString returns an iterator over the sentence boundaries of the
// given string. The iterator reports byte offsets.
func (seg *SentenceSegmenter) SegmentString(text string) *SentenceIterator {
	return seg.Segment([]byte(text))
}

// SegmentLatin1 returns an iterator over the sentence boundaries of the
// given Latin-1 text. The iterator reports byte offsets.
func (seg *SentenceSegmenter) SegmentLatin1(text []byte) *SentenceIteratorLatin1 {
	return &SentenceIteratorLatin1{newSentenceIter(text, decodeLatin1, seg.suppressions)}
}

// SegmentUTF16 returns an iterator over the sentence boundaries of the
// given UTF-16 text. The iterator reports offsets in 16-bit code units.
func (seg *SentenceSegmenter) SegmentUTF16(text []uint16) *SentenceIteratorUTF16 {
	return &SentenceIteratorUTF16{newSentenceIter(text, decodeUTF16, seg.suppressions)}
}

type lineConfig struct {
	strictness Strictness
}

// A LineOption configures a line segmenter.
type LineOption func(*lineConfig)

// WithStrictness selects the resolution of the conditional line break
// classes.
func WithStrictness(s Strictness) LineOption {
	return func(cfg *lineConfig) {
		cfg.strictness = s
	}
}

// A LineSegmenter segments text into line break opportunities following
// UAX #14. It is immutable after construction and safe for concurrent
// use; each Segment call returns an independent iterator.
type LineSegmenter struct {
	cjAsNS bool
}

// NewLineSegmenter builds a line segmenter. Without options it uses
// StrictnessNormal.
func NewLineSegmenter(opts ...LineOption) (*LineSegmenter, error) {
	var cfg lineConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.strictness {
	case StrictnessNormal, StrictnessStrict, StrictnessLoose:
	default:
		return nil, fmt.Errorf("%w: strictness %v", ErrInvalidConfiguration, cfg.strictness)
	}

	return &LineSegmenter{cjAsNS: cfg.strictness == StrictnessStrict}, nil
}

// Segment returns an iterator over the line break opportunities of the
// given UTF-8 text. The iterator reports byte offsets.
func (seg *LineSegmenter) Segment(text []byte) *LineIterator {
	return &LineIterator{newLineIter(text, decodeUTF8, seg.cjAsNS)}
}

// SegmentString returns an iterator over the line break opportunities of
// the given string. The iterator reports byte offsets.
func (seg *LineSegmenter) SegmentString(text string) *LineIterator {
	return seg.Segment([]byte(text))
}

// SegmentLatin1 returns an iterator over the line break opportunities of
// the given Latin-1 text. The iterator reports byte offsets.
func (seg *LineSegmenter) SegmentLatin1(text []byte) *LineIteratorLatin1 {
	return &LineIteratorLatin1{newLineIter(text, decodeLatin1, seg.cjAsNS)}
}

// SegmentUTF16 returns an iterator over the line break opportunities of
// the given UTF-16 text. The iterator reports offsets in 16-bit code
// units.
func (seg *LineSegmenter) SegmentUTF16(text []uint16) *LineIteratorUTF16 {
	return &LineIteratorUTF16{newLineIter(text, decodeUTF16, seg.cjAsNS)}
}
