package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSentenceSegmenterDefaults(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	require.NoError(t, err)
	require.NotNil(t, seg)
	assert.NotEmpty(t, seg.suppressions, "default locale should carry suppressions")
}

func TestNewSentenceSegmenterLocale(t *testing.T) {
	// Data resolves by base language: a full tag with region and the
	// bare language must build the same suppression list.
	full, err := NewSentenceSegmenter(WithSentenceLocale("de-CH"))
	require.NoError(t, err)
	base, err := NewSentenceSegmenter(WithSentenceLocale("de"))
	require.NoError(t, err)
	assert.Equal(t, base.suppressions, full.suppressions)
}

func TestNewSentenceSegmenterBadLocale(t *testing.T) {
	_, err := NewSentenceSegmenter(WithSentenceLocale("not a locale!"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewSentenceSegmenterUnknownSubtag(t *testing.T) {
	// A well-formed base subtag outside the registry is not a
	// configuration error: custom providers may carry data for it. The
	// compiled data simply has none.
	seg, err := NewSentenceSegmenter(WithSentenceLocale("xx"))
	require.NoError(t, err)
	assert.Empty(t, seg.suppressions)
}

func TestBaseLocale(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"en", "en"},
		{"de-CH", "de"},
		{"en_US", "en"},
		{"und", "und"},
		{"und-Latn-US", "und"},
		{"xx", "xx"},
		{"XX-wwww", "xx"},
	}
	for _, tt := range tests {
		got, err := baseLocale(tt.tag)
		require.NoError(t, err, tt.tag)
		assert.Equal(t, tt.want, got, tt.tag)
	}

	_, err := baseLocale("not a locale!")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewSentenceSegmenterRootLocale(t *testing.T) {
	// The root locale has no suppressions, so "Mr." terminates a
	// sentence.
	seg, err := NewSentenceSegmenter(WithSentenceLocale("und"))
	require.NoError(t, err)

	segments := collectSentences(t, seg, "Mr. Smith went home. He left.")
	require.Len(t, segments, 3)
	assert.Equal(t, "Mr. ", segments[0])
}

func TestNewLineSegmenterStrictness(t *testing.T) {
	for _, s := range []Strictness{StrictnessNormal, StrictnessLoose, StrictnessStrict} {
		_, err := NewLineSegmenter(WithStrictness(s))
		assert.NoError(t, err, s.String())
	}

	_, err := NewLineSegmenter(WithStrictness(StrictnessAnywhere))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewLineSegmenter(WithStrictness(Strictness(42)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestStrictnessString(t *testing.T) {
	assert.Equal(t, "normal", StrictnessNormal.String())
	assert.Equal(t, "loose", StrictnessLoose.String())
	assert.Equal(t, "strict", StrictnessStrict.String())
	assert.Equal(t, "anywhere", StrictnessAnywhere.String())
	assert.Equal(t, "strictness(42)", Strictness(42).String())
}

func TestSegmenterConcurrentUse(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	require.NoError(t, err)

	text := "First one. Second one! Mr. Smith agrees."
	boundaries := func() []int32 {
		var out []int32
		iter := seg.SegmentString(text)
		for b := iter.Next(); b != Done; b = iter.Next() {
			out = append(out, b)
		}
		return out
	}
	want := boundaries()

	done := make(chan []int32)
	for i := 0; i < 8; i++ {
		go func() {
			done <- boundaries()
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}

func TestMatchSuppression(t *testing.T) {
	list := []string{"Dr", "Mr", "e.g"}
	assert.True(t, matchSuppression(list, []rune("Mr")))
	assert.True(t, matchSuppression(list, []rune("e.g")))
	assert.False(t, matchSuppression(list, []rune("Mrs")))
	assert.False(t, matchSuppression(list, []rune("")))
	assert.False(t, matchSuppression(nil, []rune("Mr")))
}

func TestPrefixSuppression(t *testing.T) {
	list := []string{"Dr", "Mr", "e.g"}
	assert.True(t, prefixSuppression(list, []rune("e.")))
	assert.True(t, prefixSuppression(list, []rune("M")))
	assert.False(t, prefixSuppression(list, []rune("e.g")), "exact match is not a proper prefix")
	assert.False(t, prefixSuppression(list, []rune("x")))
}
