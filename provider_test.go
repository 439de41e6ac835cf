package segmenter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSentenceData(t *testing.T, dir, locale, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sentence"), 0755))
	path := filepath.Join(dir, "sentence", locale+".json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFSProvider(t *testing.T) {
	dir := t.TempDir()
	writeSentenceData(t, dir, "xx", `{"suppressions": ["Foo", "Bar"]}`)

	p := NewFSProvider(dir)
	data, err := p.SentenceData("xx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "Bar"}, data.Suppressions)
}

func TestFSProviderMissingLocale(t *testing.T) {
	p := NewFSProvider(t.TempDir())
	_, err := p.SentenceData("xx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataMissing)
}

func TestFSProviderBadJSON(t *testing.T) {
	dir := t.TempDir()
	writeSentenceData(t, dir, "xx", `{"suppressions": [`)

	p := NewFSProvider(dir)
	_, err := p.SentenceData("xx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataMissing)
}

func TestSentenceSegmenterWithFSProvider(t *testing.T) {
	dir := t.TempDir()
	writeSentenceData(t, dir, "xx", `{"suppressions": ["Foo"]}`)
	p := NewFSProvider(dir)

	seg, err := NewSentenceSegmenter(WithSentenceLocale("xx"), WithSentenceProvider(p))
	require.NoError(t, err)

	segments := collectSentences(t, seg, "Foo. Bar stays. Second one.")
	require.Len(t, segments, 2)
	assert.Equal(t, "Foo. Bar stays. ", segments[0])
}

func TestSentenceSegmenterProviderMissingData(t *testing.T) {
	p := NewFSProvider(t.TempDir())
	_, err := NewSentenceSegmenter(WithSentenceLocale("xx"), WithSentenceProvider(p))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataMissing)
}

func TestCompiledProviderRootFallback(t *testing.T) {
	var p compiledProvider
	data, err := p.SentenceData("zz")
	require.NoError(t, err)
	assert.Empty(t, data.Suppressions)

	data, err = p.SentenceData("en")
	require.NoError(t, err)
	assert.NotEmpty(t, data.Suppressions)
}
