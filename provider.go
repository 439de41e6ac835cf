package segmenter

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SentenceData holds the locale tailoring consumed by the sentence
// segmenter. Suppressions list abbreviations whose trailing full stop
// does not end a sentence, without the final dot.
type SentenceData struct {
	Suppressions []string `json:"suppressions"`
}

// A DataProvider supplies locale tailoring data to the segmenter
// factories. Locales are passed as their base language subtag ("en",
// "de"). A provider that has no data for a locale returns an error
// wrapping ErrDataMissing.
type DataProvider interface {
	SentenceData(locale string) (*SentenceData, error)
}

// compiledProvider serves the suppression lists compiled into the
// package. It covers every locale: ones without tailored data fall back
// to the root locale, which has no suppressions.
type compiledProvider struct{}

func (compiledProvider) SentenceData(locale string) (*SentenceData, error) {
	list := sentenceSuppressions[locale]
	return &SentenceData{Suppressions: list}, nil
}

// FSProvider loads segmentation data from a directory tree, with one
// JSON file per locale under a per-kind subdirectory:
//
//	<dir>/sentence/en.json
//
// Unlike the compiled data there is no root fallback: a missing or
// unreadable file is reported as ErrDataMissing.
type FSProvider struct {
	root fs.FS
}

// NewFSProvider returns a provider reading from the given directory.
func NewFSProvider(dir string) *FSProvider {
	return &FSProvider{root: os.DirFS(dir)}
}

func (p *FSProvider) SentenceData(locale string) (*SentenceData, error) {
	name := filepath.ToSlash(filepath.Join("sentence", locale+".json"))
	b, err := fs.ReadFile(p.root, name)
	if err != nil {
		return nil, fmt.Errorf("%w: sentence data for locale %q: %v", ErrDataMissing, locale, err)
	}
	var data SentenceData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("%w: sentence data for locale %q: %v", ErrDataMissing, locale, err)
	}
	return &data, nil
}
