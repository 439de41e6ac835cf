//go:build generate

// This program rebuilds the property tables for sentence and line
// segmentation from the Unicode Character Database: sentenceproperties.go
// from SentenceBreakProperty.txt and lineproperties.go from LineBreak.txt,
// UnicodeData.txt (general categories), and EastAsianWidth.txt. Its output
// covers the full UCD repertoire and replaces the curated extracts shipped
// in those files; the ranges resolved by the classifier fast paths are cut
// from the emitted tables.
//
//go:generate go run gen_properties.go

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	ucdVersion     = "15.0.0"
	sentenceURL    = `https://www.unicode.org/Public/` + ucdVersion + `/ucd/auxiliary/SentenceBreakProperty.txt`
	lineBreakURL   = `https://www.unicode.org/Public/` + ucdVersion + `/ucd/LineBreak.txt`
	unicodeDataURL = `https://www.unicode.org/Public/` + ucdVersion + `/ucd/UnicodeData.txt`
	eastAsianURL   = `https://www.unicode.org/Public/` + ucdVersion + `/ucd/EastAsianWidth.txt`
)

// The regular expression for a line assigning a property to a code point
// or a range of code points.
var propertyPattern = regexp.MustCompile(`^([0-9A-F]{4,6})(\.\.([0-9A-F]{4,6}))?\s*;\s*([A-Za-z0-9_]+)\s*#\s*(.+)$`)

// A propRange is one table entry before rendering.
type propRange struct {
	from, to int
	value    string
	genCat   string
	comment  string
}

// An interval is a code point range the classifiers resolve without a
// table lookup. The generator cuts these out of the emitted tables so
// the fast paths stay authoritative.
type interval struct {
	from, to int
}

var (
	asciiFastPath  = []interval{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}}
	hangulFastPath = []interval{{0xAC00, 0xD7A3}}
)

// subtract removes the cut intervals from the ranges, splitting ranges
// that straddle an interval boundary.
func subtract(ranges []propRange, cuts []interval) []propRange {
	var out []propRange
	for _, p := range ranges {
		parts := []propRange{p}
		for _, c := range cuts {
			var kept []propRange
			for _, q := range parts {
				if q.to < c.from || q.from > c.to {
					kept = append(kept, q)
					continue
				}
				if q.from < c.from {
					left := q
					left.to = c.from - 1
					kept = append(kept, left)
				}
				if q.to > c.to {
					right := q
					right.from = c.to + 1
					kept = append(kept, right)
				}
			}
			parts = kept
		}
		out = append(out, parts...)
	}
	return out
}

func main() {
	log.SetPrefix("gen_properties: ")
	log.SetFlags(0)

	if err := genSentence(); err != nil {
		log.Fatal(err)
	}
	if err := genLine(); err != nil {
		log.Fatal(err)
	}
}

func genSentence() (err error) {
	ranges, err := parseProperties(sentenceURL, translateSentenceValue)
	if err != nil {
		return err
	}
	ranges = subtract(ranges, asciiFastPath)

	var buf bytes.Buffer
	buf.WriteString(`// Code generated by gen_properties.go; DO NOT EDIT.

package segmenter

// sentenceBreakCodePoints are taken from
// ` + sentenceURL + `.
// The table is sorted by code point ranges for binary search. Code points
// absent from the table carry the default property prAny. ASCII letters and
// digits are resolved by the fast paths in propertySentence and do not
// appear here.
var sentenceBreakCodePoints = [][3]int{
`)
	for _, p := range ranges {
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, %s}, // %s\n", p.from, p.to, p.value, p.comment)
	}
	buf.WriteString("}\n")

	return writeFormatted("sentenceproperties.go", buf.Bytes())
}

func genLine() (err error) {
	genCats, err := parseGeneralCategories()
	if err != nil {
		return err
	}

	ranges, err := parseProperties(lineBreakURL, translateLineValue)
	if err != nil {
		return err
	}
	ranges = subtract(ranges, append(append([]interval(nil), asciiFastPath...), hangulFastPath...))
	for i := range ranges {
		ranges[i].genCat = genCats.lookup(ranges[i].from)
	}

	widths, err := parseProperties(eastAsianURL, translateEastAsianValue)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(`// Code generated by gen_properties.go; DO NOT EDIT.

package segmenter

// lineBreakCodePoints are taken from
// ` + lineBreakURL + `
// and the UnicodeData.txt general categories. Entries are
// [start, end, property, generalCategory], sorted for binary search.
// Code points absent from the table carry the default property prAny,
// which LB1 resolves to AL. ASCII letters, digits, and the precomposed
// Hangul syllables are resolved by the fast paths in propertyLineBreak
// and do not appear here.
var lineBreakCodePoints = [][4]int{
`)
	for _, p := range ranges {
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, %s, %s}, // %s\n", p.from, p.to, p.value, p.genCat, p.comment)
	}
	buf.WriteString(`}

// eastAsianWidth lists the Wide, Fullwidth, and Halfwidth ranges from
// ` + eastAsianURL + `.
// Everything else is treated as neutral by propertyEastAsianWidth.
var eastAsianWidth = [][3]int{
`)
	for _, p := range widths {
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, %s}, // %s\n", p.from, p.to, p.value, p.comment)
	}
	buf.WriteString("}\n")

	return writeFormatted("lineproperties.go", buf.Bytes())
}

// parseProperties downloads a UCD property file and returns its ranges,
// merged where adjacent ranges share a value and sorted by code point.
// The translate function maps a UCD value to a Go constant, or "" to drop
// the range.
func parseProperties(url string, translate func(string) string) ([]propRange, error) {
	body, err := fetch(url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var ranges []propRange
	scanner := bufio.NewScanner(body)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := propertyPattern.FindStringSubmatch(line)
		if fields == nil {
			continue
		}
		from, err := strconv.ParseInt(fields[1], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", num, err)
		}
		to := from
		if fields[3] != "" {
			if to, err = strconv.ParseInt(fields[3], 16, 64); err != nil {
				return nil, fmt.Errorf("line %d: %v", num, err)
			}
		}
		value := translate(fields[4])
		if value == "" {
			continue
		}
		ranges = append(ranges, propRange{
			from:    int(from),
			to:      int(to),
			value:   value,
			comment: fields[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Avoid overflow during binary search.
	if len(ranges) >= 1<<31 {
		return nil, errors.New("too many properties")
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].from < ranges[j].from
	})

	// Merge adjacent ranges with the same value.
	merged := ranges[:0]
	for _, p := range ranges {
		if n := len(merged); n > 0 && merged[n-1].to+1 == p.from && merged[n-1].value == p.value {
			merged[n-1].to = p.to
			continue
		}
		merged = append(merged, p)
	}
	return merged, nil
}

// genCatTable maps code points to general category constants.
type genCatTable []propRange

func (t genCatTable) lookup(cp int) string {
	i := sort.Search(len(t), func(i int) bool { return t[i].to >= cp })
	if i < len(t) && t[i].from <= cp {
		return t[i].value
	}
	return "gcNone"
}

// parseGeneralCategories reads UnicodeData.txt, whose format differs from
// the property files: one code point per line, ranges marked by paired
// "First"/"Last" entries, general category in the third field.
func parseGeneralCategories() (genCatTable, error) {
	body, err := fetch(unicodeDataURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var table genCatTable
	scanner := bufio.NewScanner(body)
	rangeStart := -1
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ";")
		if len(fields) < 3 {
			continue
		}
		cp, err := strconv.ParseInt(fields[0], 16, 64)
		if err != nil {
			return nil, err
		}
		value := translateGeneralCategory(fields[2])
		if strings.HasSuffix(fields[1], "First>") {
			rangeStart = int(cp)
			continue
		}
		from := int(cp)
		if rangeStart >= 0 {
			from = rangeStart
			rangeStart = -1
		}
		if n := len(table); n > 0 && table[n-1].to+1 == from && table[n-1].value == value {
			table[n-1].to = int(cp)
			continue
		}
		table = append(table, propRange{from: from, to: int(cp), value: value})
	}
	return table, scanner.Err()
}

func fetch(url string) (io.ReadCloser, error) {
	log.Printf("Parsing %s", url)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("%s: %s", url, res.Status)
	}
	return res.Body, nil
}

func writeFormatted(name string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("gofmt: %v", err)
	}
	log.Printf("Writing to %s", name)
	return os.WriteFile(name, formatted, 0644)
}

// translateSentenceValue translates a Sentence_Break value to a Go
// constant. XX carries the default property and is not emitted; the
// ASCII fast-path ranges are cut out separately.
func translateSentenceValue(value string) string {
	switch value {
	case "CR":
		return "prCR"
	case "LF":
		return "prLF"
	case "Sep":
		return "prSep"
	case "Sp":
		return "prSp"
	case "ATerm":
		return "prATerm"
	case "STerm":
		return "prSTerm"
	case "Close":
		return "prClose"
	case "SContinue":
		return "prSContinue"
	case "Numeric":
		return "prNumeric"
	case "Upper":
		return "prUpper"
	case "Lower":
		return "prLower"
	case "OLetter":
		return "prOLetter"
	case "Extend":
		return "prExtend"
	case "Format":
		return "prFormat"
	default:
		return ""
	}
}

// translateLineValue translates a Line_Break value to a Go constant. XX
// carries the default property and is not emitted.
func translateLineValue(value string) string {
	switch value {
	case "XX":
		return ""
	case "BK", "CR", "LF", "NL", "SP", "ZW", "ZWJ", "WJ", "GL", "CM",
		"BA", "BB", "HY", "CL", "CP", "EX", "IS", "SY", "OP", "QU",
		"NS", "CJ", "AL", "HL", "NU", "PR", "PO", "ID", "EB", "EM",
		"IN", "CB", "B2", "RI", "JL", "JV", "JT", "H2", "H3", "SA",
		"AI", "SG":
		return "pr" + value
	default:
		return ""
	}
}

// translateEastAsianValue translates an East_Asian_Width value to a Go
// constant. Only the wide, fullwidth, and halfwidth classes are tabled.
func translateEastAsianValue(value string) string {
	switch value {
	case "W":
		return "prEAW"
	case "F":
		return "prEAF"
	case "H":
		return "prEAH"
	default:
		return ""
	}
}

// translateGeneralCategory translates a General_Category value to a Go
// constant.
func translateGeneralCategory(value string) string {
	switch value {
	case "Lu", "Ll", "Lo", "Lm", "Nd", "Pi", "Pf", "Ps", "Pe", "Po",
		"Pd", "Pc", "Sc", "Sm", "Sk", "So", "No", "Mn", "Mc", "Zs",
		"Zl", "Zp", "Cc", "Cf", "Cn":
		return "gc" + value
	default:
		return "gcNone"
	}
}
