package segmenter

import "sort"

// Sentence break suppressions per locale, derived from the CLDR segments
// data. A suppression names an abbreviation whose trailing full stop must
// not terminate a sentence. Entries are stored without the final dot;
// interior dots remain ("e.g", "i.e"). Each list is sorted for binary
// search. The root locale has no suppressions.
var sentenceSuppressions = map[string][]string{
	"de": {
		"Abs", "Abt", "Apr", "Aug", "Bd", "Dez", "Dr", "Feb", "Fr",
		"Frl", "Hr", "Hrn", "Jan", "Jr", "Jul", "Jun", "Mrz", "Nov",
		"Nr", "Okt", "Prof", "Sep", "St", "Str", "bzw", "bspw", "ca",
		"d.h", "evtl", "geb", "gem", "ggf", "inkl", "max", "min",
		"u.a", "usw", "z.B", "zzgl",
	},
	"en": {
		"Adm", "Apr", "Aug", "Ave", "Blvd", "Capt", "Col", "Dec",
		"Dept", "Dr", "Feb", "Fig", "Gen", "Gov", "Hon", "Jan", "Jr",
		"Jul", "Jun", "Lt", "Ltd", "Maj", "Mar", "Messrs", "Mr",
		"Mrs", "Ms", "Mt", "Nov", "Oct", "Prof", "Rep", "Rev", "Sen",
		"Sep", "Sept", "Sgt", "Sr", "St", "approx", "dept", "e.g",
		"est", "etc", "i.e", "vs",
	},
	"es": {
		"Av", "Avda", "Dr", "Dra", "Gral", "Ing", "Lic", "Sr", "Sra",
		"Srta", "Sta", "Sto", "aprox", "dna", "etc", "p.ej", "ud",
		"uds",
	},
	"fr": {
		"A.C.N", "M", "MM", "Mgr", "Mlle", "Mme", "P.S", "art", "av",
		"etc", "ex", "fig", "hab", "masc", "p.ex", "vol",
	},
	"it": {
		"Avv", "Dott", "Dr", "Geom", "Ing", "N.B", "Prof", "Rag",
		"Sig", "ecc", "es", "pag", "tel",
	},
	"pt": {
		"Av", "Dr", "Dra", "Eng", "Ltda", "Sr", "Sra", "Srta", "etc",
		"pág", "p.ex",
	},
}

func init() {
	for _, list := range sentenceSuppressions {
		sort.Strings(list)
	}
}

// matchSuppression reports whether word, the token accumulated before an
// ambiguous full stop, is a known abbreviation. The match is exact and
// case sensitive, as in the CLDR data.
func matchSuppression(list []string, word []rune) bool {
	if len(list) == 0 || len(word) == 0 {
		return false
	}
	w := string(word)
	i := sort.SearchStrings(list, w)
	return i < len(list) && list[i] == w
}

// prefixSuppression reports whether word is a proper prefix of some
// suppression, so the token must keep accumulating across an interior
// dot ("e" and "e.g" on the way to "e.g.").
func prefixSuppression(list []string, word []rune) bool {
	if len(list) == 0 || len(word) == 0 {
		return false
	}
	w := string(word)
	i := sort.SearchStrings(list, w)
	return i < len(list) && len(list[i]) > len(w) && list[i][:len(w)] == w
}
