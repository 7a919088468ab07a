package sitemap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var segmentSeparators = strings.NewReplacer("-", " ", "_", " ")

// Name derives a human-readable display name from a raw path segment:
// the extension (everything from the last dot) is dropped, dashes and
// underscores become spaces, and each word is title-cased. Total over
// any input, including empty strings and segments without extensions.
func Name(pathName string) string {
	if i := strings.LastIndex(pathName, "."); i >= 0 {
		pathName = pathName[:i]
	}
	return titleCase(segmentSeparators.Replace(pathName))
}

// titleCase upper-cases the first rune of each space-delimited word and
// lower-cases the rest. Consecutive separators are preserved as-is.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
