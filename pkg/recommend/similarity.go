package recommend

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Similarity computes lexical overlap between two texts as a Jaccard index
// over their token sets: |intersection| / |union|, in [0,1]. Tokens are
// produced by splitting on whitespace and punctuation, lowercased, with
// single-rune tokens dropped. Empty input on either side scores 0.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// tokenSet splits text on whitespace and punctuation, lowercases and keeps
// tokens longer than one rune
func tokenSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})

	set := make(map[string]struct{}, len(fields))
	for _, token := range fields {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}
