package services

import (
	"strings"
)

// sentimentLexicon assigns a polarity weight to opinion words. Values are on
// a [-1, 1] scale; the score of a comment is the mean weight of its matched
// words, so it stays inside the same range.
var sentimentLexicon = map[string]float64{
	"amazing": 1, "awesome": 1, "excellent": 1, "fantastic": 1, "perfect": 1,
	"love": 0.9, "loved": 0.9, "great": 0.8, "wonderful": 0.8, "best": 0.8,
	"good": 0.6, "nice": 0.6, "helpful": 0.6, "useful": 0.6, "easy": 0.5,
	"fast": 0.5, "smooth": 0.5, "intuitive": 0.5, "like": 0.4, "liked": 0.4,
	"fine": 0.3, "okay": 0.2, "decent": 0.2,

	"terrible": -1, "horrible": -1, "awful": -1, "worst": -1, "useless": -0.9,
	"hate": -0.9, "hated": -0.9, "broken": -0.8, "crash": -0.8, "crashes": -0.8,
	"crashed": -0.8, "unusable": -0.8, "bad": -0.7, "bug": -0.6, "bugs": -0.6,
	"buggy": -0.7, "slow": -0.6, "confusing": -0.6, "annoying": -0.6,
	"frustrating": -0.7, "error": -0.5, "errors": -0.5, "fails": -0.6,
	"failed": -0.6, "difficult": -0.5, "hard": -0.4, "missing": -0.4,
	"poor": -0.6, "disappointing": -0.7, "disappointed": -0.7,
}

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "isn't": {}, "wasn't": {}, "don't": {},
	"doesn't": {}, "didn't": {}, "won't": {}, "can't": {}, "cannot": {},
}

// SentimentScore computes a deterministic polarity in [-1, 1] for one
// comment. A negator directly before an opinion word flips its weight.
// Comments with no lexicon match score 0.
func SentimentScore(comment string) float64 {
	fields := strings.FieldsFunc(strings.ToLower(comment), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && r != '\''
	})

	total := 0.0
	matched := 0
	negated := false

	for _, word := range fields {
		word = strings.Trim(word, "'")
		if _, ok := negators[word]; ok {
			negated = true
			continue
		}

		weight, ok := sentimentLexicon[word]
		if ok {
			if negated {
				weight = -weight
			}
			total += weight
			matched++
		}
		negated = false
	}

	if matched == 0 {
		return 0
	}
	return total / float64(matched)
}
