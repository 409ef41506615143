package textanalysis

import "strings"

// asciiPunctuation is the set of characters removed before tokenizing.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationStripper = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, len(asciiPunctuation)*2)
	for _, r := range asciiPunctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}

// Normalizer cleans raw text into space-separated content words.
type Normalizer struct {
	stopWords StopWords
}

func NewNormalizer(stopWords StopWords) *Normalizer {
	return &Normalizer{stopWords: stopWords}
}

// Normalize lowercases text, strips punctuation, splits on whitespace,
// drops stop words and joins the survivors with single spaces.
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	text = punctuationStripper.Replace(text)

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, token := range tokens {
		if n.stopWords.Contains(token) {
			continue
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " ")
}

// TokenSet returns the unique whitespace-separated words of cleaned text.
func TokenSet(cleaned string) map[string]struct{} {
	tokens := strings.Fields(cleaned)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
