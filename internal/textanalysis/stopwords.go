package textanalysis

import "strings"

// StopWords is an immutable set of words excluded from analysis.
type StopWords struct {
	words map[string]struct{}
}

var defaultStopWordList = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
	"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers",
	"herself", "it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once", "here",
	"there", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "s", "t", "can", "will", "just", "don", "should", "now",

	// resume and job posting noise
	"job", "description", "resume", "experience", "skills", "duties", "responsibilities",
	"work", "company", "role", "team", "project", "candidate", "requirements", "qualifications",
}

var defaultStopWords = NewStopWords(defaultStopWordList...)

// DefaultStopWords returns the built-in stop-word set.
func DefaultStopWords() StopWords {
	return defaultStopWords
}

// NewStopWords builds a set from the given words. Words are lowercased and
// trimmed; blanks are ignored.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return StopWords{words: set}
}

// With returns a new set holding the receiver's words plus extra.
func (s StopWords) With(extra ...string) StopWords {
	all := make([]string, 0, len(s.words)+len(extra))
	for w := range s.words {
		all = append(all, w)
	}
	all = append(all, extra...)
	return NewStopWords(all...)
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s StopWords) Len() int {
	return len(s.words)
}
