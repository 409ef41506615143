package textanalysis

import "sort"

const (
	// ImportanceThreshold is the weight a job description term must exceed
	// to count as important.
	ImportanceThreshold = 0.1
	// MaxMissingKeywords caps the missing keyword list.
	MaxMissingKeywords = 10
)

// Keyword is a vocabulary term with its job description weight.
type Keyword struct {
	Term   string
	Weight float64
}

// RankMissingKeywords returns up to MaxMissingKeywords job description terms
// whose weight exceeds ImportanceThreshold and which are absent from
// resumeTokens, ordered by weight descending. Equal weights keep vocabulary
// order, which is alphabetical.
func RankMissingKeywords(vocabulary []string, jdWeights []float64, resumeTokens map[string]struct{}) []Keyword {
	candidates := make([]Keyword, 0)
	for i, term := range vocabulary {
		weight := jdWeights[i]
		if weight <= ImportanceThreshold {
			continue
		}
		if _, present := resumeTokens[term]; present {
			continue
		}
		candidates = append(candidates, Keyword{Term: term, Weight: weight})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Weight > candidates[b].Weight
	})

	if len(candidates) > MaxMissingKeywords {
		candidates = candidates[:MaxMissingKeywords]
	}
	return candidates
}

// Terms returns the terms of keywords in order. The result is never nil.
func Terms(keywords []Keyword) []string {
	terms := make([]string, 0, len(keywords))
	for _, k := range keywords {
		terms = append(terms, k.Term)
	}
	return terms
}
