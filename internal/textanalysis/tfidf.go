package textanalysis

import (
	"math"
	"regexp"
	"sort"
	"strconv"
)

// termPattern matches runs of word characters: letters, digits and
// underscore. Combining marks split a run. Runs shorter than two characters
// are not vocabulary terms.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

const minTermLength = 2

// Vectors holds the TF-IDF representation of a two-document corpus.
// Resume and JobDescription are co-indexed with Vocabulary.
type Vectors struct {
	Vocabulary     []string
	Resume         []float64
	JobDescription []float64
}

func extractTerms(cleaned string) []string {
	matches := termPattern.FindAllString(cleaned, -1)
	terms := matches[:0]
	for _, m := range matches {
		if len([]rune(m)) < minTermLength {
			continue
		}
		terms = append(terms, m)
	}
	return terms
}

// Vectorize builds smoothed TF-IDF vectors for resume and job description.
//
// The weight of term t in document d is count(t, d) * (ln((1+n)/(1+df(t))) + 1)
// with n = 2, and each document vector is L2-normalized. The vocabulary is
// the sorted union of both documents' terms and may be empty.
func Vectorize(cleanedResume, cleanedJD string) Vectors {
	docs := [2][]string{extractTerms(cleanedResume), extractTerms(cleanedJD)}

	counts := [2]map[string]int{{}, {}}
	for i, terms := range docs {
		for _, t := range terms {
			counts[i][t]++
		}
	}

	vocabulary := make([]string, 0, len(counts[0])+len(counts[1]))
	seen := make(map[string]struct{}, cap(vocabulary))
	for _, c := range counts {
		for t := range c {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			vocabulary = append(vocabulary, t)
		}
	}
	sort.Strings(vocabulary)

	n := float64(len(docs))
	vectors := [2][]float64{make([]float64, len(vocabulary)), make([]float64, len(vocabulary))}
	for j, term := range vocabulary {
		df := 0
		for _, c := range counts {
			if c[term] > 0 {
				df++
			}
		}
		idf := math.Log((1+n)/(1+float64(df))) + 1
		for i, c := range counts {
			vectors[i][j] = float64(c[term]) * idf
		}
	}

	for _, v := range vectors {
		l2Normalize(v)
	}

	return Vectors{
		Vocabulary:     vocabulary,
		Resume:         vectors[0],
		JobDescription: vectors[1],
	}
}

func l2Normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0
// when either vector is zero.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MatchScore converts a similarity in [0,1] to a percentage rounded to two
// decimals and clamped to [0,100]. Rounding is done on the exact binary
// value of the percentage, so 56.785 (stored just below) becomes 56.78.
func MatchScore(similarity float64) float64 {
	score, err := strconv.ParseFloat(strconv.FormatFloat(similarity*100, 'f', 2, 64), 64)
	if err != nil || math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(100, score))
}
