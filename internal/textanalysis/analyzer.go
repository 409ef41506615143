// Package textanalysis scores how well a resume matches a job description
// using TF-IDF over the two documents and lists the important job
// description terms the resume does not mention.
//
// Every call builds its vocabulary from scratch; nothing is shared between
// calls, so an Analyzer is safe for concurrent use.
package textanalysis

// Result is the outcome of comparing a resume with a job description.
type Result struct {
	Score           float64  `json:"score"`
	MissingKeywords []string `json:"missing"`
}

// Analyzer runs the normalize, vectorize, score and rank pipeline.
type Analyzer struct {
	normalizer *Normalizer
}

func NewAnalyzer(stopWords StopWords) *Analyzer {
	return &Analyzer{normalizer: NewNormalizer(stopWords)}
}

// Normalizer exposes the normalizer the analyzer cleans text with.
func (a *Analyzer) Normalizer() *Normalizer {
	return a.normalizer
}

// Analyze compares raw resume text with raw job description text. When
// either document is empty after cleaning, or neither holds a term of two
// or more characters, the result is a zero score and no keywords.
func (a *Analyzer) Analyze(resumeText, jobDescriptionText string) Result {
	cleanedResume := a.normalizer.Normalize(resumeText)
	cleanedJD := a.normalizer.Normalize(jobDescriptionText)

	if cleanedResume == "" || cleanedJD == "" {
		return emptyResult()
	}

	vectors := Vectorize(cleanedResume, cleanedJD)
	if len(vectors.Vocabulary) == 0 {
		return emptyResult()
	}

	similarity := CosineSimilarity(vectors.Resume, vectors.JobDescription)
	missing := RankMissingKeywords(vectors.Vocabulary, vectors.JobDescription, TokenSet(cleanedResume))

	return Result{
		Score:           MatchScore(similarity),
		MissingKeywords: Terms(missing),
	}
}

func emptyResult() Result {
	return Result{Score: 0, MissingKeywords: []string{}}
}
