package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/textanalysis"
)

var ErrNoExtractableText = errors.New("no extractable text")

// ExtractionError reports why an uploaded resume produced no usable text.
type ExtractionError struct {
	Failure ExtractionFailure
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Failure, e.Err)
	}
	return string(e.Failure)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	if target == ErrUnsupportedFileType {
		return e.Failure == FailureUnsupportedType
	}
	return target == ErrNoExtractableText && e.Failure != FailureUnsupportedType
}

// AnalysisMetrics receives analysis outcomes.
type AnalysisMetrics interface {
	ObserveAnalysis(score float64, missing int)
	ObserveExtractionFailure(reason string)
}

type AnalyzerService interface {
	Analyze(resumeText, jobDescription string) textanalysis.Result
	AnalyzeDocument(upload *Upload, jobDescription, companyName string) (*models.AnalyzeResponse, error)
}

type analyzerService struct {
	analyzer     *textanalysis.Analyzer
	parser       DocumentParserService
	analysisRepo repositories.AnalysisRepository
	metrics      AnalysisMetrics
}

// NewAnalyzerService wires the pipeline. analysisRepo and metrics may be nil.
func NewAnalyzerService(
	analyzer *textanalysis.Analyzer,
	parser DocumentParserService,
	analysisRepo repositories.AnalysisRepository,
	metrics AnalysisMetrics,
) AnalyzerService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &analyzerService{
		analyzer:     analyzer,
		parser:       parser,
		analysisRepo: analysisRepo,
		metrics:      metrics,
	}
}

func (s *analyzerService) Analyze(resumeText, jobDescription string) textanalysis.Result {
	return s.analyzer.Analyze(resumeText, jobDescription)
}

func (s *analyzerService) AnalyzeDocument(upload *Upload, jobDescription, companyName string) (*models.AnalyzeResponse, error) {
	extracted := s.parser.Extract(upload.Filename, upload.ContentType, upload.Data)

	if !extracted.OK() {
		if extracted.Failure == FailureParseError {
			log.Printf("⚠️  Error reading %s: %v\n", upload.Filename, extracted.Err)
		}
		s.metrics.ObserveExtractionFailure(string(extracted.Failure))
		return nil, &ExtractionError{Failure: extracted.Failure, Err: extracted.Err}
	}

	result := s.analyzer.Analyze(extracted.Text, jobDescription)
	s.metrics.ObserveAnalysis(result.Score, len(result.MissingKeywords))

	response := &models.AnalyzeResponse{
		Score:          result.Score,
		Missing:        result.MissingKeywords,
		ResumeText:     extracted.Text,
		JobDescription: jobDescription,
		CompanyName:    companyName,
	}

	if s.analysisRepo != nil {
		record := &models.AnalysisRecord{
			ID:                  uuid.New(),
			CompanyName:         strings.TrimSpace(companyName),
			Score:               result.Score,
			MissingKeywords:     result.MissingKeywords,
			SourceType:          DetectContentType(upload.Filename, upload.ContentType),
			ResumeChars:         len([]rune(extracted.Text)),
			JobDescriptionChars: len([]rune(jobDescription)),
		}
		if err := s.analysisRepo.Create(record); err != nil {
			log.Printf("⚠️  Failed to store analysis history: %v\n", err)
		} else {
			response.ID = record.ID.String()
		}
	}

	return response, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveAnalysis(float64, int)     {}
func (noopMetrics) ObserveExtractionFailure(string) {}
