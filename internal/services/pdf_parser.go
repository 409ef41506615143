package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

type ExtractionFailure string

const (
	FailureNone            ExtractionFailure = ""
	FailureParseError      ExtractionFailure = "parse_error"
	FailureEmptyText       ExtractionFailure = "empty_text"
	FailureUnsupportedType ExtractionFailure = "unsupported_type"
)

// ExtractionResult carries extracted text or the reason nothing usable came out.
type ExtractionResult struct {
	Text    string
	Pages   int
	Failure ExtractionFailure
	Err     error
}

func (r ExtractionResult) OK() bool {
	return r.Failure == FailureNone
}

type PDFParserService interface {
	ExtractText(data []byte) string
	Extract(data []byte) ExtractionResult
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the concatenated page text, or "" when the document
// cannot be parsed.
func (p *pdfParserService) ExtractText(data []byte) string {
	result := p.Extract(data)
	if result.Failure == FailureParseError {
		log.Printf("⚠️  Error reading PDF: %v\n", result.Err)
		return ""
	}
	return result.Text
}

func (p *pdfParserService) Extract(data []byte) (result ExtractionResult) {
	// the pdf package panics on some malformed streams
	defer func() {
		if r := recover(); r != nil {
			result = ExtractionResult{
				Failure: FailureParseError,
				Err:     fmt.Errorf("pdf parser panic: %v", r),
			}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ExtractionResult{
			Failure: FailureParseError,
			Err:     fmt.Errorf("failed to open PDF: %w", err),
		}
	}

	pages := pageTexts(r)
	text := strings.Join(pages, "")

	result = ExtractionResult{
		Text:  text,
		Pages: len(pages),
	}
	if strings.TrimSpace(text) == "" {
		result.Failure = FailureEmptyText
	}
	return result
}

// pageTexts returns the plain text of every page in order. Pages without a
// content object or whose text cannot be decoded yield "".
func pageTexts(r *pdf.Reader) []string {
	totalPage := r.NumPage()
	texts := make([]string, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Failed to extract text from page %d: %v\n", pageIndex, err)
			continue
		}

		texts[pageIndex-1] = text
	}

	return texts
}

// CleanText trims each line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
