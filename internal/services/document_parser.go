package services

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var xmlTagRegex = regexp.MustCompile(`<[^>]*>`)

var docxBreaks = strings.NewReplacer("</w:p>", "\n", "<w:br/>", "\n", "<w:tab/>", " ")

// DocumentParserService turns an uploaded resume of any supported type into text.
type DocumentParserService interface {
	Extract(filename, contentType string, data []byte) ExtractionResult
}

type documentParserService struct {
	pdfParser PDFParserService
}

func NewDocumentParserService(pdfParser PDFParserService) DocumentParserService {
	return &documentParserService{pdfParser: pdfParser}
}

// DetectContentType resolves the resume type from the declared content type,
// falling back to the file extension when the client sent a generic one.
func DetectContentType(filename, contentType string) string {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch contentType {
	case MimePDF, MimeDOCX, MimeText:
		return contentType
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt":
		return MimeText
	}

	return contentType
}

func (d *documentParserService) Extract(filename, contentType string, data []byte) ExtractionResult {
	switch DetectContentType(filename, contentType) {
	case MimePDF:
		return d.pdfParser.Extract(data)
	case MimeDOCX:
		return withEmptyCheck(extractDocxText(data))
	case MimeText:
		return withEmptyCheck(ExtractionResult{Text: string(data), Pages: 1})
	default:
		return ExtractionResult{
			Failure: FailureUnsupportedType,
			Err:     fmt.Errorf("unsupported file type: %s", contentType),
		}
	}
}

func extractDocxText(data []byte) ExtractionResult {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ExtractionResult{
			Failure: FailureParseError,
			Err:     fmt.Errorf("failed to parse docx: %w", err),
		}
	}
	defer doc.Close()

	return ExtractionResult{
		Text:  docxXMLToText(doc.Editable().GetContent()),
		Pages: 1,
	}
}

// docxXMLToText flattens WordprocessingML into plain text, one line per paragraph.
func docxXMLToText(content string) string {
	content = docxBreaks.Replace(content)
	content = xmlTagRegex.ReplaceAllString(content, "")
	return CleanText(html.UnescapeString(content))
}

func withEmptyCheck(r ExtractionResult) ExtractionResult {
	if r.Failure == FailureNone && strings.TrimSpace(r.Text) == "" {
		r.Failure = FailureEmptyText
	}
	return r
}
