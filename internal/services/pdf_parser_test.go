package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/testutil"
)

func TestPDFParser_Extract_SinglePage(t *testing.T) {
	p := NewPDFParserService()

	result := p.Extract(testutil.BuildPDF("Senior Go developer"))

	require.True(t, result.OK(), "failure: %s %v", result.Failure, result.Err)
	assert.Equal(t, 1, result.Pages)
	assert.Contains(t, result.Text, "Senior Go developer")
}

func TestPDFParser_Extract_ConcatenatesPagesInOrder(t *testing.T) {
	data := testutil.BuildPDF("first page golang", "", "third page kubernetes")
	p := NewPDFParserService()

	result := p.Extract(data)
	require.True(t, result.OK())
	assert.Equal(t, 3, result.Pages)

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	pages := pageTexts(r)
	require.Len(t, pages, 3)
	assert.Empty(t, strings.TrimSpace(pages[1]))
	assert.Equal(t, strings.Join(pages, ""), result.Text)

	first := strings.Index(result.Text, "first page golang")
	third := strings.Index(result.Text, "third page kubernetes")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, third, first)
}

func TestPDFParser_Extract_ImageOnly(t *testing.T) {
	result := NewPDFParserService().Extract(testutil.BuildPDF("", ""))

	assert.Equal(t, FailureEmptyText, result.Failure)
	assert.Equal(t, 2, result.Pages)
	assert.Empty(t, strings.TrimSpace(result.Text))
}

func TestPDFParser_Extract_Corrupt(t *testing.T) {
	inputs := map[string][]byte{
		"not a pdf": []byte("this is definitely not a pdf document, just some plain text bytes that go on for a while to exceed one hundred bytes in total length"),
		"empty":     {},
		"truncated": testutil.BuildPDF("golang")[:60],
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			result := NewPDFParserService().Extract(data)
			assert.Equal(t, FailureParseError, result.Failure)
			assert.Error(t, result.Err)
			assert.Empty(t, result.Text)
		})
	}
}

func TestPDFParser_ExtractText_SoftFailure(t *testing.T) {
	p := NewPDFParserService()

	assert.Equal(t, "", p.ExtractText([]byte("garbage")))
	assert.Contains(t, p.ExtractText(testutil.BuildPDF("python services")), "python services")
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n   \n b \n"))
	assert.Equal(t, "", CleanText("   "))
}
