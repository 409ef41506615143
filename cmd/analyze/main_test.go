package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/testutil"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRun_PrintsAnalysis(t *testing.T) {
	resume := writeFile(t, "resume.txt", []byte("I built python services"))
	jd := writeFile(t, "jd.txt", []byte("We need a python developer with kubernetes experience"))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-resume", resume, "-jd", jd, "-company", "Acme"}, &out))

	var body struct {
		Score       float64  `json:"score"`
		Missing     []string `json:"missing"`
		CompanyName string   `json:"company_name"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, 17.08, body.Score)
	assert.Equal(t, []string{"developer", "kubernetes", "need"}, body.Missing)
	assert.Equal(t, "Acme", body.CompanyName)
}

func TestRun_DocxResume(t *testing.T) {
	resume := writeFile(t, "resume.docx", testutil.BuildDOCX("Python engineer", "Kubernetes operator"))
	jd := writeFile(t, "jd.txt", []byte("python kubernetes"))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-resume", resume, "-jd", jd}, &out))
	assert.Contains(t, out.String(), `"missing": []`)
	assert.Contains(t, out.String(), "Kubernetes operator")
}

func TestRun_Errors(t *testing.T) {
	jd := writeFile(t, "jd.txt", []byte("golang"))
	blankJD := writeFile(t, "blank.txt", []byte("  "))
	imageOnly := writeFile(t, "scan.pdf", testutil.BuildPDF(""))
	resume := writeFile(t, "resume.txt", []byte("golang"))

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "missing flags", args: []string{"-resume", resume}},
		{name: "missing resume file", args: []string{"-resume", filepath.Join(t.TempDir(), "nope.pdf"), "-jd", jd}, is: os.ErrNotExist},
		{name: "blank job description", args: []string{"-resume", resume, "-jd", blankJD}},
		{name: "no extractable text", args: []string{"-resume", imageOnly, "-jd", jd}, is: services.ErrNoExtractableText},
		{name: "unknown suggestion", args: []string{"-resume", resume, "-jd", jd, "-suggest", "haiku"}, is: services.ErrUnknownSuggestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.args, &out)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.Empty(t, out.String())
		})
	}
}
