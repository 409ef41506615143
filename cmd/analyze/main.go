// Command analyze scores a local resume file against a job description file
// and prints the same JSON body the HTTP API returns.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/textanalysis"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("❌ %v", err)
	}
}

type options struct {
	resumePath string
	jdPath     string
	company    string
	suggest    string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.resumePath, "resume", "", "path to the resume (.pdf, .docx or .txt)")
	fs.StringVar(&opts.jdPath, "jd", "", "path to a text file holding the job description")
	fs.StringVar(&opts.company, "company", "", "company name")
	fs.StringVar(&opts.suggest, "suggest", "", "also ask Gemini for a suggestion: improvements or cover_letter")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.resumePath == "" || opts.jdPath == "" {
		fs.Usage()
		return nil, errors.New("both -resume and -jd are required")
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	resume, err := os.ReadFile(opts.resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jd, err := os.ReadFile(opts.jdPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	jobDescription := string(jd)
	if strings.TrimSpace(jobDescription) == "" {
		return errors.New("job description file is empty")
	}

	cfg := config.FromEnv()

	stopWords := textanalysis.DefaultStopWords().With(cfg.Analyzer.ExtraStopWords...)
	analyzerService := services.NewAnalyzerService(
		textanalysis.NewAnalyzer(stopWords),
		services.NewDocumentParserService(services.NewPDFParserService()),
		nil,
		nil,
	)

	upload := &services.Upload{
		Filename: filepath.Base(opts.resumePath),
		Data:     resume,
	}

	response, err := analyzerService.AnalyzeDocument(upload, jobDescription, opts.company)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", upload.Filename, err)
	}

	var output any = response
	if opts.suggest != "" {
		suggestion, err := suggest(cfg, opts.suggest, response)
		if err != nil {
			return err
		}
		output = struct {
			*models.AnalyzeResponse
			Suggestion string `json:"suggestion"`
		}{response, suggestion}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func suggest(cfg *config.Config, kind string, response *models.AnalyzeResponse) (string, error) {
	var gemini services.GeminiService
	if cfg.Gemini.APIKey != "" {
		var err error
		gemini, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.RetryInitialDelay)
		if err != nil {
			return "", fmt.Errorf("failed to initialize Gemini: %w", err)
		}
	}

	return services.NewSuggestionService(gemini, cfg.Gemini.RetryMaxAttempts).Suggest(
		context.Background(),
		kind,
		response.ResumeText,
		response.JobDescription,
		response.CompanyName,
		response.Missing,
	)
}
