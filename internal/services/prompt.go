package services

import (
	"fmt"
	"strings"
)

const (
	SuggestionImprovements = "improvements"
	SuggestionCoverLetter  = "cover_letter"
)

// maxPromptDocumentChars bounds how much of each document goes into a prompt.
const maxPromptDocumentChars = 12000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildImprovementsPrompt asks for concrete resume edits covering the missing keywords.
func (pb *PromptBuilder) BuildImprovementsPrompt(resumeText, jobDescription string, missing []string) string {
	return fmt.Sprintf(`You are an experienced technical recruiter reviewing a candidate's resume against a job posting.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

IMPORTANT TERMS FROM THE JOB DESCRIPTION THAT THE RESUME DOES NOT MENTION:
%s

Write 3-5 short, actionable bullet points telling the candidate how to improve the resume for this job.
Only suggest adding a missing term when the resume gives evidence the candidate could honestly claim it.
Return plain text bullets starting with "- ", no preamble.`,
		truncateForPrompt(jobDescription), truncateForPrompt(resumeText), formatKeywords(missing))
}

// BuildCoverLetterPrompt asks for a short cover letter addressed to the company.
func (pb *PromptBuilder) BuildCoverLetterPrompt(resumeText, jobDescription, companyName string, missing []string) string {
	if strings.TrimSpace(companyName) == "" {
		companyName = "the hiring company"
	}

	return fmt.Sprintf(`You are helping a candidate write a cover letter for a position at %s.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

TERMS THE RESUME DOES NOT COVER YET:
%s

Write a cover letter of at most 250 words in a confident, professional tone.
Ground every claim in the resume; do not invent employers, dates or degrees.
Return ONLY the letter text.`,
		companyName, truncateForPrompt(jobDescription), truncateForPrompt(resumeText), formatKeywords(missing))
}

// BuildSuggestionPrompt dispatches on kind. ok is false for unknown kinds.
func (pb *PromptBuilder) BuildSuggestionPrompt(kind, resumeText, jobDescription, companyName string, missing []string) (prompt string, ok bool) {
	switch kind {
	case SuggestionImprovements:
		return pb.BuildImprovementsPrompt(resumeText, jobDescription, missing), true
	case SuggestionCoverLetter:
		return pb.BuildCoverLetterPrompt(resumeText, jobDescription, companyName, missing), true
	default:
		return "", false
	}
}

func formatKeywords(missing []string) string {
	if len(missing) == 0 {
		return "None."
	}
	return strings.Join(missing, ", ")
}

func truncateForPrompt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxPromptDocumentChars {
		return text
	}
	return string(runes[:maxPromptDocumentChars])
}
