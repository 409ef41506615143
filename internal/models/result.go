package models

type AnalyzeResponse struct {
	ID             string   `json:"id,omitempty"`
	Score          float64  `json:"score"`
	Missing        []string `json:"missing"`
	ResumeText     string   `json:"resume_text"`
	JobDescription string   `json:"job_description"`
	CompanyName    string   `json:"company_name"`
}

type SuggestionRequest struct {
	Kind           string   `json:"kind"`
	ResumeText     string   `json:"resume_text"`
	JobDescription string   `json:"job_description"`
	CompanyName    string   `json:"company_name"`
	Missing        []string `json:"missing"`
}

type SuggestionResponse struct {
	Kind       string `json:"kind"`
	Suggestion string `json:"suggestion"`
}

type HistoryResponse struct {
	Analyses []AnalysisRecord `json:"analyses"`
}
