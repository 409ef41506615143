package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is the stored outcome of one analysis. Resume and job
// description text are not kept.
type AnalysisRecord struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName         string    `gorm:"type:text" json:"company_name"`
	Score               float64   `gorm:"type:decimal(5,2);not null" json:"score"`
	MissingKeywords     []string  `gorm:"type:text;serializer:json" json:"missing"`
	SourceType          string    `gorm:"type:text" json:"source_type"`
	ResumeChars         int       `gorm:"not null" json:"resume_chars"`
	JobDescriptionChars int       `gorm:"not null" json:"job_description_chars"`
	CreatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analyses"
}
