package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DurationCustom is the internship duration that requires explicit start and end dates.
const DurationCustom = "Custom"

type Certificate struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CertificateID      string         `gorm:"size:32;not null;uniqueIndex" json:"certificate_id"`
	StudentName        string         `gorm:"size:255;not null" json:"student_name"`
	InternshipTitle    string         `gorm:"size:255;not null" json:"internship_title"`
	InternshipDuration string         `gorm:"size:50;not null" json:"internship_duration"`
	IssueDate          string         `gorm:"size:32;not null" json:"issue_date"`
	StartDate          string         `gorm:"size:32" json:"start_date"`
	EndDate            string         `gorm:"size:32" json:"end_date"`
	ProfilePhotoURL    string         `gorm:"type:text;not null" json:"profile_photo_url"`
	CertificateFileURL string         `gorm:"type:text;not null" json:"certificate_file_url"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}

// CertificateForm is the camelCase multipart form accepted by the certificate endpoints.
// Empty strings mean "not supplied".
type CertificateForm struct {
	StudentName        string   `form:"studentName" validate:"required"`
	InternshipTitle    string   `form:"internshipTitle" validate:"required"`
	IssueDate          string   `form:"issueDate" validate:"required"`
	InternshipDuration string   `form:"internshipDuration" validate:"required"`
	StartDate          string   `form:"startDate" validate:"required_if=InternshipDuration Custom"`
	EndDate            string   `form:"endDate" validate:"required_if=InternshipDuration Custom"`
	Skills             []string `form:"skills"`
}

// ToCertificate maps a validated form onto a new record. Identifier and
// artifact URLs are filled in by the issuance workflow.
func (f CertificateForm) ToCertificate(skills []string) Certificate {
	return Certificate{
		StudentName:        f.StudentName,
		InternshipTitle:    f.InternshipTitle,
		InternshipDuration: f.InternshipDuration,
		IssueDate:          f.IssueDate,
		StartDate:          f.StartDate,
		EndDate:            f.EndDate,
		Skills:             pq.StringArray(skills),
	}
}

// MergeInto returns existing with every supplied field of f applied on top.
// Fields left empty keep their stored value; skills are replaced only when
// a non-empty list is supplied.
func (f CertificateForm) MergeInto(existing Certificate, skills []string) Certificate {
	merged := existing
	merged.StudentName = pick(f.StudentName, existing.StudentName)
	merged.InternshipTitle = pick(f.InternshipTitle, existing.InternshipTitle)
	merged.InternshipDuration = pick(f.InternshipDuration, existing.InternshipDuration)
	merged.IssueDate = pick(f.IssueDate, existing.IssueDate)
	merged.StartDate = pick(f.StartDate, existing.StartDate)
	merged.EndDate = pick(f.EndDate, existing.EndDate)
	if len(skills) > 0 {
		merged.Skills = pq.StringArray(skills)
	}
	return merged
}

func pick(supplied, stored string) string {
	if supplied != "" {
		return supplied
	}
	return stored
}
