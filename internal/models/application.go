package models

import "strings"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus normalizes a client-supplied status. Matching is
// case-insensitive and the stored form is always lowercase.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch status := ApplicationStatus(strings.ToLower(s)); status {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return status, true
	default:
		return "", false
	}
}

type Application struct {
	BaseModel
	// The composite index makes "one application per (job, applicant)" hold
	// even when two apply calls race the duplicate lookup.
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"job"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"applicant"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"jobDetails,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicantDetails,omitempty"`
}
