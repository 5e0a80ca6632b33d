package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"not null" json:"description"`
	Requirements    datatypes.JSON `gorm:"type:jsonb" json:"requirements"`
	Salary          float64        `gorm:"not null" json:"salary"`
	Location        string         `gorm:"not null" json:"location"`
	JobType         string         `gorm:"not null" json:"jobType"`
	ExperienceLevel int            `json:"experienceLevel"`
	Position        int            `gorm:"not null" json:"position"`
	CompanyID       string         `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedBy       string         `gorm:"type:uuid;not null;index" json:"created_by"`

	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}
