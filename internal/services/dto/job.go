package dto

// PostJobRequest mirrors the admin job-posting form. Requirements arrives as
// one comma-separated string and Experience as a string holding a number.
type PostJobRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Requirements string  `json:"requirements" validate:"required"`
	Salary       float64 `json:"salary" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	JobType      string  `json:"jobType" validate:"required"`
	Experience   string  `json:"experience" validate:"required"`
	Position     int     `json:"position" validate:"required"`
	CompanyID    string  `json:"companyId" validate:"required"`
}
