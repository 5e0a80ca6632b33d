package dto

type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Description string `json:"description" validate:"required"`
	Website     string `json:"website" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

// UpdateCompanyRequest accepts any subset of the four fields; absent or null
// fields are dropped from the update.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
}
