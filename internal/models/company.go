package models

type Company struct {
	BaseModel
	// Name uniqueness is enforced by the index, not just by the pre-create
	// lookup, so concurrent registrations cannot both slip through.
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	UserID      string `gorm:"type:uuid;not null;index" json:"userId"`
}
