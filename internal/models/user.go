package models

import "gorm.io/datatypes"

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

// Profile is the embedded profile section of a user record. Resume holds a
// reference string only; the portal stores no resume files.
type Profile struct {
	Bio                string         `json:"bio"`
	Skills             datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Resume             string         `json:"resume"`
	ResumeOriginalName string         `json:"resumeOriginalName"`
}

type User struct {
	BaseModel
	FullName     string   `gorm:"not null" json:"fullname"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber  string   `gorm:"not null" json:"phoneNumber"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Profile      Profile  `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}
