package dto

type RegisterRequest struct {
	FullName           string   `json:"fullname" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	PhoneNumber        string   `json:"phoneNumber" validate:"required"`
	Password           string   `json:"password" validate:"required"`
	Role               string   `json:"role" validate:"omitempty,oneof=student admin"`
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	Resume             string   `json:"resume"`
	ResumeOriginalName string   `json:"resumeOriginalName"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries only the profile sub-fields. Pointers
// distinguish "absent" from "set": nil fields keep their stored value.
type UpdateProfileRequest struct {
	Bio                *string   `json:"bio"`
	Skills             *[]string `json:"skills"`
	Resume             *string   `json:"resume"`
	ResumeOriginalName *string   `json:"resumeOriginalName"`
}
