package services

import (
	"encoding/json"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (string, error)
	UpdateProfile(db *gorm.DB, callerID, targetID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewUserService(userRepo repositories.UserRepository, tokens *auth.TokenManager) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *UserServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.NewConflictError("user", "Email already exists!")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleStudent
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hashed,
		Role:         role,
		Profile: models.Profile{
			Bio:                req.Bio,
			Skills:             datatypes.JSON(skillsJSON),
			Resume:             req.Resume,
			ResumeOriginalName: req.ResumeOriginalName,
		},
	}

	if err := s.userRepo.Create(db, user); err != nil {
		// The unique index closes the race between the lookup above and
		// a concurrent registration with the same email.
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("user", "Email already exists!")
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// Login returns a signed bearer token. Unknown email and wrong password
// produce the identical error so the response does not leak which one failed.
func (s *UserServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.NewInvalidCredentialsError()
		}
		return "", apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", apperrors.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, callerID, targetID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if callerID != targetID {
		return nil, apperrors.NewForbiddenError("You are not authorized to update this profile")
	}

	user, err := s.userRepo.FindByID(db, targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Bio != nil {
		user.Profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		skillsJSON, err := json.Marshal(*req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Profile.Skills = datatypes.JSON(skillsJSON)
	}
	if req.Resume != nil {
		user.Profile.Resume = *req.Resume
	}
	if req.ResumeOriginalName != nil {
		user.Profile.ResumeOriginalName = *req.ResumeOriginalName
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &user.Profile, nil
}
