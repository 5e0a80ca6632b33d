package services

import (
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyService interface {
	Register(db *gorm.DB, userID string, req *dto.RegisterCompanyRequest) (*models.Company, error)
	List(db *gorm.DB) ([]models.Company, error)
	GetByID(db *gorm.DB, id string) (*models.Company, error)
	Update(db *gorm.DB, id string, req *dto.UpdateCompanyRequest) (*models.Company, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) Register(db *gorm.DB, userID string, req *dto.RegisterCompanyRequest) (*models.Company, error) {
	if _, err := s.companyRepo.FindByName(db, req.CompanyName); err == nil {
		return nil, apperrors.NewConflictError("company", "You can't register the same company.")
	} else if !apperrors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	company := &models.Company{
		Name:        req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		UserID:      userID,
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.NewConflictError("company", "You can't register the same company.")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) List(db *gorm.DB) ([]models.Company, error) {
	companies, err := s.companyRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(companies) == 0 {
		return nil, apperrors.NewNotFoundError("company", "No companies found.")
	}
	return companies, nil
}

func (s *CompanyServiceImpl) GetByID(db *gorm.DB, id string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company", "Company not found.")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid company ID.")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	company, err := s.companyRepo.UpdateFields(db, id, fields)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrCompanyNotFound):
			return nil, apperrors.NewNotFoundError("company", "Company not found.")
		case apperrors.Is(err, repositories.ErrCompanyAlreadyExists):
			return nil, apperrors.NewConflictError("company", "You can't register the same company.")
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return company, nil
}
