package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, id string) (*models.Company, error)
	FindByName(db *gorm.DB, name string) (*models.Company, error)
	FindAll(db *gorm.DB) ([]models.Company, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Company, error)
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	if err := db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindAll(db *gorm.DB) ([]models.Company, error) {
	var companies []models.Company
	if err := db.Order("created_at DESC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// UpdateFields applies a partial update and returns the refreshed record.
func (r *CompanyRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Company, error) {
	company, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := db.Model(company).Updates(fields).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrCompanyAlreadyExists
			}
			return nil, err
		}
	}
	return company, nil
}
