package repositories

import (
	"errors"
	"strings"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindByIDWithApplications(db *gorm.DB, id string) (*models.Job, error)
	Search(db *gorm.DB, keyword string) ([]models.Job, error)
	FindByCreator(db *gorm.DB, userID string) ([]models.Job, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDWithApplications(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Applications", func(db *gorm.DB) *gorm.DB {
		return db.Order("applications.created_at DESC")
	}).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Search filters by case-insensitive substring match on title or description.
// An empty keyword matches everything.
func (r *JobRepositoryImpl) Search(db *gorm.DB, keyword string) ([]models.Job, error) {
	var jobs []models.Job
	query := db.Preload("Company").Order("created_at DESC")

	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindByCreator(db *gorm.DB, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Company").
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
