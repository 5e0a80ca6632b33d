package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService interface {
	Post(db *gorm.DB, userID string, req *dto.PostJobRequest) (*models.Job, error)
	Search(db *gorm.DB, keyword string) ([]models.Job, error)
	GetByID(db *gorm.DB, id string) (*models.Job, error)
	ListByCreator(db *gorm.DB, userID string) ([]models.Job, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Post(db *gorm.DB, userID string, req *dto.PostJobRequest) (*models.Job, error) {
	requirements := strings.Split(req.Requirements, ",")
	requirementsJSON, err := json.Marshal(requirements)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// A non-numeric experience value is accepted as long as the field is
	// present; the parse failure deliberately goes unchecked.
	experienceLevel, _ := strconv.Atoi(req.Experience)

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    datatypes.JSON(requirementsJSON),
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: experienceLevel,
		Position:        req.Position,
		CompanyID:       req.CompanyID,
		CreatedBy:       userID,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Search(db *gorm.DB, keyword string) ([]models.Job, error) {
	jobs, err := s.jobRepo.Search(db, keyword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(jobs) == 0 {
		return nil, apperrors.NewNotFoundError("job", "Jobs not found.")
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetByID(db *gorm.DB, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByIDWithApplications(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found.")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListByCreator(db *gorm.DB, userID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByCreator(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(jobs) == 0 {
		return nil, apperrors.NewNotFoundError("job", "Jobs not found.")
	}
	return jobs, nil
}
