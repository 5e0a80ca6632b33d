package services

import (
	"fmt"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, applicantID, jobID string) (*models.Application, error)
	ListAppliedJobs(db *gorm.DB, applicantID string) ([]models.Application, error)
	ListApplicants(db *gorm.DB, jobID string) (*models.Job, []models.Application, error)
	UpdateStatus(db *gorm.DB, id, status string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

func (s *ApplicationServiceImpl) Apply(db *gorm.DB, applicantID, jobID string) (*models.Application, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid Job ID format.")
	}

	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found.")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.applicationRepo.FindByJobAndApplicant(db, jobID, applicantID); err == nil {
		return nil, apperrors.NewConflictError("application", "You have already applied for this job.")
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		// Two concurrent applies can both pass the lookup; the composite
		// unique index turns the loser into the same duplicate failure.
		if apperrors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.NewConflictError("application", "You have already applied for this job.")
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) ListAppliedJobs(db *gorm.DB, applicantID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.ListByApplicant(db, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(applications) == 0 {
		return nil, apperrors.NewNotFoundError("application", "No Applications")
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) ListApplicants(db *gorm.DB, jobID string) (*models.Job, []models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, nil, apperrors.NewNotFoundError("job", "Job not found.")
		}
		return nil, nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.ListByJob(db, jobID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return job, applications, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, id, status string) error {
	parsed, ok := models.ParseApplicationStatus(status)
	if !ok {
		return apperrors.NewBadRequestError(fmt.Sprintf("Invalid status value %s. Allowed values are: 'pending', 'accepted', or 'rejected'.", status))
	}

	if err := s.applicationRepo.UpdateStatus(db, id, parsed); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.NewNotFoundError("application", "Application not found.")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
