// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	"applyo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// applicationRepository implements the repository.ApplicationRepository interface.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{
		db: db,
	}
}

// Create persists a new job application with its consent snapshot.
func (repo *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	applicationM := fromApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrApplicationAlreadyExists
		}
		if isTimeoutError(err) {
			return errors.WithMessage(repository.ErrStorageTimeout, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	// Update the entity with generated values
	application.ID = applicationM.ID
	application.AppliedAt = applicationM.AppliedAt
	application.UpdatedAt = applicationM.UpdatedAt

	return nil
}

// FindByID retrieves an application by its unique ID.
func (repo *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var applicationM model.ApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, wrapStorageError(err, "failed to find application by ID")
	}

	return toApplicationDomain(&applicationM), nil
}

// ExistsByCandidateAndJob reports whether the candidate already applied to the job.
func (repo *applicationRepository) ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		Count(&count).Error; err != nil {
		return false, wrapStorageError(err, "failed to check application existence")
	}

	return count > 0, nil
}

// Update persists review-state changes to an existing application. The
// consent snapshot is deliberately not part of the update set: it is
// immutable once written.
func (repo *applicationRepository) Update(ctx context.Context, application *entity.Application) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ?", application.ID).
		Updates(map[string]interface{}{
			"status":           string(application.Status),
			"rejection_reason": application.RejectionReason,
			"reviewed_by":      application.ReviewedBy,
			"reviewed_at":      application.ReviewedAt,
		})

	if result.Error != nil {
		return wrapStorageError(result.Error, "failed to update application")
	}

	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// FindByCandidate retrieves a candidate's applications, newest first.
func (repo *applicationRepository) FindByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.Application, error) {
	return repo.findApplications(ctx, "candidate_id = ?", candidateID, limit, offset)
}

// FindByJob retrieves the applications to a job posting, newest first.
func (repo *applicationRepository) FindByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*entity.Application, error) {
	return repo.findApplications(ctx, "job_id = ?", jobID, limit, offset)
}

// FindByCompany retrieves all applications across a company's jobs, newest first.
func (repo *applicationRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.Application, error) {
	return repo.findApplications(ctx, "company_id = ?", companyID, limit, offset)
}

func (repo *applicationRepository) findApplications(ctx context.Context, cond string, id uuid.UUID, limit, offset int) ([]*entity.Application, error) {
	var applicationModels []*model.ApplicationModel

	query := repo.db.WithContext(ctx).
		Where(cond, id).
		Order("applied_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&applicationModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find applications")
	}

	applications := make([]*entity.Application, 0, len(applicationModels))
	for _, applicationM := range applicationModels {
		applications = append(applications, toApplicationDomain(applicationM))
	}

	return applications, nil
}

// --- Mapper Functions ---

// toApplicationDomain converts a GORM ApplicationModel to a domain Application entity.
func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:              data.ID,
		CandidateID:     data.CandidateID,
		JobID:           data.JobID,
		CompanyID:       data.CompanyID,
		Status:          entity.ApplicationStatus(data.Status),
		Source:          data.Source,
		Consent:         data.Consent,
		RejectionReason: data.RejectionReason,
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		AppliedAt:       data.AppliedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromApplicationDomain converts a domain Application entity to a GORM ApplicationModel.
func fromApplicationDomain(data *entity.Application) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:              data.ID,
		CandidateID:     data.CandidateID,
		JobID:           data.JobID,
		CompanyID:       data.CompanyID,
		Status:          string(data.Status),
		Source:          data.Source,
		Consent:         data.Consent,
		RejectionReason: data.RejectionReason,
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		AppliedAt:       data.AppliedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
