package usecase

import (
	"context"

	"applyo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateApplicationInput defines the data required to apply to a job. The
// consent token must reference an APPROVED consent owned by the candidate.
type CreateApplicationInput struct {
	CandidateID    uuid.UUID
	JobID          uuid.UUID
	CompanyID      uuid.UUID
	Source         string
	ConsentTokenID uuid.UUID
}

// UpdateApplicationStatusInput defines a company-side review transition.
type UpdateApplicationStatusInput struct {
	ApplicationID   uuid.UUID
	CompanyID       uuid.UUID
	Status          entity.ApplicationStatus
	RejectionReason string
	ReviewedBy      uuid.UUID
}

// ApplicationUsecase defines the interface for job application operations.
type ApplicationUsecase interface {
	// CreateApplication submits an application, snapshotting the approved
	// consent into an immutable ConsentGrant on the application record.
	CreateApplication(ctx context.Context, input CreateApplicationInput) (*entity.Application, error)

	// GetApplication retrieves one application.
	GetApplication(ctx context.Context, id uuid.UUID) (*entity.Application, error)

	// UpdateApplicationStatus moves an application through review.
	UpdateApplicationStatus(ctx context.Context, input UpdateApplicationStatusInput) (*entity.Application, error)

	// WithdrawApplication lets the candidate retract their own application.
	WithdrawApplication(ctx context.Context, candidateID, applicationID uuid.UUID) error

	// ListCandidateApplications returns a candidate's applications.
	ListCandidateApplications(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.Application, error)

	// ListCompanyApplications returns the applications across a company's jobs.
	ListCompanyApplications(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.Application, error)
}
