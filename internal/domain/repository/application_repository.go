package repository

import (
	"context"

	"applyo/internal/domain/entity"
	"applyo/internal/errors"

	"github.com/google/uuid"
)

// ErrApplicationNotFound is returned when no application matches the lookup.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository persists job applications and their consent snapshots.
type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error)
	Update(ctx context.Context, application *entity.Application) error
	FindByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]*entity.Application, error)
	FindByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*entity.Application, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entity.Application, error)
}
