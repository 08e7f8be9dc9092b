package repository

import (
	"context"

	"applyo/internal/domain/entity"
	"applyo/internal/errors"

	"github.com/google/uuid"
)

// ErrDocumentNotFound is returned when no document matches the lookup.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository persists document metadata. The file bytes themselves
// live in blob storage, addressed by entity.DocumentMetadata.StorageKey.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.DocumentMetadata) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DocumentMetadata, error)
	FindByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*entity.DocumentMetadata, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
