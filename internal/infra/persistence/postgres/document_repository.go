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

// documentRepository implements the repository.DocumentRepository interface.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

// Create persists a new document catalogue entry.
func (repo *documentRepository) Create(ctx context.Context, doc *entity.DocumentMetadata) error {
	docM := fromDocumentDomain(doc)

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		if isTimeoutError(err) {
			return errors.WithMessage(repository.ErrStorageTimeout, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document metadata")
	}

	// Update the entity with generated values
	doc.ID = docM.ID
	doc.UploadedAt = docM.UploadedAt

	return nil
}

// FindByID retrieves a document record by its unique ID.
func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DocumentMetadata, error) {
	var docM model.DocumentMetadataModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, wrapStorageError(err, "failed to find document by ID")
	}

	return toDocumentDomain(&docM), nil
}

// FindByCandidate retrieves all of a candidate's documents, newest first.
func (repo *documentRepository) FindByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*entity.DocumentMetadata, error) {
	var docModels []*model.DocumentMetadataModel

	if err := repo.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("uploaded_at DESC").
		Find(&docModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find documents by candidate")
	}

	docs := make([]*entity.DocumentMetadata, 0, len(docModels))
	for _, docM := range docModels {
		docs = append(docs, toDocumentDomain(docM))
	}

	return docs, nil
}

// Delete removes a document catalogue entry.
func (repo *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DocumentMetadataModel{})

	if result.Error != nil {
		return wrapStorageError(result.Error, "failed to delete document metadata")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDocumentDomain converts a GORM DocumentMetadataModel to a domain DocumentMetadata entity.
func toDocumentDomain(data *model.DocumentMetadataModel) *entity.DocumentMetadata {
	if data == nil {
		return nil
	}

	return &entity.DocumentMetadata{
		ID:          data.ID,
		CandidateID: data.CandidateID,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		StorageKey:  data.StorageKey,
		UploadedAt:  data.UploadedAt,
	}
}

// fromDocumentDomain converts a domain DocumentMetadata entity to a GORM DocumentMetadataModel.
func fromDocumentDomain(data *entity.DocumentMetadata) *model.DocumentMetadataModel {
	if data == nil {
		return nil
	}

	return &model.DocumentMetadataModel{
		ID:          data.ID,
		CandidateID: data.CandidateID,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		StorageKey:  data.StorageKey,
		UploadedAt:  data.UploadedAt,
	}
}
