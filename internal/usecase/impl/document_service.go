package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "applyo/internal/delivery/context"
	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	"applyo/internal/domain/service"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// documentService implements the DocumentUsecase interface.
type documentService struct {
	documentRepo repository.DocumentRepository
	store        service.DocumentStore
	logger       *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	DocumentRepo repository.DocumentRepository
	Store        service.DocumentStore
	Logger       *slog.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		documentRepo: params.DocumentRepo,
		store:        params.Store,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadDocument stores the bytes and registers the catalogue entry. The
// blob write happens first so a failed upload never leaves a dangling
// catalogue row pointing at nothing.
func (srv *documentService) UploadDocument(ctx context.Context, input usecase.UploadDocumentInput) (*entity.DocumentMetadata, error) {
	if input.FileName == "" {
		return nil, domainerrors.NewValidationError(map[string]string{
			"fileName": "must not be empty",
		})
	}

	storageKey := fmt.Sprintf("documents/%s/%s", input.CandidateID, uuid.New())

	if err := srv.store.Put(ctx, storageKey, input.ContentType, input.Content); err != nil {
		return nil, errors.Wrap(err, "failed to store document bytes")
	}

	doc := &entity.DocumentMetadata{
		CandidateID: input.CandidateID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		SizeBytes:   input.SizeBytes,
		StorageKey:  storageKey,
	}

	if err := srv.documentRepo.Create(ctx, doc); err != nil {
		// Roll the orphaned blob back, best-effort.
		if delErr := srv.store.Delete(ctx, storageKey); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned blob", slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to register document")
	}

	srv.log(ctx).Info("Document uploaded",
		slog.Any("document_id", doc.ID),
		slog.Any("candidate_id", doc.CandidateID),
		slog.Int64("size_bytes", doc.SizeBytes),
	)

	return doc, nil
}

// DownloadDocument opens a candidate's own document for reading.
func (srv *documentService) DownloadDocument(ctx context.Context, candidateID, documentID uuid.UUID) (*usecase.DownloadDocumentOutput, error) {
	doc, err := srv.findOwnedDocument(ctx, candidateID, documentID)
	if err != nil {
		return nil, err
	}

	content, err := srv.store.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document bytes")
	}

	return &usecase.DownloadDocumentOutput{
		Metadata: doc,
		Content:  content,
	}, nil
}

// ListDocuments returns a candidate's document catalogue.
func (srv *documentService) ListDocuments(ctx context.Context, candidateID uuid.UUID) ([]*entity.DocumentMetadata, error) {
	docs, err := srv.documentRepo.FindByCandidate(ctx, candidateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return docs, nil
}

// DeleteDocument removes both the catalogue entry and the stored bytes.
func (srv *documentService) DeleteDocument(ctx context.Context, candidateID, documentID uuid.UUID) error {
	doc, err := srv.findOwnedDocument(ctx, candidateID, documentID)
	if err != nil {
		return err
	}

	if err := srv.documentRepo.Delete(ctx, doc.ID); err != nil {
		return errors.Wrap(err, "failed to delete document record")
	}

	if err := srv.store.Delete(ctx, doc.StorageKey); err != nil {
		// The catalogue entry is already gone; log and move on.
		srv.log(ctx).Warn("Failed to delete document bytes", slog.Any("error", err))
	}

	srv.log(ctx).Info("Document deleted",
		slog.Any("document_id", documentID),
		slog.Any("candidate_id", candidateID),
	)

	return nil
}

// findOwnedDocument loads a document and hides it from anyone but its owner.
func (srv *documentService) findOwnedDocument(ctx context.Context, candidateID, documentID uuid.UUID) (*entity.DocumentMetadata, error) {
	doc, err := srv.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document")
	}

	if doc.CandidateID != candidateID {
		return nil, domainerrors.ErrDocumentNotFound
	}

	return doc, nil
}
