package usecase

import (
	"context"
	"io"

	"applyo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UploadDocumentInput defines the data required to store a candidate document.
type UploadDocumentInput struct {
	CandidateID uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// --- Output DTOs ---

// DownloadDocumentOutput pairs the metadata with a reader over the bytes.
// The caller closes Content.
type DownloadDocumentOutput struct {
	Metadata *entity.DocumentMetadata
	Content  io.ReadCloser
}

// DocumentUsecase defines the interface for candidate document management.
// Metadata lives in the database; the bytes live in blob storage.
type DocumentUsecase interface {
	// UploadDocument stores the bytes and registers the catalogue entry.
	UploadDocument(ctx context.Context, input UploadDocumentInput) (*entity.DocumentMetadata, error)

	// DownloadDocument opens a candidate's own document for reading.
	DownloadDocument(ctx context.Context, candidateID, documentID uuid.UUID) (*DownloadDocumentOutput, error)

	// ListDocuments returns a candidate's document catalogue.
	ListDocuments(ctx context.Context, candidateID uuid.UUID) ([]*entity.DocumentMetadata, error)

	// DeleteDocument removes both the catalogue entry and the stored bytes.
	DeleteDocument(ctx context.Context, candidateID, documentID uuid.UUID) error
}
