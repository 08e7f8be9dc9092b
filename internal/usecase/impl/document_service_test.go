package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	mockRepo "applyo/internal/mocks/repository"
	mockSvc "applyo/internal/mocks/service"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type documentServiceMocks struct {
	documentRepo *mockRepo.MockDocumentRepository
	store        *mockSvc.MockDocumentStore
}

func newTestDocumentService(t *testing.T) (usecase.DocumentUsecase, *documentServiceMocks) {
	t.Helper()

	m := &documentServiceMocks{
		documentRepo: mockRepo.NewMockDocumentRepository(t),
		store:        mockSvc.NewMockDocumentStore(t),
	}

	service := NewDocumentService(DocumentServiceParams{
		DocumentRepo: m.documentRepo,
		Store:        m.store,
		Logger:       discardLogger(),
	})

	return service, m
}

func storedDocument(candidateID uuid.UUID) *entity.DocumentMetadata {
	return &entity.DocumentMetadata{
		ID:          uuid.New(),
		CandidateID: candidateID,
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		StorageKey:  "documents/" + candidateID.String() + "/" + uuid.NewString(),
		UploadedAt:  time.Now(),
	}
}

func TestDocumentService_UploadDocument(t *testing.T) {
	service, m := newTestDocumentService(t)
	candidateID := uuid.New()
	content := strings.NewReader("%PDF-1.7 ...")

	var storageKey string
	m.store.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("string"), "application/pdf", content).
		Run(func(_ context.Context, key, _ string, _ io.Reader) {
			storageKey = key
		}).
		Return(nil)
	m.documentRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.DocumentMetadata")).
		Run(func(_ context.Context, doc *entity.DocumentMetadata) {
			doc.ID = uuid.New()
		}).
		Return(nil)

	doc, err := service.UploadDocument(context.Background(), usecase.UploadDocumentInput{
		CandidateID: candidateID,
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		Content:     content,
	})
	require.NoError(t, err)
	assert.Equal(t, storageKey, doc.StorageKey)
	assert.Contains(t, doc.StorageKey, "documents/"+candidateID.String()+"/")
	assert.NotEqual(t, uuid.Nil, doc.ID)
}

func TestDocumentService_UploadDocument_EmptyFileName(t *testing.T) {
	service, _ := newTestDocumentService(t)

	_, err := service.UploadDocument(context.Background(), usecase.UploadDocumentInput{
		CandidateID: uuid.New(),
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDocumentService_UploadDocument_CleansUpOrphanedBlob(t *testing.T) {
	service, m := newTestDocumentService(t)
	candidateID := uuid.New()

	var storageKey string
	m.store.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Run(func(_ context.Context, key, _ string, _ io.Reader) {
			storageKey = key
		}).
		Return(nil)
	m.documentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(assert.AnError)
	m.store.EXPECT().
		Delete(mock.Anything, mock.MatchedBy(func(key string) bool {
			return key == storageKey
		})).
		Return(nil)

	_, err := service.UploadDocument(context.Background(), usecase.UploadDocumentInput{
		CandidateID: candidateID,
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)
}

func TestDocumentService_DownloadDocument(t *testing.T) {
	service, m := newTestDocumentService(t)
	candidateID := uuid.New()
	doc := storedDocument(candidateID)

	m.documentRepo.EXPECT().FindByID(mock.Anything, doc.ID).Return(doc, nil)
	m.store.EXPECT().
		Get(mock.Anything, doc.StorageKey).
		Return(io.NopCloser(strings.NewReader("%PDF-1.7 ...")), nil)

	output, err := service.DownloadDocument(context.Background(), candidateID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, output.Metadata.ID)

	data, err := io.ReadAll(output.Content)
	require.NoError(t, err)
	require.NoError(t, output.Content.Close())
	assert.Equal(t, "%PDF-1.7 ...", string(data))
}

func TestDocumentService_DownloadDocument_NotOwnerLooksLikeMissing(t *testing.T) {
	service, m := newTestDocumentService(t)
	doc := storedDocument(uuid.New())

	m.documentRepo.EXPECT().FindByID(mock.Anything, doc.ID).Return(doc, nil)

	_, err := service.DownloadDocument(context.Background(), uuid.New(), doc.ID)
	require.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)

	missingID := uuid.New()
	m.documentRepo.EXPECT().
		FindByID(mock.Anything, missingID).
		Return(nil, repository.ErrDocumentNotFound)

	_, errMissing := service.DownloadDocument(context.Background(), uuid.New(), missingID)
	require.ErrorIs(t, errMissing, domainerrors.ErrDocumentNotFound)
}

func TestDocumentService_ListDocuments(t *testing.T) {
	service, m := newTestDocumentService(t)
	candidateID := uuid.New()

	m.documentRepo.EXPECT().
		FindByCandidate(mock.Anything, candidateID).
		Return([]*entity.DocumentMetadata{storedDocument(candidateID)}, nil)

	docs, err := service.ListDocuments(context.Background(), candidateID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	service, m := newTestDocumentService(t)
	candidateID := uuid.New()
	doc := storedDocument(candidateID)

	m.documentRepo.EXPECT().FindByID(mock.Anything, doc.ID).Return(doc, nil)
	m.documentRepo.EXPECT().Delete(mock.Anything, doc.ID).Return(nil)
	m.store.EXPECT().Delete(mock.Anything, doc.StorageKey).Return(nil)

	require.NoError(t, service.DeleteDocument(context.Background(), candidateID, doc.ID))
}

func TestDocumentService_DeleteDocument_BlobFailureIsNotFatal(t *testing.T) {
	service, m := newTestDocumentService(t)
	candidateID := uuid.New()
	doc := storedDocument(candidateID)

	m.documentRepo.EXPECT().FindByID(mock.Anything, doc.ID).Return(doc, nil)
	m.documentRepo.EXPECT().Delete(mock.Anything, doc.ID).Return(nil)
	m.store.EXPECT().Delete(mock.Anything, doc.StorageKey).Return(assert.AnError)

	// The catalogue entry is gone; a failed blob delete is only logged.
	require.NoError(t, service.DeleteDocument(context.Background(), candidateID, doc.ID))
}
