package impl

import (
	"context"
	"testing"
	"time"

	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	mockRepo "applyo/internal/mocks/repository"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationServiceMocks struct {
	applicationRepo *mockRepo.MockApplicationRepository
	consentRepo     *mockRepo.MockConsentTokenRepository
}

func newTestApplicationService(t *testing.T) (usecase.ApplicationUsecase, *applicationServiceMocks) {
	t.Helper()

	m := &applicationServiceMocks{
		applicationRepo: mockRepo.NewMockApplicationRepository(t),
		consentRepo:     mockRepo.NewMockConsentTokenRepository(t),
	}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ApplicationRepo().Return(m.applicationRepo).Maybe()
	factory.EXPECT().ConsentTokenRepo().Return(m.consentRepo).Maybe()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	service := NewApplicationService(ApplicationServiceParams{
		TxManager: txManager,
		Logger:    discardLogger(),
	})

	return service, m
}

func approvedConsent(candidateID uuid.UUID) *entity.ConsentToken {
	respondedAt := time.Now().Add(-time.Hour)

	return &entity.ConsentToken{
		ID:              uuid.New(),
		Token:           "opaque-token-string",
		CandidateID:     &candidateID,
		CompanyID:       uuid.New(),
		RequestedFields: []string{"email", "resume"},
		PurposeOfUse:    "recruiting",
		RetentionDays:   30,
		Status:          entity.ConsentStatusApproved,
		ExpiresAt:       time.Now().Add(time.Hour),
		RespondedAt:     &respondedAt,
	}
}

func submittedApplication(candidateID, companyID uuid.UUID) *entity.Application {
	return &entity.Application{
		ID:          uuid.New(),
		CandidateID: candidateID,
		JobID:       uuid.New(),
		CompanyID:   companyID,
		Status:      entity.ApplicationStatusSubmitted,
		Source:      "direct",
		AppliedAt:   time.Now(),
	}
}

func TestApplicationService_CreateApplication(t *testing.T) {
	service, m := newTestApplicationService(t)
	candidateID := uuid.New()
	consent := approvedConsent(candidateID)
	jobID := uuid.New()

	m.applicationRepo.EXPECT().
		ExistsByCandidateAndJob(mock.Anything, candidateID, jobID).
		Return(false, nil)
	m.consentRepo.EXPECT().FindByID(mock.Anything, consent.ID).Return(consent, nil)

	var created *entity.Application
	m.applicationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Application")).
		Run(func(_ context.Context, application *entity.Application) {
			created = application
		}).
		Return(nil)

	application, err := service.CreateApplication(context.Background(), usecase.CreateApplicationInput{
		CandidateID:    candidateID,
		JobID:          jobID,
		CompanyID:      consent.CompanyID,
		ConsentTokenID: consent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusSubmitted, application.Status)
	assert.Equal(t, defaultApplicationSource, application.Source)

	// The embedded grant is a snapshot of the consent at submission time.
	require.NotNil(t, created)
	require.NotNil(t, created.Consent)
	assert.Equal(t, consent.ID, created.Consent.ConsentTokenID)
	assert.Equal(t, consent.RequestedFields, created.Consent.DataFieldsConsented)
	assert.Equal(t, *consent.RespondedAt, created.Consent.ConsentGivenAt)
	assert.Equal(t, consent.RespondedAt.AddDate(0, 0, 30), created.Consent.DataRetentionUntil)
	assert.True(t, created.Consent.CanShare)
}

func TestApplicationService_CreateApplication_Duplicate(t *testing.T) {
	service, m := newTestApplicationService(t)
	candidateID := uuid.New()
	jobID := uuid.New()

	m.applicationRepo.EXPECT().
		ExistsByCandidateAndJob(mock.Anything, candidateID, jobID).
		Return(true, nil)

	_, err := service.CreateApplication(context.Background(), usecase.CreateApplicationInput{
		CandidateID:    candidateID,
		JobID:          jobID,
		ConsentTokenID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrApplicationAlreadyExists)
}

func TestApplicationService_CreateApplication_ConsentNotApproved(t *testing.T) {
	statuses := []entity.ConsentTokenStatus{
		entity.ConsentStatusPending,
		entity.ConsentStatusDenied,
		entity.ConsentStatusExpired,
		entity.ConsentStatusRevoked,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			service, m := newTestApplicationService(t)
			candidateID := uuid.New()
			consent := approvedConsent(candidateID)
			consent.Status = status
			jobID := uuid.New()

			m.applicationRepo.EXPECT().
				ExistsByCandidateAndJob(mock.Anything, candidateID, jobID).
				Return(false, nil)
			m.consentRepo.EXPECT().FindByID(mock.Anything, consent.ID).Return(consent, nil)

			_, err := service.CreateApplication(context.Background(), usecase.CreateApplicationInput{
				CandidateID:    candidateID,
				JobID:          jobID,
				ConsentTokenID: consent.ID,
			})
			require.ErrorIs(t, err, domainerrors.ErrConsentNotApproved)
		})
	}
}

func TestApplicationService_CreateApplication_ConsentOwnedByAnother(t *testing.T) {
	service, m := newTestApplicationService(t)
	consent := approvedConsent(uuid.New())
	candidateID := uuid.New()
	jobID := uuid.New()

	m.applicationRepo.EXPECT().
		ExistsByCandidateAndJob(mock.Anything, candidateID, jobID).
		Return(false, nil)
	m.consentRepo.EXPECT().FindByID(mock.Anything, consent.ID).Return(consent, nil)

	_, err := service.CreateApplication(context.Background(), usecase.CreateApplicationInput{
		CandidateID:    candidateID,
		JobID:          jobID,
		ConsentTokenID: consent.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrConsentTokenNotFound)
}

func TestApplicationService_GetApplication_NotFound(t *testing.T) {
	service, m := newTestApplicationService(t)
	id := uuid.New()

	m.applicationRepo.EXPECT().
		FindByID(mock.Anything, id).
		Return(nil, repository.ErrApplicationNotFound)

	_, err := service.GetApplication(context.Background(), id)
	require.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestApplicationService_UpdateApplicationStatus_Reject(t *testing.T) {
	service, m := newTestApplicationService(t)
	companyID := uuid.New()
	reviewerID := uuid.New()
	application := submittedApplication(uuid.New(), companyID)

	m.applicationRepo.EXPECT().FindByID(mock.Anything, application.ID).Return(application, nil)

	var saved *entity.Application
	m.applicationRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Application")).
		Run(func(_ context.Context, a *entity.Application) {
			saved = a
		}).
		Return(nil)

	updated, err := service.UpdateApplicationStatus(context.Background(), usecase.UpdateApplicationStatusInput{
		ApplicationID:   application.ID,
		CompanyID:       companyID,
		Status:          entity.ApplicationStatusRejected,
		RejectionReason: "position filled",
		ReviewedBy:      reviewerID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusRejected, updated.Status)
	assert.Equal(t, "position filled", updated.RejectionReason)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, reviewerID, *updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)
	require.NotNil(t, saved)
}

func TestApplicationService_UpdateApplicationStatus_ClearsStaleRejectionReason(t *testing.T) {
	service, m := newTestApplicationService(t)
	companyID := uuid.New()
	application := submittedApplication(uuid.New(), companyID)
	application.Status = entity.ApplicationStatusRejected
	application.RejectionReason = "position filled"

	m.applicationRepo.EXPECT().FindByID(mock.Anything, application.ID).Return(application, nil)
	m.applicationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	updated, err := service.UpdateApplicationStatus(context.Background(), usecase.UpdateApplicationStatusInput{
		ApplicationID: application.ID,
		CompanyID:     companyID,
		Status:        entity.ApplicationStatusReviewing,
		ReviewedBy:    uuid.New(),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.RejectionReason)
}

func TestApplicationService_UpdateApplicationStatus_InvalidStatus(t *testing.T) {
	service, _ := newTestApplicationService(t)

	for _, status := range []entity.ApplicationStatus{
		entity.ApplicationStatusSubmitted,
		entity.ApplicationStatusWithdrawn,
		entity.ApplicationStatus("BOGUS"),
	} {
		_, err := service.UpdateApplicationStatus(context.Background(), usecase.UpdateApplicationStatusInput{
			ApplicationID: uuid.New(),
			CompanyID:     uuid.New(),
			Status:        status,
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestApplicationService_UpdateApplicationStatus_WrongCompany(t *testing.T) {
	service, m := newTestApplicationService(t)
	application := submittedApplication(uuid.New(), uuid.New())

	m.applicationRepo.EXPECT().FindByID(mock.Anything, application.ID).Return(application, nil)

	_, err := service.UpdateApplicationStatus(context.Background(), usecase.UpdateApplicationStatusInput{
		ApplicationID: application.ID,
		CompanyID:     uuid.New(),
		Status:        entity.ApplicationStatusReviewing,
	})
	require.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestApplicationService_UpdateApplicationStatus_Withdrawn(t *testing.T) {
	service, m := newTestApplicationService(t)
	companyID := uuid.New()
	application := submittedApplication(uuid.New(), companyID)
	application.Status = entity.ApplicationStatusWithdrawn

	m.applicationRepo.EXPECT().FindByID(mock.Anything, application.ID).Return(application, nil)

	_, err := service.UpdateApplicationStatus(context.Background(), usecase.UpdateApplicationStatusInput{
		ApplicationID: application.ID,
		CompanyID:     companyID,
		Status:        entity.ApplicationStatusAccepted,
	})
	require.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestApplicationService_WithdrawApplication(t *testing.T) {
	service, m := newTestApplicationService(t)
	candidateID := uuid.New()
	application := submittedApplication(candidateID, uuid.New())

	m.applicationRepo.EXPECT().FindByID(mock.Anything, application.ID).Return(application, nil)

	var saved *entity.Application
	m.applicationRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Application")).
		Run(func(_ context.Context, a *entity.Application) {
			saved = a
		}).
		Return(nil)

	require.NoError(t, service.WithdrawApplication(context.Background(), candidateID, application.ID))
	require.NotNil(t, saved)
	assert.Equal(t, entity.ApplicationStatusWithdrawn, saved.Status)
}

func TestApplicationService_WithdrawApplication_NotOwner(t *testing.T) {
	service, m := newTestApplicationService(t)
	application := submittedApplication(uuid.New(), uuid.New())

	m.applicationRepo.EXPECT().FindByID(mock.Anything, application.ID).Return(application, nil)

	err := service.WithdrawApplication(context.Background(), uuid.New(), application.ID)
	require.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestApplicationService_ListCandidateApplications(t *testing.T) {
	service, m := newTestApplicationService(t)
	candidateID := uuid.New()

	m.applicationRepo.EXPECT().
		FindByCandidate(mock.Anything, candidateID, 20, 0).
		Return([]*entity.Application{submittedApplication(candidateID, uuid.New())}, nil)

	applications, err := service.ListCandidateApplications(context.Background(), candidateID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, applications, 1)
}
