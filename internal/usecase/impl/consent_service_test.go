package impl

import (
	"context"
	"testing"
	"time"

	"applyo/config"
	"applyo/internal/domain/entity"
	domainerrors "applyo/internal/domain/errors"
	"applyo/internal/domain/repository"
	mockRepo "applyo/internal/mocks/repository"
	mockSvc "applyo/internal/mocks/service"
	"applyo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type consentServiceMocks struct {
	consentRepo     *mockRepo.MockConsentTokenRepository
	userRepo        *mockRepo.MockUserRepository
	qrcodeService   *mockSvc.MockQRCodeService
	notificationSvc *mockSvc.MockNotificationService
	eventPublisher  *mockSvc.MockEventPublisher
}

func newTestConsentService(t *testing.T) (usecase.ConsentUsecase, *consentServiceMocks) {
	t.Helper()

	m := &consentServiceMocks{
		consentRepo:     mockRepo.NewMockConsentTokenRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		qrcodeService:   mockSvc.NewMockQRCodeService(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
		eventPublisher:  mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Consent: &config.ConsentConfig{
			DefaultExpirationHours: 72,
			PageBaseURL:            "https://consent.applyo.dev/consent",
		},
	}

	service := NewConsentService(ConsentServiceParams{
		ConsentRepo:     m.consentRepo,
		UserRepo:        m.userRepo,
		QRCodeService:   m.qrcodeService,
		NotificationSvc: m.notificationSvc,
		EventPublisher:  m.eventPublisher,
		Config:          cfg,
		Logger:          discardLogger(),
	})

	return service, m
}

func pendingConsentToken(expiresAt time.Time) *entity.ConsentToken {
	return &entity.ConsentToken{
		ID:              uuid.New(),
		Token:           "opaque-token-string",
		CompanyID:       uuid.New(),
		RequestedFields: []string{"email", "resume"},
		PurposeOfUse:    "recruiting",
		RetentionDays:   30,
		Status:          entity.ConsentStatusPending,
		ExpiresAt:       expiresAt,
		CreatedAt:       time.Now(),
	}
}

func TestConsentService_CreateConsentRequest(t *testing.T) {
	service, m := newTestConsentService(t)
	ctx := context.Background()
	companyID := uuid.New()

	var created *entity.ConsentToken
	m.consentRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ConsentToken")).
		Run(func(_ context.Context, token *entity.ConsentToken) {
			created = token
		}).
		Return(nil)
	m.qrcodeService.EXPECT().
		GenerateConsentQR(mock.AnythingOfType("string")).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.AnythingOfType("*service.ConsentEvent")).
		Return(nil)

	output, err := service.CreateConsentRequest(ctx, usecase.CreateConsentInput{
		CompanyID:       companyID,
		RequestedFields: []string{"email", "resume"},
		PurposeOfUse:    "recruiting",
		RetentionDays:   30,
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	require.NotNil(t, created)

	assert.Equal(t, entity.ConsentStatusPending, created.Status)
	assert.Equal(t, companyID, created.CompanyID)
	assert.NotEmpty(t, created.Token)
	assert.Nil(t, created.CandidateID)
	assert.Nil(t, created.RespondedAt)

	// Default lifetime is 72 hours.
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), created.ExpiresAt, time.Minute)

	assert.Contains(t, output.ConsentURL, "token=")
	assert.NotEmpty(t, output.QRCodePNG)
}

func TestConsentService_CreateConsentRequest_CustomExpiration(t *testing.T) {
	service, m := newTestConsentService(t)
	ctx := context.Background()

	var created *entity.ConsentToken
	m.consentRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ConsentToken")).
		Run(func(_ context.Context, token *entity.ConsentToken) {
			created = token
		}).
		Return(nil)
	m.qrcodeService.EXPECT().
		GenerateConsentQR(mock.AnythingOfType("string")).
		Return([]byte{1}, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.Anything).
		Return(nil)

	_, err := service.CreateConsentRequest(ctx, usecase.CreateConsentInput{
		CompanyID:       uuid.New(),
		RequestedFields: []string{"email"},
		ExpirationHours: 1,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), created.ExpiresAt, time.Minute)
}

func TestConsentService_CreateConsentRequest_EmptyFields(t *testing.T) {
	service, _ := newTestConsentService(t)

	output, err := service.CreateConsentRequest(context.Background(), usecase.CreateConsentInput{
		CompanyID:       uuid.New(),
		RequestedFields: nil,
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestConsentService_CreateConsentRequest_CollisionRegenerates(t *testing.T) {
	service, m := newTestConsentService(t)
	ctx := context.Background()

	tokens := make([]string, 0, 2)
	m.consentRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ConsentToken")).
		Run(func(_ context.Context, token *entity.ConsentToken) {
			tokens = append(tokens, token.Token)
		}).
		Return(repository.ErrConsentTokenCollision).
		Once()
	m.consentRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ConsentToken")).
		Run(func(_ context.Context, token *entity.ConsentToken) {
			tokens = append(tokens, token.Token)
		}).
		Return(nil).
		Once()
	m.qrcodeService.EXPECT().
		GenerateConsentQR(mock.AnythingOfType("string")).
		Return([]byte{1}, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.Anything).
		Return(nil)

	_, err := service.CreateConsentRequest(ctx, usecase.CreateConsentInput{
		CompanyID:       uuid.New(),
		RequestedFields: []string{"email"},
	})
	require.NoError(t, err)

	// A collision must produce a fresh random token, not a retry of the same one.
	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])
}

func TestConsentService_CreateConsentRequest_NotifiesCandidate(t *testing.T) {
	service, m := newTestConsentService(t)
	ctx := context.Background()

	m.consentRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil)
	m.qrcodeService.EXPECT().
		GenerateConsentQR(mock.AnythingOfType("string")).
		Return([]byte{1}, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.Anything).
		Return(nil)
	m.userRepo.EXPECT().
		FindByEmail(mock.Anything, "candidate@example.com").
		Return(&entity.User{
			ID:          uuid.New(),
			Email:       "candidate@example.com",
			UserType:    entity.UserTypeCandidate,
			DeviceToken: "fcm-device-token",
		}, nil)
	m.notificationSvc.EXPECT().
		SendSingleNotification(mock.Anything, "fcm-device-token", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	_, err := service.CreateConsentRequest(ctx, usecase.CreateConsentInput{
		CompanyID:       uuid.New(),
		CandidateEmail:  "candidate@example.com",
		RequestedFields: []string{"email"},
	})
	require.NoError(t, err)
}

func TestConsentService_GetConsentByToken(t *testing.T) {
	service, m := newTestConsentService(t)
	record := pendingConsentToken(time.Now().Add(time.Hour))

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil)

	found, err := service.GetConsentByToken(context.Background(), record.Token)
	require.NoError(t, err)
	assert.Equal(t, record.ID, found.ID)
}

func TestConsentService_GetConsentByToken_NotFound(t *testing.T) {
	service, m := newTestConsentService(t)

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, "missing").
		Return(nil, repository.ErrConsentTokenNotFound)

	found, err := service.GetConsentByToken(context.Background(), "missing")
	require.ErrorIs(t, err, domainerrors.ErrConsentTokenNotFound)
	assert.Nil(t, found)
}

func TestConsentService_RespondToConsent_Approve(t *testing.T) {
	service, m := newTestConsentService(t)
	ctx := context.Background()
	candidateID := uuid.New()
	record := pendingConsentToken(time.Now().Add(time.Hour))

	now := time.Now()
	responded := *record
	responded.CandidateID = &candidateID
	responded.Status = entity.ConsentStatusApproved
	responded.RespondedAt = &now

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil)
	m.consentRepo.EXPECT().
		RespondIfPending(mock.Anything, record.ID, candidateID, entity.ConsentStatusApproved, mock.AnythingOfType("time.Time")).
		Return(&responded, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.Anything).
		Return(nil)

	updated, err := service.RespondToConsent(ctx, usecase.RespondConsentInput{
		CandidateID: candidateID,
		Token:       record.Token,
		Approved:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ConsentStatusApproved, updated.Status)
	require.NotNil(t, updated.CandidateID)
	assert.Equal(t, candidateID, *updated.CandidateID)
	assert.NotNil(t, updated.RespondedAt)
}

func TestConsentService_RespondToConsent_Deny(t *testing.T) {
	service, m := newTestConsentService(t)
	candidateID := uuid.New()
	record := pendingConsentToken(time.Now().Add(time.Hour))

	denied := *record
	denied.Status = entity.ConsentStatusDenied

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil)
	m.consentRepo.EXPECT().
		RespondIfPending(mock.Anything, record.ID, candidateID, entity.ConsentStatusDenied, mock.AnythingOfType("time.Time")).
		Return(&denied, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.Anything).
		Return(nil)

	updated, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: candidateID,
		Token:       record.Token,
		Approved:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ConsentStatusDenied, updated.Status)
}

func TestConsentService_RespondToConsent_NotFound(t *testing.T) {
	service, m := newTestConsentService(t)

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, "missing").
		Return(nil, repository.ErrConsentTokenNotFound)

	_, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: uuid.New(),
		Token:       "missing",
		Approved:    true,
	})
	require.ErrorIs(t, err, domainerrors.ErrConsentTokenNotFound)
}

func TestConsentService_RespondToConsent_ExpiredPersistsBeforeFailing(t *testing.T) {
	service, m := newTestConsentService(t)
	record := pendingConsentToken(time.Now().Add(-time.Minute))

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil)
	// The EXPIRED transition must be written before the error is reported,
	// even on the very first response attempt.
	m.consentRepo.EXPECT().
		MarkExpiredIfPending(mock.Anything, record.ID).
		Return(nil)

	_, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: uuid.New(),
		Token:       record.Token,
		Approved:    true,
	})
	require.ErrorIs(t, err, domainerrors.ErrConsentExpired)
}

func TestConsentService_RespondToConsent_ExpiredRaceAlreadyPersisted(t *testing.T) {
	service, m := newTestConsentService(t)
	record := pendingConsentToken(time.Now().Add(-time.Minute))

	expired := *record
	expired.Status = entity.ConsentStatusExpired

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil).Once()
	// A parallel request already persisted EXPIRED; still Expired to us.
	m.consentRepo.EXPECT().
		MarkExpiredIfPending(mock.Anything, record.ID).
		Return(repository.ErrConsentTokenStale)
	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(&expired, nil).Once()

	_, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: uuid.New(),
		Token:       record.Token,
		Approved:    true,
	})
	require.ErrorIs(t, err, domainerrors.ErrConsentExpired)
}

func TestConsentService_RespondToConsent_ExpiredRaceFinalizedElsewhere(t *testing.T) {
	service, m := newTestConsentService(t)
	record := pendingConsentToken(time.Now().Add(-time.Minute))

	approved := *record
	approved.Status = entity.ConsentStatusApproved

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil).Once()
	// The deadline passed, but a concurrent response won the row before the
	// expiry write. The stored outcome is APPROVED, so the caller must see
	// already-finalized, not expired.
	m.consentRepo.EXPECT().
		MarkExpiredIfPending(mock.Anything, record.ID).
		Return(repository.ErrConsentTokenStale)
	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(&approved, nil).Once()

	_, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: uuid.New(),
		Token:       record.Token,
		Approved:    true,
	})
	require.ErrorIs(t, err, domainerrors.ErrConsentAlreadyFinalized)
}

func TestConsentService_RespondToConsent_AlreadyFinalized(t *testing.T) {
	service, m := newTestConsentService(t)
	candidateID := uuid.New()
	record := pendingConsentToken(time.Now().Add(time.Hour))
	record.Status = entity.ConsentStatusApproved
	record.CandidateID = &candidateID

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil)

	// No write happens: the finalized state is left untouched.
	_, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: uuid.New(),
		Token:       record.Token,
		Approved:    false,
	})
	require.ErrorIs(t, err, domainerrors.ErrConsentAlreadyFinalized)
}

func TestConsentService_RespondToConsent_LosesRace(t *testing.T) {
	service, m := newTestConsentService(t)
	record := pendingConsentToken(time.Now().Add(time.Hour))

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, record.Token).
		Return(record, nil)
	// The conditional update found the row no longer PENDING: a concurrent
	// response won between our read and our write.
	m.consentRepo.EXPECT().
		RespondIfPending(mock.Anything, record.ID, mock.Anything, entity.ConsentStatusApproved, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrConsentTokenStale)

	_, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: uuid.New(),
		Token:       record.Token,
		Approved:    true,
	})
	require.ErrorIs(t, err, domainerrors.ErrConsentAlreadyFinalized)
}

func TestConsentService_RespondToConsent_StorageTimeout(t *testing.T) {
	service, m := newTestConsentService(t)

	m.consentRepo.EXPECT().
		FindByToken(mock.Anything, "any").
		Return(nil, errors.WithMessage(repository.ErrStorageTimeout, "deadline exceeded"))

	_, err := service.RespondToConsent(context.Background(), usecase.RespondConsentInput{
		CandidateID: uuid.New(),
		Token:       "any",
		Approved:    true,
	})
	require.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestConsentService_RevokeConsent(t *testing.T) {
	service, m := newTestConsentService(t)
	candidateID := uuid.New()
	record := pendingConsentToken(time.Now().Add(time.Hour))
	record.Status = entity.ConsentStatusApproved
	record.CandidateID = &candidateID

	revoked := *record
	revoked.Status = entity.ConsentStatusRevoked

	m.consentRepo.EXPECT().
		FindByID(mock.Anything, record.ID).
		Return(record, nil)
	m.consentRepo.EXPECT().
		UpdateStatus(mock.Anything, record.ID, entity.ConsentStatusRevoked).
		Return(&revoked, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.Anything).
		Return(nil)

	updated, err := service.RevokeConsent(context.Background(), candidateID, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConsentStatusRevoked, updated.Status)
}

func TestConsentService_RevokeConsent_NonOwnerLooksLikeMissing(t *testing.T) {
	service, m := newTestConsentService(t)
	owner := uuid.New()
	record := pendingConsentToken(time.Now().Add(time.Hour))
	record.Status = entity.ConsentStatusApproved
	record.CandidateID = &owner

	m.consentRepo.EXPECT().
		FindByID(mock.Anything, record.ID).
		Return(record, nil)

	_, errNonOwner := service.RevokeConsent(context.Background(), uuid.New(), record.ID)
	require.ErrorIs(t, errNonOwner, domainerrors.ErrConsentTokenNotFound)

	missingID := uuid.New()
	m.consentRepo.EXPECT().
		FindByID(mock.Anything, missingID).
		Return(nil, repository.ErrConsentTokenNotFound)

	_, errMissing := service.RevokeConsent(context.Background(), owner, missingID)
	require.ErrorIs(t, errMissing, domainerrors.ErrConsentTokenNotFound)

	// Identical error in both cases: existence is not leaked to a non-owner.
	assert.Equal(t, errMissing, errNonOwner)
}

// Revocation does not validate the prior status: revoking a DENIED token
// succeeds. This documents the current contract rather than endorsing it.
func TestConsentService_RevokeConsent_PermissiveOnDenied(t *testing.T) {
	service, m := newTestConsentService(t)
	candidateID := uuid.New()
	record := pendingConsentToken(time.Now().Add(time.Hour))
	record.Status = entity.ConsentStatusDenied
	record.CandidateID = &candidateID

	revoked := *record
	revoked.Status = entity.ConsentStatusRevoked

	m.consentRepo.EXPECT().
		FindByID(mock.Anything, record.ID).
		Return(record, nil)
	m.consentRepo.EXPECT().
		UpdateStatus(mock.Anything, record.ID, entity.ConsentStatusRevoked).
		Return(&revoked, nil)
	m.eventPublisher.EXPECT().
		PublishConsentEvent(mock.Anything, mock.Anything).
		Return(nil)

	updated, err := service.RevokeConsent(context.Background(), candidateID, record.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConsentStatusRevoked, updated.Status)
}

func TestConsentService_ListCandidateConsents(t *testing.T) {
	service, m := newTestConsentService(t)
	candidateID := uuid.New()

	m.consentRepo.EXPECT().
		FindByCandidate(mock.Anything, candidateID, 10, 0).
		Return([]*entity.ConsentToken{pendingConsentToken(time.Now().Add(time.Hour))}, nil)

	tokens, err := service.ListCandidateConsents(context.Background(), candidateID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestConsentService_ListCompanyConsents_StorageTimeout(t *testing.T) {
	service, m := newTestConsentService(t)
	companyID := uuid.New()

	m.consentRepo.EXPECT().
		FindByCompany(mock.Anything, companyID, 10, 0).
		Return(nil, errors.WithMessage(repository.ErrStorageTimeout, "deadline exceeded"))

	_, err := service.ListCompanyConsents(context.Background(), companyID, 10, 0)
	require.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}
