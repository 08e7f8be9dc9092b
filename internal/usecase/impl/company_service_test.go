package impl

import (
	"context"
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

type companyServiceMocks struct {
	apiKeyRepo   *mockRepo.MockAPIKeyRepository
	userRepo     *mockRepo.MockUserRepository
	keyGenerator *mockSvc.MockAPIKeyGenerator
}

func newTestCompanyService(t *testing.T) (usecase.CompanyUsecase, *companyServiceMocks) {
	t.Helper()

	m := &companyServiceMocks{
		apiKeyRepo:   mockRepo.NewMockAPIKeyRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		keyGenerator: mockSvc.NewMockAPIKeyGenerator(t),
	}

	service := NewCompanyService(CompanyServiceParams{
		APIKeyRepo:   m.apiKeyRepo,
		UserRepo:     m.userRepo,
		KeyGenerator: m.keyGenerator,
		Logger:       discardLogger(),
	})

	return service, m
}

func usableAPIKey(companyID uuid.UUID) *entity.APIKey {
	return &entity.APIKey{
		ID:        uuid.New(),
		CompanyID: companyID,
		KeyHash:   "stored-hash",
		Name:      "ats integration",
		Prefix:    "ao_12345678",
		RateLimit: 60,
		Active:    true,
		CreatedAt: time.Now(),
	}
}

func TestCompanyService_GetCompany(t *testing.T) {
	service, m := newTestCompanyService(t)
	company := activeUser(entity.UserTypeCompany)

	m.userRepo.EXPECT().FindByID(mock.Anything, company.ID).Return(company, nil)

	found, err := service.GetCompany(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, company.ID, found.ID)
}

func TestCompanyService_GetCompany_CandidateIsNotACompany(t *testing.T) {
	service, m := newTestCompanyService(t)
	candidate := activeUser(entity.UserTypeCandidate)

	m.userRepo.EXPECT().FindByID(mock.Anything, candidate.ID).Return(candidate, nil)

	_, err := service.GetCompany(context.Background(), candidate.ID)
	require.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestCompanyService_CreateAPIKey(t *testing.T) {
	service, m := newTestCompanyService(t)
	company := activeUser(entity.UserTypeCompany)

	m.userRepo.EXPECT().FindByID(mock.Anything, company.ID).Return(company, nil)
	m.keyGenerator.EXPECT().
		Generate().
		Return("ao_12345678_rawsecret", "fresh-hash", "ao_12345678", nil)

	var created *entity.APIKey
	m.apiKeyRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.APIKey")).
		Run(func(_ context.Context, key *entity.APIKey) {
			created = key
		}).
		Return(nil)

	output, err := service.CreateAPIKey(context.Background(), usecase.CreateAPIKeyInput{
		CompanyID:     company.ID,
		Name:          "ats integration",
		Scopes:        []string{"applications:read"},
		ExpiresInDays: 30,
	})
	require.NoError(t, err)

	// The raw key is returned exactly once; only its hash is stored.
	assert.Equal(t, "ao_12345678_rawsecret", output.RawKey)
	require.NotNil(t, created)
	assert.Equal(t, "fresh-hash", created.KeyHash)
	assert.NotContains(t, created.KeyHash, "rawsecret")
	assert.True(t, created.Active)
	assert.Equal(t, defaultAPIKeyRateLimit, created.RateLimit)
	require.NotNil(t, created.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *created.ExpiresAt, time.Minute)
}

func TestCompanyService_CreateAPIKey_EmptyName(t *testing.T) {
	service, _ := newTestCompanyService(t)

	_, err := service.CreateAPIKey(context.Background(), usecase.CreateAPIKeyInput{
		CompanyID: uuid.New(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCompanyService_CreateAPIKey_UnknownCompany(t *testing.T) {
	service, m := newTestCompanyService(t)
	companyID := uuid.New()

	m.userRepo.EXPECT().FindByID(mock.Anything, companyID).Return(nil, repository.ErrUserNotFound)

	_, err := service.CreateAPIKey(context.Background(), usecase.CreateAPIKeyInput{
		CompanyID: companyID,
		Name:      "ats integration",
	})
	require.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestCompanyService_RevokeAPIKey_ScopedToOwner(t *testing.T) {
	service, m := newTestCompanyService(t)
	companyID := uuid.New()
	keyID := uuid.New()

	// The repository never matches a key belonging to another company, so the
	// wrong owner sees the same NotFound as a bogus key id.
	m.apiKeyRepo.EXPECT().
		Deactivate(mock.Anything, companyID, keyID).
		Return(repository.ErrAPIKeyNotFound)

	err := service.RevokeAPIKey(context.Background(), companyID, keyID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCompanyService_DeleteAPIKey(t *testing.T) {
	service, m := newTestCompanyService(t)
	companyID := uuid.New()
	keyID := uuid.New()

	m.apiKeyRepo.EXPECT().Delete(mock.Anything, companyID, keyID).Return(nil)

	require.NoError(t, service.DeleteAPIKey(context.Background(), companyID, keyID))
}

func TestCompanyService_VerifyAPIKey(t *testing.T) {
	service, m := newTestCompanyService(t)
	key := usableAPIKey(uuid.New())

	m.keyGenerator.EXPECT().Hash("ao_12345678_rawsecret").Return("stored-hash")
	m.apiKeyRepo.EXPECT().FindByHash(mock.Anything, "stored-hash").Return(key, nil)
	m.apiKeyRepo.EXPECT().
		TouchLastUsed(mock.Anything, key.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	verified, err := service.VerifyAPIKey(context.Background(), "ao_12345678_rawsecret")
	require.NoError(t, err)
	assert.Equal(t, key.ID, verified.ID)
	assert.NotNil(t, verified.LastUsedAt)
}

func TestCompanyService_VerifyAPIKey_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *companyServiceMocks)
		raw   string
	}{
		{
			name:  "empty key",
			setup: func(_ *companyServiceMocks) {},
			raw:   "",
		},
		{
			name: "unknown hash",
			setup: func(m *companyServiceMocks) {
				m.keyGenerator.EXPECT().Hash("unknown").Return("no-such-hash")
				m.apiKeyRepo.EXPECT().
					FindByHash(mock.Anything, "no-such-hash").
					Return(nil, repository.ErrAPIKeyNotFound)
			},
			raw: "unknown",
		},
		{
			name: "revoked key",
			setup: func(m *companyServiceMocks) {
				key := usableAPIKey(uuid.New())
				key.Active = false
				m.keyGenerator.EXPECT().Hash("revoked").Return("stored-hash")
				m.apiKeyRepo.EXPECT().FindByHash(mock.Anything, "stored-hash").Return(key, nil)
			},
			raw: "revoked",
		},
		{
			name: "expired key",
			setup: func(m *companyServiceMocks) {
				key := usableAPIKey(uuid.New())
				past := time.Now().Add(-time.Hour)
				key.ExpiresAt = &past
				m.keyGenerator.EXPECT().Hash("expired").Return("stored-hash")
				m.apiKeyRepo.EXPECT().FindByHash(mock.Anything, "stored-hash").Return(key, nil)
			},
			raw: "expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestCompanyService(t)
			tt.setup(m)

			_, err := service.VerifyAPIKey(context.Background(), tt.raw)
			require.ErrorIs(t, err, domainerrors.ErrAPIKeyInvalid)
		})
	}
}

func TestCompanyService_VerifyAPIKey_TouchFailureDoesNotReject(t *testing.T) {
	service, m := newTestCompanyService(t)
	key := usableAPIKey(uuid.New())

	m.keyGenerator.EXPECT().Hash("ao_12345678_rawsecret").Return("stored-hash")
	m.apiKeyRepo.EXPECT().FindByHash(mock.Anything, "stored-hash").Return(key, nil)
	m.apiKeyRepo.EXPECT().
		TouchLastUsed(mock.Anything, key.ID, mock.AnythingOfType("time.Time")).
		Return(assert.AnError)

	verified, err := service.VerifyAPIKey(context.Background(), "ao_12345678_rawsecret")
	require.NoError(t, err)
	assert.Nil(t, verified.LastUsedAt)
}
