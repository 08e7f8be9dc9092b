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

type authServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
	hasher       *mockSvc.MockPasswordHasher
}

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
	}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		TokenService: m.tokenService,
		Hasher:       m.hasher,
		Logger:       discardLogger(),
	})

	return service, m
}

func activeUser(userType entity.UserType) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "bcrypt-hash",
		FullName:     "Test User",
		UserType:     userType,
		Active:       true,
		CreatedAt:    time.Now(),
	}
}

func TestAuthService_Signup(t *testing.T) {
	service, m := newTestAuthService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("s3cret").Return("bcrypt-hash", nil)
	m.userRepo.EXPECT().ExistsByEmail(mock.Anything, "new@example.com").Return(false, nil)
	m.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := service.Signup(ctx, usecase.SignupInput{
		Email:    "new@example.com",
		Password: "s3cret",
		FullName: "New User",
		UserType: entity.UserTypeCandidate,
	})
	require.NoError(t, err)
	assert.Equal(t, "bcrypt-hash", output.User.PasswordHash)
	assert.True(t, output.User.Active)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Signup_InvalidUserType(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Signup(context.Background(), usecase.SignupInput{
		Email:    "new@example.com",
		Password: "s3cret",
		UserType: entity.UserType("ADMIN"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	service, m := newTestAuthService(t)

	m.hasher.EXPECT().Hash("s3cret").Return("bcrypt-hash", nil)
	m.userRepo.EXPECT().ExistsByEmail(mock.Anything, "taken@example.com").Return(true, nil)

	_, err := service.Signup(context.Background(), usecase.SignupInput{
		Email:    "taken@example.com",
		Password: "s3cret",
		UserType: entity.UserTypeCompany,
	})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	m.hasher.EXPECT().Check("s3cret", "bcrypt-hash").Return(true)
	m.tokenService.EXPECT().GenerateAccessToken(user.ID, user.UserType).Return("access-jwt", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("refresh-jwt", nil)

	var saved *entity.User
	m.userRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) {
			saved = u
		}).
		Return(nil)

	output, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    user.Email,
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", output.AccessToken)
	assert.Equal(t, "refresh-jwt", output.RefreshToken)

	require.NotNil(t, saved)
	assert.Equal(t, hashRefreshToken("refresh-jwt"), saved.RefreshTokenHash)
	assert.NotNil(t, saved.LastLoginAt)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, m := newTestAuthService(t)

	m.userRepo.EXPECT().
		FindByEmail(mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "bcrypt-hash").Return(false)

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UserTypeMismatch(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCompany)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

	// A company credential on the candidate flow reads like a bad password,
	// not a hint that the account exists with another role.
	_, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    user.Email,
		Password: "s3cret",
		UserType: entity.UserTypeCandidate,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)
	user.Active = false

	m.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    user.Email,
		Password: "s3cret",
	})
	require.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Refresh_RotatesStoredHash(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)
	user.RefreshTokenHash = hashRefreshToken("old-refresh")

	m.tokenService.EXPECT().VerifyRefreshToken("old-refresh").Return(user.ID, nil)
	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	m.tokenService.EXPECT().GenerateAccessToken(user.ID, user.UserType).Return("access-jwt", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("new-refresh", nil)

	var saved *entity.User
	m.userRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) {
			saved = u
		}).
		Return(nil)

	output, err := service.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-refresh", output.RefreshToken)

	require.NotNil(t, saved)
	assert.Equal(t, hashRefreshToken("new-refresh"), saved.RefreshTokenHash)
}

func TestAuthService_Refresh_ReplayedTokenRejected(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)
	// The stored hash already belongs to a newer token: this one was rotated out.
	user.RefreshTokenHash = hashRefreshToken("newer-refresh")

	m.tokenService.EXPECT().VerifyRefreshToken("old-refresh").Return(user.ID, nil)
	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	_, err := service.Refresh(context.Background(), "old-refresh")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	service, m := newTestAuthService(t)

	m.tokenService.EXPECT().
		VerifyRefreshToken("garbage").
		Return(uuid.Nil, assert.AnError)

	_, err := service.Refresh(context.Background(), "garbage")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)
	user.RefreshTokenHash = hashRefreshToken("some-refresh")

	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	var saved *entity.User
	m.userRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) {
			saved = u
		}).
		Return(nil)

	require.NoError(t, service.Logout(context.Background(), user.ID))
	require.NotNil(t, saved)
	assert.Empty(t, saved.RefreshTokenHash)
}

func TestAuthService_ChangePassword(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)
	user.RefreshTokenHash = hashRefreshToken("some-refresh")

	m.hasher.EXPECT().Hash("new-pass").Return("new-hash", nil)
	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	m.hasher.EXPECT().Check("old-pass", "bcrypt-hash").Return(true)

	var saved *entity.User
	m.userRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) {
			saved = u
		}).
		Return(nil)

	err := service.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "new-hash", saved.PasswordHash)
	// Sessions do not survive a password change.
	assert.Empty(t, saved.RefreshTokenHash)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	service, m := newTestAuthService(t)
	user := activeUser(entity.UserTypeCandidate)

	m.hasher.EXPECT().Hash("new-pass").Return("new-hash", nil)
	m.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "bcrypt-hash").Return(false)

	err := service.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
