package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a candidate or company account.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	if !input.UserType.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{
			"userType": "must be CANDIDATE or COMPANY",
		})
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		UserType:     input.UserType,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account registered",
		slog.Any("user_id", user.ID),
		slog.String("user_type", string(user.UserType)),
	)

	return &usecase.SignupOutput{User: user}, nil
}

// Login verifies credentials and mints an access/refresh token pair.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	var output *usecase.TokenPairOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		// A company credential on the candidate endpoint (or vice versa) is
		// rejected the same way as a bad password.
		if input.UserType != "" && user.UserType != input.UserType {
			return domainerrors.ErrInvalidCredentials
		}
		if !user.Active {
			return domainerrors.ErrAccountDisabled
		}
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		pair, err := srv.mintTokenPair(user)
		if err != nil {
			return err
		}

		now := time.Now()
		user.RefreshTokenHash = hashRefreshToken(pair.RefreshToken)
		user.LastLoginAt = &now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store refresh token hash")
		}

		output = pair

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Refresh rotates the refresh token and mints a fresh pair. The stored hash
// is replaced in the same transaction, so a captured old refresh token is
// dead the moment a rotation lands.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	userID, err := srv.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	var output *usecase.TokenPairOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.RefreshTokenHash == "" || user.RefreshTokenHash != hashRefreshToken(refreshToken) {
			return domainerrors.ErrRefreshTokenInvalid
		}
		if !user.Active {
			return domainerrors.ErrAccountDisabled
		}

		pair, err := srv.mintTokenPair(user)
		if err != nil {
			return err
		}

		user.RefreshTokenHash = hashRefreshToken(pair.RefreshToken)
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to rotate refresh token hash")
		}

		output = pair

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Token pair refreshed", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Logout invalidates the stored refresh token.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.RefreshTokenHash = ""

		return errors.Wrap(userRepo.Update(ctx, user), "failed to clear refresh token hash")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Logged out", slog.Any("user_id", userID))

	return nil
}

// ChangePassword verifies the current password and replaces it.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		user.PasswordHash = newHash
		// Changing the password ends every session.
		user.RefreshTokenHash = ""

		return errors.Wrap(userRepo.Update(ctx, user), "failed to update password")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("user_id", input.UserID))

	return nil
}

// mintTokenPair signs a fresh access/refresh pair for the user.
func (srv *authService) mintTokenPair(user *entity.User) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.UserType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// hashRefreshToken returns the hex SHA-256 digest stored instead of the raw
// refresh token.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
